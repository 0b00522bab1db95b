package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"pohi-platform/internal/store"
)

// DemandInput carries the form fields of a new demand submission.
type DemandInput struct {
	ProductName  string
	DiameterType string
	DiameterFrom float64
	DiameterTo   float64
	Length       float64
	Quantity     float64
	Notes        string
}

type DemandService interface {
	// SubmitDemand records a new demand with status Received and a derived
	// cubic-meter volume. onBehalfOf attributes the demand to a company when
	// an administrator submits it; nil means self-submitted.
	SubmitDemand(ctx context.Context, input DemandInput, onBehalfOf *Company) (*DemandItem, error)

	// ListDemands returns all demands, newest submission first.
	ListDemands(ctx context.Context) ([]DemandItem, error)

	// ListOwnDemands returns demands with no owning company, newest first.
	ListOwnDemands(ctx context.Context) ([]DemandItem, error)

	// UpdateDemandStatus transitions a demand's lifecycle status.
	UpdateDemandStatus(ctx context.Context, id string, status DemandStatus) (*DemandItem, error)
}

type demandService struct {
	st store.Store
}

// NewDemandService constructs a DemandService backed by the collection store.
func NewDemandService(st store.Store) DemandService {
	return &demandService{st: st}
}

func (s *demandService) SubmitDemand(ctx context.Context, input DemandInput, onBehalfOf *Company) (*DemandItem, error) {
	if input.DiameterFrom > input.DiameterTo {
		return nil, fmt.Errorf("diameter range %g-%g is inverted", input.DiameterFrom, input.DiameterTo)
	}

	item := DemandItem{
		ID:          newID("DEM"),
		ProductName: input.ProductName,
		ProductFeatures: ProductFeatures{
			DiameterType: input.DiameterType,
			DiameterFrom: input.DiameterFrom,
			DiameterTo:   input.DiameterTo,
			Length:       input.Length,
			Quantity:     input.Quantity,
			CubicMeters:  CalculateVolume(input.DiameterFrom, input.DiameterTo, input.Length, input.Quantity),
			Notes:        input.Notes,
		},
		SubmissionDate: time.Now().UTC(),
		Status:         DemandReceived,
	}
	if onBehalfOf != nil {
		item.SubmittedByCompanyID = onBehalfOf.ID
		item.SubmittedByCompanyName = onBehalfOf.CompanyName
	}

	var demands []DemandItem
	if err := s.st.Get(ctx, store.KeyDemands, &demands); err != nil {
		return nil, err
	}
	demands = append([]DemandItem{item}, demands...)
	if err := s.st.Put(ctx, store.KeyDemands, demands); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *demandService) ListDemands(ctx context.Context) ([]DemandItem, error) {
	var demands []DemandItem
	if err := s.st.Get(ctx, store.KeyDemands, &demands); err != nil {
		return nil, err
	}
	sortDemandsNewestFirst(demands)
	return demands, nil
}

func (s *demandService) ListOwnDemands(ctx context.Context) ([]DemandItem, error) {
	all, err := s.ListDemands(ctx)
	if err != nil {
		return nil, err
	}
	own := make([]DemandItem, 0, len(all))
	for _, d := range all {
		if d.SubmittedByCompanyID == "" {
			own = append(own, d)
		}
	}
	return own, nil
}

func (s *demandService) UpdateDemandStatus(ctx context.Context, id string, status DemandStatus) (*DemandItem, error) {
	switch status {
	case DemandReceived, DemandProcessing, DemandCompleted, DemandCancelled:
	default:
		return nil, fmt.Errorf("unknown demand status %q", status)
	}

	var demands []DemandItem
	if err := s.st.Get(ctx, store.KeyDemands, &demands); err != nil {
		return nil, err
	}
	for i := range demands {
		if demands[i].ID == id {
			demands[i].Status = status
			if err := s.st.Put(ctx, store.KeyDemands, demands); err != nil {
				return nil, err
			}
			return &demands[i], nil
		}
	}
	return nil, fmt.Errorf("demand %q not found", id)
}

func sortDemandsNewestFirst(demands []DemandItem) {
	sort.SliceStable(demands, func(i, j int) bool {
		return demands[i].SubmissionDate.After(demands[j].SubmissionDate)
	})
}

// newID builds a prefixed record identifier, e.g. "DEM-1B9F2C4A".
func newID(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}
