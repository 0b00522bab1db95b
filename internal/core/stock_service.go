package core

import (
	"context"
	"fmt"
	"sort"
	"time"

	"pohi-platform/internal/store"
)

// StockInput carries the form fields of a new stock upload.
type StockInput struct {
	ProductName        string
	DiameterType       string
	DiameterFrom       float64
	DiameterTo         float64
	Length             float64
	Quantity           float64
	Price              string
	SustainabilityInfo string
	Notes              string
}

type StockService interface {
	// UploadStock records a new stock item with status Available and a
	// derived cubic-meter volume. onBehalfOf attributes ownership when an
	// administrator uploads for a manufacturer; nil means self-uploaded.
	UploadStock(ctx context.Context, input StockInput, onBehalfOf *Company) (*StockItem, error)

	// ListStock returns all stock items, newest upload first.
	ListStock(ctx context.Context) ([]StockItem, error)

	// ListAvailableStock returns only items with status Available, the sole
	// population eligible for matching.
	ListAvailableStock(ctx context.Context) ([]StockItem, error)

	// UpdateStockStatus transitions a stock item's lifecycle status.
	UpdateStockStatus(ctx context.Context, id string, status StockStatus) (*StockItem, error)
}

type stockService struct {
	st store.Store
}

// NewStockService constructs a StockService backed by the collection store.
func NewStockService(st store.Store) StockService {
	return &stockService{st: st}
}

func (s *stockService) UploadStock(ctx context.Context, input StockInput, onBehalfOf *Company) (*StockItem, error) {
	if input.DiameterFrom > input.DiameterTo {
		return nil, fmt.Errorf("diameter range %g-%g is inverted", input.DiameterFrom, input.DiameterTo)
	}

	item := StockItem{
		ID:          newID("STK"),
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
		UploadDate:         time.Now().UTC(),
		Status:             StockAvailable,
		Price:              input.Price,
		SustainabilityInfo: input.SustainabilityInfo,
	}
	if onBehalfOf != nil {
		item.UploadedByCompanyID = onBehalfOf.ID
		item.UploadedByCompanyName = onBehalfOf.CompanyName
	}

	var stock []StockItem
	if err := s.st.Get(ctx, store.KeyStock, &stock); err != nil {
		return nil, err
	}
	stock = append([]StockItem{item}, stock...)
	if err := s.st.Put(ctx, store.KeyStock, stock); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *stockService) ListStock(ctx context.Context) ([]StockItem, error) {
	var stock []StockItem
	if err := s.st.Get(ctx, store.KeyStock, &stock); err != nil {
		return nil, err
	}
	sort.SliceStable(stock, func(i, j int) bool {
		return stock[i].UploadDate.After(stock[j].UploadDate)
	})
	return stock, nil
}

func (s *stockService) ListAvailableStock(ctx context.Context) ([]StockItem, error) {
	all, err := s.ListStock(ctx)
	if err != nil {
		return nil, err
	}
	available := make([]StockItem, 0, len(all))
	for _, item := range all {
		if item.Status == StockAvailable {
			available = append(available, item)
		}
	}
	return available, nil
}

func (s *stockService) UpdateStockStatus(ctx context.Context, id string, status StockStatus) (*StockItem, error) {
	switch status {
	case StockAvailable, StockReserved, StockSold:
	default:
		return nil, fmt.Errorf("unknown stock status %q", status)
	}

	var stock []StockItem
	if err := s.st.Get(ctx, store.KeyStock, &stock); err != nil {
		return nil, err
	}
	for i := range stock {
		if stock[i].ID == id {
			stock[i].Status = status
			if err := s.st.Put(ctx, store.KeyStock, stock); err != nil {
				return nil, err
			}
			return &stock[i], nil
		}
	}
	return nil, fmt.Errorf("stock item %q not found", id)
}
