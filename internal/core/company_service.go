package core

import (
	"context"
	"fmt"

	"pohi-platform/internal/store"
)

// CompanyInput carries the directory form fields for a new company.
type CompanyInput struct {
	CompanyName   string
	Role          CompanyRole
	ContactPerson string
	Email         string
	Address       *Address
}

type CompanyService interface {
	// CreateCompany adds a directory entry. Role must be Customer or
	// Manufacturer; the two are mutually exclusive.
	CreateCompany(ctx context.Context, input CompanyInput) (*Company, error)

	// ListCompanies returns the full directory, optionally filtered by role
	// (empty role means no filter).
	ListCompanies(ctx context.Context, role CompanyRole) ([]Company, error)

	// GetCompany returns a single directory entry by id.
	GetCompany(ctx context.Context, id string) (*Company, error)

	// DeleteCompany removes a directory entry. Demand and stock records keep
	// their frozen company name attribution.
	DeleteCompany(ctx context.Context, id string) error
}

type companyService struct {
	st store.Store
}

// NewCompanyService constructs a CompanyService backed by the collection store.
func NewCompanyService(st store.Store) CompanyService {
	return &companyService{st: st}
}

func (s *companyService) CreateCompany(ctx context.Context, input CompanyInput) (*Company, error) {
	if input.CompanyName == "" {
		return nil, fmt.Errorf("company name is required")
	}
	if input.Role != RoleCustomer && input.Role != RoleManufacturer {
		return nil, fmt.Errorf("company role must be %s or %s, got %q", RoleCustomer, RoleManufacturer, input.Role)
	}

	company := Company{
		ID:            newID("comp"),
		CompanyName:   input.CompanyName,
		Role:          input.Role,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Address:       input.Address,
	}

	var companies []Company
	if err := s.st.Get(ctx, store.KeyCompanies, &companies); err != nil {
		return nil, err
	}
	companies = append(companies, company)
	if err := s.st.Put(ctx, store.KeyCompanies, companies); err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *companyService) ListCompanies(ctx context.Context, role CompanyRole) ([]Company, error) {
	var companies []Company
	if err := s.st.Get(ctx, store.KeyCompanies, &companies); err != nil {
		return nil, err
	}
	if role == "" {
		return companies, nil
	}
	filtered := make([]Company, 0, len(companies))
	for _, c := range companies {
		if c.Role == role {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *companyService) GetCompany(ctx context.Context, id string) (*Company, error) {
	var companies []Company
	if err := s.st.Get(ctx, store.KeyCompanies, &companies); err != nil {
		return nil, err
	}
	for i := range companies {
		if companies[i].ID == id {
			return &companies[i], nil
		}
	}
	return nil, fmt.Errorf("company %q not found", id)
}

func (s *companyService) DeleteCompany(ctx context.Context, id string) error {
	var companies []Company
	if err := s.st.Get(ctx, store.KeyCompanies, &companies); err != nil {
		return err
	}
	kept := companies[:0]
	found := false
	for _, c := range companies {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return fmt.Errorf("company %q not found", id)
	}
	return s.st.Put(ctx, store.KeyCompanies, kept)
}
