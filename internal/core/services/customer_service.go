package services

import (
	"context"

	"lps-admin/internal/core/domain"
)

// CustomerService handles customer operations
type CustomerService struct {
	api CustomerAPI
}

// NewCustomerService creates a new customer service
func NewCustomerService(api CustomerAPI) *CustomerService {
	return &CustomerService{api: api}
}

// CustomerRow is a customer decorated for the customers table
type CustomerRow struct {
	domain.Customer
	Key            domain.ID `json:"key"`
	DisplayName    string    `json:"display_name"`
	CreatedAtLabel string    `json:"created_at_label"`
}

func newCustomerRow(c domain.Customer) CustomerRow {
	return CustomerRow{
		Customer:       c,
		Key:            c.Key(),
		DisplayName:    c.DisplayName(),
		CreatedAtLabel: domain.FormatDate(c.CreatedAt),
	}
}

// List returns every customer
func (s *CustomerService) List(ctx context.Context, sess *domain.Session) (*ListView[CustomerRow], error) {
	res, err := s.api.ListCustomers(ctx, sess)
	if err != nil {
		return nil, err
	}

	rows := make([]CustomerRow, 0, len(res.Items))
	for _, c := range res.Items {
		rows = append(rows, newCustomerRow(c))
	}
	return &ListView[CustomerRow]{Items: rows, Warnings: appendWarning(nil, res.Warning)}, nil
}

// Get returns one customer
func (s *CustomerService) Get(ctx context.Context, sess *domain.Session, id domain.ID) (*CustomerRow, error) {
	c, err := s.api.GetCustomer(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	row := newCustomerRow(*c)
	return &row, nil
}

// Create registers a customer after checking the form
func (s *CustomerService) Create(ctx context.Context, sess *domain.Session, input domain.CreateCustomerInput) (*CustomerRow, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	c, err := s.api.CreateCustomer(ctx, sess, input)
	if err != nil {
		return nil, err
	}
	row := newCustomerRow(*c)
	return &row, nil
}
