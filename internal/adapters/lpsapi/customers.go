package lpsapi

import (
	"context"
	"net/http"
	"net/url"

	"lps-admin/internal/core/domain"
)

// ListCustomers returns every registered customer
func (c *Client) ListCustomers(ctx context.Context, sess *domain.Session) (ListResult[domain.Customer], error) {
	raw, err := c.do(ctx, sess, http.MethodGet, "/customers", nil)
	if err != nil {
		return ListResult[domain.Customer]{}, err
	}
	return DecodeList[domain.Customer](raw, "customers"), nil
}

// GetCustomer fetches one customer
func (c *Client) GetCustomer(ctx context.Context, sess *domain.Session, id domain.ID) (*domain.Customer, error) {
	raw, err := c.do(ctx, sess, http.MethodGet, "/customers/"+url.PathEscape(id.String()), nil)
	if err != nil {
		return nil, err
	}
	customer, err := DecodeOne[domain.Customer](raw)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// CreateCustomer registers a customer
func (c *Client) CreateCustomer(ctx context.Context, sess *domain.Session, in domain.CreateCustomerInput) (*domain.Customer, error) {
	raw, err := c.do(ctx, sess, http.MethodPost, "/customers", in)
	if err != nil {
		return nil, err
	}
	customer, err := DecodeOne[domain.Customer](raw)
	if err != nil || customer.Key().IsZero() {
		customer = domain.Customer{Name: in.Name, NIK: in.NIK, Address: in.Address, Phone: in.Phone}
	}
	return &customer, nil
}
