package adapter

import (
	"context"
	"fmt"

	"storefront-gateway/internal/core/wcapi"
	"storefront-gateway/internal/features/account/domain"
	shipping "storefront-gateway/internal/features/shipping/domain"
)

// WooCommerceAdapter implements ports.CustomerProvider with the /customers endpoints.
type WooCommerceAdapter struct {
	api *wcapi.Client
}

// NewWooCommerceAdapter creates a new WooCommerceAdapter.
func NewWooCommerceAdapter(api *wcapi.Client) *WooCommerceAdapter {
	return &WooCommerceAdapter{api: api}
}

// GetCustomer fetches customer id.
func (a *WooCommerceAdapter) GetCustomer(ctx context.Context, id int) (*domain.Customer, error) {
	var out wcCustomer
	if err := a.api.Get(ctx, fmt.Sprintf("/customers/%d", id), nil, &out); err != nil {
		if wcapi.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %d", domain.ErrCustomerNotFound, id)
		}
		return nil, err
	}
	return out.toDomain(), nil
}

// UpdateCustomer writes names and addresses of customer id and returns the stored record.
func (a *WooCommerceAdapter) UpdateCustomer(ctx context.Context, id int, update domain.CustomerUpdate) (*domain.Customer, error) {
	body := wcCustomerUpdate{
		FirstName: update.FirstName,
		LastName:  update.LastName,
	}
	if update.Billing != nil {
		b := fromDomain(*update.Billing, true)
		body.Billing = &b
	}
	if update.Shipping != nil {
		s := fromDomain(*update.Shipping, false)
		body.Shipping = &s
	}

	var out wcCustomer
	if err := a.api.Put(ctx, fmt.Sprintf("/customers/%d", id), body, &out); err != nil {
		if wcapi.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %d", domain.ErrCustomerNotFound, id)
		}
		return nil, err
	}
	return out.toDomain(), nil
}

type wcCustomer struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Username  string    `json:"username"`
	Billing   wcAddress `json:"billing"`
	Shipping  wcAddress `json:"shipping"`
}

func (c wcCustomer) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:        c.ID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Username:  c.Username,
		Billing:   c.Billing.toDomain(),
		Shipping:  c.Shipping.toDomain(),
	}
}

type wcCustomerUpdate struct {
	FirstName string     `json:"first_name,omitempty"`
	LastName  string     `json:"last_name,omitempty"`
	Billing   *wcAddress `json:"billing,omitempty"`
	Shipping  *wcAddress `json:"shipping,omitempty"`
}

// wcAddress is the customer address shape. Shipping addresses carry no email.
type wcAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

func fromDomain(a shipping.Address, billing bool) wcAddress {
	out := wcAddress{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Address1:  a.Address1,
		City:      a.City,
		State:     a.StateCode,
		Postcode:  a.PostalCode,
		Country:   a.Country,
		Phone:     a.Phone,
	}
	if billing {
		out.Email = a.Email
	}
	return out
}

func (a wcAddress) toDomain() shipping.Address {
	return shipping.Address{
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Address1:   a.Address1,
		City:       a.City,
		StateCode:  a.State,
		PostalCode: a.Postcode,
		Country:    a.Country,
		Phone:      a.Phone,
		Email:      a.Email,
	}
}
