package domain

import (
	"errors"
	"strings"

	shipping "storefront-gateway/internal/features/shipping/domain"
)

// ErrCustomerNotFound is returned when the logged in user has no WooCommerce customer record.
var ErrCustomerNotFound = errors.New("customer not found")

// Customer is the WooCommerce customer record of a logged in shopper.
type Customer struct {
	ID        int              `json:"id"`
	Email     string           `json:"email"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Username  string           `json:"username"`
	Billing   shipping.Address `json:"billing"`
	Shipping  shipping.Address `json:"shipping"`
}

// CustomerUpdate holds the editable parts of a customer. Nil addresses are left untouched.
type CustomerUpdate struct {
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Billing   *shipping.Address `json:"billing,omitempty"`
	Shipping  *shipping.Address `json:"shipping,omitempty"`
}

// Normalize trims names and normalizes both addresses.
func (u CustomerUpdate) Normalize() CustomerUpdate {
	out := CustomerUpdate{
		FirstName: strings.TrimSpace(u.FirstName),
		LastName:  strings.TrimSpace(u.LastName),
	}
	if u.Billing != nil {
		b := u.Billing.Normalize()
		out.Billing = &b
	}
	if u.Shipping != nil {
		s := u.Shipping.Normalize()
		out.Shipping = &s
	}
	return out
}
