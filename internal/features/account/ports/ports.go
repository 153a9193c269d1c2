package ports

import (
	"context"

	"storefront-gateway/internal/features/account/domain"
	auth "storefront-gateway/internal/features/auth/domain"
	orders "storefront-gateway/internal/features/orders/domain"
)

// CustomerProvider reads and writes WooCommerce customer records.
type CustomerProvider interface {
	GetCustomer(ctx context.Context, id int) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id int, update domain.CustomerUpdate) (*domain.Customer, error)
}

// OrderHistory lists past orders of a customer, falling back to the billing email.
type OrderHistory interface {
	ListOrders(ctx context.Context, customerID int, email string) ([]orders.Order, error)
}

// UserRefresher reloads the session's WordPress profile.
type UserRefresher interface {
	RefreshUser(ctx context.Context, sessionID string) (*auth.User, error)
}
