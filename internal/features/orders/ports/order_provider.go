package ports

import (
	"context"

	"storefront-gateway/internal/features/orders/domain"
)

// OrderProvider defines the interface for reading and placing store orders.
// This is a Secondary Port (Driven Port).
type OrderProvider interface {
	// GetOrder retrieves an order by its WooCommerce Order ID.
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	// ListOrders returns the most recent orders matching filter.
	ListOrders(ctx context.Context, filter domain.ListFilter) ([]domain.Order, error)
	// CreateOrder submits draft and returns the order as stored.
	CreateOrder(ctx context.Context, draft *domain.Draft) (*domain.Order, error)
	// HealthCheck verifies the API is reachable and the credentials are valid.
	HealthCheck(ctx context.Context) error
}
