package ports

import (
	"context"

	"storefront-gateway/internal/features/catalog/domain"
)

// ProductProvider retrieves products from the store.
// This is a Secondary Port (Driven Port).
type ProductProvider interface {
	// ListProducts returns every published product.
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// GetProduct returns one product or domain.ErrProductNotFound.
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
}
