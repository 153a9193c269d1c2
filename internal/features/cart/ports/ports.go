package ports

import (
	"context"

	"storefront-gateway/internal/features/cart/domain"
	catalog "storefront-gateway/internal/features/catalog/domain"
)

// CartRepository defines the secondary port for cart storage.
type CartRepository interface {
	// Load returns the session's cart, or an empty cart when none was saved.
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// ProductLookup resolves the product data copied into a cart line.
type ProductLookup interface {
	GetProduct(ctx context.Context, id int) (*catalog.Product, error)
}

// CartService defines the primary port for cart operations.
type CartService interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	AddProduct(ctx context.Context, sessionID string, productID, quantity int) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, sessionID string, productID int) (*domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}
