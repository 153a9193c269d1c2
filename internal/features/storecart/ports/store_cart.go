package ports

import (
	"context"

	shipping "storefront-gateway/internal/features/shipping/domain"
	"storefront-gateway/internal/features/storecart/domain"
)

// StoreCart is the store's public cart API for one shopper session.
// Every call returns the cart as the server sees it after the call.
type StoreCart interface {
	// GetCart fetches the current cart, refreshing the session credentials.
	GetCart(ctx context.Context) (*domain.RemoteCartSession, error)
	// AddItem adds quantity units of a product.
	AddItem(ctx context.Context, productID, quantity int) (*domain.RemoteCartSession, error)
	// RemoveItem removes the line with the given server key.
	RemoveItem(ctx context.Context, key string) (*domain.RemoteCartSession, error)
	// UpdateCustomer pushes billing and shipping address, returning fresh shipping packages.
	UpdateCustomer(ctx context.Context, billing, shippingAddr shipping.Address) (*domain.RemoteCartSession, error)
	// SelectShippingRate marks a rate as chosen for a package.
	SelectShippingRate(ctx context.Context, packageID int, rateID string) (*domain.RemoteCartSession, error)
}
