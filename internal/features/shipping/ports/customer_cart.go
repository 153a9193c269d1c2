package ports

import (
	"context"

	"storefront-gateway/internal/features/shipping/domain"
	storecart "storefront-gateway/internal/features/storecart/domain"
)

// CustomerCart is the part of the server cart that quotes and selects shipping.
type CustomerCart interface {
	// UpdateCustomer stores the addresses on the server cart and returns the recalculated cart.
	UpdateCustomer(ctx context.Context, billing, shippingAddr domain.Address) (*storecart.RemoteCartSession, error)
	// SelectShippingRate selects rateID for packageID and returns the recalculated cart.
	SelectShippingRate(ctx context.Context, packageID int, rateID string) (*storecart.RemoteCartSession, error)
}
