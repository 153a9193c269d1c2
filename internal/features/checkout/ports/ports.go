package ports

import (
	"context"

	auth "storefront-gateway/internal/features/auth/domain"
	cart "storefront-gateway/internal/features/cart/domain"
	orders "storefront-gateway/internal/features/orders/domain"
	ordersvc "storefront-gateway/internal/features/orders/service"
	storeports "storefront-gateway/internal/features/storecart/ports"
)

// CartStore is the shopper's local cart.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)
	RemoveOrdered(ctx context.Context, sessionID string, ordered []cart.CartItem) error
}

// OrderPlacer submits orders.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req ordersvc.PlaceOrderRequest) (*orders.Order, error)
}

// UserResolver returns the logged in user of a session, if any.
type UserResolver interface {
	CurrentUser(ctx context.Context, sessionID string) (*auth.User, error)
}

// StoreCartFactory opens a Store API client with its own credentials and
// cookies for one shopper session.
type StoreCartFactory interface {
	NewStoreCart(sessionID string) (storeports.StoreCart, error)
}
