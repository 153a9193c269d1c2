package service

import (
	"context"
	"errors"
	"fmt"

	auth "storefront-gateway/internal/features/auth/domain"
	cart "storefront-gateway/internal/features/cart/domain"
	"storefront-gateway/internal/features/checkout/domain"
	"storefront-gateway/internal/features/checkout/ports"
	orders "storefront-gateway/internal/features/orders/domain"
	ordersvc "storefront-gateway/internal/features/orders/service"
	shipping "storefront-gateway/internal/features/shipping/domain"
	shipservice "storefront-gateway/internal/features/shipping/service"
	storecart "storefront-gateway/internal/features/storecart/domain"

	"go.uber.org/zap"
)

// SyncReport is what the shopper learns about a cart sync.
type SyncReport struct {
	// Converged is false when some lines could not be removed or added.
	Converged        bool                 `json:"converged"`
	RemovalFailures  int                  `json:"removal_failures"`
	AdditionFailures int                  `json:"addition_failures"`
	Totals           storecart.Totals     `json:"totals"`
	Shipping         shipservice.Snapshot `json:"shipping"`
}

// CheckoutService drives the checkout of every shopper session: cart sync,
// shipping quotes and order placement.
type CheckoutService struct {
	registry *Registry
	carts    ports.CartStore
	orders   ports.OrderPlacer
	users    ports.UserResolver
	log      *zap.Logger
}

// NewCheckoutService creates a new CheckoutService. users may be nil when
// logins are disabled.
func NewCheckoutService(registry *Registry, carts ports.CartStore, placer ports.OrderPlacer, users ports.UserResolver, log *zap.Logger) *CheckoutService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CheckoutService{
		registry: registry,
		carts:    carts,
		orders:   placer,
		users:    users,
		log:      log,
	}
}

// Start replays the local cart onto the server cart and opens the shipping
// gate. It may be called again to resync after the cart changed. A session
// that already placed its order is replaced by a fresh one.
func (s *CheckoutService) Start(ctx context.Context, sessionID string) (*SyncReport, error) {
	session, err := s.registry.Open(sessionID, true)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.Closed() {
		return nil, domain.ErrSessionClosed
	}

	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}
	if c.IsEmpty() {
		return nil, orders.ErrEmptyCart
	}

	res, err := session.sync.Sync(ctx, desiredItems(c))
	if err != nil {
		return nil, err
	}

	session.started.Store(true)
	session.resolver.MarkSynced(res.Session)

	report := &SyncReport{
		Converged:        res.Converged(),
		RemovalFailures:  res.RemovalFailures,
		AdditionFailures: res.AdditionFailures,
		Shipping:         session.resolver.Snapshot(),
	}
	if res.Session != nil {
		report.Totals = res.Session.Totals
	}
	return report, nil
}

// UpdateAddress records the shopper's address and schedules a shipping quote
// when the address is calculable. The address may arrive before Start; it is
// quoted once the cart is synced.
func (s *CheckoutService) UpdateAddress(sessionID string, address shipping.Address) (shipservice.Snapshot, error) {
	session, err := s.registry.Open(sessionID, false)
	if err != nil {
		return shipservice.Snapshot{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.Closed() {
		return shipservice.Snapshot{}, domain.ErrSessionClosed
	}

	session.resolver.UpdateAddress(address)
	return session.resolver.Snapshot(), nil
}

// Shipping returns the current shipping state for polling.
func (s *CheckoutService) Shipping(sessionID string) (shipservice.Snapshot, error) {
	session, ok := s.registry.Lookup(sessionID)
	if !ok {
		return shipservice.Snapshot{}, domain.ErrNotStarted
	}
	return session.resolver.Snapshot(), nil
}

// SelectRate selects a shipping rate on the server cart.
func (s *CheckoutService) SelectRate(ctx context.Context, sessionID string, packageID int, rateID string) (shipservice.Snapshot, error) {
	session, err := s.live(sessionID)
	if err != nil {
		return shipservice.Snapshot{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.Closed() {
		return shipservice.Snapshot{}, domain.ErrSessionClosed
	}

	return session.resolver.SelectRate(ctx, packageID, rateID)
}

// PlaceOrder submits the order built from the local cart, the recorded
// address and the selected rate. The shipping quote for the current address
// must have come back, with or without rates. On success the ordered lines
// leave the cart and the session is closed; on failure nothing changes.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID string) (*orders.Order, error) {
	session, err := s.live(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.Closed() {
		return nil, domain.ErrSessionClosed
	}

	address := session.resolver.Address()
	snap := session.resolver.Snapshot()
	// An incomplete address is left to order validation, which names the problem.
	if address.Calculable() && !snap.State.Quoted() {
		return nil, domain.ErrShippingPending
	}

	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}

	order, err := s.orders.PlaceOrder(ctx, ordersvc.PlaceOrderRequest{
		Cart:       c,
		Address:    address,
		Packages:   snap.Packages,
		CustomerID: s.customerID(ctx, sessionID),
	})
	if err != nil {
		return nil, err
	}

	session.closed.Store(true)
	session.stop()

	if err := s.carts.RemoveOrdered(ctx, sessionID, c.Items); err != nil {
		s.log.Error("Order placed but cart could not be cleared",
			zap.String("session_id", sessionID), zap.Int("order_id", order.ID), zap.Error(err))
	}
	s.log.Info("Order placed", zap.String("session_id", sessionID), zap.Int("order_id", order.ID))
	return order, nil
}

// live returns a session whose cart was synced.
func (s *CheckoutService) live(sessionID string) (*Session, error) {
	session, ok := s.registry.Lookup(sessionID)
	if !ok || !session.Started() {
		return nil, domain.ErrNotStarted
	}
	return session, nil
}

func (s *CheckoutService) customerID(ctx context.Context, sessionID string) int {
	if s.users == nil {
		return 0
	}
	user, err := s.users.CurrentUser(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, auth.ErrNotAuthenticated) {
			s.log.Warn("Failed to resolve user, placing guest order",
				zap.String("session_id", sessionID), zap.Error(err))
		}
		return 0
	}
	return user.ID
}

func desiredItems(c *cart.Cart) []storecart.DesiredItem {
	items := make([]storecart.DesiredItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, storecart.DesiredItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return items
}
