package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	cart "storefront-gateway/internal/features/cart/domain"
	"storefront-gateway/internal/features/orders/domain"
	"storefront-gateway/internal/features/orders/ports"
	shipping "storefront-gateway/internal/features/shipping/domain"
)

// ErrOrderNotFound is returned when the order does not exist.
var ErrOrderNotFound = domain.ErrOrderNotFound

// ErrEmailMismatch is returned when the provided email does not match the order's email.
var ErrEmailMismatch = errors.New("email does not match order record")

// ErrInvalidOrderID is returned for ids that are not positive integers.
var ErrInvalidOrderID = errors.New("invalid order id")

// OrderService handles the business logic for placing, retrieving and validating orders.
type OrderService struct {
	// provider is the interface for reading and writing order data.
	provider ports.OrderProvider
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(provider ports.OrderProvider) *OrderService {
	return &OrderService{
		provider: provider,
	}
}

// GetOrder retrieves an order by ID and validates that the provided email matches the order's email.
func (s *OrderService) GetOrder(ctx context.Context, orderID, email string) (*domain.Order, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(orderID, "#"))
	if err != nil || id <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := s.provider.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if order == nil {
		return nil, ErrOrderNotFound
	}

	if !strings.EqualFold(strings.TrimSpace(order.Email()), strings.TrimSpace(email)) {
		return nil, ErrEmailMismatch
	}

	return order, nil
}

// ListOrders returns a shopper's latest orders, by customer id when known, else by billing email.
func (s *OrderService) ListOrders(ctx context.Context, customerID int, email string) ([]domain.Order, error) {
	orders, err := s.provider.ListOrders(ctx, domain.ListFilter{CustomerID: customerID, Email: email})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}

	// Fall back to the billing email for orders placed as guest before registering.
	if len(orders) == 0 && customerID > 0 && email != "" {
		orders, err = s.provider.ListOrders(ctx, domain.ListFilter{Email: email})
		if err != nil {
			return nil, fmt.Errorf("service: failed to list orders: %w", err)
		}
	}
	return orders, nil
}

// PlaceOrderRequest is the checkout state an order is built from.
type PlaceOrderRequest struct {
	Cart       *cart.Cart
	Address    shipping.Address
	Packages   []shipping.Package
	CustomerID int
}

// PlaceOrder validates the checkout state and submits the order. Upstream
// failures are returned as is so the store's message reaches the shopper.
func (s *OrderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*domain.Order, error) {
	draft, err := domain.NewDraft(req.Cart, req.Address, req.Packages, req.CustomerID)
	if err != nil {
		return nil, err
	}

	order, err := s.provider.CreateOrder(ctx, draft)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// HealthCheck verifies the store API at startup.
func (s *OrderService) HealthCheck(ctx context.Context) error {
	return s.provider.HealthCheck(ctx)
}
