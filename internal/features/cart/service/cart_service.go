package service

import (
	"context"
	"fmt"

	"storefront-gateway/internal/features/cart/domain"
	"storefront-gateway/internal/features/cart/ports"
)

// CartService loads, mutates and saves shopper carts.
type CartService struct {
	repo     ports.CartRepository
	products ports.ProductLookup
	locks    *sessionLocks
}

// NewCartService creates a new CartService.
func NewCartService(repo ports.CartRepository, products ports.ProductLookup) *CartService {
	return &CartService{
		repo:     repo,
		products: products,
		locks:    newSessionLocks(),
	}
}

// Get returns the session's cart.
func (s *CartService) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get cart: %w", err)
	}
	return cart, nil
}

// AddProduct adds quantity units of productID, copying name, price and image from the catalog.
func (s *CartService) AddProduct(ctx context.Context, sessionID string, productID, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	item := domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  quantity,
		ImageURL:  product.ImageURL(),
	}

	return s.mutate(ctx, sessionID, func(c *domain.Cart) error {
		return c.AddItem(item)
	})
}

// UpdateQuantity sets the quantity of productID; zero or less removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(c *domain.Cart) error {
		c.UpdateQuantity(productID, quantity)
		return nil
	})
}

// RemoveItem removes productID from the cart.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID int) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(c *domain.Cart) error {
		c.RemoveItem(productID)
		return nil
	})
}

// Clear empties the session's cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("service: failed to clear cart: %w", err)
	}
	return nil
}

// RemoveOrdered takes the ordered lines out of the session's cart. Anything
// the shopper added after the order snapshot stays; an emptied cart is deleted.
func (s *CartService) RemoveOrdered(ctx context.Context, sessionID string, ordered []domain.CartItem) error {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("service: failed to load cart: %w", err)
	}

	cart.Deduct(ordered)
	if cart.IsEmpty() {
		err = s.repo.Delete(ctx, sessionID)
	} else {
		err = s.repo.Save(ctx, sessionID, cart)
	}
	if err != nil {
		return fmt.Errorf("service: failed to clear ordered items: %w", err)
	}
	return nil
}

// mutate runs fn on the session's cart under the session lock and saves the result.
func (s *CartService) mutate(ctx context.Context, sessionID string, fn func(*domain.Cart) error) (*domain.Cart, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}

	if err := fn(cart); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("service: failed to save cart: %w", err)
	}
	return cart, nil
}
