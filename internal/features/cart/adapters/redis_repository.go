package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront-gateway/internal/core/cache"
	"storefront-gateway/internal/features/cart/domain"
)

const cartKeyPrefix = "cart:"

// RedisCartRepository implements ports.CartRepository using the cache adaptation.
type RedisCartRepository struct {
	cache cache.Cache
	// ttl is refreshed on every save. 0 keeps carts forever.
	ttl time.Duration
}

// NewRedisCartRepository creates a new RedisCartRepository.
func NewRedisCartRepository(c cache.Cache, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{
		cache: c,
		ttl:   ttl,
	}
}

func cartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

// Load retrieves the cart from the cache.
func (r *RedisCartRepository) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	var cart domain.Cart
	if err := cache.GetJSON(ctx, r.cache, cartKey(sessionID), &cart); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return &domain.Cart{}, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return &cart, nil
}

// Save stores the cart in the cache.
func (r *RedisCartRepository) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	if err := cache.SetJSON(ctx, r.cache, cartKey(sessionID), cart, r.ttl); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Delete removes the cart from the cache.
func (r *RedisCartRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.cache.Delete(ctx, cartKey(sessionID)); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
