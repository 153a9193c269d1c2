package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront-gateway/internal/core/cache"
	"storefront-gateway/internal/features/catalog/domain"
	"storefront-gateway/internal/features/catalog/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	productsCacheKey = "catalog:products"
	productKeyPrefix = "catalog:product:"
)

// CatalogService serves products through a read-through cache.
type CatalogService struct {
	provider ports.ProductProvider
	cache    cache.Cache
	ttl      time.Duration
	sfg      singleflight.Group // collapses concurrent misses for the same key
	log      *zap.Logger
}

// NewCatalogService creates a new CatalogService. A nil cache disables caching.
func NewCatalogService(provider ports.ProductProvider, c cache.Cache, ttl time.Duration, log *zap.Logger) *CatalogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogService{
		provider: provider,
		cache:    c,
		ttl:      ttl,
		log:      log,
	}
}

// ListProducts returns the published products, optionally filtered by category slug.
func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	v, err, _ := s.sfg.Do(productsCacheKey, func() (any, error) {
		var products []domain.Product
		if s.readCache(ctx, productsCacheKey, &products) {
			return products, nil
		}

		products, err := s.provider.ListProducts(ctx)
		if err != nil {
			return nil, err
		}

		s.writeCache(ctx, productsCacheKey, products)
		return products, nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}

	products := v.([]domain.Product)
	if category == "" {
		return products, nil
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.InCategory(category) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetProduct returns one product or domain.ErrProductNotFound.
func (s *CatalogService) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	key := fmt.Sprintf("%s%d", productKeyPrefix, id)

	v, err, _ := s.sfg.Do(key, func() (any, error) {
		var product domain.Product
		if s.readCache(ctx, key, &product) {
			return &product, nil
		}

		p, err := s.provider.GetProduct(ctx, id)
		if err != nil {
			return nil, err
		}

		s.writeCache(ctx, key, p)
		return p, nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: failed to get product: %w", err)
	}

	// Shared between singleflight callers; hand out a copy.
	product := *v.(*domain.Product)
	return &product, nil
}

// readCache reports a hit. Cache failures other than a miss are logged and treated as a miss.
func (s *CatalogService) readCache(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	err := cache.GetJSON(ctx, s.cache, key, out)
	if err == nil {
		return true
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.log.Warn("Catalog cache read failed", zap.String("key", key), zap.Error(err))
	}
	return false
}

func (s *CatalogService) writeCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := cache.SetJSON(ctx, s.cache, key, value, s.ttl); err != nil {
		s.log.Warn("Catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}
