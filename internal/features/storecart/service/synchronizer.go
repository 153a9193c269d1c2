package service

import (
	"context"
	"fmt"

	"storefront-gateway/internal/features/storecart/domain"
	"storefront-gateway/internal/features/storecart/ports"

	"go.uber.org/zap"
)

// Synchronizer makes the store's server cart mirror the shopper's local cart.
// The Store API has no replace-cart operation, so the server cart is cleared
// and the local lines are replayed one request at a time.
type Synchronizer struct {
	store ports.StoreCart
	log   *zap.Logger
}

// NewSynchronizer creates a Synchronizer over one session's store cart.
func NewSynchronizer(store ports.StoreCart, log *zap.Logger) *Synchronizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Synchronizer{store: store, log: log}
}

// FetchSession returns the current server cart.
func (s *Synchronizer) FetchSession(ctx context.Context) (*domain.RemoteCartSession, error) {
	session, err := s.store.GetCart(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart session: %w", err)
	}
	return session, nil
}

// Sync replays items onto the server cart. Only the initial fetch is fatal;
// failed removals and additions are logged, counted and skipped.
func (s *Synchronizer) Sync(ctx context.Context, items []domain.DesiredItem) (*domain.SyncResult, error) {
	session, err := s.FetchSession(ctx)
	if err != nil {
		return nil, err
	}

	result := &domain.SyncResult{}

	for _, item := range session.Items {
		if _, err := s.store.RemoveItem(ctx, item.Key); err != nil {
			result.RemovalFailures++
			s.log.Warn("Failed to remove server cart item",
				zap.String("key", item.Key),
				zap.Int("product_id", item.ProductID),
				zap.Error(err),
			)
		}
	}

	// Re-fetch so additions start from the post-removal state and pick up
	// any credentials rotated during removal.
	if refreshed, err := s.store.GetCart(ctx); err != nil {
		s.log.Warn("Failed to re-fetch cart after clearing", zap.Error(err))
	} else {
		session = refreshed
	}

	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		updated, err := s.store.AddItem(ctx, item.ProductID, item.Quantity)
		if err != nil {
			result.AdditionFailures++
			s.log.Warn("Failed to add item to server cart",
				zap.Int("product_id", item.ProductID),
				zap.Int("quantity", item.Quantity),
				zap.Error(err),
			)
			continue
		}
		session = updated
	}

	result.Session = session

	s.log.Info("Cart synchronized",
		zap.Int("items", len(session.Items)),
		zap.Int("removal_failures", result.RemovalFailures),
		zap.Int("addition_failures", result.AdditionFailures),
	)

	return result, nil
}
