package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront-gateway/internal/core/cache"
)

const tokenKeyPrefix = "auth:token:"

// RedisTokenStore implements ports.TokenStore on the shared cache.
type RedisTokenStore struct {
	cache cache.Cache
}

// NewRedisTokenStore creates a new RedisTokenStore.
func NewRedisTokenStore(c cache.Cache) *RedisTokenStore {
	return &RedisTokenStore{cache: c}
}

// Load returns the session's token, or "" when none is stored.
func (s *RedisTokenStore) Load(ctx context.Context, sessionID string) (string, error) {
	data, err := s.cache.Get(ctx, tokenKeyPrefix+sessionID)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	return string(data), nil
}

// Save stores the token. ttl 0 keeps it until Delete.
func (s *RedisTokenStore) Save(ctx context.Context, sessionID, token string, ttl time.Duration) error {
	if err := s.cache.Set(ctx, tokenKeyPrefix+sessionID, []byte(token), ttl); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Delete removes the token. Deleting a missing token is not an error.
func (s *RedisTokenStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, tokenKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
