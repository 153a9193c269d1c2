package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// GetJSON loads key and decodes it into out. A missing key yields ErrCacheMiss.
func GetJSON(ctx context.Context, c Cache, key string, out any) error {
	data, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes value and stores it under key.
func SetJSON(ctx context.Context, c Cache, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return c.Set(ctx, key, data, ttl)
}
