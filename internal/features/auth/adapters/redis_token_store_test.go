package adapter

import (
	"context"
	"testing"
	"time"

	"storefront-gateway/internal/core/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisTokenStore(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	store := NewRedisTokenStore(c)
	ctx := context.Background()

	token, err := store.Load(ctx, "sid-1")
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save(ctx, "sid-1", "jwt-token", time.Hour))
	assert.Equal(t, time.Hour, mr.TTL("auth:token:sid-1"))

	token, err = store.Load(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)

	require.NoError(t, store.Delete(ctx, "sid-1"))
	require.NoError(t, store.Delete(ctx, "sid-1"))
	assert.False(t, mr.Exists("auth:token:sid-1"))
}
