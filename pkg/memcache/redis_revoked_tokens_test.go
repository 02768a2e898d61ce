package mem

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisRevokedTokens, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRevokedTokens(client), mr
}

func TestRedisRevokedTokens(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	require.NoError(t, store.Revoke(ctx, "live", time.Now().Add(time.Hour)))

	revoked, err := store.IsRevoked(ctx, "live")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.True(t, mr.Exists(revokedKeyPrefix+"live"))
	ttl := mr.TTL(revokedKeyPrefix + "live")
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Hour)

	revoked, err = store.IsRevoked(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevokedTokensSkipsExpired(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	require.NoError(t, store.Revoke(ctx, "stale", time.Now().Add(-time.Minute)))
	require.NoError(t, store.Revoke(ctx, "now", time.Now()))

	assert.False(t, mr.Exists(revokedKeyPrefix+"stale"))
	assert.False(t, mr.Exists(revokedKeyPrefix+"now"))
	assert.Empty(t, mr.Keys())
}

func TestRedisRevokedTokensExpire(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	require.NoError(t, store.Revoke(ctx, "short", time.Now().Add(time.Minute)))
	mr.FastForward(2 * time.Minute)

	revoked, err := store.IsRevoked(ctx, "short")
	require.NoError(t, err)
	assert.False(t, revoked)

	removed, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestRedisRevokedTokensUnavailable(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	_, err := store.IsRevoked(context.Background(), "any")
	assert.Error(t, err)
}
