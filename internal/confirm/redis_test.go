package confirm

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore(t *testing.T) {
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 and REDIS_ADDRESS to run integration tests (requires redis)")
	}
	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		t.Skip("REDIS_ADDRESS is not set")
	}

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(ctx).Err())

	s := NewRedisStore(rdb, time.Minute)
	productID := "it-" + time.Now().Format("150405.000000")

	token, err := s.Issue(ctx, productID)
	require.NoError(t, err)

	ok, err := s.Verify(ctx, productID, "forged")
	require.NoError(t, err)
	assert.False(t, ok)

	ttl, err := rdb.TTL(ctx, keyPrefix+productID).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	ok, err = s.Verify(ctx, productID, token)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Verify(ctx, productID, token)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Revoke(ctx, productID))
	ok, err = s.Verify(ctx, productID, token)
	require.NoError(t, err)
	assert.False(t, ok)
}
