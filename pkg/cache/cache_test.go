package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	srv := miniredis.RunT(t)
	c := New(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
	t.Cleanup(func() { _ = c.Close() })
	return c, srv
}

func TestCache_SetGet(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "ns", "a", entry{Name: "a", Count: 2}, time.Minute))

	var got entry
	hit, err := c.Get(ctx, "ns", "a", &got)
	assert.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, entry{Name: "a", Count: 2}, got)

	hit, err = c.Get(ctx, "ns", "missing", &got)
	assert.NoError(t, err)
	assert.False(t, hit)

	srv.FastForward(2 * time.Minute)
	hit, err = c.Get(ctx, "ns", "a", &got)
	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_DeleteNamespace(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "fee_rule", "match:WITHDRAWAL:BTC", entry{Name: "btc"}, time.Minute))
	require.NoError(t, c.Set(ctx, "fee_rule", "match:DEPOSIT:ETH", entry{Name: "eth"}, time.Minute))
	require.NoError(t, c.Set(ctx, "other", "key", entry{Name: "keep"}, time.Minute))

	require.NoError(t, c.DeleteNamespace(ctx, "fee_rule"))

	assert.False(t, srv.Exists("fee_rule:match:WITHDRAWAL:BTC"))
	assert.False(t, srv.Exists("fee_rule:match:DEPOSIT:ETH"))
	assert.True(t, srv.Exists("other:key"))

	assert.NoError(t, c.DeleteNamespace(ctx, "empty"))
}

func TestCache_Ping(t *testing.T) {
	c, srv := newTestCache(t)
	assert.NoError(t, c.Ping(context.Background()))

	srv.Close()
	assert.Error(t, c.Ping(context.Background()))
}
