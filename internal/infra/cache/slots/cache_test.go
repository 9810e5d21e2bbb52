package slots

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/curbside-pickup/pkg/types"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, time.Minute), mr
}

func TestCache_SetGetInvalidate(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	_, found, err := cache.GetOccupied(ctx, date)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.SetOccupied(ctx, date, []types.TimeString{"11:00", "13:30"}))
	assert.True(t, mr.Exists("slots:occupied:2025-03-17"))
	assert.Equal(t, time.Minute, mr.TTL("slots:occupied:2025-03-17"))

	occupied, found, err := cache.GetOccupied(ctx, date)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []types.TimeString{"11:00", "13:30"}, occupied)

	require.NoError(t, cache.Invalidate(ctx, date))
	_, found, err = cache.GetOccupied(ctx, date)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_EmptySetIsAHit(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC)

	require.NoError(t, cache.SetOccupied(ctx, date, nil))

	occupied, found, err := cache.GetOccupied(ctx, date)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, occupied)
}

func TestCache_Expires(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC)

	require.NoError(t, cache.SetOccupied(ctx, date, []types.TimeString{"12:00"}))
	mr.FastForward(2 * time.Minute)

	_, found, err := cache.GetOccupied(ctx, date)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_ServerDown(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	_, _, err := cache.GetOccupied(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrCacheRead)
}

func TestCache_NilIsDisabled(t *testing.T) {
	var cache *Cache
	ctx := context.Background()

	_, found, err := cache.GetOccupied(ctx, time.Now())
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, cache.SetOccupied(ctx, time.Now(), []types.TimeString{"11:00"}))
	assert.NoError(t, cache.Invalidate(ctx, time.Now()))
}
