package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()
	defer cache.Stop()

	_, ok := cache.Get(ctx, "k")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", "v", 0))
	val, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)

	require.NoError(t, cache.Delete(ctx, "k"))
	_, ok = cache.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryCache()
	defer cache.Stop()
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "short", "v", time.Minute))
	require.NoError(t, cache.Set(ctx, "forever", "v", 0))

	now = now.Add(59 * time.Second)
	_, ok := cache.Get(ctx, "short")
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = cache.Get(ctx, "short")
	assert.False(t, ok)
	assert.Equal(t, 1, cache.size(), "expired entry is dropped on read")

	_, ok = cache.Get(ctx, "forever")
	assert.True(t, ok)
}

func TestMemoryCache_SweepDropsExpiredEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryCache()
	defer cache.Stop()
	cache.now = func() time.Time { return now }

	for i := 0; i < 1000; i++ {
		require.NoError(t, cache.Set(ctx, fmt.Sprintf("estimate:%d", i), "v", time.Minute))
	}
	require.NoError(t, cache.Set(ctx, "session", "v", 48*time.Hour+time.Minute))
	require.Equal(t, 1001, cache.size())

	now = now.Add(48 * time.Hour)
	cache.sweep()

	assert.Equal(t, 1, cache.size())
	_, ok := cache.Get(ctx, "session")
	assert.True(t, ok)
}

func TestMemoryCache_StopIsIdempotent(t *testing.T) {
	cache := NewMemoryCache()
	cache.Stop()
	assert.NotPanics(t, cache.Stop)
}
