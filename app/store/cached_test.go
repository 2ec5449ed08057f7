package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCached_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("caches on first read, returns cached on second", func(t *testing.T) {
		cached, err := NewCached(newTestStore(t), 100)
		require.NoError(t, err)

		require.NoError(t, cached.Set(ctx, "c1", "theme", "light"))

		val, err := cached.Get(ctx, "c1", "theme")
		require.NoError(t, err)
		assert.Equal(t, "light", val)
		stats := cached.Stats()
		assert.Equal(t, int64(1), stats.Misses)
		assert.Equal(t, int64(0), stats.Hits)

		val, err = cached.Get(ctx, "c1", "theme")
		require.NoError(t, err)
		assert.Equal(t, "light", val)
		stats = cached.Stats()
		assert.Equal(t, int64(1), stats.Misses)
		assert.Equal(t, int64(1), stats.Hits)
	})

	t.Run("invalidates cache on Set", func(t *testing.T) {
		cached, err := NewCached(newTestStore(t), 100)
		require.NoError(t, err)

		require.NoError(t, cached.Set(ctx, "c1", "theme", "light"))
		_, err = cached.Get(ctx, "c1", "theme")
		require.NoError(t, err)

		require.NoError(t, cached.Set(ctx, "c1", "theme", "dark"))
		val, err := cached.Get(ctx, "c1", "theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", val)
	})

	t.Run("missing key passes ErrNotFound through", func(t *testing.T) {
		cached, err := NewCached(newTestStore(t), 100)
		require.NoError(t, err)

		_, err = cached.Get(ctx, "nobody", "theme")
		require.ErrorIs(t, err, ErrNotFound)

		// the miss is not remembered
		require.NoError(t, cached.Set(ctx, "nobody", "theme", "dark"))
		val, err := cached.Get(ctx, "nobody", "theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", val)
	})

	t.Run("keys of different scopes do not collide", func(t *testing.T) {
		cached, err := NewCached(newTestStore(t), 100)
		require.NoError(t, err)

		require.NoError(t, cached.Set(ctx, "a", "theme", "light"))
		require.NoError(t, cached.Set(ctx, "b", "theme", "dark"))
		va, err := cached.Get(ctx, "a", "theme")
		require.NoError(t, err)
		vb, err := cached.Get(ctx, "b", "theme")
		require.NoError(t, err)
		assert.Equal(t, "light", va)
		assert.Equal(t, "dark", vb)
	})
}

// writeRaceBackend reads through the cache while its Set is in progress, the way a concurrent request would.
type writeRaceBackend struct {
	*Store
	cached *Cached
}

func (b *writeRaceBackend) Set(ctx context.Context, scope, key, value string) error {
	if _, err := b.cached.Get(ctx, scope, key); err != nil {
		return err
	}
	return b.Store.Set(ctx, scope, key, value)
}

func TestCached_SetDropsValueLoadedDuringWrite(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	require.NoError(t, st.Set(ctx, "c1", "theme", "dark"))

	backend := &writeRaceBackend{Store: st}
	cached, err := NewCached(backend, 10)
	require.NoError(t, err)
	backend.cached = cached

	require.NoError(t, cached.Set(ctx, "c1", "theme", "light"))
	val, err := cached.Get(ctx, "c1", "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", val, "old value loaded while writing is not served")
}
