package memory

import (
	"context"
	"testing"

	"github.com/panoptisDev/panoptis-ai-app-chat/embedcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss returns not ok", func(t *testing.T) {
		cache := NewCache()

		vec, ok, err := cache.Get(ctx, embedcache.Key("features", "content"))

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, vec)
	})

	t.Run("put then get round trips", func(t *testing.T) {
		cache := NewCache()
		key := embedcache.Key("features", "content")

		require.NoError(t, cache.Put(ctx, key, []float32{1, 2, 3}))

		vec, ok, err := cache.Get(ctx, key)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []float32{1, 2, 3}, vec)
	})

	t.Run("stored vectors are isolated from the caller", func(t *testing.T) {
		cache := NewCache()
		key := embedcache.Key("features", "content")

		original := []float32{1, 2, 3}
		require.NoError(t, cache.Put(ctx, key, original))
		original[0] = 99

		vec, ok, err := cache.Get(ctx, key)

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []float32{1, 2, 3}, vec)
	})
}

func TestKey(t *testing.T) {
	t.Run("changes with content", func(t *testing.T) {
		assert.NotEqual(t, embedcache.Key("features", "a"), embedcache.Key("features", "b"))
	})

	t.Run("changes with id", func(t *testing.T) {
		assert.NotEqual(t, embedcache.Key("features", "a"), embedcache.Key("pricing", "a"))
	})

	t.Run("is stable", func(t *testing.T) {
		assert.Equal(t, embedcache.Key("features", "a"), embedcache.Key("features", "a"))
	})
}
