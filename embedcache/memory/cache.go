package memory

import (
	"context"
	"sync"

	"github.com/panoptisDev/panoptis-ai-app-chat/embedcache"
)

type memoryCache struct {
	options embedcache.Options
	vectors map[string][]float32
	mtx     sync.RWMutex
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]float32, bool, error) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	vec, ok := c.vectors[key]
	if !ok {
		return nil, false, nil
	}

	cpy := make([]float32, len(vec))
	copy(cpy, vec)

	return cpy, true, nil
}

func (c *memoryCache) Put(ctx context.Context, key string, vector []float32) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	cpy := make([]float32, len(vector))
	copy(cpy, vector)

	c.vectors[key] = cpy

	return nil
}

func NewCache(opts ...embedcache.Option) embedcache.Cache {
	options := embedcache.NewOptions(opts...)

	c := &memoryCache{
		options: options,
		vectors: map[string][]float32{},
		mtx:     sync.RWMutex{},
	}

	return c
}
