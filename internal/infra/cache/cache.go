package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
	"golang.org/x/sync/singleflight"
)

// Cache is a generic TTL cache.
type Cache interface {
	Get(ctx context.Context, key string) (any, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration) bool
	Delete(ctx context.Context, key string)
	GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error)
}

type Config struct {
	MaxCost     int64
	NumCounters int64
	BufferItems int64
}

func DefaultConfig() *Config {
	return &Config{
		MaxCost:     1 << 26, // 64MB
		NumCounters: 1e6,
		BufferItems: 64,
	}
}

var _ Cache = (*RistrettoCache)(nil)

// RistrettoCache backs Cache with an in-process ristretto store. Loads
// through GetOrSet are deduplicated with singleflight so concurrent
// misses for one key trigger a single loader call.
type RistrettoCache struct {
	store       *ristretto.Cache
	singleGroup singleflight.Group
}

func New(config *Config) (*RistrettoCache, error) {
	if config == nil {
		config = DefaultConfig()
	}

	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: config.NumCounters,
		MaxCost:     config.MaxCost,
		BufferItems: config.BufferItems,
	})
	if err != nil {
		return nil, err
	}

	cache := &RistrettoCache{store: store}
	cache.store.Wait()

	return cache, nil
}

func (c *RistrettoCache) Get(ctx context.Context, key string) (any, bool) {
	if ctx.Err() != nil {
		return nil, false
	}
	return c.store.Get(key)
}

func (c *RistrettoCache) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if !c.store.SetWithTTL(key, value, 1, ttl) {
		return false
	}
	// Make the write visible immediately; ristretto applies sets
	// asynchronously otherwise.
	c.store.Wait()
	return true
}

func (c *RistrettoCache) Delete(ctx context.Context, key string) {
	if ctx.Err() != nil {
		return
	}
	c.store.Del(key)
}

func (c *RistrettoCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}

	value, err, _ := c.singleGroup.Do(key, func() (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if value, found := c.Get(ctx, key); found {
			return value, nil
		}

		value, err := loader()
		if err != nil {
			return nil, err
		}

		c.Set(ctx, key, value, ttl)
		return value, nil
	})

	return value, err
}
