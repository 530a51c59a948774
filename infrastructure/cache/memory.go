// Package cache provides CacheStore implementations for the result cache.
package cache

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/SaiAkhilM/protobuddy/internal/ports"
)

var _ ports.CacheStore = (*MemoryCache)(nil)

// MemoryCache is an in-process TTL cache backed by patrickmn/go-cache.
// It is the default result cache for single-process deployments; a
// shared backend (Redis, Memcached) can replace it behind the same
// interface without touching the engine.
//
// MemoryCache is safe for concurrent use.
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a MemoryCache. defaultTTL applies to entries
// stored with a zero ttl; cleanupInterval controls how often expired
// entries are purged.
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{store: gocache.New(defaultTTL, cleanupInterval)}
}

// Get retrieves a cached value by key.
func (mc *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, found := mc.store.Get(key)
	if !found {
		return nil, false, nil
	}
	data, ok := v.([]byte)
	if !ok {
		// A foreign value under our key; report corrupt rather than
		// returning garbage.
		return nil, false, fmt.Errorf("cache entry for %q is not a byte slice", key)
	}
	return data, true, nil
}

// Set stores a value with the given time-to-live. A zero ttl falls back
// to the cache's default expiration.
func (mc *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	mc.store.Set(key, value, ttl)
	return nil
}

// Delete removes a value from the cache. Deleting an absent key is a
// no-op.
func (mc *MemoryCache) Delete(_ context.Context, key string) error {
	mc.store.Delete(key)
	return nil
}

// Flush removes every entry. Intended for tests and explicit
// invalidation.
func (mc *MemoryCache) Flush() { mc.store.Flush() }
