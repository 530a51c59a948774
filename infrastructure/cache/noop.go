package cache

import (
	"context"
	"time"

	"github.com/SaiAkhilM/protobuddy/internal/ports"
)

var _ ports.CacheStore = (*NoopCache)(nil)

// NoopCache is a CacheStore that stores nothing. Every Get is a miss and
// every write succeeds silently. Use it to run the engine cache-less:
// the checker treats misses as a signal to recompute, so correctness is
// unaffected.
type NoopCache struct{}

// NewNoopCache creates a NoopCache.
func NewNoopCache() *NoopCache { return &NoopCache{} }

// Get always misses.
func (*NoopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set discards the value.
func (*NoopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete is a no-op.
func (*NoopCache) Delete(context.Context, string) error { return nil }
