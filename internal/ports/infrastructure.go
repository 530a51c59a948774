package ports

import (
	"context"
	"time"
)

// CacheStore caches serialized compatibility checks keyed by a
// deterministic string derived from the resolved board and component IDs.
// Implementations could use an in-process TTL map, Redis, or Memcached.
//
// The cache is best-effort: implementations may fail, but the engine
// treats every cache error as a miss or a no-op and never surfaces it to
// the caller. No correctness depends on cache presence.
type CacheStore interface {
	// Get retrieves a cached value by key.
	// Returns the value and true if found, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live.
	// A zero ttl means the entry does not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache.
	// Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// MetricsCollector records operational metrics for the engine.
// Implementations should integrate with observability platforms like
// Prometheus or OpenTelemetry.
type MetricsCollector interface {
	// RecordCheck records one completed compatibility check with its
	// outcome ("compatible" or "incompatible") and final score.
	RecordCheck(outcome string, score int)

	// RecordCacheHit counts a result-cache lookup, hit or miss.
	RecordCacheHit(hit bool)

	// RecordLatency records the wall-clock duration of an engine
	// operation such as "check" or "bulk_check".
	RecordLatency(operation string, duration time.Duration)
}
