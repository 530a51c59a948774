package application

import "fmt"

// cacheKeyPrefix namespaces engine entries in a shared cache backend.
// The version segment lets a format change invalidate old entries by
// simply missing on them.
const cacheKeyPrefix = "compat:v1"

// CacheKey derives the deterministic result-cache key for a resolved
// (board, component) pair. The inputs must be catalog IDs, not raw user
// references, so that every alias of the same pair shares one entry.
func CacheKey(boardID, componentID string) string {
	return fmt.Sprintf("%s:%s:%s", cacheKeyPrefix, boardID, componentID)
}
