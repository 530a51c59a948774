package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "compat:v1:arduino-uno:hc-sr04", CacheKey("arduino-uno", "hc-sr04"))

	// Deterministic: same inputs, same key.
	assert.Equal(t, CacheKey("b1", "c1"), CacheKey("b1", "c1"))

	// Order matters: the board and component segments are positional.
	assert.NotEqual(t, CacheKey("b1", "c1"), CacheKey("c1", "b1"))

	// Distinct pairs get distinct keys.
	assert.NotEqual(t, CacheKey("b1", "c1"), CacheKey("b1", "c2"))
	assert.NotEqual(t, CacheKey("b1", "c1"), CacheKey("b2", "c1"))
}
