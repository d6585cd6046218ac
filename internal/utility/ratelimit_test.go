package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedLimiterBurst(t *testing.T) {
	k, err := NewKeyedLimiter(3, 10)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.True(t, k.Allow("alice"), "request %d should pass", i+1)
	}
	assert.False(t, k.Allow("alice"))

	// Other callers have their own bucket.
	assert.True(t, k.Allow("bob"))
}

func TestKeyedLimiterEvictsOldKeys(t *testing.T) {
	k, err := NewKeyedLimiter(1, 1)
	require.NoError(t, err)

	assert.True(t, k.Allow("alice"))
	assert.False(t, k.Allow("alice"))

	assert.True(t, k.Allow("bob"))
	// alice was evicted, so she starts with a fresh bucket.
	assert.True(t, k.Allow("alice"))
}

func TestNewKeyedLimiterRejectsZeroCapacity(t *testing.T) {
	_, err := NewKeyedLimiter(1, 0)
	assert.Error(t, err)
}
