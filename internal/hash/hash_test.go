package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSeededHasher_Hash(t *testing.T) {
	t.Run("is deterministic for one instance", func(t *testing.T) {
		// Prepare
		h := NewSeededHasher[string]()

		// Execute
		a := h.Hash("some key")
		b := h.Hash("some key")

		// Check
		assert.Equal(t, a, b, "same key hashes the same")
	})

	t.Run("distributes over low order bits", func(t *testing.T) {
		// Prepare
		h := NewSeededHasher[int]()
		buckets := make(map[uint64]bool)

		// Execute
		for i := 0; i < 1024; i++ {
			buckets[h.Hash(i)&63] = true
		}

		// Check
		assert.Equal(t, 64, len(buckets), "1024 keys reach all 64 buckets")
	})
}

func TestSeededHasher_Equal(t *testing.T) {
	t.Run("matches key equality", func(t *testing.T) {
		// Prepare
		h := NewSeededHasher[string]()

		// Execute / Check
		assert.True(t, h.Equal("a", "a"), "equal keys are equal")
		assert.False(t, h.Equal("a", "b"), "different keys are not equal")
	})
}
