package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestStore_Remove(t *testing.T) {
	t.Run("keeps colliding keys reachable after deleting from the middle of a run", func(t *testing.T) {
		// Prepare
		s := NewStore[int, int](8, 0, constantHasher{bucket: 0})
		for _, key := range []int{1, 2, 3, 4} {
			position, _ := s.Lookup(key)
			s.Insert(position, key, key*10)
		}

		position, found := s.Lookup(2)
		assert.True(t, found, "key 2 present before delete")

		// Execute
		s.Remove(position)

		// Check
		assert.Equal(t, 3, s.Count(), "one entry removed")
		_, found = s.Lookup(2)
		assert.False(t, found, "key 2 gone")
		for _, key := range []int{1, 3, 4} {
			position, found = s.Lookup(key)
			assert.Truef(t, found, "key %d still reachable from its ideal bucket", key)
			_, value := s.At(position)
			assert.Equalf(t, key*10, value, "key %d kept its value", key)
		}
	})

	t.Run("repairs a run that wraps around the end of the array", func(t *testing.T) {
		// Prepare
		s := NewStore[int, int](8, 0, constantHasher{bucket: 6})
		for _, key := range []int{1, 2, 3, 4} {
			position, _ := s.Lookup(key)
			s.Insert(position, key, key)
		}

		// The run occupies buckets 6, 7, 0, 1. Deleting at bucket 7 forces the circular
		// range test in the backward shift.
		position, found := s.Lookup(2)
		assert.True(t, found, "key 2 present before delete")
		assert.Equal(t, 7, position, "key 2 sits at the wrap boundary")

		// Execute
		s.Remove(position)

		// Check
		for _, key := range []int{1, 3, 4} {
			_, found = s.Lookup(key)
			assert.Truef(t, found, "key %d still reachable across the wrap", key)
		}
	})

	t.Run("does not move entries that are already in place", func(t *testing.T) {
		// Prepare
		s := NewStore[int, int](8, 0, identityHasher{})
		for _, key := range []int{1, 2, 3} {
			position, _ := s.Lookup(key)
			s.Insert(position, key, key)
		}

		position, _ := s.Lookup(2)

		// Execute
		s.Remove(position)

		// Check
		for _, key := range []int{1, 3} {
			position, found := s.Lookup(key)
			assert.Truef(t, found, "key %d still present", key)
			assert.Equalf(t, key, position, "key %d stays in its ideal bucket", key)
		}
	})

	t.Run("keeps every remaining key reachable for random colliding workloads", func(t *testing.T) {
		// Prepare
		rng := rand.New(rand.NewSource(42))
		s := NewStore[int, int](64, 0, constantHasher{bucket: 13})
		reference := make(map[int]int)

		for key := 0; key < 40; key++ {
			position, _ := s.Lookup(key)
			s.Insert(position, key, key)
			reference[key] = key
		}

		// Execute - delete a random subset
		for key := 0; key < 40; key++ {
			if rng.Intn(2) == 0 {
				position, found := s.Lookup(key)
				assert.Truef(t, found, "key %d present before delete", key)
				s.Remove(position)
				delete(reference, key)
			}
		}

		// Check
		assert.Equal(t, len(reference), s.Count(), "count matches reference model")
		for key := 0; key < 40; key++ {
			position, found := s.Lookup(key)
			_, expected := reference[key]
			assert.Equalf(t, expected, found, "key %d presence matches reference model", key)
			if found {
				_, value := s.At(position)
				assert.Equalf(t, reference[key], value, "key %d kept its value", key)
			}
		}
	})
}
