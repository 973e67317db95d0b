package cowdict

import (
	"fmt"
	"testing"

	"github.com/cowdict/cowdict/crt"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

// constantHasher - Degenerate hash algorithm sending every key to the same ideal bucket,
// used to exercise collision handling through the public API
type constantHasher struct{}

func (constantHasher) Hash(key int) uint64 { return 0 }
func (constantHasher) Equal(a, b int) bool { return a == b }

func TestDictionary_Set(t *testing.T) {
	t.Run("grows from the minimum allocation while keeping every entry", func(t *testing.T) {
		// Prepare
		d := New[int, string](nil)
		assert.Equal(t, 2, d.Info().Capacity, "starts at the minimum allocation")

		// Execute
		for i := 1; i <= 5; i++ {
			d.Set(i, fmt.Sprintf("value-%d", i))
		}

		// Check
		assert.Equal(t, 5, d.Count(), "all entries stored")
		for i := 1; i <= 5; i++ {
			value, ok := d.Get(i)
			assert.Truef(t, ok, "key %d found", i)
			assert.Equalf(t, fmt.Sprintf("value-%d", i), value, "key %d has correct value", i)
		}
		_, ok := d.Get(6)
		assert.False(t, ok, "absent key not found")
	})

	t.Run("updates an existing entry in place", func(t *testing.T) {
		// Prepare
		d := New[string, int](nil)
		d.Set("a", 1)

		// Execute
		previous, existed := d.UpdateValue("a", 2)

		// Check
		assert.True(t, existed, "entry existed")
		assert.Equal(t, 1, previous, "previous value returned")
		value, _ := d.Get("a")
		assert.Equal(t, 2, value, "new value stored")
		assert.Equal(t, 1, d.Count(), "count unchanged")
	})
}

func TestDictionary_RemoveValue(t *testing.T) {
	t.Run("removes an entry and returns its value", func(t *testing.T) {
		// Prepare
		d := New[string, int](nil)
		d.Set("a", 1)
		d.Set("b", 2)

		// Execute
		removed, existed := d.RemoveValue("a")

		// Check
		assert.True(t, existed, "entry removed")
		assert.Equal(t, 1, removed, "removed value returned")
		assert.Equal(t, 1, d.Count(), "one entry left")
		_, ok := d.Get("a")
		assert.False(t, ok, "removed key gone")
	})

	t.Run("is a no-op for an absent key", func(t *testing.T) {
		// Prepare
		d := New[string, int](nil)
		d.Set("a", 1)

		// Execute
		removed, existed := d.RemoveValue("missing")

		// Check
		assert.False(t, existed, "nothing removed")
		assert.Equal(t, 0, removed, "zero value returned")
		assert.Equal(t, 1, d.Count(), "count unchanged")
	})

	t.Run("keeps colliding keys reachable after a delete", func(t *testing.T) {
		// Prepare - all keys share ideal bucket 0 in a capacity 8 table
		d, err := NewWithCapacity[int, int](4, constantHasher{})
		assert.NoError(t, err, "create dictionary")
		assert.Equal(t, 8, d.Info().Capacity, "capacity 8 table")
		for _, key := range []int{1, 2, 3, 4} {
			d.Set(key, key*10)
		}

		// Execute
		_, existed := d.RemoveValue(2)

		// Check
		assert.True(t, existed, "key 2 removed")
		for _, key := range []int{1, 3, 4} {
			value, ok := d.Get(key)
			assert.Truef(t, ok, "key %d still found via lookup", key)
			assert.Equalf(t, key*10, value, "key %d kept its value", key)
		}
	})
}

func TestDictionary_RemoveAll(t *testing.T) {
	t.Run("keeps capacity when asked to", func(t *testing.T) {
		// Prepare
		d := New[int, int](nil)
		for i := 0; i < 20; i++ {
			d.Set(i, i)
		}
		capacity := d.Info().Capacity

		// Execute
		d.RemoveAll(true)

		// Check
		assert.True(t, d.IsEmpty(), "dictionary empty")
		assert.Equal(t, capacity, d.Info().Capacity, "capacity kept")
	})

	t.Run("shrinks to the minimum allocation otherwise", func(t *testing.T) {
		// Prepare
		d := New[int, int](nil)
		for i := 0; i < 20; i++ {
			d.Set(i, i)
		}

		// Execute
		d.RemoveAll(false)

		// Check
		assert.True(t, d.IsEmpty(), "dictionary empty")
		assert.Equal(t, 2, d.Info().Capacity, "minimum allocation")
	})
}

func TestDictionary_Iteration(t *testing.T) {
	t.Run("range visits every entry exactly once", func(t *testing.T) {
		// Prepare
		d := New[string, int](nil)
		expected := map[string]int{"a": 1, "b": 2, "c": 3}
		for key, value := range expected {
			d.Set(key, value)
		}

		// Execute
		seen := make(map[string]int)
		d.Range(func(key string, value int) bool {
			seen[key] = value
			return true
		})

		// Check
		assert.Equal(t, expected, seen, "all entries visited")
	})

	t.Run("order is stable within passes over an unchanged dictionary", func(t *testing.T) {
		// Prepare
		d := New[int, int](nil)
		for i := 0; i < 16; i++ {
			d.Set(i, i)
		}

		// Execute
		first := d.Keys()
		second := d.Keys()

		// Check
		assert.Equal(t, first, second, "two passes yield the same order")
		assert.Len(t, d.Values(), 16, "values projection covers all entries")
	})

	t.Run("range can stop early", func(t *testing.T) {
		// Prepare
		d := New[int, int](nil)
		for i := 0; i < 16; i++ {
			d.Set(i, i)
		}

		// Execute
		visited := 0
		d.Range(func(int, int) bool {
			visited++
			return visited < 3
		})

		// Check
		assert.Equal(t, 3, visited, "iteration stopped after three entries")
	})
}

func TestDictionary_Indexing(t *testing.T) {
	t.Run("index walk matches the key projection", func(t *testing.T) {
		// Prepare
		d := New[string, int](nil)
		for key, value := range map[string]int{"a": 1, "b": 2, "c": 3} {
			d.Set(key, value)
		}

		// Execute
		var keys []string
		for idx := d.StartIndex(); !idx.AtEnd(); idx = d.Next(idx) {
			key, _ := d.At(idx)
			keys = append(keys, key)
		}

		// Check
		assert.Equal(t, d.Keys(), keys, "index walk in iteration order")
	})

	t.Run("removes the entry an index refers to", func(t *testing.T) {
		// Prepare
		d := New[string, int](nil)
		d.Set("a", 1)
		d.Set("b", 2)
		idx, found := d.IndexForKey("a")
		assert.True(t, found, "index for present key")

		// Execute
		key, value := d.RemoveAt(idx)

		// Check
		assert.Equal(t, "a", key, "removed entry returned")
		assert.Equal(t, 1, value, "removed value returned")
		assert.Equal(t, 1, d.Count(), "one entry left")
	})

	t.Run("index ordering follows iteration order", func(t *testing.T) {
		// Prepare
		d := New[string, int](nil)
		d.Set("a", 1)
		d.Set("b", 2)

		start := d.StartIndex()
		next := d.Next(start)

		// Execute / Check
		assert.True(t, start.Less(next), "start precedes its successor")
		assert.False(t, next.Less(start), "successor does not precede start")
		assert.True(t, d.Prev(next).Equal(start), "prev of successor is start")
	})

	t.Run("panics on an index from another dictionary", func(t *testing.T) {
		// Prepare
		a := New[string, int](nil)
		a.Set("a", 1)
		b := New[string, int](nil)
		b.Set("a", 1)
		idx, _ := a.IndexForKey("a")

		// Execute / Check
		assert.PanicsWithValue(t, crt.InvalidIndex{}, func() { b.At(idx) }, "cross-dictionary index rejected")
	})

	t.Run("panics on an index taken before a reallocating mutation", func(t *testing.T) {
		// Prepare
		d := New[int, int](nil)
		d.Set(1, 1)
		idx, _ := d.IndexForKey(1)

		// Execute - force growth
		for i := 2; i <= 32; i++ {
			d.Set(i, i)
		}

		// Check
		assert.PanicsWithValue(t, crt.InvalidIndex{}, func() { d.At(idx) }, "invalidated index rejected")
	})
}

func TestDictionary_Equal(t *testing.T) {
	t.Run("is structural and independent of insertion order", func(t *testing.T) {
		// Prepare
		a := New[string, int](nil)
		a.Set("x", 1)
		a.Set("y", 2)

		b := New[string, int](nil)
		b.Set("y", 2)
		b.Set("x", 1)

		c := New[string, int](nil)
		c.Set("x", 1)
		c.Set("y", 3)

		// Execute / Check
		assert.True(t, Equal(a, b), "same entries are equal")
		assert.False(t, Equal(a, c), "different value is not equal")

		c.Set("y", 2)
		c.Set("z", 9)
		assert.False(t, Equal(a, c), "different count is not equal")
	})

	t.Run("compares across storage representations", func(t *testing.T) {
		// Prepare
		foreignBacked, err := NewFromForeign[string, int](newFakeForeign(), nil)
		assert.NoError(t, err, "create foreign backed dictionary")

		nativeBacked := FromPairs[string, int](nil,
			Pair[string, int]{Key: "a", Value: 1},
			Pair[string, int]{Key: "b", Value: 2},
			Pair[string, int]{Key: "c", Value: 3},
		)

		// Execute / Check
		assert.True(t, Equal(foreignBacked, nativeBacked), "foreign backed equals native backed")
		assert.True(t, Equal(nativeBacked, foreignBacked), "equality is symmetric")
	})
}

func TestDictionary_RoundTrip(t *testing.T) {
	t.Run("random operation sequences match a reference model", func(t *testing.T) {
		// Prepare
		rng := rand.New(rand.NewSource(1))
		d := New[int, int](nil)
		reference := make(map[int]int)

		// Execute
		for op := 0; op < 5000; op++ {
			key := rng.Intn(200)
			switch rng.Intn(3) {
			case 0, 1:
				value := rng.Intn(1000)
				previous, existed := d.UpdateValue(key, value)
				refPrevious, refExisted := reference[key]
				assert.Equal(t, refExisted, existed, "previous presence matches model")
				assert.Equal(t, refPrevious, previous, "previous value matches model")
				reference[key] = value
			case 2:
				removed, existed := d.RemoveValue(key)
				refRemoved, refExisted := reference[key]
				assert.Equal(t, refExisted, existed, "removal presence matches model")
				assert.Equal(t, refRemoved, removed, "removed value matches model")
				delete(reference, key)
			}
		}

		// Check
		assert.Equal(t, len(reference), d.Count(), "final count matches model")
		observed := make(map[int]int)
		d.Range(func(key, value int) bool {
			observed[key] = value
			return true
		})
		assert.Equal(t, reference, observed, "final entries match model")
	})
}
