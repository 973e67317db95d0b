package foreign

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

// fakeForeign - A minimal foreign collection with a fixed enumeration order
type fakeForeign struct {
	keys   []string
	values map[string]int
}

func (F *fakeForeign) Count() int { return len(F.keys) }

func (F *fakeForeign) ValueForKey(key string) (value int, ok bool) {
	value, ok = F.values[key]
	return
}

func (F *fakeForeign) EnumerateKeys() []string {
	keys := make([]string, len(F.keys))
	copy(keys, F.keys)
	return keys
}

func (F *fakeForeign) KeyAt(position int) string { return F.keys[position] }

func newFakeForeign() *fakeForeign {
	return &fakeForeign{
		keys:   []string{"a", "b", "c"},
		values: map[string]int{"a": 1, "b": 2, "c": 3},
	}
}

func TestWrapper_Get(t *testing.T) {
	t.Run("reads through to the handle", func(t *testing.T) {
		// Prepare
		w := NewWrapper[string, int](newFakeForeign())

		// Execute
		value, ok := w.Get("b")
		_, missing := w.Get("x")

		// Check
		assert.True(t, ok, "present key found")
		assert.Equal(t, 2, value, "correct value")
		assert.False(t, missing, "absent key not found")
		assert.Equal(t, 3, w.Count(), "count read through")
	})
}

func TestWrapper_Snapshot(t *testing.T) {
	t.Run("captures keys in enumeration order", func(t *testing.T) {
		// Prepare
		w := NewWrapper[string, int](newFakeForeign())

		// Execute
		snapshot := w.Snapshot()

		// Check
		assert.Equal(t, []string{"a", "b", "c"}, snapshot, "snapshot in enumeration order")
		assert.Equal(t, "b", w.KeyAt(1), "KeyAt consistent with enumeration order")
	})
}
