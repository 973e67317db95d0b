package foreign

import (
	"github.com/cowdict/cowdict/hasher"
)

// Wrapper - Wraps a foreign associative collection behind the storage interface.
//
// The wrapped handle is owned by an external runtime and is never mutated through the wrapper.
// The collaborator has no native cursor concept, so index based traversal captures a key
// snapshot once per index epoch through Snapshot, giving a stable order for one pass.
type Wrapper[K comparable, V any] struct {
	handle hasher.ForeignMap[K, V]
}

// NewWrapper - Returns a pointer to a new Wrapper instance around the given handle
func NewWrapper[K comparable, V any](handle hasher.ForeignMap[K, V]) *Wrapper[K, V] {
	return &Wrapper[K, V]{handle: handle}
}

// Count - Returns the number of entries in the wrapped collection
func (W *Wrapper[K, V]) Count() int {
	return W.handle.Count()
}

// Get - Returns the value stored under key in the wrapped collection
func (W *Wrapper[K, V]) Get(key K) (value V, ok bool) {
	return W.handle.ValueForKey(key)
}

// Snapshot - Captures the keys of the wrapped collection in enumeration order
func (W *Wrapper[K, V]) Snapshot() []K {
	return W.handle.EnumerateKeys()
}

// KeyAt - Returns the key at the given position in enumeration order
func (W *Wrapper[K, V]) KeyAt(position int) K {
	return W.handle.KeyAt(position)
}
