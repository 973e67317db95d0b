package cowdict

import "github.com/cowdict/cowdict/internal/storage"

// Index - A stable handle to one entry of a Dictionary.
//
// Indices are ordered by position in the dictionary's iteration order. An index stays valid
// against the dictionary that produced it only until a mutating operation replaces the backing
// storage, using an invalidated index or mixing indices from different dictionaries panics with
// crt.InvalidIndex. Holding an index keeps its buffer alive, even after the dictionary has moved
// on to a new buffer, which is a resource lifetime hazard but never a memory safety one.
type Index[K comparable, V any] struct {
	inner storage.Index[K, V]
}

// AtEnd - Reports whether the index is the position one past the last entry
func (I Index[K, V]) AtEnd() bool {
	return I.inner.AtEnd()
}

// Equal - Reports whether two indices of the same dictionary storage address the same entry.
// Panics with crt.InvalidIndex when the indices belong to different storage.
func (I Index[K, V]) Equal(other Index[K, V]) bool {
	return I.inner.Equal(other.inner)
}

// Less - Reports whether the index precedes the other in iteration order.
// Panics with crt.InvalidIndex when the indices belong to different storage.
func (I Index[K, V]) Less(other Index[K, V]) bool {
	return I.inner.Less(other.inner)
}
