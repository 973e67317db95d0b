package storage

import (
	"github.com/cowdict/cowdict/crt"
	"github.com/cowdict/cowdict/internal/storage/foreign"
	"github.com/cowdict/cowdict/internal/storage/native"
)

// Index - A stable handle to one entry of a dictionary's storage.
//
// A native index is a back reference to the storage owner plus a bucket offset, it keeps the
// referenced buffer alive but does not count as a holder for copy-on-write purposes. A foreign
// index carries the key snapshot captured when the index epoch started, the collaborator has no
// cursor concept of its own.
//
// Invalidation contract: an index stays usable against a dictionary only while the buffer a
// mutation would use is the same object the index refers to. Any mutating call that reallocates
// storage invalidates indices taken before it, use against the wrong storage panics with
// crt.InvalidIndex.
type Index[K comparable, V any] struct {
	native   bool
	owner    *native.Owner[K, V]
	offset   int
	foreign  *foreign.Wrapper[K, V]
	keys     []K
	position int
}

// AtEnd - Reports whether the index is the position one past the last entry
func (I Index[K, V]) AtEnd() bool {
	if I.native {
		return I.offset >= I.owner.Store.Capacity()
	}

	return I.position >= len(I.keys)
}

// comparableWith - Panics with crt.InvalidIndex unless the two indices belong to the same
// storage and index epoch
func (I Index[K, V]) comparableWith(other Index[K, V]) {
	if I.native != other.native {
		panic(crt.InvalidIndex{})
	}
	if I.native {
		if I.owner != other.owner {
			panic(crt.InvalidIndex{})
		}
		return
	}
	if I.foreign != other.foreign || len(I.keys) != len(other.keys) {
		panic(crt.InvalidIndex{})
	}
}

// Equal - Reports whether two indices of the same storage address the same position.
// Panics with crt.InvalidIndex when the indices belong to different storage.
func (I Index[K, V]) Equal(other Index[K, V]) bool {
	I.comparableWith(other)
	if I.native {
		return I.offset == other.offset
	}

	return I.position == other.position
}

// Less - Reports whether the index precedes the other in iteration order.
// Panics with crt.InvalidIndex when the indices belong to different storage.
func (I Index[K, V]) Less(other Index[K, V]) bool {
	I.comparableWith(other)
	if I.native {
		return I.offset < other.offset
	}

	return I.position < other.position
}

// validate - Panics with crt.InvalidIndex unless the index refers to the Variant's current
// backing storage
func (B *Variant[K, V]) validate(idx Index[K, V]) {
	if idx.native {
		if B.kind != kindNative || idx.owner != B.native {
			panic(crt.InvalidIndex{})
		}
		return
	}

	if B.kind != kindForeign || idx.foreign != B.foreign || len(idx.keys) != B.foreign.Count() {
		panic(crt.InvalidIndex{})
	}
}

// StartIndex - Returns the index of the first entry in iteration order, or the end index for an
// empty dictionary
func (B *Variant[K, V]) StartIndex() Index[K, V] {
	if B.kind == kindNative {
		return Index[K, V]{
			native: true,
			owner:  B.native,
			offset: B.native.Store.NextOccupied(0),
		}
	}

	return Index[K, V]{
		foreign: B.foreign,
		keys:    B.foreign.Snapshot(),
	}
}

// EndIndex - Returns the index one past the last entry in iteration order
func (B *Variant[K, V]) EndIndex() Index[K, V] {
	if B.kind == kindNative {
		return Index[K, V]{
			native: true,
			owner:  B.native,
			offset: B.native.Store.Capacity(),
		}
	}

	keys := B.foreign.Snapshot()

	return Index[K, V]{
		foreign:  B.foreign,
		keys:     keys,
		position: len(keys),
	}
}

// IndexForKey - Returns the index of the entry stored under key, found is false when absent
func (B *Variant[K, V]) IndexForKey(key K) (idx Index[K, V], found bool) {
	if B.kind == kindNative {
		position, ok := B.native.Store.Lookup(key)
		if !ok {
			return
		}

		idx = Index[K, V]{native: true, owner: B.native, offset: position}
		found = true
		return
	}

	keys := B.foreign.Snapshot()
	for i, candidate := range keys {
		if B.hashAlgorithm.Equal(candidate, key) {
			idx = Index[K, V]{foreign: B.foreign, keys: keys, position: i}
			found = true
			return
		}
	}

	return
}

// Next - Returns the successor of the given index in iteration order.
// Panics with crt.InvalidIndex when the index does not refer to the current storage or is
// already the end index.
func (B *Variant[K, V]) Next(idx Index[K, V]) Index[K, V] {
	B.validate(idx)
	if idx.AtEnd() {
		panic(crt.InvalidIndex{})
	}

	if idx.native {
		idx.offset = B.native.Store.NextOccupied(idx.offset + 1)
		return idx
	}

	idx.position++

	return idx
}

// Prev - Returns the predecessor of the given index in iteration order.
// Panics with crt.InvalidIndex when the index does not refer to the current storage or no entry
// precedes it.
func (B *Variant[K, V]) Prev(idx Index[K, V]) Index[K, V] {
	B.validate(idx)

	if idx.native {
		offset := B.native.Store.PrevOccupied(idx.offset - 1)
		if offset < 0 {
			panic(crt.InvalidIndex{})
		}
		idx.offset = offset
		return idx
	}

	if idx.position == 0 {
		panic(crt.InvalidIndex{})
	}
	idx.position--

	return idx
}

// At - Returns the entry the index refers to.
// Panics with crt.InvalidIndex when the index does not refer to the current storage or to an
// occupied position.
func (B *Variant[K, V]) At(idx Index[K, V]) (key K, value V) {
	B.validate(idx)

	if idx.native {
		if !B.native.Store.Occupied(idx.offset) {
			panic(crt.InvalidIndex{})
		}
		return B.native.Store.At(idx.offset)
	}

	if idx.position < 0 || idx.position >= len(idx.keys) {
		panic(crt.InvalidIndex{})
	}
	key = idx.keys[idx.position]
	value, ok := B.foreign.Get(key)
	if !ok {
		panic(crt.ForeignMutation{})
	}

	return
}

// RemoveAt - Removes the entry the index refers to and returns it.
// The index is resolved against the current storage before any copy is made, a copy triggered
// here keeps the capacity so the bucket offset stays valid in the new buffer.
func (B *Variant[K, V]) RemoveAt(idx Index[K, V]) (key K, value V) {
	key, value = B.At(idx)

	if idx.native {
		B.EnsureUniqueNative(B.native.Store.Capacity())
		B.native.Store.Remove(idx.offset)
		return
	}

	B.EnsureUniqueNative(0)
	position, found := B.native.Store.Lookup(key)
	if !found {
		panic(crt.ForeignMutation{})
	}
	B.native.Store.Remove(position)

	return
}
