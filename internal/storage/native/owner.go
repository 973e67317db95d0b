package native

import "github.com/cowdict/cowdict/hasher"

// Owner - A heap allocated box owning one Store exclusively.
//
// Go offers no native sole-owner test, so the box carries an explicit reference count that the
// copy-on-write layer maintains: Retain on every cheap dictionary copy, Release whenever a
// dictionary replaces its storage. A dictionary that is simply dropped never calls Release, the
// only consequence is that a later mutation on a surviving copy clones once more than strictly
// needed, contents are never affected.
//
// Index handles keep the boxed buffer reachable through ordinary GC references without touching
// the count, a stale index can therefore keep a logically replaced buffer alive. That is a
// resource lifetime matter only, stale indices are rejected or give stale reads, never anything
// memory-unsafe.
type Owner[K comparable, V any] struct {
	refs  int
	Store *Store[K, V]
}

// NewOwner - Returns a pointer to a new Owner instance holding a fresh empty Store.
// The new owner starts with a reference count of one, held by the caller.
func NewOwner[K comparable, V any](capacity int, loadFactorInverse float64, hashAlgorithm hasher.Hasher[K]) *Owner[K, V] {
	return &Owner[K, V]{
		refs:  1,
		Store: NewStore[K, V](capacity, loadFactorInverse, hashAlgorithm),
	}
}

// CloneOwner - Returns a pointer to a new Owner holding a copy of the source owner's entries.
//   - capacity must already be rounded up to a power of two and be large enough for the source count
//
// When capacity is unchanged the slots are copied one for one, preserving every bucket offset.
// When capacity differs every live entry is rehashed into its new probe position via UnsafeAddNew.
func CloneOwner[K comparable, V any](source *Owner[K, V], capacity int) (owner *Owner[K, V]) {
	src := source.Store
	owner = NewOwner[K, V](capacity, src.loadFactorInverse, src.hashAlgorithm)

	if capacity == src.capacity {
		copy(owner.Store.slots, src.slots)
	} else {
		for i := range src.slots {
			if src.slots[i].Occupied {
				owner.Store.UnsafeAddNew(src.slots[i].Key, src.slots[i].Value)
			}
		}
	}
	owner.Store.count = src.count

	return
}

// Retain - Registers one more holder of the owner
func (O *Owner[K, V]) Retain() {
	O.refs++
}

// Release - Deregisters one holder of the owner
func (O *Owner[K, V]) Release() {
	O.refs--
}

// IsUnique - Reports whether exactly one holder references the owner, which is the precondition
// for mutating its store in place
func (O *Owner[K, V]) IsUnique() bool {
	return O.refs == 1
}

// Refs - Returns the current reference count
func (O *Owner[K, V]) Refs() int {
	return O.refs
}
