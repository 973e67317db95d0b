package storage

import (
	"github.com/cowdict/cowdict/crt"
	"github.com/cowdict/cowdict/hasher"
	"github.com/cowdict/cowdict/internal/model"
	"github.com/cowdict/cowdict/internal/storage/foreign"
	"github.com/cowdict/cowdict/internal/storage/native"
)

// kindNative - Storage tag for the natively owned bucket array
const kindNative uint8 = 0

// kindForeign - Storage tag for a wrapped foreign collection
const kindForeign uint8 = 1

// Variant - A tagged union over the two storage representations of a dictionary.
//
// It owns the copy-on-write decision logic: the uniqueness test, the capacity sufficiency test
// and the one time migration from foreign to native storage. Every public dictionary operation
// funnels through here and is dispatched to the correct backend.
//
// Once migrated to native a Variant never reverts to foreign.
type Variant[K comparable, V any] struct {
	kind              uint8
	native            *native.Owner[K, V]
	foreign           *foreign.Wrapper[K, V]
	hashAlgorithm     hasher.Hasher[K]
	loadFactorInverse float64
}

// NewNative - Returns a Variant in the native state sized to hold expectedCount entries without
// reallocation
//   - expectedCount may be zero, the store then gets the minimum bucket count
//   - loadFactorInverse at or below 1 selects the default
//   - hashAlgorithm is the hash algorithm used by every storage generation of the dictionary
func NewNative[K comparable, V any](expectedCount int, loadFactorInverse float64, hashAlgorithm hasher.Hasher[K]) Variant[K, V] {
	if loadFactorInverse <= 1 {
		loadFactorInverse = native.DefaultLoadFactorInverse
	}

	return Variant[K, V]{
		kind:              kindNative,
		native:            native.NewOwner[K, V](native.MinimumCapacity(expectedCount, loadFactorInverse), loadFactorInverse, hashAlgorithm),
		hashAlgorithm:     hashAlgorithm,
		loadFactorInverse: loadFactorInverse,
	}
}

// NewForeign - Returns a Variant in the foreign state wrapping the given handle without copying it
func NewForeign[K comparable, V any](handle hasher.ForeignMap[K, V], loadFactorInverse float64, hashAlgorithm hasher.Hasher[K]) Variant[K, V] {
	if loadFactorInverse <= 1 {
		loadFactorInverse = native.DefaultLoadFactorInverse
	}

	return Variant[K, V]{
		kind:              kindForeign,
		foreign:           foreign.NewWrapper(handle),
		hashAlgorithm:     hashAlgorithm,
		loadFactorInverse: loadFactorInverse,
	}
}

// IsNative - Reports whether entries live in the native bucket array
func (B *Variant[K, V]) IsNative() bool {
	return B.kind == kindNative
}

// Retain - Returns a cheap copy of the Variant sharing the same backing storage.
// For native storage the owner's reference count is bumped so a later mutation on either side
// knows the buffer is shared.
func (B *Variant[K, V]) Retain() Variant[K, V] {
	if B.kind == kindNative {
		B.native.Retain()
	}

	return *B
}

// IsUniquelyReferenced - Reports whether the native owner is held by exactly one dictionary.
// Always false for foreign storage, a foreign collection is presumed externally owned and is
// never mutated in place.
func (B *Variant[K, V]) IsUniquelyReferenced() bool {
	return B.kind == kindNative && B.native.IsUnique()
}

// EnsureUniqueNative - Makes the Variant hold a uniquely referenced native store with at least
// minimumCapacity buckets, reallocating or migrating as needed.
//   - minimumCapacity is a bucket count, already rounded by native.MinimumCapacity; foreign migration additionally sizes for the wrapped collection's count
//
// It returns:
//   - reallocated is true when the backing buffer was replaced, invalidating outstanding indices per the documented contract
//   - capacityChanged is true when the new buffer has a different capacity, invalidating previously computed probe positions
func (B *Variant[K, V]) EnsureUniqueNative(minimumCapacity int) (reallocated, capacityChanged bool) {
	if B.kind == kindForeign {
		B.migrate(minimumCapacity)
		reallocated = true
		capacityChanged = true
		return
	}

	store := B.native.Store
	if B.native.IsUnique() && store.Capacity() >= minimumCapacity {
		return
	}

	capacity := store.Capacity()
	if capacity < minimumCapacity {
		capacity = minimumCapacity
	}

	owner := native.CloneOwner(B.native, capacity)
	B.native.Release()
	B.native = owner

	reallocated = true
	capacityChanged = capacity != store.Capacity()

	return
}

// migrate - Performs the one time migration from foreign to native storage.
// The wrapped collection is enumerated once and every entry is bulk inserted via UnsafeAddNew.
// After migration the handle is no longer referenced.
func (B *Variant[K, V]) migrate(minimumCapacity int) {
	count := B.foreign.Count()
	capacity := native.MinimumCapacity(count, B.loadFactorInverse)
	if capacity < minimumCapacity {
		capacity = minimumCapacity
	}

	owner := native.NewOwner[K, V](capacity, B.loadFactorInverse, B.hashAlgorithm)
	keys := B.foreign.Snapshot()
	if len(keys) != count {
		panic(crt.ForeignMutation{})
	}
	for _, key := range keys {
		value, ok := B.foreign.Get(key)
		if !ok {
			panic(crt.ForeignMutation{})
		}
		owner.Store.UnsafeAddNew(key, value)
	}
	owner.Store.SetCount(count)

	B.kind = kindNative
	B.native = owner
	B.foreign = nil
}

// Count - Returns the number of stored entries
func (B *Variant[K, V]) Count() int {
	if B.kind == kindNative {
		return B.native.Store.Count()
	}

	return B.foreign.Count()
}

// Get - Returns the value stored under key
func (B *Variant[K, V]) Get(key K) (value V, ok bool) {
	if B.kind == kindNative {
		store := B.native.Store
		position, found := store.Lookup(key)
		if !found {
			return
		}
		_, value = store.At(position)
		ok = true
		return
	}

	return B.foreign.Get(key)
}

// UpdateValue - Stores value under key, inserting or overwriting, and returns any previous value.
// The probe position is computed against the current storage first, then re-resolved after
// EnsureUniqueNative whenever the capacity changed, a slot for slot copy keeps offsets valid.
func (B *Variant[K, V]) UpdateValue(key K, value V) (previous V, existed bool) {
	if B.kind == kindForeign {
		previous, existed = B.foreign.Get(key)
		required := B.foreign.Count()
		if !existed {
			required++
		}
		B.EnsureUniqueNative(native.MinimumCapacity(required, B.loadFactorInverse))

		store := B.native.Store
		position, found := store.Lookup(key)
		if found {
			store.Replace(position, value)
		} else {
			store.Insert(position, key, value)
		}
		return
	}

	store := B.native.Store
	position, found := store.Lookup(key)
	required := store.Count()
	if !found {
		required++
	}

	_, capacityChanged := B.EnsureUniqueNative(native.MinimumCapacity(required, B.loadFactorInverse))
	store = B.native.Store
	if capacityChanged {
		position, found = store.Lookup(key)
	}

	if found {
		previous = store.Replace(position, value)
		existed = true
		return
	}

	store.Insert(position, key, value)

	return
}

// RemoveValue - Removes the entry stored under key and returns its value.
// Removing an absent key is a no-op and, critically, never forces a unique storage copy, the
// presence check runs against the current storage before EnsureUniqueNative.
func (B *Variant[K, V]) RemoveValue(key K) (removed V, existed bool) {
	if B.kind == kindForeign {
		removed, existed = B.foreign.Get(key)
		if !existed {
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

	store := B.native.Store
	position, found := store.Lookup(key)
	if !found {
		return
	}
	_, removed = store.At(position)
	existed = true

	// Keeping the capacity makes the clone a slot for slot copy, so position stays valid
	_, capacityChanged := B.EnsureUniqueNative(store.Capacity())
	if capacityChanged {
		position, _ = B.native.Store.Lookup(key)
	}
	B.native.Store.Remove(position)

	return
}

// RemoveAll - Removes every entry.
//   - keepCapacity true keeps the current native bucket array size for refilling, false shrinks to the minimum allocation
//
// Foreign storage always ends up as a fresh minimal native store, the handle is dropped.
func (B *Variant[K, V]) RemoveAll(keepCapacity bool) {
	if B.kind == kindForeign {
		B.kind = kindNative
		B.native = native.NewOwner[K, V](native.MinimumCapacity(0, B.loadFactorInverse), B.loadFactorInverse, B.hashAlgorithm)
		B.foreign = nil
		return
	}

	store := B.native.Store
	if !keepCapacity {
		B.native.Release()
		B.native = native.NewOwner[K, V](native.MinimumCapacity(0, B.loadFactorInverse), B.loadFactorInverse, B.hashAlgorithm)
		return
	}

	if store.Count() == 0 {
		return
	}

	if B.native.IsUnique() {
		store.Clear()
		return
	}

	B.native.Release()
	B.native = native.NewOwner[K, V](store.Capacity(), B.loadFactorInverse, B.hashAlgorithm)
}

// Range - Calls f for every entry until f returns false.
// Order is unspecified but stable within one pass, for foreign storage a key snapshot is
// captured once for the pass.
func (B *Variant[K, V]) Range(f func(key K, value V) bool) {
	if B.kind == kindNative {
		store := B.native.Store
		for i := store.NextOccupied(0); i < store.Capacity(); i = store.NextOccupied(i + 1) {
			key, value := store.At(i)
			if !f(key, value) {
				return
			}
		}
		return
	}

	for _, key := range B.foreign.Snapshot() {
		value, ok := B.foreign.Get(key)
		if !ok {
			panic(crt.ForeignMutation{})
		}
		if !f(key, value) {
			return
		}
	}
}

// Params - Returns a struct with storage parameters from the current backend
func (B *Variant[K, V]) Params() (params model.StorageParameters) {
	if B.kind == kindNative {
		return B.native.Store.Params()
	}

	params = model.StorageParameters{
		Native:            false,
		Count:             B.foreign.Count(),
		LoadFactorInverse: B.loadFactorInverse,
	}

	return
}

// ProbeLengthDistribution - Returns how many entries sit at each probe distance from their ideal
// bucket, index 0 counting the entries stored directly in it. Nil for foreign storage, the
// wrapped collection has no bucket layout to report on.
func (B *Variant[K, V]) ProbeLengthDistribution() (distribution []int) {
	if B.kind != kindNative {
		return
	}

	store := B.native.Store
	distribution = make([]int, 1)
	for i := store.NextOccupied(0); i < store.Capacity(); i = store.NextOccupied(i + 1) {
		key, _ := store.At(i)
		length := i - store.BucketIndex(key)
		if length < 0 {
			length += store.Capacity()
		}
		for len(distribution) <= length {
			distribution = append(distribution, 0)
		}
		distribution[length]++
	}

	return
}
