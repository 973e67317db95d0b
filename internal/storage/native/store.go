package native

import (
	"math"

	"github.com/cowdict/cowdict/hasher"
	"github.com/cowdict/cowdict/internal/model"
	"github.com/cowdict/cowdict/internal/utils"
)

// DefaultLoadFactorInverse - The inverse of the max load factor used when no other value is given.
// Storage is sized so the bucket array is at most 75% full before it is grown.
const DefaultLoadFactorInverse float64 = 4.0 / 3.0

// MinimumBucketCount - The smallest bucket array ever allocated.
// Together with the empty-slot invariant it means even a single entry table has a free bucket.
const MinimumBucketCount int = 2

// Store - Represents the native bucket array of a dictionary together with its header data.
// It implements lookup, insert and the unsafe bulk append primitive over a flat array of slots
// using linear probing, bucket = hash & (capacity - 1). It never decides uniqueness of ownership
// and it is never resized in place, growth always means allocating a new Store and rehashing.
//
// Invariant: count < capacity at all times, so at least one slot is empty and every probe loop
// terminates.
type Store[K comparable, V any] struct {
	capacity          int
	count             int
	loadFactorInverse float64
	slots             []model.Slot[K, V]
	hashAlgorithm     hasher.Hasher[K]
}

// NewStore - Returns a pointer to a new Store instance with all slots empty.
//   - capacity must already be rounded up to a power of two and be at least MinimumBucketCount, it is the caller's responsibility (use MinimumCapacity)
//   - loadFactorInverse is the inverse of the max load factor, values at or below 1 make no sense and are replaced by the default
//   - hashAlgorithm is the hash algorithm shared by every storage generation of one dictionary
func NewStore[K comparable, V any](capacity int, loadFactorInverse float64, hashAlgorithm hasher.Hasher[K]) *Store[K, V] {
	if loadFactorInverse <= 1 {
		loadFactorInverse = DefaultLoadFactorInverse
	}

	return &Store[K, V]{
		capacity:          capacity,
		loadFactorInverse: loadFactorInverse,
		slots:             make([]model.Slot[K, V], capacity),
		hashAlgorithm:     hashAlgorithm,
	}
}

// MinimumCapacity - Returns the smallest permitted bucket array size for the requested number of
// entries, rounded up to the nearest exponent of 2. The requestedCount+1 term guarantees that the
// empty-slot invariant survives insertion of requestedCount entries even for load factors near 1.
func MinimumCapacity(requestedCount int, loadFactorInverse float64) (capacity int) {
	capacity = int(math.Ceil(float64(requestedCount) * loadFactorInverse))
	if capacity < requestedCount+1 {
		capacity = requestedCount + 1
	}
	if capacity < MinimumBucketCount {
		capacity = MinimumBucketCount
	}

	capacity = utils.RoundUp2(capacity)

	return
}

// Capacity - Returns the number of buckets in the array
func (S *Store[K, V]) Capacity() int {
	return S.capacity
}

// Count - Returns the number of occupied buckets
func (S *Store[K, V]) Count() int {
	return S.count
}

// LoadFactorInverse - Returns the inverse of the max load factor the store was created with
func (S *Store[K, V]) LoadFactorInverse() float64 {
	return S.loadFactorInverse
}

// HashAlgorithm - Returns the hash algorithm the store probes with
func (S *Store[K, V]) HashAlgorithm() hasher.Hasher[K] {
	return S.hashAlgorithm
}

// BucketIndex - Returns the ideal bucket for the given key
func (S *Store[K, V]) BucketIndex(key K) int {
	return int(S.hashAlgorithm.Hash(key) & uint64(S.capacity-1))
}

// next - Returns the bucket following the given one, with wraparound
func (S *Store[K, V]) next(bucket int) int {
	bucket++
	if bucket == S.capacity {
		bucket = 0
	}

	return bucket
}

// prev - Returns the bucket preceding the given one, with wraparound
func (S *Store[K, V]) prev(bucket int) int {
	if bucket == 0 {
		return S.capacity - 1
	}

	return bucket - 1
}

// Find - Probes linearly from startBucket with wraparound until either the key matches or an
// empty slot is reached. The empty-slot invariant guarantees termination.
//
// It returns:
//   - position is the bucket holding the key when found, otherwise the insertion point for it
//   - found is true when the key is present
func (S *Store[K, V]) Find(key K, startBucket int) (position int, found bool) {
	position = startBucket
	for {
		slot := &S.slots[position]
		if !slot.Occupied {
			return
		}
		if S.hashAlgorithm.Equal(slot.Key, key) {
			found = true
			return
		}

		position = S.next(position)
	}
}

// Lookup - Returns the probe position for the given key starting from its ideal bucket
func (S *Store[K, V]) Lookup(key K) (position int, found bool) {
	return S.Find(key, S.BucketIndex(key))
}

// UnsafeAddNew - Writes a new entry directly into its probe position.
// The caller guarantees that the key is absent, that the store is not shared, and that the
// empty-slot invariant holds after the write. It does not update count, that is the caller's
// responsibility. Used only during bulk construction and rehashing.
func (S *Store[K, V]) UnsafeAddNew(key K, value V) {
	position, _ := S.Lookup(key)
	S.slots[position] = model.Slot[K, V]{Occupied: true, Key: key, Value: value}
}

// SetCount - Sets the entry count after a sequence of UnsafeAddNew calls
func (S *Store[K, V]) SetCount(count int) {
	S.count = count
}

// Insert - Writes a new entry at the given probe position and increments count.
// The caller guarantees that position came from Find against this store and that found was false.
func (S *Store[K, V]) Insert(position int, key K, value V) {
	S.slots[position] = model.Slot[K, V]{Occupied: true, Key: key, Value: value}
	S.count++
}

// Replace - Overwrites the value at an occupied position and returns the previous value
func (S *Store[K, V]) Replace(position int, value V) (previous V) {
	previous = S.slots[position].Value
	S.slots[position].Value = value

	return
}

// At - Returns the entry stored at an occupied position
func (S *Store[K, V]) At(position int) (key K, value V) {
	return S.slots[position].Key, S.slots[position].Value
}

// Occupied - Reports whether the given bucket holds an entry
func (S *Store[K, V]) Occupied(position int) bool {
	return position >= 0 && position < S.capacity && S.slots[position].Occupied
}

// Clear - Empties every slot while keeping the bucket array allocated
func (S *Store[K, V]) Clear() {
	for i := range S.slots {
		S.slots[i].Clear()
	}
	S.count = 0
}

// NextOccupied - Returns the first occupied bucket at or after the given one, or capacity when
// there is none. Passing 0 yields the first entry of an iteration pass.
func (S *Store[K, V]) NextOccupied(from int) int {
	for i := from; i < S.capacity; i++ {
		if S.slots[i].Occupied {
			return i
		}
	}

	return S.capacity
}

// PrevOccupied - Returns the last occupied bucket at or before the given one, or -1 when there
// is none
func (S *Store[K, V]) PrevOccupied(from int) int {
	for i := from; i >= 0; i-- {
		if S.slots[i].Occupied {
			return i
		}
	}

	return -1
}

// Params - Returns a struct with storage parameters from the Store
func (S *Store[K, V]) Params() (params model.StorageParameters) {
	params = model.StorageParameters{
		Native:            true,
		Count:             S.count,
		Capacity:          S.capacity,
		LoadFactorInverse: S.loadFactorInverse,
	}

	return
}
