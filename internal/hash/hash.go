package hash

import (
	"hash/maphash"
)

// SeededHasher - The internally used hash algorithm is implemented using hash/maphash over the
// key's runtime representation, seeded once per instance. The bucket number is derived down
// stream by applying bucket = hash & (tableSize - 1), where tableSize is a power of two, so the
// full 64 bit output matters only through its low order bits, which maphash distributes well.
type SeededHasher[K comparable] struct {
	seed maphash.Seed
}

// NewSeededHasher - Returns a pointer to a new SeededHasher instance with a fresh random seed
func NewSeededHasher[K comparable]() *SeededHasher[K] {
	return &SeededHasher[K]{seed: maphash.MakeSeed()}
}

// Hash - Given key it generates a well-distributed 64 bit hash value
func (B *SeededHasher[K]) Hash(key K) uint64 {
	return maphash.Comparable(B.seed, key)
}

// Equal - Reports whether two keys are the same key
func (B *SeededHasher[K]) Equal(a, b K) bool {
	return a == b
}
