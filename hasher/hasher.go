package hasher

// Hasher - Interface that permits an implementation using the Dictionary to supply a custom hash
// algorithm suited for its particular distribution of keys.
//
// The two functions must be consistent: Equal(a, b) implies Hash(a) == Hash(b). Both are assumed
// total and pure, they are called freely during probing, rehashing and migration.
type Hasher[K any] interface {
	// Hash - Given key it generates a well-distributed 64 bit hash value.
	// The bucket number is derived internally by masking with the table size, hence the low
	// order bits carry the distribution.
	Hash(key K) uint64

	// Equal - Reports whether two keys are the same key
	Equal(a, b K) bool
}
