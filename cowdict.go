package cowdict

import (
	"fmt"

	"github.com/cowdict/cowdict/crt"
	"github.com/cowdict/cowdict/hasher"
	"github.com/cowdict/cowdict/internal/hash"
	"github.com/cowdict/cowdict/internal/storage"
)

// Pair - One (key, value) entry, used for literal construction
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// DictionaryInfo - Information structure containing some information about the dictionary's storage
//   - Count is the number of stored entries
//   - Capacity is the number of buckets in the native array, zero while a foreign collection is wrapped
//   - NativeStorage is true when entries live in the native bucket array
//   - LoadFactorInverse is the inverse of the max load factor used when sizing native storage
type DictionaryInfo struct {
	Count             int
	Capacity          int
	NativeStorage     bool
	LoadFactorInverse float64
}

// DictionaryStat - Statistics on how entries are spread over the native bucket array
//   - Records is the total number of entries stored
//   - MaxProbeLength is the longest distance any entry sits from its ideal bucket
//   - ProbeLengthDistribution is the number of entries per probe distance, index 0 being entries in their ideal bucket. Nil for foreign storage.
type DictionaryStat struct {
	Records                 int
	MaxProbeLength          int
	ProbeLengthDistribution []int
}

// Dictionary - A map from keys to values with copy-on-write value semantics.
//
// A Dictionary is a thin facade over its variant storage, it holds no hash table logic itself.
// Clone produces a cheap copy sharing the backing buffer, the first mutation on either side
// clones the buffer so the other side's view is unaffected. A Dictionary constructed over a
// foreign collection wraps it without copying until the first mutation migrates the entries
// into native storage.
//
// The concurrency contract is single writer value semantics: reads never mutate shared state,
// and no internal locking is performed.
type Dictionary[K comparable, V any] struct {
	storage storage.Variant[K, V]
}

// New - Returns a new empty Dictionary.
//   - hashAlgorithm is an optional custom hash algorithm following the hasher.Hasher interface, nil selects the internal seeded algorithm
func New[K comparable, V any](hashAlgorithm hasher.Hasher[K]) *Dictionary[K, V] {
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewSeededHasher[K]()
	}

	return &Dictionary[K, V]{storage: storage.NewNative[K, V](0, 0, hashAlgorithm)}
}

// NewWithCapacity - Returns a new empty Dictionary sized to hold at least minimumCapacity
// entries without reallocating.
//   - minimumCapacity is the number of entries to provide room for, must not be negative
//   - hashAlgorithm is an optional custom hash algorithm following the hasher.Hasher interface, nil selects the internal seeded algorithm
//
// It returns:
//   - dictionary is a pointer to a Dictionary struct
//   - err is a normal Go error which should be nil if everything went ok
func NewWithCapacity[K comparable, V any](minimumCapacity int, hashAlgorithm hasher.Hasher[K]) (dictionary *Dictionary[K, V], err error) {
	if minimumCapacity < 0 {
		err = fmt.Errorf("minimumCapacity can not be negative")
		return
	}
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewSeededHasher[K]()
	}

	dictionary = &Dictionary[K, V]{storage: storage.NewNative[K, V](minimumCapacity, 0, hashAlgorithm)}

	return
}

// FromPairs - Returns a new Dictionary holding the given entries, the literal construction form.
// Duplicate keys are a programmer error and panic with crt.DuplicateKey rather than silently
// keeping one of the values.
//   - hashAlgorithm is an optional custom hash algorithm following the hasher.Hasher interface, nil selects the internal seeded algorithm
//   - pairs are the entries to store
func FromPairs[K comparable, V any](hashAlgorithm hasher.Hasher[K], pairs ...Pair[K, V]) *Dictionary[K, V] {
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewSeededHasher[K]()
	}

	dictionary := &Dictionary[K, V]{storage: storage.NewNative[K, V](len(pairs), 0, hashAlgorithm)}
	for _, pair := range pairs {
		if _, existed := dictionary.storage.Get(pair.Key); existed {
			panic(crt.DuplicateKey{})
		}
		dictionary.storage.UpdateValue(pair.Key, pair.Value)
	}

	return dictionary
}

// NewFromForeign - Returns a new Dictionary wrapping a foreign collection without copying it.
// The collection is treated as immutable while wrapped, the first mutating operation migrates
// every entry into native storage and drops the handle for good.
//   - handle is the foreign collection to wrap
//   - hashAlgorithm is an optional custom hash algorithm following the hasher.Hasher interface, nil selects the internal seeded algorithm
//
// It returns:
//   - dictionary is a pointer to a Dictionary struct
//   - err is a normal Go error which should be nil if everything went ok
func NewFromForeign[K comparable, V any](handle hasher.ForeignMap[K, V], hashAlgorithm hasher.Hasher[K]) (dictionary *Dictionary[K, V], err error) {
	if handle == nil {
		err = fmt.Errorf("handle can not be nil")
		return
	}
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewSeededHasher[K]()
	}

	dictionary = &Dictionary[K, V]{storage: storage.NewForeign[K, V](handle, 0, hashAlgorithm)}

	return
}

// Clone - Returns a cheap copy of the dictionary sharing the backing storage.
// The first mutation on either the original or the clone copies the buffer, so neither ever
// observes the other's changes. This is the Go rendition of value-semantic assignment.
func (D *Dictionary[K, V]) Clone() *Dictionary[K, V] {
	return &Dictionary[K, V]{storage: D.storage.Retain()}
}

// Info - Returns a DictionaryInfo struct with information about the current storage
func (D *Dictionary[K, V]) Info() (info DictionaryInfo) {
	params := D.storage.Params()
	info = DictionaryInfo{
		Count:             params.Count,
		Capacity:          params.Capacity,
		NativeStorage:     params.Native,
		LoadFactorInverse: params.LoadFactorInverse,
	}

	return
}

// Stat - Walks through the entire bucket array and produces a DictionaryStat struct with
// information on how entries are spread over it.
//   - includeDistribution set to true will include a slice with number of entries per probe distance, false will set DictionaryStat.ProbeLengthDistribution to nil
func (D *Dictionary[K, V]) Stat(includeDistribution bool) (dictionaryStat DictionaryStat) {
	dictionaryStat.Records = D.storage.Count()

	distribution := D.storage.ProbeLengthDistribution()
	if distribution == nil {
		return
	}

	dictionaryStat.MaxProbeLength = len(distribution) - 1
	if includeDistribution {
		dictionaryStat.ProbeLengthDistribution = distribution
	}

	return
}
