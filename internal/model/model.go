package model

// Slot - Represents one bucket in the native storage array.
// A slot either holds a (key, value) entry or is empty, there is no deleted state. Deletion
// repairs the probe chain immediately instead of leaving tombstones behind.
type Slot[K comparable, V any] struct {
	Occupied bool
	Key      K
	Value    V
}

// Clear - Resets the slot to the empty state, dropping any key and value it held
func (S *Slot[K, V]) Clear() {
	*S = Slot[K, V]{}
}

// StorageParameters - Represents parameters specific for the storage backing a dictionary
//   - Native is true when entries live in the native bucket array, false while a foreign collection is wrapped
//   - Count is the number of stored entries
//   - Capacity is the number of buckets in the native array (zero for foreign storage)
//   - LoadFactorInverse is the inverse of the max load factor used when sizing native storage
type StorageParameters struct {
	Native            bool
	Count             int
	Capacity          int
	LoadFactorInverse float64
}
