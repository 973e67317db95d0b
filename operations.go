package cowdict

// Count - Returns the number of stored entries
func (D *Dictionary[K, V]) Count() int {
	return D.storage.Count()
}

// IsEmpty - Reports whether the dictionary holds no entries
func (D *Dictionary[K, V]) IsEmpty() bool {
	return D.storage.Count() == 0
}

// Get - Returns the value stored under key.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found
//   - ok is false when the key is absent, which is an expected condition and never an error
func (D *Dictionary[K, V]) Get(key K) (value V, ok bool) {
	return D.storage.Get(key)
}

// Set - Stores value under key, inserting a new entry or overwriting an existing one.
// This is the subscript assignment form of UpdateValue for callers that do not care about any
// previous value.
func (D *Dictionary[K, V]) Set(key K, value V) {
	D.storage.UpdateValue(key, value)
}

// UpdateValue - Stores value under key and returns the value it replaced.
//   - key is the identifier of an entry
//   - value is the value to store
//
// It returns:
//   - previous is the value that was stored under key before the call
//   - existed is false when the key was absent, in which case a new entry was inserted
func (D *Dictionary[K, V]) UpdateValue(key K, value V) (previous V, existed bool) {
	return D.storage.UpdateValue(key, value)
}

// RemoveValue - Removes the entry stored under key and returns its value.
// Removing an absent key is a no-op, and it never forces a copy of shared storage.
//   - key is the identifier of an entry
//
// It returns:
//   - removed is the value that was stored under key
//   - existed is false when the key was absent and nothing was removed
func (D *Dictionary[K, V]) RemoveValue(key K) (removed V, existed bool) {
	return D.storage.RemoveValue(key)
}

// RemoveAll - Removes every entry.
//   - keepCapacity set to true keeps the current bucket array size for refilling, false shrinks to the minimum allocation
func (D *Dictionary[K, V]) RemoveAll(keepCapacity bool) {
	D.storage.RemoveAll(keepCapacity)
}

// Range - Calls f for every (key, value) entry until f returns false.
// Order is unspecified but stable within one pass over an unchanged dictionary.
func (D *Dictionary[K, V]) Range(f func(key K, value V) bool) {
	D.storage.Range(f)
}

// Keys - Returns the keys of all entries in iteration order
func (D *Dictionary[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, D.storage.Count())
	D.storage.Range(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})

	return
}

// Values - Returns the values of all entries in iteration order
func (D *Dictionary[K, V]) Values() (values []V) {
	values = make([]V, 0, D.storage.Count())
	D.storage.Range(func(_ K, value V) bool {
		values = append(values, value)
		return true
	})

	return
}

// StartIndex - Returns the index of the first entry in iteration order, or the end index when
// the dictionary is empty
func (D *Dictionary[K, V]) StartIndex() Index[K, V] {
	return Index[K, V]{inner: D.storage.StartIndex()}
}

// EndIndex - Returns the index one past the last entry in iteration order
func (D *Dictionary[K, V]) EndIndex() Index[K, V] {
	return Index[K, V]{inner: D.storage.EndIndex()}
}

// IndexForKey - Returns the index of the entry stored under key.
//   - key is the identifier of an entry
//
// It returns:
//   - idx is a handle to the entry, valid until the next storage reallocation
//   - found is false when the key is absent
func (D *Dictionary[K, V]) IndexForKey(key K) (idx Index[K, V], found bool) {
	inner, found := D.storage.IndexForKey(key)
	idx = Index[K, V]{inner: inner}

	return
}

// Next - Returns the successor of the given index in iteration order.
// Panics with crt.InvalidIndex when the index does not refer to the dictionary's current
// storage or is already the end index.
func (D *Dictionary[K, V]) Next(idx Index[K, V]) Index[K, V] {
	return Index[K, V]{inner: D.storage.Next(idx.inner)}
}

// Prev - Returns the predecessor of the given index in iteration order.
// Panics with crt.InvalidIndex when the index does not refer to the dictionary's current
// storage or no entry precedes it.
func (D *Dictionary[K, V]) Prev(idx Index[K, V]) Index[K, V] {
	return Index[K, V]{inner: D.storage.Prev(idx.inner)}
}

// At - Returns the entry the given index refers to.
// Panics with crt.InvalidIndex when the index does not refer to an occupied position of the
// dictionary's current storage.
func (D *Dictionary[K, V]) At(idx Index[K, V]) (key K, value V) {
	return D.storage.At(idx.inner)
}

// RemoveAt - Removes the entry the given index refers to and returns it.
// Panics with crt.InvalidIndex when the index does not refer to an occupied position of the
// dictionary's current storage. The index, and any other outstanding index, is invalid after
// the call.
func (D *Dictionary[K, V]) RemoveAt(idx Index[K, V]) (key K, value V) {
	return D.storage.RemoveAt(idx.inner)
}

// EqualFunc - Reports whether two dictionaries hold the same set of entries, comparing values
// with eq. The comparison is structural and independent of storage representation, a foreign
// backed dictionary equals a native one with the same contents.
func (D *Dictionary[K, V]) EqualFunc(other *Dictionary[K, V], eq func(a, b V) bool) bool {
	if D.storage.Count() != other.storage.Count() {
		return false
	}

	equal := true
	D.storage.Range(func(key K, value V) bool {
		otherValue, ok := other.storage.Get(key)
		if !ok || !eq(value, otherValue) {
			equal = false
			return false
		}
		return true
	})

	return equal
}

// Equal - Reports whether two dictionaries with comparable values hold the same set of entries,
// independent of storage representation
func Equal[K, V comparable](a, b *Dictionary[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}
