package hasher

// ForeignMap - Interface for an associative collection owned by an external runtime.
//
// A Dictionary can be constructed wrapping a ForeignMap without copying it. The wrapped
// collection is treated as immutable, the first mutating operation on the Dictionary migrates
// every entry into native storage and drops the handle.
//
// EnumerateKeys must produce the keys in an order that is stable for one enumeration pass, and
// KeyAt must be consistent with that order for as long as the collection is unchanged.
type ForeignMap[K comparable, V any] interface {
	// Count - Returns the number of entries in the collection
	Count() int

	// ValueForKey - Returns the value stored under key, ok is false if the key is absent
	ValueForKey(key K) (value V, ok bool)

	// EnumerateKeys - Returns all keys in enumeration order
	EnumerateKeys() []K

	// KeyAt - Returns the key at the given position in enumeration order
	KeyAt(position int) K
}
