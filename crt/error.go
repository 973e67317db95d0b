package crt

// KeyNotFound - Custom error to inform that no entry was found for a key
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// InvalidIndex - Custom error to inform that an index is not valid for the dictionary it was used with.
// An index becomes invalid when the storage it was created against has been replaced by a mutating
// operation, or when it is used against a different dictionary altogether.
type InvalidIndex struct {
	msg string
}

// Error - Used to notify that an index is invalid
func (E InvalidIndex) Error() string {
	if E.msg == "" {
		return "index is not valid for this dictionary storage"
	}
	return E.msg
}

// ForeignMutation - Custom error to inform that the wrapped foreign collection was mutated directly.
// The foreign collaborator is treated as immutable while wrapped, direct mutation is always rejected.
type ForeignMutation struct {
	msg string
}

// Error - Used to notify that the foreign collection changed under the dictionary
func (E ForeignMutation) Error() string {
	if E.msg == "" {
		return "foreign collection was mutated while wrapped by a dictionary"
	}
	return E.msg
}

// DuplicateKey - Custom error to inform that the same key was given more than once in literal construction
type DuplicateKey struct {
	msg string
}

// Error - Used to notify that a key was given more than once
func (E DuplicateKey) Error() string {
	if E.msg == "" {
		return "duplicate key in literal construction"
	}
	return E.msg
}
