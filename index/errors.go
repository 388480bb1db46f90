package index

import "errors"

var (
	// ErrEmptyIdentity is returned when an entry has no identity string.
	ErrEmptyIdentity = errors.New("entry identity required")

	// ErrEmptyVector is returned when an entry has no vector.
	ErrEmptyVector = errors.New("entry vector required")

	// ErrDimensionMismatch is returned when a vector's dimension disagrees
	// with the dimension already established in the index.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)
