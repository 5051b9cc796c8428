// Package errs holds the errors reported by neighbor search, prediction and evaluation.
// Callers wrap them with context and match with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidK is returned when k is not positive or the neighbor set is empty.
	ErrInvalidK = errors.New("k must be positive")
	// ErrEmptyDataset is returned when a search or evaluation has nothing to work on.
	ErrEmptyDataset = errors.New("dataset is empty")
	// ErrLengthMismatch is returned when paired sequences differ in length.
	ErrLengthMismatch = errors.New("sequences differ in length")
	// ErrMalformedPoint is returned when a record misses a required field.
	ErrMalformedPoint = errors.New("malformed point")
)
