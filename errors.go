package khata

import "errors"

// Error kinds returned by Book and Store operations. Callers use errors.Is
// to distinguish them; the wrapped message carries the detail.
var (
	// ErrValidation reports a missing or invalid required field, such as an
	// empty name or a non-positive amount.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound reports a customer or record id that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidPocket reports a pocket name outside the fixed set.
	ErrInvalidPocket = errors.New("unknown pocket")

	// ErrSchema reports a backup document that fails the structural check.
	ErrSchema = errors.New("invalid backup document")

	// ErrPersistence reports a failed write of the book to disk.
	ErrPersistence = errors.New("could not persist book")
)
