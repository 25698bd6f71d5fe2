package repositories

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

var (
	// ErrNotFound signals that no product matched the given id or term.
	ErrNotFound = errors.New("product not found")

	// ErrUnexpected hides storage internals from callers. The underlying
	// failure is logged server-side before this is returned.
	ErrUnexpected = errors.New("unexpected error, check server logs")
)

// ConflictError is returned when a write is rejected by a uniqueness
// constraint, e.g. a duplicate slug.
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string {
	return e.Detail
}

// classifyError maps a storage failure to a domain outcome. ErrNotFound
// passes through unchanged, duplicate-key violations become ConflictError,
// and anything else is logged and flattened to ErrUnexpected.
func classifyError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return err
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &ConflictError{Detail: err.Error()}
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		log.Printf("storage error during %s: %v", op, err)
		return ErrUnexpected
	}
}
