package catalog

import "errors"

var (
	// ErrNotFound indicates the requested game doesn't exist.
	ErrNotFound = errors.New("game not found")

	// ErrDuplicate indicates a unique constraint violation.
	ErrDuplicate = errors.New("duplicate entry")

	// ErrConstraint indicates a foreign key or check constraint violation.
	ErrConstraint = errors.New("constraint violation")
)
