package repositories

import "errors"

var (
	// ErrNotFound is returned when no record matches the lookup key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write would break a unique key.
	ErrDuplicate = errors.New("duplicate key")
)
