package repository

import "errors"

var (
	// ErrNotFound is returned when no record matches the lookup key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate record")
)
