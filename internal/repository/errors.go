package repository

import "errors"

var (
	// ErrNotFound is returned when a requested row doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateShortID is returned when a short ID is already taken.
	ErrDuplicateShortID = errors.New("short ID already in use")
)
