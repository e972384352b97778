package history

import "errors"

var (
	// ErrNotFound is returned when no record exists with the requested id
	ErrNotFound = errors.New("scan record not found")
)
