package repositories

import "errors"

// ErrNotFound is returned when a single-row lookup finds nothing.
var ErrNotFound = errors.New("record not found")
