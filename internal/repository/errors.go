package repository

import "errors"

// ErrNotFound is returned when a stored key does not exist.
var ErrNotFound = errors.New("not found")
