package storage

import "errors"

// ErrNotFound is returned when a cache key does not exist.
var ErrNotFound = errors.New("not found")
