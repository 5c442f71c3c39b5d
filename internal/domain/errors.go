package domain

import "errors"

// ErrNotFound is returned when a requested catalog entity does not exist.
var ErrNotFound = errors.New("not found")
