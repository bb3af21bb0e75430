package repository

import "errors"

// ErrNotFound reports that no row matched the given filter. Services translate
// it into the entity-specific 404 failure.
var ErrNotFound = errors.New("record not found")
