package utils

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that a referenced product id does not exist. Lookups
// treat absence as a normal result; only update-style operations return this.
var ErrNotFound = errors.New("product not found")

// PersistenceError wraps a store or connectivity failure. It maps to HTTP 500
// and is surfaced as-is with no retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
