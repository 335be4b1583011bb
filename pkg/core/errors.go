package core

import (
	"errors"
	"fmt"
)

// NotFoundError indicates that an operation referenced a notebook id
// that is not present in the live collection.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("notebook not found: %s", e.ID)
}

// ImportError indicates that an import source could not be turned into a notebook.
// The notebook is not created.
type ImportError struct {
	Name   string
	Reason string
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("cannot import %q: %s", e.Name, e.Reason)
}

// PersistenceError indicates that the durable store rejected a read or write.
// The in-memory collection is rolled back to its pre-mutation state, so the
// caller can retry without losing data, but the failure must be surfaced.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
