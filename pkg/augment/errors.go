package augment

import (
	"errors"
	"fmt"
)

// ErrUnconfigured indicates the augmentation provider has no usable
// configuration (typically a missing API key). It is distinct from a
// transient provider failure so callers can report it differently.
var ErrUnconfigured = errors.New("augmentation provider is not configured")

// UnavailableError indicates the provider or its transport failed.
// Never fatal to the store; callers retry or proceed without augmentation.
type UnavailableError struct {
	Kind Kind
	Err  error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("augmentation %q unavailable: %v", e.Kind, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
