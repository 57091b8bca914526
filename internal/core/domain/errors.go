package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by stores and use cases when an entity does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable marks failures of the persistence layer itself
	// (connection refused, timeouts, cancelled context). A routine pass that
	// sees it aborts and relies on the next tick.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrDataIntegrity marks rows whose state the engine refuses to guess
	// around, e.g. an active ad without an accrual checkpoint.
	ErrDataIntegrity = errors.New("data integrity violation")

	// ErrValidation is returned for malformed input rejected at write time.
	ErrValidation = errors.New("validation failed")

	ErrInvalidInterval = fmt.Errorf("%w: interval end is before start", ErrValidation)
)

// IntegrityError carries the offending ad and a reason.
type IntegrityError struct {
	AdID   int64
	Reason string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("ad %d: %s", e.AdID, e.Reason)
}

func (e *IntegrityError) Unwrap() error {
	return ErrDataIntegrity
}

// ValidationError describes a single rejected field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
