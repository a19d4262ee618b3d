package entities

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete errors below match them through errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrIntegrity  = errors.New("integrity violation")
	ErrStore      = errors.New("store query failed")
)

// Entity names used in NotFoundError
const (
	EntityFile       = "file"
	EntityTranscript = "transcript"
	EntityConfidence = "confidence payload"
)

// ValidationError reports malformed input. Never retried automatically.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports a reference to a record that does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IntegrityError wraps a store-level constraint or serialization failure.
// The whole operation may be retried by the caller.
type IntegrityError struct {
	Op  string
	Err error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s during %s: %v", ErrIntegrity, e.Op, e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrity
}

// StoreError wraps any other failure of the underlying store, such as a lost connection.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s during %s: %v", ErrStore, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

// NewValidationError is a shorthand for &ValidationError{Field, Reason}
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
