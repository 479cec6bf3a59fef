package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a referenced record is absent at read time.
	ErrNotFound = errors.New("record not found")

	// ErrConflict indicates a uniqueness violation or a lost concurrent write.
	ErrConflict = errors.New("conflicting concurrent update")
)

// ValidationError reports a required field missing or malformed before any
// external call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NewValidation creates a ValidationError for the given field.
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// TransientError wraps a failure from an external collaborator (identity,
// storage, database). Multi-step flows abort on the first one and surface it
// as a single aggregated failure.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// Transient wraps err as a TransientError for the named operation.
func Transient(op string, err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Op: op, Err: err}
}

// IsTransient reports whether err is a TransientError.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
