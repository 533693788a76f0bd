package domain

import "errors"

// ErrValidation is the parent of every input validation failure. Nothing is
// written to the store when an operation returns it.
var ErrValidation = errors.New("validation failed")

// ValidationError reports which input was rejected and why.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
