package models

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrOutOfRange = errors.New("position out of range")
	ErrEmptyCart  = errors.New("cart is empty")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) true for every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// OutOfRangeError reports a positional access outside [0, Length).
type OutOfRangeError struct {
	Position int
	Length   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("position %d out of range [0, %d)", e.Position, e.Length)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
