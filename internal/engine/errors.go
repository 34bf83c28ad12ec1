package engine

import (
	"errors"
	"fmt"
)

// ValidationError reports input that fails a precondition. No gateway
// call is made when one of these is returned.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ShapeError reports a response that did not parse into the expected
// structure. RawText carries the model's actual answer for inspection.
type ShapeError struct {
	Err     error
	RawText string
}

func (e *ShapeError) Error() string {
	return "unexpected response shape: " + e.Err.Error()
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

// IsValidation returns true if the error chain contains a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsShape returns true if the error chain contains a ShapeError.
func IsShape(err error) bool {
	var se *ShapeError
	return errors.As(err, &se)
}
