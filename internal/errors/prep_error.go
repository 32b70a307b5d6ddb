// Package errors provides standardized error types for preprocessing
// operations. It defines PrepError for consistent error handling across the
// pipeline stages, with operation context and error wrapping support.
package errors

import (
	"fmt"
)

// PrepError represents standardized errors across all preprocessing operations
type PrepError struct {
	Op      string // Operation name (e.g., "Prune", "Impute", "Scale")
	Column  string // Column name if applicable
	Message string // Human-readable error description
	Cause   error  // Underlying error cause
}

// Error implements the error interface
func (e *PrepError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s failed on column '%s': %s", e.Op, e.Column, e.Message)
	}
	return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying cause for error wrapping support
func (e *PrepError) Unwrap() error {
	return e.Cause
}

// Is implements error equality checking for errors.Is()
func (e *PrepError) Is(target error) bool {
	if pe, ok := target.(*PrepError); ok {
		return e.Op == pe.Op && e.Column == pe.Column && e.Message == pe.Message
	}
	return false
}

// Common error constructors for consistent error creation

// NewConfigurationError creates an error for invalid transform parameters
func NewConfigurationError(op, message string) *PrepError {
	return &PrepError{
		Op:      op,
		Message: message,
	}
}

// NewSchemaMismatchError creates an error for positional schema violations
func NewSchemaMismatchError(op string, want, got int) *PrepError {
	return &PrepError{
		Op:      op,
		Message: fmt.Sprintf("expected %d columns, got %d", want, got),
	}
}

// NewColumnNotFoundError creates an error for operations on non-existent columns
func NewColumnNotFoundError(op, column string) *PrepError {
	return &PrepError{
		Op:      op,
		Column:  column,
		Message: "column does not exist",
	}
}

// NewInvariantViolationError creates an error for broken pipeline postconditions
func NewInvariantViolationError(op, column, message string) *PrepError {
	return &PrepError{
		Op:      op,
		Column:  column,
		Message: message,
	}
}

// NewUnsupportedTypeError creates an error for unsupported data types
func NewUnsupportedTypeError(op, typeName string) *PrepError {
	return &PrepError{
		Op:      op,
		Message: fmt.Sprintf("unsupported type: %s", typeName),
	}
}

// NewInternalError creates an error for internal operation failures
func NewInternalError(op string, cause error) *PrepError {
	return &PrepError{
		Op:      op,
		Message: "internal error occurred",
		Cause:   cause,
	}
}

// Predefined error variables for common cases
var (
	// ErrEmptyFrame indicates operations on empty frames
	ErrEmptyFrame = &PrepError{
		Op:      "validation",
		Message: "operation not supported on empty frame",
	}

	// ErrMismatchedLength indicates length mismatches between columns
	ErrMismatchedLength = &PrepError{
		Op:      "validation",
		Message: "columns must have the same length",
	}

	// ErrInvalidIndex indicates out-of-bounds index access
	ErrInvalidIndex = &PrepError{
		Op:      "indexing",
		Message: "index out of bounds",
	}
)
