package unisql

import (
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType int

const (
	// ErrorTypeUnknown represents an unknown error
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeSchemeMismatch represents a connection URL whose scheme does
	// not match the engine being connected, or a URL that cannot be parsed
	ErrorTypeSchemeMismatch
	// ErrorTypeConnection represents a failure opening or closing the
	// underlying driver connection
	ErrorTypeConnection
	// ErrorTypeQuery represents a driver failure while executing a statement
	ErrorTypeQuery
	// ErrorTypeUnsupportedType represents a column whose engine-reported type
	// has no corresponding value kind
	ErrorTypeUnsupportedType
	// ErrorTypeColumnNotFound represents a lookup by a column name that is
	// not part of the result set
	ErrorTypeColumnNotFound
	// ErrorTypeEmptyResult represents a first-row lookup on a result set
	// with zero rows
	ErrorTypeEmptyResult
	// ErrorTypeAlreadyClosed represents an operation on a connection that
	// has been closed
	ErrorTypeAlreadyClosed
)

// Error represents a structured error with type information
type Error struct {
	Type    ErrorType
	Message string
	// Column is the offending column name, when the failure is tied to a
	// specific column
	Column string
	// TypeName is the engine-reported column type, for unsupported-type
	// failures
	TypeName string
	Cause    error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsType checks if the error is of a specific type
func (e *Error) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// NewError creates a new Error with the specified type and message
func NewError(errorType ErrorType, message string) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
	}
}

// NewErrorWithCause creates a new Error with the specified type, message, and underlying cause
func NewErrorWithCause(errorType ErrorType, message string, cause error) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewSchemeMismatchError creates an error for a connection URL whose scheme
// does not identify the expected engine family
func NewSchemeMismatchError(scheme string, want string) *Error {
	return NewError(ErrorTypeSchemeMismatch,
		fmt.Sprintf("connection URL scheme %q does not match engine %q", scheme, want))
}

// NewConnectionError creates a connection-related error wrapping the driver failure
func NewConnectionError(message string, cause error) *Error {
	return NewErrorWithCause(ErrorTypeConnection, message, cause)
}

// NewQueryError creates a statement-execution error wrapping the driver failure
func NewQueryError(message string, cause error) *Error {
	return NewErrorWithCause(ErrorTypeQuery, message, cause)
}

// NewUnsupportedTypeError creates an error for a column type that has no
// corresponding value kind
func NewUnsupportedTypeError(column string, index int, typeName string) *Error {
	return &Error{
		Type:     ErrorTypeUnsupportedType,
		Message:  fmt.Sprintf("unsupported column type %q for column %q (index %d)", typeName, column, index),
		Column:   column,
		TypeName: typeName,
	}
}

// NewColumnNotFoundError creates an error for a lookup by an unknown column name
func NewColumnNotFoundError(column string) *Error {
	return &Error{
		Type:    ErrorTypeColumnNotFound,
		Message: fmt.Sprintf("column %q is not part of the result set", column),
		Column:  column,
	}
}

// NewEmptyResultError creates an error for a first-row lookup on an empty result set
func NewEmptyResultError(column string) *Error {
	return &Error{
		Type:    ErrorTypeEmptyResult,
		Message: fmt.Sprintf("result set has no rows for column %q", column),
		Column:  column,
	}
}

// NewAlreadyClosedError creates an error for an operation attempted after Close
func NewAlreadyClosedError(operation string) *Error {
	return NewError(ErrorTypeAlreadyClosed,
		fmt.Sprintf("cannot %s: the connection is closed", operation))
}

// IsSchemeMismatchError checks if an error is a scheme-mismatch error
func IsSchemeMismatchError(err error) bool {
	if uErr, ok := err.(*Error); ok {
		return uErr.IsType(ErrorTypeSchemeMismatch)
	}
	return false
}

// IsConnectionError checks if an error is connection-related
func IsConnectionError(err error) bool {
	if uErr, ok := err.(*Error); ok {
		return uErr.IsType(ErrorTypeConnection)
	}
	return false
}

// IsQueryError checks if an error is statement-execution-related
func IsQueryError(err error) bool {
	if uErr, ok := err.(*Error); ok {
		return uErr.IsType(ErrorTypeQuery)
	}
	return false
}

// IsUnsupportedTypeError checks if an error reports an unsupported column type
func IsUnsupportedTypeError(err error) bool {
	if uErr, ok := err.(*Error); ok {
		return uErr.IsType(ErrorTypeUnsupportedType)
	}
	return false
}

// IsColumnNotFoundError checks if an error reports an unknown column name
func IsColumnNotFoundError(err error) bool {
	if uErr, ok := err.(*Error); ok {
		return uErr.IsType(ErrorTypeColumnNotFound)
	}
	return false
}

// IsEmptyResultError checks if an error reports an empty result set
func IsEmptyResultError(err error) bool {
	if uErr, ok := err.(*Error); ok {
		return uErr.IsType(ErrorTypeEmptyResult)
	}
	return false
}

// IsAlreadyClosedError checks if an error reports a closed connection
func IsAlreadyClosedError(err error) bool {
	if uErr, ok := err.(*Error); ok {
		return uErr.IsType(ErrorTypeAlreadyClosed)
	}
	return false
}
