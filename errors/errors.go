// Package errors provides error handling for morse.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints
//
// Usage:
//
//	// Create new error
//	err := errors.New("pattern is empty")
//
//	// Wrap with context
//	if err := v.ReadInConfig(); err != nil {
//	    return errors.Wrapf(err, "failed to read config file %s", path)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "patterns may only contain '.' and '-'")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
)

// User-facing hints
var (
	WithHint  = crdb.WithHint
	WithHintf = crdb.WithHintf
)

// Error inspection
var (
	Is           = crdb.Is
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// Common sentinel errors.
// Use these with errors.Is() and wrap them with errors.Wrap() to add context
// while preserving the type.
var (
	// ErrNotFound indicates the requested key or file does not exist
	ErrNotFound = New("not found")

	// ErrInvalidRequest indicates malformed input, such as a bad pattern or config value
	ErrInvalidRequest = New("invalid request")

	// ErrConflict indicates two entries claim the same key, such as a duplicated Morse pattern
	ErrConflict = New("conflict")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest
func IsInvalidRequestError(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}

// IsConflictError checks if an error is or wraps ErrConflict
func IsConflictError(err error) bool {
	return err != nil && Is(err, ErrConflict)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrapf(ErrNotFound, format, args...)
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidRequest, format, args...)
}

// NewConflictError creates a conflict error with a formatted message
func NewConflictError(format string, args ...interface{}) error {
	return Wrapf(ErrConflict, format, args...)
}
