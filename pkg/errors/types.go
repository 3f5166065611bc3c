package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration.
const (
	// ExitSuccess indicates the query completed, with or without matches.
	ExitSuccess = 0

	// ExitFailure indicates a fatal IO, cache or backend error.
	ExitFailure = 2

	// ExitConfigError indicates invalid flags or configuration.
	ExitConfigError = 3
)

// ExitError represents a command termination with a specific exit code.
//
// Fields:
//   - Code: Exit code (use constants ExitSuccess, ExitFailure, ExitConfigError)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
//
// Example:
//
//	return &ExitError{
//	    Code:    ExitConfigError,
//	    Message: "--to-yaml and --to-json point at the same file",
//	}
type ExitError struct {
	// Code is the exit code for the command.
	Code int

	// Message is a human-readable description of why the command failed.
	Message string

	// Err is the underlying error that caused this exit.
	// May be nil if no underlying error exists.
	Err error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise returns the underlying error's
// message, or a default message with the exit code.
//
// Returns:
//   - string: The error message
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying error, or nil if none exists
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code (use ExitSuccess, ExitFailure, ExitConfigError)
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// GetExitCode extracts the exit code from an error.
//
// If err is nil, returns ExitSuccess. If err wraps an ExitError, returns its
// code. Validation errors map to ExitConfigError. Everything else, including
// IOError, MalformedCacheError and BackendError, is ExitFailure.
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if exitErr, ok := IsExitError(err); ok {
		return exitErr.Code
	}

	if _, ok := IsValidationError(err); ok {
		return ExitConfigError
	}

	return ExitFailure
}

// IsExitError checks if err is an ExitError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ExitError: The ExitError if err is one, nil otherwise
//   - bool: true if err is an ExitError
func IsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}

// IOError reports a failed read or write of a snapshot or export file.
//
// Fields:
//   - Op: The operation that failed ("read cache", "write yaml", ...)
//   - Path: The file involved
//   - Err: Underlying error
//
// Example:
//
//	return &IOError{Op: "read cache", Path: path, Err: err}
type IOError struct {
	// Op names the attempted operation.
	Op string

	// Path is the file that could not be read or written.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
//
// Returns:
//   - string: "<op> <path>: <cause>"
func (e *IOError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s", e.Op, e.Path)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates an IOError.
//
// Parameters:
//   - op: Operation name
//   - path: File path
//   - err: Underlying error
//
// Returns:
//   - *IOError: New IO error
func NewIOError(op, path string, err error) *IOError {
	return &IOError{Op: op, Path: path, Err: err}
}

// IsIOError checks if err is, or wraps, an IOError and returns it.
//
// A MalformedCacheError also satisfies this check.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *IOError: The IOError if found, nil otherwise
//   - bool: true if err is an IOError
func IsIOError(err error) (*IOError, bool) {
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return ioErr, true
	}
	return nil, false
}

// MalformedCacheError reports a snapshot that parsed as a document but does
// not have the record shape.
//
// Fields:
//   - Path: The snapshot file
//   - Reason: Description of the shape violation
type MalformedCacheError struct {
	// Path is the snapshot file.
	Path string

	// Reason describes what is wrong with the document.
	Reason string
}

// Error implements the error interface.
//
// Returns:
//   - string: "malformed cache <path>: <reason>"
func (e *MalformedCacheError) Error() string {
	return fmt.Sprintf("malformed cache %s: %s", e.Path, e.Reason)
}

// Unwrap exposes the malformed cache as an IOError on the read.
func (e *MalformedCacheError) Unwrap() error {
	return &IOError{Op: "read cache", Path: e.Path, Err: errors.New(e.Reason)}
}

// NewMalformedCacheError creates a MalformedCacheError.
//
// Parameters:
//   - path: Snapshot file path
//   - reason: Description of the shape violation
//
// Returns:
//   - *MalformedCacheError: New malformed cache error
func NewMalformedCacheError(path, reason string) *MalformedCacheError {
	return &MalformedCacheError{Path: path, Reason: reason}
}

// IsMalformedCache checks if err is, or wraps, a MalformedCacheError.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *MalformedCacheError: The error if found, nil otherwise
//   - bool: true if err is a MalformedCacheError
func IsMalformedCache(err error) (*MalformedCacheError, bool) {
	var mce *MalformedCacheError
	if errors.As(err, &mce) {
		return mce, true
	}
	return nil, false
}

// BackendError reports that the live backend could not enumerate packages.
//
// Fields:
//   - Op: What the backend was doing ("read lockfile", "enumerate targets")
//   - Err: Underlying error
type BackendError struct {
	// Op names the backend operation.
	Op string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
//
// Returns:
//   - string: "backend: <op>: <cause>"
func (e *BackendError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("backend: %s", e.Op)
	}
	return fmt.Sprintf("backend: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *BackendError) Unwrap() error {
	return e.Err
}

// NewBackendError creates a BackendError.
//
// Parameters:
//   - op: Backend operation name
//   - err: Underlying error
//
// Returns:
//   - *BackendError: New backend error
func NewBackendError(op string, err error) *BackendError {
	return &BackendError{Op: op, Err: err}
}

// IsBackendError checks if err is, or wraps, a BackendError.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *BackendError: The error if found, nil otherwise
//   - bool: true if err is a BackendError
func IsBackendError(err error) (*BackendError, bool) {
	var be *BackendError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
