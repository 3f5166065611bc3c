package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents an invalid configuration value or flag combination.
//
// Fields:
//   - Field: Name of the invalid field or flag
//   - Message: Description of what's wrong
//   - Expected: What the valid value should look like
//   - Hint: Actionable hint for fixing the error
//
// Example:
//
//	return &ValidationError{
//	    Field:    "spec_repos[1]",
//	    Message:  "empty path",
//	    Expected: "a directory containing a Specs folder",
//	}
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string

	// Message describes what is wrong with the field.
	Message string

	// Expected describes what a valid value should look like.
	Expected string

	// Hint provides an actionable suggestion for fixing the error.
	Hint string
}

// Error implements the error interface.
//
// Returns:
//   - string: "<field>: <message>", or just the message when Field is empty
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// VerboseError returns a detailed error message with the expected value and hint.
//
// Returns:
//   - string: Detailed error with expected values and hint
func (e *ValidationError) VerboseError() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf("\n    Expected: %s", e.Expected))
	}
	if e.Hint != "" {
		sb.WriteString(fmt.Sprintf("\n    Hint: %s", e.Hint))
	}

	return sb.String()
}

// IsValidationError checks if err is a ValidationError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ValidationError: The ValidationError if err is one, nil otherwise
//   - bool: true if err is a ValidationError
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// NewConfigValidationError creates a ValidationError for configuration issues.
//
// Parameters:
//   - field: The field name that failed validation
//   - message: Description of the error
//
// Returns:
//   - *ValidationError: New validation error
//
// Example:
//
//	err := errors.NewConfigValidationError("spec_repos[0]", "empty path")
func NewConfigValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewFlagValidationError creates a ValidationError for an invalid flag combination.
//
// Parameters:
//   - flag: The offending flag name, including dashes
//   - message: Description of the error
//   - hint: Resolution hint
//
// Returns:
//   - *ValidationError: New validation error
func NewFlagValidationError(flag, message, hint string) *ValidationError {
	return &ValidationError{
		Field:   flag,
		Message: message,
		Hint:    hint,
	}
}
