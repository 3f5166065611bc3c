package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExitCodes tests the exit code constants.
//
// It verifies that:
//   - ExitSuccess equals 0
//   - ExitFailure equals 2
//   - ExitConfigError equals 3
func TestExitCodes(t *testing.T) {
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 2, ExitFailure)
	assert.Equal(t, 3, ExitConfigError)
}

// TestExitError tests the ExitError struct and its methods.
//
// It verifies that:
//   - Error() returns the Message field when set
//   - Error() returns wrapped error message when Err is set
//   - Error() returns "exit code N" when neither is set
//   - Unwrap() returns the wrapped error
func TestExitError(t *testing.T) {
	t.Run("with message", func(t *testing.T) {
		err := &ExitError{Code: ExitFailure, Message: "test message"}
		assert.Equal(t, "test message", err.Error())
	})

	t.Run("with wrapped error", func(t *testing.T) {
		innerErr := stderrors.New("inner error")
		err := NewExitError(ExitConfigError, innerErr)
		assert.Equal(t, "inner error", err.Error())
		assert.Equal(t, innerErr, err.Unwrap())
	})

	t.Run("with neither", func(t *testing.T) {
		err := &ExitError{Code: ExitConfigError}
		assert.Contains(t, err.Error(), "exit code 3")
	})
}

// TestGetExitCode tests exit code extraction for each error kind.
//
// It verifies that:
//   - nil maps to ExitSuccess
//   - IO, malformed cache and backend errors map to ExitFailure
//   - Validation errors map to ExitConfigError
//   - Wrapped ExitError codes are honoured
func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"io", NewIOError("read cache", "x.yaml", stderrors.New("boom")), ExitFailure},
		{"malformed", NewMalformedCacheError("x.yaml", "not a list"), ExitFailure},
		{"backend", NewBackendError("read lockfile", stderrors.New("boom")), ExitFailure},
		{"validation", NewConfigValidationError("spec_repos[0]", "empty path"), ExitConfigError},
		{"wrapped exit", fmt.Errorf("ctx: %w", NewExitError(ExitConfigError, nil)), ExitConfigError},
		{"plain", stderrors.New("plain"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

// TestIOError tests IOError formatting and unwrapping.
func TestIOError(t *testing.T) {
	inner := stderrors.New("permission denied")
	err := NewIOError("write yaml", "/out/pods.yaml", inner)

	assert.Equal(t, "write yaml /out/pods.yaml: permission denied", err.Error())
	assert.True(t, stderrors.Is(err, inner))

	got, ok := IsIOError(fmt.Errorf("export: %w", err))
	require.True(t, ok)
	assert.Equal(t, "/out/pods.yaml", got.Path)

	assert.Equal(t, "write yaml x", (&IOError{Op: "write yaml", Path: "x"}).Error())
}

// TestMalformedCacheError tests that a malformed cache is also an IOError.
//
// It verifies that:
//   - The message names the path and reason
//   - IsMalformedCache finds it through wrapping
//   - IsIOError also matches it
func TestMalformedCacheError(t *testing.T) {
	err := fmt.Errorf("load: %w", NewMalformedCacheError("cache.yaml", "/0: missing property 'name'"))

	mce, ok := IsMalformedCache(err)
	require.True(t, ok)
	assert.Equal(t, "cache.yaml", mce.Path)
	assert.Contains(t, err.Error(), "malformed cache cache.yaml")

	ioErr, ok := IsIOError(err)
	require.True(t, ok)
	assert.Equal(t, "read cache", ioErr.Op)
	assert.Equal(t, "cache.yaml", ioErr.Path)

	_, ok = IsMalformedCache(NewIOError("read cache", "x", nil))
	assert.False(t, ok)
}

// TestBackendError tests BackendError formatting and detection.
func TestBackendError(t *testing.T) {
	inner := stderrors.New("Podfile.lock not found")
	err := NewBackendError("read lockfile", inner)

	assert.Equal(t, "backend: read lockfile: Podfile.lock not found", err.Error())
	assert.Equal(t, "backend: enumerate", NewBackendError("enumerate", nil).Error())
	assert.True(t, stderrors.Is(err, inner))

	_, ok := IsBackendError(fmt.Errorf("wrap: %w", err))
	assert.True(t, ok)
	_, ok = IsBackendError(inner)
	assert.False(t, ok)
}

// TestValidationError tests validation error formatting.
func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "--to-json", Message: "same path as --to-yaml", Expected: "distinct paths", Hint: "pick another file"}
	assert.Equal(t, "--to-json: same path as --to-yaml", err.Error())
	assert.Contains(t, err.VerboseError(), "Expected: distinct paths")
	assert.Contains(t, err.VerboseError(), "Hint: pick another file")

	assert.Equal(t, "bad", (&ValidationError{Message: "bad"}).Error())

	fe := NewFlagValidationError("--swift", "conflict", "drop one")
	assert.Equal(t, "--swift", fe.Field)
	assert.Equal(t, "drop one", fe.Hint)
}

// TestHints tests hint lookup for the common error kinds.
func TestHints(t *testing.T) {
	assert.Empty(t, GetHint(nil))
	assert.Empty(t, EnhanceErrorWithHint(nil))
	assert.Empty(t, GetHint(stderrors.New("something unrelated")))

	hint := GetHint(NewMalformedCacheError("c.yaml", "bad"))
	assert.Contains(t, hint, "Regenerate")

	hint = GetHint(NewBackendError("read lockfile", stderrors.New("Podfile.lock not found")))
	assert.Contains(t, hint, "pod install")

	enhanced := EnhanceErrorWithHint(stderrors.New("open x: permission denied"))
	assert.Contains(t, enhanced, "Hint: Insufficient permissions")
}

// TestPrintErrorWithHints tests error display.
func TestPrintErrorWithHints(t *testing.T) {
	t.Run("nil prints nothing", func(t *testing.T) {
		var buf bytes.Buffer
		PrintErrorWithHints(&buf, nil, false)
		assert.Empty(t, buf.String())
	})

	t.Run("io error", func(t *testing.T) {
		var buf bytes.Buffer
		PrintErrorWithHints(&buf, NewIOError("read cache", "c.yaml", stderrors.New("no such file or directory")), false)
		assert.Contains(t, buf.String(), "Error: read cache c.yaml")
		assert.Contains(t, buf.String(), "Hint:")
	})

	t.Run("validation verbose", func(t *testing.T) {
		var buf bytes.Buffer
		ve := &ValidationError{Field: "cache", Message: "empty", Expected: "a path"}
		PrintErrorWithHints(&buf, ve, true)
		assert.Contains(t, buf.String(), "Validation Error: cache: empty")
		assert.Contains(t, buf.String(), "Expected: a path")
	})

	t.Run("validation terse", func(t *testing.T) {
		var buf bytes.Buffer
		ve := &ValidationError{Field: "cache", Message: "empty", Expected: "a path"}
		PrintErrorWithHints(&buf, ve, false)
		assert.NotContains(t, buf.String(), "Expected")
	})
}
