// Package errors provides sentinel errors and exit codes for the getpage CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes reported to the shell.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates bad usage or name derivation failure.
	ExitValidationError = 2
)

// Sentinel errors for known conditions.
var (
	// ErrUsage indicates bad or missing CLI arguments.
	ErrUsage = errors.New("usage error")

	// ErrEmptyName indicates the input phrase normalized to an empty name.
	ErrEmptyName = errors.New("empty name")
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrUsage), errors.Is(err, ErrEmptyName):
		return ExitValidationError
	default:
		return ExitGeneralError
	}
}

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewEmptyNameError creates the error reported when a phrase yields no words.
func NewEmptyNameError(raw string) error {
	return &DetailError{
		Type:    "name derivation failed",
		Message: fmt.Sprintf("%q contains no usable word characters", raw),
		Hint:    "Provide a phrase with at least one letter or digit, e.g. \"reset password\".",
		Cause:   ErrEmptyName,
	}
}
