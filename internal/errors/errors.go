// Package errors defines the structured error types shared across
// flakesmith. Errors carry a category and a stable code so commands can
// branch on failure class without string matching, and wrap their cause
// for errors.Is/As traversal.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeExec       ErrorType = "exec"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// FlakesmithError is a structured error with category, code and optional
// file-path context.
type FlakesmithError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
	Path    string
}

// Error implements the error interface.
func (e *FlakesmithError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}
	if e.Path != "" {
		parts = append(parts, e.Path)
	}
	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")
	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}
	return result
}

// Unwrap returns the underlying cause error.
func (e *FlakesmithError) Unwrap() error {
	return e.Cause
}

// Is matches errors of the same type and code.
func (e *FlakesmithError) Is(target error) bool {
	var t *FlakesmithError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}
	return false
}

// WithPath attaches a file path to the error and returns it.
func (e *FlakesmithError) WithPath(path string) *FlakesmithError {
	e.Path = path
	return e
}

// NewValidationError creates a validation-category error.
func NewValidationError(code, message string) *FlakesmithError {
	return &FlakesmithError{Type: ErrorTypeValidation, Code: code, Message: message}
}

// NewIOError creates an io-category error wrapping its cause.
func NewIOError(code, message string, cause error) *FlakesmithError {
	return &FlakesmithError{Type: ErrorTypeIO, Code: code, Message: message, Cause: cause}
}

// NewExecError creates an exec-category error wrapping its cause.
func NewExecError(code, message string, cause error) *FlakesmithError {
	return &FlakesmithError{Type: ErrorTypeExec, Code: code, Message: message, Cause: cause}
}

// NewConfigError creates a config-category error wrapping its cause.
func NewConfigError(code, message string, cause error) *FlakesmithError {
	return &FlakesmithError{Type: ErrorTypeConfig, Code: code, Message: message, Cause: cause}
}

// NewInternalError creates an internal-category error wrapping its cause.
func NewInternalError(code, message string, cause error) *FlakesmithError {
	return &FlakesmithError{Type: ErrorTypeInternal, Code: code, Message: message, Cause: cause}
}

// IsType reports whether err is a FlakesmithError of the given type.
func IsType(err error, t ErrorType) bool {
	var fe *FlakesmithError
	if errors.As(err, &fe) {
		return fe.Type == t
	}
	return false
}
