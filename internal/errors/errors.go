// Package errors provides a lightweight structured error type (DocFeaturesError)
// for category-based classification in the hook runner and CLI.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory represents the category of an error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Copy and hook processing errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryHook       ErrorCategory = "hook"

	// External system integration errors
	CategoryEvents ErrorCategory = "events"

	// Runtime and infrastructure errors
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// DocFeaturesError is a structured error with category, severity and context
type DocFeaturesError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for DocFeaturesError
type ContextFields map[string]any

// Error implements the error interface
func (e *DocFeaturesError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *DocFeaturesError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *DocFeaturesError) WithContext(key string, value any) *DocFeaturesError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new DocFeaturesError
func New(category ErrorCategory, severity ErrorSeverity, message string) *DocFeaturesError {
	return &DocFeaturesError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new DocFeaturesError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *DocFeaturesError {
	return &DocFeaturesError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As finds the first DocFeaturesError in err's chain.
func As(err error) (*DocFeaturesError, bool) {
	var dfe *DocFeaturesError
	if stdErrors.As(err, &dfe) {
		return dfe, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if dfe, ok := As(err); ok {
		return dfe.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a DocFeaturesError
func GetCategory(err error) ErrorCategory {
	if dfe, ok := As(err); ok {
		return dfe.Category
	}
	return CategoryInternal
}
