// Package errors provides error types with actionable suggestions for
// draftboard. Errors carry enough context (file, column, headers) for the
// TUI dialog and the CLI to tell the user how to fix the input.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrMissingColumn indicates a required column header is absent.
	ErrMissingColumn = errors.New("missing column")
	// ErrEmptyFile indicates the input has no header line.
	ErrEmptyFile = errors.New("empty file")
	// ErrLoad indicates the input file could not be read or decoded.
	ErrLoad = errors.New("load error")
	// ErrUnsupported indicates an input format draftboard cannot read.
	ErrUnsupported = errors.New("unsupported format")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrNotFound indicates a file or resource was not found.
	ErrNotFound = errors.New("not found")
)

// DraftError is the base error type for draftboard errors.
// It wraps an underlying error and provides additional context.
type DraftError struct {
	// Kind is the category of error (e.g., ErrMissingColumn, ErrConfig).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, header list).
	Details map[string]string
}

// Error implements the error interface.
func (e *DraftError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *DraftError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether any error in err's chain matches the target.
func (e *DraftError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestions.
func (e *DraftError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *DraftError) WithDetails(key, value string) *DraftError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *DraftError) WithCause(cause error) *DraftError {
	e.Cause = cause
	return e
}

// New creates a new DraftError with the given kind and message.
func New(kind error, message string) *DraftError {
	return &DraftError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *DraftError {
	return &DraftError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *DraftError {
	return &DraftError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// FormatError returns the long form of err when it is a DraftError and the
// plain message otherwise.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	var de *DraftError
	if errors.As(err, &de) {
		return de.Format()
	}
	return "Error: " + err.Error() + "\n"
}
