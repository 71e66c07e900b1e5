// Package errors provides error types with actionable suggestions for draftboard.
// This file contains configuration-related errors.
package errors

import (
	"fmt"
	"strings"
)

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *DraftError {
	return WithSuggestion(ErrConfig,
		fmt.Sprintf("failed to parse configuration: %s", configPath),
		`Check your config.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Check for missing colons or quotes
  3. Regenerate it with: draftboard init --force`).
		WithCause(parseErr).
		WithDetails("path", configPath)
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *DraftError {
	suggestion := fmt.Sprintf("Fix the %q field in .draftboard/config.yaml", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	e := New(ErrConfig, fmt.Sprintf("invalid configuration: %s", message)).
		WithDetails("field", field)
	e.Suggestion = suggestion
	return e
}

// ConfigExists creates an error when init would overwrite a config file.
func ConfigExists(configPath string) *DraftError {
	return WithSuggestion(ErrConfig,
		fmt.Sprintf("configuration already exists: %s", configPath),
		"Use 'draftboard init --force' to overwrite it.").
		WithDetails("path", configPath)
}

// ConfigWriteFailed wraps a failure to save the configuration file.
func ConfigWriteFailed(configPath string, cause error) *DraftError {
	return New(ErrConfig, "failed to write configuration").
		WithCause(cause).
		WithDetails("path", configPath)
}
