// Package errors provides error types with actionable suggestions for draftboard.
// This file contains errors raised while reading and parsing player files.
package errors

import (
	"fmt"
	"strings"
)

// MissingColumn creates an error when a required header is absent.
// headers is the header line that was actually found.
func MissingColumn(column string, headers []string) *DraftError {
	found := strings.Join(headers, ", ")
	if found == "" {
		found = "(none)"
	}
	return WithSuggestion(ErrMissingColumn,
		fmt.Sprintf("%s column not found", column),
		fmt.Sprintf(`The first line of the file must name every column.
  Add a %q column, or point draftboard at the column you have:
    DRAFTBOARD_COLUMNS_CATEGORY=<name> draftboard <file>
  or set columns.category in .draftboard/config.yaml`, column)).
		WithDetails("column", column).
		WithDetails("headers", found)
}

// EmptyFile creates an error when the input has no header line.
func EmptyFile(path string) *DraftError {
	return WithSuggestion(ErrEmptyFile, "file is empty",
		"Export the player table again; the first line must be the header.").
		WithDetails("path", path)
}

// FileNotFound creates an error for a path that does not exist.
func FileNotFound(path string) *DraftError {
	return WithSuggestion(ErrNotFound, fmt.Sprintf("file not found: %s", path),
		"Check the path, or run draftboard without arguments to pick a file.").
		WithDetails("path", path)
}

// NoMatches creates an error for a glob pattern that matched nothing.
func NoMatches(pattern string) *DraftError {
	return WithSuggestion(ErrNotFound, fmt.Sprintf("no files match %s", pattern),
		"Quote the pattern so the shell does not expand it, e.g. 'exports/**/*.csv'.").
		WithDetails("pattern", pattern)
}

// LoadFailed wraps an I/O or decode failure for a file.
func LoadFailed(path string, cause error) *DraftError {
	return Wrap(cause, ErrLoad, fmt.Sprintf("failed to read %s", path)).
		WithDetails("path", path)
}

// Unsupported creates an error for a file type draftboard cannot read.
func Unsupported(path, kind string) *DraftError {
	return WithSuggestion(ErrUnsupported, fmt.Sprintf("unsupported file type %s", kind),
		"Supported inputs are .csv, .txt and .xlsx, optionally compressed with gzip, bzip2 or xz.").
		WithDetails("path", path)
}
