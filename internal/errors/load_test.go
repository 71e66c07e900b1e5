package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestMissingColumn(t *testing.T) {
	err := MissingColumn("slotName", []string{"firstName", "lastName", "rank"})

	if !errors.Is(err, ErrMissingColumn) {
		t.Error("MissingColumn should return ErrMissingColumn")
	}
	if err.Error() != "slotName column not found" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Details["headers"] != "firstName, lastName, rank" {
		t.Errorf("headers detail = %q", err.Details["headers"])
	}
	if !strings.Contains(err.Suggestion, "DRAFTBOARD_COLUMNS_CATEGORY") {
		t.Error("Suggestion should mention the env override")
	}
}

func TestMissingColumn_NoHeaders(t *testing.T) {
	err := MissingColumn("slotName", nil)

	if err.Details["headers"] != "(none)" {
		t.Errorf("headers detail = %q, want (none)", err.Details["headers"])
	}
}

func TestLoadErrors(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name string
		err  *DraftError
		kind error
	}{
		{"empty", EmptyFile("a.csv"), ErrEmptyFile},
		{"not found", FileNotFound("a.csv"), ErrNotFound},
		{"no matches", NoMatches("*.csv"), ErrNotFound},
		{"load failed", LoadFailed("a.csv", cause), ErrLoad},
		{"unsupported", Unsupported("a.pdf", ".pdf"), ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("expected kind %v, got %v", tt.kind, tt.err.Kind)
			}
			if tt.err.Message == "" {
				t.Error("expected a message")
			}
		})
	}

	if !errors.Is(LoadFailed("a.csv", cause), cause) {
		t.Error("LoadFailed should wrap its cause")
	}
}

func TestLoadErrorDetails(t *testing.T) {
	tests := []struct {
		name string
		err  *DraftError
		key  string
		want string
	}{
		{"empty", EmptyFile("a.csv"), "path", "a.csv"},
		{"not found", FileNotFound("a.csv"), "path", "a.csv"},
		{"no matches", NoMatches("*.csv"), "pattern", "*.csv"},
		{"load failed", LoadFailed("a.csv", errors.New("eof")), "path", "a.csv"},
		{"unsupported", Unsupported("a.pdf", ".pdf"), "path", "a.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Details[tt.key]; got != tt.want {
				t.Errorf("Details[%q] = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
