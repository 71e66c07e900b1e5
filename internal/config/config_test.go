package config

import (
	"strings"
	"testing"
	"time"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Columns.FirstName != "firstName" {
		t.Errorf("expected columns.first_name 'firstName', got %q", cfg.Columns.FirstName)
	}
	if cfg.Columns.Category != "slotName" {
		t.Errorf("expected columns.category 'slotName', got %q", cfg.Columns.Category)
	}
	if cfg.Columns.Rank != "rank" {
		t.Errorf("expected columns.rank 'rank', got %q", cfg.Columns.Rank)
	}
	if cfg.Display.RosterHigh != 20 {
		t.Errorf("expected display.roster_high 20, got %v", cfg.Display.RosterHigh)
	}
	if cfg.Display.RosterMedium != 7 {
		t.Errorf("expected display.roster_medium 7, got %v", cfg.Display.RosterMedium)
	}
	if cfg.Watch.Enabled {
		t.Error("expected watch.enabled false by default")
	}
	if cfg.Watch.Debounce != DefaultDebounce {
		t.Errorf("expected watch.debounce %v, got %v", DefaultDebounce, cfg.Watch.Debounce)
	}
	if cfg.Log.Level != LogLevelInfo {
		t.Errorf("expected log.level info, got %q", cfg.Log.Level)
	}
	if len(cfg.Categories.Colors) == 0 {
		t.Error("expected default category colors")
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Columns.LastName != DefaultLastNameColumn {
		t.Errorf("expected default last name column, got %q", cfg.Columns.LastName)
	}
	if cfg.Columns.Rostered != DefaultRosteredColumn {
		t.Errorf("expected default rostered column, got %q", cfg.Columns.Rostered)
	}
	if cfg.Categories.Default != DefaultCategoryColor {
		t.Errorf("expected default category color, got %q", cfg.Categories.Default)
	}
	if cfg.Display.SplitMinWidth != DefaultSplitMinWidth {
		t.Errorf("expected split min width %d, got %d", DefaultSplitMinWidth, cfg.Display.SplitMinWidth)
	}
	if cfg.Log.Dir != DefaultLogDir {
		t.Errorf("expected log dir %q, got %q", DefaultLogDir, cfg.Log.Dir)
	}
	if cfg.Log.MaxFiles != DefaultMaxLogFiles {
		t.Errorf("expected max files %d, got %d", DefaultMaxLogFiles, cfg.Log.MaxFiles)
	}
}

func TestConfig_ApplyDefaults_PreservesExistingValues(t *testing.T) {
	cfg := &Config{
		Columns: ColumnsConfig{Category: "position"},
		Display: DisplayConfig{RosterHigh: 50, RosterMedium: 10},
		Watch:   WatchConfig{Debounce: time.Second},
		Log:     LogConfig{Level: LogLevelDebug},
	}
	cfg.ApplyDefaults()

	if cfg.Columns.Category != "position" {
		t.Errorf("expected category 'position' preserved, got %q", cfg.Columns.Category)
	}
	if cfg.Display.RosterHigh != 50 || cfg.Display.RosterMedium != 10 {
		t.Errorf("expected roster thresholds preserved, got %v/%v", cfg.Display.RosterHigh, cfg.Display.RosterMedium)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("expected debounce preserved, got %v", cfg.Watch.Debounce)
	}
	if cfg.Log.Level != LogLevelDebug {
		t.Errorf("expected log level preserved, got %q", cfg.Log.Level)
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_EmptyColumn(t *testing.T) {
	cfg := NewConfig()
	cfg.Columns.Category = "  "

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for empty category column")
	}
	if !strings.Contains(err.Error(), "columns.category") {
		t.Errorf("expected error to mention columns.category, got: %v", err)
	}
}

func TestConfig_Validate_DuplicateColumns(t *testing.T) {
	cfg := NewConfig()
	cfg.Columns.Rank = "slotName"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for duplicate columns")
	}
	if !strings.Contains(err.Error(), "columns.rank") {
		t.Errorf("expected error to mention columns.rank, got: %v", err)
	}
}

func TestConfig_Validate_RosterThresholds(t *testing.T) {
	tests := []struct {
		name    string
		high    float64
		medium  float64
		wantErr string
	}{
		{"negative high", -1, 7, "display.roster_high"},
		{"negative medium", 20, -1, "display.roster_medium"},
		{"medium above high", 10, 15, "display.roster_medium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Display.RosterHigh = tt.high
			cfg.Display.RosterMedium = tt.medium

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error to mention %s, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfig_Validate_EqualThresholdsAreValid(t *testing.T) {
	cfg := NewConfig()
	cfg.Display.RosterHigh = 10
	cfg.Display.RosterMedium = 10

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected equal thresholds to be valid, got: %v", err)
	}
}

func TestConfig_Validate_InvalidLogLevel(t *testing.T) {
	cfg := NewConfig()
	cfg.Log.Level = "verbose"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for invalid log level")
	}
	if !strings.Contains(err.Error(), "log.level") {
		t.Errorf("expected error to mention log.level, got: %v", err)
	}
}

func TestConfig_Validate_ValidLogLevels(t *testing.T) {
	for _, level := range []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError} {
		t.Run(string(level), func(t *testing.T) {
			cfg := NewConfig()
			cfg.Log.Level = level
			if err := cfg.Validate(); err != nil {
				t.Errorf("expected %q to be valid, got: %v", level, err)
			}
		})
	}
}

func TestConfig_Validate_NegativeDebounce(t *testing.T) {
	cfg := NewConfig()
	cfg.Watch.Debounce = -time.Second

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative debounce")
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Columns.Rank = ""
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}

	errs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(errs) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if !strings.HasPrefix(err.Error(), "multiple validation errors:") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "test.field", Message: "is invalid"}
	if err.Error() != "test.field: is invalid" {
		t.Errorf("unexpected error message: %q", err.Error())
	}
}

func TestValidationErrors_Error(t *testing.T) {
	if (ValidationErrors{}).Error() != "" {
		t.Error("expected empty message for no errors")
	}

	single := ValidationErrors{{Field: "a", Message: "bad"}}
	if single.Error() != "a: bad" {
		t.Errorf("unexpected single error message: %q", single.Error())
	}
}

func TestCategoriesConfig_Color(t *testing.T) {
	c := CategoriesConfig{
		Colors:  map[string]string{"QB": "#111111", "d/st": "#222222"},
		Default: "#999999",
	}

	tests := []struct {
		category string
		want     string
	}{
		{"QB", "#111111"},
		{"qb", "#111111"},
		{"D/ST", "#222222"},
		{"RB", "#999999"},
		{"", "#999999"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			if got := c.Color(tt.category); got != tt.want {
				t.Errorf("Color(%q) = %q, want %q", tt.category, got, tt.want)
			}
		})
	}
}
