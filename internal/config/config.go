// Package config provides configuration data structures for draftboard.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config represents the complete draftboard configuration loaded from .draftboard/config.yaml.
type Config struct {
	Columns    ColumnsConfig    `yaml:"columns"    json:"columns"    mapstructure:"columns"`
	Categories CategoriesConfig `yaml:"categories" json:"categories" mapstructure:"categories"`
	Display    DisplayConfig    `yaml:"display"    json:"display"    mapstructure:"display"`
	Watch      WatchConfig      `yaml:"watch"      json:"watch"      mapstructure:"watch"`
	Log        LogConfig        `yaml:"log"        json:"log"        mapstructure:"log"`
}

// ColumnsConfig names the CSV headers draftboard reads.
type ColumnsConfig struct {
	// FirstName and LastName identify a player; rows missing either are dropped.
	FirstName string `yaml:"first_name" json:"first_name" mapstructure:"first_name"`
	LastName  string `yaml:"last_name"  json:"last_name"  mapstructure:"last_name"`
	// Category is the column filter tabs are built from (default: slotName).
	Category string `yaml:"category" json:"category" mapstructure:"category"`
	// Rank orders the selected board.
	Rank string `yaml:"rank" json:"rank" mapstructure:"rank"`
	// Optional metric columns. Missing columns render as blanks.
	ADP             string `yaml:"adp"              json:"adp"              mapstructure:"adp"`
	ProjectedPoints string `yaml:"projected_points" json:"projected_points" mapstructure:"projected_points"`
	PositionRank    string `yaml:"position_rank"    json:"position_rank"    mapstructure:"position_rank"`
	Team            string `yaml:"team"             json:"team"             mapstructure:"team"`
	Rostered        string `yaml:"rostered"         json:"rostered"         mapstructure:"rostered"`
}

// CategoriesConfig maps category values to tab and badge colors.
type CategoriesConfig struct {
	// Colors maps a category value (case-insensitive) to a lipgloss color.
	Colors map[string]string `yaml:"colors" json:"colors" mapstructure:"colors"`
	// Default is used for categories missing from Colors.
	Default string `yaml:"default" json:"default" mapstructure:"default"`
}

// Color returns the configured color for a category, or Default.
// Viper lowercases map keys, so the lookup ignores case.
func (c CategoriesConfig) Color(category string) string {
	if v, ok := c.Colors[strings.ToUpper(category)]; ok {
		return v
	}
	for k, v := range c.Colors {
		if strings.EqualFold(k, category) {
			return v
		}
	}
	return c.Default
}

// DisplayConfig controls card rendering and layout.
type DisplayConfig struct {
	// RosterHigh is the rostered percentage at or above which a player is "high" (default: 20).
	RosterHigh float64 `yaml:"roster_high" json:"roster_high" mapstructure:"roster_high"`
	// RosterMedium is the rostered percentage at or above which a player is "medium" (default: 7).
	RosterMedium float64 `yaml:"roster_medium" json:"roster_medium" mapstructure:"roster_medium"`
	// SplitMinWidth is the terminal width from which the two lists render side by side.
	SplitMinWidth int `yaml:"split_min_width" json:"split_min_width" mapstructure:"split_min_width"`
	// Expanded renders every card with all metrics by default.
	Expanded bool `yaml:"expanded" json:"expanded" mapstructure:"expanded"`
}

// WatchConfig configures reloading the open file when it changes on disk.
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled"  json:"enabled"  mapstructure:"enabled"`
	Debounce time.Duration `yaml:"debounce" json:"debounce" mapstructure:"debounce"`
}

// LogLevel is the minimum level written to the log file.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogConfig configures the log file.
type LogConfig struct {
	Level LogLevel `yaml:"level" json:"level" mapstructure:"level"`
	// Dir is the log directory (default: .draftboard/logs).
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// MaxFiles is how many log files are kept.
	MaxFiles int `yaml:"max_files" json:"max_files" mapstructure:"max_files"`
}

// Default values.
const (
	DefaultFirstNameColumn       = "firstName"
	DefaultLastNameColumn        = "lastName"
	DefaultCategoryColumn        = "slotName"
	DefaultRankColumn            = "rank"
	DefaultADPColumn             = "adp"
	DefaultProjectedPointsColumn = "projectedPoints"
	DefaultPositionRankColumn    = "positionRank"
	DefaultTeamColumn            = "teamName"
	DefaultRosteredColumn        = "percentRostered"

	DefaultCategoryColor = "#6B7280"
	DefaultRosterHigh    = 20.0
	DefaultRosterMedium  = 7.0
	DefaultSplitMinWidth = 100
	DefaultDebounce      = 250 * time.Millisecond
	DefaultLogDir        = ".draftboard/logs"
	DefaultMaxLogFiles   = 10
)

// DefaultCategoryColors returns the built-in slot colors.
func DefaultCategoryColors() map[string]string {
	return map[string]string{
		"QB":   "#EF4444",
		"RB":   "#10B981",
		"WR":   "#3B82F6",
		"TE":   "#F59E0B",
		"K":    "#8B5CF6",
		"D/ST": "#6366F1",
		"FLEX": "#06B6D4",
		"BE":   "#9CA3AF",
		"IR":   "#B91C1C",
	}
}

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Columns: ColumnsConfig{
			FirstName:       DefaultFirstNameColumn,
			LastName:        DefaultLastNameColumn,
			Category:        DefaultCategoryColumn,
			Rank:            DefaultRankColumn,
			ADP:             DefaultADPColumn,
			ProjectedPoints: DefaultProjectedPointsColumn,
			PositionRank:    DefaultPositionRankColumn,
			Team:            DefaultTeamColumn,
			Rostered:        DefaultRosteredColumn,
		},
		Categories: CategoriesConfig{
			Colors:  DefaultCategoryColors(),
			Default: DefaultCategoryColor,
		},
		Display: DisplayConfig{
			RosterHigh:    DefaultRosterHigh,
			RosterMedium:  DefaultRosterMedium,
			SplitMinWidth: DefaultSplitMinWidth,
			Expanded:      false,
		},
		Watch: WatchConfig{
			Enabled:  false,
			Debounce: DefaultDebounce,
		},
		Log: LogConfig{
			Level:    LogLevelInfo,
			Dir:      DefaultLogDir,
			MaxFiles: DefaultMaxLogFiles,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	// Columns
	fill := func(dst *string, def string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = def
		}
	}
	fill(&c.Columns.FirstName, defaults.Columns.FirstName)
	fill(&c.Columns.LastName, defaults.Columns.LastName)
	fill(&c.Columns.Category, defaults.Columns.Category)
	fill(&c.Columns.Rank, defaults.Columns.Rank)
	fill(&c.Columns.ADP, defaults.Columns.ADP)
	fill(&c.Columns.ProjectedPoints, defaults.Columns.ProjectedPoints)
	fill(&c.Columns.PositionRank, defaults.Columns.PositionRank)
	fill(&c.Columns.Team, defaults.Columns.Team)
	fill(&c.Columns.Rostered, defaults.Columns.Rostered)

	// Categories
	if c.Categories.Colors == nil {
		c.Categories.Colors = defaults.Categories.Colors
	}
	fill(&c.Categories.Default, defaults.Categories.Default)

	// Display
	if c.Display.RosterHigh == 0 {
		c.Display.RosterHigh = defaults.Display.RosterHigh
	}
	if c.Display.RosterMedium == 0 {
		c.Display.RosterMedium = defaults.Display.RosterMedium
	}
	if c.Display.SplitMinWidth == 0 {
		c.Display.SplitMinWidth = defaults.Display.SplitMinWidth
	}

	// Watch
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = defaults.Watch.Debounce
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	fill(&c.Log.Dir, defaults.Log.Dir)
	if c.Log.MaxFiles == 0 {
		c.Log.MaxFiles = defaults.Log.MaxFiles
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	// Identity, category and rank columns must be named and distinct.
	required := []struct {
		field string
		value string
	}{
		{"columns.first_name", c.Columns.FirstName},
		{"columns.last_name", c.Columns.LastName},
		{"columns.category", c.Columns.Category},
		{"columns.rank", c.Columns.Rank},
	}
	seen := make(map[string]string, len(required))
	for _, r := range required {
		name := strings.TrimSpace(r.value)
		if name == "" {
			errs = append(errs, &ValidationError{Field: r.field, Message: "must not be empty"})
			continue
		}
		if other, dup := seen[name]; dup {
			errs = append(errs, &ValidationError{
				Field:   r.field,
				Message: fmt.Sprintf("must differ from %s (both are %q)", other, name),
			})
			continue
		}
		seen[name] = r.field
	}

	// Roster thresholds
	if c.Display.RosterHigh < 0 {
		errs = append(errs, &ValidationError{Field: "display.roster_high", Message: "must be non-negative"})
	}
	if c.Display.RosterMedium < 0 {
		errs = append(errs, &ValidationError{Field: "display.roster_medium", Message: "must be non-negative"})
	}
	if c.Display.RosterHigh > 0 && c.Display.RosterMedium > c.Display.RosterHigh {
		errs = append(errs, &ValidationError{
			Field:   "display.roster_medium",
			Message: "should not exceed display.roster_high",
		})
	}
	if c.Display.SplitMinWidth < 0 {
		errs = append(errs, &ValidationError{Field: "display.split_min_width", Message: "must be non-negative"})
	}

	if c.Watch.Debounce < 0 {
		errs = append(errs, &ValidationError{Field: "watch.debounce", Message: "must be non-negative"})
	}

	// Log level
	if c.Log.Level != "" {
		switch c.Log.Level {
		case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
			// valid
		default:
			errs = append(errs, &ValidationError{
				Field:   "log.level",
				Message: "must be 'debug', 'info', 'warn', or 'error'",
			})
		}
	}
	if c.Log.MaxFiles < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_files", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
