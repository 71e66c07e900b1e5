// Package config provides configuration loading and management for draftboard.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is the default path to the config file relative to the working directory.
	DefaultConfigPath = ".draftboard/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "DRAFTBOARD"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
//
// If path is empty, DefaultConfigPath is used and a missing file is not an
// error: draftboard runs on defaults plus environment overrides. An explicit
// path that does not exist is reported as a LoadError.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	cfg := NewConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, &LoadError{
				Path:    path,
				Message: "config file not found",
				Err:     err,
			}
		}
		return l.finish(path, cfg)
	}

	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read config file",
			Err:     err,
		}
	}

	// Colors decode into a fresh map so file entries can be merged over the
	// defaults with normalised keys below.
	cfg.Categories.Colors = nil

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	cfg.Categories.Colors = mergeColors(DefaultCategoryColors(), cfg.Categories.Colors)

	return l.finish(path, cfg)
}

func (l *Loader) finish(path string, cfg *Config) (*Config, error) {
	l.applyEnvOverrides(cfg)

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .draftboard/config.yaml in the specified directory.
// The file must exist.
func (l *Loader) LoadConfigFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultConfigPath)
	return l.LoadConfig(path)
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	// Columns
	columns := map[string]*string{
		"_COLUMNS_FIRST_NAME":       &cfg.Columns.FirstName,
		"_COLUMNS_LAST_NAME":        &cfg.Columns.LastName,
		"_COLUMNS_CATEGORY":         &cfg.Columns.Category,
		"_COLUMNS_RANK":             &cfg.Columns.Rank,
		"_COLUMNS_ADP":              &cfg.Columns.ADP,
		"_COLUMNS_PROJECTED_POINTS": &cfg.Columns.ProjectedPoints,
		"_COLUMNS_POSITION_RANK":    &cfg.Columns.PositionRank,
		"_COLUMNS_TEAM":             &cfg.Columns.Team,
		"_COLUMNS_ROSTERED":         &cfg.Columns.Rostered,
	}
	for suffix, dst := range columns {
		if v := os.Getenv(EnvPrefix + suffix); v != "" {
			*dst = v
		}
	}

	// Categories
	if v := os.Getenv(EnvPrefix + "_CATEGORIES_DEFAULT"); v != "" {
		cfg.Categories.Default = v
	}

	// Display settings (parse numbers)
	if v := os.Getenv(EnvPrefix + "_DISPLAY_ROSTER_HIGH"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Display.RosterHigh = f
		}
	}
	if v := os.Getenv(EnvPrefix + "_DISPLAY_ROSTER_MEDIUM"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Display.RosterMedium = f
		}
	}
	if v := os.Getenv(EnvPrefix + "_DISPLAY_SPLIT_MIN_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Display.SplitMinWidth = n
		}
	}
	if v := os.Getenv(EnvPrefix + "_DISPLAY_EXPANDED"); v != "" {
		cfg.Display.Expanded = parseBool(v)
	}

	// Watch settings
	if v := os.Getenv(EnvPrefix + "_WATCH_ENABLED"); v != "" {
		cfg.Watch.Enabled = parseBool(v)
	}
	if v := os.Getenv(EnvPrefix + "_WATCH_DEBOUNCE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Watch.Debounce = d
		}
	}

	// Log settings
	if v := os.Getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		cfg.Log.Level = LogLevel(strings.ToLower(v))
	}
	if v := os.Getenv(EnvPrefix + "_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
}

// mergeColors returns base overlaid with override. Keys are upper-cased so
// that lookups match the category values written in player files.
func mergeColors(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[strings.ToUpper(k)] = v
	}
	for k, v := range override {
		out[strings.ToUpper(k)] = v
	}
	return out
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
// Returns false for anything else.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
// It composes the standard mapstructure hooks with our custom ones.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc creates a decode hook for our custom types.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		switch to {
		case reflect.TypeOf(LogLevel("")):
			return LogLevel(strings.ToLower(data.(string))), nil
		}

		return data, nil
	}
}

// Save writes cfg as YAML to path, creating parent directories.
// If path is empty, DefaultConfigPath is used.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	header := []byte("# draftboard configuration\n")
	if err := os.WriteFile(path, append(header, data...), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultConfigPath and falls back to defaults.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// LoadFromDir is a convenience function that loads configuration from a directory.
func LoadFromDir(dir string) (*Config, error) {
	return NewLoader().LoadConfigFromDir(dir)
}
