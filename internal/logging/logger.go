// Package logging provides structured logging for draftboard.
// Each run writes one log file under the configured directory; old files are pruned.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dbmrq/draftboard/internal/config"
)

// Level represents log severity levels.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel maps a configured log level to a Level. Unknown values map to LevelInfo.
func ParseLevel(level config.LogLevel) Level {
	switch config.LogLevel(strings.ToLower(string(level))) {
	case config.LogLevelDebug:
		return LevelDebug
	case config.LogLevelWarn:
		return LevelWarn
	case config.LogLevelError:
		return LevelError
	default:
		return LevelInfo
	}
}

const filePrefix = "draftboard_"

// Config configures the logger.
type Config struct {
	// Level is the minimum log level to output.
	Level Level
	// LogDir is the directory to write log files (e.g., ".draftboard/logs").
	LogDir string
	// MaxLogFiles is the maximum number of log files to keep.
	MaxLogFiles int
	// MaxLogAge is the maximum age of log files before cleanup.
	MaxLogAge time.Duration
	// Console also writes to stderr. The TUI owns the terminal, so this is
	// only set for non-interactive commands.
	Console bool
	// JSONFormat uses JSON output format for structured logs.
	JSONFormat bool
	// SessionID tags every record. A random one is generated when empty.
	SessionID string
}

// DefaultConfig returns default logging configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:       LevelInfo,
		LogDir:      config.DefaultLogDir,
		MaxLogFiles: config.DefaultMaxLogFiles,
		MaxLogAge:   7 * 24 * time.Hour,
	}
}

// ConfigFrom builds a logging Config from the log section of the app config.
func ConfigFrom(cfg config.LogConfig, verbose bool) *Config {
	c := DefaultConfig()
	c.Level = ParseLevel(cfg.Level)
	if verbose {
		c.Level = LevelDebug
	}
	if cfg.Dir != "" {
		c.LogDir = cfg.Dir
	}
	if cfg.MaxFiles > 0 {
		c.MaxLogFiles = cfg.MaxFiles
	}
	return c
}

// Logger is a structured logger for draftboard.
type Logger struct {
	slog      *slog.Logger
	config    *Config
	logFile   *os.File
	logPath   string
	sessionID string
	mu        *sync.Mutex
}

// New creates a new logger with the given configuration.
// It creates a log file in the configured log directory.
func New(cfg *Config) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	name := fmt.Sprintf("%s%s_%s.log", filePrefix, time.Now().Format("20060102_150405"), sessionID[:8])
	logPath := filepath.Join(cfg.LogDir, name)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	var w io.Writer = logFile
	if cfg.Console {
		w = io.MultiWriter(logFile, os.Stderr)
	}

	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}

	var handler slog.Handler
	if cfg.JSONFormat {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := &Logger{
		slog:      slog.New(handler).With("session_id", sessionID),
		config:    cfg,
		logFile:   logFile,
		logPath:   logPath,
		sessionID: sessionID,
		mu:        &sync.Mutex{},
	}

	go logger.Cleanup()

	return logger, nil
}

// NewNoop creates a no-op logger that discards all output.
func NewNoop() *Logger {
	return &Logger{
		slog:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		config: DefaultConfig(),
		mu:     &sync.Mutex{},
	}
}

// LogPath returns the path to the current log file.
func (l *Logger) LogPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.logPath
}

// SessionID returns the id attached to every record of this run.
func (l *Logger) SessionID() string {
	return l.sessionID
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile != nil {
		err := l.logFile.Close()
		l.logFile = nil
		return err
	}
	return nil
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// With returns a new logger with the given attributes added.
func (l *Logger) With(args ...any) *Logger {
	c := *l
	c.slog = l.slog.With(args...)
	return &c
}

// WithContext returns a logger carrying the source file and load generation
// stored in ctx, if any.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	next := l.slog

	if source, ok := ctx.Value(ContextKeySource).(string); ok && source != "" {
		next = next.With("source", source)
	}
	if gen, ok := ctx.Value(ContextKeyGeneration).(uint64); ok {
		next = next.With("generation", gen)
	}

	c := *l
	c.slog = next
	return &c
}

type contextKey string

const (
	// ContextKeySource is the context key for the player file being loaded.
	ContextKeySource contextKey = "source"
	// ContextKeyGeneration is the context key for the load generation.
	ContextKeyGeneration contextKey = "generation"
)

// WithSource adds the player file path to the context.
func WithSource(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, ContextKeySource, path)
}

// WithGeneration adds the load generation to the context.
func WithGeneration(ctx context.Context, gen uint64) context.Context {
	return context.WithValue(ctx, ContextKeyGeneration, gen)
}

// Cleanup removes old log files based on MaxLogFiles and MaxLogAge.
func (l *Logger) Cleanup() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.config.LogDir == "" {
		return nil
	}

	entries, err := os.ReadDir(l.config.LogDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		path    string
		modTime time.Time
	}
	var logFiles []logFileInfo

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, ".log") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			path:    filepath.Join(l.config.LogDir, name),
			modTime: info.ModTime(),
		})
	}

	// Newest first
	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.After(logFiles[j].modTime)
	})

	now := time.Now()
	var removed int

	for i, lf := range logFiles {
		if lf.path == l.logPath {
			continue
		}

		tooMany := l.config.MaxLogFiles > 0 && i >= l.config.MaxLogFiles
		tooOld := l.config.MaxLogAge > 0 && now.Sub(lf.modTime) > l.config.MaxLogAge
		if !tooMany && !tooOld {
			continue
		}
		if err := os.Remove(lf.path); err == nil {
			removed++
		}
	}

	if removed > 0 {
		l.slog.Debug("cleaned up old log files", "count", removed)
	}

	return nil
}
