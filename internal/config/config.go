// Package config loads the comsolfile CLI settings.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// Sentinel validation errors.
var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidOutput    = errors.New("invalid output format")
	ErrInvalidMarker    = errors.New("comment marker must be a single character")
	ErrInvalidFileSize  = errors.New("invalid max file size")
)

// Log handler formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Output formats for the list command.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{LogFormatText, LogFormatJSON}
	outputs    = []string{OutputTable, OutputJSON, OutputYAML}
)

// Config holds all configuration for the comsolfile CLI.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Input   InputConfig   `mapstructure:"input"`
	Output  OutputConfig  `mapstructure:"output"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// InputConfig controls how export files are read.
type InputConfig struct {
	Encoding      string `mapstructure:"encoding"`
	MaxFileSize   string `mapstructure:"max_file_size"` // human size, "0" for unlimited
	CommentMarker string `mapstructure:"comment_marker"`
}

// OutputConfig controls command output.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// Validate checks enumerated values and sizes.
func (c *Config) Validate() error {
	if !slices.Contains(logLevels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	if !slices.Contains(logFormats, strings.ToLower(c.Logging.Format)) {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	if !slices.Contains(outputs, strings.ToLower(c.Output.Format)) {
		return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output.Format)
	}

	if utf8.RuneCountInString(c.Input.CommentMarker) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidMarker, c.Input.CommentMarker)
	}

	if _, err := c.MaxFileSizeBytes(); err != nil {
		return err
	}

	return nil
}

// MaxFileSizeBytes parses Input.MaxFileSize. Empty or "0" is unlimited.
func (c *Config) MaxFileSizeBytes() (uint64, error) {
	trimmed := strings.TrimSpace(c.Input.MaxFileSize)
	if trimmed == "" || trimmed == "0" {
		return 0, nil
	}

	size, err := humanize.ParseBytes(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidFileSize, c.Input.MaxFileSize, err)
	}
	return size, nil
}

// Marker returns the comment marker rune.
func (c *Config) Marker() rune {
	r, _ := utf8.DecodeRuneInString(c.Input.CommentMarker)
	return r
}

// SlogLevel maps Logging.Level to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
