// Package comsolfile extracts the (description, matrix) sections of a
// COMSOL text export.
package comsolfile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/4nd3r5on/go-comsolfile/builder"
	"github.com/4nd3r5on/go-comsolfile/common"
	"github.com/4nd3r5on/go-comsolfile/parser"
	"github.com/4nd3r5on/go-comsolfile/selector"
)

var ErrFileTooLarge = errors.New("file exceeds size limit")

type Config struct {
	Logger        *slog.Logger
	Charset       string
	CommentMarker rune
	MaxFileSize   uint64 // 0 means unlimited
}

type Option func(*Config)

func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithCharset sets the IANA charset of the input, UTF-8 by default.
func WithCharset(name string) Option {
	return func(c *Config) { c.Charset = name }
}

func WithCommentMarker(marker rune) Option {
	return func(c *Config) { c.CommentMarker = marker }
}

func WithMaxFileSize(n uint64) Option {
	return func(c *Config) { c.MaxFileSize = n }
}

func newConfig(options ...Option) *Config {
	cfg := &Config{
		Logger:        slog.Default(),
		Charset:       common.DefaultCharset,
		CommentMarker: parser.DefaultCommentMarker,
	}
	for _, option := range options {
		option(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}

// ParseFile reads a COMSOL export from path and returns its sections.
// Errors come only from reading the file or from the options.
func ParseFile(path string, options ...Option) ([]common.Section, error) {
	cfg := newConfig(options...)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	size := uint64(max(info.Size(), 0))
	if cfg.MaxFileSize > 0 && size > cfg.MaxFileSize {
		return nil, fmt.Errorf("%w: %s is %s, limit %s",
			ErrFileTooLarge, path, humanize.IBytes(size), humanize.IBytes(cfg.MaxFileSize))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	cfg.Logger.Debug("parsing file", "path", path, "size", humanize.IBytes(size), "charset", cfg.Charset)

	return parse(f, cfg)
}

// ParseReader reads r to the end and returns its sections.
func ParseReader(r io.Reader, options ...Option) ([]common.Section, error) {
	return parse(r, newConfig(options...))
}

// Parse returns the sections of an in-memory UTF-8 export. It never fails;
// input without matrices yields no sections.
func Parse(text string, options ...Option) []common.Section {
	cfg := newConfig(options...)
	cfg.Charset = common.DefaultCharset

	sections, err := parse(strings.NewReader(text), cfg)
	if err != nil {
		// reads from a strings.Reader don't fail
		cfg.Logger.Error("unexpected parse failure", "error", err)
		return nil
	}
	return sections
}

// Select is selector.Select, re-exported for callers of this package.
func Select(sections []common.Section, contains string, options ...selector.Option) (selector.Match, bool) {
	return selector.Select(sections, contains, options...)
}

func parse(r io.Reader, cfg *Config) ([]common.Section, error) {
	decoded, err := common.NewDecodingReader(r, cfg.Charset)
	if err != nil {
		return nil, err
	}

	stream := parser.NewStreamParser(nil, decoded,
		parser.WithLogger(cfg.Logger),
		parser.WithCommentMarker(cfg.CommentMarker),
	)

	sections, err := builder.FromStream(stream, builder.SetLogger(cfg.Logger))
	if err != nil {
		return nil, err
	}
	return sections, nil
}
