package parser

import "log/slog"

// DefaultCommentMarker starts description lines in COMSOL exports.
const DefaultCommentMarker = '#'

type Config struct {
	Logger        *slog.Logger
	CommentMarker rune
}

type Option func(*Config)

func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithCommentMarker overrides the marker rune. Zero keeps the default.
func WithCommentMarker(marker rune) Option {
	return func(c *Config) {
		if marker != 0 {
			c.CommentMarker = marker
		}
	}
}

func newConfig(options ...Option) *Config {
	cfg := &Config{
		Logger:        slog.Default(),
		CommentMarker: DefaultCommentMarker,
	}
	for _, option := range options {
		option(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}
