package builder

import "log/slog"

// DefaultMinRows is the smallest row count a section needs to be kept.
// Shorter blocks are metadata such as version stamps.
const DefaultMinRows = 2

type Config struct {
	Logger  *slog.Logger
	MinRows int
}

type Option func(*Config)

func SetLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func SetMinRows(n int) Option {
	return func(c *Config) { c.MinRows = n }
}

func newConfig(options ...Option) *Config {
	cfg := &Config{
		Logger:  slog.Default(),
		MinRows: DefaultMinRows,
	}
	for _, option := range options {
		option(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}
