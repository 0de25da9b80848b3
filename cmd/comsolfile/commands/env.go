// Package commands implements the comsolfile subcommands.
package commands

import (
	"io"
	"log/slog"
	"strings"

	comsolfile "github.com/4nd3r5on/go-comsolfile"
	"github.com/4nd3r5on/go-comsolfile/common"
	"github.com/4nd3r5on/go-comsolfile/internal/config"
)

// GlobalOptions are the persistent root flags.
type GlobalOptions struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
}

// cmdEnv is the state shared by subcommands after config is loaded.
type cmdEnv struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newCmdEnv(opts *GlobalOptions, stderr io.Writer) (*cmdEnv, error) {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	return &cmdEnv{
		cfg:    cfg,
		logger: newLogger(cfg, opts, stderr),
	}, nil
}

func newLogger(cfg *config.Config, opts *GlobalOptions, w io.Writer) *slog.Logger {
	level := cfg.SlogLevel()

	switch {
	case opts.Quiet:
		level = slog.LevelError
	case opts.Verbose:
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Logging.Format, config.LogFormatJSON) {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

func (env *cmdEnv) parseFile(path string) ([]common.Section, error) {
	maxSize, err := env.cfg.MaxFileSizeBytes()
	if err != nil {
		return nil, err
	}

	return comsolfile.ParseFile(path,
		comsolfile.WithLogger(env.logger),
		comsolfile.WithCharset(env.cfg.Input.Encoding),
		comsolfile.WithCommentMarker(env.cfg.Marker()),
		comsolfile.WithMaxFileSize(maxSize),
	)
}
