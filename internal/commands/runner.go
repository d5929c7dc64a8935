// Package commands defines the command line surface: the GUI (default) and
// the headless fetch, download and init-config commands.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/ytget/playlist-downloader/internal/config"
	"github.com/ytget/playlist-downloader/internal/logging"
	"github.com/ytget/playlist-downloader/internal/platform"
	"github.com/ytget/playlist-downloader/internal/session"
)

// Application identity
const (
	AppID   = "com.ytget.playlist-downloader"
	AppName = "YouTube Playlist Downloader"
	CLIName = "ytplaylist"
)

// ResolverFactory builds the media resolver for a backend
type ResolverFactory func(cfg *config.File, backend config.Backend, logger *log.Logger) (platform.MediaResolver, error)

// Runner holds the dependencies shared by every command
type Runner struct {
	version     string
	config      *config.File
	logger      *log.Logger
	output      io.Writer
	errOutput   io.Writer
	newResolver ResolverFactory
}

// RunnerOpts configures NewRunner. A nil Config is loaded from disk when the
// command starts; tests pass one in.
type RunnerOpts struct {
	Version     string
	Config      *config.File
	Logger      *log.Logger
	Output      io.Writer
	ErrOutput   io.Writer
	NewResolver ResolverFactory
}

// NewRunner creates a Runner with defaults for unset options
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}
	if opts.NewResolver == nil {
		opts.NewResolver = DefaultResolver
	}

	return &Runner{
		version:     opts.Version,
		config:      opts.Config,
		logger:      opts.Logger,
		output:      opts.Output,
		errOutput:   opts.ErrOutput,
		newResolver: opts.NewResolver,
	}
}

// DefaultResolver builds a resolver from the file configuration
func DefaultResolver(cfg *config.File, backend config.Backend, logger *log.Logger) (platform.MediaResolver, error) {
	return platform.NewResolver(platform.Options{
		Backend:     string(backend),
		BinaryPath:  cfg.YTDLPPath,
		AutoInstall: cfg.AutoInstall,
		Logger:      logging.Component(logger, "resolver"),
	})
}

// before loads configuration and the logger once per invocation
func (r *Runner) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if r.config == nil {
		cfg, err := config.Load(cmd.String("config"))
		if err != nil {
			return ctx, err
		}
		r.config = cfg
	}

	if lvl := cmd.String("log-level"); lvl != "" {
		r.config.LogLevel = lvl
	}
	if r.logger == nil {
		r.logger = logging.New(r.errOutput, r.config.LogLevel)
	} else {
		r.logger.SetLevel(logging.ParseLevel(r.config.LogLevel))
	}
	return ctx, nil
}

// newSession wires a resolver and session for the configured backend
func (r *Runner) newSession(backend config.Backend, audioOnly bool) (*session.Session, error) {
	resolver, err := r.newResolver(r.config, backend, r.logger)
	if err != nil {
		return nil, err
	}

	return session.New(resolver, session.Options{
		OutputFolder: r.config.OutputDir,
		AudioOnly:    audioOnly,
		FetchTimeout: r.config.FetchTimeout.Duration,
		Logger:       r.logger,
	}), nil
}

func (r *Runner) writeJSON(data any) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := fmt.Fprintln(r.output, string(out)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	if _, err := fmt.Fprintf(r.output, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
