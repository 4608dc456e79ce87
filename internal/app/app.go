// Package app wires configuration, logging, metrics and the sequence
// engine into a runnable application and maps failures to exit codes.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/fibseq/internal/cli"
	"github.com/agbru/fibseq/internal/config"
	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/fib"
	"github.com/agbru/fibseq/internal/logging"
	"github.com/agbru/fibseq/internal/metrics"
	"github.com/agbru/fibseq/internal/sequence"
	"github.com/agbru/fibseq/internal/tui"
	"github.com/agbru/fibseq/internal/ui"
)

// Application represents the fibseq application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Log       logging.Logger
	Metrics   *metrics.Metrics
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(log logging.Logger) AppOption {
	return func(a *Application) { a.Log = log }
}

// WithMetrics sets a custom metrics collection for the application.
func WithMetrics(m *metrics.Metrics) AppOption {
	return func(a *Application) { a.Metrics = m }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Log == nil {
		app.Log = logging.NewLogger(errWriter, "fibseq")
	}
	if app.Metrics == nil {
		app.Metrics = metrics.New()
	}

	programName := "fibseq"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	a.applyLogLevel()
	ui.InitTheme(a.Config.NoColor)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	start := time.Now()
	calc := fib.New(a.Config.Policy)
	gen := sequence.NewGenerator(calc, a.Config.Count,
		sequence.WithLogger(a.Log),
		sequence.WithMetrics(a.Metrics))

	var terms []fib.Term
	var err error
	if a.Config.TUI {
		terms, err = gen.Terms(ctx)
		if err == nil {
			err = tui.Run(terms, a.Config.Policy)
		}
	} else {
		terms, err = gen.Run(ctx, out)
	}

	if err == nil && a.Config.OutputFile != "" {
		if fileErr := cli.WriteSequenceToFile(a.Config.OutputFile, terms, a.Config.Policy); fileErr != nil {
			err = apperrors.NewWriteError("sequence file", fileErr)
		}
	}

	if err == nil && a.Config.Verbose {
		cli.DisplaySummary(a.ErrWriter, uint64(len(terms)), a.Config.Policy, time.Since(start))
		snapshot := metrics.NewMemoryCollector().Snapshot()
		a.Log.Debug("memory after run",
			logging.Uint64("heap_alloc", snapshot.HeapAlloc),
			logging.Uint64("heap_objects", snapshot.HeapObjects))
	}

	if a.Config.Stats {
		if dumpErr := a.Metrics.Dump(a.ErrWriter); dumpErr != nil {
			a.Log.Error("failed to dump metrics", dumpErr)
		}
	}

	return a.exitCode(err)
}

// exitCode maps the run error to a process exit status, reporting
// non-context failures on the error stream.
func (a *Application) exitCode(err error) int {
	if err == nil {
		return apperrors.ExitSuccess
	}

	if !a.Config.Quiet && !apperrors.IsContextError(err) {
		cli.DisplayError(a.ErrWriter, err)
	}

	var overflow *fib.OverflowError
	var writeErr apperrors.WriteError
	var configErr apperrors.ConfigError
	switch {
	case apperrors.IsContextError(err):
		return apperrors.ExitErrorCanceled
	case errors.As(err, &overflow):
		return apperrors.ExitErrorOverflow
	case errors.As(err, &writeErr):
		return apperrors.ExitErrorIO
	case errors.As(err, &configErr):
		return apperrors.ExitErrorConfig
	default:
		return apperrors.ExitErrorGeneric
	}
}

// applyLogLevel sets the global zerolog level from the configured
// verbosity: disabled in quiet mode, debug in verbose mode, warn otherwise.
func (a *Application) applyLogLevel() {
	switch {
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
