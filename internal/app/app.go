// Package app wires configuration, logging, metrics, and the front ends
// into the bigcalc application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/4310V343k/labs-project-stuffs/internal/cli"
	"github.com/4310V343k/labs-project-stuffs/internal/config"
	apperrors "github.com/4310V343k/labs-project-stuffs/internal/errors"
	"github.com/4310V343k/labs-project-stuffs/internal/logging"
	"github.com/4310V343k/labs-project-stuffs/internal/orchestration"
	"github.com/4310V343k/labs-project-stuffs/internal/server"
	"github.com/4310V343k/labs-project-stuffs/internal/tui"
	"github.com/4310V343k/labs-project-stuffs/internal/ui"
)

// Application represents the bigcalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "bigcalc"
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

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	if a.Logger == nil {
		a.Logger = logging.NewDefaultLogger()
	}

	if a.Config.GenTarget != "" {
		return a.runGenerate(out)
	}

	// The metrics endpoint lives for the duration of the run, whichever
	// front end is active.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	recorder := a.startMetricsServer(ctx)

	if a.Config.TUI {
		return a.runTUI(ctx, recorder)
	}

	return a.runCalculate(ctx, recorder, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, config.ValidOperations); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// startMetricsServer starts the Prometheus endpoint when configured and
// returns the recorder the orchestrator should use.
func (a *Application) startMetricsServer(ctx context.Context) orchestration.MetricsRecorder {
	if a.Config.MetricsAddr == "" {
		return orchestration.NullMetrics{}
	}

	metrics := server.NewMetrics()
	srv := server.New(a.Config.MetricsAddr, metrics, a.Logger)
	go func() {
		if err := srv.Start(ctx); err != nil {
			a.Logger.Error("metrics server stopped", err,
				logging.String("addr", a.Config.MetricsAddr))
		}
	}()
	return metrics
}

// runTUI launches the interactive calculator screen. The session context is
// bounded by signals only; the operation timeout applies per execution
// inside the TUI.
func (a *Application) runTUI(ctx context.Context, recorder orchestration.MetricsRecorder) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	orch := orchestration.New(a.Logger, recorder)
	return tui.Run(ctx, orch, a.Config, Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
