// Package app implements the application layer for ferry.
package app

import (
	"context"
	"path/filepath"
	"runtime"

	"go.trai.ch/ferry/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/ferry/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/ferry/internal/adapters/git"       //nolint:depguard // Wired in app layer
	"go.trai.ch/ferry/internal/adapters/publish"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ferry/internal/adapters/toolchain" //nolint:depguard // Wired in app layer
	"go.trai.ch/ferry/internal/adapters/version"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ferry/internal/core/domain"
	"go.trai.ch/ferry/internal/core/ports"
	"go.trai.ch/ferry/internal/engine/coordinator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	logger       ports.Logger
	telemetry    ports.Telemetry
	goos         string
}

// New creates a new App instance for the host operating system.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		logger:       log,
		telemetry:    telemetry,
		goos:         runtime.GOOS,
	}
}

// WithPlatform overrides the operating system the App believes it runs on.
// This is primarily used for testing.
func (a *App) WithPlatform(goos string) *App {
	a.goos = goos
	return a
}

// RunOptions configuration for the Release method.
type RunOptions struct {
	Mode       string
	ConfigPath string
	LocalPath  string
}

// Release runs one release attempt from the current directory.
func (a *App) Release(ctx context.Context, opts RunOptions) (domain.Outcome, error) {
	settings, err := a.load(opts)
	if err != nil {
		return 0, err
	}

	mode, err := domain.ParseMode(opts.Mode)
	if err != nil {
		return 0, err
	}

	defer func() {
		_ = a.telemetry.Close()
	}()

	outcome, err := a.coordinator(settings).Run(ctx, mode)
	a.summarize()
	if err != nil {
		return 0, err
	}

	a.logger.Info("Finished " + mode.String() + " run: " + outcome.String())
	return outcome, nil
}

// Status reports which platforms have uploaded artifacts for the current version and commit.
func (a *App) Status(ctx context.Context, opts RunOptions) (*domain.ReleaseStatus, error) {
	settings, err := a.load(opts)
	if err != nil {
		return nil, err
	}

	return a.coordinator(settings).Status(ctx)
}

// summarize logs one line per recorded stage.
func (a *App) summarize() {
	for _, stage := range a.telemetry.Stages() {
		a.logger.Info(stage.String())
	}
}

func (a *App) load(opts RunOptions) (*domain.Settings, error) {
	settings, err := a.configLoader.Load(".", domain.ConfigFiles{
		Project: opts.ConfigPath,
		Local:   opts.LocalPath,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return settings, nil
}

func (a *App) coordinator(settings *domain.Settings) *coordinator.Coordinator {
	return coordinator.New(settings, a.goos, coordinator.Collaborators{
		Versions:  version.NewResolverFromSettings(settings),
		Source:    git.NewRepository(a.executor, settings.Root),
		Builder:   toolchain.NewBuilder(a.executor, a.logger, settings),
		Exchange:  fs.NewExchange(settings.Root, a.logger),
		Publisher: publish.NewPublisher(a.executor, settings),
		Ledger:    a.ledger(settings),
		Logger:    a.logger,
		Telemetry: a.telemetry,
	})
}

// ledger opens the exchange ledger. A ledger that cannot be opened is reported and skipped.
func (a *App) ledger(settings *domain.Settings) ports.ExchangeLedger {
	path := settings.StatePath
	if !filepath.IsAbs(path) {
		path = filepath.Join(settings.Root, path)
	}

	store, err := cas.NewStore(path)
	if err != nil {
		a.logger.Warn(err.Error())
		return nil
	}
	return store
}
