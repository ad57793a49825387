// Package app provides the application context and dependency management
// for the library CLI: configuration, logging, the lazily opened catalog
// and its shutdown.
package app

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/catalogs/persistence"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/application"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/batch"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/catalogs"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/errors"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/export"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/library"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/logging"
)

// App represents the library application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
	// fixedLogger keeps an injected logger across flag parsing
	fixedLogger bool

	in  io.Reader
	out io.Writer

	// Lazily opened on first use
	mu        sync.Mutex
	storage   persistence.Storage
	service   library.Service
	processor *batch.Processor
}

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		in:      os.Stdin,
		out:     os.Stdout,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		config, err := LoadConfig("")
		if err != nil {
			return nil, err
		}
		app.config = config
	}

	if app.logger == nil {
		logger := NewLogger(app.config)
		app.logger = &logger
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Service returns the catalog service, opening storage and loading the
// catalog on first use.
func (a *App) Service() (library.Service, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.service != nil {
		return a.service, nil
	}

	backend, err := persistence.ParseBackend(a.config.Storage)
	if err != nil {
		return nil, err
	}
	storage, err := persistence.Open(backend, a.config.DataDir, a.logger)
	if err != nil {
		return nil, err
	}

	catalog, err := catalogs.New(storage, catalogs.WithLogger(a.logger))
	if err != nil {
		_ = storage.Close()
		return nil, err
	}
	catalogs.LogChanges(catalog, a.logger)

	a.logger.Debug().
		Str("backend", string(backend)).
		Str("data_dir", a.config.DataDir).
		Int("items", catalog.Len()).
		Msg("Catalog loaded")

	a.storage = storage
	a.service = library.New(catalog, library.WithLogger(a.logger))
	return a.service, nil
}

// Exporter returns an exporter writing into the configured export dir.
func (a *App) Exporter() *export.Exporter {
	return export.New(a.config.ExportDir, a.batchProcessor(), export.WithLogger(a.logger))
}

func (a *App) batchProcessor() *batch.Processor {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.processor == nil {
		a.processor = batch.New(a.config.Workers, batch.WithLogger(a.logger))
	}
	return a.processor
}

// Shutdown stops the batch processor within the configured timeout (or
// the ctx deadline, if sooner) and closes storage.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.Lock()
	processor, storage := a.processor, a.storage
	a.processor, a.storage, a.service = nil, nil, nil
	a.mu.Unlock()

	if processor != nil {
		timeout := a.config.ShutdownTimeout
		if deadline, ok := ctx.Deadline(); ok {
			timeout = min(timeout, time.Until(deadline))
		}
		if !processor.Shutdown(timeout) {
			a.logger.Warn().Dur("timeout", timeout).Msg("Batch processor did not drain before shutdown")
		}
	}

	if storage != nil {
		if err := storage.Close(); err != nil {
			return errors.WrapStorage(a.config.Storage, "close", err)
		}
	}
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if err := config.Validate(); err != nil {
			return err
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		a.fixedLogger = logger != nil
		return nil
	}
}

// WithService sets a ready service (useful for testing).
func WithService(svc library.Service) Option {
	return func(a *App) error {
		a.service = svc
		return nil
	}
}

// WithIO sets the console streams.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) error {
		a.in = in
		a.out = out
		return nil
	}
}

// contextLogger attaches the app logger to ctx.
func (a *App) contextLogger(ctx context.Context) context.Context {
	return logging.WithLogger(ctx, a.logger)
}
