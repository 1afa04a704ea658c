// Package app assembles the service from its fx modules and runs the
// startup and shutdown sequence.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/aalemi-dev/tempo-demo/config"
	"github.com/aalemi-dev/tempo-demo/logger"
	"github.com/aalemi-dev/tempo-demo/observability"
	"github.com/aalemi-dev/tempo-demo/server"
	"github.com/aalemi-dev/tempo-demo/shutdown"
	"github.com/aalemi-dev/tempo-demo/telemetry"
	"github.com/aalemi-dev/tempo-demo/tracer"
)

// FxTarget receives the dependency injection container's own events.
const FxTarget = "fx"

// DefaultStopTimeout bounds the stop hooks run after the coordinator.
const DefaultStopTimeout = 15 * time.Second

// Options overrides parts of the loaded configuration.
type Options struct {
	// Addr replaces the configured listen address when not empty.
	Addr string
}

// Module returns every module of the service built around cfg.
func Module(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		config.ProvideDerived,
		logger.FXModule,
		tracer.FXModule,
		telemetry.FXModule,
		fx.Provide(func(log logger.Logger) observability.Observer {
			return observability.NewLogObserver(log.Named("lifecycle"))
		}),
		server.FXModule,
		shutdown.FXModule,
		fx.WithLogger(func(log *logger.LoggerClient) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Target(FxTarget).(*logger.LoggerClient).Zap}
		}),
	)
}

// New loads the configuration once and builds the application. It returns
// the coordinator that drives the shutdown. Missing settings fail here,
// before anything binds.
func New(opts Options, extra ...fx.Option) (*fx.App, *shutdown.Coordinator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return NewWithConfig(cfg, opts, extra...)
}

// NewWithConfig builds the application from an already loaded cfg.
func NewWithConfig(cfg *config.Config, opts Options, extra ...fx.Option) (*fx.App, *shutdown.Coordinator, error) {
	if opts.Addr != "" {
		cfg.Server.Addr = opts.Addr
	}

	var coordinator *shutdown.Coordinator
	options := append([]fx.Option{Module(cfg), fx.Populate(&coordinator)}, extra...)
	app := fx.New(options...)
	if err := app.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to build application: %w", err)
	}
	return app, coordinator, nil
}

// Run starts the service, blocks until a shutdown signal was handled and
// stops the remaining components. The returned error is nil after a
// graceful shutdown.
func Run(ctx context.Context, opts Options) error {
	app, coordinator, err := New(opts)
	if err != nil {
		return err
	}
	return Serve(ctx, app, coordinator)
}

// Serve runs an application built by New.
func Serve(ctx context.Context, app *fx.App, coordinator *shutdown.Coordinator) error {
	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	runErr := coordinator.Run(ctx)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), DefaultStopTimeout)
	defer cancelStop()
	stopErr := app.Stop(stopCtx)

	switch {
	case runErr == nil:
		// Graceful exit; failing stop hooks were logged on the fx target.
		return nil
	case errors.Is(runErr, context.Canceled):
		return stopErr
	default:
		return runErr
	}
}
