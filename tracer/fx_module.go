package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/tempo-demo/logger"
)

// FXModule provides the trace pipeline to an fx application.
//
// The module provides:
// 1. *TracerClient (concrete type) for direct use
// 2. Tracer interface for dependency injection
// 3. An OnStop hook flushing and shutting down the pipeline
//
// A tracer.Config must be available in the container; a logger.Logger is
// used when present.
var FXModule = fx.Module("tracer",
	fx.Provide(
		newFXClient, // Provides *TracerClient
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

type clientParams struct {
	fx.In

	Config Config
	Logger logger.Logger `optional:"true"`
}

func newFXClient(p clientParams) (*TracerClient, error) {
	cfg := p.Config
	if cfg.Logger == nil && p.Logger != nil {
		cfg.Logger = p.Logger
	}
	return NewClient(cfg)
}

type lifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Tracer    *TracerClient
	Logger    logger.Logger `optional:"true"`
}

// RegisterTracerLifecycle registers an OnStop hook that shuts the tracer
// down, flushing any pending spans. The hook is a no-op when the pipeline
// was already shut down by the shutdown coordinator.
func RegisterTracerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if p.Tracer == nil || p.Tracer.tracer == nil {
				if p.Logger != nil {
					p.Logger.Info("tracer is nil, skipping shutdown", nil)
				}
				return nil
			}
			if p.Logger != nil {
				p.Logger.Info("shutting down tracer", nil)
			}
			return p.Tracer.Shutdown(ctx)
		},
	})
}
