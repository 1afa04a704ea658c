package shutdown

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/tempo-demo/logger"
	"github.com/aalemi-dev/tempo-demo/observability"
	"github.com/aalemi-dev/tempo-demo/server"
	"github.com/aalemi-dev/tempo-demo/tracer"
)

// FXModule installs the signal listeners while the application is built
// and provides the *Coordinator. The caller runs it after the application
// started:
//
//	var c *shutdown.Coordinator
//	app := fx.New(..., shutdown.FXModule, fx.Populate(&c))
//	_ = app.Start(ctx)
//	_ = c.Run(ctx)
//	_ = app.Stop(ctx)
var FXModule = fx.Module("shutdown",
	fx.Provide(newFXCoordinator),
	fx.Invoke(RegisterCoordinatorLifecycle),
)

type coordinatorParams struct {
	fx.In

	Server   *server.Server
	Tracer   *tracer.TracerClient
	Logger   logger.Logger
	Observer observability.Observer `optional:"true"`
}

func newFXCoordinator(p coordinatorParams) (*Coordinator, error) {
	interrupt, err := Interrupt()
	if err != nil {
		return nil, err
	}
	terminate, err := Terminate()
	if err != nil {
		interrupt.Stop()
		return nil, err
	}

	return New(Config{
		Interrupt: interrupt,
		Terminate: terminate,
		Server:    p.Server,
		Tracer:    p.Tracer,
		Logger:    p.Logger,
		Observer:  p.Observer,
	})
}

// RegisterCoordinatorLifecycle releases the signal listeners when the
// application stops.
func RegisterCoordinatorLifecycle(lc fx.Lifecycle, c *Coordinator) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			c.stopListeners()
			return nil
		},
	})
}
