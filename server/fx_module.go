package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/aalemi-dev/tempo-demo/config"
	"github.com/aalemi-dev/tempo-demo/logger"
	"github.com/aalemi-dev/tempo-demo/observability"
	"github.com/aalemi-dev/tempo-demo/tracer"
)

// FXModule provides the router, the instrumented handler and the *Server,
// and binds the listener when the application starts.
//
// Dependencies required by this module: config.ServerConfig,
// *tracer.TracerClient and logger.Logger. An observability.Observer and
// RouterOptions are used when present.
var FXModule = fx.Module("server",
	fx.Provide(
		newFXRouter,
		newFXHandler,
		newFXServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

type routerParams struct {
	fx.In

	Tracer  *tracer.TracerClient
	Logger  logger.Logger
	Options RouterOptions `optional:"true"`
}

func newFXRouter(p routerParams) *gin.Engine {
	return NewRouter(p.Tracer, p.Logger, p.Options)
}

func newFXHandler(tc *tracer.TracerClient, router *gin.Engine) http.Handler {
	return NewHandler(tc, router)
}

type serverParams struct {
	fx.In

	Config   config.ServerConfig
	Handler  http.Handler
	Logger   logger.Logger
	Observer observability.Observer `optional:"true"`
}

func newFXServer(p serverParams) *Server {
	return New(p.Config, p.Handler, p.Logger.Named("server"), p.Observer)
}

// RegisterServerLifecycle starts the server with the application. The stop
// hook drains the server if the shutdown coordinator has not already.
func RegisterServerLifecycle(lc fx.Lifecycle, srv *Server) {
	lc.Append(fx.Hook{
		OnStart: srv.Start,
		OnStop: func(ctx context.Context) error {
			err := srv.Shutdown(ctx)
			if errors.Is(err, ErrNotStarted) {
				return nil
			}
			return err
		},
	})
}
