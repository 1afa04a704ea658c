package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/aalemi-dev/tempo-demo/logger"
	"github.com/aalemi-dev/tempo-demo/tracer"
)

// RouterOptions tunes NewRouter.
type RouterOptions struct {
	// IndexDelay overrides the simulated latency of Index. Zero means
	// IndexDelay.
	IndexDelay time.Duration
}

// NewRouter builds the gin engine with its middleware chain and routes.
// The engine expects the request span to be in the request context, see
// NewHandler.
func NewRouter(tc tracer.Tracer, log logger.Logger, opts RouterOptions) *gin.Engine {
	delay := opts.IndexDelay
	if delay <= 0 {
		delay = IndexDelay
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(
		Recovery(log),
		RequestID(),
		TraceResponse(tc),
		AccessLog(log),
	)

	engine.GET(IndexPath, Index(tc, delay))

	engine.NoRoute(Rejection(log))
	engine.NoMethod(Rejection(log))

	return engine
}

// NewHandler wraps the router with request span instrumentation using the
// pipeline's provider and propagator.
func NewHandler(tc *tracer.TracerClient, router http.Handler) http.Handler {
	return otelhttp.NewHandler(router, RequestSpanName,
		otelhttp.WithTracerProvider(tc.Provider()),
		otelhttp.WithPropagators(tc.Propagator()),
		otelhttp.WithSpanNameFormatter(func(_ string, _ *http.Request) string {
			return RequestSpanName
		}),
	)
}
