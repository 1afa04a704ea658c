package telemetry

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/aalemi-dev/tempo-demo/logger"
	"github.com/aalemi-dev/tempo-demo/tracer"
)

const (
	// GinTarget receives the HTTP framework's diagnostics.
	GinTarget = "gin"

	// OtelTarget receives errors reported by the OpenTelemetry SDK, such as
	// failed exports.
	OtelTarget = "otel"
)

var (
	// ErrAlreadyInstalled is returned by Install when a sink is already
	// registered in this process.
	ErrAlreadyInstalled = errors.New("telemetry sink already installed")

	// ErrIncomplete is returned by Compose when a component is missing.
	ErrIncomplete = errors.New("telemetry sink is incomplete")
)

var installed atomic.Bool

// Subscriber is the composed sink: the tracer and the logger together with
// the filter the logger applies.
type Subscriber struct {
	tracer *tracer.TracerClient
	log    *logger.LoggerClient
}

// Compose combines the trace pipeline and the filtered logger.
func Compose(tc *tracer.TracerClient, log *logger.LoggerClient) (*Subscriber, error) {
	if tc == nil || tc.Provider() == nil {
		return nil, fmt.Errorf("%w: no tracer", ErrIncomplete)
	}
	if log == nil {
		return nil, fmt.Errorf("%w: no logger", ErrIncomplete)
	}
	return &Subscriber{tracer: tc, log: log}, nil
}

// Filter returns the verbosity filter of the sink.
func (s *Subscriber) Filter() logger.Filter {
	return s.log.Filter()
}

// Tracer returns the trace pipeline of the sink.
func (s *Subscriber) Tracer() *tracer.TracerClient {
	return s.tracer
}

// Logger returns the logger of the sink.
func (s *Subscriber) Logger() *logger.LoggerClient {
	return s.log
}

// Install registers the sink globally. It succeeds once per process.
func (s *Subscriber) Install() error {
	if !installed.CompareAndSwap(false, true) {
		return ErrAlreadyInstalled
	}

	otel.SetTracerProvider(s.tracer.Provider())
	otel.SetTextMapPropagator(s.tracer.Propagator())

	otelLog := s.log.Target(OtelTarget)
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		otelLog.Error("opentelemetry error", err)
	}))

	zap.ReplaceGlobals(s.log.Zap)

	ginLog := s.log.Target(GinTarget)
	gin.DebugPrintFunc = func(format string, values ...interface{}) {
		ginLog.Debug(strings.TrimSpace(fmt.Sprintf(format, values...)), nil)
	}
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
		ginLog.Debug("route registered", nil, map[string]interface{}{
			"method":   httpMethod,
			"path":     absolutePath,
			"handler":  handlerName,
			"handlers": nuHandlers,
		})
	}

	s.log.Debug("telemetry sink installed", nil, map[string]interface{}{
		"filter": s.Filter().String(),
	})
	return nil
}

// Installed reports whether a sink has been installed in this process.
func Installed() bool {
	return installed.Load()
}
