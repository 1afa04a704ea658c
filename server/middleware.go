package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aalemi-dev/tempo-demo/logger"
	"github.com/aalemi-dev/tempo-demo/tracer"
)

// TraceResponse writes the trace context of the request span into the
// response headers before the handler runs, so it is present on every
// response including rejections.
func TraceResponse(tc tracer.Tracer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tc.InjectHTTP(c.Request.Context(), c.Writer.Header())
		c.Next()
	}
}

// RequestID assigns every request an ID. A valid UUID sent by the client is
// kept; anything else is replaced. The ID is echoed in the response and set
// as the "request.id" attribute of the request span.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(RequestIDHeader, id)
		c.Header(RequestIDHeader, id)
		trace.SpanFromContext(c.Request.Context()).SetAttributes(attribute.String("request.id", id))
		c.Next()
	}
}

// AccessLog records the start and the end of every request on the "gin"
// target at debug. With tracing enabled both entries become events on the
// request span.
func AccessLog(log logger.Logger) gin.HandlerFunc {
	ginLog := log.Target(GinTarget)
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		start := time.Now()

		ginLog.DebugWithContext(ctx, "started processing request", nil, map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		})

		c.Next()

		status := c.Writer.Status()
		span := trace.SpanFromContext(ctx)
		span.SetAttributes(attribute.Int("http.response.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}

		ginLog.DebugWithContext(ctx, "finished processing request", nil, map[string]interface{}{
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"size":       c.Writer.Size(),
		})
	}
}

// Rejection logs requests no route or method accepted. It writes nothing so
// gin's default 404 and 405 responses are kept.
func Rejection(log logger.Logger) gin.HandlerFunc {
	rejectLog := log.Target(RejectionTarget)
	return func(c *gin.Context) {
		rejectLog.TraceWithContext(c.Request.Context(), "request rejected", nil, map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})
	}
}

// Recovery turns a panicking handler into a 500 and records the panic on
// the request span.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic: %v", recovered)
		span := trace.SpanFromContext(c.Request.Context())
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		log.ErrorWithContext(c.Request.Context(), "handler panicked", err, map[string]interface{}{
			"path": c.Request.URL.Path,
		})
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
