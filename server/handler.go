package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aalemi-dev/tempo-demo/tracer"
)

// Index serves the static page after delay, inside an "index" span that is
// a child of the request span. If the client goes away first the span
// records the cancellation and nothing is written.
func Index(tc tracer.Tracer, delay time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tc.StartSpan(c.Request.Context(), IndexSpanName)
		defer span.End()

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			span.RecordError(ctx.Err())
			return
		}

		span.SetAttributes(map[string]interface{}{
			"delay_ms": delay.Milliseconds(),
		})
		c.Data(http.StatusOK, IndexContentType, []byte(IndexBody))
	}
}
