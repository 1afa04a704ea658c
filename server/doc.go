// Package server provides the instrumented HTTP surface.
//
// Requests pass through an otelhttp handler that opens the "request" span
// and extracts any incoming trace context, then through the gin engine:
//
//	otelhttp ("request" span)
//	  -> RequestID      X-Request-ID header and span attribute
//	  -> TraceResponse  traceparent written to the response headers
//	  -> AccessLog      started/finished events on the "gin" target
//	  -> routes         GET / -> Index ("index" child span, 100ms, HTML)
//	  -> Rejection      unmatched route or method, trace on "gin.rejection"
//
// Server binds the listener, serves the handler and drains in-flight
// requests on Shutdown. Shutdown is idempotent so the shutdown coordinator
// and the fx lifecycle can both call it.
package server
