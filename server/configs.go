package server

import "time"

const (
	// IndexPath is the only route served.
	IndexPath = "/"

	// IndexBody is the static HTML returned by Index.
	IndexBody = "<h1>Hi again world</h1>"

	// IndexContentType is the content type of IndexBody.
	IndexContentType = "text/html; charset=utf-8"

	// IndexDelay is the simulated work done by Index.
	IndexDelay = 100 * time.Millisecond

	// RequestSpanName names the span opened for every request.
	RequestSpanName = "request"

	// IndexSpanName names the child span opened by Index.
	IndexSpanName = "index"

	// RequestIDHeader carries the request ID on requests and responses.
	RequestIDHeader = "X-Request-ID"

	// GinTarget receives per-request diagnostics.
	GinTarget = "gin"

	// RejectionTarget receives diagnostics for requests no route accepted.
	RejectionTarget = "gin.rejection"
)
