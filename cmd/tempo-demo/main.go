// tempo-demo is a small HTTP service that exports its traces to an
// OTLP/HTTP collector with Basic authentication and flushes them on
// SIGINT or SIGTERM before exiting.
//
// Usage:
//
//	# Serve on 127.0.0.1:3000
//	OTEL_TEMPO_USERNAME=... OTEL_TEMPO_PASSWORD=... OTEL_TEMPO_ENDPOINT=https://... tempo-demo
//
//	# Serve on another address
//	tempo-demo serve --addr 0.0.0.0:8080
//
//	# Show version information
//	tempo-demo version
package main

func main() {
	Execute()
}
