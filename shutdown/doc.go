// Package shutdown coordinates the graceful exit of the service.
//
// A Coordinator waits on two listeners, interrupt and termination. The
// termination listener is SIGTERM on unix and never fires elsewhere. The
// first listener to fire wins; later signals are ignored while shutdown is
// in progress. The coordinator then moves through
//
//	Running -> ShutdownRequested -> Draining -> Terminated
//
// logging a warning on ShutdownRequested, draining the HTTP server, and
// finally shutting down the trace pipeline so buffered spans are exported
// before the process exits. The flush is best effort and bounded by
// FlushTimeout.
package shutdown
