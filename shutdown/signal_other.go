//go:build !unix

package shutdown

// Terminate returns a listener that never fires; the platform has no
// termination signal.
func Terminate() (*Listener, error) {
	return NewListener("SIGTERM", nil, nil), nil
}
