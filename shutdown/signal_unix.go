//go:build unix

package shutdown

import "syscall"

// Terminate listens for SIGTERM.
func Terminate() (*Listener, error) {
	return notify("SIGTERM", syscall.SIGTERM)
}
