package shutdown

import (
	"os"
	"os/signal"
	"sync"
)

// Listener delivers a shutdown request. A Listener with a nil channel
// never fires.
type Listener struct {
	// Name identifies the listener in logs, e.g. "SIGINT".
	Name string

	c        <-chan os.Signal
	stop     func()
	stopOnce sync.Once
}

// NewListener returns a Listener fed by c. stop, when not nil, is called
// once by Stop. It is mainly useful to drive a Coordinator in tests.
func NewListener(name string, c <-chan os.Signal, stop func()) *Listener {
	return &Listener{Name: name, c: c, stop: stop}
}

// Interrupt listens for SIGINT.
func Interrupt() (*Listener, error) {
	return notify("SIGINT", os.Interrupt)
}

// Stop releases the underlying signal registration.
func (l *Listener) Stop() {
	if l == nil {
		return
	}
	l.stopOnce.Do(func() {
		if l.stop != nil {
			l.stop()
		}
	})
}

func notify(name string, sig os.Signal) (*Listener, error) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sig)
	return NewListener(name, ch, func() { signal.Stop(ch) }), nil
}
