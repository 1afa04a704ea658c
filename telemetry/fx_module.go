package telemetry

import (
	"go.uber.org/fx"
)

// FXModule composes the sink from the *tracer.TracerClient and
// *logger.LoggerClient in the container and installs it while the
// application is being built. A failed installation aborts startup.
var FXModule = fx.Module("telemetry",
	fx.Provide(Compose),
	fx.Invoke(func(s *Subscriber) error {
		return s.Install()
	}),
)
