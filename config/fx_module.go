package config

import (
	"go.uber.org/fx"
)

// FXModule provides *Config loaded from the environment together with the
// per-package configurations derived from it.
//
// Usage:
//
//	app := fx.New(
//	    config.FXModule,
//	    logger.FXModule,
//	    tracer.FXModule,
//	)
//
// A *Config already supplied with fx.Supply can be used instead by
// providing the derived values through ProvideDerived.
var FXModule = fx.Module("config",
	fx.Provide(Load),
	ProvideDerived,
)

// ProvideDerived provides the server, logger and tracer configurations
// from a *Config available in the container.
var ProvideDerived = fx.Provide(
	func(c *Config) ServerConfig { return c.Server },
	func(c *Config) TelemetryConfig { return c.Telemetry },
	(*Config).LoggerConfig,
	(*Config).TracerConfig,
)
