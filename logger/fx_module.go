package logger

import (
	"context"
	"errors"
	"syscall"

	"go.uber.org/fx"
)

// FXModule provides *LoggerClient and the Logger interface built from the
// logger.Config in the container, and syncs the logger on stop.
//
//	app := fx.New(
//	    fx.Supply(logger.Config{Filter: logger.FilterFromEnv().String()}),
//	    logger.FXModule,
//	)
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
		fx.Annotate(
			func(l *LoggerClient) Logger { return l },
			fx.As(new(Logger)),
		),
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle flushes buffered entries when the application stops.
//
// Syncing a terminal or pipe reports EINVAL or ENOTTY on some platforms;
// those errors are ignored.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *LoggerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := client.Sync(); err != nil && !isIgnorableSyncError(err) {
				return err
			}
			return nil
		},
	})
}

func isIgnorableSyncError(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)
}
