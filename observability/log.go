package observability

import (
	"github.com/aalemi-dev/tempo-demo/logger"
)

// LogObserver writes every operation to a logger. Successful operations are
// logged at debug, failed ones at error.
type LogObserver struct {
	log logger.Logger
}

// NewLogObserver returns an Observer logging through log.
func NewLogObserver(log logger.Logger) Observer {
	return &LogObserver{log: log}
}

// ObserveOperation logs the operation.
func (o *LogObserver) ObserveOperation(ctx OperationContext) {
	fields := map[string]interface{}{
		"component":   ctx.Component,
		"operation":   ctx.Operation,
		"duration_ms": ctx.Duration.Milliseconds(),
	}
	if ctx.Resource != "" {
		fields["resource"] = ctx.Resource
	}
	for k, v := range ctx.Metadata {
		fields[k] = v
	}

	msg := ctx.Component + " " + ctx.Operation
	if ctx.Error != nil {
		o.log.Error(msg+" failed", ctx.Error, fields)
		return
	}
	o.log.Debug(msg, nil, fields)
}
