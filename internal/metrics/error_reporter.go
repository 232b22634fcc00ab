package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var reportedErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "suiexplorer",
	Subsystem: "error_reporter",
	Name:      "captured_total",
	Help:      "Count of errors captured for out-of-band inspection.",
}, []string{"source"})

// ErrorReporter captures unexpected errors: it logs them with a stack trace and counts them.
type ErrorReporter struct {
	logger *zap.Logger
}

// NewErrorReporter builds an ErrorReporter writing to logger.
func NewErrorReporter(logger *zap.Logger) *ErrorReporter {
	return &ErrorReporter{logger: logger.Named("errorReporter")}
}

// Capture records err under source.
func (r *ErrorReporter) Capture(source string, err error, fields ...zap.Field) {
	if err == nil {
		return
	}
	source = orUnknown(source)
	reportedErrorsTotal.WithLabelValues(source).Inc()
	r.logger.Error("captured error",
		append([]zap.Field{zap.String("source", source), zap.Error(err), zap.Stack("stack")}, fields...)...)
}
