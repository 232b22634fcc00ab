package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loaderSettledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "suiexplorer",
		Subsystem: "transaction_loader",
		Name:      "settled_total",
		Help:      "Count of transaction views that settled, by mode and final state.",
	}, []string{"network", "mode", "state"})
	loaderSettleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "suiexplorer",
		Subsystem: "transaction_loader",
		Name:      "settle_duration_seconds",
		Help:      "Time from opening a transaction view until it settled.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "mode", "state"})
	loaderStaleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "suiexplorer",
		Subsystem: "transaction_loader",
		Name:      "stale_results_total",
		Help:      "Count of fetch results dropped because a newer request superseded them.",
	}, []string{"network"})
)

// TransactionLoader tracks transaction view outcomes.
type TransactionLoader struct {
	network string
}

// NewTransactionLoader constructs a metrics collector for transaction views.
func NewTransactionLoader(network string) *TransactionLoader {
	return &TransactionLoader{network: orUnknown(network)}
}

// ObserveSettled records a view reaching a terminal state.
func (m TransactionLoader) ObserveSettled(mode, state string, started time.Time) {
	loaderSettledTotal.WithLabelValues(m.network, mode, state).Inc()
	loaderSettleDuration.WithLabelValues(m.network, mode, state).Observe(time.Since(started).Seconds())
}

// ObserveStale records a fetch result that was discarded.
func (m TransactionLoader) ObserveStale() {
	loaderStaleTotal.WithLabelValues(m.network).Inc()
}
