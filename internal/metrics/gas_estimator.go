package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gasEstimationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "suiexplorer",
		Subsystem: "gas_estimator",
		Name:      "estimations_total",
		Help:      "Count of gas estimations that ran a simulation.",
	}, []string{"operation", "network", "status"})
	gasEstimationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "suiexplorer",
		Subsystem: "gas_estimator",
		Name:      "estimation_duration_seconds",
		Help:      "Duration of gas estimations that ran a simulation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
	gasCacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "suiexplorer",
		Subsystem: "gas_estimator",
		Name:      "cache_hits_total",
		Help:      "Count of gas estimations served from the query cache.",
	}, []string{"operation", "network"})
)

// GasEstimator tracks gas estimation queries.
type GasEstimator struct {
	network string
}

// NewGasEstimator constructs a metrics collector for gas estimations.
func NewGasEstimator(network string) *GasEstimator {
	return &GasEstimator{network: orUnknown(network)}
}

// ObserveEstimate records one simulation run.
func (m GasEstimator) ObserveEstimate(operation string, err error, started time.Time) {
	status := statusOf(err)
	gasEstimationsTotal.WithLabelValues(operation, m.network, status).Inc()
	gasEstimationDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveCacheHit records a query answered without a simulation.
func (m GasEstimator) ObserveCacheHit(operation string) {
	gasCacheHitsTotal.WithLabelValues(operation, m.network).Inc()
}
