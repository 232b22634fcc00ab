package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "suiexplorer",
	Subsystem: "transaction_cache",
	Name:      "lookups_total",
	Help:      "Count of transaction cache lookups by result.",
}, []string{"network", "result"})

// TransactionCache tracks redis cache lookups.
type TransactionCache struct {
	network string
}

// NewTransactionCache constructs a metrics collector for the transaction cache.
func NewTransactionCache(network string) *TransactionCache {
	return &TransactionCache{network: orUnknown(network)}
}

// ObserveLookup records a lookup result: hit, miss or error.
func (m TransactionCache) ObserveLookup(result string) {
	cacheLookupsTotal.WithLabelValues(m.network, result).Inc()
}
