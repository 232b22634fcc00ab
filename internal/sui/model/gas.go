package model

import (
	"fmt"
	"math"

	"github.com/goodnatureofminers/suiexplorer-backend/pkg/safe"
)

// GasCostSummary is the gas breakdown reported in transaction effects.
type GasCostSummary struct {
	ComputationCost uint64 `json:"computationCost"`
	StorageCost     uint64 `json:"storageCost"`
	StorageRebate   uint64 `json:"storageRebate"`
}

// TotalGasUsed returns computation plus storage minus the storage rebate.
// The rebate may exceed the charges, so the total is signed.
func (g GasCostSummary) TotalGasUsed() (int64, error) {
	computation, err := safe.Int64(g.ComputationCost)
	if err != nil {
		return 0, fmt.Errorf("computation cost: %w", err)
	}
	storage, err := safe.Int64(g.StorageCost)
	if err != nil {
		return 0, fmt.Errorf("storage cost: %w", err)
	}
	rebate, err := safe.Int64(g.StorageRebate)
	if err != nil {
		return 0, fmt.Errorf("storage rebate: %w", err)
	}
	if computation > math.MaxInt64-storage {
		return 0, fmt.Errorf("gas charges overflow: %d + %d", computation, storage)
	}
	return computation + storage - rebate, nil
}

// GasEstimate is the outcome of simulating an operation.
type GasEstimate struct {
	SuggestedGasBudget uint64 `json:"suggestedGasBudget"`
	GasCostEstimation  int64  `json:"gasCostEstimation"`
}
