package gas

import (
	"context"
	"time"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// BuildFunc serializes the transactions of an operation for the given gas budget.
type BuildFunc func(ctx context.Context, gasBudget uint64) ([]string, error)

type (
	// Signer simulates operations on behalf of the active account.
	Signer interface {
		Address(ctx context.Context) (string, error)
		GasCostEstimationAndSuggestedBudget(ctx context.Context, operation string, build BuildFunc, maxBalance uint64) (model.GasEstimate, error)
	}
	// Serializer builds unsigned transaction bytes.
	Serializer interface {
		NewTransferObject(ctx context.Context, signer string, tx model.TransferObject) (*model.TransactionBytes, error)
	}
	// BalanceProvider returns the largest single coin balance of a coin type.
	BalanceProvider interface {
		MaxCoinBalance(ctx context.Context, owner, coinType string) (uint64, error)
	}
	// Metrics records gas estimator metrics.
	Metrics interface {
		ObserveEstimate(operation string, err error, started time.Time)
		ObserveCacheHit(operation string)
	}
)
