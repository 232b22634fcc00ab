// Package signer estimates gas for the active wallet account by dry running transactions.
// It never holds keys and never signs.
package signer

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/model"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/wallet/gas"
	"github.com/goodnatureofminers/suiexplorer-backend/pkg/safe"
)

// DefaultOverheadPercent is added on top of the simulated cost.
const DefaultOverheadPercent = 10

var (
	// ErrNoAccount is returned when the wallet exposes no account.
	ErrNoAccount = errors.New("wallet has no account")
	// ErrMissingGasSummary is returned when a dry run reports no gas usage.
	ErrMissingGasSummary = errors.New("dry run returned no gas summary")
)

// DryRunSigner implements gas.Signer on top of a node dry run.
type DryRunSigner struct {
	accounts        Accounts
	node            DryRunner
	overheadPercent uint64
	logger          *zap.Logger
}

var _ gas.Signer = (*DryRunSigner)(nil)

// New returns a DryRunSigner that adds overheadPercent to the simulated cost.
func New(accounts Accounts, node DryRunner, overheadPercent uint64, logger *zap.Logger) (*DryRunSigner, error) {
	if accounts == nil {
		return nil, errors.New("accounts are required")
	}
	if node == nil {
		return nil, errors.New("dry runner is required")
	}
	return &DryRunSigner{
		accounts:        accounts,
		node:            node,
		overheadPercent: overheadPercent,
		logger:          logger.Named("signer"),
	}, nil
}

// Address returns the first account of the wallet.
func (s *DryRunSigner) Address(ctx context.Context) (string, error) {
	accounts, err := s.accounts.Accounts(ctx)
	if err != nil {
		return "", err
	}
	if len(accounts) == 0 || accounts[0] == "" {
		return "", ErrNoAccount
	}
	return accounts[0], nil
}

// GasCostEstimationAndSuggestedBudget builds the operation with maxBalance as
// budget, dry runs every resulting transaction and sums the gas used.
// The suggested budget is the cost plus overhead, capped at maxBalance.
func (s *DryRunSigner) GasCostEstimationAndSuggestedBudget(ctx context.Context, operation string, build gas.BuildFunc, maxBalance uint64) (model.GasEstimate, error) {
	txs, err := build(ctx, maxBalance)
	if err != nil {
		return model.GasEstimate{}, fmt.Errorf("build %s: %w", operation, err)
	}
	var cost int64
	for _, tx := range txs {
		effects, err := s.node.DryRunTransaction(ctx, tx)
		if err != nil {
			return model.GasEstimate{}, err
		}
		if effects == nil || effects.GasUsed == nil {
			return model.GasEstimate{}, ErrMissingGasSummary
		}
		used, err := effects.GasUsed.TotalGasUsed()
		if err != nil {
			return model.GasEstimate{}, err
		}
		if cost, err = safe.AddInt64(cost, used); err != nil {
			return model.GasEstimate{}, fmt.Errorf("total gas of %s: %w", operation, err)
		}
	}

	base := uint64(0)
	if cost > 0 {
		base, err = safe.Uint64(cost)
		if err != nil {
			return model.GasEstimate{}, err
		}
	}
	suggested, err := safe.AddPercentCeil(base, s.overheadPercent)
	if err != nil {
		return model.GasEstimate{}, err
	}
	if suggested > maxBalance {
		suggested = maxBalance
	}
	s.logger.Debug("gas estimated",
		zap.String("operation", operation),
		zap.Int64("cost", cost),
		zap.Uint64("suggested_budget", suggested),
		zap.Uint64("max_balance", maxBalance),
	)
	return model.GasEstimate{SuggestedGasBudget: suggested, GasCostEstimation: cost}, nil
}
