// Package gas estimates the gas needed to transfer an NFT.
package gas

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/model"
	"github.com/goodnatureofminers/suiexplorer-backend/pkg/query"
)

const (
	operationTransferObject = "transferObject"
	metricsOperation        = "nft_transfer"

	defaultCacheSize  = 256
	defaultTTL        = 30 * time.Second
	defaultBalanceTTL = 10 * time.Second
	defaultErrorTTL   = 5 * time.Second
)

// Result is the outcome of an estimation. Values are nil until available.
type Result struct {
	SuggestedGasBudget *uint64 `json:"suggestedGasBudget"`
	GasCostEstimation  *int64  `json:"gasCostEstimation"`
	IsLoading          bool    `json:"isLoading"`
}

// Config wires the estimator collaborators.
type Config struct {
	Signer     Signer
	Serializer Serializer
	Balances   BalanceProvider
	Metrics    Metrics
	CacheSize  int
	TTL        time.Duration
	BalanceTTL time.Duration
	// ErrorTTL is how long Peek keeps reporting a failed lookup before retrying.
	ErrorTTL time.Duration
}

// Estimator memoizes gas estimates per object and balance.
type Estimator struct {
	signer     Signer
	serializer Serializer
	balances   BalanceProvider
	metrics    Metrics
	logger     *zap.Logger

	estimates   *query.Cache[model.GasEstimate]
	maxBalances *query.Cache[uint64]
}

// New validates cfg and returns an Estimator.
func New(cfg Config, logger *zap.Logger) (*Estimator, error) {
	if cfg.Signer == nil {
		return nil, errors.New("signer is required")
	}
	if cfg.Serializer == nil {
		return nil, errors.New("serializer is required")
	}
	if cfg.Balances == nil {
		return nil, errors.New("balance provider is required")
	}
	if cfg.Metrics == nil {
		return nil, errors.New("gas estimator metrics is required")
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.BalanceTTL <= 0 {
		cfg.BalanceTTL = defaultBalanceTTL
	}
	if cfg.ErrorTTL <= 0 {
		cfg.ErrorTTL = defaultErrorTTL
	}
	return &Estimator{
		signer:      cfg.Signer,
		serializer:  cfg.Serializer,
		balances:    cfg.Balances,
		metrics:     cfg.Metrics,
		logger:      logger.Named("gas_estimator"),
		estimates:   query.New[model.GasEstimate](cfg.CacheSize, cfg.TTL, query.WithErrorTTL(cfg.ErrorTTL)),
		maxBalances: query.New[uint64](cfg.CacheSize, cfg.BalanceTTL, query.WithErrorTTL(cfg.ErrorTTL)),
	}, nil
}

// Key returns the memoization key of an NFT transfer estimate.
func Key(objectID model.ObjectID, maxBalance uint64) string {
	return fmt.Sprintf("gas-estimation/nft-transfer/%s/%d", objectID, maxBalance)
}

// Estimate blocks until the estimate for objectID is known.
// An empty objectID disables the query and yields an empty result.
func (e *Estimator) Estimate(ctx context.Context, objectID model.ObjectID) (Result, error) {
	if objectID == "" {
		return Result{}, nil
	}
	address, err := e.signer.Address(ctx)
	if err != nil {
		return Result{}, err
	}
	maxBalance, _, err := e.maxBalances.Fetch(ctx, address, e.fetchMaxBalance(address))
	if err != nil {
		return Result{}, err
	}
	estimate, cached, err := e.estimates.Fetch(ctx, Key(objectID, maxBalance), e.simulate(address, objectID, maxBalance))
	if err != nil {
		return Result{}, err
	}
	if cached {
		e.metrics.ObserveCacheHit(metricsOperation)
	}
	return resultOf(estimate), nil
}

// Peek returns the estimate if it is already known. A recently failed
// lookup returns its error. Otherwise the result is loading and the estimate
// is computed in the background.
func (e *Estimator) Peek(ctx context.Context, objectID model.ObjectID) (Result, error) {
	if objectID == "" {
		return Result{}, nil
	}
	address, err := e.signer.Address(ctx)
	if err != nil {
		return Result{}, err
	}
	maxBalance, ok, err := e.maxBalances.Peek(ctx, address, e.logged(address, e.fetchMaxBalance(address)))
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{IsLoading: true}, nil
	}
	estimate, ok, err := e.estimates.Peek(ctx, Key(objectID, maxBalance), e.loggedEstimate(objectID, e.simulate(address, objectID, maxBalance)))
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{IsLoading: true}, nil
	}
	e.metrics.ObserveCacheHit(metricsOperation)
	return resultOf(estimate), nil
}

func (e *Estimator) fetchMaxBalance(address string) query.Fetcher[uint64] {
	return func(ctx context.Context) (uint64, error) {
		return e.balances.MaxCoinBalance(ctx, address, model.SUITypeArg)
	}
}

func (e *Estimator) simulate(address string, objectID model.ObjectID, maxBalance uint64) query.Fetcher[model.GasEstimate] {
	return func(ctx context.Context) (estimate model.GasEstimate, err error) {
		started := time.Now()
		defer func() {
			e.metrics.ObserveEstimate(metricsOperation, err, started)
		}()
		build := func(ctx context.Context, gasBudget uint64) ([]string, error) {
			// gas cost is the same regardless of the recipient
			tx, err := e.serializer.NewTransferObject(ctx, address, model.TransferObject{
				ObjectID:  objectID,
				GasBudget: gasBudget,
				Recipient: address,
			})
			if err != nil {
				return nil, err
			}
			return []string{tx.TxBytes}, nil
		}
		return e.signer.GasCostEstimationAndSuggestedBudget(ctx, operationTransferObject, build, maxBalance)
	}
}

func (e *Estimator) logged(address string, fn query.Fetcher[uint64]) query.Fetcher[uint64] {
	return func(ctx context.Context) (uint64, error) {
		v, err := fn(ctx)
		if err != nil {
			e.logger.Warn("max balance lookup failed", zap.String("address", address), zap.Error(err))
		}
		return v, err
	}
}

func (e *Estimator) loggedEstimate(objectID model.ObjectID, fn query.Fetcher[model.GasEstimate]) query.Fetcher[model.GasEstimate] {
	return func(ctx context.Context) (model.GasEstimate, error) {
		v, err := fn(ctx)
		if err != nil {
			e.logger.Warn("gas estimation failed", zap.String("object_id", string(objectID)), zap.Error(err))
		}
		return v, err
	}
}

func resultOf(estimate model.GasEstimate) Result {
	budget := estimate.SuggestedGasBudget
	cost := estimate.GasCostEstimation
	return Result{SuggestedGasBudget: &budget, GasCostEstimation: &cost}
}
