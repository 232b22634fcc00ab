// Package rpc is an instrumented JSON-RPC client for a Sui full node.
package rpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/model"
)

const coinsPageLimit = 100

// ErrEmptyResult is returned when the node answers with a null result.
var ErrEmptyResult = errors.New("rpc returned empty result")

// Client wraps a JSON-RPC caller with metrics and rate limiting.
type Client struct {
	caller  Caller
	metrics Metrics
	limiter ratelimit.Limiter
}

// NewClient constructs an instrumented client. A nil limiter disables rate limiting.
func NewClient(caller Caller, metrics Metrics, limiter ratelimit.Limiter) *Client {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &Client{
		caller:  caller,
		metrics: metrics,
		limiter: limiter,
	}
}

// Dial connects to the node at url. rps <= 0 disables rate limiting.
func Dial(ctx context.Context, url string, rps int, metrics Metrics) (*Client, func(), error) {
	raw, err := gethrpc.DialContext(ctx, url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", url, err)
	}
	var limiter ratelimit.Limiter
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return NewClient(raw, metrics, limiter), raw.Close, nil
}

func (c *Client) call(ctx context.Context, operation string, result any, method string, args ...any) (err error) {
	c.limiter.Take()
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()
	if err = c.caller.CallContext(ctx, result, method, args...); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// GetTransactionWithAuthSigners returns a transaction together with the authorities that signed it.
func (c *Client) GetTransactionWithAuthSigners(ctx context.Context, digest string) (*model.TransactionWithAuthSigners, error) {
	var res *model.TransactionWithAuthSigners
	if err := c.call(ctx, "get_transaction_auth_signers", &res, "sui_getTransactionAuthSigners", digest); err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("transaction %s: %w", digest, ErrEmptyResult)
	}
	return res, nil
}

// Transaction implements the transaction source used by the explorer loader.
func (c *Client) Transaction(ctx context.Context, id string) (*model.TransactionWithAuthSigners, error) {
	return c.GetTransactionWithAuthSigners(ctx, id)
}

// GetNormalizedMoveFunction returns the normalized signature of a Move function.
func (c *Client) GetNormalizedMoveFunction(ctx context.Context, packageID model.ObjectID, module, function string) (*model.NormalizedFunction, error) {
	var res *model.NormalizedFunction
	if err := c.call(ctx, "get_normalized_move_function", &res, "sui_getNormalizedMoveFunction", packageID, module, function); err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("function %s::%s::%s: %w", packageID, module, function, ErrEmptyResult)
	}
	return res, nil
}

// GetCoins returns one page of coins of coinType owned by owner.
func (c *Client) GetCoins(ctx context.Context, owner, coinType string, cursor *model.ObjectID, limit uint) (*model.CoinPage, error) {
	var res *model.CoinPage
	if err := c.call(ctx, "get_coins", &res, "sui_getCoins", owner, coinType, cursor, limit); err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("coins of %s: %w", owner, ErrEmptyResult)
	}
	return res, nil
}

// MaxCoinBalance returns the largest balance held by a single coin of coinType.
// An owner without coins has a max balance of zero.
func (c *Client) MaxCoinBalance(ctx context.Context, owner, coinType string) (uint64, error) {
	var (
		highest uint64
		cursor  *model.ObjectID
	)
	for {
		page, err := c.GetCoins(ctx, owner, coinType, cursor, coinsPageLimit)
		if err != nil {
			return 0, err
		}
		for _, coin := range page.Data {
			if coin.Balance > highest {
				highest = coin.Balance
			}
		}
		if page.NextCursor == nil || len(page.Data) == 0 {
			return highest, nil
		}
		cursor = page.NextCursor
	}
}

// NewTransferObject asks the node to build an unsigned transferObject transaction.
func (c *Client) NewTransferObject(ctx context.Context, signer string, tx model.TransferObject) (*model.TransactionBytes, error) {
	var res *model.TransactionBytes
	if err := c.call(ctx, "transfer_object", &res, "sui_transferObject", signer, tx.ObjectID, tx.Gas, tx.GasBudget, tx.Recipient); err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("transfer of %s: %w", tx.ObjectID, ErrEmptyResult)
	}
	return res, nil
}

// DryRunTransaction simulates txBytes and returns the effects it would produce.
func (c *Client) DryRunTransaction(ctx context.Context, txBytes string) (*model.TransactionEffects, error) {
	var res *model.TransactionEffects
	if err := c.call(ctx, "dry_run_transaction", &res, "sui_dryRunTransaction", txBytes); err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("dry run: %w", ErrEmptyResult)
	}
	return res, nil
}
