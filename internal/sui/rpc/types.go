package rpc

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Caller performs a single JSON-RPC call. *rpc.Client from go-ethereum satisfies it.
	Caller interface {
		CallContext(ctx context.Context, result any, method string, args ...any) error
	}
	// Metrics records metrics for RPC calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
