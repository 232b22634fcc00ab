package signer

import (
	"context"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Accounts lists the addresses of the connected wallet.
	Accounts interface {
		Accounts(ctx context.Context) ([]string, error)
	}
	// DryRunner simulates serialized transactions.
	DryRunner interface {
		DryRunTransaction(ctx context.Context, txBytes string) (*model.TransactionEffects, error)
	}
)
