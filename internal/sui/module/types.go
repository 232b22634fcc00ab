package module

import (
	"context"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// FunctionFetcher resolves the normalized signature of a Move function.
	FunctionFetcher interface {
		GetNormalizedMoveFunction(ctx context.Context, packageID model.ObjectID, module, function string) (*model.NormalizedFunction, error)
	}
	// ConnectionState reports whether a wallet is connected.
	ConnectionState interface {
		Connected(ctx context.Context) bool
	}
)
