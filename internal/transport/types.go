package transport

import (
	"context"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/model"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/txview"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/wallet/connect"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/wallet/gas"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// TransactionLoader produces transaction views.
	TransactionLoader interface {
		Load(ctx context.Context, id string) (txview.TransactionView, error)
		LoadMany(ctx context.Context, ids []string) ([]txview.TransactionView, error)
		Preloaded(raw *model.TransactionWithAuthSigners, id string) (txview.TransactionView, error)
	}
	// FunctionFetcher resolves Move function signatures.
	FunctionFetcher interface {
		GetNormalizedMoveFunction(ctx context.Context, packageID model.ObjectID, module, function string) (*model.NormalizedFunction, error)
	}
	// GasEstimator estimates NFT transfer gas.
	GasEstimator interface {
		Estimate(ctx context.Context, objectID model.ObjectID) (gas.Result, error)
		Peek(ctx context.Context, objectID model.ObjectID) (gas.Result, error)
	}
	// WalletButton is the connect button state machine.
	WalletButton interface {
		State() connect.ButtonState
		Click(ctx context.Context) (connect.ButtonState, error)
		Refresh(ctx context.Context)
	}
	// WalletModal is the connect modal state machine.
	WalletModal interface {
		State() connect.ModalState
		Close()
		Select(ctx context.Context, name string) error
	}
	// ConnectionState reports whether a wallet is connected.
	ConnectionState interface {
		Connected(ctx context.Context) bool
	}
)
