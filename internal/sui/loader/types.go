package loader

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Source fetches a raw transaction response by id.
	Source interface {
		Transaction(ctx context.Context, id string) (*model.TransactionWithAuthSigners, error)
	}
	// FixtureStore is the synchronous lookup used in static mode.
	FixtureStore interface {
		FindDataFromID(id string) (*model.TransactionWithAuthSigners, error)
	}
	// ErrorReporter receives errors that deserve out-of-band attention.
	ErrorReporter interface {
		Capture(source string, err error, fields ...zap.Field)
	}
	// Metrics records transaction view outcomes.
	Metrics interface {
		ObserveSettled(mode, state string, started time.Time)
		ObserveStale()
	}
)
