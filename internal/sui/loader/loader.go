// Package loader drives transaction result pages: it fetches a transaction from
// the node or from recorded fixtures and settles a view model for it.
package loader

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/model"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/txview"
	"github.com/goodnatureofminers/suiexplorer-backend/pkg/workerpool"
)

const (
	modeStatic = "static"

	defaultWorkerCount = 8
	reportSource       = "static_transaction"
)

// Config wires a Loader. Fixtures is required when Static is set, Source otherwise.
type Config struct {
	Source      Source
	Fixtures    FixtureStore
	Static      bool
	Reporter    ErrorReporter
	Metrics     Metrics
	WorkerCount int
}

// Loader settles transaction views for requests.
type Loader struct {
	source      Source
	fixtures    FixtureStore
	static      bool
	reporter    ErrorReporter
	metrics     Metrics
	workerCount int
	logger      *zap.Logger
}

// New builds a Loader.
func New(cfg Config, logger *zap.Logger) (*Loader, error) {
	if cfg.Metrics == nil {
		return nil, errors.New("transaction loader metrics is required")
	}
	if cfg.Static {
		if cfg.Fixtures == nil {
			return nil, errors.New("static mode requires a fixture store")
		}
		if cfg.Reporter == nil {
			return nil, errors.New("static mode requires an error reporter")
		}
	} else if cfg.Source == nil {
		return nil, errors.New("transaction source is required")
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = defaultWorkerCount
	}
	return &Loader{
		source:      cfg.Source,
		fixtures:    cfg.Fixtures,
		static:      cfg.Static,
		reporter:    cfg.Reporter,
		metrics:     cfg.Metrics,
		workerCount: cfg.WorkerCount,
		logger:      logger,
	}, nil
}

// NewView returns a long-lived view reading from the loader's source.
func (l *Loader) NewView() *View {
	return NewView(l.source, l.metrics, l.logger.Named("view"))
}

// Load settles the view for id. The error is non-nil only when ctx ends first.
func (l *Loader) Load(ctx context.Context, id string) (txview.TransactionView, error) {
	if l.static {
		return l.loadStatic(id), nil
	}
	view := l.NewView()
	defer view.Close()
	view.Open(ctx, id)
	return view.Wait(ctx)
}

// LoadMany settles views for ids concurrently, preserving order.
func (l *Loader) LoadMany(ctx context.Context, ids []string) ([]txview.TransactionView, error) {
	return workerpool.Map(ctx, l.workerCount, ids, func(ctx context.Context, id string) txview.TransactionView {
		view, err := l.Load(ctx, id)
		if err != nil {
			return txview.Failed(id)
		}
		return view
	})
}

// Preloaded builds the view for a response the client already holds.
func (l *Loader) Preloaded(raw *model.TransactionWithAuthSigners, id string) (txview.TransactionView, error) {
	return txview.Normalize(raw, id)
}

func (l *Loader) loadStatic(id string) txview.TransactionView {
	started := time.Now()
	view, err := l.staticView(id)
	if err != nil {
		l.logger.Error("static transaction lookup failed", zap.String("tx_id", id), zap.Error(err))
		l.reporter.Capture(reportSource, err, zap.String("tx_id", id))
		view = txview.Failed(id)
	}
	l.metrics.ObserveSettled(modeStatic, string(view.LoadState), started)
	return view
}

func (l *Loader) staticView(id string) (txview.TransactionView, error) {
	raw, err := l.fixtures.FindDataFromID(id)
	if err != nil {
		return txview.TransactionView{}, err
	}
	return txview.Normalize(raw, id)
}
