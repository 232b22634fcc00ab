package loader

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/txview"
)

const modeAPI = "api"

// ErrViewClosed is returned by Wait when the view is closed before it settles.
var ErrViewClosed = errors.New("view closed")

// View is the state of one transaction page. Opening a new id supersedes the
// request in flight: its context is canceled and its result, if it still
// arrives, is dropped.
type View struct {
	source  Source
	metrics Metrics
	logger  *zap.Logger

	mu     sync.Mutex
	gen    uint64
	id     string
	opened bool
	cancel context.CancelFunc
	// done is closed once the current request settles, is superseded or is closed.
	done       chan struct{}
	doneClosed bool
	state      txview.TransactionView
}

// NewView builds an unopened View reading from source.
func NewView(source Source, metrics Metrics, logger *zap.Logger) *View {
	return &View{
		source:  source,
		metrics: metrics,
		logger:  logger,
		done:    make(chan struct{}),
		state:   txview.Pending(""),
	}
}

// Open switches the view to id. The state becomes pending before Open returns
// and the fetch runs in the background. Opening the id already shown is a
// no-op while it is settled or still being fetched.
func (v *View) Open(ctx context.Context, id string) {
	v.mu.Lock()
	if v.opened && v.id == id && (v.state.LoadState.Settled() || v.cancel != nil) {
		v.mu.Unlock()
		return
	}
	if v.cancel != nil {
		v.cancel()
	}
	v.release()
	v.gen++
	gen := v.gen
	fetchCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	v.id = id
	v.opened = true
	v.cancel = cancel
	v.done = done
	v.doneClosed = false
	v.state = txview.Pending(id)
	v.mu.Unlock()

	started := time.Now()
	if id == "" {
		v.apply(gen, txview.Failed(id), started)
		return
	}
	go v.fetch(fetchCtx, gen, id, started)
}

func (v *View) fetch(ctx context.Context, gen uint64, id string, started time.Time) {
	raw, err := v.source.Transaction(ctx, id)
	if err == nil {
		var view txview.TransactionView
		if view, err = txview.Normalize(raw, id); err == nil {
			v.apply(gen, view, started)
			return
		}
	}
	v.logger.Warn("error fetching transaction data", zap.String("tx_id", id), zap.Error(err))
	v.apply(gen, txview.Failed(id), started)
}

func (v *View) apply(gen uint64, next txview.TransactionView, started time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		v.metrics.ObserveStale()
		return
	}
	v.state = next
	v.cancel()
	v.cancel = nil
	v.release()
	v.metrics.ObserveSettled(modeAPI, string(next.LoadState), started)
}

// Snapshot returns the current state.
func (v *View) Snapshot() txview.TransactionView {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Wait blocks until the current id settles or ctx is done. A waiter whose id
// is superseded keeps waiting for the id that replaced it.
func (v *View) Wait(ctx context.Context) (txview.TransactionView, error) {
	for {
		v.mu.Lock()
		done := v.done
		v.mu.Unlock()

		select {
		case <-ctx.Done():
			return v.Snapshot(), ctx.Err()
		case <-done:
		}

		v.mu.Lock()
		current := v.done == done
		state := v.state
		v.mu.Unlock()
		if !current {
			continue
		}
		if !state.LoadState.Settled() {
			return state, ErrViewClosed
		}
		return state, nil
	}
}

// Close cancels the request in flight. Its result will not be applied and
// pending waiters return ErrViewClosed.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.release()
}

// release wakes the waiters of the current request. Callers hold mu.
func (v *View) release() {
	if !v.doneClosed {
		close(v.done)
		v.doneClosed = true
	}
}
