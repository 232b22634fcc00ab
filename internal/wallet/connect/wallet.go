// Package connect holds the wallet connection state behind the connect button and modal.
package connect

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrUnknownAdapter is returned when selecting an adapter that is not registered.
	ErrUnknownAdapter = errors.New("unknown wallet adapter")
	// ErrNotConnected is returned when no adapter is connected.
	ErrNotConnected = errors.New("wallet not connected")
)

// Wallet tracks the registered adapters and the selected one.
type Wallet struct {
	adapters []Adapter
	logger   *zap.Logger

	mu       sync.RWMutex
	selected Adapter
}

// NewWallet registers adapters in display order. Duplicate names are rejected.
func NewWallet(logger *zap.Logger, adapters ...Adapter) (*Wallet, error) {
	seen := make(map[string]struct{}, len(adapters))
	for _, a := range adapters {
		if a == nil {
			return nil, errors.New("nil wallet adapter")
		}
		if _, ok := seen[a.Name()]; ok {
			return nil, fmt.Errorf("duplicate wallet adapter %q", a.Name())
		}
		seen[a.Name()] = struct{}{}
	}
	return &Wallet{adapters: adapters, logger: logger.Named("wallet")}, nil
}

// Adapters returns the names of the registered adapters.
func (w *Wallet) Adapters() []string {
	names := make([]string, 0, len(w.adapters))
	for _, a := range w.adapters {
		names = append(names, a.Name())
	}
	return names
}

// Select connects the adapter registered under name and makes it current.
func (w *Wallet) Select(ctx context.Context, name string) error {
	var adapter Adapter
	for _, a := range w.adapters {
		if a.Name() == name {
			adapter = a
			break
		}
	}
	if adapter == nil {
		return fmt.Errorf("%w: %s", ErrUnknownAdapter, name)
	}
	if err := adapter.Connect(ctx); err != nil {
		return fmt.Errorf("connect %s: %w", name, err)
	}

	w.mu.Lock()
	previous := w.selected
	w.selected = adapter
	w.mu.Unlock()

	if previous != nil && previous != adapter {
		if err := previous.Disconnect(ctx); err != nil {
			w.logger.Warn("disconnect previous adapter", zap.String("adapter", previous.Name()), zap.Error(err))
		}
	}
	w.logger.Info("wallet connected", zap.String("adapter", name))
	return nil
}

// Selected returns the name of the current adapter, or "".
func (w *Wallet) Selected() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.selected == nil {
		return ""
	}
	return w.selected.Name()
}

// Connected reports whether the current adapter is connected.
func (w *Wallet) Connected(context.Context) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.selected != nil && w.selected.Connected()
}

// Accounts returns the accounts exposed by the current adapter.
func (w *Wallet) Accounts(ctx context.Context) ([]string, error) {
	w.mu.RLock()
	adapter := w.selected
	w.mu.RUnlock()
	if adapter == nil || !adapter.Connected() {
		return nil, ErrNotConnected
	}
	return adapter.Accounts(ctx)
}

// Disconnect disconnects the current adapter.
func (w *Wallet) Disconnect(ctx context.Context) error {
	w.mu.Lock()
	adapter := w.selected
	w.selected = nil
	w.mu.Unlock()
	if adapter == nil {
		return nil
	}
	return adapter.Disconnect(ctx)
}
