package connect

import (
	"context"
	"errors"
	"sync/atomic"
)

// WatchOnly is an adapter exposing a fixed set of addresses. It cannot sign.
type WatchOnly struct {
	name      string
	addresses []string
	connected atomic.Bool
}

// NewWatchOnly returns a watch-only adapter for addresses.
func NewWatchOnly(name string, addresses []string) *WatchOnly {
	return &WatchOnly{name: name, addresses: append([]string(nil), addresses...)}
}

func (w *WatchOnly) Name() string { return w.name }

func (w *WatchOnly) Connect(context.Context) error {
	if len(w.addresses) == 0 {
		return errors.New("no addresses configured")
	}
	w.connected.Store(true)
	return nil
}

func (w *WatchOnly) Connected() bool { return w.connected.Load() }

func (w *WatchOnly) Accounts(context.Context) ([]string, error) {
	if !w.connected.Load() {
		return nil, ErrNotConnected
	}
	return append([]string(nil), w.addresses...), nil
}

func (w *WatchOnly) Disconnect(context.Context) error {
	w.connected.Store(false)
	return nil
}
