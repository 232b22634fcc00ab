package connect

import (
	"context"
	"sync"
)

// ModalState is what the connect modal renders.
type ModalState struct {
	Open     bool     `json:"open"`
	Adapters []string `json:"adapters"`
	Selected string   `json:"selected"`
}

// Modal lists wallet adapters and connects the chosen one.
type Modal struct {
	wallet *Wallet

	mu   sync.Mutex
	open bool
}

// NewModal returns a closed modal for wallet.
func NewModal(wallet *Wallet) *Modal {
	return &Modal{wallet: wallet}
}

func (m *Modal) Open() {
	m.mu.Lock()
	m.open = true
	m.mu.Unlock()
}

func (m *Modal) Close() {
	m.mu.Lock()
	m.open = false
	m.mu.Unlock()
}

func (m *Modal) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// State returns the current rendering of the modal.
func (m *Modal) State() ModalState {
	return ModalState{
		Open:     m.IsOpen(),
		Adapters: m.wallet.Adapters(),
		Selected: m.wallet.Selected(),
	}
}

// Select connects the named adapter and closes the modal on success.
func (m *Modal) Select(ctx context.Context, name string) error {
	if err := m.wallet.Select(ctx, name); err != nil {
		return err
	}
	m.Close()
	return nil
}
