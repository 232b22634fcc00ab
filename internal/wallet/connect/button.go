package connect

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// DefaultConnectText is shown while no account is known.
const DefaultConnectText = "Connect Wallet"

// ButtonColor is the visual variant of the button.
type ButtonColor string

const (
	ColorPrimary   ButtonColor = "primary"
	ColorConnected ButtonColor = "connected"
)

// ButtonState is what the connect button renders.
type ButtonState struct {
	Label     string      `json:"label"`
	Color     ButtonColor `json:"color"`
	Size      string      `json:"size"`
	Account   *string     `json:"account"`
	ModalOpen bool        `json:"modalOpen"`
}

// Button shows the connect text or the truncated first account.
type Button struct {
	wallet      *Wallet
	modal       *Modal
	connectText string
	logger      *zap.Logger

	mu      sync.Mutex
	gen     uint64
	account *string
}

// NewButton returns a button bound to wallet and modal. An empty connectText
// falls back to DefaultConnectText.
func NewButton(wallet *Wallet, modal *Modal, connectText string, logger *zap.Logger) *Button {
	if connectText == "" {
		connectText = DefaultConnectText
	}
	return &Button{
		wallet:      wallet,
		modal:       modal,
		connectText: connectText,
		logger:      logger.Named("connect_button"),
	}
}

// State returns the current rendering of the button.
func (b *Button) State() ButtonState {
	b.mu.Lock()
	account := b.account
	b.mu.Unlock()

	state := ButtonState{Size: "lg", ModalOpen: b.modal.IsOpen()}
	if account == nil {
		state.Label = b.connectText
		state.Color = ColorPrimary
		return state
	}
	a := *account
	state.Label = Truncate(a)
	state.Color = ColorConnected
	state.Account = &a
	return state
}

// Click disconnects when an account is shown, otherwise opens the modal.
func (b *Button) Click(ctx context.Context) (ButtonState, error) {
	b.mu.Lock()
	hasAccount := b.account != nil
	b.mu.Unlock()

	if !hasAccount {
		b.modal.Open()
		return b.State(), nil
	}
	if err := b.wallet.Disconnect(ctx); err != nil {
		return b.State(), err
	}
	b.Refresh(ctx)
	return b.State(), nil
}

// Refresh follows the wallet connection state. A disconnected wallet clears
// the account; a connected one fetches its accounts. Fetch failures are only logged.
func (b *Button) Refresh(ctx context.Context) {
	b.mu.Lock()
	b.gen++
	gen := b.gen
	if !b.wallet.Connected(ctx) {
		b.account = nil
		b.mu.Unlock()
		return
	}
	b.mu.Unlock()

	accounts, err := b.wallet.Accounts(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.gen {
		return
	}
	if err != nil {
		b.logger.Warn("error getting accounts", zap.Error(err))
		return
	}
	if len(accounts) == 0 || accounts[0] == "" {
		b.account = nil
		return
	}
	account := accounts[0]
	b.account = &account
}

// Truncate keeps the first and last four characters of an address.
func Truncate(account string) string {
	head := account
	if len(head) > 4 {
		head = head[:4]
	}
	tail := account
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return head + "..." + tail
}
