package connect

import "context"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Adapter is a wallet that can be selected in the connect modal.
type Adapter interface {
	Name() string
	Connect(ctx context.Context) error
	Connected() bool
	Accounts(ctx context.Context) ([]string, error)
	Disconnect(ctx context.Context) error
}
