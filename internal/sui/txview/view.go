// Package txview turns raw transaction responses into the flat view model rendered by the explorer.
package txview

import (
	"encoding/json"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/model"
)

// LoadState is the lifecycle of a transaction view.
type LoadState string

const (
	StatePending LoadState = "pending"
	StateLoaded  LoadState = "loaded"
	StateFail    LoadState = "fail"
)

// Settled reports whether s is terminal.
func (s LoadState) Settled() bool {
	return s == StateLoaded || s == StateFail
}

// TransactionView is the explorer's projection of a certified transaction and its effects.
type TransactionView struct {
	TransactionDigest string                     `json:"transactionDigest"`
	Data              model.TransactionData      `json:"data"`
	TxSignature       string                     `json:"txSignature"`
	AuthSignInfo      model.AuthSignInfo         `json:"authSignInfo"`
	Transaction       *model.TransactionResponse `json:"transaction"`
	Signers           []model.AuthorityName      `json:"signers"`
	LoadState         LoadState                  `json:"loadState"`
	TxID              string                     `json:"txId"`
	Status            model.ExecutionStatusType  `json:"status"`
	GasFee            int64                      `json:"gasFee"`
	TxError           string                     `json:"txError"`
	Mutated           []model.ObjectRef          `json:"mutated"`
	Created           []model.ObjectRef          `json:"created"`
	Events            []json.RawMessage          `json:"events,omitempty"`
	TimestampMs       *uint64                    `json:"timestamp_ms"`
}

// Pending returns the initial view shown while id is being fetched.
func Pending(id string) TransactionView {
	v := empty()
	v.TxID = id
	return v
}

// Failed returns the terminal view for id when it could not be loaded.
func Failed(id string) TransactionView {
	v := empty()
	v.TxID = id
	v.LoadState = StateFail
	return v
}

func empty() TransactionView {
	zero := uint64(0)
	return TransactionView{
		Data: model.TransactionData{
			Transactions: []json.RawMessage{},
		},
		AuthSignInfo: model.AuthSignInfo{Signature: json.RawMessage("[]")},
		Signers:      []model.AuthorityName{},
		LoadState:    StatePending,
		Status:       model.StatusSuccess,
		Mutated:      []model.ObjectRef{},
		Created:      []model.ObjectRef{},
		Events:       []json.RawMessage{},
		TimestampMs:  &zero,
	}
}

// ErrorMessage is the text shown for a view that failed to load.
func ErrorMessage(id string) string {
	if id == "" {
		return "Can't search for a transaction without a digest"
	}
	return "Data could not be extracted for the following specified transaction ID"
}
