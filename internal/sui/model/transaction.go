// Package model holds the wire and view types shared by the explorer and wallet services.
package model

import "encoding/json"

type (
	// ObjectID identifies an on-chain object.
	ObjectID string
	// AuthorityName identifies a validator that signed a certificate.
	AuthorityName string
	// ExecutionStatusType is the outcome reported in transaction effects.
	ExecutionStatusType string
)

const (
	StatusSuccess ExecutionStatusType = "success"
	StatusFailure ExecutionStatusType = "failure"
)

// ObjectRef pins an object at a given version.
type ObjectRef struct {
	ObjectID ObjectID `json:"objectId"`
	Version  uint64   `json:"version"`
	Digest   string   `json:"digest"`
}

// OwnedObjectRef is an effect record pointing at a created or mutated object.
type OwnedObjectRef struct {
	Owner     json.RawMessage `json:"owner,omitempty"`
	Reference *ObjectRef      `json:"reference"`
}

// ExecutionStatus carries the status and, on failure, the error text.
type ExecutionStatus struct {
	Status ExecutionStatusType `json:"status"`
	Error  *string             `json:"error,omitempty"`
}

// TransactionEffects records the state changes produced by a transaction.
type TransactionEffects struct {
	Status            *ExecutionStatus  `json:"status"`
	GasUsed           *GasCostSummary   `json:"gasUsed"`
	TransactionDigest string            `json:"transactionDigest"`
	SharedObjects     []ObjectRef       `json:"sharedObjects,omitempty"`
	Created           []OwnedObjectRef  `json:"created,omitempty"`
	Mutated           []OwnedObjectRef  `json:"mutated,omitempty"`
	Unwrapped         []OwnedObjectRef  `json:"unwrapped,omitempty"`
	Deleted           []ObjectRef       `json:"deleted,omitempty"`
	Wrapped           []ObjectRef       `json:"wrapped,omitempty"`
	GasObject         *OwnedObjectRef   `json:"gasObject,omitempty"`
	Events            []json.RawMessage `json:"events,omitempty"`
	Dependencies      []string          `json:"dependencies,omitempty"`
}

// TransactionData is the signed payload of a certificate.
type TransactionData struct {
	Transactions []json.RawMessage `json:"transactions"`
	Sender       string            `json:"sender"`
	GasPayment   ObjectRef         `json:"gasPayment"`
	GasBudget    uint64            `json:"gasBudget"`
}

// AuthSignInfo is the aggregated authority signature of a certificate.
type AuthSignInfo struct {
	Epoch     uint64          `json:"epoch"`
	Signature json.RawMessage `json:"signature"`
}

// CertifiedTransaction is a transaction accompanied by authority signatures.
type CertifiedTransaction struct {
	TransactionDigest string           `json:"transactionDigest"`
	Data              *TransactionData `json:"data"`
	TxSignature       string           `json:"txSignature"`
	AuthSignInfo      *AuthSignInfo    `json:"authSignInfo"`
}

// TransactionResponse is the node's answer for a single executed transaction.
type TransactionResponse struct {
	Certificate *CertifiedTransaction `json:"certificate"`
	Effects     *TransactionEffects   `json:"effects"`
	TimestampMs *uint64               `json:"timestamp_ms"`
	ParsedData  json.RawMessage       `json:"parsed_data,omitempty"`
}

// TransactionWithAuthSigners is the response of sui_getTransactionAuthSigners.
type TransactionWithAuthSigners struct {
	TxResponse *TransactionResponse `json:"tx_response"`
	Signers    []AuthorityName      `json:"signers"`
}
