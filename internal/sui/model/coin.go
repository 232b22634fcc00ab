package model

// SUITypeArg is the coin type of the native token.
const SUITypeArg = "0x2::sui::SUI"

// Coin is a single coin object owned by an address.
type Coin struct {
	CoinType     string   `json:"coinType"`
	CoinObjectID ObjectID `json:"coinObjectId"`
	Version      uint64   `json:"version"`
	Digest       string   `json:"digest"`
	Balance      uint64   `json:"balance"`
}

// CoinPage is one page of sui_getCoins.
type CoinPage struct {
	Data       []Coin    `json:"data"`
	NextCursor *ObjectID `json:"nextCursor"`
}

// TransactionBytes is the unsigned transaction returned by the builder endpoints.
type TransactionBytes struct {
	TxBytes      string    `json:"txBytes"`
	Gas          ObjectRef `json:"gas"`
	InputObjects []any     `json:"inputObjects,omitempty"`
}

// TransferObject describes a transferObject transaction to build.
type TransferObject struct {
	ObjectID  ObjectID
	Gas       *ObjectID
	GasBudget uint64
	Recipient string
}
