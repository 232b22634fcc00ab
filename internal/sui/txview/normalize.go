package txview

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/model"
)

// ErrMalformedResponse marks a raw response that lacks fields the view depends on.
var ErrMalformedResponse = errors.New("malformed transaction response")

// ShapeError names the first missing or invalid field of a raw response.
type ShapeError struct {
	Path string
	Err  error
}

func (e *ShapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrMalformedResponse, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s is missing", ErrMalformedResponse, e.Path)
}

func (e *ShapeError) Unwrap() error {
	return ErrMalformedResponse
}

// Normalize builds the loaded view of raw for id.
func Normalize(raw *model.TransactionWithAuthSigners, id string) (TransactionView, error) {
	if err := validate(raw); err != nil {
		return TransactionView{}, err
	}
	resp := raw.TxResponse
	cert := resp.Certificate
	effects := resp.Effects

	gasFee, err := effects.GasUsed.TotalGasUsed()
	if err != nil {
		return TransactionView{}, &ShapeError{Path: "tx_response.effects.gasUsed", Err: err}
	}
	txError := ""
	if effects.Status.Error != nil {
		txError = *effects.Status.Error
	}
	signers := raw.Signers
	if signers == nil {
		signers = []model.AuthorityName{}
	}

	return TransactionView{
		TransactionDigest: cert.TransactionDigest,
		Data:              *cert.Data,
		TxSignature:       cert.TxSignature,
		AuthSignInfo:      *cert.AuthSignInfo,
		Transaction:       resp,
		Signers:           signers,
		LoadState:         StateLoaded,
		TxID:              id,
		Status:            effects.Status.Status,
		GasFee:            gasFee,
		TxError:           txError,
		Mutated:           references(effects.Mutated),
		Created:           references(effects.Created),
		Events:            effects.Events,
		TimestampMs:       resp.TimestampMs,
	}, nil
}

// references projects effect records onto the objects they point at, in order.
// A nil container yields an empty, non-nil slice.
func references(records []model.OwnedObjectRef) []model.ObjectRef {
	refs := make([]model.ObjectRef, 0, len(records))
	for _, r := range records {
		refs = append(refs, *r.Reference)
	}
	return refs
}

func validate(raw *model.TransactionWithAuthSigners) error {
	switch {
	case raw == nil:
		return &ShapeError{Path: "response"}
	case raw.TxResponse == nil:
		return &ShapeError{Path: "tx_response"}
	case raw.TxResponse.Certificate == nil:
		return &ShapeError{Path: "tx_response.certificate"}
	case raw.TxResponse.Certificate.Data == nil:
		return &ShapeError{Path: "tx_response.certificate.data"}
	case raw.TxResponse.Certificate.AuthSignInfo == nil:
		return &ShapeError{Path: "tx_response.certificate.authSignInfo"}
	case raw.TxResponse.Effects == nil:
		return &ShapeError{Path: "tx_response.effects"}
	case raw.TxResponse.Effects.Status == nil:
		return &ShapeError{Path: "tx_response.effects.status"}
	case raw.TxResponse.Effects.GasUsed == nil:
		return &ShapeError{Path: "tx_response.effects.gasUsed"}
	}

	effects := raw.TxResponse.Effects
	switch effects.Status.Status {
	case model.StatusSuccess, model.StatusFailure:
	default:
		return &ShapeError{
			Path: "tx_response.effects.status.status",
			Err:  fmt.Errorf("unknown status %q", effects.Status.Status),
		}
	}
	for i, r := range effects.Mutated {
		if r.Reference == nil {
			return &ShapeError{Path: fmt.Sprintf("tx_response.effects.mutated[%d].reference", i)}
		}
	}
	for i, r := range effects.Created {
		if r.Reference == nil {
			return &ShapeError{Path: fmt.Sprintf("tx_response.effects.created[%d].reference", i)}
		}
	}
	return nil
}
