package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/fixture"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/module"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/rpc"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/txview"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/wallet/connect"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/wallet/signer"
)

type errorResponse struct {
	Error  string         `json:"error"`
	Issues map[int]string `json:"issues,omitempty"`
}

func (h *Handler) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	body := errorResponse{Error: err.Error()}
	var vErr *module.ValidationError
	if errors.As(err, &vErr) {
		body.Issues = vErr.Issues
	}
	h.respond(w, status, body)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, txview.ErrMalformedResponse),
		errors.Is(err, module.ErrInvalidReference):
		return http.StatusBadRequest
	case errors.Is(err, module.ErrInvalidParams):
		return http.StatusUnprocessableEntity
	case errors.Is(err, connect.ErrUnknownAdapter),
		errors.Is(err, fixture.ErrNotFound),
		errors.Is(err, rpc.ErrEmptyResult):
		return http.StatusNotFound
	case errors.Is(err, connect.ErrNotConnected),
		errors.Is(err, signer.ErrNoAccount):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
