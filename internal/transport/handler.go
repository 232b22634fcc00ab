// Package transport exposes the explorer and wallet view models over HTTP.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/model"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/module"
	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/txview"
)

const maxBodyBytes = 4 << 20

var errBadRequest = errors.New("bad request")

// Config wires the handler collaborators.
type Config struct {
	Loader     TransactionLoader
	Functions  FunctionFetcher
	Gas        GasEstimator
	Button     WalletButton
	Modal      WalletModal
	Connection ConnectionState
}

// Handler serves the HTTP API.
type Handler struct {
	loader     TransactionLoader
	functions  FunctionFetcher
	gas        GasEstimator
	button     WalletButton
	modal      WalletModal
	connection ConnectionState
	logger     *zap.Logger
}

// NewHandler validates cfg and returns a Handler.
func NewHandler(cfg Config, logger *zap.Logger) (*Handler, error) {
	switch {
	case cfg.Loader == nil:
		return nil, errors.New("transaction loader is required")
	case cfg.Functions == nil:
		return nil, errors.New("function fetcher is required")
	case cfg.Gas == nil:
		return nil, errors.New("gas estimator is required")
	case cfg.Button == nil || cfg.Modal == nil:
		return nil, errors.New("wallet button and modal are required")
	}
	return &Handler{
		loader:     cfg.Loader,
		functions:  cfg.Functions,
		gas:        cfg.Gas,
		button:     cfg.Button,
		modal:      cfg.Modal,
		connection: cfg.Connection,
		logger:     logger.Named("http"),
	}, nil
}

// Router returns the chi router with every route mounted.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.accessLog)

	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", h.ListTransactions)
		r.Get("/{id}", h.GetTransaction)
		r.Post("/{id}", h.PreloadedTransaction)
	})
	r.Route("/packages/{pkg}/modules/{module}/functions/{fn}", func(r chi.Router) {
		r.Get("/", h.GetFunction)
		r.Post("/execute", h.ExecuteFunction)
	})
	r.Get("/gas-estimation/nft-transfer/{objectId}", h.EstimateNFTTransfer)
	r.Route("/wallet", func(r chi.Router) {
		r.Get("/", h.GetButton)
		r.Post("/click", h.ClickButton)
		r.Get("/modal", h.GetModal)
		r.Post("/modal/close", h.CloseModal)
		r.Post("/modal/select", h.SelectAdapter)
	})
	return r
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(started)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// Health reports server health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.respond(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// TransactionPage is the payload of a transaction result page.
type TransactionPage struct {
	Transaction  txview.TransactionView `json:"transaction"`
	ErrorMessage string                 `json:"errorMessage,omitempty"`
}

func page(view txview.TransactionView) TransactionPage {
	p := TransactionPage{Transaction: view}
	if view.LoadState == txview.StateFail {
		p.ErrorMessage = txview.ErrorMessage(view.TxID)
	}
	return p
}

// GetTransaction loads a transaction by id.
func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	view, err := h.loader.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, page(view))
}

// PreloadedTransaction normalizes a response the client already holds.
func (h *Handler) PreloadedTransaction(w http.ResponseWriter, r *http.Request) {
	var raw model.TransactionWithAuthSigners
	if err := decode(w, r, &raw); err != nil {
		h.fail(w, r, err)
		return
	}
	view, err := h.loader.Preloaded(&raw, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, page(view))
}

// ListTransactions loads the comma separated ids of the ids query parameter.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ids := splitIDs(r.URL.Query().Get("ids"))
	if len(ids) == 0 {
		h.fail(w, r, fmt.Errorf("%w: ids query parameter is required", errBadRequest))
		return
	}
	views, err := h.loader.LoadMany(r.Context(), ids)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	pages := make([]TransactionPage, 0, len(views))
	for _, v := range views {
		pages = append(pages, page(v))
	}
	h.respond(w, http.StatusOK, pages)
}

// FunctionPage is the payload of a Move function form.
type FunctionPage struct {
	Function        module.Function `json:"function"`
	Fields          []module.Field  `json:"fields"`
	Connected       bool            `json:"connected"`
	ExecuteDisabled bool            `json:"executeDisabled"`
}

// ExecuteRequest carries the form values.
type ExecuteRequest struct {
	Params []string `json:"params"`
}

func (h *Handler) form(r *http.Request) (*module.Form, error) {
	fn, err := module.Resolve(r.Context(), h.functions,
		model.ObjectID(chi.URLParam(r, "pkg")), chi.URLParam(r, "module"), chi.URLParam(r, "fn"))
	if err != nil {
		return nil, err
	}
	return module.NewForm(fn, h.connection, h.logger), nil
}

// GetFunction returns the invocation form of a Move function. Repeated
// param query values are validated to compute the execute state.
func (h *Handler) GetFunction(w http.ResponseWriter, r *http.Request) {
	form, err := h.form(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ctx := r.Context()
	h.respond(w, http.StatusOK, FunctionPage{
		Function:        form.Function(),
		Fields:          form.Fields(),
		Connected:       form.Connected(ctx),
		ExecuteDisabled: form.ExecuteDisabled(ctx, module.FormState{}, r.URL.Query()["param"]),
	})
}

// ExecuteFunction submits the form values.
func (h *Handler) ExecuteFunction(w http.ResponseWriter, r *http.Request) {
	var req ExecuteRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	form, err := h.form(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	sub, err := form.Submit(r.Context(), req.Params)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, sub)
}

// EstimateNFTTransfer estimates the gas of transferring an object.
// With peek=true the call never blocks on the node.
func (h *Handler) EstimateNFTTransfer(w http.ResponseWriter, r *http.Request) {
	objectID := model.ObjectID(chi.URLParam(r, "objectId"))
	estimate := h.gas.Estimate
	if r.URL.Query().Get("peek") == "true" {
		estimate = h.gas.Peek
	}
	res, err := estimate(r.Context(), objectID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, res)
}

// GetButton returns the connect button after following the wallet state.
func (h *Handler) GetButton(w http.ResponseWriter, r *http.Request) {
	h.button.Refresh(r.Context())
	h.respond(w, http.StatusOK, h.button.State())
}

// ClickButton clicks the connect button.
func (h *Handler) ClickButton(w http.ResponseWriter, r *http.Request) {
	state, err := h.button.Click(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, state)
}

// GetModal returns the connect modal.
func (h *Handler) GetModal(w http.ResponseWriter, _ *http.Request) {
	h.respond(w, http.StatusOK, h.modal.State())
}

// CloseModal closes the connect modal.
func (h *Handler) CloseModal(w http.ResponseWriter, _ *http.Request) {
	h.modal.Close()
	h.respond(w, http.StatusOK, h.modal.State())
}

// SelectRequest names the adapter to connect.
type SelectRequest struct {
	Name string `json:"name"`
}

// SelectAdapter connects the chosen adapter and refreshes the button.
func (h *Handler) SelectAdapter(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.modal.Select(r.Context(), req.Name); err != nil {
		h.fail(w, r, err)
		return
	}
	h.button.Refresh(r.Context())
	h.respond(w, http.StatusOK, h.modal.State())
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: decode body: %v", errBadRequest, err)
	}
	return nil
}

func splitIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
