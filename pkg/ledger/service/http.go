package service

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/finpet/finpet-api/pkg/app/errors"
	apphttp "github.com/finpet/finpet-api/pkg/app/http"
	"github.com/finpet/finpet-api/pkg/auth"
	"github.com/finpet/finpet-api/pkg/ledger"
)

const maxBodySize = 1 << 20

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	loc     *time.Location
	logger  *zap.Logger
}

type listResponse struct {
	Transactions []*ledger.Transaction `json:"transactions"`
}

// RegisterRoutes registers HTTP endpoints for the ledger service on the given
// chi router. Plain dates in queries are read in loc.
func RegisterRoutes(r chi.Router, service Service, loc *time.Location, logger *zap.Logger) {
	if loc == nil {
		loc = time.UTC
	}
	h := &HTTP{
		service: service,
		loc:     loc,
		logger:  logger,
	}

	r.Post("/transactions", apphttp.HandleErrorWithLogger(logger, h.create))
	r.Get("/transactions", apphttp.HandleErrorWithLogger(logger, h.list))
}

func (h *HTTP) create(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequireUserID(r)
	if err != nil {
		return err
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req ledger.CreateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}

	res, err := h.service.CreateTransaction(r.Context(), userID, &req)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusCreated, res)
	return nil
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequireUserID(r)
	if err != nil {
		return err
	}

	filter, details := ledger.ParseListQuery(r.URL.Query(), h.loc)
	if details != nil {
		return apperrors.ValidationError(nil, details)
	}

	txs, err := h.service.ListTransactions(r.Context(), userID, filter)
	if err != nil {
		return err
	}
	if txs == nil {
		txs = []*ledger.Transaction{}
	}

	h.writeJSON(w, http.StatusOK, listResponse{Transactions: txs})
	return nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
