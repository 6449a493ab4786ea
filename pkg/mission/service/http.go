package service

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/finpet/finpet-api/pkg/app/errors"
	apphttp "github.com/finpet/finpet-api/pkg/app/http"
	"github.com/finpet/finpet-api/pkg/auth"
	"github.com/finpet/finpet-api/pkg/mission"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

type listResponse struct {
	Missions []mission.Status `json:"missions"`
}

// RegisterRoutes registers HTTP endpoints for the mission service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/missions", apphttp.HandleErrorWithLogger(logger, h.list))
	r.Post("/missions/{id}/claim", apphttp.HandleErrorWithLogger(logger, h.claim))
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequireUserID(r)
	if err != nil {
		return err
	}

	statuses, err := h.service.ListMissions(r.Context(), userID)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, listResponse{Missions: statuses})
	return nil
}

func (h *HTTP) claim(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequireUserID(r)
	if err != nil {
		return err
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		return apperrors.BadRequestError(nil, "mission id required")
	}

	res, err := h.service.Claim(r.Context(), userID, id)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, res)
	return nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
