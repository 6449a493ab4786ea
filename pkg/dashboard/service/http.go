package service

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/finpet/finpet-api/pkg/app/http"
	"github.com/finpet/finpet-api/pkg/auth"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the dashboard endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/dashboard-data", apphttp.HandleErrorWithLogger(logger, h.dashboard))
	r.Get("/dashboard-data/full", apphttp.HandleErrorWithLogger(logger, h.fullDashboard))
	r.Get("/pet-room-data", apphttp.HandleErrorWithLogger(logger, h.petRoom))
}

func (h *HTTP) dashboard(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequireUserID(r)
	if err != nil {
		return err
	}

	payload, err := h.service.GetDashboard(r.Context(), userID)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, payload)
	return nil
}

func (h *HTTP) fullDashboard(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequireUserID(r)
	if err != nil {
		return err
	}

	payload, err := h.service.GetFullDashboard(r.Context(), userID)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, payload)
	return nil
}

func (h *HTTP) petRoom(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequireUserID(r)
	if err != nil {
		return err
	}

	room, err := h.service.GetPetRoom(r.Context(), userID)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, room)
	return nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
