package service

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/finpet/finpet-api/pkg/app/errors"
	apphttp "github.com/finpet/finpet-api/pkg/app/http"
	"github.com/finpet/finpet-api/pkg/auth"
	"github.com/finpet/finpet-api/pkg/friend"
)

const maxBodySize = 64 << 10

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the friend endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/friends", apphttp.HandleErrorWithLogger(logger, h.list))
	r.Post("/friends", apphttp.HandleErrorWithLogger(logger, h.invite))
	r.Post("/friends/{id}/accept", apphttp.HandleErrorWithLogger(logger, h.accept))
	r.Get("/friends/{userID}/room", apphttp.HandleErrorWithLogger(logger, h.visit))
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequireUserID(r)
	if err != nil {
		return err
	}

	o, err := h.service.List(r.Context(), userID)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, o)
	return nil
}

func (h *HTTP) invite(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequireUserID(r)
	if err != nil {
		return err
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req friend.InviteRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}

	p, err := h.service.Invite(r.Context(), userID, &req)
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if p.Status == friend.Accepted {
		status = http.StatusOK
	}
	apphttp.WriteJSON(w, status, p)
	return nil
}

func (h *HTTP) accept(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequireUserID(r)
	if err != nil {
		return err
	}

	p, err := h.service.Accept(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, p)
	return nil
}

func (h *HTTP) visit(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequireUserID(r)
	if err != nil {
		return err
	}

	v, err := h.service.Visit(r.Context(), userID, chi.URLParam(r, "userID"))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, v)
	return nil
}
