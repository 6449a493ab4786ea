package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/finpet/finpet-api/pkg/app/errors"
	"github.com/finpet/finpet-api/pkg/auth"
	"github.com/finpet/finpet-api/pkg/dashboard"
	"github.com/finpet/finpet-api/pkg/dashboard/service/mocks"
	"github.com/finpet/finpet-api/pkg/pet"
)

func newDashboardTestServer(svc Service, userID string) http.Handler {
	r := chi.NewRouter()
	if userID != "" {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
			})
		})
	}
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func TestDashboardHTTP_Unauthenticated(t *testing.T) {
	handler := newDashboardTestServer(mocks.NewService(t), "")

	for _, path := range []string{"/dashboard-data", "/dashboard-data/full", "/pet-room-data"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected status %d, got %d", path, http.StatusUnauthorized, rec.Code)
		}
	}
}

func TestDashboardHTTP_Dashboard(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetDashboard(mock.Anything, "user-1").Return(&dashboard.Payload{
		UserBalance: decimal.NewFromInt(1000),
		Pet:         &pet.Pet{ID: "pet-1", Points: 50, Mood: 70, Fullness: 70},
	}, nil).Once()
	handler := newDashboardTestServer(svc, "user-1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard-data", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var got map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	for _, key := range []string{
		"userBalance", "pet", "stickers", "stickerInventory", "foodInventory",
		"accessories", "accessoryInventory", "hasUnclaimedMissions",
	} {
		if _, ok := got[key]; !ok {
			t.Fatalf("response is missing %q", key)
		}
	}

	var p struct {
		Points int `json:"points"`
	}
	if err := json.Unmarshal(got["pet"], &p); err != nil {
		t.Fatalf("failed to decode pet: %v", err)
	}
	if p.Points != 50 {
		t.Fatalf("expected points 50, got %d", p.Points)
	}
}

func TestDashboardHTTP_UserNotFound(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetDashboard(mock.Anything, "user-1").
		Return(nil, apperrors.ResourceNotFoundError(nil, "user not found")).Once()
	handler := newDashboardTestServer(svc, "user-1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard-data", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestDashboardHTTP_PetRoomFlags(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetPetRoom(mock.Anything, "user-1").Return(&dashboard.Room{
		Pet: dashboard.NewRoomPet(&pet.Pet{ID: "pet-1", Mood: 10, Fullness: 10}),
	}, nil).Once()
	handler := newDashboardTestServer(svc, "user-1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pet-room-data", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var got struct {
		Pet struct {
			IsUnhappy bool `json:"isUnhappy"`
			IsHungry  bool `json:"isHungry"`
		} `json:"pet"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if !got.Pet.IsUnhappy || !got.Pet.IsHungry {
		t.Fatalf("expected both flags set, got %+v", got.Pet)
	}
}

func TestDashboardHTTP_Full(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetFullDashboard(mock.Anything, "user-1").Return(&dashboard.FullPayload{
		Payload: dashboard.Payload{Pet: &pet.Pet{ID: "pet-1"}},
	}, nil).Once()
	handler := newDashboardTestServer(svc, "user-1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard-data/full", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var got map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	for _, key := range []string{"monthlyIncome", "monthlyExpense", "recentTransactions", "pet"} {
		if _, ok := got[key]; !ok {
			t.Fatalf("response is missing %q", key)
		}
	}
}
