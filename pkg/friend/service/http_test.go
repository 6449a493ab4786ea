package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/finpet/finpet-api/pkg/app/errors"
	"github.com/finpet/finpet-api/pkg/auth"
	"github.com/finpet/finpet-api/pkg/dashboard"
	"github.com/finpet/finpet-api/pkg/friend"
	"github.com/finpet/finpet-api/pkg/friend/service/mocks"
)

func newFriendTestServer(svc Service, userID string) http.Handler {
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

func TestFriendHTTP_Unauthenticated(t *testing.T) {
	handler := newFriendTestServer(mocks.NewService(t), "")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/friends", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestFriendHTTP_Invite(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Invite(mock.Anything, "user-1", &friend.InviteRequest{Handle: "bob"}).
		Return(&friend.Profile{FriendshipID: "f-1", UserID: "user-2", Handle: "bob", Status: friend.Pending}, nil).Once()
	handler := newFriendTestServer(svc, "user-1")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/friends", strings.NewReader(`{"userID":"bob"}`))
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rec.Code)
	}

	var got friend.Profile
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.FriendshipID != "f-1" {
		t.Fatalf("expected friendship f-1, got %q", got.FriendshipID)
	}
}

func TestFriendHTTP_InviteAutoAccepted(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Invite(mock.Anything, "user-1", mock.Anything).
		Return(&friend.Profile{FriendshipID: "f-1", Status: friend.Accepted}, nil).Once()
	handler := newFriendTestServer(svc, "user-1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/friends", strings.NewReader(`{"userID":"bob"}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestFriendHTTP_InviteInvalidJSON(t *testing.T) {
	handler := newFriendTestServer(mocks.NewService(t), "user-1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/friends", strings.NewReader(`{`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestFriendHTTP_Accept(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Accept(mock.Anything, "user-1", "f-1").
		Return(&friend.Profile{FriendshipID: "f-1", Status: friend.Accepted}, nil).Once()
	handler := newFriendTestServer(svc, "user-1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/friends/f-1/accept", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestFriendHTTP_VisitForbidden(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Visit(mock.Anything, "user-1", "user-9").
		Return(nil, apperrors.ForbiddenError(nil, "not friends")).Once()
	handler := newFriendTestServer(svc, "user-1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/friends/user-9/room", nil))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
}

func TestFriendHTTP_List(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().List(mock.Anything, "user-1").Return(&friend.Overview{
		Friends:  []friend.Profile{{UserID: "user-2", Status: friend.Accepted}},
		Incoming: []friend.Profile{},
		Outgoing: []friend.Profile{},
	}, nil).Once()
	handler := newFriendTestServer(svc, "user-1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/friends", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var got friend.Overview
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if len(got.Friends) != 1 || got.Friends[0].UserID != "user-2" {
		t.Fatalf("unexpected friends %+v", got.Friends)
	}
}

func TestFriendHTTP_Visit(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Visit(mock.Anything, "user-1", "user-2").Return(&friend.Visit{
		Friend: friend.Profile{UserID: "user-2"},
		Room:   &dashboard.VisitRoom{},
	}, nil).Once()
	handler := newFriendTestServer(svc, "user-1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/friends/user-2/room", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}
