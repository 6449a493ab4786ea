package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newProtectedHandler(t *testing.T) http.Handler {
	t.Helper()
	v := NewJWTValidator(testSecret, "", "")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := RequireUserID(r)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(userID))
	})
	return Middleware(v, zap.NewNop())(next)
}

func TestMiddleware_ValidBearerToken(t *testing.T) {
	handler := newProtectedHandler(t)
	token := signHS256(t, testSecret, jwt.MapClaims{"sub": "user-123"})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard-data", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-123", rec.Body.String())
}

func TestMiddleware_SessionCookie(t *testing.T) {
	handler := newProtectedHandler(t)
	token := signHS256(t, testSecret, jwt.MapClaims{"sub": "user-cookie"})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard-data", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-cookie", rec.Body.String())
}

func TestMiddleware_Unauthorized(t *testing.T) {
	handler := newProtectedHandler(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "invalid token", header: "Bearer invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/dashboard-data", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"unauthorized","code":401}`, rec.Body.String())
		})
	}
}
