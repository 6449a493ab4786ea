package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/finpet/finpet-api/pkg/app/errors"
	apphttp "github.com/finpet/finpet-api/pkg/app/http"
)

const sessionCookie = "session-token"

// Authenticator resolves the caller identity from a raw token.
type Authenticator interface {
	Authenticate(tokenString string) (*Claims, error)
}

// Middleware rejects requests without a valid session token with 401 and
// stores the caller identity in the request context otherwise.
// The token is read from the Authorization bearer header or the session cookie.
func Middleware(authenticator Authenticator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "unauthorized"))
				return
			}

			claims, err := authenticator.Authenticate(token)
			if err != nil {
				logger.Debug("Rejected session token", zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "unauthorized"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireUserID returns the authenticated user id or an Unauthorized error.
func RequireUserID(r *http.Request) (string, error) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		return "", apperrors.UnAuthorizedError(nil, "unauthorized")
	}
	return userID, nil
}

func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if c, err := r.Cookie(sessionCookie); err == nil {
		return c.Value
	}
	return ""
}
