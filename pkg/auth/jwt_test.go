package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func signHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthenticate_HMAC(t *testing.T) {
	v := NewJWTValidator(testSecret, "", "")
	token := signHS256(t, testSecret, jwt.MapClaims{
		"sub":   "user-123",
		"email": "pet@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "pet@example.com", claims.Email)
}

func TestAuthenticate_FallsBackToIDClaim(t *testing.T) {
	v := NewJWTValidator(testSecret, "", "")
	token := signHS256(t, testSecret, jwt.MapClaims{"id": "user-456"})

	claims, err := v.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-456", claims.UserID)
}

func TestAuthenticate_Rejects(t *testing.T) {
	v := NewJWTValidator(testSecret, "", "issuer-a")

	tests := []struct {
		name  string
		token string
	}{
		{name: "wrong secret", token: signHS256(t, "other", jwt.MapClaims{"sub": "u", "iss": "issuer-a"})},
		{name: "expired", token: signHS256(t, testSecret, jwt.MapClaims{"sub": "u", "iss": "issuer-a", "exp": time.Now().Add(-time.Hour).Unix()})},
		{name: "wrong issuer", token: signHS256(t, testSecret, jwt.MapClaims{"sub": "u", "iss": "issuer-b"})},
		{name: "no subject", token: signHS256(t, testSecret, jwt.MapClaims{"iss": "issuer-a"})},
		{name: "garbage", token: "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Authenticate(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestAuthenticate_JWKS(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(JWKS{Keys: []JWK{{
			Kid: "key-1",
			Kty: "RSA",
			Alg: "RS256",
			N:   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
		}}})
	}))
	defer srv.Close()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{"sub": "user-rsa"})
	token.Header["kid"] = "key-1"
	signed, err := token.SignedString(key)
	require.NoError(t, err)

	v := NewJWTValidator("", srv.URL, "")
	require.True(t, v.IsConfigured())

	claims, err := v.Authenticate(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-rsa", claims.UserID)

	// HS256 tokens must not be accepted in JWKS mode.
	_, err = v.Authenticate(signHS256(t, testSecret, jwt.MapClaims{"sub": "u"}))
	assert.Error(t, err)
}
