package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-admin-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runAuthRequest(t *testing.T, cfg AdminAuthConfig, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := AdminAuthMiddleware(cfg, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/overrides", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAdminAuthMiddleware_Bearer(t *testing.T) {
	cfg := AdminAuthConfig{JWTSecret: testJWTSecret}

	testCases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name: "ValidAdminToken",
			authHeader: "Bearer " + signToken(t, testJWTSecret, jwt.MapClaims{
				"role": "admin",
				"exp":  time.Now().Add(time.Hour).Unix(),
			}),
			wantStatus: http.StatusOK,
		},
		{
			name: "ExpiredToken",
			authHeader: "Bearer " + signToken(t, testJWTSecret, jwt.MapClaims{
				"role": "admin",
				"exp":  time.Now().Add(-time.Hour).Unix(),
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "WrongRole",
			authHeader: "Bearer " + signToken(t, testJWTSecret, jwt.MapClaims{
				"role": "viewer",
				"exp":  time.Now().Add(time.Hour).Unix(),
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "WrongSecret",
			authHeader: "Bearer " + signToken(t, "other-secret", jwt.MapClaims{
				"role": "admin",
				"exp":  time.Now().Add(time.Hour).Unix(),
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "GarbageToken",
			authHeader: "Bearer not-a-jwt",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "MissingHeader",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "UnsupportedScheme",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := runAuthRequest(t, cfg, tc.authHeader)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestAdminAuthMiddleware_BearerDisabledWithoutSecret(t *testing.T) {
	token := signToken(t, testJWTSecret, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	rec := runAuthRequest(t, AdminAuthConfig{}, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuthMiddleware_ApiKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-key"), bcrypt.MinCost)
	require.NoError(t, err)
	cfg := AdminAuthConfig{APIKeyHash: string(hash)}

	t.Run("ValidKey", func(t *testing.T) {
		rec := runAuthRequest(t, cfg, "ApiKey correct-key")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("WrongKey", func(t *testing.T) {
		rec := runAuthRequest(t, cfg, "ApiKey wrong-key")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("DisabledWithoutHash", func(t *testing.T) {
		rec := runAuthRequest(t, AdminAuthConfig{JWTSecret: testJWTSecret}, "ApiKey correct-key")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
