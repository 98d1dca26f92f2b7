package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthConfig holds the credentials the admin surface accepts. An empty
// JWTSecret disables the Bearer scheme, an empty APIKeyHash disables the
// ApiKey scheme. With both empty every admin request is rejected.
type AdminAuthConfig struct {
	JWTSecret  string
	APIKeyHash string
}

// AdminAuthMiddleware authenticates the admin route group. Two schemes are
// accepted on the Authorization header:
//
//	Bearer <jwt>   HS256 token with a "role" claim of "admin"; exp honored
//	ApiKey <key>   bcrypt-compared against the configured hash
//
// Failures answer 401 with a generic body; the reason only goes to the log.
func AdminAuthMiddleware(cfg AdminAuthConfig, logger *slog.Logger) func(next http.Handler) http.Handler {
	log := logger.With("component", "admin_auth")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.WarnContext(r.Context(), "Authorization header missing")
				unauthorized(w)
				return
			}

			scheme, credential, found := strings.Cut(authHeader, " ")
			if !found || credential == "" {
				log.WarnContext(r.Context(), "Invalid Authorization header format")
				unauthorized(w)
				return
			}

			switch scheme {
			case "Bearer":
				if cfg.JWTSecret == "" {
					log.WarnContext(r.Context(), "Bearer scheme not configured")
					unauthorized(w)
					return
				}
				if err := validateAdminToken(credential, cfg.JWTSecret); err != nil {
					log.WarnContext(r.Context(), "Admin token rejected", "error", err)
					unauthorized(w)
					return
				}
			case "ApiKey":
				if cfg.APIKeyHash == "" {
					log.WarnContext(r.Context(), "ApiKey scheme not configured")
					unauthorized(w)
					return
				}
				if err := bcrypt.CompareHashAndPassword([]byte(cfg.APIKeyHash), []byte(credential)); err != nil {
					log.WarnContext(r.Context(), "Admin API key rejected")
					unauthorized(w)
					return
				}
			default:
				log.WarnContext(r.Context(), "Unsupported Authorization scheme", "scheme", scheme)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func validateAdminToken(tokenString, secret string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return jwt.ErrTokenInvalidClaims
	}
	return nil
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Invalid or missing admin credentials"})
}
