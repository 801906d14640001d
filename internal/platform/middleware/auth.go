package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"motorvault/pkg/requestcontext"

	dErrors "motorvault/pkg/domain-errors"
)

// TokenVerifier defines the interface for validating bearer tokens.
type TokenVerifier interface {
	Verify(tokenString string) (*TokenClaims, error)
}

// TokenClaims represents the identity we expect from the token verifier.
type TokenClaims struct {
	UserID string
	Email  string
}

// RequireAuth extracts and verifies the bearer token on every request. There
// is no server-side session: each request is independently re-authenticated
// and the resolved identity is the sole ownership key downstream.
func RequireAuth(verifier TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			const bearerPrefix = "Bearer "
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing bearer token",
					"request_id", requestcontext.RequestID(ctx),
				)
				writeAuthError(w, dErrors.New(dErrors.CodeUnauthenticated, "missing or malformed Authorization header"))
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"request_id", requestcontext.RequestID(ctx),
					"error", err,
				)
				writeAuthError(w, err)
				return
			}

			ctx = requestcontext.WithUserID(ctx, claims.UserID)
			ctx = requestcontext.WithEmail(ctx, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(dErrors.ToHTTPStatus(code))
	_, _ = w.Write([]byte(`{"error":"` + string(code) + `"}`))
}
