package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "motorvault/pkg/domain-errors"
	"motorvault/pkg/requestcontext"
)

type stubVerifier struct {
	claims *TokenClaims
	err    error
}

func (s stubVerifier) Verify(string) (*TokenClaims, error) {
	return s.claims, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_RequireAuth_MissingHeader(t *testing.T) {
	handler := RequireAuth(stubVerifier{}, discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a bearer token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), string(dErrors.CodeUnauthenticated))
}

func Test_RequireAuth_NonBearerScheme(t *testing.T) {
	handler := RequireAuth(stubVerifier{}, discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a non-bearer credential")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_RequireAuth_ExpiredTokenKindPropagates(t *testing.T) {
	verifier := stubVerifier{err: dErrors.New(dErrors.CodeTokenExpired, "token has expired")}
	handler := RequireAuth(verifier, discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), string(dErrors.CodeTokenExpired))
}

func Test_RequireAuth_ValidTokenExposesIdentity(t *testing.T) {
	verifier := stubVerifier{claims: &TokenClaims{UserID: "user-1", Email: "u@x.com"}}

	var gotUserID, gotEmail string
	handler := RequireAuth(verifier, discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = requestcontext.UserID(r.Context())
		gotEmail = requestcontext.Email(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", gotUserID)
	assert.Equal(t, "u@x.com", gotEmail)
}
