package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authModel "motorvault/internal/auth/models"
	"motorvault/internal/auth/service"
	"motorvault/internal/auth/store"
	"motorvault/internal/jwttoken"
	"motorvault/internal/platform/config"
	"motorvault/pkg/requestcontext"
)

func newTestHandler(t *testing.T) (*Handler, chi.Router) {
	t.Helper()
	tokens := jwttoken.New(config.JWTConfig{SigningKey: "test-signing-key", TTL: time.Hour})
	svc := service.NewService(store.NewInMemoryUserStore(), tokens)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := New(svc, logger, nil)
	r := chi.NewRouter()
	h.RegisterPublic(r)
	return h, r
}

func postJSON(t *testing.T, r chi.Router, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func Test_HandleRegister(t *testing.T) {
	_, r := newTestHandler(t)

	w := postJSON(t, r, "/auth/register", authModel.RegisterRequest{
		Email:    "u@x.com",
		Password: "Secret123!",
		FullName: "Jess Citizen",
		Phone:    "0400000000",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["access_token"])
	assert.Equal(t, "bearer", resp["token_type"])

	user := resp["user"].(map[string]any)
	assert.Equal(t, "u@x.com", user["email"])
	// Credentials never appear in the outward representation.
	_, hasPIN := user["pin"]
	_, hasPassword := user["password"]
	assert.False(t, hasPIN)
	assert.False(t, hasPassword)
}

func Test_HandleRegister_DuplicateEmail(t *testing.T) {
	_, r := newTestHandler(t)

	body := authModel.RegisterRequest{
		Email: "u@x.com", Password: "Secret123!", FullName: "Jess", Phone: "0400000000",
	}
	require.Equal(t, http.StatusOK, postJSON(t, r, "/auth/register", body).Code)
	assert.Equal(t, http.StatusConflict, postJSON(t, r, "/auth/register", body).Code)
}

func Test_HandleRegister_ValidationFailures(t *testing.T) {
	_, r := newTestHandler(t)

	tests := []struct {
		name string
		req  authModel.RegisterRequest
	}{
		{"bad email", authModel.RegisterRequest{Email: "nope", Password: "Secret123!", FullName: "J", Phone: "04"}},
		{"short password", authModel.RegisterRequest{Email: "u@x.com", Password: "short", FullName: "J", Phone: "04"}},
		{"missing name", authModel.RegisterRequest{Email: "u@x.com", Password: "Secret123!", Phone: "04"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, postJSON(t, r, "/auth/register", tt.req).Code)
		})
	}
}

func Test_HandleLogin_WrongPassword(t *testing.T) {
	_, r := newTestHandler(t)

	require.Equal(t, http.StatusOK, postJSON(t, r, "/auth/register", authModel.RegisterRequest{
		Email: "u@x.com", Password: "Secret123!", FullName: "Jess", Phone: "0400000000",
	}).Code)

	w := postJSON(t, r, "/auth/login", authModel.PasswordLoginRequest{
		Email: "u@x.com", Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_credentials")
}

func Test_HandleLogin_MalformedBody(t *testing.T) {
	_, r := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_HandleMe_ResolvesIdentityFromContext(t *testing.T) {
	h, r := newTestHandler(t)

	w := postJSON(t, r, "/auth/register", authModel.RegisterRequest{
		Email: "u@x.com", Password: "Secret123!", FullName: "Jess", Phone: "0400000000",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		User authModel.UserResponse `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(requestcontext.WithUserID(req.Context(), resp.User.ID))
	rec := httptest.NewRecorder()
	h.handleMe(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var me authModel.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, resp.User.ID, me.ID)
	assert.Equal(t, "u@x.com", me.Email)
}
