package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	authModel "motorvault/internal/auth/models"
	"motorvault/internal/http/shared"
	"motorvault/internal/platform/metrics"
	dErrors "motorvault/pkg/domain-errors"
	"motorvault/pkg/requestcontext"
)

// Service defines the interface for identity operations.
type Service interface {
	Register(ctx context.Context, req authModel.RegisterRequest) (authModel.TokenResponse, error)
	LoginPassword(ctx context.Context, req authModel.PasswordLoginRequest) (authModel.TokenResponse, error)
	LoginPIN(ctx context.Context, req authModel.PINLoginRequest) (authModel.TokenResponse, error)
	CurrentUser(ctx context.Context, userID string) (authModel.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req authModel.UpdateProfileRequest) (authModel.UserResponse, error)
}

// Handler handles the auth endpoints.
type Handler struct {
	logger  *slog.Logger
	auth    Service
	metrics *metrics.Metrics
}

func New(auth Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{logger: logger, auth: auth, metrics: m}
}

// RegisterPublic mounts the unauthenticated auth routes.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/auth/register", h.handleRegister)
	r.Post("/auth/login", h.handleLogin)
	r.Post("/auth/pin-login", h.handlePINLogin)
}

// RegisterProtected mounts the routes that require a verified bearer token.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Get("/auth/me", h.handleMe)
	r.Put("/auth/update-profile", h.handleUpdateProfile)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req authModel.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if err := validateRegisterRequest(req); err != nil {
		shared.WriteError(w, err)
		return
	}

	resp, err := h.auth.Register(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "registration failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.IncrementUsersCreated()
	}
	shared.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req authModel.PasswordLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if !govalidator.IsEmail(req.Email) || req.Password == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "email and password are required"))
		return
	}

	resp, err := h.auth.LoginPassword(ctx, req)
	h.observeLogin(ctx, "password", err)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePINLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req authModel.PINLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if !govalidator.IsEmail(req.Email) || req.PIN == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "email and pin are required"))
		return
	}

	resp, err := h.auth.LoginPIN(ctx, req)
	h.observeLogin(ctx, "pin", err)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.auth.CurrentUser(ctx, requestcontext.UserID(ctx))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req authModel.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.Password != nil && *req.Password == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "password cannot be empty"))
		return
	}

	user, err := h.auth.UpdateProfile(ctx, requestcontext.UserID(ctx), req)
	if err != nil {
		h.logger.WarnContext(ctx, "profile update failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) observeLogin(ctx context.Context, method string, err error) {
	if h.metrics != nil {
		h.metrics.ObserveLogin(method, err == nil)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "login failed",
			"request_id", requestcontext.RequestID(ctx),
			"method", method,
		)
	}
}

func validateRegisterRequest(req authModel.RegisterRequest) error {
	if !govalidator.StringLength(req.Email, "1", "255") || !govalidator.IsEmail(req.Email) {
		return dErrors.New(dErrors.CodeValidation, "invalid email")
	}
	if !govalidator.StringLength(req.Password, "8", "128") {
		return dErrors.New(dErrors.CodeValidation, "password must be between 8 and 128 characters")
	}
	if !govalidator.StringLength(req.FullName, "1", "100") {
		return dErrors.New(dErrors.CodeValidation, "full_name is required")
	}
	if !govalidator.StringLength(req.Phone, "1", "20") {
		return dErrors.New(dErrors.CodeValidation, "phone is required")
	}
	return nil
}
