package roadside

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	"motorvault/internal/http/shared"
	dErrors "motorvault/pkg/domain-errors"
	"motorvault/pkg/requestcontext"
)

type Handler struct {
	logger      *slog.Logger
	memberships *Service
}

func NewHandler(memberships *Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, memberships: memberships}
}

func (h *Handler) RegisterProtected(r chi.Router) {
	r.Get("/roadside", h.handleList)
	r.Post("/roadside", h.handleCreate)
	r.Get("/roadside/{id}", h.handleGet)
	r.Put("/roadside/{id}", h.handleUpdate)
	r.Delete("/roadside/{id}", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	memberships, err := h.memberships.List(ctx, requestcontext.UserID(ctx))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, memberships)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if err := validateCreateRequest(req); err != nil {
		shared.WriteError(w, err)
		return
	}

	m, err := h.memberships.Create(ctx, requestcontext.UserID(ctx), req)
	if err != nil {
		h.logger.WarnContext(ctx, "membership create failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, m)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	m, err := h.memberships.Get(ctx, requestcontext.UserID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	m, err := h.memberships.Update(ctx, requestcontext.UserID(ctx), chi.URLParam(r, "id"), req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.memberships.Delete(ctx, requestcontext.UserID(ctx), chi.URLParam(r, "id")); err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{"message": "membership deleted"})
}

func validateCreateRequest(req CreateRequest) error {
	if !govalidator.StringLength(req.Provider, "1", "100") {
		return dErrors.New(dErrors.CodeValidation, "provider is required")
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "start_date and end_date are required")
	}
	if req.EndDate.Before(req.StartDate) {
		return dErrors.New(dErrors.CodeValidation, "end_date must not precede start_date")
	}
	return nil
}
