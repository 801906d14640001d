package marketplace

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"motorvault/internal/http/shared"
	dErrors "motorvault/pkg/domain-errors"
	"motorvault/pkg/requestcontext"
)

type Handler struct {
	logger   *slog.Logger
	listings *Service
}

func NewHandler(listings *Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, listings: listings}
}

func (h *Handler) RegisterPublic(r chi.Router) {
	r.Get("/marketplace-listings", h.handleList)
	r.Get("/marketplace-listings/{id}", h.handleGet)
}

func (h *Handler) RegisterProtected(r chi.Router) {
	r.Post("/marketplace-listings", h.handleCreate)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listings.List(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, listings)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	l, err := h.listings.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, l)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.VehicleID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "vehicle_id is required"))
		return
	}
	if req.Price <= 0 {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "price must be positive"))
		return
	}

	l, err := h.listings.Create(ctx, requestcontext.UserID(ctx), req)
	if err != nil {
		h.logger.WarnContext(ctx, "listing create failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, l)
}
