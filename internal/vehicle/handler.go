package vehicle

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	"motorvault/internal/http/shared"
	"motorvault/internal/regoscan"
	dErrors "motorvault/pkg/domain-errors"
	"motorvault/pkg/requestcontext"
)

// Handler handles the vehicle endpoints. All of them require a verified
// bearer token; the owner comes from the request context, never from the body.
type Handler struct {
	logger    *slog.Logger
	vehicles  *Service
	extractor regoscan.Extractor
}

func NewHandler(vehicles *Service, extractor regoscan.Extractor, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, vehicles: vehicles, extractor: extractor}
}

func (h *Handler) RegisterProtected(r chi.Router) {
	r.Get("/vehicles", h.handleList)
	r.Post("/vehicles", h.handleCreate)
	r.Post("/vehicles/extract-rego-data", h.handleExtractRegoData)
	r.Get("/vehicles/{id}", h.handleGet)
	r.Put("/vehicles/{id}", h.handleUpdate)
	r.Delete("/vehicles/{id}", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vehicles, err := h.vehicles.List(ctx, requestcontext.UserID(ctx))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, vehicles)
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

	v, err := h.vehicles.Create(ctx, requestcontext.UserID(ctx), req)
	if err != nil {
		h.logger.WarnContext(ctx, "vehicle create failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, v)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v, err := h.vehicles.Get(ctx, requestcontext.UserID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, v)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	v, err := h.vehicles.Update(ctx, requestcontext.UserID(ctx), chi.URLParam(r, "id"), req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, v)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.vehicles.Delete(ctx, requestcontext.UserID(ctx), chi.URLParam(r, "id")); err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{"message": "vehicle deleted"})
}

type extractRequest struct {
	Image string `json:"image"`
}

func (h *Handler) handleExtractRegoData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.extractor == nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "rego extraction is not configured"))
		return
	}

	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.Image == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "image is required"))
		return
	}

	extraction, err := h.extractor.Extract(ctx, req.Image)
	if err != nil {
		h.logger.WarnContext(ctx, "rego extraction failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, extraction)
}

func validateCreateRequest(req CreateRequest) error {
	if !govalidator.StringLength(req.Rego, "1", "10") {
		return dErrors.New(dErrors.CodeValidation, "rego is required")
	}
	if !govalidator.StringLength(req.Make, "1", "50") {
		return dErrors.New(dErrors.CodeValidation, "make is required")
	}
	if !govalidator.StringLength(req.Model, "1", "50") {
		return dErrors.New(dErrors.CodeValidation, "model is required")
	}
	if req.Year < 1900 || req.Year > 2100 {
		return dErrors.New(dErrors.CodeValidation, "year is out of range")
	}
	return nil
}
