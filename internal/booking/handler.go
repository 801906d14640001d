package booking

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
	logger   *slog.Logger
	bookings *Service
}

func NewHandler(bookings *Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, bookings: bookings}
}

func (h *Handler) RegisterProtected(r chi.Router) {
	r.Get("/bookings", h.handleList)
	r.Post("/bookings", h.handleCreate)
	r.Get("/bookings/{id}", h.handleGet)
	r.Put("/bookings/{id}", h.handleUpdate)
	r.Delete("/bookings/{id}", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bookings, err := h.bookings.List(ctx, requestcontext.UserID(ctx))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, bookings)
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

	b, err := h.bookings.Create(ctx, requestcontext.UserID(ctx), req)
	if err != nil {
		h.logger.WarnContext(ctx, "booking create failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, b)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	b, err := h.bookings.Get(ctx, requestcontext.UserID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	b, err := h.bookings.Update(ctx, requestcontext.UserID(ctx), chi.URLParam(r, "id"), req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.bookings.Delete(ctx, requestcontext.UserID(ctx), chi.URLParam(r, "id")); err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{"message": "booking deleted"})
}

func validateCreateRequest(req CreateRequest) error {
	if req.VehicleID == "" {
		return dErrors.New(dErrors.CodeValidation, "vehicle_id is required")
	}
	if !govalidator.StringLength(req.ServiceType, "1", "100") {
		return dErrors.New(dErrors.CodeValidation, "service_type is required")
	}
	if req.BookingDate.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "booking_date is required")
	}
	return nil
}
