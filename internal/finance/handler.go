package finance

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
	products *Service
}

func NewHandler(products *Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, products: products}
}

func (h *Handler) RegisterProtected(r chi.Router) {
	r.Get("/finance", h.handleList)
	r.Post("/finance", h.handleCreate)
	r.Get("/finance/{id}", h.handleGet)
	r.Put("/finance/{id}", h.handleUpdate)
	r.Delete("/finance/{id}", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	products, err := h.products.List(ctx, requestcontext.UserID(ctx))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, products)
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

	p, err := h.products.Create(ctx, requestcontext.UserID(ctx), req)
	if err != nil {
		h.logger.WarnContext(ctx, "finance product create failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, err := h.products.Get(ctx, requestcontext.UserID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	p, err := h.products.Update(ctx, requestcontext.UserID(ctx), chi.URLParam(r, "id"), req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.products.Delete(ctx, requestcontext.UserID(ctx), chi.URLParam(r, "id")); err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{"message": "finance product deleted"})
}

func validateCreateRequest(req CreateRequest) error {
	if !govalidator.StringLength(req.Lender, "1", "100") {
		return dErrors.New(dErrors.CodeValidation, "lender is required")
	}
	if req.LoanAmount <= 0 {
		return dErrors.New(dErrors.CodeValidation, "loan_amount must be positive")
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "start_date and end_date are required")
	}
	if req.EndDate.Before(req.StartDate) {
		return dErrors.New(dErrors.CodeValidation, "end_date must not precede start_date")
	}
	return nil
}
