package promotion

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"motorvault/internal/http/shared"
)

type Handler struct {
	promotions *Service
}

func NewHandler(promotions *Service) *Handler {
	return &Handler{promotions: promotions}
}

func (h *Handler) RegisterPublic(r chi.Router) {
	r.Get("/promotions", h.handleList)
	r.Get("/promotions/{id}", h.handleGet)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	promotions, err := h.promotions.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, promotions)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.promotions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, p)
}
