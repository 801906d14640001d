package dealer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"motorvault/internal/http/shared"
)

type Handler struct {
	dealers *Service
}

func NewHandler(dealers *Service) *Handler {
	return &Handler{dealers: dealers}
}

func (h *Handler) RegisterPublic(r chi.Router) {
	r.Get("/dealers", h.handleList)
	r.Get("/dealers/{id}", h.handleGet)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	dealers, err := h.dealers.List(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, dealers)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	d, err := h.dealers.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, d)
}
