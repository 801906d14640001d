package provider

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"motorvault/internal/http/shared"
)

type Handler struct {
	providers *Service
}

func NewHandler(providers *Service) *Handler {
	return &Handler{providers: providers}
}

func (h *Handler) RegisterPublic(r chi.Router) {
	r.Get("/providers", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	providers, err := h.providers.List(r.Context(), r.URL.Query().Get("provider_type"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, providers)
}
