package store

import (
	"net/http"

	"github.com/georgemunganga/dagangcerdas-backend/internal/httpx"
	"github.com/go-chi/chi/v5"
)

// Handler exposes store HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/stores", func(r chi.Router) {
		r.Post("/", h.createStore)    // POST /api/stores
		r.Put("/{id}", h.updateStore) // PUT  /api/stores/{id}
	})
}

func (h *Handler) createStore(w http.ResponseWriter, r *http.Request) {
	var req CreateStoreRequest
	if !httpx.Decode(w, r, &req) {
		return
	}
	st, err := h.service.CreateStore(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, err, "failed to create store")
		return
	}
	httpx.Success(w, http.StatusCreated, map[string]interface{}{"store": st})
}

func (h *Handler) updateStore(w http.ResponseWriter, r *http.Request) {
	var req UpdateStoreRequest
	if !httpx.Decode(w, r, &req) {
		return
	}
	st, err := h.service.UpdateStore(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.WriteError(w, r, err, "failed to update store")
		return
	}
	httpx.Success(w, http.StatusOK, map[string]interface{}{"store": st})
}
