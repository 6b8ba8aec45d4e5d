package debt

import (
	"net/http"

	"github.com/georgemunganga/dagangcerdas-backend/internal/httpx"
	"github.com/go-chi/chi/v5"
)

// Handler exposes debt HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/debts", func(r chi.Router) {
		r.Post("/", h.createDebt)       // POST   /api/debts
		r.Put("/{id}", h.updateDebt)    // PUT    /api/debts/{id}
		r.Delete("/{id}", h.deleteDebt) // DELETE /api/debts/{id}
	})
}

func (h *Handler) createDebt(w http.ResponseWriter, r *http.Request) {
	var req CreateDebtRequest
	if !httpx.Decode(w, r, &req) {
		return
	}
	d, err := h.service.CreateDebt(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, err, "failed to create debt")
		return
	}
	httpx.Success(w, http.StatusCreated, map[string]interface{}{"debt": d})
}

func (h *Handler) updateDebt(w http.ResponseWriter, r *http.Request) {
	var req UpdateDebtRequest
	if !httpx.Decode(w, r, &req) {
		return
	}
	d, err := h.service.UpdateDebt(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.WriteError(w, r, err, "failed to update debt")
		return
	}
	httpx.Success(w, http.StatusOK, map[string]interface{}{"debt": d})
}

func (h *Handler) deleteDebt(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteDebt(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.WriteError(w, r, err, "failed to delete debt")
		return
	}
	httpx.Message(w, http.StatusOK, "debt deleted")
}
