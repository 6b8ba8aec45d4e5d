package promotion

import (
	"net/http"

	"github.com/georgemunganga/dagangcerdas-backend/internal/httpx"
	"github.com/go-chi/chi/v5"
)

type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/promotions", func(r chi.Router) {
		r.Post("/", h.createPromotion)       // POST   /api/promotions
		r.Put("/{id}", h.updatePromotion)    // PUT    /api/promotions/{id}
		r.Delete("/{id}", h.deletePromotion) // DELETE /api/promotions/{id}
	})
}

func (h *Handler) createPromotion(w http.ResponseWriter, r *http.Request) {
	var req CreatePromotionRequest
	if !httpx.Decode(w, r, &req) {
		return
	}
	p, err := h.service.CreatePromotion(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, err, "failed to create promotion")
		return
	}
	httpx.Success(w, http.StatusCreated, map[string]interface{}{"promotion": p})
}

func (h *Handler) updatePromotion(w http.ResponseWriter, r *http.Request) {
	var req UpdatePromotionRequest
	if !httpx.Decode(w, r, &req) {
		return
	}
	p, err := h.service.UpdatePromotion(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.WriteError(w, r, err, "failed to update promotion")
		return
	}
	httpx.Success(w, http.StatusOK, map[string]interface{}{"promotion": p})
}

func (h *Handler) deletePromotion(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePromotion(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.WriteError(w, r, err, "failed to delete promotion")
		return
	}
	httpx.Message(w, http.StatusOK, "promotion deleted")
}
