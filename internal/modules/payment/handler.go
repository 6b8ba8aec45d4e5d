package payment

import (
	"errors"
	"net/http"

	"github.com/georgemunganga/dagangcerdas-backend/internal/httpx"
	"github.com/go-chi/chi/v5"
)

// Handler exposes payment HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.Post("/checkout", h.checkout) // POST /api/payments/checkout
	})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if !httpx.Decode(w, r, &req) {
		return
	}
	res, err := h.service.Checkout(r.Context(), req)
	if errors.Is(err, ErrNotConfigured) {
		httpx.Error(w, http.StatusInternalServerError, "midtrans is not configured")
		return
	}
	if err != nil {
		httpx.WriteError(w, r, err, "failed to start midtrans payment")
		return
	}
	httpx.Success(w, http.StatusOK, res)
}
