package customer

import (
	"net/http"

	"github.com/georgemunganga/dagangcerdas-backend/internal/httpx"
	"github.com/go-chi/chi/v5"
)

type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/customers", h.createCustomer) // POST /api/customers
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if !httpx.Decode(w, r, &req) {
		return
	}
	c, err := h.service.CreateCustomer(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, err, "failed to create customer")
		return
	}
	httpx.Success(w, http.StatusCreated, map[string]interface{}{"customer": c})
}
