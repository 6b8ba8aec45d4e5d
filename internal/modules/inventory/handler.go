package inventory

import (
	"net/http"

	"github.com/georgemunganga/dagangcerdas-backend/internal/httpx"
	"github.com/go-chi/chi/v5"
)

// Handler exposes product HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.addProduct)          // POST   /api/products
		r.Get("/{id}", h.getProduct)       // GET    /api/products/{id}
		r.Put("/{id}", h.updateProduct)    // PUT    /api/products/{id}
		r.Delete("/{id}", h.deleteProduct) // DELETE /api/products/{id}
	})
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if !httpx.Decode(w, r, &req) {
		return
	}
	p, err := h.service.AddProduct(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, err, "failed to create product")
		return
	}
	httpx.Success(w, http.StatusCreated, map[string]interface{}{"product": p})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, r, err, "failed to fetch product")
		return
	}
	httpx.Success(w, http.StatusOK, map[string]interface{}{"product": p})
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if !httpx.Decode(w, r, &req) {
		return
	}
	p, err := h.service.UpdateProduct(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.WriteError(w, r, err, "failed to update product")
		return
	}
	httpx.Success(w, http.StatusOK, map[string]interface{}{"product": p})
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.WriteError(w, r, err, "failed to delete product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
