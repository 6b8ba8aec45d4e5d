package notification

import (
	"net/http"

	"github.com/georgemunganga/dagangcerdas-backend/internal/httpx"
	"github.com/go-chi/chi/v5"
)

type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/notifications", h.list) // GET /api/notifications?userId=&storeId=
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.service.List(r.Context(), q.Get("userId"), q.Get("storeId"))
	if err != nil {
		httpx.WriteError(w, r, err, "failed to fetch notifications")
		return
	}
	httpx.Success(w, http.StatusOK, map[string]interface{}{"notifications": items})
}
