package sales

import (
	"net/http"

	"github.com/georgemunganga/dagangcerdas-backend/internal/httpx"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

// Handler exposes the sales endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/sales", func(r chi.Router) {
		r.Post("/", h.createSale)       // POST /api/sales
		r.Get("/summary", h.getSummary) // GET  /api/sales/summary?userId=&storeId=
	})
}

// createSale answers with the persisted sale only. Stock and promotion
// outcomes never change the status code.
func (h *Handler) createSale(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if !httpx.Decode(w, r, &req) {
		return
	}
	out, err := h.service.CreateSale(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, err, "failed to create sale")
		return
	}
	if out.StockStatus == StepDegraded || out.PromotionStatus == StepDegraded {
		hlog.FromRequest(r).Warn().
			Str("order_id", out.Sale.OrderID).
			Str("stock", string(out.StockStatus)).
			Str("promotions", string(out.PromotionStatus)).
			Msg("Sale recorded with degraded side effects")
	}
	httpx.Success(w, http.StatusCreated, map[string]interface{}{"sale": out.Sale})
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.service.GetSummary(r.Context(), q.Get("userId"), q.Get("storeId"))
	if err != nil {
		httpx.WriteError(w, r, err, "failed to fetch sales summary")
		return
	}
	httpx.Success(w, http.StatusOK, res)
}
