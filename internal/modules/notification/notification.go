package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/rs/zerolog"
)

const (
	lowStockLimit  = 5
	busySalesCount = 10
)

// Notification is a dashboard alert derived from current store data.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // info | success | warning | error
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
}

type LowStockCounter interface {
	CountLowStock(ctx context.Context, userID, storeID string, limit int) (int, error)
}

type OverdueDebtCounter interface {
	CountOverdue(ctx context.Context, userID, storeID string, day time.Time) (int, error)
}

type SalesCounter interface {
	CountCompletedSince(ctx context.Context, userID, storeID string, since time.Time) (int, error)
}

// Service builds notifications on demand; nothing is stored.
type Service interface {
	List(ctx context.Context, userID, storeID string) ([]Notification, error)
}

type service struct {
	products LowStockCounter
	debts    OverdueDebtCounter
	sales    SalesCounter
	now      func() time.Time
	logger   zerolog.Logger
}

func NewService(products LowStockCounter, debts OverdueDebtCounter, sales SalesCounter, now func() time.Time, logger zerolog.Logger) Service {
	if now == nil {
		now = time.Now
	}
	return &service{products: products, debts: debts, sales: sales, now: now, logger: logger}
}

func (s *service) List(ctx context.Context, userID, storeID string) ([]Notification, error) {
	if userID == "" || storeID == "" {
		return nil, apperr.Validation("userId and storeId are required")
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	out := []Notification{}

	lowStock, err := s.products.CountLowStock(ctx, userID, storeID, lowStockLimit)
	if err != nil {
		return nil, fmt.Errorf("count low stock: %w", err)
	}
	if lowStock > 0 {
		out = append(out, Notification{
			ID:        "low-stock",
			Type:      "warning",
			Title:     "Stok Rendah",
			Message:   fmt.Sprintf("%d produk dengan stok rendah (≤%d)", lowStock, lowStockLimit),
			Timestamp: now,
		})
	}

	overdue, err := s.debts.CountOverdue(ctx, userID, storeID, today)
	if err != nil {
		return nil, fmt.Errorf("count overdue debts: %w", err)
	}
	if overdue > 0 {
		out = append(out, Notification{
			ID:        "overdue-debts",
			Type:      "error",
			Title:     "Utang Jatuh Tempo",
			Message:   fmt.Sprintf("%d utang telah jatuh tempo", overdue),
			Timestamp: now,
		})
	}

	salesToday, err := s.sales.CountCompletedSince(ctx, userID, storeID, today)
	if err != nil {
		return nil, fmt.Errorf("count today's sales: %w", err)
	}
	switch {
	case salesToday == 0:
		out = append(out, Notification{
			ID:        "no-sales",
			Type:      "info",
			Title:     "Belum Ada Penjualan",
			Message:   "Belum ada transaksi hari ini",
			Timestamp: now,
		})
	case salesToday > busySalesCount:
		out = append(out, Notification{
			ID:        "good-sales",
			Type:      "success",
			Title:     "Penjualan Bagus",
			Message:   fmt.Sprintf("%d transaksi hari ini!", salesToday),
			Timestamp: now,
		})
	}

	s.logger.Debug().Str("store_id", storeID).Int("count", len(out)).Msg("Built notifications")
	return out, nil
}
