package inventory

import (
	"context"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/rs/zerolog"
)

// StockFailure records a stock change that could not be applied.
type StockFailure struct {
	ProductID string `json:"product_id"`
	Reason    string `json:"reason"`
	Err       error  `json:"-"`
}

// Report is the outcome of applying a sale's stock changes.
type Report struct {
	Applied  []string       `json:"applied"`
	Failures []StockFailure `json:"failures,omitempty"`
}

// Degraded reports whether at least one change failed.
func (r Report) Degraded() bool { return len(r.Failures) > 0 }

// Adjuster decrements product stock after a sale has been recorded.
//
// Every change is attempted on its own; a failing item is recorded and the
// rest still run. Stock is not clamped, overselling drives it negative.
type Adjuster struct {
	repo   ProductRepository
	logger zerolog.Logger
}

func NewAdjuster(repo ProductRepository, logger zerolog.Logger) *Adjuster {
	return &Adjuster{repo: repo, logger: logger}
}

// Apply decrements stock for each change scoped to storeID.
func (a *Adjuster) Apply(ctx context.Context, orderID, storeID string, changes []StockChange) Report {
	var report Report
	for _, c := range changes {
		if err := a.repo.DecrementStock(ctx, c.ProductID, storeID, c.Quantity); err != nil {
			derr := apperr.Downstream("stock update", c.ProductID, err)
			a.logger.Error().Err(derr).
				Str("order_id", orderID).
				Str("product_id", c.ProductID).
				Int("qty", c.Quantity).
				Msg("Failed to update stock")
			report.Failures = append(report.Failures, StockFailure{
				ProductID: c.ProductID,
				Reason:    err.Error(),
				Err:       derr,
			})
			continue
		}
		report.Applied = append(report.Applied, c.ProductID)
	}
	a.logger.Info().
		Str("order_id", orderID).
		Int("applied", len(report.Applied)).
		Int("failed", len(report.Failures)).
		Msg("Updated stock for sale items")
	return report
}
