package promotion

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy holds the hot-product and auto-promotion tuning values.
type Policy struct {
	// HotThreshold is the trailing volume at which a product counts as hot.
	HotThreshold int
	// Window is the trailing lookback used to compute volume.
	Window time.Duration
	// DiscountPercent is the percentage discount of an auto-promotion.
	DiscountPercent decimal.Decimal
	// Duration is how long an auto-promotion stays valid.
	Duration time.Duration
	// MinOrderQuantity is the minimum quantity an auto-promotion applies to.
	MinOrderQuantity int
}

// DefaultPolicy returns 10 units over 7 days, 10% off for 7 days from 1 unit.
func DefaultPolicy() Policy {
	return Policy{
		HotThreshold:     10,
		Window:           7 * 24 * time.Hour,
		DiscountPercent:  decimal.NewFromInt(10),
		Duration:         7 * 24 * time.Hour,
		MinOrderQuantity: 1,
	}
}

// windowDays renders Window in whole days for customer-facing text.
func (p Policy) windowDays() int {
	return int(p.Window / (24 * time.Hour))
}
