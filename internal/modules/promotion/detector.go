package promotion

import (
	"context"
	"time"
)

// Detector computes trailing sales volume and decides whether a product is hot.
type Detector struct {
	counter VolumeCounter
	policy  Policy
	now     func() time.Time
}

func NewDetector(counter VolumeCounter, policy Policy, now func() time.Time) *Detector {
	if now == nil {
		now = time.Now
	}
	return &Detector{counter: counter, policy: policy, now: now}
}

// Volume returns the quantity of productID sold in (now-window, now].
func (d *Detector) Volume(ctx context.Context, userID, storeID, productID string) (int, error) {
	to := d.now()
	from := to.Add(-d.policy.Window)
	n, err := d.counter.SumProductQuantity(ctx, userID, storeID, productID, from, to)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, nil
	}
	return n, nil
}

// IsHot reports whether volume meets the configured threshold.
func (d *Detector) IsHot(volume int) bool {
	return volume >= d.policy.HotThreshold
}
