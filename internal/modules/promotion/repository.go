package promotion

import (
	"context"
	"time"
)

// Repository defines promotion data storage.
type Repository interface {
	Create(ctx context.Context, p *Promotion) error
	// ExistsActiveByName reports whether the store already has an active promotion with this name.
	ExistsActiveByName(ctx context.Context, storeID, name string) (bool, error)
	Update(ctx context.Context, id string, req UpdatePromotionRequest) (*Promotion, error)
	Delete(ctx context.Context, id string) error
}

// VolumeCounter sums quantities sold from completed sales.
type VolumeCounter interface {
	// SumProductQuantity totals the quantity of productID sold by the owner's store
	// in sales created after from and up to and including to, ignoring sales with no items.
	SumProductQuantity(ctx context.Context, userID, storeID, productID string, from, to time.Time) (int, error)
}
