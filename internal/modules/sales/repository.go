package sales

import (
	"context"
	"time"
)

// Repository persists sales.
type Repository interface {
	// Insert writes a completed sale and refreshes s from the stored row.
	Insert(ctx context.Context, s *Sale) error
	// InsertPlaceholder writes a pending checkout row, ignoring an existing order id.
	InsertPlaceholder(ctx context.Context, s *Sale) error
	// ListCompletedSince returns sales with items created at or after since,
	// newest first. An empty storeID covers every store of the user.
	ListCompletedSince(ctx context.Context, userID, storeID string, since time.Time) ([]Sale, error)
	// CountCompletedSince counts sales with items created at or after since.
	CountCompletedSince(ctx context.Context, userID, storeID string, since time.Time) (int, error)
	// SumProductQuantity totals qty of productID over completed sales in (from, to].
	SumProductQuantity(ctx context.Context, userID, storeID, productID string, from, to time.Time) (int, error)
}
