package debt

import (
	"context"
	"time"
)

// Repository defines the interface for debt data storage.
type Repository interface {
	Create(ctx context.Context, d *Debt) error
	GetByID(ctx context.Context, id string) (*Debt, error)
	Update(ctx context.Context, id string, req UpdateDebtRequest) (*Debt, error)
	Delete(ctx context.Context, id string) error
	// CountOverdue counts debts not yet paid whose due date is before day.
	CountOverdue(ctx context.Context, userID, storeID string, day time.Time) (int, error)
}
