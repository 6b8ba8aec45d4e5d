package payment

import (
	"context"

	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/sales"
)

// PendingSaleWriter records the placeholder sale of a started checkout.
// The sales repository satisfies it.
type PendingSaleWriter interface {
	InsertPlaceholder(ctx context.Context, s *sales.Sale) error
}
