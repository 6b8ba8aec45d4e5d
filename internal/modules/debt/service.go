package debt

import (
	"context"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service defines customer debt business logic.
type Service interface {
	CreateDebt(ctx context.Context, req CreateDebtRequest) (*Debt, error)
	UpdateDebt(ctx context.Context, id string, req UpdateDebtRequest) (*Debt, error)
	DeleteDebt(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateDebt(ctx context.Context, req CreateDebtRequest) (*Debt, error) {
	if req.UserID == "" || req.StoreID == "" || req.CustomerName == "" || req.Amount == nil {
		return nil, apperr.Validation("userId, storeId, customer_name and amount are required")
	}
	if req.Amount.IsNegative() {
		return nil, apperr.Validation("amount must not be negative")
	}

	d := &Debt{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		StoreID:      req.StoreID,
		CustomerName: req.CustomerName,
		Amount:       *req.Amount,
		AmountPaid:   decimal.Zero,
		Status:       StatusUnpaid,
		DueDate:      req.DueDate,
		Description:  req.Description,
	}
	if req.CustomerPhone != "" {
		d.CustomerPhone = &req.CustomerPhone
	}
	if req.CustomerAddress != "" {
		d.CustomerAddress = &req.CustomerAddress
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, apperr.Persistence("insert debt", err)
	}
	return d, nil
}

// UpdateDebt applies a partial update. When amounts change and no status is
// given, the status follows the amounts: paid, partial or unpaid.
func (s *service) UpdateDebt(ctx context.Context, id string, req UpdateDebtRequest) (*Debt, error) {
	if req.Amount != nil && req.Amount.IsNegative() {
		return nil, apperr.Validation("amount must not be negative")
	}
	if req.AmountPaid != nil && req.AmountPaid.IsNegative() {
		return nil, apperr.Validation("amount_paid must not be negative")
	}
	if req.Status != nil {
		switch *req.Status {
		case StatusUnpaid, StatusPartial, StatusPaid:
		default:
			return nil, apperr.Validation("status must be unpaid, partial or paid")
		}
	}

	if req.Status == nil && (req.Amount != nil || req.AmountPaid != nil) {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		total, paid := current.Amount, current.AmountPaid
		if req.Amount != nil {
			total = *req.Amount
		}
		if req.AmountPaid != nil {
			paid = *req.AmountPaid
		}
		status := statusFor(total, paid)
		req.Status = &status
	}
	return s.repo.Update(ctx, id, req)
}

func (s *service) DeleteDebt(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
