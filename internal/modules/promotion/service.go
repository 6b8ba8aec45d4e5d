package promotion

import (
	"context"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/google/uuid"
)

// Service defines manual promotion management.
type Service interface {
	CreatePromotion(ctx context.Context, req CreatePromotionRequest) (*Promotion, error)
	UpdatePromotion(ctx context.Context, id string, req UpdatePromotionRequest) (*Promotion, error)
	DeletePromotion(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePromotion(ctx context.Context, req CreatePromotionRequest) (*Promotion, error) {
	if req.UserID == "" || req.StoreID == "" || req.Name == "" || req.DiscountType == "" || req.DiscountValue == nil {
		return nil, apperr.Validation("userId, storeId, name, discount_type and discount_value are required")
	}
	if err := validateDiscount(req.DiscountType, req.DiscountValue.IsNegative()); err != nil {
		return nil, err
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, apperr.Validation("end_date must not be before start_date")
	}

	minQty := req.MinQuantity
	if minQty < 1 {
		minQty = 1
	}
	p := &Promotion{
		ID:               uuid.NewString(),
		UserID:           req.UserID,
		StoreID:          req.StoreID,
		Name:             req.Name,
		Description:      req.Description,
		DiscountType:     DiscountType(req.DiscountType),
		DiscountValue:    *req.DiscountValue,
		MinOrderQuantity: minQty,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		IsActive:         true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apperr.Persistence("insert promotion", err)
	}
	return p, nil
}

func (s *service) UpdatePromotion(ctx context.Context, id string, req UpdatePromotionRequest) (*Promotion, error) {
	if req.DiscountType != nil {
		if err := validateDiscount(*req.DiscountType, false); err != nil {
			return nil, err
		}
	}
	if req.DiscountValue != nil && req.DiscountValue.IsNegative() {
		return nil, apperr.Validation("discount_value must not be negative")
	}
	return s.repo.Update(ctx, id, req)
}

func (s *service) DeletePromotion(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateDiscount(discountType string, negative bool) error {
	switch DiscountType(discountType) {
	case DiscountPercentage, DiscountFixed:
	default:
		return apperr.Validation("discount_type must be percentage or fixed")
	}
	if negative {
		return apperr.Validation("discount_value must not be negative")
	}
	return nil
}
