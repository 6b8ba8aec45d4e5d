package customer

import (
	"context"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/google/uuid"
)

type Service interface {
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	if req.UserID == "" || req.StoreID == "" || req.Name == "" {
		return nil, apperr.Validation("userId, storeId and name are required")
	}
	c := &Customer{
		ID:      uuid.NewString(),
		UserID:  req.UserID,
		StoreID: req.StoreID,
		Name:    req.Name,
	}
	if req.Phone != "" {
		c.Phone = &req.Phone
	}
	if req.Address != "" {
		c.Address = &req.Address
	}
	if req.Email != "" {
		c.Email = &req.Email
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, apperr.Persistence("insert customer", err)
	}
	return c, nil
}
