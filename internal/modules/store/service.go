package store

import (
	"context"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/google/uuid"
)

// Service defines store business logic.
type Service interface {
	CreateStore(ctx context.Context, req CreateStoreRequest) (*Store, error)
	UpdateStore(ctx context.Context, id string, req UpdateStoreRequest) (*Store, error)
}

type service struct {
	repo Repository
}

// NewService creates a new store service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateStore(ctx context.Context, req CreateStoreRequest) (*Store, error) {
	if req.UserID == "" || req.Name == "" || req.OwnerName == "" {
		return nil, apperr.Validation("userId, name and owner_name are required")
	}
	st := &Store{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Name:        req.Name,
		OwnerName:   req.OwnerName,
		Address:     optional(req.Address),
		Phone:       optional(req.Phone),
		Email:       optional(req.Email),
		Description: optional(req.Description),
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, apperr.Persistence("insert store", err)
	}
	return st, nil
}

func (s *service) UpdateStore(ctx context.Context, id string, req UpdateStoreRequest) (*Store, error) {
	if req.UserID == "" {
		return nil, apperr.Validation("userId is required")
	}
	return s.repo.Update(ctx, id, req)
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
