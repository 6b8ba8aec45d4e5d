package inventory

import (
	"context"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/google/uuid"
)

// Service defines product catalogue business logic.
type Service interface {
	AddProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type service struct {
	repo ProductRepository
}

// NewService creates a new inventory service.
func NewService(repo ProductRepository) Service {
	return &service{repo: repo}
}

func (s *service) AddProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if req.UserID == "" || req.Name == "" || req.Price == nil {
		return nil, apperr.Validation("userId, name and price are required")
	}
	if req.Price.IsNegative() {
		return nil, apperr.Validation("price must not be negative")
	}

	category := req.Category
	if category == "" {
		category = "Umum"
	}
	unit := req.Unit
	if unit == "" {
		unit = "pcs"
	}
	minStock := req.MinStockLevel
	if minStock == 0 {
		minStock = 1
	}

	p := &Product{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		Name:          req.Name,
		Price:         *req.Price,
		CostPrice:     req.CostPrice,
		Stock:         req.Stock,
		Category:      category,
		Unit:          unit,
		MinStockLevel: minStock,
	}
	if req.StoreID != "" {
		p.StoreID = &req.StoreID
	}
	if req.Barcode != "" {
		p.Barcode = &req.Barcode
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apperr.Persistence("insert product", err)
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*Product, error) {
	if req.Price != nil && req.Price.IsNegative() {
		return nil, apperr.Validation("price must not be negative")
	}
	return s.repo.Update(ctx, id, req)
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
