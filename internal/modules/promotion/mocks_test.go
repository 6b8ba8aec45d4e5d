package promotion

import (
	"context"
	"time"

	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/inventory"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, p *Promotion) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) ExistsActiveByName(ctx context.Context, storeID, name string) (bool, error) {
	args := m.Called(ctx, storeID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id string, req UpdatePromotionRequest) (*Promotion, error) {
	args := m.Called(ctx, id, req)
	p, _ := args.Get(0).(*Promotion)
	return p, args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockVolumeCounter struct {
	mock.Mock
}

func (m *MockVolumeCounter) SumProductQuantity(ctx context.Context, userID, storeID, productID string, from, to time.Time) (int, error) {
	args := m.Called(ctx, userID, storeID, productID, from, to)
	return args.Int(0), args.Error(1)
}

type MockProductReader struct {
	mock.Mock
}

func (m *MockProductReader) GetByID(ctx context.Context, id string) (*inventory.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*inventory.Product)
	return p, args.Error(1)
}
