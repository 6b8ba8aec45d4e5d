package inventory

import (
	"context"
	"testing"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_AddProduct_Validation(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewService(repo)

	_, err := svc.AddProduct(context.Background(), CreateProductRequest{UserID: "U1", Name: "Teh"})

	var verr *apperr.ValidationError
	assert.ErrorAs(t, err, &verr)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_AddProduct_Defaults(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewService(repo)
	price := decimal.NewFromInt(5000)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*inventory.Product")).Return(nil)

	p, err := svc.AddProduct(context.Background(), CreateProductRequest{
		UserID: "U1", StoreID: "S1", Name: "Teh", Price: &price,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Umum", p.Category)
	assert.Equal(t, "pcs", p.Unit)
	assert.Equal(t, 1, p.MinStockLevel)
	assert.Equal(t, 0, p.Stock)
	assert.Equal(t, "S1", *p.StoreID)
	repo.AssertExpectations(t)
}

func TestService_AddProduct_WithoutStore(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewService(repo)
	price := decimal.NewFromInt(3000)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Product) bool {
		return p.StoreID == nil && p.Barcode == nil
	})).Return(nil)

	p, err := svc.AddProduct(context.Background(), CreateProductRequest{
		UserID: "U1", Name: "Gula", Price: &price,
	})

	require.NoError(t, err)
	assert.Nil(t, p.StoreID)
	repo.AssertExpectations(t)
}
