package inventory

import "context"

// ProductRepository defines product data storage.
type ProductRepository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	Update(ctx context.Context, id string, req UpdateProductRequest) (*Product, error)
	Delete(ctx context.Context, id string) error
	// DecrementStock subtracts qty from the product's stock in a single statement.
	DecrementStock(ctx context.Context, productID, storeID string, qty int) error
	CountLowStock(ctx context.Context, userID, storeID string, limit int) (int, error)
}
