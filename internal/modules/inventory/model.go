package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item listed in a store. Stock may go negative when oversold.
type Product struct {
	ID            string          `json:"id" db:"id"`
	UserID        string          `json:"user_id" db:"user_id"`
	StoreID       *string         `json:"store_id,omitempty" db:"store_id"`
	Name          string          `json:"name" db:"name"`
	Price         decimal.Decimal `json:"price" db:"price"`
	CostPrice     decimal.Decimal `json:"cost_price" db:"cost_price"`
	Stock         int             `json:"stock" db:"stock"`
	Category      string          `json:"category" db:"category"`
	Unit          string          `json:"unit" db:"unit"`
	Barcode       *string         `json:"barcode,omitempty" db:"barcode"`
	MinStockLevel int             `json:"min_stock_level" db:"min_stock_level"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// CreateProductRequest is the payload for adding a product.
type CreateProductRequest struct {
	UserID        string           `json:"userId"`
	StoreID       string           `json:"storeId,omitempty"`
	Name          string           `json:"name"`
	Price         *decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal  `json:"cost_price,omitempty"`
	Stock         int              `json:"stock,omitempty"`
	Category      string           `json:"category,omitempty"`
	Unit          string           `json:"unit,omitempty"`
	Barcode       string           `json:"barcode,omitempty"`
	MinStockLevel int              `json:"min_stock_level,omitempty"`
}

// UpdateProductRequest holds a partial update; nil fields keep their stored value.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Price         *decimal.Decimal `json:"price"`
	CostPrice     *decimal.Decimal `json:"cost_price"`
	Stock         *int             `json:"stock"`
	Category      *string          `json:"category"`
	Unit          *string          `json:"unit"`
	Barcode       *string          `json:"barcode"`
	MinStockLevel *int             `json:"min_stock_level"`
}

// StockChange is one decrement requested by a recorded sale.
type StockChange struct {
	ProductID string
	Quantity  int
}
