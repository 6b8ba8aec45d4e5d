package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// Store is an outlet owned by a user. Sales, products and promotions are
// scoped to a store.
type Store struct {
	ID            string          `json:"id" db:"id"`
	UserID        string          `json:"user_id" db:"user_id"`
	Name          string          `json:"name" db:"name"`
	OwnerName     string          `json:"owner_name" db:"owner_name"`
	Address       *string         `json:"address" db:"address"`
	Phone         *string         `json:"phone" db:"phone"`
	Email         *string         `json:"email" db:"email"`
	Description   *string         `json:"description" db:"description"`
	TotalSales    int             `json:"total_sales" db:"total_sales"`
	TotalRevenue  decimal.Decimal `json:"total_revenue" db:"total_revenue"`
	TotalProfit   decimal.Decimal `json:"total_profit" db:"total_profit"`
	TotalProducts int             `json:"total_products" db:"total_products"`
	LastSaleDate  *time.Time      `json:"last_sale_date" db:"last_sale_date"`
	IsActive      bool            `json:"is_active" db:"is_active"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

type CreateStoreRequest struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	OwnerName   string `json:"owner_name"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateStoreRequest changes only the non-nil fields of a store owned by UserID.
type UpdateStoreRequest struct {
	UserID      string  `json:"userId"`
	Name        *string `json:"name"`
	OwnerName   *string `json:"owner_name"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}
