package promotion

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType is how a promotion's discount value is applied.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Promotion is a time-boxed discount offered by a store.
type Promotion struct {
	ID               string          `json:"id" db:"id"`
	UserID           string          `json:"user_id" db:"user_id"`
	StoreID          string          `json:"store_id" db:"store_id"`
	Name             string          `json:"name" db:"name"`
	Description      string          `json:"description" db:"description"`
	DiscountType     DiscountType    `json:"discount_type" db:"discount_type"`
	DiscountValue    decimal.Decimal `json:"discount_value" db:"discount_value"`
	MinOrderQuantity int             `json:"min_quantity" db:"min_order_quantity"`
	StartDate        *time.Time      `json:"start_date" db:"start_date"`
	EndDate          *time.Time      `json:"end_date" db:"end_date"`
	IsActive         bool            `json:"is_active" db:"is_active"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// CreatePromotionRequest is the payload for a manually created promotion.
type CreatePromotionRequest struct {
	UserID        string           `json:"userId"`
	StoreID       string           `json:"storeId"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	DiscountType  string           `json:"discount_type"`
	DiscountValue *decimal.Decimal `json:"discount_value"`
	MinQuantity   int              `json:"min_quantity,omitempty"`
	StartDate     *time.Time       `json:"start_date,omitempty"`
	EndDate       *time.Time       `json:"end_date,omitempty"`
}

// UpdatePromotionRequest holds a partial update; nil fields keep their stored value.
type UpdatePromotionRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	DiscountType  *string          `json:"discount_type"`
	DiscountValue *decimal.Decimal `json:"discount_value"`
	MinQuantity   *int             `json:"min_quantity"`
	StartDate     *time.Time       `json:"start_date"`
	EndDate       *time.Time       `json:"end_date"`
	IsActive      *bool            `json:"is_active"`
}
