package debt

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status of a customer debt.
type Status string

const (
	StatusUnpaid  Status = "unpaid"
	StatusPartial Status = "partial"
	StatusPaid    Status = "paid"
)

// Debt is money a customer owes a store.
type Debt struct {
	ID              string          `json:"id" db:"id"`
	UserID          string          `json:"user_id" db:"user_id"`
	StoreID         string          `json:"store_id" db:"store_id"`
	CustomerID      *string         `json:"customer_id" db:"customer_id"`
	CustomerName    string          `json:"customer_name" db:"customer_name"`
	CustomerPhone   *string         `json:"customer_phone" db:"customer_phone"`
	CustomerAddress *string         `json:"customer_address" db:"customer_address"`
	Amount          decimal.Decimal `json:"amount" db:"total_amount"`
	AmountPaid      decimal.Decimal `json:"amount_paid" db:"paid_amount"`
	Remaining       decimal.Decimal `json:"remaining" db:"remaining_amount"`
	Status          Status          `json:"status" db:"status"`
	DueDate         *time.Time      `json:"due_date" db:"due_date"`
	Description     string          `json:"description" db:"notes"`
	LastPaymentDate *time.Time      `json:"last_payment_date" db:"last_payment_date"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

type CreateDebtRequest struct {
	UserID          string           `json:"userId"`
	StoreID         string           `json:"storeId"`
	CustomerName    string           `json:"customer_name"`
	CustomerPhone   string           `json:"customer_phone,omitempty"`
	CustomerAddress string           `json:"customer_address,omitempty"`
	Description     string           `json:"description,omitempty"`
	Amount          *decimal.Decimal `json:"amount"`
	DueDate         *time.Time       `json:"due_date,omitempty"`
}

// UpdateDebtRequest holds a partial update; nil fields keep their stored value.
type UpdateDebtRequest struct {
	CustomerName    *string          `json:"customer_name"`
	CustomerPhone   *string          `json:"customer_phone"`
	CustomerAddress *string          `json:"customer_address"`
	Description     *string          `json:"description"`
	Amount          *decimal.Decimal `json:"amount"`
	AmountPaid      *decimal.Decimal `json:"amount_paid"`
	DueDate         *time.Time       `json:"due_date"`
	Status          *Status          `json:"status"`
}

// statusFor derives the status implied by the amounts.
func statusFor(total, paid decimal.Decimal) Status {
	switch {
	case paid.GreaterThanOrEqual(total):
		return StatusPaid
	case paid.IsPositive():
		return StatusPartial
	default:
		return StatusUnpaid
	}
}
