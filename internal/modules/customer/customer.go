package customer

import "time"

// Customer is a buyer known to a store, typically one who buys on credit.
type Customer struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	StoreID   string    `json:"store_id" db:"store_id"`
	Name      string    `json:"name" db:"name"`
	Phone     *string   `json:"phone" db:"phone"`
	Address   *string   `json:"address" db:"address"`
	Email     *string   `json:"email" db:"email"`
	Notes     *string   `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateCustomerRequest struct {
	UserID  string `json:"userId"`
	StoreID string `json:"storeId"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
}
