package payment

import (
	"github.com/shopspring/decimal"
)

// Payment method and status recorded on a checkout placeholder sale.
const (
	MethodQRIS    = "qris"
	StatusPending = "pending"
)

// Customer identifies the payer shown on the Midtrans payment page.
type Customer struct {
	FirstName string `json:"firstName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// CheckoutRequest is the body of POST /api/payments/checkout.
type CheckoutRequest struct {
	UserID   string           `json:"userId"`
	StoreID  string           `json:"storeId"`
	OrderID  string           `json:"orderId,omitempty"`
	Amount   *decimal.Decimal `json:"amount"`
	Customer *Customer        `json:"customer,omitempty"`
}

// CheckoutResponse carries what the front end needs to open Snap.
type CheckoutResponse struct {
	SnapToken   string `json:"snapToken"`
	RedirectURL string `json:"redirectUrl"`
	OrderID     string `json:"orderId"`
}

// ── Midtrans Snap wire types ──────────────────────────────────────────────────

type TransactionDetails struct {
	OrderID     string `json:"order_id"`
	GrossAmount int64  `json:"gross_amount"`
}

type CustomerDetails struct {
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// SnapRequest is the body of a Snap create-transaction call.
type SnapRequest struct {
	TransactionDetails TransactionDetails `json:"transaction_details"`
	CustomerDetails    CustomerDetails    `json:"customer_details"`
	EnabledPayments    []string           `json:"enabled_payments,omitempty"`
}

// SnapTransaction is the Snap response for a created transaction.
type SnapTransaction struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

type snapError struct {
	ErrorMessages []string `json:"error_messages"`
}
