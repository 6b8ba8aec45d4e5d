package sales

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/inventory"
	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/promotion"
	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

const (
	DefaultPaymentMethod = "cash"
	DefaultPaymentStatus = "completed"
)

// LineItem is one product-quantity-price entry of a sale.
// It is stored inside the sales.items JSONB column as {id, qty, price, name}.
type LineItem struct {
	ID    string          `json:"id"`
	Qty   int             `json:"qty"`
	Price decimal.Decimal `json:"price"`
	Name  string          `json:"name,omitempty"`
}

// UnmarshalJSON accepts numeric product ids and the legacy "nama" key.
func (li *LineItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    json.RawMessage `json:"id"`
		Qty   int             `json:"qty"`
		Price decimal.Decimal `json:"price"`
		Name  string          `json:"name"`
		Nama  string          `json:"nama"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id := bytes.TrimSpace(raw.ID)
	switch {
	case len(id) == 0 || bytes.Equal(id, []byte("null")):
		li.ID = ""
	case id[0] == '"':
		if err := json.Unmarshal(id, &li.ID); err != nil {
			return err
		}
	default:
		var n json.Number
		if err := json.Unmarshal(id, &n); err != nil {
			return fmt.Errorf("item id: %w", err)
		}
		li.ID = n.String()
	}

	li.Qty = raw.Qty
	li.Price = raw.Price
	li.Name = raw.Name
	if li.Name == "" {
		li.Name = raw.Nama
	}
	return nil
}

// LineItems maps to the items JSONB column.
type LineItems []LineItem

func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		l = LineItems{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *LineItems) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*l = LineItems{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("sales: unsupported type for items column")
	}
	return json.Unmarshal(b, l)
}

// Quantity sums the line quantities.
func (l LineItems) Quantity() int {
	n := 0
	for _, it := range l {
		n += it.Qty
	}
	return n
}

// CustomerInfo is the free-form, nullable customer_info JSONB column.
type CustomerInfo struct{ types.NullJSONText }

// NewCustomerInfo wraps raw JSON; empty input and null are stored as NULL.
func NewCustomerInfo(raw []byte) CustomerInfo {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return CustomerInfo{}
	}
	return CustomerInfo{types.NullJSONText{JSONText: types.JSONText(raw), Valid: true}}
}

func (c CustomerInfo) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return c.JSONText.MarshalJSON()
}

func (c *CustomerInfo) UnmarshalJSON(data []byte) error {
	*c = NewCustomerInfo(append([]byte(nil), data...))
	return nil
}

// Sale is a recorded sales transaction. TotalItems > 0 marks a completed
// sale; 0 marks a payment checkout placeholder.
type Sale struct {
	ID                  string          `json:"id" db:"id"`
	OrderID             string          `json:"order_id" db:"order_id"`
	UserID              string          `json:"user_id" db:"user_id"`
	StoreID             string          `json:"store_id" db:"store_id"`
	Items               LineItems       `json:"items" db:"items"`
	TotalAmount         decimal.Decimal `json:"total_amount" db:"total_amount"`
	TotalItems          int             `json:"total_items" db:"total_items"`
	PaymentMethod       string          `json:"payment_method" db:"payment_method"`
	PaymentStatus       string          `json:"payment_status" db:"payment_status"`
	CustomerInfo        CustomerInfo    `json:"customer_info" db:"customer_info"`
	MidtransToken       *string         `json:"midtrans_token,omitempty" db:"midtrans_token"`
	MidtransRedirectURL *string         `json:"midtrans_redirect_url,omitempty" db:"midtrans_redirect_url"`
	CreatedAt           time.Time       `json:"created_at" db:"created_at"`
}

// CreateSaleRequest is the body of POST /api/sales.
type CreateSaleRequest struct {
	UserID              string          `json:"userId"`
	StoreID             string          `json:"storeId"`
	OrderID             string          `json:"order_id,omitempty"`
	Items               []LineItem      `json:"items"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	TotalItems          int             `json:"total_items"`
	PaymentMethod       string          `json:"payment_method,omitempty"`
	PaymentStatus       string          `json:"payment_status,omitempty"`
	CustomerInfo        CustomerInfo    `json:"customer_info"`
	MidtransToken       string          `json:"midtrans_token,omitempty"`
	MidtransRedirectURL string          `json:"midtrans_redirect_url,omitempty"`
}

// StepStatus summarises a best-effort step.
type StepStatus string

const (
	StepOK       StepStatus = "ok"
	StepDegraded StepStatus = "degraded"
)

// Outcome is the result of recording a sale. Only Sale is sent to clients;
// the step reports describe the side effects that followed it.
type Outcome struct {
	Sale            *Sale
	Stock           inventory.Report
	StockStatus     StepStatus
	Promotions      promotion.Report
	PromotionStatus StepStatus
}

func statusOf(degraded bool) StepStatus {
	if degraded {
		return StepDegraded
	}
	return StepOK
}

// Totals aggregates completed sales over a period.
type Totals struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalTransactions int             `json:"totalTransactions"`
	TotalItems        int             `json:"totalItems"`
}

func (t *Totals) add(s Sale) {
	t.TotalRevenue = t.TotalRevenue.Add(s.TotalAmount)
	t.TotalTransactions++
	t.TotalItems += s.TotalItems
}

// Summary groups totals by today, yesterday, the last 7 and 30 days.
type Summary struct {
	Today     Totals `json:"today"`
	Yesterday Totals `json:"yesterday"`
	Week      Totals `json:"week"`
	Month     Totals `json:"month"`
}

// SummaryResult is the payload of GET /api/sales/summary.
type SummaryResult struct {
	Summary Summary `json:"summary"`
	Sales   []Sale  `json:"sales"`
}
