package models

import "time"

// MinOrderAmount is the smallest accepted order amount in minor currency
// units (paise for INR).
const MinOrderAmount = 100

// DefaultCurrency is applied when an order omits the currency code.
const DefaultCurrency = "INR"

type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
)

// Order is a merchant's intent to collect a fixed amount. Amounts are
// integers in minor currency units throughout; no floating point.
type Order struct {
	ID         string            `json:"id" db:"id"`
	MerchantID string            `json:"merchant_id" db:"merchant_id"`
	Amount     int64             `json:"amount" db:"amount"`
	Currency   string            `json:"currency" db:"currency"`
	Receipt    string            `json:"receipt,omitempty" db:"receipt"`
	Notes      map[string]string `json:"notes" db:"notes"`
	Status     OrderStatus       `json:"status" db:"status"`
	CreatedAt  time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at" db:"updated_at"`
}

type CreateOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
}

// PublicOrderResponse is the reduced view served to the unauthenticated
// checkout page.
type PublicOrderResponse struct {
	ID         string            `json:"id"`
	MerchantID string            `json:"merchant_id"`
	Amount     int64             `json:"amount"`
	Currency   string            `json:"currency"`
	Receipt    string            `json:"receipt,omitempty"`
	Notes      map[string]string `json:"notes"`
	Status     OrderStatus       `json:"status"`
}

// PublicOrder projects an order onto the public field set.
func PublicOrder(o *Order) *PublicOrderResponse {
	return &PublicOrderResponse{
		ID:         o.ID,
		MerchantID: o.MerchantID,
		Amount:     o.Amount,
		Currency:   o.Currency,
		Receipt:    o.Receipt,
		Notes:      o.Notes,
		Status:     o.Status,
	}
}

// Database schema
const OrderSchema = `
CREATE TABLE IF NOT EXISTS orders (
    id VARCHAR(64) PRIMARY KEY,
    merchant_id UUID NOT NULL REFERENCES merchants(id),
    amount BIGINT NOT NULL CHECK (amount >= 100),
    currency VARCHAR(3) DEFAULT 'INR',
    receipt VARCHAR(255),
    notes JSONB,
    status VARCHAR(20) DEFAULT 'created',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_orders_merchant_id ON orders(merchant_id);
`
