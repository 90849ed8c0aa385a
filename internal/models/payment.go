package models

import "time"

type PaymentStatus string

const (
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSuccess    PaymentStatus = "success"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// Terminal reports whether no further status transition is possible.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusSuccess || s == PaymentStatusFailed
}

type PaymentMethod string

const (
	MethodUPI  PaymentMethod = "upi"
	MethodCard PaymentMethod = "card"
)

// Payment records one settlement attempt against an order. Amount and
// currency are copied from the order at creation time. The full card number
// and CVV are never stored; only the network and last four digits survive
// validation.
type Payment struct {
	ID               string        `json:"id" db:"id"`
	OrderID          string        `json:"order_id" db:"order_id"`
	MerchantID       string        `json:"merchant_id" db:"merchant_id"`
	Amount           int64         `json:"amount" db:"amount"`
	Currency         string        `json:"currency" db:"currency"`
	Method           PaymentMethod `json:"method" db:"method"`
	Status           PaymentStatus `json:"status" db:"status"`
	VPA              string        `json:"vpa,omitempty" db:"vpa"`
	CardNetwork      string        `json:"card_network,omitempty" db:"card_network"`
	CardLast4        string        `json:"card_last4,omitempty" db:"card_last4"`
	ErrorCode        string        `json:"error_code,omitempty" db:"error_code"`
	ErrorDescription string        `json:"error_description,omitempty" db:"error_description"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" db:"updated_at"`
}

// CardDetails is the card credential submitted with a payment. It only ever
// lives in the request; derived fields are persisted instead.
type CardDetails struct {
	Number      string `json:"number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	CVV         string `json:"cvv"`
	HolderName  string `json:"holder_name"`
}

type CreatePaymentRequest struct {
	OrderID string        `json:"order_id"`
	Method  PaymentMethod `json:"method"`
	VPA     string        `json:"vpa"`
	Card    *CardDetails  `json:"card"`
}

// PaymentResponse is the API view of a payment, shaped per method: UPI
// payments never expose card fields and card payments never expose the VPA.
type PaymentResponse struct {
	ID               string        `json:"id"`
	OrderID          string        `json:"order_id"`
	Amount           int64         `json:"amount"`
	Currency         string        `json:"currency"`
	Method           PaymentMethod `json:"method"`
	Status           PaymentStatus `json:"status"`
	VPA              string        `json:"vpa,omitempty"`
	CardNetwork      string        `json:"card_network,omitempty"`
	CardLast4        string        `json:"card_last4,omitempty"`
	ErrorCode        string        `json:"error_code,omitempty"`
	ErrorDescription string        `json:"error_description,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// ShapePayment builds the method-specific response view.
func ShapePayment(p *Payment) *PaymentResponse {
	resp := &PaymentResponse{
		ID:               p.ID,
		OrderID:          p.OrderID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Method:           p.Method,
		Status:           p.Status,
		ErrorCode:        p.ErrorCode,
		ErrorDescription: p.ErrorDescription,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}

	switch p.Method {
	case MethodUPI:
		resp.VPA = p.VPA
	case MethodCard:
		resp.CardNetwork = p.CardNetwork
		resp.CardLast4 = p.CardLast4
	}

	return resp
}

// Database schema
const PaymentSchema = `
CREATE TABLE IF NOT EXISTS payments (
    id VARCHAR(64) PRIMARY KEY,
    order_id VARCHAR(64) NOT NULL REFERENCES orders(id),
    merchant_id UUID NOT NULL REFERENCES merchants(id),
    amount BIGINT NOT NULL,
    currency VARCHAR(3) DEFAULT 'INR',
    method VARCHAR(20) NOT NULL,
    status VARCHAR(20) DEFAULT 'processing',
    vpa VARCHAR(255),
    card_network VARCHAR(20),
    card_last4 VARCHAR(4),
    error_code VARCHAR(50),
    error_description TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_payments_order_id ON payments(order_id);
CREATE INDEX IF NOT EXISTS idx_payments_status ON payments(status);
`
