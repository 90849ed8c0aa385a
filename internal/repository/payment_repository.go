package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/models"
)

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `
	id, order_id, merchant_id, amount, currency, method, status,
	COALESCE(vpa, ''), COALESCE(card_network, ''), COALESCE(card_last4, ''),
	COALESCE(error_code, ''), COALESCE(error_description, ''),
	created_at, updated_at
`

func scanPayment(scanner interface{ Scan(...interface{}) error }) (*models.Payment, error) {
	p := &models.Payment{}
	err := scanner.Scan(
		&p.ID,
		&p.OrderID,
		&p.MerchantID,
		&p.Amount,
		&p.Currency,
		&p.Method,
		&p.Status,
		&p.VPA,
		&p.CardNetwork,
		&p.CardLast4,
		&p.ErrorCode,
		&p.ErrorDescription,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment: %w", err)
	}
	return p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (
			id, order_id, merchant_id, amount, currency, method, status,
			vpa, card_network, card_last4, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.OrderID,
		payment.MerchantID,
		payment.Amount,
		payment.Currency,
		payment.Method,
		payment.Status,
		payment.VPA,
		payment.CardNetwork,
		payment.CardLast4,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateID
	}
	return err
}

// Finalize moves a payment to its terminal status. Error fields are set on
// failure and cleared on success.
func (r *PaymentRepository) Finalize(ctx context.Context, id string, status models.PaymentStatus, errorCode, errorDescription string) (*models.Payment, error) {
	query := `
		UPDATE payments
		SET status = $1, error_code = NULLIF($2, ''), error_description = NULLIF($3, ''), updated_at = $4
		WHERE id = $5
		RETURNING ` + paymentColumns

	return scanPayment(r.db.QueryRowContext(ctx, query,
		status,
		errorCode,
		errorDescription,
		time.Now(),
		id,
	))
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return scanPayment(r.db.QueryRowContext(ctx, query, id))
}

// ListByMerchant returns a merchant's payments, newest first.
func (r *PaymentRepository) ListByMerchant(ctx context.Context, merchantID string) ([]*models.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE merchant_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}
