package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/models"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	notes, err := json.Marshal(order.Notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}

	query := `
		INSERT INTO orders (id, merchant_id, amount, currency, receipt, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.db.ExecContext(ctx, query,
		order.ID,
		order.MerchantID,
		order.Amount,
		order.Currency,
		order.Receipt,
		notes,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateID
	}
	return err
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	query := `
		SELECT id, merchant_id, amount, currency, COALESCE(receipt, ''),
		       COALESCE(notes, '{}'), status, created_at, updated_at
		FROM orders WHERE id = $1
	`

	order := &models.Order{}
	var notes []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.MerchantID,
		&order.Amount,
		&order.Currency,
		&order.Receipt,
		&notes,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}

	if err := json.Unmarshal(notes, &order.Notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}

	return order, nil
}
