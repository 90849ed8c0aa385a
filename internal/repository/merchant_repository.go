package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/models"
)

type MerchantRepository struct {
	db *sql.DB
}

func NewMerchantRepository(db *sql.DB) *MerchantRepository {
	return &MerchantRepository{db: db}
}

const merchantColumns = `
	id, name, email, api_key, api_secret,
	COALESCE(webhook_url, ''), is_active, created_at, updated_at
`

func scanMerchant(row *sql.Row) (*models.Merchant, error) {
	m := &models.Merchant{}
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.APIKey,
		&m.APISecret,
		&m.WebhookURL,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan merchant: %w", err)
	}
	return m, nil
}

// GetByAPIKey loads a merchant by its api key. Secret comparison happens in
// the auth middleware, not in SQL, so a wrong secret and a missing key are
// indistinguishable by timing at this layer.
func (r *MerchantRepository) GetByAPIKey(ctx context.Context, apiKey string) (*models.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE api_key = $1 AND is_active`
	return scanMerchant(r.db.QueryRowContext(ctx, query, apiKey))
}

// GetByEmail loads a merchant by email. Used by seeding and the test
// credentials endpoint.
func (r *MerchantRepository) GetByEmail(ctx context.Context, email string) (*models.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE email = $1`
	return scanMerchant(r.db.QueryRowContext(ctx, query, email))
}

func (r *MerchantRepository) Create(ctx context.Context, m *models.Merchant) error {
	query := `
		INSERT INTO merchants (id, name, email, api_key, api_secret, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.Name,
		m.Email,
		m.APIKey,
		m.APISecret,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateID
	}
	return err
}
