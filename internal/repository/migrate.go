package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/config"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/models"
)

// Migrate applies the schema in one transaction. Every statement is
// idempotent, so re-running at each startup is safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration: %w", err)
	}
	defer tx.Rollback()

	for _, schema := range []string{
		models.MerchantSchema,
		models.OrderSchema,
		models.PaymentSchema,
	} {
		if _, err := tx.ExecContext(ctx, schema); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	return tx.Commit()
}

// SeedTestMerchant inserts the configured demo merchant unless a merchant
// with that email already exists. The hosted checkout fetches these
// credentials from the test endpoint.
func SeedTestMerchant(ctx context.Context, db *sql.DB, cfg *config.Config) (*models.Merchant, error) {
	repo := NewMerchantRepository(db)

	existing, err := repo.GetByEmail(ctx, cfg.TestMerchantEmail)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	merchant := &models.Merchant{
		ID:        uuid.New().String(),
		Name:      cfg.TestMerchantName,
		Email:     cfg.TestMerchantEmail,
		APIKey:    cfg.TestAPIKey,
		APISecret: cfg.TestAPISecret,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Create(ctx, merchant); err != nil {
		// Another instance may have seeded concurrently.
		if errors.Is(err, ErrDuplicateID) {
			return repo.GetByEmail(ctx, cfg.TestMerchantEmail)
		}
		return nil, fmt.Errorf("failed to seed test merchant: %w", err)
	}

	return merchant, nil
}
