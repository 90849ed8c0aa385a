package service

import (
	"context"

	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/models"
)

// OrderStore is the slice of the order repository the services need.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
}

// PaymentStore is the slice of the payment repository the services need.
type PaymentStore interface {
	Create(ctx context.Context, payment *models.Payment) error
	Finalize(ctx context.Context, id string, status models.PaymentStatus, errorCode, errorDescription string) (*models.Payment, error)
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	ListByMerchant(ctx context.Context, merchantID string) ([]*models.Payment, error)
}

// maxIDAttempts bounds the insert-and-retry loop used when a generated id
// collides with an existing row.
const maxIDAttempts = 5
