package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/metrics"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/models"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/repository"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/pkg/identifier"
)

type OrderService struct {
	store  OrderStore
	logger *zap.Logger
}

func NewOrderService(store OrderStore, logger *zap.Logger) *OrderService {
	return &OrderService{
		store:  store,
		logger: logger,
	}
}

// CreateOrder validates and persists a new order for the merchant.
func (s *OrderService) CreateOrder(ctx context.Context, merchantID string, req *models.CreateOrderRequest) (*models.Order, error) {
	if req.Amount < models.MinOrderAmount {
		return nil, ErrInvalidAmount
	}

	currency := req.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}

	notes := req.Notes
	if notes == nil {
		notes = map[string]string{}
	}

	now := time.Now()
	order := &models.Order{
		MerchantID: merchantID,
		Amount:     req.Amount,
		Currency:   currency,
		Receipt:    req.Receipt,
		Notes:      notes,
		Status:     models.OrderStatusCreated,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// The primary key enforces uniqueness; on the (astronomically rare)
	// collision we generate a fresh id and try again.
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		order.ID = identifier.New(identifier.OrderPrefix)
		err := s.store.Create(ctx, order)
		if errors.Is(err, repository.ErrDuplicateID) {
			s.logger.Warn("order id collision, regenerating", zap.String("order_id", order.ID))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create order: %w", err)
		}

		metrics.OrdersCreated.Inc()
		s.logger.Info("order created",
			zap.String("order_id", order.ID),
			zap.String("merchant_id", merchantID),
			zap.Int64("amount", order.Amount),
			zap.String("currency", order.Currency))
		return order, nil
	}

	return nil, fmt.Errorf("failed to create order: exhausted id attempts")
}

// GetOrder returns the order only when it belongs to the requesting
// merchant. Ownership mismatch and nonexistence are indistinguishable to the
// caller.
func (s *OrderService) GetOrder(ctx context.Context, id, merchantID string) (*models.Order, error) {
	order, err := s.store.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order.MerchantID != merchantID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetOrderPublic returns the order without ownership enforcement; the
// handler serves the reduced public field set.
func (s *OrderService) GetOrderPublic(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.store.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return order, nil
}
