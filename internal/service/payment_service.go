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
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/validation"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/pkg/identifier"
)

// Failure details attached to payments the settlement policy declines.
const (
	failureCode        = "PAYMENT_FAILED"
	failureDescription = "Payment processing failed"
)

// PaymentService runs the payment lifecycle: validate, admit as processing,
// suspend for the settlement delay, resolve, finalize.
type PaymentService struct {
	payments PaymentStore
	orders   OrderStore
	policy   SettlementPolicy
	cache    *PaymentCache
	logger   *zap.Logger
}

func NewPaymentService(payments PaymentStore, orders OrderStore, policy SettlementPolicy, cache *PaymentCache, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		payments: payments,
		orders:   orders,
		policy:   policy,
		cache:    cache,
		logger:   logger,
	}
}

// CreatePayment settles a payment against an order and returns the shaped
// terminal record. merchantID is empty on the public (checkout) path, which
// deliberately skips the ownership check; the payment is still attributed to
// the order's merchant.
func (s *PaymentService) CreatePayment(ctx context.Context, merchantID string, req *models.CreatePaymentRequest) (*models.PaymentResponse, error) {
	order, err := s.orders.GetByID(ctx, req.OrderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if merchantID != "" && order.MerchantID != merchantID {
		return nil, ErrOrderNotFound
	}

	// Validate credentials before anything is persisted.
	var vpa, cardNetwork, cardLast4 string
	switch req.Method {
	case models.MethodUPI:
		if !validation.ValidateVPA(req.VPA) {
			metrics.PaymentValidationFailures.WithLabelValues("invalid_vpa").Inc()
			return nil, ErrInvalidVPA
		}
		vpa = req.VPA
	case models.MethodCard:
		if req.Card == nil || !validation.ValidateLuhn(req.Card.Number) {
			metrics.PaymentValidationFailures.WithLabelValues("invalid_card").Inc()
			return nil, ErrInvalidCard
		}
		if !validation.ValidateExpiry(req.Card.ExpiryMonth, req.Card.ExpiryYear) {
			metrics.PaymentValidationFailures.WithLabelValues("expired_card").Inc()
			return nil, ErrExpiredCard
		}
		cardNetwork = validation.CardNetwork(req.Card.Number)
		cardLast4 = validation.CardLast4(req.Card.Number)
	default:
		metrics.PaymentValidationFailures.WithLabelValues("invalid_method").Inc()
		return nil, ErrInvalidMethod
	}

	// Admit: persist the processing record with amount/currency copied from
	// the order.
	now := time.Now()
	payment := &models.Payment{
		OrderID:     order.ID,
		MerchantID:  order.MerchantID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Method:      req.Method,
		Status:      models.PaymentStatusProcessing,
		VPA:         vpa,
		CardNetwork: cardNetwork,
		CardLast4:   cardLast4,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.admit(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("payment admitted",
		zap.String("payment_id", payment.ID),
		zap.String("order_id", order.ID),
		zap.String("method", string(req.Method)))

	// Suspend for the simulated settlement latency. Each request runs in
	// its own goroutine, so this never stalls unrelated endpoints.
	delay := s.policy.Delay(req.Method)
	timer := time.NewTimer(delay)
	defer timer.Stop()
	<-timer.C

	success := s.policy.Outcome(req.Method)

	// Finalize on a background context: an admitted payment must reach a
	// terminal state even if the client has gone away.
	final, err := s.finalize(context.Background(), payment.ID, success)
	if err != nil {
		return nil, err
	}

	return models.ShapePayment(final), nil
}

func (s *PaymentService) admit(ctx context.Context, payment *models.Payment) error {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		payment.ID = identifier.New(identifier.PaymentPrefix)
		err := s.payments.Create(ctx, payment)
		if errors.Is(err, repository.ErrDuplicateID) {
			s.logger.Warn("payment id collision, regenerating", zap.String("payment_id", payment.ID))
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}
		return nil
	}
	return fmt.Errorf("failed to create payment: exhausted id attempts")
}

func (s *PaymentService) finalize(ctx context.Context, id string, success bool) (*models.Payment, error) {
	status := models.PaymentStatusSuccess
	errorCode, errorDescription := "", ""
	if !success {
		status = models.PaymentStatusFailed
		errorCode = failureCode
		errorDescription = failureDescription
	}

	final, err := s.payments.Finalize(ctx, id, status, errorCode, errorDescription)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize payment: %w", err)
	}

	metrics.PaymentsTotal.WithLabelValues(string(final.Method), string(final.Status)).Inc()
	s.logger.Info("payment finalized",
		zap.String("payment_id", final.ID),
		zap.String("status", string(final.Status)))

	// Terminal payments never change again; prime the cache for the
	// checkout page's status polling.
	s.cache.Set(ctx, models.ShapePayment(final))

	return final, nil
}

// GetPayment returns the merchant's payment or ErrPaymentNotFound; a payment
// owned by another merchant looks identical to a missing one.
func (s *PaymentService) GetPayment(ctx context.Context, id, merchantID string) (*models.PaymentResponse, error) {
	payment, err := s.payments.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}
	if payment.MerchantID != merchantID {
		return nil, ErrPaymentNotFound
	}
	return models.ShapePayment(payment), nil
}

// GetPaymentPublic serves the unauthenticated status poll, preferring the
// cache of terminal payments.
func (s *PaymentService) GetPaymentPublic(ctx context.Context, id string) (*models.PaymentResponse, error) {
	if cached := s.cache.Get(ctx, id); cached != nil {
		return cached, nil
	}

	payment, err := s.payments.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	shaped := models.ShapePayment(payment)
	if payment.Status.Terminal() {
		s.cache.Set(ctx, shaped)
	}
	return shaped, nil
}

// ListPayments returns the merchant's payments, newest first.
func (s *PaymentService) ListPayments(ctx context.Context, merchantID string) ([]*models.PaymentResponse, error) {
	payments, err := s.payments.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	shaped := make([]*models.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		shaped = append(shaped, models.ShapePayment(p))
	}
	return shaped, nil
}
