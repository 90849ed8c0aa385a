package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/models"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/repository"
)

// fakeOrderStore is an in-memory OrderStore.
type fakeOrderStore struct {
	mu           sync.Mutex
	orders       map[string]*models.Order
	dupRemaining int
	createCalls  int
}

func newFakeOrderStore(orders ...*models.Order) *fakeOrderStore {
	f := &fakeOrderStore{orders: make(map[string]*models.Order)}
	for _, o := range orders {
		f.orders[o.ID] = o
	}
	return f
}

func (f *fakeOrderStore) Create(_ context.Context, order *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.dupRemaining > 0 {
		f.dupRemaining--
		return repository.ErrDuplicateID
	}
	if _, exists := f.orders[order.ID]; exists {
		return repository.ErrDuplicateID
	}
	clone := *order
	f.orders[order.ID] = &clone
	return nil
}

func (f *fakeOrderStore) GetByID(_ context.Context, id string) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *order
	return &clone, nil
}

// fakePaymentStore is an in-memory PaymentStore.
type fakePaymentStore struct {
	mu           sync.Mutex
	payments     map[string]*models.Payment
	dupRemaining int
	createCalls  int
}

func newFakePaymentStore(payments ...*models.Payment) *fakePaymentStore {
	f := &fakePaymentStore{payments: make(map[string]*models.Payment)}
	for _, p := range payments {
		f.payments[p.ID] = p
	}
	return f
}

func (f *fakePaymentStore) Create(_ context.Context, payment *models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.dupRemaining > 0 {
		f.dupRemaining--
		return repository.ErrDuplicateID
	}
	if _, exists := f.payments[payment.ID]; exists {
		return repository.ErrDuplicateID
	}
	clone := *payment
	f.payments[payment.ID] = &clone
	return nil
}

func (f *fakePaymentStore) Finalize(_ context.Context, id string, status models.PaymentStatus, errorCode, errorDescription string) (*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.payments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	payment.Status = status
	payment.ErrorCode = errorCode
	payment.ErrorDescription = errorDescription
	clone := *payment
	return &clone, nil
}

func (f *fakePaymentStore) GetByID(_ context.Context, id string) (*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.payments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *payment
	return &clone, nil
}

func (f *fakePaymentStore) ListByMerchant(_ context.Context, merchantID string) ([]*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Payment
	for _, p := range f.payments {
		if p.MerchantID == merchantID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakePaymentStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.payments)
}

func testOrder(merchantID string, amount int64) *models.Order {
	return &models.Order{
		ID:         fmt.Sprintf("order_test%010d", amount),
		MerchantID: merchantID,
		Amount:     amount,
		Currency:   "INR",
		Notes:      map[string]string{},
		Status:     models.OrderStatusCreated,
	}
}
