package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/models"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/service"
)

type stubPaymentService struct {
	resp *models.PaymentResponse
	list []*models.PaymentResponse
	err  error

	gotMerchantID string
}

func (s *stubPaymentService) CreatePayment(_ context.Context, merchantID string, _ *models.CreatePaymentRequest) (*models.PaymentResponse, error) {
	s.gotMerchantID = merchantID
	return s.resp, s.err
}

func (s *stubPaymentService) GetPayment(_ context.Context, _, merchantID string) (*models.PaymentResponse, error) {
	s.gotMerchantID = merchantID
	return s.resp, s.err
}

func (s *stubPaymentService) GetPaymentPublic(context.Context, string) (*models.PaymentResponse, error) {
	return s.resp, s.err
}

func (s *stubPaymentService) ListPayments(_ context.Context, merchantID string) ([]*models.PaymentResponse, error) {
	s.gotMerchantID = merchantID
	return s.list, s.err
}

// fakeAuth injects a merchant the way middleware.Auth does, without a store.
func fakeAuth(merchant *models.Merchant) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("merchant", merchant)
		c.Next()
	}
}

func paymentRouter(svc PaymentService, merchant *models.Merchant) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPaymentHandler(svc, zap.NewNop())

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/payments", fakeAuth(merchant), h.CreatePayment)
	v1.POST("/payments/public", h.CreatePaymentPublic)
	v1.GET("/payments", fakeAuth(merchant), h.ListPayments)
	v1.GET("/payments/:payment_id", fakeAuth(merchant), h.GetPayment)
	v1.GET("/payments/:payment_id/public", h.GetPaymentPublic)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) (code string) {
	t.Helper()
	var body struct {
		Error struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body %q: %v", w.Body.String(), err)
	}
	return body.Error.Code
}

var testMerchant = &models.Merchant{ID: "merchant-1", APIKey: "key", APISecret: "secret"}

func TestCreatePaymentResponses(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Invalid VPA",
			svcErr:     service.ErrInvalidVPA,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeInvalidVPA,
		},
		{
			name:       "Invalid card",
			svcErr:     service.ErrInvalidCard,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeInvalidCard,
		},
		{
			name:       "Expired card",
			svcErr:     service.ErrExpiredCard,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeExpiredCard,
		},
		{
			name:       "Unknown method",
			svcErr:     service.ErrInvalidMethod,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeBadRequest,
		},
		{
			name:       "Missing order",
			svcErr:     service.ErrOrderNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := paymentRouter(&stubPaymentService{err: tt.svcErr}, testMerchant)
			w := doJSON(t, router, http.MethodPost, "/api/v1/payments", models.CreatePaymentRequest{
				OrderID: "order_abc",
				Method:  models.MethodUPI,
				VPA:     "user@bank",
			})

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if code := decodeError(t, w); code != tt.wantCode {
				t.Errorf("error code = %s, want %s", code, tt.wantCode)
			}
		})
	}
}

func TestCreatePaymentSuccess(t *testing.T) {
	svc := &stubPaymentService{resp: &models.PaymentResponse{
		ID:     "pay_abc",
		Status: models.PaymentStatusSuccess,
		Method: models.MethodUPI,
		VPA:    "user@bank",
	}}
	router := paymentRouter(svc, testMerchant)

	w := doJSON(t, router, http.MethodPost, "/api/v1/payments", models.CreatePaymentRequest{
		OrderID: "order_abc",
		Method:  models.MethodUPI,
		VPA:     "user@bank",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if svc.gotMerchantID != "merchant-1" {
		t.Errorf("merchant id passed to service = %q, want merchant-1", svc.gotMerchantID)
	}

	var resp models.PaymentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "pay_abc" {
		t.Errorf("payment id = %s, want pay_abc", resp.ID)
	}
}

func TestCreatePaymentPublicPassesEmptyMerchant(t *testing.T) {
	svc := &stubPaymentService{resp: &models.PaymentResponse{ID: "pay_abc"}, gotMerchantID: "sentinel"}
	router := paymentRouter(svc, testMerchant)

	w := doJSON(t, router, http.MethodPost, "/api/v1/payments/public", models.CreatePaymentRequest{
		OrderID: "order_abc",
		Method:  models.MethodUPI,
		VPA:     "user@bank",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if svc.gotMerchantID != "" {
		t.Errorf("public path must not attribute a merchant, got %q", svc.gotMerchantID)
	}
}

func TestCreatePaymentMalformedBody(t *testing.T) {
	router := paymentRouter(&stubPaymentService{}, testMerchant)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if code := decodeError(t, w); code != CodeBadRequest {
		t.Errorf("error code = %s, want %s", code, CodeBadRequest)
	}
}

func TestGetPaymentNotFound(t *testing.T) {
	router := paymentRouter(&stubPaymentService{err: service.ErrPaymentNotFound}, testMerchant)

	w := doJSON(t, router, http.MethodGet, "/api/v1/payments/pay_missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if code := decodeError(t, w); code != CodeNotFound {
		t.Errorf("error code = %s, want %s", code, CodeNotFound)
	}
}

func TestListPaymentsUsesMerchantFromContext(t *testing.T) {
	svc := &stubPaymentService{list: []*models.PaymentResponse{{ID: "pay_1"}, {ID: "pay_2"}}}
	router := paymentRouter(svc, testMerchant)

	w := doJSON(t, router, http.MethodGet, "/api/v1/payments", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if svc.gotMerchantID != "merchant-1" {
		t.Errorf("merchant id = %q, want merchant-1", svc.gotMerchantID)
	}

	var list []*models.PaymentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("len(list) = %d, want 2", len(list))
	}
}
