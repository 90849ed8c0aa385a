package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/middleware"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/models"
)

// PaymentService is what the payment endpoints need from the lifecycle
// engine.
type PaymentService interface {
	CreatePayment(ctx context.Context, merchantID string, req *models.CreatePaymentRequest) (*models.PaymentResponse, error)
	GetPayment(ctx context.Context, id, merchantID string) (*models.PaymentResponse, error)
	GetPaymentPublic(ctx context.Context, id string) (*models.PaymentResponse, error)
	ListPayments(ctx context.Context, merchantID string) ([]*models.PaymentResponse, error)
}

type PaymentHandler struct {
	service PaymentService
	logger  *zap.Logger
}

func NewPaymentHandler(service PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  logger,
	}
}

// CreatePayment handles POST /api/v1/payments. The response is 201 even for
// payments that settle as failed: the API call succeeded, the payment did
// not.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, CodeBadRequest, "malformed payment request")
		return
	}

	merchant := middleware.MerchantFrom(c)
	payment, err := h.service.CreatePayment(c.Request.Context(), merchant.ID, &req)
	if err != nil {
		h.logger.Warn("payment rejected", zap.Error(err))
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// CreatePaymentPublic handles POST /api/v1/payments/public. No merchant
// auth: the checkout page is unauthenticated, and any holder of an order id
// may pay against it.
func (h *PaymentHandler) CreatePaymentPublic(c *gin.Context) {
	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, CodeBadRequest, "malformed payment request")
		return
	}

	payment, err := h.service.CreatePayment(c.Request.Context(), "", &req)
	if err != nil {
		h.logger.Warn("public payment rejected", zap.Error(err))
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetPayment handles GET /api/v1/payments/:payment_id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	merchant := middleware.MerchantFrom(c)

	payment, err := h.service.GetPayment(c.Request.Context(), c.Param("payment_id"), merchant.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// GetPaymentPublic handles GET /api/v1/payments/:payment_id/public, the
// checkout page's status poll.
func (h *PaymentHandler) GetPaymentPublic(c *gin.Context) {
	payment, err := h.service.GetPaymentPublic(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// ListPayments handles GET /api/v1/payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	merchant := middleware.MerchantFrom(c)

	payments, err := h.service.ListPayments(c.Request.Context(), merchant.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}
