package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/middleware"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/models"
)

// OrderService is what the order endpoints need from the service layer.
type OrderService interface {
	CreateOrder(ctx context.Context, merchantID string, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, id, merchantID string) (*models.Order, error)
	GetOrderPublic(ctx context.Context, id string) (*models.Order, error)
}

type OrderHandler struct {
	service OrderService
	logger  *zap.Logger
}

func NewOrderHandler(service OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

// CreateOrder handles POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, CodeBadRequest, "amount must be an integer in minor currency units")
		return
	}

	merchant := middleware.MerchantFrom(c)
	order, err := h.service.CreateOrder(c.Request.Context(), merchant.ID, &req)
	if err != nil {
		h.logger.Warn("order creation rejected", zap.Error(err))
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrder handles GET /api/v1/orders/:order_id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	merchant := middleware.MerchantFrom(c)

	order, err := h.service.GetOrder(c.Request.Context(), c.Param("order_id"), merchant.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetOrderPublic handles GET /api/v1/orders/:order_id/public with the
// reduced field set for the unauthenticated checkout page.
func (h *OrderHandler) GetOrderPublic(c *gin.Context) {
	order, err := h.service.GetOrderPublic(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PublicOrder(order))
}
