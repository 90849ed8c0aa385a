package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/service"
)

// API error codes surfaced in the error envelope.
const (
	CodeBadRequest     = "BAD_REQUEST_ERROR"
	CodeAuthentication = "AUTHENTICATION_ERROR"
	CodeNotFound       = "NOT_FOUND_ERROR"
	CodeInvalidVPA     = "INVALID_VPA"
	CodeInvalidCard    = "INVALID_CARD"
	CodeExpiredCard    = "EXPIRED_CARD"
	CodeInternal       = "INTERNAL_ERROR"
)

func writeError(c *gin.Context, status int, code, description string) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":        code,
			"description": description,
		},
	})
}

// writeServiceError maps service sentinels onto HTTP responses. Anything
// unrecognized is a storage or programming fault and is reported generically.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidAmount):
		writeError(c, http.StatusBadRequest, CodeBadRequest, "amount must be at least 100")
	case errors.Is(err, service.ErrInvalidCurrency):
		writeError(c, http.StatusBadRequest, CodeBadRequest, "currency must be a 3-letter code")
	case errors.Is(err, service.ErrInvalidMethod):
		writeError(c, http.StatusBadRequest, CodeBadRequest, "Invalid payment method")
	case errors.Is(err, service.ErrInvalidVPA):
		writeError(c, http.StatusBadRequest, CodeInvalidVPA, "VPA format invalid")
	case errors.Is(err, service.ErrInvalidCard):
		writeError(c, http.StatusBadRequest, CodeInvalidCard, "Card validation failed")
	case errors.Is(err, service.ErrExpiredCard):
		writeError(c, http.StatusBadRequest, CodeExpiredCard, "Card expiry date invalid")
	case errors.Is(err, service.ErrOrderNotFound):
		writeError(c, http.StatusNotFound, CodeNotFound, "Order not found")
	case errors.Is(err, service.ErrPaymentNotFound):
		writeError(c, http.StatusNotFound, CodeNotFound, "Payment not found")
	default:
		writeError(c, http.StatusInternalServerError, CodeInternal, "Internal server error")
	}
}
