package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/config"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/models"
)

// MerchantReader looks merchants up by email.
type MerchantReader interface {
	GetByEmail(ctx context.Context, email string) (*models.Merchant, error)
}

// TestHandler exposes the seeded demo merchant's credentials so the hosted
// checkout and dashboard can self-provision. Harmless here because the whole
// gateway is a simulation; a real deployment would not ship this endpoint.
type TestHandler struct {
	merchants MerchantReader
	cfg       *config.Config
}

func NewTestHandler(merchants MerchantReader, cfg *config.Config) *TestHandler {
	return &TestHandler{
		merchants: merchants,
		cfg:       cfg,
	}
}

// GetTestMerchant handles GET /api/v1/test/merchant
func (h *TestHandler) GetTestMerchant(c *gin.Context) {
	merchant, err := h.merchants.GetByEmail(c.Request.Context(), h.cfg.TestMerchantEmail)
	if err != nil {
		writeError(c, http.StatusNotFound, CodeNotFound, "Test merchant not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         merchant.ID,
		"email":      merchant.Email,
		"api_key":    merchant.APIKey,
		"api_secret": merchant.APISecret,
		"seeded":     true,
	})
}
