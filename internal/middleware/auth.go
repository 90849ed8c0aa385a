package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/models"
)

const merchantContextKey = "merchant"

// MerchantLookup resolves an api key to a merchant.
type MerchantLookup interface {
	GetByAPIKey(ctx context.Context, apiKey string) (*models.Merchant, error)
}

// Auth gates merchant endpoints on the X-Api-Key/X-Api-Secret header pair.
// Missing credentials, an unknown key, a wrong secret and a lookup failure
// all produce the same response so nothing about stored credentials can be
// probed.
func Auth(merchants MerchantLookup, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-Api-Key")
		apiSecret := c.GetHeader("X-Api-Secret")

		if apiKey == "" || apiSecret == "" {
			unauthorized(c)
			return
		}

		merchant, err := merchants.GetByAPIKey(c.Request.Context(), apiKey)
		if err != nil {
			log.Debug("merchant lookup failed", zap.Error(err))
			unauthorized(c)
			return
		}

		if subtle.ConstantTimeCompare([]byte(merchant.APISecret), []byte(apiSecret)) != 1 {
			unauthorized(c)
			return
		}

		c.Set(merchantContextKey, merchant)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":        "AUTHENTICATION_ERROR",
			"description": "Invalid API credentials",
		},
	})
}

// MerchantFrom returns the merchant attached by Auth, or nil on public
// routes.
func MerchantFrom(c *gin.Context) *models.Merchant {
	v, ok := c.Get(merchantContextKey)
	if !ok {
		return nil
	}
	merchant, _ := v.(*models.Merchant)
	return merchant
}
