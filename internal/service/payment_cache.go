package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/models"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/pkg/redis"
)

// PaymentCache memoizes shaped terminal payments in Redis so the checkout
// page's status polling doesn't hit postgres on every tick. Terminal
// payments are immutable, which makes them safe to cache. A nil *PaymentCache
// is valid and disables caching; the gateway runs fine without Redis.
type PaymentCache struct {
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewPaymentCache(client *redis.Client, logger *zap.Logger) *PaymentCache {
	return &PaymentCache{
		redis:  client,
		ttl:    15 * time.Minute,
		logger: logger,
	}
}

func (c *PaymentCache) Get(ctx context.Context, id string) *models.PaymentResponse {
	if c == nil || c.redis == nil {
		return nil
	}

	data, err := c.redis.Get(ctx, c.key(id))
	if err != nil {
		return nil
	}

	var resp models.PaymentResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		c.logger.Warn("discarding undecodable cached payment",
			zap.String("payment_id", id), zap.Error(err))
		return nil
	}
	return &resp
}

func (c *PaymentCache) Set(ctx context.Context, resp *models.PaymentResponse) {
	if c == nil || c.redis == nil {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return
	}

	if err := c.redis.Set(ctx, c.key(resp.ID), data, c.ttl); err != nil {
		// Cache writes are best effort.
		c.logger.Warn("failed to cache payment",
			zap.String("payment_id", resp.ID), zap.Error(err))
	}
}

func (c *PaymentCache) key(id string) string {
	return fmt.Sprintf("payment:%s", id)
}
