package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type HealthHandler struct {
	db HealthChecker
}

func NewHealthHandler(db HealthChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health. A broken database is reported in the body,
// never as an HTTP error, so load balancers keep the process in rotation
// while it reconnects.
func (h *HealthHandler) Health(c *gin.Context) {
	database := "disconnected"
	if h.db.Healthy(c.Request.Context()) {
		database = "connected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
