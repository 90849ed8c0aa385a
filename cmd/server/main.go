package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/config"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/handler"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/middleware"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/repository"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/internal/service"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/pkg/database"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/pkg/logger"
	"github.com/saihemanth2006/Payment-Gateway-with-Multi-Method-Processing-and-Hosted-Checkout/pkg/redis"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log := logger.NewLogger("payment-gateway")
	if cfg.Environment == "development" {
		log = logger.NewDevelopmentLogger("payment-gateway")
	}
	defer log.Sync()

	// Initialize database
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Apply schema and seed the demo merchant before serving traffic.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repository.Migrate(ctx, db.DB); err != nil {
		cancel()
		log.Fatal("failed to migrate database", zap.Error(err))
	}
	if _, err := repository.SeedTestMerchant(ctx, db.DB, cfg); err != nil {
		cancel()
		log.Fatal("failed to seed test merchant", zap.Error(err))
	}
	cancel()

	// Redis is optional; without it the gateway just skips payment caching.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient = redis.NewClient(cfg.RedisURL)
		defer redisClient.Close()
	}

	// Initialize repositories
	merchantRepo := repository.NewMerchantRepository(db.DB)
	orderRepo := repository.NewOrderRepository(db.DB)
	paymentRepo := repository.NewPaymentRepository(db.DB)

	// Initialize services
	policy := service.SettlementFromConfig(cfg)
	if cfg.TestMode {
		log.Info("test mode enabled",
			zap.Duration("delay", cfg.TestDelay),
			zap.Bool("forced_success", cfg.TestPaymentSuccess))
	}
	paymentCache := service.NewPaymentCache(redisClient, log)
	orderService := service.NewOrderService(orderRepo, log)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo, policy, paymentCache, log)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	orderHandler := handler.NewOrderHandler(orderService, log)
	paymentHandler := handler.NewPaymentHandler(paymentService, log)
	testHandler := handler.NewTestHandler(merchantRepo, cfg)

	// Setup router
	router := setupRouter(merchantRepo, healthHandler, orderHandler, paymentHandler, testHandler, log)

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		// Payment creation deliberately holds the request for up to the
		// maximum settlement delay, so the write timeout must exceed it.
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("starting server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

func setupRouter(
	merchants *repository.MerchantRepository,
	healthHandler *handler.HealthHandler,
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
	testHandler *handler.TestHandler,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())

	// Health check
	router.GET("/health", healthHandler.Health)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middleware.Auth(merchants, log)

	// API routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/test/merchant", testHandler.GetTestMerchant)

		orders := v1.Group("/orders")
		{
			orders.POST("", auth, orderHandler.CreateOrder)
			orders.GET("/:order_id", auth, orderHandler.GetOrder)
			orders.GET("/:order_id/public", orderHandler.GetOrderPublic)
		}

		payments := v1.Group("/payments")
		{
			payments.POST("", auth, paymentHandler.CreatePayment)
			payments.POST("/public", paymentHandler.CreatePaymentPublic)
			payments.GET("", auth, paymentHandler.ListPayments)
			payments.GET("/:payment_id", auth, paymentHandler.GetPayment)
			payments.GET("/:payment_id/public", paymentHandler.GetPaymentPublic)
		}
	}

	return router
}
