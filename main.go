package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Schnretzl/e-commerce-api/controllers"
	"github.com/Schnretzl/e-commerce-api/database"
	"github.com/Schnretzl/e-commerce-api/middleware"
	"github.com/Schnretzl/e-commerce-api/repository"
	"github.com/Schnretzl/e-commerce-api/routes"
	servicepkg "github.com/Schnretzl/e-commerce-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment variables")
	}

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	dbCfg := database.Config{
		Host:     cfg.PostgresHost,
		Port:     cfg.PostgresPort,
		User:     cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		DBName:   cfg.PostgresDB,
		SSLMode:  cfg.PostgresSSLMode,
	}
	if err := database.Connect(dbCfg, logger); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close() //nolint:errcheck

	// DI chain
	customerRepo := repository.NewGormCustomerRepository(database.DB)
	accountRepo := repository.NewGormAccountRepository(database.DB)
	productRepo := repository.NewGormProductRepository(database.DB)
	orderRepo := repository.NewGormOrderRepository(database.DB)

	customerService := servicepkg.NewCustomerService(customerRepo, logger)
	accountService := servicepkg.NewAccountService(accountRepo, customerRepo, logger)
	productService := servicepkg.NewProductService(productRepo, logger)
	orderService := servicepkg.NewOrderService(orderRepo, logger)

	customerController := controllers.NewCustomerController(customerService, orderService)
	accountController := controllers.NewAccountController(accountService)
	productController := controllers.NewProductController(productService)
	orderController := controllers.NewOrderController(orderService)

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimitMiddleware())

	// Global request-logging middleware
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		logger.Info("request",
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
		)
	})

	// 30-second request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "e-commerce-api"})
	})

	routes.RegisterRoutes(r, customerController, accountController, productController, orderController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("E-commerce API started", zap.String("port", cfg.Port))
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
