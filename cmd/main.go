package main

import (
	"catalog-service/internal/handler"
	"catalog-service/internal/middleware"
	"catalog-service/internal/repository"
	"catalog-service/pkg/config"
	"catalog-service/pkg/database"
	"catalog-service/pkg/logger"
	"catalog-service/pkg/password"
	"catalog-service/pkg/validator"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting catalog service...", zap.String("environment", cfg.Server.Env))

	// Open the database and run migrations
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established", zap.String("driver", cfg.Database.Driver))

	// Wire repositories and handlers
	productRepo := repository.NewProductRepository(db)
	sellerRepo := repository.NewSellerRepository(db)
	hasher := password.NewBcryptHasher()

	productHandler := handler.NewProductHandler(productRepo)
	sellerHandler := handler.NewSellerHandler(sellerRepo, hasher)
	authHandler := handler.NewAuthHandler(sellerRepo, hasher)

	// Initialize Echo framework
	e := echo.New()
	e.Validator = validator.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(prometheus.MetricsMiddleware())

	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)

	// Product catalog routes
	e.GET("/products", productHandler.ListProducts)
	e.GET("/products/:id", productHandler.GetProduct)
	e.POST("/add_product", productHandler.CreateProduct)
	e.PUT("/product/:id", productHandler.UpdateProduct)
	e.DELETE("/product/:id", productHandler.DeleteProduct)

	// Seller registration
	e.POST("/seller", sellerHandler.CreateSeller)

	// Authentication routes
	api := e.Group("/api/v1")
	api.POST("/login", authHandler.Login)

	// Get server port from configuration
	port := cfg.Server.Port

	// Start server
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
