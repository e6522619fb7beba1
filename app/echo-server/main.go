package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/app/echo-server/router"
	"storefront/business/cart"
	"storefront/business/category"
	"storefront/business/orders"
	"storefront/business/product"
	"storefront/business/recommendation"
	userService "storefront/business/user"
	"storefront/internal/middleware"
	psqlRepo "storefront/internal/repository/postgres"
	redisRepo "storefront/internal/repository/redis"
	"storefront/internal/rest"
	"storefront/pkg/config"
	"storefront/pkg/database"
	redisdb "storefront/pkg/database/redis"
	"storefront/pkg/logger"
	"storefront/pkg/metrics"
	"storefront/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting storefront", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey, cfg.JWT.TTL)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Catalog cache is optional; without Redis every request reads Postgres.
	var (
		recoCache    recommendation.CatalogCache
		productCache product.CatalogCache
		ordersCache  orders.CatalogCache
	)
	if cfg.Redis.Enabled {
		redisClient, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, catalog cache disabled", "error", err)
		} else {
			defer redisdb.CloseRedisClient(redisClient)
			catalogCache := redisRepo.NewCatalogCache(redisClient, cfg.Redis.CatalogTTL)
			recoCache, productCache, ordersCache = catalogCache, catalogCache, catalogCache
			logger.Info("Redis connected successfully")
		}
	}

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	productsRepo := psqlRepo.NewProductRepository(db)
	viewsRepo := psqlRepo.NewProductViewRepository(db)
	cartRepo := psqlRepo.NewCartRepository(db)
	categoryRepo := psqlRepo.NewCategoryRepository(db)

	// Init service
	userService := userService.NewUserService(userRepo, validate)
	productService := product.NewProductService(productsRepo, viewsRepo, productCache)
	cartService := cart.NewCartService(cartRepo, productsRepo)
	ordersService := orders.NewOrdersService(ordersRepo, productsRepo, ordersCache)

	engine := recommendation.NewEngine(recommendation.DefaultConfig())
	categoryService := category.NewCategoryService(categoryRepo, engine.Config().AllowedCategories)
	recoService := recommendation.NewService(
		engine,
		productsRepo,
		viewsRepo,
		cartRepo,
		ordersRepo,
		recoCache,
		recommendation.ServiceConfig{
			DefaultLimit:  cfg.Recommendation.DefaultLimit,
			MaxLimit:      cfg.Recommendation.MaxLimit,
			MaxPriceCents: cfg.Recommendation.MaxPriceCents,
			ContentWeight: cfg.Recommendation.ContentWeight,
			CollabWeight:  cfg.Recommendation.CollabWeight,
			FetchTimeout:  cfg.Recommendation.FetchTimeout,
		},
	)

	// Init handler
	userHandler := rest.NewUserHandler(userService)
	productHandler := rest.NewProductHandler(productService)
	cartHandler := rest.NewCartHandler(cartService)
	ordersHandler := rest.NewOrdersHandler(ordersService)
	recoHandler := rest.NewRecommendationHandler(recoService)
	categoryHandler := rest.NewCategoryHandler(categoryService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderXRequestID},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler)
	router.SetupProductRoutes(api, productHandler)
	router.SetupCartRoutes(api, cartHandler)
	router.SetOrdersRoutes(api, ordersHandler)
	router.SetRecommendationRoutes(api, recoHandler)
	router.SetupCategoryRoutes(api, categoryHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
