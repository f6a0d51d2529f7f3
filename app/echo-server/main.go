package main

import (
	"context"
	"fmt"
	"hotelPricing/app/echo-server/metrics"
	"hotelPricing/app/echo-server/router"
	"hotelPricing/business/inventory"
	"hotelPricing/business/pricing"
	"hotelPricing/internal/middleware"
	psqlRepo "hotelPricing/internal/repository/postgres"
	redisRepo "hotelPricing/internal/repository/redis"
	"hotelPricing/internal/rest"
	"hotelPricing/pkg/config"
	"hotelPricing/pkg/database"
	redisdb "hotelPricing/pkg/database/redis"
	"hotelPricing/pkg/logger"
	handlerMetrics "hotelPricing/pkg/metrics"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version, "env", cfg.App.Environment)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Redis is optional; without it every analysis is computed fresh
	var redisClient *redis.Client
	var recoCache *redisRepo.RecommendationCache
	if cfg.Redis.Enabled() {
		redisClient, err = redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, recommendation cache disabled", "error", err)
		} else {
			recoCache = redisRepo.NewRecommendationCache(redisClient)
			logger.Info("Redis connected successfully")
		}
	}

	metrics.Init()
	handlerMetrics.Init()

	// Init repo
	hotelRepo := psqlRepo.NewHotelRepository(db)
	roomRepo := psqlRepo.NewHotelRoomRepository(db)
	competitorRepo := psqlRepo.NewCompetitorRepository(db)
	eventRepo := psqlRepo.NewEventRepository(db)
	historyRepo := psqlRepo.NewEventHistoryRepository(db)
	pricingCfgRepo := psqlRepo.NewPricingConfigRepository(db)

	// Init service
	var cache pricing.RecommendationCache
	var invalidator inventory.CacheInvalidator
	if recoCache != nil {
		cache = recoCache
		invalidator = recoCache
	}

	pricingService := pricing.NewPricingService(
		hotelRepo,
		roomRepo,
		competitorRepo,
		eventRepo,
		historyRepo,
		pricingCfgRepo,
		cache,
		pricing.HaversineDistance{},
		pricingConfig(cfg),
	)
	inventoryService := inventory.NewInventoryService(hotelRepo, roomRepo, pricingService, invalidator)

	// Init handler
	pricingHandler := rest.NewPricingHandler(pricingService)
	pricingAdminHandler := rest.NewPricingAdminHandler(pricingService)
	hotelRoomHandler := rest.NewHotelRoomHandler(inventoryService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(middleware.RequestLogger())
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.ContextTimeoutWithConfig(echomiddleware.ContextTimeoutConfig{
		Skipper: router.IsRangeRoute,
		Timeout: cfg.Server.RequestTimeout,
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  cfg.Server.AllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPut},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.HeaderTraceID},
		ExposeHeaders: []string{middleware.HeaderTraceID},
	}))

	// Setup routes
	router.SetMetricsRoute(e)
	api := e.Group("/api/v1")
	router.SetPricingRoutes(api, pricingHandler, cfg.Server.RangeRequestTimeout)
	router.SetHotelRoomRoutes(api, hotelRoomHandler)
	router.SetPricingAdminRoutes(api, pricingAdminHandler)

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

	if err := redisdb.CloseRedisClient(redisClient); err != nil {
		logger.Error("Redis close error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("Server stopped")
}

// pricingConfig overlays the environment settings on the engine defaults.
func pricingConfig(cfg *config.Config) pricing.Config {
	pc := pricing.DefaultConfig()

	pc.Currency = cfg.Pricing.Currency
	pc.DefaultCompetitorPrice = cfg.Pricing.DefaultCompetitorPrice
	pc.DefaultRoomPrice = cfg.Pricing.DefaultRoomPrice
	pc.MarketAverageFallback = cfg.Pricing.MarketAverageFallback
	pc.MinPrice = cfg.Pricing.MinPrice
	pc.MaxPrice = cfg.Pricing.MaxPrice
	pc.StoreTimeout = cfg.Pricing.StoreTimeout
	pc.CompetitorPageSize = cfg.Pricing.CompetitorPageSize
	pc.BatchInterval = cfg.Pricing.BatchInterval
	pc.MaxBatchDays = cfg.Pricing.MaxBatchDays
	pc.CacheTTL = cfg.Redis.CacheTTL

	return pc
}
