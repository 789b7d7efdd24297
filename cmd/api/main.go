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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gocatalog/catalog-api/internal/cache"
	"github.com/gocatalog/catalog-api/internal/config"
	"github.com/gocatalog/catalog-api/internal/database"
	"github.com/gocatalog/catalog-api/internal/handler"
	"github.com/gocatalog/catalog-api/internal/middleware"
	"github.com/gocatalog/catalog-api/internal/models"
	"github.com/gocatalog/catalog-api/internal/repository"
	"github.com/gocatalog/catalog-api/internal/service"
)

const version = "1.0.0"

// main is the application entrypoint for the product catalog service.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting catalog api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Bootstrap schema
	if err := database.EnsureSchema(db); err != nil {
		log.Error().Err(err).Msg("schema bootstrap failed")
		fmt.Fprintf(os.Stderr, "schema bootstrap failed: %v\n", err)
		os.Exit(1)
	}

	// 3b. Connect to Redis when a cache is configured
	var productCache *cache.ProductCache
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Error().Err(err).Msg("redis connection failed")
			fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		productCache = cache.NewProductCache(redisClient, cfg.CacheTTL)
		log.Info().Msg("product cache enabled")
	}

	// 4. Initialize repository and service
	productRepo := repository.NewProductRepository(db)
	productSvc := service.NewProductService(productRepo, productCache, models.Status(cfg.DefaultProductStatus))

	// 5. Initialize handlers
	productHandler := handler.NewProductHandler(productSvc)
	healthHandler := handler.NewHealthHandler(version)

	// 6. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORSAllowedHosts))
	router.Use(middleware.LoggingMiddleware())
	handler.RegisterRoutes(router, productHandler, healthHandler)

	// 7. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 8. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 9. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
