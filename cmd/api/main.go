package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Raymond9734/customer-directory-api/internal/cache"
	"github.com/Raymond9734/customer-directory-api/internal/config"
	"github.com/Raymond9734/customer-directory-api/internal/db"
	"github.com/Raymond9734/customer-directory-api/internal/handler"
	"github.com/Raymond9734/customer-directory-api/internal/repository"
	"github.com/Raymond9734/customer-directory-api/internal/service"
)

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.Level}))
	slog.SetDefault(logger)

	logger.Info("starting customer directory API server",
		slog.String("data_source", cfg.DataSource),
	)

	// Initialize repository
	var (
		customerRepo  repository.CustomerRepository
		databaseCheck handler.HealthChecker
	)

	switch cfg.DataSource {
	case config.DataSourcePostgres:
		database, err := db.New(db.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		})
		if err != nil {
			logger.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.Close()

		logger.Info("connected to database")

		customerRepo = repository.NewPostgresCustomerRepository(database.DB)
		databaseCheck = database

	default:
		customerRepo, err = repository.NewMemoryCustomerRepository()
		if err != nil {
			logger.Error("failed to load customer dataset", slog.String("error", err.Error()))
			os.Exit(1)
		}

		logger.Info("loaded embedded customer dataset")
	}

	// Connect to Redis cache
	var (
		responseCache cache.Cache
		cacheCheck    handler.HealthChecker
	)

	if cfg.Cache.Enabled() {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			URL:       cfg.Cache.RedisURL,
			KeyPrefix: cfg.Cache.KeyPrefix,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to Redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisCache.Close()

		responseCache = redisCache
		cacheCheck = redisCache
	}

	// Initialize services and handlers
	customerSvc := service.NewCustomerService(customerRepo, responseCache, cfg.Cache.TTL, logger)

	customerHandler := handler.NewCustomerHandler(customerSvc, logger)
	healthHandler := handler.NewHealthHandler(customerRepo, databaseCheck, cacheCheck, logger)

	r := handler.NewRouter(customerHandler, healthHandler, cfg.API.AllowOrigins, logger)

	// Create server
	addr := fmt.Sprintf(":%d", cfg.API.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("API server listening", slog.String("addr", addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Wait for interrupt signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)

	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown failed", slog.String("error", err.Error()))
			os.Exit(1)
		}

		logger.Info("server stopped gracefully")
	}
}
