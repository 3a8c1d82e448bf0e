// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/javajoker/catalog-backend/internal/config"
	"github.com/javajoker/catalog-backend/internal/database"
	"github.com/javajoker/catalog-backend/internal/i18n"
	"github.com/javajoker/catalog-backend/internal/repository"
	"github.com/javajoker/catalog-backend/internal/repository/memory"
	"github.com/javajoker/catalog-backend/internal/repository/postgres"
	"github.com/javajoker/catalog-backend/internal/router"
	"github.com/javajoker/catalog-backend/internal/services"
	"github.com/javajoker/catalog-backend/internal/telemetry"
	"github.com/javajoker/catalog-backend/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logger := telemetry.NewLogger(cfg)

	ctx := context.Background()
	telem, err := telemetry.New(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telem.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Error shutting down telemetry")
		}
	}()

	// Initialize i18n
	if err := i18n.Initialize(); err != nil {
		logger.WithError(err).Fatal("Failed to initialize i18n")
	}

	repo, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize catalog store")
	}
	defer closeStore()

	productService := services.NewProductService(repo, logger, telem.Tracer(), telem.Meter())
	seedService := services.NewSeedService(productService, logger)
	storageService, err := services.NewStorageService(cfg.Storage, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize storage")
	}

	tokens := utils.NewTokenManager(cfg.Auth.SecretKey, cfg.Auth.AccessTokenTTL)
	authService := services.NewAuthService(cfg.Auth, tokens, logger)

	rateLimiter := router.NewRateLimiter(cfg.RateLimit)
	if rateLimiter != nil {
		defer rateLimiter.Stop()
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.Initialize(router.Dependencies{
		Config:         cfg,
		Logger:         logger,
		ProductService: productService,
		SeedService:    seedService,
		StorageService: storageService,
		AuthService:    authService,
		Tokens:         tokens,
		MetricsHandler: telem.MetricsHandler,
		RateLimiter:    rateLimiter,
	})

	handler := otelhttp.NewHandler(r, "catalog-api",
		otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
			return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
		}),
		otelhttp.WithTracerProvider(telem.TracerProvider),
		otelhttp.WithMeterProvider(telem.MeterProvider),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{
			"address":    srv.Addr,
			"api_prefix": cfg.Server.APIPrefix,
			"driver":     cfg.Database.Driver,
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("Shutting down server...")
	case err := <-serverErr:
		logger.WithError(err).Error("Server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server exited")
}

// openStore returns the configured catalog store and a function releasing it.
func openStore(cfg *config.Config, logger *logrus.Logger) (repository.ProductRepository, func(), error) {
	if cfg.Database.IsMemory() {
		logger.Warn("Using in-memory catalog store, data is lost on exit")
		return memory.NewProductRepository(), func() {}, nil
	}

	db, err := database.Initialize(cfg.Database, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := database.RunMigrations(db, logger); err != nil {
		database.Close(db, logger)
		return nil, nil, err
	}

	return postgres.NewProductRepository(db), func() { database.Close(db, logger) }, nil
}
