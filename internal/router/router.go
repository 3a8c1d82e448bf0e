// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/javajoker/catalog-backend/internal/config"
	"github.com/javajoker/catalog-backend/internal/handlers"
	"github.com/javajoker/catalog-backend/internal/middleware"
	"github.com/javajoker/catalog-backend/internal/services"
	"github.com/javajoker/catalog-backend/internal/utils"
)

const Version = "1.0.0"

// Dependencies are the services the HTTP layer is built on.
type Dependencies struct {
	Config         *config.Config
	Logger         *logrus.Logger
	ProductService *services.ProductService
	SeedService    *services.SeedService
	StorageService *services.StorageService
	AuthService    *services.AuthService
	Tokens         *utils.TokenManager
	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
	// RateLimiter is applied to every route when set.
	RateLimiter *middleware.RateLimiter
}

// NewRateLimiter builds the per-client limiter from config, or nil when
// limiting is disabled.
func NewRateLimiter(cfg config.RateLimitConfig) *middleware.RateLimiter {
	if cfg.RequestsPerSecond <= 0 {
		return nil
	}
	return middleware.NewRateLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
}

func Initialize(deps Dependencies) *gin.Engine {
	cfg := deps.Config

	productHandler := handlers.NewProductHandler(deps.ProductService, deps.StorageService)
	seedHandler := handlers.NewSeedHandler(deps.SeedService)
	healthHandler := handlers.NewHealthHandler(deps.ProductService, Version)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Middleware())
	}

	r.GET("/health", healthHandler.Health)
	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	api := r.Group(cfg.Server.APIPrefix)

	// Mutating routes need an admin token when auth is enabled
	protected := []gin.HandlerFunc{}
	if cfg.Auth.Enabled {
		protected = append(protected, middleware.AuthRequired(deps.Tokens), middleware.AdminRequired())

		authHandler := handlers.NewAuthHandler(deps.AuthService)
		api.POST("/auth/login", authHandler.Login)
	}

	products := api.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:term", productHandler.GetProduct)

		admin := products.Group("", protected...)
		{
			admin.POST("", productHandler.CreateProduct)
			admin.POST("/images", productHandler.UploadProductImages)
			admin.PATCH("/:id", productHandler.UpdateProduct)
			admin.DELETE("/:id", productHandler.DeleteProduct)
		}
	}

	seedChain := append(append([]gin.HandlerFunc{}, protected...), seedHandler.RunSeed)
	api.GET("/seed", seedChain...)

	// Locally stored uploads
	if deps.StorageService != nil && deps.StorageService.IsLocal() {
		r.Static("/uploads", cfg.Storage.LocalDir)
	}

	return r
}
