// internal/router/router.go
package router

import (
	"context"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/javajoker/product-catalog/internal/config"
	"github.com/javajoker/product-catalog/internal/handlers"
	"github.com/javajoker/product-catalog/internal/metrics"
	"github.com/javajoker/product-catalog/internal/middleware"
	"github.com/javajoker/product-catalog/internal/repository"
	"github.com/javajoker/product-catalog/internal/services"
)

// Initialize wires repository, service and handlers for one process and
// returns the engine serving them. Background work started for the engine
// stops when ctx is cancelled.
func Initialize(ctx context.Context, db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	productRepository := repository.NewProductRepository(db)
	productService := services.NewProductService(productRepository)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)
	healthHandler := handlers.NewHealthHandler(db)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Middleware())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter := middleware.NewRateLimiter(ctx, rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		r.Use(limiter.Middleware())
	}

	r.GET("/health", healthHandler.Check)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Product routes
	products := r.Group("/products")
	{
		products.GET("", productHandler.GetAllProducts)
		products.POST("", productHandler.CreateProduct)
		products.PUT("", productHandler.UpdateProduct)
		products.GET("/brand-summary", productHandler.GetBrandSummary)
		products.GET("/search", productHandler.SearchProducts)
		products.GET("/count", productHandler.GetProductCount)
		products.GET("/:productKey", productHandler.GetProduct)
		products.DELETE("/:productKey", productHandler.DeleteProduct)
	}

	return r
}
