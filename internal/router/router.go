// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/config"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/handlers"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/middleware"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/models"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/services"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(db, cfg)
	productService := services.NewProductService(db)
	brandService := services.NewBrandService(db)
	strategyService := services.NewStrategyService(cfg, productService, brandService)
	auditService := services.NewAuditService(productService)
	projectionService := services.NewProjectionService(productService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	brandHandler := handlers.NewBrandHandler(brandService)
	strategyHandler := handlers.NewStrategyHandler(strategyService)
	auditHandler := handlers.NewAuditHandler(auditService)
	projectionHandler := handlers.NewProjectionHandler(projectionService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.RequestLogMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Product routes
		products := v1.Group("/products")
		products.Use(middleware.AuthRequired())
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/summary", productHandler.GetInventorySummary)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
			products.POST("/:id/image", middleware.UploadRateLimit(), productHandler.UploadProductImage)
		}

		// Brand profile routes
		brand := v1.Group("/brand-profile")
		brand.Use(middleware.AuthRequired())
		{
			brand.GET("", brandHandler.GetProfile)
			brand.PUT("", brandHandler.UpsertProfile)
		}

		// Strategy workflow routes
		strategy := v1.Group("/strategy")
		strategy.Use(middleware.AuthRequired())
		{
			strategy.GET("", strategyHandler.GetStatus)
			strategy.POST("/select", strategyHandler.ToggleSelection)
			strategy.POST("/select-all", strategyHandler.SelectAll)
			strategy.POST("/clear", strategyHandler.ClearSelection)
			strategy.POST("/confirm", strategyHandler.Confirm)
			strategy.POST("/back", strategyHandler.Back)
			strategy.POST("/generate", strategyHandler.Generate)
			strategy.GET("/result", strategyHandler.GetResult)
			strategy.POST("/reset", strategyHandler.Reset)
		}

		// Audit routes
		audit := v1.Group("/audit")
		audit.Use(middleware.AuthRequired())
		{
			audit.POST("/run", auditHandler.RunAudit)
			audit.GET("/findings", auditHandler.GetFindings)
			audit.POST("/findings/:id/toggle", auditHandler.ToggleFinding)
		}

		// Analytics routes
		analytics := v1.Group("/analytics")
		analytics.Use(middleware.AuthRequired())
		{
			analytics.GET("/projection", projectionHandler.GetProjection)
		}

		// Category routes (public)
		categories := v1.Group("/categories")
		{
			categories.GET("", getCategoriesHandler)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}

// Helper handlers for simple endpoints
func getCategoriesHandler(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories":     models.ProductCategories,
		"business_types": models.BusinessTypes,
		"target_markets": models.TargetMarkets,
	})
}
