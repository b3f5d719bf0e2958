package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/blogscout/search-api/api/health"
	"github.com/blogscout/search-api/api/history"
	"github.com/blogscout/search-api/api/search"
	"github.com/blogscout/search-api/api/types"
	"github.com/blogscout/search-api/api/version"
	_ "github.com/blogscout/search-api/docs/swagger"
	"github.com/blogscout/search-api/internal/services/blogsearch"
	historyService "github.com/blogscout/search-api/internal/services/history"
	"github.com/blogscout/search-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Load config for API routes
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Initialize services if not already set
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Initialize blog search client if not set
	if deps.SearchClient == nil {
		deps.SearchClient = blogsearch.NewClient(blogsearch.Config{
			APIKey:    cfg.BlogSearch.APIKey,
			BaseURL:   cfg.BlogSearch.BaseURL,
			UserAgent: cfg.BlogSearch.UserAgent,
			Timeout:   cfg.BlogSearch.Timeout,
		})
	}

	// Initialize search history if the database is available
	if deps.HistoryService == nil && cfg.History.Enabled && deps.DB != nil && deps.DB.DB != nil {
		initializeHistoryService(deps, cfg)
	}

	// Register search routes with dedicated rate limiting (5 req/s, burst of 10)
	searchGroup := v1.Group("/search")
	searchGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
	search.RegisterRoutes(searchGroup, deps)

	// Register history routes with general rate limiting (10 req/s, burst of 20)
	if deps.HistoryService != nil {
		historyGroup := v1.Group("/history")
		historyGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
		history.RegisterRoutes(historyGroup, deps)
	}

	return nil
}

// initializeHistoryService creates and configures the search history service
func initializeHistoryService(deps *types.Dependencies, cfg *config.Config) {
	repo := historyService.NewRepository(deps.DB.DB)

	deps.HistoryService = historyService.NewService(
		repo,
		historyService.WithMaxRetention(cfg.History.MaxRetention),
	)
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
