package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/zhmaterial/material-api/api/favorites"
	"github.com/zhmaterial/material-api/api/health"
	"github.com/zhmaterial/material-api/api/history"
	cachemw "github.com/zhmaterial/material-api/api/middleware"
	"github.com/zhmaterial/material-api/api/search"
	translationapi "github.com/zhmaterial/material-api/api/translation"
	"github.com/zhmaterial/material-api/api/types"
	"github.com/zhmaterial/material-api/api/version"
	_ "github.com/zhmaterial/material-api/docs/swagger"
	"github.com/zhmaterial/material-api/internal/services/cache"
	"github.com/zhmaterial/material-api/internal/services/demo"
	favoritessvc "github.com/zhmaterial/material-api/internal/services/favorites"
	historysvc "github.com/zhmaterial/material-api/internal/services/history"
	"github.com/zhmaterial/material-api/internal/services/pixabay"
	searchsvc "github.com/zhmaterial/material-api/internal/services/search"
	translationsvc "github.com/zhmaterial/material-api/internal/services/translation"
	"github.com/zhmaterial/material-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once, responseCache cache.Cache) error {
	// Public routes, no rate limiting
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Initialize the translation resolver if not set
	if deps.Translator == nil {
		deps.Translator = translationsvc.NewResolver(translationsvc.Config{
			Providers: []translationsvc.Provider{
				translationsvc.NewGoogleProvider(cfg.Translation.GoogleURL),
				translationsvc.NewLibreProvider(cfg.Translation.LibreURL),
				translationsvc.NewMyMemoryProvider(cfg.Translation.MyMemoryURL),
			},
			ProviderTimeout: cfg.Translation.ProviderTimeout,
			CacheMaxEntries: cfg.Translation.CacheMaxEntries,
			CacheTTL:        cfg.Translation.CacheTTL,
		})
	}

	// Initialize the search orchestrator if not set
	if deps.SearchService == nil {
		client := pixabay.NewClient(pixabay.Config{
			APIKey:            cfg.Pixabay.APIKey,
			BaseURL:           cfg.Pixabay.BaseURL,
			Timeout:           cfg.Pixabay.Timeout,
			UserAgent:         cfg.Pixabay.UserAgent,
			RequestsPerMinute: cfg.Pixabay.RequestsPerMinute,
			Burst:             cfg.Pixabay.Burst,
		})
		deps.SearchService = searchsvc.NewService(
			deps.Translator,
			client,
			demo.NewGenerator(),
			config.PixabayConfigured(),
			cfg.Translation.Timeout,
		)
	}

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Search with dedicated rate limiting and response caching
	searchGroup := v1.Group("/search")
	searchGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, cfg.RateLimiting.SearchRPS, cfg.RateLimiting.SearchBurst))
	if responseCache != nil {
		searchGroup.Use(cachemw.CacheMiddleware(cachemw.CacheConfig{
			Cache:      responseCache,
			DefaultTTL: cfg.Cache.SearchTTL,
			Enabled:    cfg.Cache.Enabled,
		}))
	}
	search.RegisterRoutes(searchGroup, deps)

	// Translation with general rate limiting
	translateGroup := v1.Group("/translate")
	translateGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, cfg.RateLimiting.DefaultRPS, cfg.RateLimiting.DefaultBurst))
	translationapi.RegisterRoutes(translateGroup, deps)

	// Favorites and history need the database
	if deps.DB != nil && deps.DB.DB != nil {
		if deps.FavoritesService == nil {
			deps.FavoritesService = favoritessvc.NewService(deps.DB)
		}
		if deps.HistoryService == nil {
			deps.HistoryService = historysvc.NewService(deps.DB)
		}

		favoritesGroup := v1.Group("/favorites")
		favoritesGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, cfg.RateLimiting.DefaultRPS, cfg.RateLimiting.DefaultBurst))
		favorites.RegisterRoutes(favoritesGroup, deps)

		historyGroup := v1.Group("/history")
		historyGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, cfg.RateLimiting.DefaultRPS, cfg.RateLimiting.DefaultBurst))
		history.RegisterRoutes(historyGroup, deps)
	}

	return nil
}
