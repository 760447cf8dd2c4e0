package api

import (
	"github.com/gin-gonic/gin"
	"github.com/kavyamehta/vastra/internal/api/catalog"
	"github.com/kavyamehta/vastra/internal/api/middleware"
	"github.com/kavyamehta/vastra/internal/api/search"
	"github.com/kavyamehta/vastra/internal/repository"
	"github.com/kavyamehta/vastra/internal/service"
	"go.uber.org/zap"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	AllowOrigins []string
	WebDir       string
}

// SetupRouter sets up the Gin router
func SetupRouter(
	searchService *service.SearchService,
	catalogRepo *repository.CatalogRepository,
	logger *zap.Logger,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLog(logger))

	// CORS middleware
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Mobile web UI (when built alongside the server)
	SetupStaticRoutes(r, cfg.WebDir)

	v1 := r.Group("/api/v1")

	searchHandler := search.NewHandler(searchService, catalogRepo)
	searchHandler.RegisterRoutes(v1)

	catalogHandler := catalog.NewHandler(catalogRepo)
	catalogHandler.RegisterRoutes(v1)

	return r
}
