package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kavyamehta/vastra/internal/ai"
	"github.com/kavyamehta/vastra/internal/api"
	"github.com/kavyamehta/vastra/internal/config"
	"github.com/kavyamehta/vastra/internal/repository"
	"github.com/kavyamehta/vastra/internal/service"
	"github.com/kavyamehta/vastra/internal/shopping"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "", "Path to config file")
	webDir     = flag.String("web", "./web", "Path to the built web UI (optional)")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize catalog database and seed the built-in catalog
	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	catalogRepo := repository.NewCatalogRepository(db)
	if err := catalogRepo.Seed(repository.BuiltinCatalog()); err != nil {
		logger.Fatal("Failed to seed catalog", zap.Error(err))
	}

	// Initialize external clients
	aiClient, err := ai.NewClient(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize AI client", zap.Error(err))
	}
	searchClient := shopping.NewClient(cfg, logger)

	// Initialize the search orchestrator
	searchService := service.NewSearchService(aiClient, searchClient, logger)

	// Setup router
	router := api.SetupRouter(searchService, catalogRepo, logger, api.RouterConfig{
		AllowOrigins: []string{"*"},
		WebDir:       *webDir,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting Vastra server",
			zap.String("address", cfg.Address()),
			zap.String("base_url", cfg.Server.BaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
