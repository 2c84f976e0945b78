package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/epeers/registry-warnings/config"
	"github.com/epeers/registry-warnings/docs"
	"github.com/epeers/registry-warnings/internal/cache"
	"github.com/epeers/registry-warnings/internal/database"
	"github.com/epeers/registry-warnings/internal/handlers"
	"github.com/epeers/registry-warnings/internal/i18n"
	"github.com/epeers/registry-warnings/internal/middleware"
	"github.com/epeers/registry-warnings/internal/repository"
	"github.com/epeers/registry-warnings/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Business Registry Warnings API
// @version 1.0
// @description Classifies compliance warnings for registered businesses and resolves localized dialogs.
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	// Load locale catalogs
	var bundle *i18n.Bundle
	if cfg.LocalesDir != "" {
		bundle, err = i18n.LoadDir(cfg.LocalesDir, cfg.DefaultLocale)
	} else {
		bundle, err = i18n.LoadEmbedded(cfg.DefaultLocale)
	}
	if err != nil {
		log.Fatalf("Failed to load locale catalogs: %v", err)
	}

	// Create context for initialization
	ctx := context.Background()

	// Initialize database connection
	db, err := database.New(ctx, cfg.PGURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize repositories and caches
	businessRepo := repository.NewBusinessRepository(db.Pool)
	statusCache := cache.NewStatusCache(cfg.StatusCacheTTL)

	// Initialize services. Table and translation problems are fatal here,
	// before any request is served.
	classifier, err := services.NewWarningClassifier()
	if err != nil {
		log.Fatalf("Invalid warning classifier: %v", err)
	}
	notificationSvc, err := services.NewNotificationService(classifier, bundle, businessRepo, statusCache)
	if err != nil {
		log.Fatalf("Invalid dialog configuration: %v", err)
	}

	// Initialize handlers
	warningHandler := handlers.NewWarningHandler(notificationSvc)
	dialogHandler := handlers.NewDialogHandler(notificationSvc)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Locale(bundle))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Warning routes
	router.POST("/warnings/classify", warningHandler.Classify)
	router.GET("/businesses/:identifier/warnings", warningHandler.GetBusinessWarnings)
	router.POST("/businesses/warnings", warningHandler.BatchWarnings)

	// Dialog routes
	router.GET("/dialogs/:code", dialogHandler.Get)

	// API docs
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting server on port %s (locales: %v)", cfg.Port, bundle.Locales())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
