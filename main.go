package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AnTengye/contractstudio/compose"
	"github.com/AnTengye/contractstudio/config"
	"github.com/AnTengye/contractstudio/handler"
	"github.com/AnTengye/contractstudio/middleware"
	"github.com/AnTengye/contractstudio/pkg/logger"
	"github.com/AnTengye/contractstudio/service"
	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully", "path", *configPath)

	assembler := compose.NewAssembler(cfg.Company, cfg.ComposeSettings())

	// Archive stays nil unless an endpoint is configured
	var archive service.Archiver
	if cfg.Archive.Enabled() {
		archiveSvc, err := service.NewArchiveService(&cfg.Archive)
		if err != nil {
			slog.Error("failed to initialize archive service", "error", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = archiveSvc.EnsureBucket(ctx)
		cancel()
		if err != nil {
			slog.Error("failed to ensure archive bucket", "bucket", cfg.Archive.Bucket, "error", err)
			os.Exit(1)
		}
		archive = archiveSvc
		slog.Info("document archive enabled", "endpoint", cfg.Archive.Endpoint, "bucket", cfg.Archive.Bucket)
	} else {
		slog.Warn("document archive disabled, archive.endpoint is empty")
	}

	service.InitDocumentStore(&cfg.Store)
	presets := service.NewPresetStore(cfg.Store.MaxPresets)

	documentSvc := service.NewDocumentService(assembler, archive, service.GetDocumentStore())
	budgetSvc := service.NewBudgetService(presets)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(cfg)
	contractHandler := handler.NewContractHandler(documentSvc)
	presetHandler := handler.NewPresetHandler(presets)
	budgetHandler := handler.NewBudgetHandler(budgetSvc)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())
	router.Use(middleware.NoCache())
	router.Use(middleware.RateLimitFromConfig(&cfg.RateLimit))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "ok",
			"archive_enabled": documentSvc.ArchiveEnabled(),
			"timestamp":       time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)

		protected.GET("/contracts/types", contractHandler.Types)
		protected.POST("/contracts/preview", contractHandler.Preview)
		protected.POST("/contracts/render", contractHandler.Render)
		protected.POST("/contracts/archive", contractHandler.Archive)

		protected.GET("/documents", contractHandler.List)
		protected.GET("/documents/:id", contractHandler.Get)
		protected.DELETE("/documents/:id", contractHandler.Delete)

		protected.GET("/presets", presetHandler.List)
		protected.POST("/presets", presetHandler.Create)
		protected.DELETE("/presets/:id", presetHandler.Delete)

		protected.POST("/budgets/quote", budgetHandler.Quote)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}
