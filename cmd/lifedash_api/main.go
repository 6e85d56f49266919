package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/lifedash/internal/adapters/database/memory"
	"github.com/SscSPs/lifedash/internal/core/services"
	"github.com/SscSPs/lifedash/internal/handlers"
	"github.com/SscSPs/lifedash/internal/middleware"
	"github.com/SscSPs/lifedash/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// lifedash_api serves the REST API the client talks to. State lives in
// memory and is lost on restart.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	container := services.NewServiceContainer(cfg, memory.NewRepositoryProvider())
	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
