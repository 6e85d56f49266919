package handlers

import (
	"fmt"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/lifedash/internal/core/ports/services"
	"github.com/SscSPs/lifedash/internal/middleware"
	"github.com/SscSPs/lifedash/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/health", getHealth)

	apiLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("invalid rate limit %q: %w", cfg.RateLimit, err)
	}
	api := r.Group("/api", middleware.RateLimit(apiLimiter))

	// Public authentication routes
	if err := registerAuthRoutes(api, cfg, services); err != nil {
		return err
	}

	// Everything else requires a bearer token
	protected := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	registerFinanceRoutes(protected, services.Finance)
	registerVehicleRoutes(protected, services.Garage)
	registerTaskRoutes(protected, services.Task)
	return nil
}
