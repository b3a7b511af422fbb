package routes

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/azul/internal/config"
	"github.com/xyz-asif/azul/internal/database"
	"github.com/xyz-asif/azul/internal/features/todos"
	"github.com/xyz-asif/azul/internal/pkg/ratelimit"
)

// SetupRoutes registers /health and every feature under /api. Background
// work started here stops when ctx is cancelled.
func SetupRoutes(ctx context.Context, router *gin.Engine, db *database.MongoDB, cfg *config.Config) {
	router.GET("/health", Health(db))

	api := router.Group("/api")

	if cfg.RateLimitRequests > 0 {
		limiter := ratelimit.New(cfg.RateLimitRequests, cfg.RateLimitWindow)
		limiter.StartCleanup(ctx, cfg.RateLimitWindow)
		api.Use(ratelimit.Middleware(limiter))
	}

	todos.RegisterRoutes(api, db.Database)
}
