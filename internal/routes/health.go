package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/azul/internal/pkg/logger"
	"github.com/xyz-asif/azul/internal/pkg/response"
)

// Pinger is anything that can confirm storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func Health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{
			"status":   "ok",
			"time":     time.Now().Unix(),
			"database": "up",
		}

		if err := db.Ping(c.Request.Context()); err != nil {
			logger.Warn("Health check: database unreachable", "err", err)
			body["status"] = "degraded"
			body["database"] = "down"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}

		response.Success(c, body)
	}
}
