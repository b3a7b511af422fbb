// ================== internal/features/todos/routes.go ==================
package todos

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/azul/internal/pkg/logger"
	"github.com/xyz-asif/azul/internal/pkg/validator"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database) {
	repo := NewRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Warn("Could not create todo indexes", "err", err)
	}

	Mount(router, NewHandler(NewService(repo)))
}

// Mount wires handler onto /todos below router.
func Mount(router *gin.RouterGroup, handler *Handler) {
	validator.Register()

	todos := router.Group("/todos")
	{
		todos.GET("", handler.List)
		todos.POST("", handler.Create)
		todos.GET("/:id", handler.Get)
		todos.PUT("/:id", handler.Update)
		todos.PATCH("/:id/complete", handler.SetCompletion)
		todos.DELETE("/:id", handler.Delete)
	}
}
