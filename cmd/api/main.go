// ================== cmd/api/main.go ==================
//
// @title Azul Todo API
// @version 1.0
// @description A RESTful API for tracking todos
// @host localhost:8080
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	docs "github.com/xyz-asif/azul/docs"
	"github.com/xyz-asif/azul/internal/config"
	"github.com/xyz-asif/azul/internal/database"
	"github.com/xyz-asif/azul/internal/middleware"
	"github.com/xyz-asif/azul/internal/pkg/logger"
	"github.com/xyz-asif/azul/internal/routes"
)

func main() {
	cfg := config.Load()

	log := logger.New(os.Stdout, logger.ParseLevel(cfg.LogLevel), cfg.IsProduction())
	logger.SetDefault(log)

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	docs.SwaggerInfo.Schemes = []string{"http"}

	if err := run(cfg, log); err != nil {
		log.Fatal("Server failed", "err", err)
	}
	log.Info("Server exited")
}

// run serves until a signal arrives or the listener fails. Cleanup is
// deferred here so it runs before main exits.
func run(cfg *config.Config, log *logger.Logger) error {
	db, err := database.Connect(database.Options{
		URI:     cfg.MongoURI,
		DBName:  cfg.MongoDB,
		Timeout: cfg.MongoTimeout,
		MaxPool: cfg.MongoMaxPool,
		MinPool: cfg.MongoMinPool,
	})
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer db.Disconnect(context.Background())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.FrontendURL))

	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DeepLinking(true),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("none"),
		),
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	routes.SetupRoutes(ctx, router, db, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.AppEnv)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen on :%s: %w", cfg.Port, err)
	case <-quit:
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "err", err)
	}
	return nil
}
