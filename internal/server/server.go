package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"umlwidget/internal/config"
	"umlwidget/internal/database"
	"umlwidget/internal/handlers"
	"umlwidget/internal/repositories"
	"umlwidget/internal/routes"
	"umlwidget/internal/services"
	"umlwidget/internal/tablemodel"
)

type Server struct {
	*http.Server
	closers []closer
	logger  *zap.Logger
}

// closer releases one connection the server holds.
type closer struct {
	name  string
	close func() error
}

// closeAll closes in reverse order of acquisition and keeps going past failures.
func closeAll(logger *zap.Logger, closers []closer) error {
	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].close(); err != nil {
			logger.Warn("failed to close", zap.String("resource", closers[i].name), zap.Error(err))
			errs = append(errs, fmt.Errorf("close %s: %w", closers[i].name, err))
		}
	}
	return errors.Join(errs...)
}

// NewServer connects to PostgreSQL and Redis, runs the migrations and wires the
// HTTP API.
func NewServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	dsn := database.DSN(cfg)

	pool, err := database.Connect(ctx, dsn, logger)
	if err != nil {
		return nil, err
	}
	closers := []closer{{name: "postgres pool", close: func() error { pool.Close(); return nil }}}
	fail := func(err error) (*Server, error) {
		_ = closeAll(logger, closers)
		return nil, err
	}

	if err := database.RunMigrations(ctx, pool, logger); err != nil {
		return fail(err)
	}

	db, err := database.OpenGorm(dsn)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, closer{name: "gorm", close: func() error { return database.CloseGorm(db) }})

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	closers = append(closers, closer{name: "redis", close: rdb.Close})

	// Test Redis connection and fail fast with a clear message
	{
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			return fail(fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err))
		}
		logger.Info("connected to Redis", zap.String("addr", cfg.RedisAddr))
	}

	// Dependency injection
	widgetRepo := repositories.NewWidgetRepository(db)
	stateRepo := repositories.NewSyncedStateRepository(pool)
	redisRepo := repositories.NewRedisRepository(rdb)

	editor := tablemodel.NewEditor()
	widgetService := services.NewWidgetService(widgetRepo, stateRepo, editor, logger)
	editorService := services.NewEditorService(redisRepo, widgetService, cfg.EditorTokenSecret, cfg.EditorTokenTTL, logger)

	widgetHandler := handlers.NewWidgetHandler(widgetService, editorService)
	editorHandler := handlers.NewEditorHandler(editorService)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	routes.RegisterRoutes(router, widgetHandler, editorHandler, cfg.EditorTokenSecret)

	// Create and configure the HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return &Server{
		Server:  httpServer,
		closers: closers,
		logger:  logger,
	}, nil
}

// Shutdown stops accepting requests, then releases the database and Redis
// connections.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.Server.Shutdown(ctx)
	return errors.Join(err, closeAll(s.logger, s.closers))
}

// corsConfig lets the side-panel editor, served from another origin, call the
// API with its bearer token.
func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
