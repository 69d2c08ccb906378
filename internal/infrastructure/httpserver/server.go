package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"TextHumanizer/internal/config"
	"TextHumanizer/internal/ports"
)

// @title          TextHumanizer API
// @version        1.0
// @description    Rewrites AI-generated text toward a natural human register

// @host     localhost:8080
// @BasePath /api/v1

// Server is the HTTP front of the service.
type Server struct {
	addr   string
	router *gin.Engine
	logger *slog.Logger
}

// New builds the router, middleware chain, and routes.
func New(cfg config.Config, handlers *Handlers, limiter ports.RateLimiter, logger *slog.Logger) *Server {
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"service": "texthumanizer",
		})
	})

	router.GET("/api/v1/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")
	apiV1.Use(RateLimit(limiter, cfg.RateLimit.Requests, cfg.RateLimit.Window(), logger))
	{
		apiV1.POST("/humanize", handlers.Humanize)
		apiV1.POST("/detect", handlers.Detect)
		apiV1.POST("/extract", handlers.Extract)
	}

	return &Server{
		addr:   cfg.Server.Addr,
		router: router,
		logger: logger,
	}
}

// Handler exposes the router for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
