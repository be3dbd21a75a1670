package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pageza/recipecard/config"
	"github.com/pageza/recipecard/internal/api"
	"github.com/pageza/recipecard/internal/audit"
	"github.com/pageza/recipecard/internal/middleware"
	"github.com/pageza/recipecard/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	audit  *audit.Dispatcher
	logger zerolog.Logger
}

// New creates a new server instance. dispatcher may be nil.
func New(cfg *config.Config, extractService service.IExtractService, dispatcher *audit.Dispatcher, logger zerolog.Logger) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	api.LoadTemplates(router)

	// Register routes
	router.GET("/healthz", api.Health)
	api.NewUIHandler(cfg.PublisherDomain).RegisterRoutes(router)
	api.NewExtractHandler(extractService, dispatcher).RegisterRoutes(router.Group("/api"))

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		audit:  dispatcher,
		logger: logger,
	}
}

// Start serves until the server is shut down.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.http.Addr).Msg("starting server")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, drains in-flight ones and waits for
// pending audit writes.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)

	done := make(chan struct{})
	go func() {
		s.audit.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn().Msg("gave up waiting for audit writes")
	}
	return err
}
