// Package http provides the gin HTTP server, its middleware and the metrics server.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/validacpf/internal/config"
	cpfHTTP "github.com/allisson/validacpf/internal/cpf/http"
	"github.com/allisson/validacpf/internal/database"
	"github.com/allisson/validacpf/internal/metrics"
)

// readinessTimeout bounds the database ping performed by /ready.
const readinessTimeout = 2 * time.Second

// Server is the public API server.
type Server struct {
	db     database.Pinger
	server *http.Server
	logger *slog.Logger
	router *gin.Engine
	ready  context.Context
}

// NewServer creates a server listening on host:port. db may be nil when the
// debt lookup is disabled; readiness then ignores the database.
func NewServer(db database.Pinger, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		ready:  context.Background(),
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine. ctx bounds background goroutines started
// by middleware (rate limiter cleanup) and flips /ready to 503 once done.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	validationHandler *cpfHTTP.ValidationHandler,
	metricsProvider *metrics.Provider,
) {
	s.ready = ctx

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if cors := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); cors != nil {
		router.Use(cors)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	validate := []gin.HandlerFunc{validationHandler.ValidateHandler}
	if cfg.RateLimitEnabled {
		limiter := RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger)
		validate = append([]gin.HandlerFunc{limiter}, validate...)
	}

	v1 := router.Group("/v1")
	v1.POST("/cpf/validate", validate...)

	// Legacy route kept for clients of the serverless deployment.
	router.POST("/api/fnvalidacpf", validate...)

	s.router = router
}

// Start serves until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	select {
	case <-s.ready.Done():
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	default:
	}

	dbStatus := "disabled"
	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()

		dbStatus = "ok"
		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("readiness check failed", slog.Any("error", err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"components": gin.H{"database": "error"},
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": dbStatus},
	})
}
