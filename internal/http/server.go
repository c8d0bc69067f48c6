// Package http provides the API and metrics servers and the router wiring.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/social/internal/auth/http"
	authService "github.com/allisson/social/internal/auth/service"
	commentHTTP "github.com/allisson/social/internal/comment/http"
	"github.com/allisson/social/internal/config"
	"github.com/allisson/social/internal/metrics"
	postHTTP "github.com/allisson/social/internal/post/http"
	userHTTP "github.com/allisson/social/internal/user/http"
)

// Server is the public API server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates the API server. Call SetupRouter before Start.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter registers middleware and routes. ctx bounds the background
// cleanup of the rate limiters.
//
// Every route passes through the identity middleware, which never rejects.
// Routes that change state add RequireIdentityMiddleware.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	tokenCodec authService.TokenCodec,
	userHandler *userHTTP.UserHandler,
	postHandler *postHTTP.PostHandler,
	commentHandler *commentHTTP.CommentHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.Use(requestTimeoutMiddleware(cfg.ServerRequestTimeout))

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	router.Use(authHTTP.IdentityMiddleware(tokenCodec, s.logger))

	requireIdentity := authHTTP.RequireIdentityMiddleware(s.logger)

	authenticated := []gin.HandlerFunc{requireIdentity}
	if cfg.RateLimitEnabled {
		authenticated = append(authenticated,
			authHTTP.RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	var credentials []gin.HandlerFunc
	if cfg.RateLimitAuthEnabled {
		credentials = append(credentials,
			authHTTP.AuthRateLimitMiddleware(ctx, cfg.RateLimitAuthRequestsPerSec, cfg.RateLimitAuthBurst, s.logger))
	}

	api := router.Group("/api")

	user := api.Group("/user")
	{
		user.POST("/register", withMiddleware(credentials, userHandler.RegisterHandler)...)
		user.POST("/login", withMiddleware(credentials, userHandler.LoginHandler)...)
		user.PUT("/update", withMiddleware(authenticated, userHandler.UpdateHandler)...)
	}

	post := api.Group("/post")
	{
		post.POST("/create", withMiddleware(authenticated, postHandler.CreateHandler)...)
		post.GET("/list", postHandler.ListHandler)
		post.PUT("/edit", withMiddleware(authenticated, postHandler.EditHandler)...)
		post.DELETE("/delete/:postId", withMiddleware(authenticated, postHandler.DeleteHandler)...)
	}

	comments := api.Group("/comments")
	{
		comments.POST("/create", withMiddleware(authenticated, commentHandler.CreateHandler)...)
		comments.GET("/list/:postId", commentHandler.ListHandler)
	}

	s.router = router
	s.server.Handler = router
}

func withMiddleware(middleware []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(middleware)+1)
	chain = append(chain, middleware...)
	return append(chain, handler)
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start serves until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.server.Handler == nil {
		s.server.Handler = s.router
	}

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

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
