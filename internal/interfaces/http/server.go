// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vellaperfumeria/storefront-backend/internal/config"
	"github.com/vellaperfumeria/storefront-backend/internal/interfaces/http/middleware"
	"github.com/vellaperfumeria/storefront-backend/internal/interfaces/http/routes"
)

// HealthCheck is a named dependency probe used by /health
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	config      *config.Config
	logger      *logrus.Logger
	gin         *gin.Engine
	httpServer  *http.Server
	services    *routes.Services
	redisClient *redis.Client
	checks      []HealthCheck
	startedAt   time.Time
}

// NewServer creates a new HTTP server instance with its routes registered.
// redisClient may be nil; rate limiting is then disabled.
func NewServer(cfg *config.Config, logger *logrus.Logger, services *routes.Services, redisClient *redis.Client, checks ...HealthCheck) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		config:      cfg,
		logger:      logger,
		gin:         gin.New(),
		services:    services,
		redisClient: redisClient,
		checks:      checks,
		startedAt:   time.Now(),
	}

	if err := s.gin.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		logger.WithError(err).Warn("Invalid trusted proxies, trusting none")
		_ = s.gin.SetTrustedProxies(nil)
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Handler exposes the router, for tests
func (s *Server) Handler() http.Handler {
	return s.gin
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	log.Printf("🚀 HTTP Server starting on port %s", s.config.Server.Port)
	log.Printf("🌐 API Base URL: http://localhost:%s/api/v1", s.config.Server.Port)
	log.Printf("📊 Health Check: http://localhost:%s/health", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	log.Println("🛑 Shutting down HTTP server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	log.Println("✅ HTTP server stopped gracefully")
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	s.gin.Use(gin.Recovery())
	s.gin.Use(middleware.RequestID())
	s.gin.Use(middleware.Logger(s.logger))
	s.gin.Use(middleware.CORS(s.config))
	s.gin.Use(middleware.SecurityHeaders())
	s.gin.Use(middleware.RateLimit(s.config, s.redisClient, s.logger))
	s.gin.Use(middleware.RequestSizeLimit(1 << 20))
	s.gin.Use(middleware.Timeout(s.config.Server.RequestTimeout))
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	s.gin.GET("/health", s.healthCheck)
	s.gin.GET("/ready", s.readinessCheck)

	apiV1 := s.gin.Group("/api/v1")
	routes.SetupRoutes(apiV1, s.services, s.config)

	if s.config.IsDevelopment() {
		s.gin.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":     "Vellaperfumeria Storefront API",
				"version":     s.config.App.Version,
				"environment": s.config.App.Environment,
				"health":      "/health",
				"endpoints": gin.H{
					"products":   "/api/v1/products",
					"catalog":    "/api/v1/catalog",
					"cart":       "/api/v1/cart",
					"session":    "/api/v1/session",
					"checkout":   "/api/v1/checkout",
					"currencies": "/api/v1/currencies",
				},
			})
		})
	}
}

// healthCheck runs every dependency probe
func (s *Server) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	for _, check := range s.checks {
		if err := check.Check(ctx); err != nil {
			s.logger.WithError(err).WithField("dependency", check.Name).Warn("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  check.Name + " check failed",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
	})
}

// readinessCheck reports whether the catalog is loaded
func (s *Server) readinessCheck(c *gin.Context) {
	catalog := s.services.Products.Catalog()
	if catalog == nil || catalog.Len() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "product catalog not loaded",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "ready",
		"timestamp":     time.Now().UTC(),
		"uptime":        time.Since(s.startedAt).Round(time.Second).String(),
		"products":      catalog.Len(),
		"catalog_pages": s.services.Sessions.Book().PageCount(),
		"session_store": s.config.Session.Store,
	})
}
