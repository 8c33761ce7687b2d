package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	httpHandlers "github.com/truthdare/core/internal/adapters/http"
	"github.com/truthdare/core/internal/adapters/repository"
	"github.com/truthdare/core/internal/application/services"
	"github.com/truthdare/core/internal/infrastructure/config"
	"github.com/truthdare/core/internal/infrastructure/logger"
	"github.com/truthdare/core/internal/ports"

	_ "github.com/truthdare/core/docs"
)

// Server represents the HTTP server
type Server struct {
	echo       *echo.Echo
	config     *config.Config
	logger     *logger.Logger
	repo       ports.ContentRepository
	instanceID string
}

// CustomValidator wraps the validator
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates structs
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New creates a new server instance
func New(cfg *config.Config, appLogger *logger.Logger) (*Server, error) {
	e := echo.New()

	// Set custom validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Configure Echo
	e.HideBanner = true
	e.HidePort = true

	// Custom error handler
	e.HTTPErrorHandler = customErrorHandler(appLogger)

	// Initialize repository
	contentRepo := repository.NewContentRepository(
		cfg.Data.TruthsFile,
		cfg.Data.DaresFile,
		appLogger.WithComponent("repository"),
	)

	// Initialize services
	truthService := services.NewTruthService(contentRepo, appLogger)
	dareService := services.NewDareService(contentRepo, appLogger)
	gameService := services.NewGameService(truthService, dareService, appLogger)

	// Initialize handlers
	truthHandler := httpHandlers.NewTruthHandler(truthService, appLogger)
	dareHandler := httpHandlers.NewDareHandler(dareService, appLogger)
	gameHandler := httpHandlers.NewGameHandler(gameService, appLogger)

	server := &Server{
		echo:       e,
		config:     cfg,
		logger:     appLogger,
		repo:       contentRepo,
		instanceID: uuid.New().String(),
	}

	// Setup middleware
	server.setupMiddleware()

	// Setup routes
	server.setupRoutes(truthHandler, dareHandler, gameHandler)

	// Setup metrics
	if cfg.Metrics.Enabled {
		server.setupMetrics(gameService)
	}

	return server, nil
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware() {
	// Recovery middleware
	s.echo.Use(middleware.Recover())

	// Logger middleware
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			fields := []interface{}{
				"method", values.Method,
				"uri", values.URI,
				"status", values.Status,
				"latency_ms", float64(values.Latency.Nanoseconds()) / 1000000,
				"remote_ip", values.RemoteIP,
				"user_agent", values.UserAgent,
			}

			if values.Error != nil {
				fields = append(fields, "error", values.Error.Error())
				s.logger.Errorw("HTTP request failed", fields...)
			} else {
				s.logger.Infow("HTTP request", fields...)
			}

			return nil
		},
	}))

	// CORS middleware
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: strings.Split(s.config.Security.CORSAllowedOrigins, ","),
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowMethods: []string{echo.GET, echo.HEAD, echo.OPTIONS},
	}))

	// Rate limiting middleware
	s.echo.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{Rate: rate.Limit(s.config.Security.RateLimitRequests), Burst: s.config.Security.RateLimitRequests, ExpiresIn: s.config.Security.RateLimitWindow},
		),
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			id := ctx.RealIP()
			return id, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(http.StatusForbidden, map[string]string{"message": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(http.StatusTooManyRequests, map[string]string{"message": "rate limit exceeded"})
		},
	}))

	// Security headers
	s.echo.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}))

	// Request ID middleware
	s.echo.Use(middleware.RequestID())

	// Timeout middleware
	s.echo.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: 30 * time.Second,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes(truthHandler *httpHandlers.TruthHandler, dareHandler *httpHandlers.DareHandler, gameHandler *httpHandlers.GameHandler) {
	// Root and health routes
	s.echo.GET("/", s.apiInfo)
	s.echo.GET("/health", gameHandler.HealthCheck)
	s.echo.GET("/health/detailed", s.detailedHealthCheck)
	s.echo.GET("/ready", s.readinessCheck)

	// Swagger documentation
	s.echo.GET("/docs/*", echoSwagger.WrapHandler)

	// API v1 routes
	v1 := s.echo.Group("/api/v1")

	// Truth routes
	truthGroup := v1.Group("/truth")
	truthGroup.GET("", truthHandler.GetRandomTruth)
	truthGroup.GET("/categories/list", truthHandler.GetCategories)
	truthGroup.GET("/:category", truthHandler.GetTruthByCategory)

	// Dare routes
	dareGroup := v1.Group("/dare")
	dareGroup.GET("", dareHandler.GetRandomDare)
	dareGroup.GET("/difficulties/list", dareHandler.GetDifficulties)
	dareGroup.GET("/:difficulty", dareHandler.GetDareByDifficulty)

	// Game routes
	v1.GET("/game/random", gameHandler.GetRandomGame)
	v1.GET("/stats", gameHandler.GetStats)
}

// setupMetrics configures Prometheus metrics
func (s *Server) setupMetrics(gameService *services.GameService) {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	recordsLoaded := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "content_records_loaded",
			Help: "Number of content records currently loaded",
		},
		func() float64 {
			health := gameService.GetHealthStatus(context.Background())
			return float64(health.Data.TotalTruths + health.Data.TotalDares)
		},
	)

	registry.MustRegister(requestsTotal, requestDuration, recordsLoaded)

	// Custom metrics middleware
	s.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start)
			status := c.Response().Status

			requestsTotal.WithLabelValues(
				c.Request().Method,
				c.Path(),
				fmt.Sprintf("%d", status),
			).Inc()

			requestDuration.WithLabelValues(
				c.Request().Method,
				c.Path(),
			).Observe(duration.Seconds())

			return err
		}
	})

	// Metrics endpoint
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	s.echo.GET("/metrics", echo.WrapHandler(metricsHandler))
}

// apiInfo describes the API at the root path
func (s *Server) apiInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"name":    s.config.App.Name,
		"version": s.config.App.Version,
		"docs":    "/docs/index.html",
		"health":  "/health",
	})
}

// detailedHealthCheck reports content health plus process-level checks
func (s *Server) detailedHealthCheck(c echo.Context) error {
	checks := make(map[string]interface{})
	status := "ok"

	for name, path := range map[string]string{
		"truths_file": s.config.Data.TruthsFile,
		"dares_file":  s.config.Data.DaresFile,
	} {
		if _, err := os.Stat(path); err != nil {
			status = "error"
			checks[name] = map[string]interface{}{
				"status": "error",
				"error":  err.Error(),
			}
		} else {
			checks[name] = map[string]interface{}{
				"status": "ok",
				"path":   path,
			}
		}
	}

	response := map[string]interface{}{
		"status":      status,
		"time":        time.Now().UTC().Format(time.RFC3339),
		"instance_id": s.instanceID,
		"checks":      checks,
		"version": map[string]string{
			"app": s.config.App.Version,
		},
	}

	if status == "ok" {
		return c.JSON(http.StatusOK, response)
	}
	return c.JSON(http.StatusServiceUnavailable, response)
}

// readinessCheck verifies the content corpus can be served
func (s *Server) readinessCheck(c echo.Context) error {
	if err := s.repo.EnsureLoaded(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not_ready",
			"reason": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Repository exposes the content repository for startup warm-up
func (s *Server) Repository() ports.ContentRepository {
	return s.repo
}

// Start starts the HTTP server
func (s *Server) Start(address string) error {
	s.logger.Info("Starting server", "address", address)
	return s.echo.Start(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	return s.echo.Shutdown(ctx)
}

// customErrorHandler handles HTTP errors
func customErrorHandler(logger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var (
			code = http.StatusInternalServerError
			msg  interface{}
		)

		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			msg = he.Message
			if he.Internal != nil {
				err = fmt.Errorf("%v, %v", err, he.Internal)
			}
		} else if e, ok := err.(validator.ValidationErrors); ok {
			code = http.StatusUnprocessableEntity
			msg = map[string]string{"message": "validation failed", "details": e.Error()}
		} else {
			msg = map[string]string{"message": http.StatusText(code)}
		}

		if code == http.StatusInternalServerError {
			logger.Error("Internal server error", "error", err, "path", c.Request().URL.Path)
		}

		// Send response
		if !c.Response().Committed {
			if c.Request().Method == echo.HEAD {
				err = c.NoContent(code)
			} else {
				err = c.JSON(code, msg)
			}
			if err != nil {
				logger.Error("Error sending response", "error", err)
			}
		}
	}
}
