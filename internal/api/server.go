// Package api exposes the HTTP surface: the analysis endpoint, the
// history endpoints, and the health check.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/symptom-checker-server/internal/domain"
	"github.com/symptom-checker-server/internal/history"
	"github.com/symptom-checker-server/internal/middleware"
	"github.com/symptom-checker-server/internal/service"
)

// Server represents the HTTP server
type Server struct {
	cfg      *domain.Config
	logger   *logrus.Logger
	engine   *service.Engine
	resolver AnalysisResolver
	store    history.Store
	router   *gin.Engine
	server   *http.Server
}

// AnalysisResolver routes analysis requests to external providers.
// Nil when the server runs in rules-only mode.
type AnalysisResolver interface {
	Mode() string
	ActiveModel() string
	Analyze(ctx context.Context, symptoms, language string) (*domain.DiagnosticResult, domain.AnalysisSource, error)
}

// NewServer creates a new HTTP server instance. resolver and store may
// be nil; analysis then runs rule-based only and history endpoints
// report unavailable.
func NewServer(cfg *domain.Config, logger *logrus.Logger, engine *service.Engine, resolver AnalysisResolver, store history.Store) *Server {
	// Set Gin mode based on environment
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(corsMiddleware())
	router.Use(requestIDMiddleware())

	server := &Server{
		cfg:      cfg,
		logger:   logger,
		engine:   engine,
		resolver: resolver,
		store:    store,
		router:   router,
	}

	server.setupRoutes()

	return server
}

// Start starts the HTTP server and blocks until the context is
// cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.cfg.Server
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	s.logger.WithField("addr", addr).Info("HTTP server listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	apiGroup := s.router.Group("/api")
	if s.cfg.RateLimit.RequestsPerSecond > 0 {
		apiGroup.Use(rateLimitMiddleware(rate.NewLimiter(
			rate.Limit(s.cfg.RateLimit.RequestsPerSecond),
			s.cfg.RateLimit.Burst,
		)))
	}
	{
		apiGroup.POST("/analyze", s.handleAnalyze)
		apiGroup.GET("/history", s.handleListHistory)
		apiGroup.GET("/history/:id", s.handleGetHistory)
	}
}

// handleHealth reports the configured mode and active model.
func (s *Server) handleHealth(c *gin.Context) {
	mode := string(domain.SourceRules)
	model := ""
	if s.resolver != nil {
		mode = s.resolver.Mode()
		model = s.resolver.ActiveModel()
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"mode":   mode,
		"model":  model,
	})
}

// handleAnalyze runs an analysis request. Provider failures never
// surface to the client; the rule-based engine is the terminal
// fallback.
func (s *Server) handleAnalyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.Server.MaxBodyBytes)

	var req domain.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	symptoms := strings.TrimSpace(req.Symptoms)
	if symptoms == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symptoms is required"})
		return
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	result, source := s.analyze(c.Request.Context(), symptoms, language)
	s.saveHistory(c.Request.Context(), result, source)

	c.JSON(http.StatusOK, result)
}

func (s *Server) analyze(ctx context.Context, symptoms, language string) (*domain.DiagnosticResult, domain.AnalysisSource) {
	if s.resolver != nil {
		result, source, err := s.resolver.Analyze(ctx, symptoms, language)
		if err == nil {
			return result, source
		}
		s.logger.WithError(err).Warn("Provider analysis failed, falling back to rule-based analysis")
	}
	return s.engine.Analyze(symptoms, language), domain.SourceRules
}

// saveHistory persists the result best-effort; storage failures are
// logged and never fail the request.
func (s *Server) saveHistory(ctx context.Context, result *domain.DiagnosticResult, source domain.AnalysisSource) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, history.FromResult(result, source)); err != nil {
		s.logger.WithError(err).WithField("result_id", result.ID).Error("Failed to save analysis history")
	}
}

const defaultHistoryLimit = 50

// handleListHistory returns stored analyses, newest first.
func (s *Server) handleListHistory(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "history storage is disabled"})
		return
	}

	limit := defaultHistoryLimit
	offset := 0
	if v, err := parsePositiveInt(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	if v, err := parsePositiveInt(c.Query("offset")); err == nil {
		offset = v
	}

	records, err := s.store.List(c.Request.Context(), limit, offset)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list analysis history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list history"})
		return
	}
	count, err := s.store.Count(c.Request.Context())
	if err != nil {
		s.logger.WithError(err).Error("Failed to count analysis history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list history"})
		return
	}

	if records == nil {
		records = []*history.Record{}
	}
	c.JSON(http.StatusOK, gin.H{
		"total":   count,
		"records": records,
	})
}

// handleGetHistory returns one stored analysis by ID.
func (s *Server) handleGetHistory(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "history storage is disabled"})
		return
	}

	record, err := s.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.logger.WithError(err).Error("Failed to load analysis history record")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load record"})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

func parsePositiveInt(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value")
	}
	return n, nil
}

// corsMiddleware adds CORS headers to responses
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")
		c.Header("Access-Control-Expose-Headers", "Content-Length")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware adds a unique request ID to each request
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}

// rateLimitMiddleware rejects requests beyond the configured rate.
func rateLimitMiddleware(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
