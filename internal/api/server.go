package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/clip-insights/internal/analytics"
	"github.com/clip-insights/internal/config"
	"github.com/clip-insights/internal/models"
)

// Server represents the API server
type Server struct {
	router       *gin.Engine
	analyzer     *analytics.Analyzer
	maxBatchSize int
	logger       zerolog.Logger
}

// NewServer creates a new API server
func NewServer(cfg config.ServerConfig, analyzer *analytics.Analyzer, logger zerolog.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	server := &Server{
		router:       router,
		analyzer:     analyzer,
		maxBatchSize: cfg.MaxBatchSize,
		logger:       logger,
	}

	server.setupRoutes()

	return server
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	s.router.POST("/analyze", s.analyzeBatch)
	s.router.POST("/analyze/recommendations", s.recommend)
}

// analyzeBatch handles requests to analyze a batch of videos
func (s *Server) analyzeBatch(c *gin.Context) {
	var batch models.VideoBatch
	if err := c.ShouldBindJSON(&batch); err != nil {
		s.logger.Warn().Err(err).Msg("Rejected malformed video batch")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid video batch: " + err.Error(),
		})
		return
	}

	if len(batch.Videos) > s.maxBatchSize {
		s.logger.Warn().
			Int("videos", len(batch.Videos)).
			Int("max_batch_size", s.maxBatchSize).
			Msg("Rejected oversized video batch")
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": "video batch exceeds the maximum batch size",
		})
		return
	}

	report := s.analyzer.AnalyzeVideoBatch(batch.Videos)
	c.JSON(http.StatusOK, report)
}

// recommend rebuilds recommendations from previously computed results
func (s *Server) recommend(c *gin.Context) {
	var results models.AnalysisResults
	if err := c.ShouldBindJSON(&results); err != nil {
		s.logger.Warn().Err(err).Msg("Rejected malformed analysis results")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid analysis results: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, analytics.GenerateRecommendations(results))
}

// requestLogger logs every request through zerolog instead of gin's text logger
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("Handled request")
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the server on the specified port
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}
