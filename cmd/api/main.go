package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/clip-insights/internal/analytics"
	"github.com/clip-insights/internal/api"
	"github.com/clip-insights/internal/config"
	"github.com/clip-insights/internal/logging"
)

func main() {
	// Load environment variables from .env file
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fallback := logging.New(logging.Config{})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if envErr != nil {
		logger.Warn().Msg(".env file not found")
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	loc, err := cfg.Analysis.Location()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to resolve analysis timezone")
	}

	analyzer := analytics.New(
		analytics.WithLocation(loc),
		analytics.WithThresholds(cfg.Analysis.EngagementThresholds()),
		analytics.WithLogger(logger.With().Str("component", "analyzer").Logger()),
	)

	gin.SetMode(gin.ReleaseMode)
	server := api.NewServer(cfg.Server, analyzer, logger.With().Str("component", "api").Logger())

	logger.Info().
		Str("port", cfg.Server.Port).
		Str("timezone", loc.String()).
		Msg("Server starting")
	if err := server.Start(cfg.Server.Port); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
