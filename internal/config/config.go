package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/clip-insights/internal/analytics"
)

var (
	ErrInvalidThresholds = errors.New("invalid engagement thresholds")
	ErrInvalidTimezone   = errors.New("invalid analysis timezone")
)

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
}

// ServerConfig holds HTTP adapter configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxBatchSize   int      `mapstructure:"max_batch_size"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AnalysisConfig holds the analyzer settings
type AnalysisConfig struct {
	// Timezone is an IANA name or "Local"; posting slots are derived in it
	Timezone   string           `mapstructure:"timezone"`
	Thresholds ThresholdsConfig `mapstructure:"thresholds"`
}

// ThresholdsConfig holds the engagement tier boundaries
type ThresholdsConfig struct {
	High   float64 `mapstructure:"high"`
	Medium float64 `mapstructure:"medium"`
	Low    float64 `mapstructure:"low"`
}

// Load reads configuration from defaults, an optional YAML file and
// environment variables, in increasing order of precedence.
// Nested keys map to upper-case variables, e.g. analysis.thresholds.high is
// ANALYSIS_THRESHOLDS_HIGH. PORT, LOG_LEVEL and LOG_FORMAT are accepted as
// shorter aliases.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	aliases := map[string][]string{
		"server.port":    {"SERVER_PORT", "PORT"},
		"logging.level":  {"LOGGING_LEVEL", "LOG_LEVEL"},
		"logging.format": {"LOGGING_FORMAT", "LOG_FORMAT"},
	}
	for key, names := range aliases {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := analytics.DefaultThresholds()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.max_batch_size", 10000)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("analysis.timezone", "Local")
	v.SetDefault("analysis.thresholds.high", defaults.High)
	v.SetDefault("analysis.thresholds.medium", defaults.Medium)
	v.SetDefault("analysis.thresholds.low", defaults.Low)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("server.allowed_origins must contain at least one origin")
	}
	if c.Server.MaxBatchSize < 1 {
		return fmt.Errorf("server.max_batch_size must be at least 1")
	}

	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level must be one of: trace, debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("logging.format must be one of: json, console")
	}

	if _, err := c.Analysis.Location(); err != nil {
		return err
	}

	t := c.Analysis.Thresholds
	if t.Low < 0 || t.Low > t.Medium || t.Medium > t.High {
		return fmt.Errorf("%w: expected 0 <= low <= medium <= high, got low=%v medium=%v high=%v",
			ErrInvalidThresholds, t.Low, t.Medium, t.High)
	}

	return nil
}

// Location resolves the configured timezone
func (a *AnalysisConfig) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return nil, fmt.Errorf("%w: analysis.timezone is required", ErrInvalidTimezone)
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimezone, err)
	}
	return loc, nil
}

// EngagementThresholds converts the configured boundaries for the analyzer
func (a *AnalysisConfig) EngagementThresholds() analytics.Thresholds {
	return analytics.Thresholds{
		High:   a.Thresholds.High,
		Medium: a.Thresholds.Medium,
		Low:    a.Thresholds.Low,
	}
}
