package analytics

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/clip-insights/internal/models"
)

// Analyzer runs the full batch analysis. It only holds configuration, so a
// single Analyzer can serve concurrent callers.
type Analyzer struct {
	location   *time.Location
	thresholds Thresholds
	logger     zerolog.Logger
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithLocation sets the calendar used to derive posting weekday and hour.
// Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(a *Analyzer) {
		if loc != nil {
			a.location = loc
		}
	}
}

// WithThresholds sets the engagement tier boundaries
func WithThresholds(t Thresholds) Option {
	return func(a *Analyzer) {
		a.thresholds = t
	}
}

// WithLogger sets the logger used for batch diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// New creates an Analyzer
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		location:   time.Local,
		thresholds: DefaultThresholds(),
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Location returns the calendar used for posting time slots
func (a *Analyzer) Location() *time.Location {
	return a.location
}

// Thresholds returns the engagement tier boundaries
func (a *Analyzer) Thresholds() Thresholds {
	return a.thresholds
}

// AnalyzePostingTimes ranks posting slots using the analyzer's calendar
func (a *Analyzer) AnalyzePostingTimes(videos []models.Video) []models.TimeSlotInsight {
	return AnalyzePostingTimes(videos, a.location)
}

// AnalyzeVideoBatch runs every aggregator over the batch and builds the
// recommendations from their results.
func (a *Analyzer) AnalyzeVideoBatch(videos []models.Video) models.BatchReport {
	results := models.AnalysisResults{
		OptimalDuration:  AnalyzeDuration(videos),
		BestPostingTimes: a.AnalyzePostingTimes(videos),
		TopHashtags:      AnalyzeHashtags(videos),
		TopMusic:         AnalyzeMusic(videos),
	}

	report := models.BatchReport{
		AnalysisResults: results,
		Recommendations: GenerateRecommendations(results),
		EngagementTiers: a.thresholds.Breakdown(videos),
	}

	a.logger.Debug().
		Int("videos", len(videos)).
		Int("optimal_duration", results.OptimalDuration.Duration).
		Int("posting_slots", len(results.BestPostingTimes)).
		Int("hashtags", len(results.TopHashtags)).
		Int("tracks", len(results.TopMusic)).
		Msg("Analyzed video batch")

	return report
}
