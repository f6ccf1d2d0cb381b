package analytics

import "github.com/clip-insights/internal/models"

// Tier is a coarse engagement classification
type Tier string

const (
	TierHigh    Tier = "high"
	TierMedium  Tier = "medium"
	TierAverage Tier = "average"
	TierLow     Tier = "low"
)

// Thresholds holds the engagement rate boundaries used to classify videos.
// A rate at or above High is high, at or above Medium is medium, below Low
// is low, and anything in between is average.
type Thresholds struct {
	High   float64 `json:"high"`
	Medium float64 `json:"medium"`
	Low    float64 `json:"low"`
}

// DefaultThresholds returns the standard short-form engagement boundaries
func DefaultThresholds() Thresholds {
	return Thresholds{
		High:   0.15,
		Medium: 0.08,
		Low:    0.03,
	}
}

// Classify returns the tier for an engagement rate
func (t Thresholds) Classify(rate float64) Tier {
	switch {
	case rate >= t.High:
		return TierHigh
	case rate >= t.Medium:
		return TierMedium
	case rate < t.Low:
		return TierLow
	default:
		return TierAverage
	}
}

// Breakdown counts the videos of a batch per tier
func (t Thresholds) Breakdown(videos []models.Video) models.TierBreakdown {
	var b models.TierBreakdown
	for i := range videos {
		switch t.Classify(EngagementRate(&videos[i])) {
		case TierHigh:
			b.High++
		case TierMedium:
			b.Medium++
		case TierAverage:
			b.Average++
		case TierLow:
			b.Low++
		}
	}
	return b
}
