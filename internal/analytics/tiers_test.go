package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clip-insights/internal/models"
)

func TestThresholds_Classify(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		rate     float64
		expected Tier
	}{
		{0.50, TierHigh},
		{0.15, TierHigh},
		{0.149, TierMedium},
		{0.08, TierMedium},
		{0.079, TierAverage},
		{0.03, TierAverage},
		{0.029, TierLow},
		{0, TierLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, th.Classify(tt.rate), "rate %v", tt.rate)
	}
}

func TestThresholds_Breakdown(t *testing.T) {
	videos := []models.Video{
		newVideo("high", 100, 20, 0, 0),
		newVideo("medium", 100, 10, 0, 0),
		newVideo("average", 100, 5, 0, 0),
		newVideo("low", 100, 1, 0, 0),
		newVideo("unseen", 0, 3, 0, 0),
	}

	got := DefaultThresholds().Breakdown(videos)

	assert.Equal(t, models.TierBreakdown{High: 1, Medium: 1, Average: 1, Low: 2}, got)
}

func TestThresholds_CustomBoundaries(t *testing.T) {
	th := Thresholds{High: 0.5, Medium: 0.2, Low: 0.1}

	assert.Equal(t, TierMedium, th.Classify(0.3))
	assert.Equal(t, TierAverage, th.Classify(0.15))
}
