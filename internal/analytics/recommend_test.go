package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clip-insights/internal/models"
)

func TestFormatTimeSlot(t *testing.T) {
	tests := []struct {
		slot     models.TimeSlotInsight
		expected string
		ok       bool
	}{
		{models.TimeSlotInsight{Day: 0, Hour: 9}, "Sunday at 9:00", true},
		{models.TimeSlotInsight{Day: 1, Hour: 14}, "Monday at 14:00", true},
		{models.TimeSlotInsight{Day: 6, Hour: 23}, "Saturday at 23:00", true},
		{models.TimeSlotInsight{Day: 7, Hour: 10}, "", false},
		{models.TimeSlotInsight{Day: -1, Hour: 10}, "", false},
	}

	for _, tt := range tests {
		got, ok := FormatTimeSlot(tt.slot)
		assert.Equal(t, tt.ok, ok)
		assert.Equal(t, tt.expected, got)
	}
}

func TestGenerateRecommendations_EmptyResults(t *testing.T) {
	rec := GenerateRecommendations(models.AnalysisResults{})

	assert.Equal(t, "Not enough data to recommend a video length", rec.OptimalDuration.Message)
	assert.Equal(t, "Not enough data to recommend a posting time", rec.BestPostingTime.Message)
	assert.Empty(t, rec.BestPostingTime.Best)
	assert.Equal(t, "No hashtags found in this batch", rec.Hashtags.Message)
	assert.Equal(t, "No music found in this batch", rec.Music.Message)

	require.NotNil(t, rec.BestPostingTime.Slots)
	require.NotNil(t, rec.Hashtags.Tags)
	require.NotNil(t, rec.Music.Tracks)
	assert.Empty(t, rec.BestPostingTime.Slots)
	assert.Empty(t, rec.Hashtags.Tags)
	assert.Empty(t, rec.Music.Tracks)
}

func TestGenerateRecommendations_TruncatesTopLists(t *testing.T) {
	results := models.AnalysisResults{
		OptimalDuration: models.DurationInsight{Duration: 21, AvgEngagement: 0.12, SampleSize: 4},
	}
	for i := 0; i < 5; i++ {
		results.BestPostingTimes = append(results.BestPostingTimes, models.TimeSlotInsight{Day: 5, Hour: 18 + i})
	}
	for i := 0; i < 8; i++ {
		results.TopHashtags = append(results.TopHashtags, models.HashtagInsight{Tag: string(rune('a' + i))})
		results.TopMusic = append(results.TopMusic, models.MusicInsight{Music: string(rune('a' + i))})
	}

	rec := GenerateRecommendations(results)

	assert.Equal(t, results.OptimalDuration, rec.OptimalDuration.Value)
	assert.Equal(t, "Videos around 21 seconds get the highest engagement", rec.OptimalDuration.Message)

	require.Len(t, rec.BestPostingTime.Slots, 3)
	assert.Equal(t, "Friday at 18:00", rec.BestPostingTime.Best)
	assert.Equal(t, "Post on Friday at 18:00 for the best engagement", rec.BestPostingTime.Message)

	require.Len(t, rec.Hashtags.Tags, 5)
	assert.Equal(t, "a", rec.Hashtags.Tags[0].Tag)
	assert.Equal(t, "e", rec.Hashtags.Tags[4].Tag)

	require.Len(t, rec.Music.Tracks, 3)
	assert.Equal(t, "c", rec.Music.Tracks[2].Music)
}

func TestGenerateRecommendations_DoesNotAliasResults(t *testing.T) {
	results := models.AnalysisResults{
		TopHashtags: []models.HashtagInsight{{Tag: "a"}, {Tag: "b"}},
	}

	rec := GenerateRecommendations(results)
	rec.Hashtags.Tags[0].Tag = "changed"

	assert.Equal(t, "a", results.TopHashtags[0].Tag)
}

func TestGenerateRecommendations_InvalidBestSlotFallsBackToPlaceholder(t *testing.T) {
	results := models.AnalysisResults{
		BestPostingTimes: []models.TimeSlotInsight{{Day: 9, Hour: 12}},
	}

	rec := GenerateRecommendations(results)

	assert.Empty(t, rec.BestPostingTime.Best)
	assert.Equal(t, "Not enough data to recommend a posting time", rec.BestPostingTime.Message)
	assert.Len(t, rec.BestPostingTime.Slots, 1)
}
