package analytics

import (
	"fmt"

	"github.com/clip-insights/internal/models"
)

const (
	recommendedSlots    = 3
	recommendedHashtags = 5
	recommendedTracks   = 3
)

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// FormatTimeSlot renders a slot as "<day> at <hour>:00".
// It reports false when the slot's day is not a valid weekday.
func FormatTimeSlot(slot models.TimeSlotInsight) (string, bool) {
	if slot.Day < 0 || slot.Day >= len(dayNames) {
		return "", false
	}
	return fmt.Sprintf("%s at %d:00", dayNames[slot.Day], slot.Hour), true
}

// GenerateRecommendations turns analysis results into suggestions for the
// next video. Missing data produces placeholder messages, never a failure.
func GenerateRecommendations(results models.AnalysisResults) models.Recommendations {
	return models.Recommendations{
		OptimalDuration: durationRecommendation(results.OptimalDuration),
		BestPostingTime: postingTimeRecommendation(results.BestPostingTimes),
		Hashtags: models.HashtagRecommendation{
			Tags:    firstN(results.TopHashtags, recommendedHashtags),
			Message: pick(len(results.TopHashtags) > 0, "Use these hashtags to reach a wider audience", "No hashtags found in this batch"),
		},
		Music: models.MusicRecommendation{
			Tracks:  firstN(results.TopMusic, recommendedTracks),
			Message: pick(len(results.TopMusic) > 0, "These sounds perform best with your audience", "No music found in this batch"),
		},
	}
}

func durationRecommendation(d models.DurationInsight) models.DurationRecommendation {
	if d.SampleSize == 0 {
		return models.DurationRecommendation{
			Value:   d,
			Message: "Not enough data to recommend a video length",
		}
	}
	return models.DurationRecommendation{
		Value:   d,
		Message: fmt.Sprintf("Videos around %d seconds get the highest engagement", d.Duration),
	}
}

func postingTimeRecommendation(slots []models.TimeSlotInsight) models.PostingTimeRecommendation {
	rec := models.PostingTimeRecommendation{
		Slots:   firstN(slots, recommendedSlots),
		Message: "Not enough data to recommend a posting time",
	}
	if len(slots) == 0 {
		return rec
	}

	if best, ok := FormatTimeSlot(slots[0]); ok {
		rec.Best = best
		rec.Message = fmt.Sprintf("Post on %s for the best engagement", best)
	}
	return rec
}

// firstN copies at most n leading items, returning an empty (non-nil) slice
// for missing input so it encodes as [] rather than null.
func firstN[T any](items []T, n int) []T {
	out := make([]T, min(n, len(items)))
	copy(out, items)
	return out
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
