// Package analytics computes engagement statistics over a batch of
// short-form videos and turns them into posting recommendations.
//
// Every aggregator is a single pass over the input slice. Inputs are never
// modified and no state is kept between calls.
package analytics

import "github.com/clip-insights/internal/models"

// EngagementRate returns (likes+comments+shares)/views for a video.
// A video without views has a rate of 0.
func EngagementRate(v *models.Video) float64 {
	if v.Stats.Views == 0 {
		return 0
	}

	interactions := v.Stats.Likes + v.Stats.Comments + v.Stats.Shares
	return float64(interactions) / float64(v.Stats.Views)
}
