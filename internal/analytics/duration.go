package analytics

import "github.com/clip-insights/internal/models"

// AnalyzeDuration groups videos by whole seconds of duration and returns the
// duration with the highest average engagement. When several durations share
// the best average, the one seen first in the input wins.
//
// An empty batch yields a zero DurationInsight with no sample size.
func AnalyzeDuration(videos []models.Video) models.DurationInsight {
	byDuration := newGroupSet[int]()
	for i := range videos {
		v := &videos[i]
		// int conversion truncates toward zero: 12.9s and 12.1s share a bucket
		byDuration.add(int(v.Duration), v, EngagementRate(v))
	}

	var best models.DurationInsight
	byDuration.each(func(seconds int, g *group) {
		avg := g.avgEngagement()
		if best.SampleSize == 0 || avg > best.AvgEngagement {
			best = models.DurationInsight{
				Duration:      seconds,
				AvgEngagement: avg,
				SampleSize:    g.count(),
			}
		}
	})

	return best
}
