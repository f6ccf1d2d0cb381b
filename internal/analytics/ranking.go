package analytics

import (
	"sort"

	"github.com/clip-insights/internal/models"
)

// AnalyzeHashtags ranks every hashtag in the batch by performance score.
// A video that lists the same tag twice contributes to that tag twice.
func AnalyzeHashtags(videos []models.Video) []models.HashtagInsight {
	tags := newGroupSet[string]()
	for i := range videos {
		v := &videos[i]
		rate := EngagementRate(v)
		for _, tag := range v.Hashtags {
			tags.add(tag, v, rate)
		}
	}

	insights := make([]models.HashtagInsight, 0, tags.len())
	tags.each(func(tag string, g *group) {
		avg := g.avgEngagement()
		insights = append(insights, models.HashtagInsight{
			Tag:              tag,
			AvgEngagement:    avg,
			TotalViews:       g.sumViews,
			UseCount:         g.count(),
			PerformanceScore: performanceScore(avg, g.sumViews),
		})
	})

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].PerformanceScore > insights[j].PerformanceScore
	})
	return insights
}

// AnalyzeMusic ranks every music track in the batch by performance score.
// Videos without music are grouped under models.NoMusic.
func AnalyzeMusic(videos []models.Video) []models.MusicInsight {
	tracks := newGroupSet[string]()
	for i := range videos {
		v := &videos[i]
		tracks.add(v.MusicKey(), v, EngagementRate(v))
	}

	insights := make([]models.MusicInsight, 0, tracks.len())
	tracks.each(func(music string, g *group) {
		avg := g.avgEngagement()
		insights = append(insights, models.MusicInsight{
			Music:            music,
			AvgEngagement:    avg,
			TotalViews:       g.sumViews,
			UseCount:         g.count(),
			PerformanceScore: performanceScore(avg, g.sumViews),
		})
	})

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].PerformanceScore > insights[j].PerformanceScore
	})
	return insights
}
