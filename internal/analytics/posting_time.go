package analytics

import (
	"sort"
	"time"

	"github.com/clip-insights/internal/models"
)

// maxPostingSlots is the number of time slots reported by AnalyzePostingTimes
const maxPostingSlots = 5

// slotKey identifies a weekday/hour posting slot
type slotKey struct {
	day  int
	hour int
}

// AnalyzePostingTimes groups videos by the weekday and hour they were posted,
// as seen in loc, and returns up to five slots ordered by average engagement.
// Slots with equal engagement keep the order in which they first appear.
func AnalyzePostingTimes(videos []models.Video, loc *time.Location) []models.TimeSlotInsight {
	slots := newGroupSet[slotKey]()
	for i := range videos {
		v := &videos[i]
		posted := v.CreateTime.In(loc)
		key := slotKey{day: int(posted.Weekday()), hour: posted.Hour()}
		slots.add(key, v, EngagementRate(v))
	}

	insights := make([]models.TimeSlotInsight, 0, slots.len())
	slots.each(func(key slotKey, g *group) {
		insights = append(insights, models.TimeSlotInsight{
			Day:           key.day,
			Hour:          key.hour,
			Count:         g.count(),
			AvgEngagement: g.avgEngagement(),
		})
	})

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].AvgEngagement > insights[j].AvgEngagement
	})

	if len(insights) > maxPostingSlots {
		insights = insights[:maxPostingSlots]
	}
	return insights
}
