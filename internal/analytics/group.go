package analytics

import (
	"math"

	"github.com/clip-insights/internal/models"
)

// group accumulates the videos that share one grouping key
type group struct {
	sumEngagement float64
	sumViews      int64
	videoIDs      []string
}

func (g *group) add(v *models.Video, rate float64) {
	g.sumEngagement += rate
	g.sumViews += v.Stats.Views
	g.videoIDs = append(g.videoIDs, v.ID)
}

func (g *group) count() int {
	return len(g.videoIDs)
}

// avgEngagement is only called on groups holding at least one video.
func (g *group) avgEngagement() float64 {
	return g.sumEngagement / float64(g.count())
}

// groupSet keeps groups by key together with the order keys were first seen,
// so rankings can break ties by input order.
type groupSet[K comparable] struct {
	byKey map[K]*group
	order []K
}

func newGroupSet[K comparable]() *groupSet[K] {
	return &groupSet[K]{byKey: make(map[K]*group)}
}

func (s *groupSet[K]) add(key K, v *models.Video, rate float64) {
	g, ok := s.byKey[key]
	if !ok {
		g = &group{}
		s.byKey[key] = g
		s.order = append(s.order, key)
	}
	g.add(v, rate)
}

func (s *groupSet[K]) len() int {
	return len(s.order)
}

// each visits groups in first-seen order.
func (s *groupSet[K]) each(fn func(key K, g *group)) {
	for _, key := range s.order {
		fn(key, s.byKey[key])
	}
}

// performanceScore rewards both engagement quality and reach. Groups without
// any views score 0 instead of log10(0) = -Inf.
func performanceScore(avgEngagement float64, totalViews int64) float64 {
	if totalViews < 1 {
		totalViews = 1
	}
	return avgEngagement * math.Log10(float64(totalViews))
}
