package analytics

import (
	"time"

	"github.com/clip-insights/internal/models"
)

// monday is 2024-01-15, a Monday.
func monday(hour int) time.Time {
	return time.Date(2024, time.January, 15, hour, 0, 0, 0, time.UTC)
}

func newVideo(id string, views, likes, comments, shares int64) models.Video {
	return models.Video{
		ID: id,
		Stats: models.Stats{
			Views:    views,
			Likes:    likes,
			Comments: comments,
			Shares:   shares,
		},
		CreateTime: monday(12),
	}
}

func withDuration(v models.Video, seconds float64) models.Video {
	v.Duration = seconds
	return v
}

func postedAt(v models.Video, t time.Time) models.Video {
	v.CreateTime = t
	return v
}

func tagged(v models.Video, tags ...string) models.Video {
	v.Hashtags = tags
	return v
}

func withMusic(v models.Video, music string) models.Video {
	v.Music = music
	return v
}
