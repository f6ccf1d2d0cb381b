package models

import "time"

// NoMusic is the music identifier for videos that use their own audio
const NoMusic = "original sound"

// Stats holds the engagement counters of a video
type Stats struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Shares   int64 `json:"shares"`
}

// Video represents a short-form video as delivered by the platform client
type Video struct {
	ID         string    `json:"id"`
	Stats      Stats     `json:"stats"`
	Duration   float64   `json:"duration"`
	CreateTime time.Time `json:"createTime"`
	Hashtags   []string  `json:"hashtags"`
	Music      string    `json:"music"`
}

// MusicKey returns the grouping key for the video's background music.
// Videos without a music identifier are grouped under NoMusic.
func (v *Video) MusicKey() string {
	if v.Music == "" {
		return NoMusic
	}
	return v.Music
}

// VideoBatch is the request body accepted by the analysis endpoint
type VideoBatch struct {
	Videos []Video `json:"videos"`
}
