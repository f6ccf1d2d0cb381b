package models

// DurationInsight is the video length with the best average engagement
type DurationInsight struct {
	Duration      int     `json:"duration"`
	AvgEngagement float64 `json:"avgEngagement"`
	SampleSize    int     `json:"sampleSize,omitempty"`
}

// TimeSlotInsight is the engagement of videos posted in one weekday/hour slot.
// Day follows time.Weekday numbering (0 = Sunday).
type TimeSlotInsight struct {
	Day           int     `json:"day"`
	Hour          int     `json:"hour"`
	Count         int     `json:"count"`
	AvgEngagement float64 `json:"avgEngagement"`
}

// HashtagInsight ranks a hashtag by engagement and reach
type HashtagInsight struct {
	Tag              string  `json:"tag"`
	AvgEngagement    float64 `json:"avgEngagement"`
	TotalViews       int64   `json:"totalViews"`
	UseCount         int     `json:"useCount"`
	PerformanceScore float64 `json:"performanceScore"`
}

// MusicInsight ranks a music track by engagement and reach
type MusicInsight struct {
	Music            string  `json:"music"`
	AvgEngagement    float64 `json:"avgEngagement"`
	TotalViews       int64   `json:"totalViews"`
	UseCount         int     `json:"useCount"`
	PerformanceScore float64 `json:"performanceScore"`
}

// AnalysisResults bundles the output of the four aggregators
type AnalysisResults struct {
	OptimalDuration  DurationInsight   `json:"optimalDuration"`
	BestPostingTimes []TimeSlotInsight `json:"bestPostingTimes"`
	TopHashtags      []HashtagInsight  `json:"topHashtags"`
	TopMusic         []MusicInsight    `json:"topMusic"`
}

// DurationRecommendation suggests a video length
type DurationRecommendation struct {
	Value   DurationInsight `json:"value"`
	Message string          `json:"message"`
}

// PostingTimeRecommendation suggests when to post
type PostingTimeRecommendation struct {
	Slots   []TimeSlotInsight `json:"slots"`
	Best    string            `json:"best,omitempty"`
	Message string            `json:"message"`
}

// HashtagRecommendation suggests hashtags to use
type HashtagRecommendation struct {
	Tags    []HashtagInsight `json:"tags"`
	Message string           `json:"message"`
}

// MusicRecommendation suggests background music
type MusicRecommendation struct {
	Tracks  []MusicInsight `json:"tracks"`
	Message string         `json:"message"`
}

// Recommendations is the human readable view over AnalysisResults
type Recommendations struct {
	OptimalDuration DurationRecommendation    `json:"optimalDuration"`
	BestPostingTime PostingTimeRecommendation `json:"bestPostingTime"`
	Hashtags        HashtagRecommendation     `json:"hashtags"`
	Music           MusicRecommendation       `json:"music"`
}

// TierBreakdown counts videos per engagement tier
type TierBreakdown struct {
	High    int `json:"high"`
	Medium  int `json:"medium"`
	Average int `json:"average"`
	Low     int `json:"low"`
}

// BatchReport is the full result of analyzing one batch of videos
type BatchReport struct {
	AnalysisResults AnalysisResults `json:"analysisResults"`
	Recommendations Recommendations `json:"recommendations"`
	EngagementTiers TierBreakdown   `json:"engagementTiers"`
}
