package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RiskLevel is a three-tier risk classification derived from a numeric
// score via fixed thresholds.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// IsValid checks if the risk level is valid
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskModerate, RiskHigh:
		return true
	}
	return false
}

// EmotionBreakdown maps the fixed emotion label set to whole-number
// percentages (0-100, floor-rounded from classifier scores).
type EmotionBreakdown struct {
	Happy   int `json:"happy"`
	Sad     int `json:"sad"`
	Angry   int `json:"angry"`
	Anxious int `json:"anxious"`
	Neutral int `json:"neutral"`
}

// ToneBreakdown holds the coarse categorical tone split (0-100 each).
type ToneBreakdown struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// VideoRecommendation is one extracted video link, labeled in
// first-seen order.
type VideoRecommendation struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// VideoRecommendations is the ordered, URL-deduplicated list attached
// to a result.
type VideoRecommendations []VideoRecommendation

// NormalizedResult is the canonical record produced by reducing one
// voice-analysis provider payload to fixed-range integers. Every
// numeric field is an integer in its documented range; missing or
// invalid upstream fields are replaced by fallback constants, never by
// NaN or a zero value that the UI cannot render.
type NormalizedResult struct {
	// ID is derived from creation time (Unix milliseconds) and is
	// monotonic enough for per-user history ordering.
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`

	Pitch          int              `json:"pitch"`
	Sentiment      int              `json:"sentiment"`
	Emotions       EmotionBreakdown `json:"emotions" gorm:"type:jsonb;serializer:json"`
	Tone           ToneBreakdown    `json:"tone" gorm:"type:jsonb;serializer:json"`
	DepressionRisk RiskLevel        `json:"depression_risk" gorm:"type:varchar(20)"`
	Confidence     int              `json:"confidence"`
	Duration       int              `json:"duration"`

	RecommendedVideos VideoRecommendations `json:"recommended_videos" gorm:"type:jsonb;serializer:json"`

	// RawAPIResponse is the opaque provider payload, kept verbatim for
	// audit and export. It is never interpreted again after
	// normalization.
	RawAPIResponse datatypes.JSON `json:"raw_api_response,omitempty" gorm:"type:jsonb"`

	// IsMock marks results synthesized locally after an upstream
	// failure so the dashboard never shows a broken state.
	IsMock bool `json:"is_mock,omitempty" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for NormalizedResult
func (NormalizedResult) TableName() string {
	return "analysis_results"
}

// DominantMood returns the display label of the highest-scoring
// emotion. Ties resolve to the first label in the fixed order.
func (r *NormalizedResult) DominantMood() string {
	type labeled struct {
		name  string
		score int
	}
	ordered := []labeled{
		{"Happy", r.Emotions.Happy},
		{"Sad", r.Emotions.Sad},
		{"Frustrated", r.Emotions.Angry},
		{"Anxious", r.Emotions.Anxious},
		{"Neutral", r.Emotions.Neutral},
	}
	best := ordered[0]
	for _, l := range ordered[1:] {
		if l.score > best.score {
			best = l
		}
	}
	return best.name
}
