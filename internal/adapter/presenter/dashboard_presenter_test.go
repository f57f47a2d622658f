package presenter

import (
	"testing"
	"time"

	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
)

func sampleResult() *entities.NormalizedResult {
	return &entities.NormalizedResult{
		ID:        1700000000000,
		Timestamp: time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
		Pitch:     165,
		Sentiment: 72,
		Emotions: entities.EmotionBreakdown{
			Happy: 72, Sad: 10, Angry: 5, Anxious: 8, Neutral: 5,
		},
		Tone:           entities.ToneBreakdown{Positive: 100, Negative: 40, Neutral: 30},
		DepressionRisk: entities.RiskLow,
		Confidence:     72,
		Duration:       32,
		RecommendedVideos: entities.VideoRecommendations{
			{Title: "Recommended Video 1", URL: "https://www.youtube.com/watch?v=ZToicYcHIOU"},
			{Title: "Recommended Video 2", URL: "https://example.com/not-a-video"},
			{Title: "Recommended Video 3", URL: "https://youtu.be/inpok4MKVLM"},
		},
	}
}

func TestPresentDashboard(t *testing.T) {
	view := PresentDashboard(sampleResult())

	if view.OverallMood != "Happy" {
		t.Errorf("expected Happy, got %s", view.OverallMood)
	}
	if view.SentimentScore != "72%" {
		t.Errorf("expected 72%%, got %s", view.SentimentScore)
	}
	if view.VoicePitch != "165 Hz" {
		t.Errorf("expected 165 Hz, got %s", view.VoicePitch)
	}
	if view.DepressionRisk != entities.RiskLow {
		t.Errorf("expected stored risk Low, got %s", view.DepressionRisk)
	}
	if view.AnalysisDate != "6/10/2025" {
		t.Errorf("unexpected date %s", view.AnalysisDate)
	}
	if view.SampleDuration != "32 seconds" {
		t.Errorf("unexpected duration %s", view.SampleDuration)
	}

	// Display strings must not re-round the already-integer values
	if view.Charts.Sentiment != 72 {
		t.Errorf("chart sentiment should match stored value, got %d", view.Charts.Sentiment)
	}
	if view.Charts.Emotions != [5]int{72, 10, 5, 8, 5} {
		t.Errorf("unexpected emotion series %v", view.Charts.Emotions)
	}
	if view.Charts.Tone != [3]int{100, 40, 30} {
		t.Errorf("unexpected tone series %v", view.Charts.Tone)
	}
}

func TestPresentDashboardDropsUnembeddableVideos(t *testing.T) {
	view := PresentDashboard(sampleResult())

	if len(view.Videos) != 2 {
		t.Fatalf("expected 2 embeddable videos, got %d", len(view.Videos))
	}
	if view.Videos[0].VideoID != "ZToicYcHIOU" {
		t.Errorf("unexpected first video id %s", view.Videos[0].VideoID)
	}
	if view.Videos[0].EmbedURL != "https://www.youtube.com/embed/ZToicYcHIOU" {
		t.Errorf("unexpected embed URL %s", view.Videos[0].EmbedURL)
	}
	if view.Videos[1].VideoID != "inpok4MKVLM" {
		t.Errorf("unexpected second video id %s", view.Videos[1].VideoID)
	}
}

func TestPitchBands(t *testing.T) {
	tests := []struct {
		pitch int
		want  [5]int
	}{
		// 150 Hz sits in the mid band only
		{150, [5]int{0, 0, 50, 0, 0}},
		// 110 Hz overlaps low and mid-low
		{110, [5]int{8, 25, 0, 0, 0}},
		// 195 Hz overlaps mid-high and high
		{195, [5]int{0, 0, 0, 87, 50}},
		// 250 Hz: only the high band, clamped to 100
		{250, [5]int{0, 0, 0, 0, 100}},
		// 0 Hz: low band saturates
		{0, [5]int{100, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		if got := pitchBands(tt.pitch); got != tt.want {
			t.Errorf("pitchBands(%d) = %v, want %v", tt.pitch, got, tt.want)
		}
	}
}

func TestPresentHistoryWindow(t *testing.T) {
	history := make([]entities.NormalizedResult, 8)
	for i := range history {
		history[i].Sentiment = i * 10
	}

	points := PresentHistory(history)
	if len(points) != 5 {
		t.Fatalf("expected window of 5, got %d", len(points))
	}
	if points[0].Sentiment != 30 || points[4].Sentiment != 70 {
		t.Errorf("expected last five sentiments, got %v", points)
	}
	if points[0].Label != "Day 1" || points[4].Label != "Day 5" {
		t.Errorf("unexpected labels %v", points)
	}
}
