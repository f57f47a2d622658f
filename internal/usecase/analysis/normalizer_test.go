package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/external/moodapi"
)

func TestNormalizeEmptyEnvelope(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	for _, envelope := range []*moodapi.AnalysisEnvelope{nil, {}} {
		result := Normalize(envelope, now)

		if result.ID != now.UnixMilli() {
			t.Errorf("expected ID %d, got %d", now.UnixMilli(), result.ID)
		}
		if result.Pitch != 150 {
			t.Errorf("expected pitch fallback 150, got %d", result.Pitch)
		}
		if result.Sentiment != 50 {
			t.Errorf("expected sentiment fallback 50, got %d", result.Sentiment)
		}
		if result.Confidence != 80 {
			t.Errorf("expected confidence fallback 80, got %d", result.Confidence)
		}
		if result.Duration != 45 {
			t.Errorf("expected duration fallback 45, got %d", result.Duration)
		}
		if result.DepressionRisk != entities.RiskLow {
			t.Errorf("expected Low risk, got %s", result.DepressionRisk)
		}
	}
}

func TestNormalizeFullPayload(t *testing.T) {
	now := time.Now()
	envelope := &moodapi.AnalysisEnvelope{
		Response: &moodapi.ResponsePayload{
			PitchAnalysis: &moodapi.PitchAnalysis{
				Pitch:        187.6,
				PitchEmotion: "Happy / Normal",
			},
			ReturnedJSON: []moodapi.EmotionChunk{
				{Emotions: []moodapi.EmotionScore{
					{Label: "joy", Score: 0.72},
					{Label: "sadness", Score: 0.15},
					{Label: "anger", Score: 0.05},
					{Label: "fear", Score: 0.03},
					{Label: "neutral", Score: 0.05},
				}},
			},
			AudioLength: 32.8,
		},
	}

	result := Normalize(envelope, now)

	if result.Pitch != 187 {
		t.Errorf("expected pitch 187, got %d", result.Pitch)
	}
	if result.Emotions.Happy != 72 || result.Emotions.Sad != 15 || result.Emotions.Anxious != 3 {
		t.Errorf("unexpected emotion breakdown: %+v", result.Emotions)
	}
	if result.Sentiment != 72 {
		t.Errorf("expected sentiment 72, got %d", result.Sentiment)
	}
	if result.Confidence != 72 {
		t.Errorf("expected confidence 72 from first entry, got %d", result.Confidence)
	}
	if result.Duration != 32 {
		t.Errorf("expected duration 32, got %d", result.Duration)
	}
	if result.Tone.Positive != 100 || result.Tone.Negative != 40 || result.Tone.Neutral != 30 {
		t.Errorf("unexpected tone breakdown: %+v", result.Tone)
	}
	if result.DepressionRisk != entities.RiskLow {
		t.Errorf("expected Low risk, got %s", result.DepressionRisk)
	}
}

func TestNormalizeDepressionRiskTiers(t *testing.T) {
	tests := []struct {
		name     string
		emotions []moodapi.EmotionScore
		want     entities.RiskLevel
	}{
		{
			// 0.9*0.7 + 0.5*0.5 - 0.1*0.3 = 0.85
			name: "high",
			emotions: []moodapi.EmotionScore{
				{Label: "sadness", Score: 0.9},
				{Label: "fear", Score: 0.5},
				{Label: "joy", Score: 0.1},
			},
			want: entities.RiskHigh,
		},
		{
			// 0.5*0.7 + 0.2*0.5 = 0.45
			name: "moderate",
			emotions: []moodapi.EmotionScore{
				{Label: "sadness", Score: 0.5},
				{Label: "fear", Score: 0.2},
			},
			want: entities.RiskModerate,
		},
		{
			// joy dominates, weighted score goes negative
			name: "joy pulls below zero",
			emotions: []moodapi.EmotionScore{
				{Label: "joy", Score: 0.9},
				{Label: "sadness", Score: 0.1},
			},
			want: entities.RiskLow,
		},
		{
			name:     "no emotions",
			emotions: nil,
			want:     entities.RiskLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope := &moodapi.AnalysisEnvelope{
				Response: &moodapi.ResponsePayload{
					ReturnedJSON: []moodapi.EmotionChunk{{Emotions: tt.emotions}},
				},
			}
			result := Normalize(envelope, time.Now())
			if result.DepressionRisk != tt.want {
				t.Errorf("expected %s, got %s", tt.want, result.DepressionRisk)
			}
		})
	}
}

func TestNormalizePitchFallbacks(t *testing.T) {
	for _, pitch := range []float64{0, -12, math.Inf(1), math.NaN()} {
		envelope := &moodapi.AnalysisEnvelope{
			Response: &moodapi.ResponsePayload{
				PitchAnalysis: &moodapi.PitchAnalysis{Pitch: pitch},
			},
		}
		result := Normalize(envelope, time.Now())
		if result.Pitch != 150 {
			t.Errorf("pitch %v: expected fallback 150, got %d", pitch, result.Pitch)
		}
	}
}

func TestNormalizeNearZeroConfidenceTakesFallback(t *testing.T) {
	// 0.004 floors to 0, which takes the fallback instead
	envelope := &moodapi.AnalysisEnvelope{
		Response: &moodapi.ResponsePayload{
			ReturnedJSON: []moodapi.EmotionChunk{
				{Emotions: []moodapi.EmotionScore{
					{Label: "neutral", Score: 0.004},
					{Label: "sadness", Score: 0.3},
				}},
			},
		},
	}
	result := Normalize(envelope, time.Now())
	if result.Confidence != 80 {
		t.Errorf("expected confidence fallback 80, got %d", result.Confidence)
	}
}

func TestNormalizeZeroJoyKeepsNeutralSentiment(t *testing.T) {
	envelope := &moodapi.AnalysisEnvelope{
		Response: &moodapi.ResponsePayload{
			ReturnedJSON: []moodapi.EmotionChunk{
				{Emotions: []moodapi.EmotionScore{
					{Label: "sadness", Score: 0.4},
					{Label: "neutral", Score: 0.6},
				}},
			},
		},
	}
	result := Normalize(envelope, time.Now())
	if result.Sentiment != 50 {
		t.Errorf("expected neutral midpoint 50, got %d", result.Sentiment)
	}
}
