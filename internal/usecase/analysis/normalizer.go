package analysis

import (
	"math"
	"time"

	"gorm.io/datatypes"

	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/external/moodapi"
)

// Fallback values used when the provider payload is missing or
// malformed. Normalization never fails: every field degrades to a
// plausible default instead.
const (
	fallbackPitch      = 150
	fallbackSentiment  = 50
	fallbackConfidence = 80
	fallbackDuration   = 45
)

// Normalize converts a raw voice-analysis envelope into a stored
// result. The record ID is derived from the creation time in
// milliseconds, which also serves as the dashboard ordering key.
func Normalize(envelope *moodapi.AnalysisEnvelope, now time.Time) *entities.NormalizedResult {
	result := &entities.NormalizedResult{
		ID:             now.UnixMilli(),
		Timestamp:      now,
		Pitch:          fallbackPitch,
		Sentiment:      fallbackSentiment,
		Confidence:     fallbackConfidence,
		Duration:       fallbackDuration,
		Tone:           normalizeTone(""),
		DepressionRisk: entities.RiskLow,
	}

	if envelope == nil || envelope.Response == nil {
		return result
	}
	payload := envelope.Response

	if len(envelope.Raw) > 0 {
		result.RawAPIResponse = datatypes.JSON(envelope.Raw)
	}

	emotions := firstEmotions(payload)
	result.Emotions = normalizeEmotions(emotions)
	result.Sentiment = sentimentPercent(result.Emotions)
	result.Confidence = confidencePercent(emotions)
	result.DepressionRisk = depressionRisk(emotions)

	var pitchEmotion string
	if pa := payload.PitchAnalysis; pa != nil {
		pitchEmotion = pa.PitchEmotion
		if pitch := pa.Pitch; pitch > 0 && !math.IsInf(pitch, 0) && !math.IsNaN(pitch) {
			result.Pitch = int(math.Floor(pitch))
		}
	}
	result.Tone = normalizeTone(pitchEmotion)

	if payload.AudioLength > 0 {
		result.Duration = int(payload.AudioLength)
	}

	return result
}

// firstEmotions returns the emotion scores of the first chunk, or nil
func firstEmotions(payload *moodapi.ResponsePayload) []moodapi.EmotionScore {
	if len(payload.ReturnedJSON) == 0 {
		return nil
	}
	return payload.ReturnedJSON[0].Emotions
}

// normalizeEmotions maps provider labels onto the five dashboard
// moods, scaling raw 0..1 scores to integer percentages. Unknown
// labels are ignored.
func normalizeEmotions(emotions []moodapi.EmotionScore) entities.EmotionBreakdown {
	var breakdown entities.EmotionBreakdown
	for _, e := range emotions {
		pct := int(math.Floor(e.Score * 100))
		switch e.Label {
		case "joy":
			breakdown.Happy = pct
		case "sadness":
			breakdown.Sad = pct
		case "anger":
			breakdown.Angry = pct
		case "fear":
			breakdown.Anxious = pct
		case "neutral":
			breakdown.Neutral = pct
		}
	}
	return breakdown
}

// sentimentPercent mirrors the happy percentage, defaulting to the
// neutral midpoint when no joy score was reported
func sentimentPercent(breakdown entities.EmotionBreakdown) int {
	if breakdown.Happy == 0 {
		return fallbackSentiment
	}
	return breakdown.Happy
}

// confidencePercent takes the first reported emotion entry as the
// model's confidence. A score that floors to zero takes the fallback.
func confidencePercent(emotions []moodapi.EmotionScore) int {
	if len(emotions) == 0 {
		return fallbackConfidence
	}
	if pct := int(math.Floor(emotions[0].Score * 100)); pct != 0 {
		return pct
	}
	return fallbackConfidence
}

// normalizeTone maps the pitch-analysis emotion onto a fixed
// three-axis tone profile
func normalizeTone(pitchEmotion string) entities.ToneBreakdown {
	tone := entities.ToneBreakdown{Positive: 30, Negative: 40, Neutral: 30}
	switch pitchEmotion {
	case "Happy / Normal":
		tone.Positive = 100
	case "sadness":
		tone.Negative = 100
	case "neutral":
		tone.Neutral = 100
	}
	return tone
}

// depressionRisk weighs the raw emotion scores:
// sadness*0.7 + fear*0.5 - joy*0.3, tiered at 0.6 and 0.3.
// An empty emotion list yields Low.
func depressionRisk(emotions []moodapi.EmotionScore) entities.RiskLevel {
	if len(emotions) == 0 {
		return entities.RiskLow
	}

	var sadness, fear, joy float64
	for _, e := range emotions {
		switch e.Label {
		case "sadness":
			sadness = e.Score
		case "fear":
			fear = e.Score
		case "joy":
			joy = e.Score
		}
	}

	score := sadness*0.7 + fear*0.5 - joy*0.3
	if score > 0.6 {
		return entities.RiskHigh
	}
	if score > 0.3 {
		return entities.RiskModerate
	}
	return entities.RiskLow
}
