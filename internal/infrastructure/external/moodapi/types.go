package moodapi

import "encoding/json"

// The mood API's envelopes are loosely structured and every field is
// optional; each type here decodes defensively and tolerates absence.
// Consumers must substitute documented fallbacks for missing values.

// AnalysisEnvelope is the finalized voice-analysis payload
type AnalysisEnvelope struct {
	Response *ResponsePayload `json:"response,omitempty"`
	RespJSON *RespJSON        `json:"resp_json,omitempty"`

	// Raw holds the verbatim provider bytes for audit pass-through
	Raw json.RawMessage `json:"-"`
}

// ResponsePayload carries the classifier output and pitch sub-object
type ResponsePayload struct {
	PitchAnalysis *PitchAnalysis  `json:"pitch_analysis,omitempty"`
	ReturnedJSON  []EmotionChunk  `json:"returned_json,omitempty"`
	AudioLength   float64         `json:"audio_length,omitempty"`
}

// EmotionChunk is one analyzed audio chunk; the dashboard overview
// reads emotions from the first chunk only.
type EmotionChunk struct {
	Emotions []EmotionScore `json:"emotions,omitempty"`
}

// EmotionScore is a classifier entry: a fixed-vocabulary label (joy,
// sadness, anger, fear, neutral) with a score in [0,1].
type EmotionScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// PitchAnalysis is the pitch sub-object
type PitchAnalysis struct {
	Pitch        float64 `json:"pitch,omitempty"`
	PitchEmotion string  `json:"pitch_emotion,omitempty"`
}

// RespJSON wraps the free-text recommendation blob
type RespJSON struct {
	Resp string `json:"resp,omitempty"`
}

// TextAnalysis is the text-analysis endpoint's response. Provider
// versions disagree on field names, so both spellings of each concept
// are decoded.
type TextAnalysis struct {
	Sentiment           string  `json:"sentiment,omitempty"`
	EmotionalTone       string  `json:"emotional_tone,omitempty"`
	RiskLevel           string  `json:"risk_level,omitempty"`
	DepressionIndicator string  `json:"depression_indicator,omitempty"`
	Confidence          float64 `json:"confidence,omitempty"`
}

// SentimentLabel returns whichever sentiment field the provider filled
func (t *TextAnalysis) SentimentLabel() string {
	if t.Sentiment != "" {
		return t.Sentiment
	}
	return t.EmotionalTone
}

// RiskLabel returns whichever risk field the provider filled
func (t *TextAnalysis) RiskLabel() string {
	if t.RiskLevel != "" {
		return t.RiskLevel
	}
	return t.DepressionIndicator
}
