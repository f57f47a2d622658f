package transcribe

import (
	"github.com/mindvoice-team/mindvoice-backend/internal/usecase/analysis"
	"github.com/mindvoice-team/mindvoice-backend/internal/usecase/transcription"
)

// Envelope is the transcription proxy's wire format. Unlike the rest
// of the API it is not wrapped in the standard success envelope; the
// recording widget consumes this exact shape.
type Envelope struct {
	Success    bool                        `json:"success"`
	Transcript string                      `json:"transcript"`
	Analysis   *analysis.KeywordRiskReport `json:"analysis,omitempty"`
	Metadata   *transcription.Metadata     `json:"metadata,omitempty"`
	Error      string                      `json:"error,omitempty"`
}

// OK wraps a successful transcription
func OK(result *transcription.Result) *Envelope {
	return &Envelope{
		Success:    true,
		Transcript: result.Transcript,
		Analysis:   &result.Analysis,
		Metadata:   &result.Metadata,
	}
}

// Fail wraps an error message
func Fail(message string) *Envelope {
	return &Envelope{
		Success: false,
		Error:   message,
	}
}

// Health is the /api/health response
type Health struct {
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	APIConfigured bool   `json:"apiConfigured"`
}
