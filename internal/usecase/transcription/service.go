package transcription

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/mindvoice-team/mindvoice-backend/errors"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/external/elevenlabs"
	"github.com/mindvoice-team/mindvoice-backend/internal/usecase/analysis"
)

// Metadata describes one transcription call
type Metadata struct {
	AudioSize      int   `json:"audioSize"`
	ProcessingTime int64 `json:"processingTime"`
}

// Result is a successful transcription with its transcript-level risk
// analysis
type Result struct {
	Transcript string                     `json:"transcript"`
	Analysis   analysis.KeywordRiskReport `json:"analysis"`
	Metadata   Metadata                   `json:"metadata"`
}

// Service defines transcription proxy methods
type Service interface {
	Transcribe(ctx context.Context, filename string, audio []byte) (*Result, error)
	Configured() bool
}

type transcriptionService struct {
	sttClient     *elevenlabs.Client
	maxAudioBytes int64
	logger        *zap.Logger
}

// NewTranscriptionService constructs a new transcription service
func NewTranscriptionService(sttClient *elevenlabs.Client, maxAudioBytes int64, logger *zap.Logger) Service {
	return &transcriptionService{
		sttClient:     sttClient,
		maxAudioBytes: maxAudioBytes,
		logger:        logger,
	}
}

// Configured reports whether the speech-to-text provider has an API key
func (s *transcriptionService) Configured() bool {
	return s.sttClient.Configured()
}

// Transcribe validates the upload, forwards it to the provider, and
// scores the transcript. Size and configuration are checked before any
// provider call; a provider failure carries the upstream status and
// message through unchanged, with no retry.
func (s *transcriptionService) Transcribe(ctx context.Context, filename string, audio []byte) (*Result, error) {
	if int64(len(audio)) > s.maxAudioBytes {
		return nil, apperrors.ErrAudioFileTooLarge(s.maxAudioBytes)
	}
	if !s.sttClient.Configured() {
		return nil, apperrors.ErrSTTKeyNotConfigured()
	}

	start := time.Now()
	transcript, err := s.sttClient.Transcribe(ctx, filename, audio)
	if err != nil {
		var provErr *elevenlabs.ProviderError
		if errors.As(err, &provErr) {
			s.logger.Error("speech-to-text provider rejected request",
				zap.Int("status", provErr.StatusCode),
				zap.String("body", provErr.Body))
			return nil, apperrors.ErrSTTProviderFailed(provErr.StatusCode, provErr.Body)
		}
		s.logger.Error("speech-to-text request failed", zap.Error(err))
		return nil, err
	}

	// Scoring sees the raw transcript; only the display field gets the
	// placeholder.
	report := analysis.ScoreTranscript(transcript)
	if transcript == "" {
		transcript = "No speech detected"
	}

	return &Result{
		Transcript: transcript,
		Analysis:   report,
		Metadata: Metadata{
			AudioSize:      len(audio),
			ProcessingTime: time.Since(start).Milliseconds(),
		},
	}, nil
}
