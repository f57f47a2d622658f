package transcription

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	apperrors "github.com/mindvoice-team/mindvoice-backend/errors"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/external/elevenlabs"
	"github.com/mindvoice-team/mindvoice-backend/pkg/config"
)

func newTestService(t *testing.T, upstream http.HandlerFunc, apiKey string, maxBytes int64) (Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	client := elevenlabs.NewClient(&config.ElevenLabsConfig{
		APIKey:  apiKey,
		BaseURL: srv.URL,
	})
	return NewTranscriptionService(client, maxBytes, zap.NewNop()), srv
}

func TestTranscribeSuccess(t *testing.T) {
	var calls int
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != "/v1/speech-to-text" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("xi-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"I feel sad and tired today"}`))
	}, "test-key", 10<<20)

	audio := []byte("fake-audio-bytes")
	result, err := svc.Transcribe(context.Background(), "clip.wav", audio)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 1 {
		t.Errorf("expected exactly one upstream call, got %d", calls)
	}
	if result.Transcript != "I feel sad and tired today" {
		t.Errorf("unexpected transcript: %q", result.Transcript)
	}
	if len(result.Analysis.DepressiveWords) != 2 {
		t.Errorf("expected 2 depressive matches, got %v", result.Analysis.DepressiveWords)
	}
	if result.Metadata.AudioSize != len(audio) {
		t.Errorf("expected audio size %d, got %d", len(audio), result.Metadata.AudioSize)
	}
	if result.Metadata.ProcessingTime < 0 {
		t.Errorf("processing time should be non-negative, got %d", result.Metadata.ProcessingTime)
	}
}

func TestTranscribeEmptySpeech(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":""}`))
	}, "test-key", 10<<20)

	result, err := svc.Transcribe(context.Background(), "clip.wav", []byte("silence"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Transcript != "No speech detected" {
		t.Errorf("expected placeholder transcript, got %q", result.Transcript)
	}
	// The scorer still sees the raw empty text
	if result.Analysis.Analysis != "No text to analyze" {
		t.Errorf("unexpected analysis summary: %q", result.Analysis.Analysis)
	}
	if result.Analysis.WordCount != 0 {
		t.Errorf("expected word count 0, got %d", result.Analysis.WordCount)
	}
}

func TestTranscribeTooLargeNeverForwards(t *testing.T) {
	var calls int
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	}, "test-key", 8)

	_, err := svc.Transcribe(context.Background(), "clip.wav", []byte("way too many bytes"))
	if err == nil {
		t.Fatal("expected size error")
	}
	if calls != 0 {
		t.Errorf("upstream must not be called for oversized uploads, got %d calls", calls)
	}

	appErr, ok := err.(apperrors.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.HTTPCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", appErr.HTTPCode)
	}
}

func TestTranscribeUnconfiguredKey(t *testing.T) {
	// Guard against ambient credentials leaking into the test
	t.Setenv("ELEVENLABS_API_KEY", "")

	var calls int
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	}, "", 10<<20)

	_, err := svc.Transcribe(context.Background(), "clip.wav", []byte("audio"))
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if calls != 0 {
		t.Errorf("upstream must not be called without a key, got %d calls", calls)
	}

	appErr, ok := err.(apperrors.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.HTTPCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", appErr.HTTPCode)
	}
}

func TestTranscribeMirrorsProviderStatus(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"unsupported audio format"}`))
	}, "test-key", 10<<20)

	_, err := svc.Transcribe(context.Background(), "clip.wav", []byte("audio"))
	if err == nil {
		t.Fatal("expected provider error")
	}

	appErr, ok := err.(apperrors.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.HTTPCode != http.StatusUnprocessableEntity {
		t.Errorf("expected mirrored 422, got %d", appErr.HTTPCode)
	}
}
