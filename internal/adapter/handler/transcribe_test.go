package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/mindvoice-team/mindvoice-backend/errors"
	"github.com/mindvoice-team/mindvoice-backend/internal/adapter/dto/transcribe"
	"github.com/mindvoice-team/mindvoice-backend/internal/usecase/analysis"
	"github.com/mindvoice-team/mindvoice-backend/internal/usecase/transcription"
)

type stubTranscriber struct {
	result     *transcription.Result
	err        error
	calls      int
	configured bool
}

func (s *stubTranscriber) Transcribe(ctx context.Context, filename string, audio []byte) (*transcription.Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubTranscriber) Configured() bool { return s.configured }

func audioRequest(t *testing.T, field string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, "clip.wav")
	if err != nil {
		t.Fatalf("multipart setup failed: %v", err)
	}
	part.Write([]byte("audio-bytes"))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestTranscribeHandle_Success(t *testing.T) {
	stub := &stubTranscriber{
		result: &transcription.Result{
			Transcript: "I feel hopeless today",
			Analysis:   analysis.ScoreTranscript("I feel hopeless today"),
			Metadata:   transcription.Metadata{AudioSize: 11, ProcessingTime: 42},
		},
	}
	h := NewTranscribeHandler(stub, zap.NewNop())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(audioRequest(t, "audio"), rec)

	if err := h.Handle(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var env transcribe.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !env.Success {
		t.Error("expected success=true")
	}
	if env.Transcript != "I feel hopeless today" {
		t.Errorf("unexpected transcript %q", env.Transcript)
	}
	if env.Analysis == nil || env.Analysis.RiskLevel == "" {
		t.Error("expected analysis in envelope")
	}
	if env.Metadata == nil || env.Metadata.AudioSize != 11 {
		t.Error("expected metadata in envelope")
	}
	if stub.calls != 1 {
		t.Errorf("expected exactly 1 service call, got %d", stub.calls)
	}
}

func TestTranscribeHandle_EmptySpeechKeepsTranscriptField(t *testing.T) {
	stub := &stubTranscriber{
		result: &transcription.Result{
			Transcript: "No speech detected",
			Analysis:   analysis.ScoreTranscript(""),
			Metadata:   transcription.Metadata{AudioSize: 7},
		},
	}
	h := NewTranscribeHandler(stub, zap.NewNop())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(audioRequest(t, "audio"), rec)

	if err := h.Handle(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// The transcript key must always be present on success responses
	if !strings.Contains(rec.Body.String(), `"transcript":"No speech detected"`) {
		t.Errorf("transcript field missing from envelope: %s", rec.Body.String())
	}
}

func TestTranscribeHandle_NoFile(t *testing.T) {
	stub := &stubTranscriber{}
	h := NewTranscribeHandler(stub, zap.NewNop())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(audioRequest(t, "wrong_field"), rec)

	if err := h.Handle(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var env transcribe.Envelope
	json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Success {
		t.Error("expected success=false")
	}
	if env.Error != "No audio file provided" {
		t.Errorf("unexpected error message %q", env.Error)
	}
	if stub.calls != 0 {
		t.Errorf("service should not be called without a file, got %d calls", stub.calls)
	}
}

func TestTranscribeHandle_MirrorsProviderStatus(t *testing.T) {
	stub := &stubTranscriber{err: apperrors.ErrSTTProviderFailed(http.StatusUnprocessableEntity, "bad audio")}
	h := NewTranscribeHandler(stub, zap.NewNop())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(audioRequest(t, "audio"), rec)

	if err := h.Handle(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected upstream 422 to be mirrored, got %d", rec.Code)
	}

	var env transcribe.Envelope
	json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Success {
		t.Error("expected success=false")
	}
	if env.Error != "ElevenLabs API error: 422 - bad audio" {
		t.Errorf("unexpected error message %q", env.Error)
	}
}

func TestTranscribeHealth(t *testing.T) {
	h := NewTranscribeHandler(&stubTranscriber{configured: true}, zap.NewNop())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/health", nil), rec)

	if err := h.Health(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var health transcribe.Health
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("unexpected status %q", health.Status)
	}
	if !health.APIConfigured {
		t.Error("expected apiConfigured=true")
	}
	if health.Timestamp == "" {
		t.Error("expected timestamp")
	}
}
