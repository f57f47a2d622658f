package elevenlabs

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mindvoice-team/mindvoice-backend/pkg/config"
)

func TestTranscribe_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/v1/speech-to-text" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("xi-api-key") != "test-key" {
			t.Fatalf("missing xi-api-key header")
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("invalid multipart payload: %v", err)
		}
		if got := r.FormValue("model_id"); got != "scribe_v1" {
			t.Fatalf("unexpected model_id %q", got)
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		if string(data) != "audio-bytes" {
			t.Fatalf("unexpected file contents %q", data)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"text":"hello world"}`))
	}))
	defer ts.Close()

	client := NewClient(&config.ElevenLabsConfig{APIKey: "test-key", BaseURL: ts.URL})

	text, err := client.Transcribe(context.Background(), "clip.wav", []byte("audio-bytes"))
	if err != nil {
		t.Fatalf("transcribe failed: %v", err)
	}
	if text != "hello world" {
		t.Fatalf("unexpected transcript %q", text)
	}
}

func TestTranscribe_ProviderError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"detail":"rate limited"}`))
	}))
	defer ts.Close()

	client := NewClient(&config.ElevenLabsConfig{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.Transcribe(context.Background(), "clip.wav", []byte("audio"))
	if err == nil {
		t.Fatal("expected error")
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %T", err)
	}
	if provErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", provErr.StatusCode)
	}
	if provErr.Body != `{"detail":"rate limited"}` {
		t.Fatalf("unexpected body %q", provErr.Body)
	}
}

func TestConfigured(t *testing.T) {
	t.Setenv("ELEVENLABS_API_KEY", "")

	if NewClient(&config.ElevenLabsConfig{APIKey: "k"}).Configured() != true {
		t.Error("expected configured with key")
	}
	if NewClient(&config.ElevenLabsConfig{}).Configured() {
		t.Error("expected unconfigured without key")
	}
}
