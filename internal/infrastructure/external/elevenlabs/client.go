package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/mindvoice-team/mindvoice-backend/pkg/config"
)

// Client is a minimal ElevenLabs speech-to-text client
type Client struct {
	apiKey  string
	baseURL string
	modelID string
	client  *http.Client
}

// NewClient creates an ElevenLabs client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewClient(cfg *config.ElevenLabsConfig) *Client {
	var apiKey, base, model string
	if cfg != nil {
		apiKey = cfg.APIKey
		base = cfg.BaseURL
		model = cfg.ModelID
	}
	if apiKey == "" {
		apiKey = os.Getenv("ELEVENLABS_API_KEY")
	}
	if base == "" {
		base = "https://api.elevenlabs.io"
	}
	if model == "" {
		model = "scribe_v1"
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: base,
		modelID: model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether an API key is present
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// TranscribeResponse is the minimal response shape of /v1/speech-to-text
type TranscribeResponse struct {
	Text string `json:"text"`
}

// ProviderError carries the upstream status code and body so the proxy
// can mirror them verbatim.
type ProviderError struct {
	StatusCode int
	Body       string
}

// Error implements error interface
func (e *ProviderError) Error() string {
	return fmt.Sprintf("elevenlabs returned status %d: %s", e.StatusCode, e.Body)
}

// Transcribe uploads an audio clip and returns the transcript text.
// The clip is sent as-is; a failed provider call is returned as a
// *ProviderError, never retried.
func (c *Client) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(audio); err != nil {
		return "", err
	}
	if err := w.WriteField("model_id", c.modelID); err != nil {
		return "", err
	}
	if err := w.WriteField("language", "en"); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	endpoint := c.baseURL + "/v1/speech-to-text"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return "", &ProviderError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tr TranscribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", err
	}
	return tr.Text, nil
}
