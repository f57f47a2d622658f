package moodapi

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
)

// Client is a minimal client for the mood analysis API (emotion
// classification of audio plus free-text analysis).
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a mood API client. Pass an empty base URL to fall
// back to the MOOD_API_URL environment variable.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("MOOD_API_URL")
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

// UploadAudio submits an audio clip for emotion analysis and returns
// the provider's intermediate payload verbatim.
func (c *Client) UploadAudio(ctx context.Context, filename string, audio []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(audio); err != nil {
		return nil, err
	}
	if err := w.WriteField("choice", "1"); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/upload-audio/", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("mood api upload returned status %d: %s", resp.StatusCode, string(body))
	}
	return json.RawMessage(body), nil
}

// Finalize feeds the intermediate payload back to the provider and
// decodes the finalized analysis envelope. The raw bytes are retained
// on the envelope for audit pass-through.
func (c *Client) Finalize(ctx context.Context, intermediate json.RawMessage) (*AnalysisEnvelope, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/final", bytes.NewReader(intermediate))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("mood api finalize returned status %d: %s", resp.StatusCode, string(body))
	}

	var envelope AnalysisEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode analysis envelope: %w", err)
	}
	envelope.Raw = json.RawMessage(body)
	return &envelope, nil
}

// AnalyzeText submits free text for sentiment/risk analysis
func (c *Client) AnalyzeText(ctx context.Context, text string) (*TextAnalysis, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/text-output/", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("mood api text analysis returned status %d: %s", resp.StatusCode, string(body))
	}

	var ta TextAnalysis
	if err := json.NewDecoder(resp.Body).Decode(&ta); err != nil {
		return nil, err
	}
	return &ta, nil
}
