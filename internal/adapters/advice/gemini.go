package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultEndpoint is the Gemini text-generation endpoint. The API key is
// appended as a query parameter per the provider's scheme.
const DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent?key="

// ErrEmptyResponse is returned when the provider answers 200 with no candidates.
var ErrEmptyResponse = errors.New("advice provider returned an empty response")

// GeminiClient generates advice text via the Gemini API.
type GeminiClient struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// NewGeminiClient creates a client for the production endpoint.
// PRE: apiKey is a valid Gemini API key
// POST: Returns a ready-to-use generator with a 30s request timeout
func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   DefaultEndpoint,
		apiKey:     apiKey,
	}
}

// NewGeminiClientForEndpoint creates a client against a custom endpoint.
// Intended for use in tests.
func NewGeminiClientForEndpoint(endpoint, apiKey string) *GeminiClient {
	c := NewGeminiClient(apiKey)
	c.endpoint = endpoint
	return c
}

// Request/response shapes for the generateContent call. Only the fields the
// app reads are declared.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt to Gemini and extracts the first candidate's text.
// PRE: prompt is non-empty
// POST: Returns generated text, or an error for network/status/shape failures
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode advice request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+c.apiKey, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build advice request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("advice_request_failed", "error", err)
		return "", fmt.Errorf("advice request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		slog.Error("advice_status_error", "status", resp.StatusCode)
		return "", fmt.Errorf("advice provider returned %d: %s", resp.StatusCode, detail)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode advice response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	slog.Info("advice_generated", "chars", len(text))
	return text, nil
}
