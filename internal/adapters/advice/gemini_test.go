package advice_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitstudio/internal/adapters/advice"
)

func geminiServer(t *testing.T, handler http.HandlerFunc) *advice.GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return advice.NewGeminiClientForEndpoint(srv.URL+"/?key=", "test-key")
}

// TestGeminiClient_Generate verifies the happy path extracts candidate text.
func TestGeminiClient_Generate(t *testing.T) {
	client := geminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("key = %q, want test-key", r.URL.Query().Get("key"))
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if _, ok := body["contents"]; !ok {
			t.Error("request body missing contents field")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"- Eat protein\n- Sleep well"}]}}]}`))
	})

	got, err := client.Generate(context.Background(), "advice please")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(got, "Eat protein") {
		t.Errorf("Generate() = %q, want candidate text", got)
	}
}

// TestGeminiClient_Generate_StatusError verifies non-2xx responses surface as errors.
func TestGeminiClient_Generate_StatusError(t *testing.T) {
	client := geminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.Generate(context.Background(), "advice please")
	if err == nil {
		t.Fatal("Generate() expected error for 429 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error = %v, want status in message", err)
	}
}

// TestGeminiClient_Generate_EmptyCandidates verifies the empty-response error.
func TestGeminiClient_Generate_EmptyCandidates(t *testing.T) {
	client := geminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := client.Generate(context.Background(), "advice please")
	if !errors.Is(err, advice.ErrEmptyResponse) {
		t.Errorf("error = %v, want ErrEmptyResponse", err)
	}
}

// TestGeminiClient_Generate_MalformedBody verifies decode failures surface as errors.
func TestGeminiClient_Generate_MalformedBody(t *testing.T) {
	client := geminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	if _, err := client.Generate(context.Background(), "advice please"); err == nil {
		t.Error("Generate() expected error for malformed body")
	}
}
