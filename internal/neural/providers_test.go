package neural

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAIClassify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Unexpected auth header: %s", auth)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"role": "assistant", "content": "{\"ai_probability\": 0.82, \"confidence\": 0.71}"}}],
			"usage": {"total_tokens": 42}
		}`))
	}))
	defer server.Close()

	provider, err := NewOpenAIProvider(Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOpenAIProvider failed: %v", err)
	}

	got, err := provider.Classify(context.Background(), "sample text")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got.AIProbability != 0.82 || got.Confidence != 0.71 {
		t.Errorf("Unexpected classification: %+v", got)
	}
	if got.TokensUsed != 42 {
		t.Errorf("Expected 42 tokens, got %d", got.TokensUsed)
	}
}

func TestOpenAIRequiresAPIKey(t *testing.T) {
	if _, err := NewOpenAIProvider(Config{}); err == nil {
		t.Error("Expected error without API key")
	}
}

func TestAnthropicClassify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if key := r.Header.Get("x-api-key"); key != "test-key" {
			t.Errorf("Unexpected API key header: %s", key)
		}
		if v := r.Header.Get("anthropic-version"); v == "" {
			t.Error("Missing anthropic-version header")
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"content": [{"type": "text", "text": "{\"ai_probability\": 0.35, \"confidence\": 0.9}"}],
			"model": "claude-3-5-haiku-20241022",
			"usage": {"input_tokens": 100, "output_tokens": 20}
		}`))
	}))
	defer server.Close()

	provider, err := NewAnthropicProvider(Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewAnthropicProvider failed: %v", err)
	}

	got, err := provider.Classify(context.Background(), "sample text")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got.AIProbability != 0.35 || got.Confidence != 0.9 {
		t.Errorf("Unexpected classification: %+v", got)
	}
	if got.TokensUsed != 120 {
		t.Errorf("Expected 120 tokens, got %d", got.TokensUsed)
	}
	if got.Model != "claude-3-5-haiku-20241022" {
		t.Errorf("Unexpected model: %s", got.Model)
	}
}

func TestAnthropicAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"type": "error", "error": {"type": "authentication_error", "message": "invalid key"}}`))
	}))
	defer server.Close()

	provider, err := NewAnthropicProvider(Config{APIKey: "bad-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewAnthropicProvider failed: %v", err)
	}

	_, err = provider.Classify(context.Background(), "sample text")
	if err == nil {
		t.Fatal("Expected an error for a 401 response")
	}
	if !strings.Contains(err.Error(), "authentication_error") {
		t.Errorf("Expected API error type in message, got %v", err)
	}
}

func TestOllamaClassify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"model": "llama3.1:8b",
			"response": "{\"ai_probability\": 0.6, \"confidence\": 0.5}",
			"done": true,
			"prompt_eval_count": 50,
			"eval_count": 15
		}`))
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{Model: "llama3.1:8b", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOllamaProvider failed: %v", err)
	}

	got, err := provider.Classify(context.Background(), "sample text")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got.AIProbability != 0.6 || got.Confidence != 0.5 {
		t.Errorf("Unexpected classification: %+v", got)
	}
	if got.TokensUsed != 65 {
		t.Errorf("Expected 65 tokens, got %d", got.TokensUsed)
	}
}

func TestOllamaRequiresModel(t *testing.T) {
	provider, err := NewOllamaProvider(Config{BaseURL: "http://localhost:11434"})
	if err != nil {
		t.Fatalf("NewOllamaProvider failed: %v", err)
	}

	if _, err := provider.Classify(context.Background(), "sample text"); err == nil {
		t.Error("Expected error when no model is configured")
	}
}

func TestOllamaIsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			_, _ = w.Write([]byte(`{"models": []}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{Model: "mistral", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOllamaProvider failed: %v", err)
	}

	if !provider.IsAvailable(context.Background()) {
		t.Error("Expected provider to be available against the mock server")
	}
}
