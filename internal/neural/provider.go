package neural

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/textorigin/textorigin/internal/model"
)

// Provider defines the interface to an external neural text classifier. The
// detection core depends only on this boundary: how the probability is
// produced (model architecture, weights, inference runtime) is irrelevant to
// it, and a failing provider degrades to an unavailable signal rather than an
// error.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Classify estimates the probability that the text is machine-generated
	Classify(ctx context.Context, text string) (*Classification, error)

	// IsAvailable checks if the provider is properly configured and reachable
	IsAvailable(ctx context.Context) bool
}

// Classification is a provider's estimate for one text sample
type Classification struct {
	// AIProbability is the likelihood the text is machine-generated, [0,1]
	AIProbability float64 `json:"ai_probability"`

	// Confidence is the provider's own confidence in its estimate, [0,1]
	Confidence float64 `json:"confidence"`

	// Model is the model that produced the estimate
	Model string `json:"model,omitempty"`

	// TokensUsed tracks token consumption
	TokensUsed int `json:"tokens_used,omitempty"`
}

// Config holds neural provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for the classification response
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   30,
		MaxTokens: 256,
	}
}

// ConfigFromModel converts model.NeuralConfig to neural.Config
func ConfigFromModel(cfg model.NeuralConfig) Config {
	return Config{
		Provider:   cfg.Provider,
		Model:      cfg.Model,
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.Timeout,
		MaxTokens:  cfg.MaxTokens,
		HTTPProxy:  cfg.HTTPProxy,
		HTTPSProxy: cfg.HTTPSProxy,
		NoProxy:    cfg.NoProxy,
	}
}

// systemPrompt pins the classifier persona for every provider
const systemPrompt = "You are a text-provenance classifier. You estimate how likely a text was " +
	"written by a language model rather than a human. You respond with strict JSON only."

// BuildPrompt constructs the classification prompt. The response contract is
// strict JSON so the answer parses deterministically.
func BuildPrompt(text string) string {
	return fmt.Sprintf(`Classify the following text as AI-generated or human-written.

Respond with ONLY a JSON object in exactly this form, no prose before or after:
{"ai_probability": <0.0-1.0>, "confidence": <0.0-1.0>}

ai_probability is the likelihood the text was machine-generated.
confidence is how certain you are of that estimate.

TEXT:
%s`, text)
}

// ParseClassification extracts the JSON classification from a raw model
// response. Providers wrap their transport errors; this handles the models
// that pad the JSON with prose or code fences despite the contract.
func ParseClassification(raw string) (*Classification, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response: %q", truncate(raw, 120))
	}

	var parsed struct {
		AIProbability float64 `json:"ai_probability"`
		Confidence    float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal classification: %w", err)
	}

	return &Classification{
		AIProbability: model.Clamp01(parsed.AIProbability),
		Confidence:    model.Clamp01(parsed.Confidence),
	}, nil
}

// Signal runs one classification and folds the outcome into the tagged
// signal type the fusion engine consumes. Transport failures, parse failures,
// and a nil provider all become the unavailable sentinel.
func Signal(ctx context.Context, provider Provider, text string) model.Signal {
	if provider == nil {
		return model.UnavailableSignal(model.SourceNeural, "no neural provider configured")
	}

	classification, err := provider.Classify(ctx, text)
	if err != nil {
		return model.UnavailableSignal(model.SourceNeural, err.Error())
	}

	return model.AvailableSignal(model.SourceNeural, classification.AIProbability, classification.Confidence)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
