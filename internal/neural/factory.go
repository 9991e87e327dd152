package neural

import (
	"fmt"
	"strings"
)

// NewProvider creates a neural provider based on configuration. An empty
// provider name means the neural source is disabled; the caller gets nil and
// runs in pattern-only mode.
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown neural provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}
