package model

import "time"

// Config is the complete, immutable runtime configuration. It is constructed
// once (defaults, config file, env, flags) and passed into the pipeline;
// nothing reads configuration at import time.
type Config struct {
	Thresholds  ThresholdConfig   `yaml:"thresholds" mapstructure:"thresholds"`
	Fusion      FusionConfig      `yaml:"fusion" mapstructure:"fusion"`
	Neural      NeuralConfig      `yaml:"neural" mapstructure:"neural"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// ThresholdConfig holds the base calibration thresholds before dynamic
// adjustment
type ThresholdConfig struct {
	AI             float64 `yaml:"ai" mapstructure:"ai"`                           // Probability at or above which text leans AI
	Confidence     float64 `yaml:"confidence" mapstructure:"confidence"`           // Confidence for a "Likely" label
	HighConfidence float64 `yaml:"high_confidence" mapstructure:"high_confidence"` // Confidence for a "Highly Likely" label
	LowConfidence  float64 `yaml:"low_confidence" mapstructure:"low_confidence"`   // Below this the verdict is Uncertain
}

// FusionConfig holds the default source weights and bonus constants.
// The tier table overrides these weights when pattern evidence is strong.
type FusionConfig struct {
	NeuralWeight    float64 `yaml:"neural_weight" mapstructure:"neural_weight"`
	PatternWeight   float64 `yaml:"pattern_weight" mapstructure:"pattern_weight"`
	ConfidenceBoost float64 `yaml:"confidence_boost" mapstructure:"confidence_boost"` // Scale of the agreement nudge
	NeuralPenalty   float64 `yaml:"neural_penalty" mapstructure:"neural_penalty"`     // Confidence multiplier in neural-only mode
	PatternPenalty  float64 `yaml:"pattern_penalty" mapstructure:"pattern_penalty"`   // Confidence multiplier in pattern-only mode
}

// NeuralConfig holds the external neural classifier configuration
type NeuralConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // "openai", "anthropic", "ollama", "" (disabled)
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"api_key"` // Never serialized to config files
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // Seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`

	HTTPProxy  string `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy    string `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// CacheConfig holds result-cache settings
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// HTTPConfig holds settings for fetching text from URLs
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// ConcurrencyConfig holds batch processing settings
type ConcurrencyConfig struct {
	BatchWorkers      int     `yaml:"batch_workers" mapstructure:"batch_workers"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// OutputConfig holds report rendering settings
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns the built-in defaults. The threshold and fusion
// constants are hand-tuned calibration values; change them together with the
// tier table in the fusion package.
func DefaultConfig() *Config {
	return &Config{
		Thresholds: ThresholdConfig{
			AI:             0.5,
			Confidence:     0.7,
			HighConfidence: 0.9,
			LowConfidence:  0.3,
		},
		Fusion: FusionConfig{
			NeuralWeight:    0.5,
			PatternWeight:   0.4,
			ConfidenceBoost: 0.1,
			NeuralPenalty:   0.85,
			PatternPenalty:  0.8,
		},
		Neural: NeuralConfig{
			Provider:  "", // Disabled by default: pattern-only mode
			Timeout:   30,
			MaxTokens: 256,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             15 * time.Minute,
			CleanupInterval: 5 * time.Minute,
		},
		HTTP: HTTPConfig{
			Timeout:      2 * time.Minute,
			UserAgent:    "textorigin/0.1 (+https://github.com/textorigin/textorigin)",
			MaxBodyBytes: 2_000_000,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers:      8,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
