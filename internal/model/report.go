package model

import "time"

// Report represents the complete textorigin detection report for one input
type Report struct {
	Source     string    `json:"source"`      // Where the text came from (file path, URL, or "stdin")
	AnalyzedAt time.Time `json:"analyzed_at"` // When the detection ran
	Metrics    Metrics   `json:"metrics"`     // Derived text metrics

	Result  EnsembleResult `json:"result"`            // Fused verdict
	Matches []PatternMatch `json:"matches,omitempty"` // All triggered lexical markers

	Neural  Signal `json:"neural_signal"`  // Raw neural source signal (may be unavailable)
	Pattern Signal `json:"pattern_signal"` // Raw pattern source signal

	Principles Principles `json:"principles"` // Core principles applied
}

// Principles documents the guarantees every report carries
type Principles struct {
	Deterministic bool `json:"deterministic"` // Same inputs always produce the same result
	Transparent   bool `json:"transparent"`   // All scoring explainable from the report
	Bounded       bool `json:"bounded"`       // All probabilities and confidences in [0,1]
}

// DefaultPrinciples returns the standard textorigin principles
func DefaultPrinciples() Principles {
	return Principles{
		Deterministic: true,
		Transparent:   true,
		Bounded:       true,
	}
}
