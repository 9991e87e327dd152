package model

// SourceKind identifies which detection source produced a signal
type SourceKind string

const (
	SourceNeural  SourceKind = "neural"  // External neural classifier
	SourcePattern SourceKind = "pattern" // Lexical pattern analysis
)

// Signal is one source's estimate for a text sample. Availability is explicit:
// an unavailable signal carries a reason and its numeric fields are meaningless.
// Callers must branch on Available rather than inspecting zero values.
type Signal struct {
	Source        SourceKind `json:"source"`
	Available     bool       `json:"available"`
	AIProbability float64    `json:"ai_probability"` // Likelihood the text is machine-generated, [0,1]
	Confidence    float64    `json:"confidence"`     // Source's own confidence in its estimate, [0,1]
	Reason        string     `json:"reason,omitempty"` // Why the source is unavailable
}

// AvailableSignal constructs a usable signal with both values clamped to [0,1]
func AvailableSignal(source SourceKind, aiProbability, confidence float64) Signal {
	return Signal{
		Source:        source,
		Available:     true,
		AIProbability: Clamp01(aiProbability),
		Confidence:    Clamp01(confidence),
	}
}

// UnavailableSignal constructs the absent-source sentinel
func UnavailableSignal(source SourceKind, reason string) Signal {
	return Signal{
		Source:    source,
		Available: false,
		Reason:    reason,
	}
}

// MarkerCategory classifies which class a lexical marker points toward
type MarkerCategory string

const (
	CategoryAI    MarkerCategory = "ai"
	CategoryHuman MarkerCategory = "human"
)

// PatternMatch records one triggered lexical marker. Strength is the
// normalized, capped excess over the marker's threshold; ScoreImpact is
// weight * strength (positive for AI-leaning markers, negative for human).
type PatternMatch struct {
	Name        string         `json:"name"`
	Category    MarkerCategory `json:"category"`
	Description string         `json:"description"`
	Value       float64        `json:"value"` // Raw count or density that tripped the marker
	Strength    float64        `json:"strength"`
	ScoreImpact float64        `json:"score_impact"`
}

// Clamp01 clamps v into [0,1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
