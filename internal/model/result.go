package model

// Classification is one of the discrete labels produced by thresholding
// calibrated probability and confidence
type Classification string

const (
	ClassHighlyLikelyAI    Classification = "Highly Likely AI-Generated"
	ClassLikelyAI          Classification = "Likely AI-Generated"
	ClassPossiblyAI        Classification = "Possibly AI-Generated"
	ClassPossiblyHuman     Classification = "Possibly Human-Written"
	ClassLikelyHuman       Classification = "Likely Human-Written"
	ClassHighlyLikelyHuman Classification = "Highly Likely Human-Written"
	ClassUncertain         Classification = "Uncertain/Low-Confidence"
	ClassError             Classification = "Error"
)

// RiskLevel is a five-band severity label summarizing how strongly the
// content is flagged as AI-generated
type RiskLevel string

const (
	RiskVeryHigh       RiskLevel = "Very High"
	RiskHigh           RiskLevel = "High"
	RiskMedium         RiskLevel = "Medium"
	RiskLow            RiskLevel = "Low"
	RiskVeryLow        RiskLevel = "Very Low"
	RiskAnalysisFailed RiskLevel = "Analysis Failed"
)

// MethodInfo documents how the final probability was produced, including any
// degradation to single-source mode
type MethodInfo struct {
	Method          string   `json:"method"` // "ensemble", "neural_only", "pattern_only", "error"
	NeuralWeight    float64  `json:"neural_weight,omitempty"`
	PatternWeight   float64  `json:"pattern_weight,omitempty"`
	PatternStrength float64  `json:"pattern_strength,omitempty"`
	SourcesUsed     []string `json:"sources_used,omitempty"`
	Adjustments     []string `json:"adjustments,omitempty"` // Calibration audit trail
}

// FlaggedSection surfaces one of the strongest pattern matches for display
type FlaggedSection struct {
	Name        string         `json:"name"`
	Category    MarkerCategory `json:"category"`
	Description string         `json:"description"`
	Strength    float64        `json:"strength"`
	ScoreImpact float64        `json:"score_impact"`
}

// EnsembleResult is the complete detection verdict for one text sample.
// For all non-error results AIProbability + HumanProbability == 1 within 1e-6.
type EnsembleResult struct {
	AIProbability        float64          `json:"ai_probability"`
	HumanProbability     float64          `json:"human_probability"`
	Confidence           float64          `json:"confidence"`
	Classification       Classification   `json:"classification"`
	RiskLevel            RiskLevel        `json:"risk_level"`
	ConfidenceIndicators []string         `json:"confidence_indicators,omitempty"`
	MethodInfo           MethodInfo       `json:"method_info"`
	FlaggedSections      []FlaggedSection `json:"flagged_sections,omitempty"`
	FeedbackMessages     []string         `json:"feedback_messages,omitempty"`
	Recommendations      []string         `json:"recommendations,omitempty"`
	Error                string           `json:"error,omitempty"`
}

// ErrorResult builds the structured failure variant. Both probabilities are
// zero by definition: an error result asserts nothing about the text.
func ErrorResult(reason string) EnsembleResult {
	return EnsembleResult{
		Classification: ClassError,
		RiskLevel:      RiskAnalysisFailed,
		MethodInfo:     MethodInfo{Method: "error"},
		Error:          reason,
	}
}

// IsError reports whether the result is the failure variant
func (r EnsembleResult) IsError() bool {
	return r.Classification == ClassError
}
