package calibrate

import (
	"fmt"
	"math"

	"github.com/textorigin/textorigin/internal/model"
)

// Risk bands applied to the calibrated AI probability
const (
	riskBandLow      = 0.3
	riskBandMedium   = 0.5
	riskBandHigh     = 0.7
	riskBandVeryHigh = 0.9
)

// Context-adjustment bounds. Dynamic adjustments never push thresholds
// outside these ranges.
const (
	minAIThreshold         = 0.1
	maxAIThreshold         = 0.9
	minConfidenceThreshold = 0.3
	maxConfidenceThreshold = 0.95
)

// Input is everything the calibrator considers for one sample.
// SourceConfidences always drive the agreement-based threshold adjustment.
// When FusedConfidence is set the caller has already blended its sources
// (the fusion engine does) and that value is used for labeling; otherwise
// the calibrator blends the base and source confidences itself.
type Input struct {
	AIProbability     float64
	SourceConfidences []float64 // Zero, one, or two source confidences
	FusedConfidence   *float64  // Pre-blended confidence, if the caller fused one
	TextLength        int       // Trimmed character count; 0 when unknown
}

// Result is the calibrated verdict with a full audit trail
type Result struct {
	Classification      model.Classification
	RiskLevel           model.RiskLevel
	Confidence          float64
	AIThreshold         float64  // Threshold actually used, after adjustment
	ConfidenceThreshold float64  // Threshold actually used, after adjustment
	Indicators          []string // Human-readable confidence indicators
	Adjustments         []string // Which adjustments were applied and why
}

// Calibrator maps a probability plus source confidences and text length into
// a calibrated confidence, a classification label, and a risk level. All
// mappings are pure deterministic functions of the input and the configured
// base thresholds.
type Calibrator struct {
	thresholds model.ThresholdConfig
}

// NewCalibrator creates a calibrator with the given base thresholds
func NewCalibrator(thresholds model.ThresholdConfig) *Calibrator {
	return &Calibrator{thresholds: thresholds}
}

// Calibrate computes the calibrated verdict for one input
func (c *Calibrator) Calibrate(in Input) Result {
	p := model.Clamp01(in.AIProbability)

	aiThreshold, confThreshold, adjustments := c.adjustThresholds(in, p)

	var confidence float64
	if in.FusedConfidence != nil {
		confidence = model.Clamp01(*in.FusedConfidence)
	} else {
		confidence = c.overallConfidence(p, in.SourceConfidences)
	}

	classification := c.classify(p, confidence, aiThreshold, confThreshold)
	risk := c.riskLevel(p, confidence, confThreshold)

	return Result{
		Classification:      classification,
		RiskLevel:           risk,
		Confidence:          confidence,
		AIThreshold:         aiThreshold,
		ConfidenceThreshold: confThreshold,
		Indicators:          c.indicators(p, confidence, aiThreshold, confThreshold),
		Adjustments:         adjustments,
	}
}

// adjustThresholds applies the dynamic context adjustments in a fixed order:
// text length, source agreement, extreme probability. Each is additive and
// independent; the results are clamped at the end.
func (c *Calibrator) adjustThresholds(in Input, p float64) (float64, float64, []string) {
	aiThreshold := c.thresholds.AI
	confThreshold := c.thresholds.Confidence
	var adjustments []string

	if in.TextLength > 0 && in.TextLength < 100 {
		aiThreshold += 0.1
		confThreshold += 0.1
		adjustments = append(adjustments,
			fmt.Sprintf("short text (%d chars): both thresholds +0.10 for conservatism", in.TextLength))
	} else if in.TextLength > 1000 {
		aiThreshold -= 0.05
		confThreshold -= 0.05
		adjustments = append(adjustments,
			fmt.Sprintf("long text (%d chars): both thresholds -0.05", in.TextLength))
	}

	if len(in.SourceConfidences) == 2 {
		agreement := 1 - math.Abs(in.SourceConfidences[0]-in.SourceConfidences[1])
		if agreement > 0.8 {
			confThreshold -= 0.1
			adjustments = append(adjustments,
				fmt.Sprintf("strong source agreement (%.2f): confidence threshold -0.10", agreement))
		} else if agreement < 0.4 {
			confThreshold += 0.15
			adjustments = append(adjustments,
				fmt.Sprintf("weak source agreement (%.2f): confidence threshold +0.15", agreement))
		}
	}

	if p > 0.9 || p < 0.1 {
		confThreshold -= 0.1
		adjustments = append(adjustments,
			fmt.Sprintf("extreme probability (%.2f): confidence threshold -0.10", p))
	}

	aiThreshold = clampRange(aiThreshold, minAIThreshold, maxAIThreshold)
	confThreshold = clampRange(confThreshold, minConfidenceThreshold, maxConfidenceThreshold)

	return aiThreshold, confThreshold, adjustments
}

// overallConfidence blends the probability-derived base confidence with the
// available source confidences. The base is 2*|p-0.5|: certainty grows as
// the probability leaves the midpoint.
func (c *Calibrator) overallConfidence(p float64, sources []float64) float64 {
	base := 2 * math.Abs(p-0.5)

	switch len(sources) {
	case 0:
		return model.Clamp01(base)
	case 1:
		return model.Clamp01(0.3*base + 0.7*sources[0])
	default:
		return model.Clamp01(0.2*base + 0.4*sources[0] + 0.4*sources[1])
	}
}

// classify maps probability and confidence to one of the seven labels.
// Ordered: the low-confidence guard wins over everything else.
func (c *Calibrator) classify(p, confidence, aiThreshold, confThreshold float64) model.Classification {
	if confidence < c.thresholds.LowConfidence {
		return model.ClassUncertain
	}

	if p >= aiThreshold {
		switch {
		case confidence >= c.thresholds.HighConfidence:
			return model.ClassHighlyLikelyAI
		case confidence >= confThreshold:
			return model.ClassLikelyAI
		default:
			return model.ClassPossiblyAI
		}
	}

	switch {
	case confidence >= c.thresholds.HighConfidence:
		return model.ClassHighlyLikelyHuman
	case confidence >= confThreshold:
		return model.ClassLikelyHuman
	default:
		return model.ClassPossiblyHuman
	}
}

// riskLevel maps the calibrated values to the five-band severity label
func (c *Calibrator) riskLevel(p, confidence, confThreshold float64) model.RiskLevel {
	switch {
	case p >= riskBandVeryHigh && confidence >= c.thresholds.HighConfidence:
		return model.RiskVeryHigh
	case p >= riskBandHigh && confidence >= confThreshold:
		return model.RiskHigh
	case p >= riskBandMedium:
		return model.RiskMedium
	case p >= riskBandLow:
		return model.RiskLow
	default:
		return model.RiskVeryLow
	}
}

// indicators derives the human-readable confidence indicator list from the
// confidence and probability bands
func (c *Calibrator) indicators(p, confidence, aiThreshold, confThreshold float64) []string {
	var indicators []string

	switch {
	case confidence >= c.thresholds.HighConfidence:
		indicators = append(indicators, "Very high confidence in this assessment")
	case confidence >= confThreshold:
		indicators = append(indicators, "High confidence in this assessment")
	case confidence >= c.thresholds.LowConfidence:
		indicators = append(indicators, "Moderate confidence in this assessment")
	default:
		indicators = append(indicators, "Low confidence: treat this result as indicative only")
	}

	switch {
	case p >= riskBandVeryHigh:
		indicators = append(indicators, "Probability strongly indicates AI generation")
	case p >= aiThreshold:
		indicators = append(indicators, "Probability leans toward AI generation")
	case p <= 1-riskBandVeryHigh:
		indicators = append(indicators, "Probability strongly indicates human authorship")
	default:
		indicators = append(indicators, "Probability leans toward human authorship")
	}

	return indicators
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
