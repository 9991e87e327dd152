package fusion

import (
	"math"

	"github.com/textorigin/textorigin/internal/calibrate"
	"github.com/textorigin/textorigin/internal/model"
	"github.com/textorigin/textorigin/internal/pattern"
)

// WeightTier pairs a pattern-strength threshold with the source weights used
// above it. Tiers are an ordered table rather than nested conditionals so
// recalibration touches data, not control flow.
type WeightTier struct {
	Threshold     float64
	NeuralWeight  float64
	PatternWeight float64
}

// defaultWeightTiers is evaluated top-down; the first tier whose threshold
// the pattern strength exceeds wins. Below every tier the configured default
// weights apply, renormalized to sum to one.
func defaultWeightTiers() []WeightTier {
	return []WeightTier{
		{Threshold: 0.8, NeuralWeight: 0.2, PatternWeight: 0.8},
		{Threshold: 0.6, NeuralWeight: 0.3, PatternWeight: 0.7},
		{Threshold: 0.4, NeuralWeight: 0.4, PatternWeight: 0.6},
	}
}

// Critical-boost constants (hand-tuned; see the weight tiers above)
const (
	criticalBoostScale       = 0.3
	criticalStrengthGate     = 0.8
	criticalProbabilityGate  = 0.6
	agreementConfidenceBonus = 0.15
	agreementStrengthGate    = 0.6
	strengthConfidenceBonus  = 0.1
	maxCombinedConfidence    = 0.95
)

// Engine combines the neural and pattern signals into a single calibrated
// verdict. It is pure and deterministic: identical inputs always produce
// identical results.
type Engine struct {
	cfg        model.FusionConfig
	tiers      []WeightTier
	calibrator *calibrate.Calibrator
}

// NewEngine creates a fusion engine from the given configuration
func NewEngine(cfg *model.Config) *Engine {
	return &Engine{
		cfg:        cfg.Fusion,
		tiers:      defaultWeightTiers(),
		calibrator: calibrate.NewCalibrator(cfg.Thresholds),
	}
}

// Fuse combines the two source signals for a sample. Degradation rules: with
// one source absent its counterpart is used directly under a fixed confidence
// penalty; with both absent the structured error result is returned.
func (e *Engine) Fuse(sample model.TextSample, neural model.Signal, analysis pattern.Analysis) model.EnsembleResult {
	patternSig := analysis.Signal

	switch {
	case !neural.Available && !patternSig.Available:
		return model.ErrorResult("all detection sources unavailable")
	case !neural.Available:
		return e.singleSource(sample, patternSig, e.cfg.PatternPenalty, "pattern_only")
	case !patternSig.Available:
		return e.singleSource(sample, neural, e.cfg.NeuralPenalty, "neural_only")
	}

	strength := PatternStrength(analysis)
	neuralWeight, patternWeight := e.selectWeights(strength)

	combined := neural.AIProbability*neuralWeight + patternSig.AIProbability*patternWeight

	// Critical boost: decisive pattern evidence pointing at AI overrides a
	// hesitant neural estimate.
	if strength > criticalStrengthGate && patternSig.AIProbability > criticalProbabilityGate {
		combined = math.Min(1, combined+criticalBoostScale*strength)
	}

	agreement := 1 - math.Abs(neural.Confidence-patternSig.Confidence)

	// Agreement bonus: when both sources land on the same side of 0.5, nudge
	// the combined probability further toward that side.
	if (neural.AIProbability-0.5)*(patternSig.AIProbability-0.5) > 0 {
		nudge := e.cfg.ConfidenceBoost * agreement * 0.5
		if neural.AIProbability > 0.5 {
			combined += nudge
		} else {
			combined -= nudge
		}
	}
	combined = model.Clamp01(combined)

	confidence := neural.Confidence*neuralWeight + patternSig.Confidence*patternWeight
	confidence += agreement * agreementConfidenceBonus
	if agreement > agreementStrengthGate {
		confidence += strength * strengthConfidenceBonus
	}
	confidence = math.Min(confidence, maxCombinedConfidence)

	cal := e.calibrator.Calibrate(calibrate.Input{
		AIProbability:     combined,
		SourceConfidences: []float64{neural.Confidence, patternSig.Confidence},
		FusedConfidence:   &confidence,
		TextLength:        sample.CharCount(),
	})

	return model.EnsembleResult{
		AIProbability:        combined,
		HumanProbability:     1 - combined,
		Confidence:           cal.Confidence,
		Classification:       cal.Classification,
		RiskLevel:            cal.RiskLevel,
		ConfidenceIndicators: cal.Indicators,
		MethodInfo: model.MethodInfo{
			Method:          "ensemble",
			NeuralWeight:    neuralWeight,
			PatternWeight:   patternWeight,
			PatternStrength: strength,
			SourcesUsed:     []string{string(model.SourceNeural), string(model.SourcePattern)},
			Adjustments:     cal.Adjustments,
		},
	}
}

// singleSource handles degradation when only one signal is available. The
// source's probability is used directly; its confidence takes a fixed
// penalty to reflect the missing corroboration.
func (e *Engine) singleSource(sample model.TextSample, sig model.Signal, penalty float64, method string) model.EnsembleResult {
	probability := model.Clamp01(sig.AIProbability)
	confidence := model.Clamp01(sig.Confidence * penalty)

	cal := e.calibrator.Calibrate(calibrate.Input{
		AIProbability:     probability,
		SourceConfidences: []float64{confidence},
		TextLength:        sample.CharCount(),
	})

	return model.EnsembleResult{
		AIProbability:        probability,
		HumanProbability:     1 - probability,
		Confidence:           cal.Confidence,
		Classification:       cal.Classification,
		RiskLevel:            cal.RiskLevel,
		ConfidenceIndicators: cal.Indicators,
		MethodInfo: model.MethodInfo{
			Method:      method,
			SourcesUsed: []string{string(sig.Source)},
			Adjustments: cal.Adjustments,
		},
	}
}

// selectWeights walks the tier table top-down and returns the first matching
// pair, falling back to the renormalized configured defaults
func (e *Engine) selectWeights(strength float64) (float64, float64) {
	for _, tier := range e.tiers {
		if strength > tier.Threshold {
			return tier.NeuralWeight, tier.PatternWeight
		}
	}

	total := e.cfg.NeuralWeight + e.cfg.PatternWeight
	if total <= 0 {
		return 0.5, 0.5
	}
	return e.cfg.NeuralWeight / total, e.cfg.PatternWeight / total
}
