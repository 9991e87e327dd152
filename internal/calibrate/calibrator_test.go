package calibrate

import (
	"math"
	"testing"

	"github.com/textorigin/textorigin/internal/model"
)

func defaultThresholds() model.ThresholdConfig {
	return model.ThresholdConfig{
		AI:             0.5,
		Confidence:     0.7,
		HighConfidence: 0.9,
		LowConfidence:  0.3,
	}
}

func fused(v float64) *float64 {
	return &v
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAdjustShortText(t *testing.T) {
	c := NewCalibrator(defaultThresholds())

	result := c.Calibrate(Input{AIProbability: 0.5, TextLength: 80})

	if !approx(result.AIThreshold, 0.6) {
		t.Errorf("Expected AI threshold 0.6 for short text, got %f", result.AIThreshold)
	}
	if !approx(result.ConfidenceThreshold, 0.8) {
		t.Errorf("Expected confidence threshold 0.8 for short text, got %f", result.ConfidenceThreshold)
	}
	if len(result.Adjustments) != 1 {
		t.Errorf("Expected 1 adjustment entry, got %d: %v", len(result.Adjustments), result.Adjustments)
	}
}

func TestAdjustLongText(t *testing.T) {
	c := NewCalibrator(defaultThresholds())

	result := c.Calibrate(Input{AIProbability: 0.5, TextLength: 1500})

	if !approx(result.AIThreshold, 0.45) {
		t.Errorf("Expected AI threshold 0.45 for long text, got %f", result.AIThreshold)
	}
	if !approx(result.ConfidenceThreshold, 0.65) {
		t.Errorf("Expected confidence threshold 0.65 for long text, got %f", result.ConfidenceThreshold)
	}
}

func TestAdjustMidLengthTextUnchanged(t *testing.T) {
	c := NewCalibrator(defaultThresholds())

	result := c.Calibrate(Input{AIProbability: 0.5, TextLength: 500})

	if !approx(result.AIThreshold, 0.5) || !approx(result.ConfidenceThreshold, 0.7) {
		t.Errorf("Expected base thresholds for mid-length text, got %f/%f",
			result.AIThreshold, result.ConfidenceThreshold)
	}
	if len(result.Adjustments) != 0 {
		t.Errorf("Expected no adjustments, got %v", result.Adjustments)
	}
}

func TestAdjustSourceAgreement(t *testing.T) {
	c := NewCalibrator(defaultThresholds())

	// Agreement 0.95: thresholds relax
	result := c.Calibrate(Input{
		AIProbability:     0.5,
		SourceConfidences: []float64{0.85, 0.9},
		TextLength:        500,
	})
	if !approx(result.ConfidenceThreshold, 0.6) {
		t.Errorf("Expected confidence threshold 0.6 under strong agreement, got %f", result.ConfidenceThreshold)
	}

	// Agreement 0.3: thresholds tighten
	result = c.Calibrate(Input{
		AIProbability:     0.5,
		SourceConfidences: []float64{0.9, 0.2},
		TextLength:        500,
	})
	if !approx(result.ConfidenceThreshold, 0.85) {
		t.Errorf("Expected confidence threshold 0.85 under weak agreement, got %f", result.ConfidenceThreshold)
	}

	// A single source never triggers the agreement adjustment
	result = c.Calibrate(Input{
		AIProbability:     0.5,
		SourceConfidences: []float64{0.9},
		TextLength:        500,
	})
	if !approx(result.ConfidenceThreshold, 0.7) {
		t.Errorf("Expected base confidence threshold with one source, got %f", result.ConfidenceThreshold)
	}
}

func TestAdjustExtremeProbability(t *testing.T) {
	c := NewCalibrator(defaultThresholds())

	for _, p := range []float64{0.95, 0.05} {
		result := c.Calibrate(Input{AIProbability: p, TextLength: 500})
		if !approx(result.ConfidenceThreshold, 0.6) {
			t.Errorf("p=%f: expected confidence threshold 0.6, got %f", p, result.ConfidenceThreshold)
		}
	}
}

func TestAdjustClamping(t *testing.T) {
	c := NewCalibrator(model.ThresholdConfig{
		AI:             0.85,
		Confidence:     0.9,
		HighConfidence: 0.95,
		LowConfidence:  0.3,
	})

	result := c.Calibrate(Input{AIProbability: 0.5, TextLength: 80})

	if result.AIThreshold > 0.9 {
		t.Errorf("AI threshold exceeded clamp: %f", result.AIThreshold)
	}
	if result.ConfidenceThreshold > 0.95 {
		t.Errorf("Confidence threshold exceeded clamp: %f", result.ConfidenceThreshold)
	}
}

func TestOverallConfidenceBlend(t *testing.T) {
	c := NewCalibrator(defaultThresholds())

	tests := []struct {
		name    string
		sources []float64
		want    float64
	}{
		{"no sources", nil, 0.6},
		{"one source", []float64{0.5}, 0.3*0.6 + 0.7*0.5},
		{"two sources", []float64{0.6, 0.8}, 0.2*0.6 + 0.4*0.6 + 0.4*0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Calibrate(Input{
				AIProbability:     0.8,
				SourceConfidences: tt.sources,
				TextLength:        500,
			})
			if !approx(result.Confidence, tt.want) {
				t.Errorf("Expected confidence %f, got %f", tt.want, result.Confidence)
			}
		})
	}
}

func TestFusedConfidenceUsedDirectly(t *testing.T) {
	c := NewCalibrator(defaultThresholds())

	result := c.Calibrate(Input{
		AIProbability:     0.8,
		SourceConfidences: []float64{0.6, 0.8},
		FusedConfidence:   fused(0.83),
		TextLength:        500,
	})

	if !approx(result.Confidence, 0.83) {
		t.Errorf("Expected fused confidence 0.83 to be used directly, got %f", result.Confidence)
	}
}

func TestClassificationLabels(t *testing.T) {
	c := NewCalibrator(defaultThresholds())

	tests := []struct {
		name       string
		p          float64
		confidence float64
		want       model.Classification
	}{
		{"highly likely AI", 0.85, 0.92, model.ClassHighlyLikelyAI},
		{"likely AI", 0.6, 0.75, model.ClassLikelyAI},
		{"possibly AI", 0.6, 0.5, model.ClassPossiblyAI},
		{"highly likely human", 0.15, 0.92, model.ClassHighlyLikelyHuman},
		{"likely human", 0.2, 0.75, model.ClassLikelyHuman},
		{"possibly human", 0.3, 0.5, model.ClassPossiblyHuman},
		{"uncertain", 0.6, 0.2, model.ClassUncertain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Calibrate(Input{
				AIProbability:   tt.p,
				FusedConfidence: fused(tt.confidence),
				TextLength:      500,
			})
			if result.Classification != tt.want {
				t.Errorf("p=%f conf=%f: expected %q, got %q",
					tt.p, tt.confidence, tt.want, result.Classification)
			}
		})
	}
}

func TestRiskLevels(t *testing.T) {
	c := NewCalibrator(defaultThresholds())

	tests := []struct {
		name       string
		p          float64
		confidence float64
		want       model.RiskLevel
	}{
		{"very high", 0.95, 0.92, model.RiskVeryHigh},
		{"high", 0.75, 0.8, model.RiskHigh},
		{"medium", 0.6, 0.5, model.RiskMedium},
		{"low", 0.35, 0.5, model.RiskLow},
		{"very low", 0.1, 0.5, model.RiskVeryLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Calibrate(Input{
				AIProbability:   tt.p,
				FusedConfidence: fused(tt.confidence),
				TextLength:      500,
			})
			if result.RiskLevel != tt.want {
				t.Errorf("p=%f conf=%f: expected %q, got %q",
					tt.p, tt.confidence, tt.want, result.RiskLevel)
			}
		})
	}
}

func TestIndicatorsAlwaysPresent(t *testing.T) {
	c := NewCalibrator(defaultThresholds())

	for _, p := range []float64{0.05, 0.3, 0.5, 0.7, 0.95} {
		result := c.Calibrate(Input{AIProbability: p, TextLength: 500})
		if len(result.Indicators) != 2 {
			t.Errorf("p=%f: expected 2 indicators, got %d", p, len(result.Indicators))
		}
	}
}

func TestCalibrateDeterministic(t *testing.T) {
	c := NewCalibrator(defaultThresholds())
	in := Input{
		AIProbability:     0.73,
		SourceConfidences: []float64{0.6, 0.8},
		TextLength:        340,
	}

	first := c.Calibrate(in)
	second := c.Calibrate(in)

	if first.Classification != second.Classification ||
		first.RiskLevel != second.RiskLevel ||
		first.Confidence != second.Confidence {
		t.Error("Calibration is not deterministic for identical inputs")
	}
}
