package pattern

import (
	"math"

	"github.com/textorigin/textorigin/internal/model"
)

// MinTextLength is the minimum trimmed character count before marker
// detection runs. Shorter samples return the neutral signal.
const MinTextLength = 50

// Analysis is the complete pattern-source output for one sample
type Analysis struct {
	Signal     model.Signal         `json:"signal"`
	Matches    []model.PatternMatch `json:"matches,omitempty"`
	AIScore    float64              `json:"ai_score"`    // Sum of AI-leaning score impacts
	HumanScore float64              `json:"human_score"` // Sum of human-leaning score impact magnitudes
}

// Analyzer scores text against a catalog of weighted lexical and structural
// markers. It is a pure function of its input: no state is carried between
// calls, and the catalog is immutable after construction.
type Analyzer struct {
	catalog []Marker
}

// NewAnalyzer creates an analyzer with the default marker catalog
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithCatalog(DefaultCatalog())
}

// NewAnalyzerWithCatalog creates an analyzer with a custom catalog
func NewAnalyzerWithCatalog(catalog []Marker) *Analyzer {
	return &Analyzer{catalog: catalog}
}

// Analyze evaluates every catalog marker against the sample and aggregates
// the triggered matches into a pattern signal. Samples shorter than
// MinTextLength never run marker detection and return probability 0.5 with
// confidence 0.1.
func (a *Analyzer) Analyze(sample model.TextSample) Analysis {
	if sample.CharCount() < MinTextLength {
		return Analysis{
			Signal: model.AvailableSignal(model.SourcePattern, 0.5, 0.1),
		}
	}

	stats := NewStats(sample.Text)

	var matches []model.PatternMatch
	var aiScore, humanScore float64

	for _, m := range a.catalog {
		value := m.Detect(stats)
		if value <= m.Threshold {
			continue
		}

		strength := math.Min(1, (value-m.Threshold)/m.Threshold)
		impact := m.Weight * strength

		if impact > 0 {
			aiScore += impact
		} else {
			humanScore += -impact
		}

		matches = append(matches, model.PatternMatch{
			Name:        m.Name,
			Category:    m.Category,
			Description: m.Description,
			Value:       value,
			Strength:    strength,
			ScoreImpact: impact,
		})
	}

	aiProbability := model.Clamp01(0.5 + aiScore - humanScore)

	triggered := len(matches)
	if triggered > 6 {
		triggered = 6
	}
	confidence := math.Min(0.9, 0.3+0.1*float64(triggered))

	return Analysis{
		Signal:     model.AvailableSignal(model.SourcePattern, aiProbability, confidence),
		Matches:    matches,
		AIScore:    aiScore,
		HumanScore: humanScore,
	}
}
