package fusion

import (
	"math"

	"github.com/textorigin/textorigin/internal/pattern"
)

// Strong markers are the catalog entries that, when triggered, make the
// pattern source worth trusting over the neural source. The critical subset
// is stricter: those markers alone can dominate the weighting. Both lists
// are hand-tuned calibration constants.
var strongMarkerNames = map[string]bool{
	pattern.MarkerEmDashOveruse:    true,
	pattern.MarkerBuzzwordPhrases:  true,
	pattern.MarkerFormalStarters:   true,
	pattern.MarkerUniformSentences: true,
}

var criticalMarkerNames = map[string]bool{
	pattern.MarkerEmDashOveruse:   true,
	pattern.MarkerBuzzwordPhrases: true,
}

const (
	strengthComponentWeight = 0.2
	criticalMarkerBoost     = 0.3 // Per critical marker triggered
	maxCriticalBoost        = 0.6
)

// PatternStrength computes the [0,1] composite measure of how decisively the
// lexical markers point toward one class. Four components each contribute
// with weight 0.2: match count, the pattern signal's own confidence, the
// ai/human score differential, and strong-marker hits capped at two. Critical
// markers add up to 0.6 on top; the total is capped at 1.
func PatternStrength(analysis pattern.Analysis) float64 {
	matchCount := math.Min(float64(len(analysis.Matches))/5, 1)
	confidence := analysis.Signal.Confidence
	scoreDiff := math.Min(math.Abs(analysis.AIScore-analysis.HumanScore)/3, 1)

	strongHits := 0.0
	criticalBoost := 0.0
	for _, m := range analysis.Matches {
		if strongMarkerNames[m.Name] {
			strongHits++
		}
		if criticalMarkerNames[m.Name] {
			criticalBoost += criticalMarkerBoost
		}
	}
	strong := math.Min(strongHits, 2) / 2
	criticalBoost = math.Min(criticalBoost, maxCriticalBoost)

	strength := strengthComponentWeight*(matchCount+confidence+scoreDiff+strong) + criticalBoost
	return math.Min(strength, 1)
}
