package feedback

import (
	"fmt"
	"sort"

	"github.com/textorigin/textorigin/internal/model"
	"github.com/textorigin/textorigin/internal/pattern"
)

const (
	maxNamedMarkers    = 3 // Per category, in the feedback messages
	maxFlaggedSections = 5
	maxRecommendations = 5
)

// Generator turns a fused numeric result and its pattern matches into
// human-readable messages, flagged sections, and recommendations. It has no
// state and no side effects.
type Generator struct{}

// NewGenerator creates a feedback generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Apply fills the presentation fields of a result. The input is taken by
// value and returned enriched; error results pass through untouched.
func (g *Generator) Apply(result model.EnsembleResult, matches []model.PatternMatch) model.EnsembleResult {
	if result.IsError() {
		return result
	}

	result.FeedbackMessages = g.messages(result, matches)
	result.FlaggedSections = g.flaggedSections(matches)
	result.Recommendations = g.recommendations(result.Classification, matches)
	return result
}

// messages selects the headline template by probability/confidence bands and
// appends the named markers for each category
func (g *Generator) messages(result model.EnsembleResult, matches []model.PatternMatch) []string {
	p := result.AIProbability
	var messages []string

	switch {
	case p >= 0.9 && result.Confidence >= 0.7:
		messages = append(messages, "This text is very likely AI-generated.")
	case p >= 0.7:
		messages = append(messages, "This text shows strong signs of AI generation.")
	case p >= 0.5:
		messages = append(messages, "This text shows some signs of AI generation.")
	case p <= 0.1 && result.Confidence >= 0.7:
		messages = append(messages, "This text is very likely human-written.")
	case p <= 0.3:
		messages = append(messages, "This text shows strong signs of human authorship.")
	default:
		messages = append(messages, "Signals are mixed; this text cannot be attributed decisively.")
	}

	if ai := describeCategory(matches, model.CategoryAI); ai != "" {
		messages = append(messages, "AI-leaning markers: "+ai)
	}
	if human := describeCategory(matches, model.CategoryHuman); human != "" {
		messages = append(messages, "Human-leaning markers: "+human)
	}

	return messages
}

// describeCategory joins up to maxNamedMarkers descriptions for one category
func describeCategory(matches []model.PatternMatch, category model.MarkerCategory) string {
	out := ""
	count := 0
	for _, m := range matches {
		if m.Category != category {
			continue
		}
		if count > 0 {
			out += "; "
		}
		out += m.Description
		count++
		if count == maxNamedMarkers {
			break
		}
	}
	return out
}

// flaggedSections surfaces the strongest matches, ordered by strength with a
// deterministic tiebreak on name
func (g *Generator) flaggedSections(matches []model.PatternMatch) []model.FlaggedSection {
	sorted := make([]model.PatternMatch, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Strength != sorted[j].Strength {
			return sorted[i].Strength > sorted[j].Strength
		}
		return sorted[i].Name < sorted[j].Name
	})

	if len(sorted) > maxFlaggedSections {
		sorted = sorted[:maxFlaggedSections]
	}

	var sections []model.FlaggedSection
	for _, m := range sorted {
		sections = append(sections, model.FlaggedSection{
			Name:        m.Name,
			Category:    m.Category,
			Description: fmt.Sprintf("%s (strength %.2f)", m.Description, m.Strength),
			Strength:    m.Strength,
			ScoreImpact: m.ScoreImpact,
		})
	}
	return sections
}

// markerRemediations maps specific AI-leaning markers to targeted advice
var markerRemediations = map[string]string{
	pattern.MarkerEmDashOveruse:    "Reduce em-dash usage and vary punctuation for a more natural cadence.",
	pattern.MarkerBuzzwordPhrases:  "Replace buzzword phrases with concrete, specific wording.",
	pattern.MarkerFormalStarters:   "Vary sentence openers instead of stacking formal transitions.",
	pattern.MarkerHedgingLanguage:  "Cut hedging qualifiers; commit to direct statements where possible.",
	pattern.MarkerUniformSentences: "Mix short and long sentences to break the uniform rhythm.",
	pattern.MarkerListFormatting:   "Fold some bullet points into prose to reduce list-heavy structure.",
}

// recommendations builds the bounded advice list keyed by classification band
// plus targeted remediations for specific triggered markers
func (g *Generator) recommendations(classification model.Classification, matches []model.PatternMatch) []string {
	var recs []string

	switch classification {
	case model.ClassHighlyLikelyAI, model.ClassLikelyAI:
		recs = append(recs,
			"Verify provenance with the author before acting on this text.",
			"Treat citations and factual claims with extra scrutiny.")
	case model.ClassPossiblyAI:
		recs = append(recs, "Consider requesting a longer sample for a more decisive verdict.")
	case model.ClassUncertain:
		recs = append(recs, "Collect a longer sample; short or sparse texts carry weak signals.")
	}

	for _, m := range matches {
		if len(recs) >= maxRecommendations {
			break
		}
		if advice, ok := markerRemediations[m.Name]; ok {
			recs = append(recs, advice)
		}
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
