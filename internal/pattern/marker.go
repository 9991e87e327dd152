package pattern

import (
	"regexp"
	"strings"

	"github.com/textorigin/textorigin/internal/model"
)

// Marker describes one lexical or structural signal in the catalog. A marker
// triggers when its detected value exceeds Threshold; the resulting match
// strength is min(1, (value-threshold)/threshold) and the score impact is
// Weight * strength. AI-leaning markers carry positive weights, human-leaning
// markers negative ones.
type Marker struct {
	Name        string
	Category    model.MarkerCategory
	Description string
	Weight      float64
	Threshold   float64
	Detect      func(*Stats) float64
}

// Marker names referenced by the fusion strength heuristics
const (
	MarkerEmDashOveruse    = "em_dash_overuse"
	MarkerFormalStarters   = "formal_starters"
	MarkerHedgingLanguage  = "hedging_language"
	MarkerBuzzwordPhrases  = "buzzword_phrases"
	MarkerUniformSentences = "uniform_sentences"
	MarkerListFormatting   = "list_formatting"

	MarkerContractions         = "contractions"
	MarkerPersonalPronouns     = "personal_pronouns"
	MarkerInformalLanguage     = "informal_language"
	MarkerEmotionalPunctuation = "emotional_punctuation"
	MarkerSentenceFragments    = "sentence_fragments"
	MarkerVariedPunctuation    = "varied_punctuation"
)

// DefaultCatalog builds the standard marker catalog. The catalog is built per
// analyzer rather than cached at package level so configuration stays an
// explicit construction step.
func DefaultCatalog() []Marker {
	formalStarters := []string{
		"furthermore", "moreover", "additionally", "consequently",
		"therefore", "in conclusion", "in summary", "notably",
		"it is important to note", "it is worth noting",
	}

	hedgeRe := regexp.MustCompile(`(?i)\b(may|might|perhaps|arguably|generally|typically|often|possibly|somewhat|relatively)\b|` +
		`could potentially|tends? to|in many cases|to some extent|it is possible`)

	buzzwords := []string{
		"as an ai language model", "delve", "comprehensive", "leverage",
		"robust", "seamless", "holistic", "paradigm", "synergy",
		"tapestry", "ever-evolving", "in today's fast-paced world",
		"detailed explanations", "valuable insights",
	}

	contractionRe := regexp.MustCompile(`(?i)\b\w+['’](t|s|re|ve|ll|d|m)\b`)
	pronounRe := regexp.MustCompile(`(?i)\b(i|me|my|mine|we|us|our|ours|you|your|yours)\b`)
	informalRe := regexp.MustCompile(`(?i)\b(pretty|really|kinda|sorta|gonna|wanna|stuff|cool|awesome|amazing|yeah|okay|ok|honestly|literally|basically|totally)\b`)
	bulletRe := regexp.MustCompile(`^\s*([-*•]|\d+[.)])\s+`)

	return []Marker{
		{
			Name:        MarkerEmDashOveruse,
			Category:    model.CategoryAI,
			Description: "Excessive em-dash usage",
			Weight:      0.15,
			Threshold:   3,
			Detect: func(s *Stats) float64 {
				return float64(strings.Count(s.Text, "—"))
			},
		},
		{
			Name:        MarkerFormalStarters,
			Category:    model.CategoryAI,
			Description: "Repetitive formal sentence starters",
			Weight:      0.12,
			Threshold:   2,
			Detect: func(s *Stats) float64 {
				count := 0
				for _, sentence := range s.Sentences {
					lower := strings.ToLower(sentence)
					for _, starter := range formalStarters {
						if strings.HasPrefix(lower, starter) {
							count++
							break
						}
					}
				}
				return float64(count)
			},
		},
		{
			Name:        MarkerHedgingLanguage,
			Category:    model.CategoryAI,
			Description: "Excessive hedging qualifiers",
			Weight:      0.1,
			Threshold:   3,
			Detect: func(s *Stats) float64 {
				return float64(len(hedgeRe.FindAllString(s.Text, -1)))
			},
		},
		{
			Name:        MarkerBuzzwordPhrases,
			Category:    model.CategoryAI,
			Description: "Buzzword and cliché phrases common in generated text",
			Weight:      0.18,
			Threshold:   1,
			Detect: func(s *Stats) float64 {
				count := 0
				for _, phrase := range buzzwords {
					count += s.CountOccurrences(phrase)
				}
				return float64(count)
			},
		},
		{
			Name:        MarkerUniformSentences,
			Category:    model.CategoryAI,
			Description: "Abnormally uniform sentence lengths",
			Weight:      0.12,
			Threshold:   0.75,
			Detect: func(s *Stats) float64 {
				return s.SentenceLengthUniformity()
			},
		},
		{
			Name:        MarkerListFormatting,
			Category:    model.CategoryAI,
			Description: "List- and bullet-heavy formatting",
			Weight:      0.1,
			Threshold:   3,
			Detect: func(s *Stats) float64 {
				count := 0
				for _, line := range s.Lines {
					if bulletRe.MatchString(line) {
						count++
					}
				}
				return float64(count)
			},
		},

		{
			Name:        MarkerContractions,
			Category:    model.CategoryHuman,
			Description: "Contractions typical of informal human writing",
			Weight:      -0.15,
			Threshold:   1,
			Detect: func(s *Stats) float64 {
				return float64(len(contractionRe.FindAllString(s.Text, -1)))
			},
		},
		{
			Name:        MarkerPersonalPronouns,
			Category:    model.CategoryHuman,
			Description: "High density of personal pronouns",
			Weight:      -0.1,
			Threshold:   0.08,
			Detect: func(s *Stats) float64 {
				if len(s.Words) == 0 {
					return 0
				}
				return float64(len(pronounRe.FindAllString(s.Text, -1))) / float64(len(s.Words))
			},
		},
		{
			Name:        MarkerInformalLanguage,
			Category:    model.CategoryHuman,
			Description: "Informal lexicon",
			Weight:      -0.12,
			Threshold:   1,
			Detect: func(s *Stats) float64 {
				return float64(len(informalRe.FindAllString(s.Text, -1)))
			},
		},
		{
			Name:        MarkerEmotionalPunctuation,
			Category:    model.CategoryHuman,
			Description: "Emotional punctuation and exclamations",
			Weight:      -0.1,
			Threshold:   0.25,
			Detect: func(s *Stats) float64 {
				if len(s.Sentences) == 0 {
					return 0
				}
				return float64(s.Exclamations) / float64(len(s.Sentences))
			},
		},
		{
			Name:        MarkerSentenceFragments,
			Category:    model.CategoryHuman,
			Description: "Sentence fragments",
			Weight:      -0.08,
			Threshold:   1,
			Detect: func(s *Stats) float64 {
				count := 0
				for _, n := range s.SentenceWordCounts {
					if n > 0 && n < 4 {
						count++
					}
				}
				return float64(count)
			},
		},
		{
			Name:        MarkerVariedPunctuation,
			Category:    model.CategoryHuman,
			Description: "Varied punctuation usage",
			Weight:      -0.08,
			Threshold:   0.5,
			Detect: func(s *Stats) float64 {
				return s.PunctuationVariety()
			},
		},
	}
}
