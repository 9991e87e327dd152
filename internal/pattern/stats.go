package pattern

import (
	"math"
	"strings"
	"unicode"
)

// Stats holds the tokenized view of a text sample that marker detectors read.
// It is computed once per analysis and never mutated afterwards.
type Stats struct {
	Text      string
	Lower     string
	Words     []string
	Sentences []string
	Lines     []string

	SentenceWordCounts []int
	PunctCounts        map[rune]int
	TotalPunct         int
	Exclamations       int
}

// NewStats tokenizes the sample text
func NewStats(text string) *Stats {
	s := &Stats{
		Text:        text,
		Lower:       strings.ToLower(text),
		Words:       strings.Fields(text),
		Sentences:   splitSentences(text),
		Lines:       strings.Split(text, "\n"),
		PunctCounts: make(map[rune]int),
	}

	for _, sentence := range s.Sentences {
		s.SentenceWordCounts = append(s.SentenceWordCounts, len(strings.Fields(sentence)))
	}

	for _, r := range text {
		if unicode.IsPunct(r) {
			s.PunctCounts[r]++
			s.TotalPunct++
		}
		if r == '!' {
			s.Exclamations++
		}
	}

	return s
}

// CountOccurrences counts case-insensitive occurrences of a phrase
func (s *Stats) CountOccurrences(phrase string) int {
	return strings.Count(s.Lower, strings.ToLower(phrase))
}

// SentenceLengthUniformity returns 1 - coefficient_of_variation of sentence
// word counts. Values near 1 mean abnormally even sentence lengths. Returns 0
// when fewer than three sentences exist, since the statistic is meaningless.
func (s *Stats) SentenceLengthUniformity() float64 {
	if len(s.SentenceWordCounts) < 3 {
		return 0
	}

	mean := 0.0
	for _, n := range s.SentenceWordCounts {
		mean += float64(n)
	}
	mean /= float64(len(s.SentenceWordCounts))
	if mean == 0 {
		return 0
	}

	variance := 0.0
	for _, n := range s.SentenceWordCounts {
		d := float64(n) - mean
		variance += d * d
	}
	variance /= float64(len(s.SentenceWordCounts))

	cv := math.Sqrt(variance) / mean
	uniformity := 1 - cv
	if uniformity < 0 {
		return 0
	}
	return uniformity
}

// PunctuationVariety returns unique_punct_chars / total_punct_chars. Returns 0
// below a floor of six punctuation characters, where the ratio is trivially
// high.
func (s *Stats) PunctuationVariety() float64 {
	if s.TotalPunct < minPunctForVariety {
		return 0
	}
	return float64(len(s.PunctCounts)) / float64(s.TotalPunct)
}

// minPunctForVariety is the minimum punctuation count before the variety
// ratio is considered meaningful
const minPunctForVariety = 6

// splitSentences splits text on terminator punctuation (simple heuristic,
// same idiom as sentence counting in the model package)
func splitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			flush()
		}
	}
	flush()

	return sentences
}
