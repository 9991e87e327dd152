package model

import (
	"strings"
	"unicode"
)

// TextSample wraps a raw text input. Derived metrics are computed on demand;
// the sample itself is never mutated after construction.
type TextSample struct {
	Text string `json:"text"`
}

// NewTextSample creates a sample from raw input, trimming surrounding whitespace
func NewTextSample(raw string) TextSample {
	return TextSample{Text: strings.TrimSpace(raw)}
}

// IsEmpty reports whether the sample contains no analyzable text
func (s TextSample) IsEmpty() bool {
	return s.Text == ""
}

// CharCount returns the number of runes in the sample
func (s TextSample) CharCount() int {
	return len([]rune(s.Text))
}

// WordCount returns the number of whitespace-separated words
func (s TextSample) WordCount() int {
	return len(strings.Fields(s.Text))
}

// SentenceCount returns the number of sentences, using terminator punctuation
// as a simple boundary heuristic
func (s TextSample) SentenceCount() int {
	count := 0
	for _, r := range s.Text {
		if r == '.' || r == '!' || r == '?' {
			count++
		}
	}
	if count == 0 && s.Text != "" {
		return 1
	}
	return count
}

// Metrics summarizes the derived counts for reporting
type Metrics struct {
	CharCount     int `json:"char_count"`
	WordCount     int `json:"word_count"`
	SentenceCount int `json:"sentence_count"`
}

// Metrics computes all derived counts in one pass-friendly struct
func (s TextSample) Metrics() Metrics {
	return Metrics{
		CharCount:     s.CharCount(),
		WordCount:     s.WordCount(),
		SentenceCount: s.SentenceCount(),
	}
}

// HasLetters reports whether the sample contains at least one letter rune
func (s TextSample) HasLetters() bool {
	for _, r := range s.Text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
