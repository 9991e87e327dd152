package model

import "testing"

func TestNewTextSampleTrims(t *testing.T) {
	sample := NewTextSample("  hello world  \n")

	if sample.Text != "hello world" {
		t.Errorf("Expected trimmed text, got %q", sample.Text)
	}
}

func TestIsEmpty(t *testing.T) {
	if !NewTextSample("   \n\t ").IsEmpty() {
		t.Error("Whitespace-only input should be empty")
	}
	if NewTextSample("x").IsEmpty() {
		t.Error("Non-empty input reported as empty")
	}
}

func TestCharCountRunes(t *testing.T) {
	sample := NewTextSample("héllo — ünïcode")

	if got := sample.CharCount(); got != 15 {
		t.Errorf("Expected 15 runes, got %d", got)
	}
}

func TestWordCount(t *testing.T) {
	sample := NewTextSample("one  two\tthree\nfour")

	if got := sample.WordCount(); got != 4 {
		t.Errorf("Expected 4 words, got %d", got)
	}
}

func TestSentenceCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"One. Two! Three?", 3},
		{"No terminator at all", 1},
		{"", 0},
	}

	for _, tt := range tests {
		if got := NewTextSample(tt.text).SentenceCount(); got != tt.want {
			t.Errorf("%q: expected %d sentences, got %d", tt.text, tt.want, got)
		}
	}
}

func TestMetrics(t *testing.T) {
	m := NewTextSample("One two. Three four!").Metrics()

	if m.CharCount != 20 {
		t.Errorf("Expected 20 chars, got %d", m.CharCount)
	}
	if m.WordCount != 4 {
		t.Errorf("Expected 4 words, got %d", m.WordCount)
	}
	if m.SentenceCount != 2 {
		t.Errorf("Expected 2 sentences, got %d", m.SentenceCount)
	}
}

func TestHasLetters(t *testing.T) {
	if NewTextSample("12345 !!!").HasLetters() {
		t.Error("Digits and punctuation should not count as letters")
	}
	if !NewTextSample("123 a").HasLetters() {
		t.Error("Expected letters to be detected")
	}
}
