package pattern

import (
	"testing"

	"github.com/textorigin/textorigin/internal/model"
)

func catalogByName(t *testing.T) map[string]Marker {
	t.Helper()

	byName := make(map[string]Marker)
	for _, m := range DefaultCatalog() {
		if _, dup := byName[m.Name]; dup {
			t.Fatalf("Duplicate marker name: %s", m.Name)
		}
		byName[m.Name] = m
	}
	return byName
}

func TestDefaultCatalogShape(t *testing.T) {
	catalog := DefaultCatalog()

	if len(catalog) != 12 {
		t.Errorf("Expected 12 markers, got %d", len(catalog))
	}

	for _, m := range catalog {
		if m.Name == "" {
			t.Error("Marker with empty name")
		}
		if m.Detect == nil {
			t.Errorf("Marker %s has no detector", m.Name)
		}
		if m.Threshold <= 0 {
			t.Errorf("Marker %s has non-positive threshold %f", m.Name, m.Threshold)
		}
		switch m.Category {
		case model.CategoryAI:
			if m.Weight <= 0 {
				t.Errorf("AI marker %s should have positive weight, got %f", m.Name, m.Weight)
			}
		case model.CategoryHuman:
			if m.Weight >= 0 {
				t.Errorf("Human marker %s should have negative weight, got %f", m.Name, m.Weight)
			}
		default:
			t.Errorf("Marker %s has unknown category %q", m.Name, m.Category)
		}
	}
}

func TestEmDashDetector(t *testing.T) {
	m := catalogByName(t)[MarkerEmDashOveruse]

	stats := NewStats("First—second—third—fourth—fifth.")
	if got := m.Detect(stats); got != 4 {
		t.Errorf("Expected 4 em-dashes, got %f", got)
	}

	stats = NewStats("A hyphen-joined word is not an em-dash.")
	if got := m.Detect(stats); got != 0 {
		t.Errorf("Expected 0 em-dashes for hyphens, got %f", got)
	}
}

func TestFormalStartersDetector(t *testing.T) {
	m := catalogByName(t)[MarkerFormalStarters]

	stats := NewStats("Furthermore, the point stands. Moreover, it holds. The middle furthermore does not count. In conclusion, done.")
	if got := m.Detect(stats); got != 3 {
		t.Errorf("Expected 3 sentence-initial starters, got %f", got)
	}
}

func TestBuzzwordDetector(t *testing.T) {
	m := catalogByName(t)[MarkerBuzzwordPhrases]

	stats := NewStats("As an AI language model, I provide comprehensive and robust answers.")
	if got := m.Detect(stats); got != 3 {
		t.Errorf("Expected 3 buzzword hits, got %f", got)
	}
}

func TestContractionsDetector(t *testing.T) {
	m := catalogByName(t)[MarkerContractions]

	stats := NewStats("It doesn't matter, we've tried and they'll see.")
	if got := m.Detect(stats); got != 3 {
		t.Errorf("Expected 3 contractions, got %f", got)
	}

	stats = NewStats("It does not matter at all.")
	if got := m.Detect(stats); got != 0 {
		t.Errorf("Expected 0 contractions, got %f", got)
	}
}

func TestPersonalPronounsDetectorExcludesIt(t *testing.T) {
	m := catalogByName(t)[MarkerPersonalPronouns]

	// "it" is deliberately not counted: too common in formal prose
	stats := NewStats("It works and it scales and it ships.")
	if got := m.Detect(stats); got != 0 {
		t.Errorf("Expected density 0 without first/second person pronouns, got %f", got)
	}

	stats = NewStats("I think my plan suits you.")
	got := m.Detect(stats)
	want := 3.0 / 6.0
	if got != want {
		t.Errorf("Expected density %f, got %f", want, got)
	}
}

func TestSentenceFragmentsDetector(t *testing.T) {
	m := catalogByName(t)[MarkerSentenceFragments]

	stats := NewStats("No way. Seriously. This full sentence has enough words to pass.")
	if got := m.Detect(stats); got != 2 {
		t.Errorf("Expected 2 fragments, got %f", got)
	}
}

func TestListFormattingDetector(t *testing.T) {
	m := catalogByName(t)[MarkerListFormatting]

	stats := NewStats("Steps:\n- first\n- second\n* third\n1. fourth\nplain line")
	if got := m.Detect(stats); got != 4 {
		t.Errorf("Expected 4 bullet lines, got %f", got)
	}
}
