package summarize

import (
	"strings"
	"testing"
)

const sampleText = `The harbor city depends on its fishing fleet for most of its income. ` +
	`Every morning the fishing boats leave the harbor before sunrise. ` +
	`The fleet returns to the harbor in the late afternoon with the day's catch. ` +
	`Local restaurants buy the catch directly from the fishing crews at the harbor market. ` +
	`Tourists visit the harbor market to watch the boats unload their catch.`

func TestNewSummarizer(t *testing.T) {
	if NewSummarizer() == nil {
		t.Fatal("NewSummarizer returned nil")
	}
}

func TestSummarize(t *testing.T) {
	s := NewSummarizer()

	summary := s.Summarize(sampleText, 2)
	if summary == "" {
		t.Fatal("Summarize returned empty string")
	}

	if summary == Placeholder {
		t.Fatalf("Expected a real summary, got placeholder")
	}

	// Extractive: the summary is built from sentences of the input.
	if !strings.Contains(strings.ToLower(summary), "harbor") {
		t.Errorf("Summary does not look extractive: %q", summary)
	}
}

func TestSummarize_EmptyText(t *testing.T) {
	s := NewSummarizer()

	if got := s.Summarize("", 3); got != Placeholder {
		t.Errorf("Summarize(empty) = %q, want %q", got, Placeholder)
	}

	if got := s.Summarize("   \n\t  ", 3); got != Placeholder {
		t.Errorf("Summarize(whitespace) = %q, want %q", got, Placeholder)
	}
}

func TestSummarize_CountBelowOne(t *testing.T) {
	s := NewSummarizer()

	// Counts below 1 are raised to 1, never treated as "no sentences".
	summary := s.Summarize(sampleText, 0)
	if summary == "" {
		t.Fatal("Summarize with count 0 returned empty string")
	}
}

func TestPlaceholderText(t *testing.T) {
	if Placeholder != "(No clear summary generated.)" {
		t.Errorf("Placeholder = %q", Placeholder)
	}
}
