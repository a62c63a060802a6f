// Package summarize wraps the TextRank extractive summarizer.
package summarize

import (
	"strings"

	textrank "github.com/DavidBelicza/TextRank/v2"
)

// Placeholder is returned whenever ranking yields no sentences, so the
// summary field is never empty.
const Placeholder = "(No clear summary generated.)"

// Summarizer produces extractive summaries by graph-ranking sentences.
// Each call builds a fresh ranking graph; the summarizer itself is
// stateless and safe to reuse.
type Summarizer struct{}

// NewSummarizer creates a new summarizer instance.
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize selects up to sentencesCount top-ranked sentences from text
// and joins them with single spaces. Counts below 1 are raised to 1.
// Degenerate input that produces no ranked sentences yields Placeholder.
func (s *Summarizer) Summarize(text string, sentencesCount int) string {
	if sentencesCount < 1 {
		sentencesCount = 1
	}

	if strings.TrimSpace(text) == "" {
		return Placeholder
	}

	tr := textrank.NewTextRank()
	tr.Populate(text, textrank.NewDefaultLanguage(), textrank.NewDefaultRule())
	tr.Ranking(textrank.NewDefaultAlgorithm())

	ranked := textrank.FindSentencesByRelationWeight(tr, sentencesCount)

	parts := make([]string, 0, len(ranked))

	for _, sentence := range ranked {
		value := strings.TrimSpace(sentence.Value)
		if value != "" {
			parts = append(parts, value)
		}
	}

	summary := strings.Join(parts, " ")
	if strings.TrimSpace(summary) == "" {
		return Placeholder
	}

	return summary
}
