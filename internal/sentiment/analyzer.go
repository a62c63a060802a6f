// Package sentiment wraps the VADER lexicon-based polarity scorer.
package sentiment

import (
	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"

	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/models"
)

// Compound score thresholds for the three-way label. Boundary values are
// inclusive: exactly 0.05 is positive, exactly -0.05 is negative.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Analyzer scores text polarity with the default VADER lexicon.
type Analyzer struct{}

// NewAnalyzer creates a new sentiment analyzer instance.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Classify returns the raw four-component polarity scores plus the label
// derived from the compound score.
func (a *Analyzer) Classify(text string) models.Sentiment {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	score := sentitext.PolarityScore(parsed)

	return models.Sentiment{
		Label: Label(score.Compound),
		Scores: map[string]float64{
			"negative": score.Negative,
			"neutral":  score.Neutral,
			"positive": score.Positive,
			"compound": score.Compound,
		},
	}
}

// Label derives the three-way sentiment label from a compound score.
func Label(compound float64) string {
	switch {
	case compound >= PositiveThreshold:
		return "positive"
	case compound <= NegativeThreshold:
		return "negative"
	default:
		return "neutral"
	}
}
