// Package enrich runs the three enrichment stages sequentially and
// aggregates their results into one immutable record.
package enrich

import (
	"fmt"
	"time"

	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/entities"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/logger"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/models"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/sentiment"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/summarize"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/pkg/utils"
)

// Enricher composes the summarization, entity extraction, and sentiment
// stages. The stages are independent: each reads the same input text and
// fills a disjoint part of the result.
type Enricher struct {
	summarizer *summarize.Summarizer
	extractor  *entities.Extractor
	analyzer   *sentiment.Analyzer
	sentences  int
	log        *logger.Logger
}

// NewEnricher creates an enricher producing summaries of sentencesCount
// sentences.
func NewEnricher(extractor *entities.Extractor, sentencesCount int, log *logger.Logger) *Enricher {
	return &Enricher{
		summarizer: summarize.NewSummarizer(),
		extractor:  extractor,
		analyzer:   sentiment.NewAnalyzer(),
		sentences:  sentencesCount,
		log:        log,
	}
}

// Enrich runs all three stages over text and aggregates the results.
// A failure in any stage aborts the run; nothing partial is returned.
func (e *Enricher) Enrich(text string) (*models.Result, error) {
	start := time.Now()

	e.log.Info("summarizing", "sentences", e.sentences)
	summary := e.summarizer.Summarize(text, e.sentences)

	e.log.Info("extracting entities")

	detected, err := e.extractor.Extract(text)
	if err != nil {
		return nil, fmt.Errorf("enrichment failed: %w", err)
	}

	e.log.Info("analyzing sentiment")
	polarity := e.analyzer.Classify(text)

	e.log.Debug("enrichment complete",
		"entities", len(detected),
		"sentiment", polarity.Label,
		"duration", time.Since(start),
	)

	return &models.Result{
		Summary:      summary,
		Entities:     detected,
		Sentiment:    polarity,
		OriginalText: utils.TrimWhitespace(text),
	}, nil
}
