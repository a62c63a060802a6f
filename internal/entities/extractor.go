// Package entities wraps named-entity recognition, including explicit
// on-demand model download when a disk model is configured but absent.
package entities

import (
	"fmt"

	prose "github.com/jdkato/prose/v2"

	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/models"
)

// Extractor detects named entities in text. A nil model selects the
// library's built-in English model.
type Extractor struct {
	model *prose.Model
}

// NewExtractor creates an extractor using the built-in model.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// NewExtractorWithModel creates an extractor backed by a model loaded
// from disk. A nil model falls back to the built-in one.
func NewExtractorWithModel(model *prose.Model) *Extractor {
	return &Extractor{model: model}
}

// Extract returns (surface text, label) pairs in the order the model
// detects them. Duplicates are preserved and character spans discarded.
// The returned slice is never nil so empty results serialize as [].
func (e *Extractor) Extract(text string) ([]models.Entity, error) {
	var opts []prose.DocOpt
	if e.model != nil {
		opts = append(opts, prose.UsingModel(e.model))
	}

	doc, err := prose.NewDocument(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("entity extraction failed: %w", err)
	}

	detected := doc.Entities()
	result := make([]models.Entity, 0, len(detected))

	for _, ent := range detected {
		result = append(result, models.Entity{
			Text:  ent.Text,
			Label: ent.Label,
		})
	}

	return result, nil
}
