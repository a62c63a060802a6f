// Package models defines the data structures shared across the enrichment pipeline.
package models

// Entity is a named-entity mention detected in the source text.
// Entities keep their discovery order and duplicates; character offsets
// from the underlying model are not retained.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Sentiment holds the raw polarity score components and the derived label.
type Sentiment struct {
	Label  string             `json:"label"`
	Scores map[string]float64 `json:"scores"`
}

// Result is the aggregate record produced by one pipeline run.
// It is built once, written to the output artifacts, and never mutated.
type Result struct {
	Summary      string    `json:"summary"`
	Entities     []Entity  `json:"entities"`
	Sentiment    Sentiment `json:"sentiment"`
	OriginalText string    `json:"original_text"`
}

// TextStats carries Unicode word and sentence counts for the input text.
// Stats appear in the console summary and HTML report only, never in the
// JSON artifact.
type TextStats struct {
	Words     int
	Sentences int
	Bytes     int
}
