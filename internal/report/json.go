// Package report serializes an enrichment result to its output
// artifacts: a JSON file, an HTML document, and a console summary.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/models"
)

// WriteJSON writes the result as pretty-printed UTF-8 JSON with 2-space
// indent. HTML escaping is disabled so non-ASCII and markup characters
// survive byte-for-byte.
func WriteJSON(result *models.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JSON output %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(result); err != nil {
		_ = f.Close()

		return fmt.Errorf("failed to encode result: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close JSON output %s: %w", path, err)
	}

	return nil
}

// scoresJSON renders the raw sentiment scores as an indented JSON block
// for the HTML report. Map keys serialize sorted, so output is stable.
func scoresJSON(scores map[string]float64) (string, error) {
	data, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode sentiment scores: %w", err)
	}

	return string(data), nil
}
