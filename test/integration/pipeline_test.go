package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/enrich"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/entities"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/input"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/logger"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/models"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/report"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/summarize"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/textstats"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/pkg/metadata"
)

func runPipeline(t *testing.T) (string, *models.Result) {
	t.Helper()

	fixturePath := filepath.Join("..", "fixtures", "sample.txt")

	reader := input.NewReader()

	text, err := reader.ReadFile(fixturePath)
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}

	enricher := enrich.NewEnricher(entities.NewExtractor(), 3, logger.NewLogger("error"))

	result, err := enricher.Enrich(text)
	if err != nil {
		t.Fatalf("Enrich failed: %v", err)
	}

	return text, result
}

func TestPipelineFlow(t *testing.T) {
	text, result := runPipeline(t)

	if result.Summary == "" || result.Summary == summarize.Placeholder {
		t.Errorf("Expected a real summary for the fixture, got %q", result.Summary)
	}

	if result.OriginalText != strings.TrimSpace(text) {
		t.Error("OriginalText does not equal trimmed fixture text")
	}

	// Entities come back in discovery order.
	cursor := 0

	for _, ent := range result.Entities {
		idx := strings.Index(result.OriginalText[cursor:], ent.Text)
		if idx < 0 {
			t.Fatalf("Entity %q out of document order", ent.Text)
		}

		cursor += idx
	}
}

func TestPipelineFlow_Artifacts(t *testing.T) {
	_, result := runPipeline(t)

	dir := t.TempDir()
	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	jsonPath, htmlPath := report.ArtifactNames(dir, "", now)

	if err := report.WriteJSON(result, jsonPath); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	stats := textstats.Compute(result.OriginalText)
	if err := report.WriteHTML(result, stats, htmlPath); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}

	// JSON round-trips with exactly the four record keys.
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("Failed to read JSON artifact: %v", err)
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("JSON artifact is invalid: %v", err)
	}

	for _, key := range []string{"summary", "entities", "sentiment", "original_text"} {
		if _, ok := parsed[key]; !ok {
			t.Errorf("JSON artifact missing key %q", key)
		}
	}

	if len(parsed) != 4 {
		t.Errorf("JSON artifact has %d keys, want exactly 4", len(parsed))
	}

	// HTML report exists and its metadata stamp verifies.
	html, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatalf("Failed to read HTML artifact: %v", err)
	}

	if ok, err := metadata.Verify(string(html)); err != nil || !ok {
		t.Errorf("HTML metadata did not verify: %v", err)
	}
}

func TestPipelineFlow_NoHTML(t *testing.T) {
	_, result := runPipeline(t)

	dir := t.TempDir()
	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	jsonPath, htmlPath := report.ArtifactNames(dir, "", now)

	if err := report.WriteJSON(result, jsonPath); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	// HTML writer skipped: only the JSON artifact exists.
	if _, err := os.Stat(jsonPath); err != nil {
		t.Errorf("JSON artifact missing: %v", err)
	}

	if _, err := os.Stat(htmlPath); !os.IsNotExist(err) {
		t.Errorf("HTML artifact should not exist, stat err = %v", err)
	}
}

func TestPipelineFlow_ExplicitJSONName(t *testing.T) {
	_, result := runPipeline(t)

	dir := t.TempDir()
	explicit := filepath.Join(dir, "foo.json")

	jsonPath, htmlPath := report.ArtifactNames(dir, explicit, time.Now())

	if jsonPath != explicit {
		t.Fatalf("jsonPath = %s, want %s", jsonPath, explicit)
	}

	if !strings.HasPrefix(filepath.Base(htmlPath), "report_") {
		t.Errorf("HTML name lost its timestamp prefix: %s", htmlPath)
	}

	if err := report.WriteJSON(result, jsonPath); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	if _, err := os.Stat(explicit); err != nil {
		t.Errorf("Expected JSON at explicit path: %v", err)
	}
}
