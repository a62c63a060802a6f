package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/models"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/pkg/utils"
)

const consoleRule = "------------------------------------------------"

// maxConsoleEntities caps the entity table printed to the terminal;
// the full list is always in the artifacts.
const maxConsoleEntities = 20

// RenderEntityTable returns a two-column table of entities with
// display-width-aware padding, so CJK entity text stays aligned.
func RenderEntityTable(detected []models.Entity) string {
	if len(detected) == 0 {
		return "  (no entities detected)\n"
	}

	shown := detected
	if len(shown) > maxConsoleEntities {
		shown = shown[:maxConsoleEntities]
	}

	textWidth := runewidth.StringWidth("Entity")
	for _, ent := range shown {
		if w := runewidth.StringWidth(ent.Text); w > textWidth {
			textWidth = w
		}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "  %s  %s\n", runewidth.FillRight("Entity", textWidth), "Label")

	for _, ent := range shown {
		fmt.Fprintf(&b, "  %s  %s\n", runewidth.FillRight(ent.Text, textWidth), ent.Label)
	}

	if len(detected) > len(shown) {
		fmt.Fprintf(&b, "  ... and %d more\n", len(detected)-len(shown))
	}

	return b.String()
}

// PrintRunReport writes the final console summary for a completed run.
func PrintRunReport(w io.Writer, result *models.Result, stats models.TextStats, jsonPath, htmlPath string, elapsed time.Duration) {
	fmt.Fprintln(w, "\n"+consoleRule)
	fmt.Fprintf(w, "📊 Enrichment Report\n")
	fmt.Fprintln(w, consoleRule)
	fmt.Fprintf(w, "Input: %d words, %d sentences, %d bytes\n", stats.Words, stats.Sentences, stats.Bytes)
	fmt.Fprintf(w, "Summary: %s\n", utils.Truncate(utils.NormalizeWhitespace(result.Summary), 160))
	fmt.Fprintf(w, "Sentiment: %s (compound %.4f)\n", result.Sentiment.Label, result.Sentiment.Scores["compound"])
	fmt.Fprintf(w, "Entities: %d\n", len(result.Entities))
	fmt.Fprint(w, RenderEntityTable(result.Entities))
	fmt.Fprintf(w, "JSON: %s\n", jsonPath)

	if htmlPath != "" {
		fmt.Fprintf(w, "HTML: %s\n", htmlPath)
	}

	fmt.Fprintf(w, "Total Duration: %v\n", elapsed)
	fmt.Fprintln(w, consoleRule)
}
