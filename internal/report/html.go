package report

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/models"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/pkg/metadata"
)

// ReportVersion is stamped into the metadata block of every HTML report.
const ReportVersion = "1.0"

// The template uses text/template on purpose: entity text and the
// original text are interpolated unescaped, matching the established
// report output. Escaping them would change observable behavior and is
// tracked as a known injection gap.
const reportTemplate = `<!doctype html>
<html lang="en"><head><meta charset="utf-8">
<title>Text Enrichment Report</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; line-height: 1.5; }
pre { background:#f7f7f7; padding:12px; border-radius:6px; }
.box { padding:10px; border:1px solid #ddd; border-radius:6px; margin-bottom:16px; }
.entities td { padding:6px; border-bottom:1px solid #eee; }
</style></head><body>
<h1>Text Enrichment Report</h1>
<div class="box"><h2>Summary</h2><p>{{.Summary}}</p></div>
<div class="box"><h2>Named Entities</h2>
<table class="entities"><tr><th>Entity</th><th>Label</th></tr>
{{range .Entities}}<tr><td>{{.Text}}</td><td>{{.Label}}</td></tr>
{{end}}</table></div>
<div class="box"><h2>Sentiment</h2>
<p><strong>Label:</strong> {{.SentimentLabel}}</p>
<pre>{{.ScoresJSON}}</pre></div>
<div class="box"><h2>Document Stats</h2>
<p>{{.Stats.Words}} words &middot; {{.Stats.Sentences}} sentences &middot; {{.Stats.Bytes}} bytes</p></div>
<div class="box"><h2>Original Text</h2><pre>{{.OriginalText}}</pre></div>
</body></html>`

var reportTmpl = template.Must(template.New("report").Parse(reportTemplate))

type reportView struct {
	Summary        string
	Entities       []models.Entity
	SentimentLabel string
	ScoresJSON     string
	Stats          models.TextStats
	OriginalText   string
}

// WriteHTML renders the result into a static HTML report at path and
// stamps it with a signed generation metadata block.
func WriteHTML(result *models.Result, stats models.TextStats, path string) error {
	scores, err := scoresJSON(result.Sentiment.Scores)
	if err != nil {
		return err
	}

	var buf strings.Builder

	view := reportView{
		Summary:        result.Summary,
		Entities:       result.Entities,
		SentimentLabel: result.Sentiment.Label,
		ScoresJSON:     scores,
		Stats:          stats,
		OriginalText:   result.OriginalText,
	}

	if err := reportTmpl.Execute(&buf, view); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}

	stamped := metadata.Stamp(buf.String(), ReportVersion)

	if err := os.WriteFile(path, []byte(stamped), 0644); err != nil {
		return fmt.Errorf("failed to write HTML report %s: %w", path, err)
	}

	return nil
}
