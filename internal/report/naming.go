package report

import (
	"path/filepath"
	"time"
)

// TimestampLayout formats run timestamps embedded in artifact names.
const TimestampLayout = "20060102_150405"

// ArtifactNames returns the JSON and HTML output paths for a run started
// at now. An explicit JSON name is used verbatim; the HTML name always
// carries the timestamp.
func ArtifactNames(dir, explicitJSON string, now time.Time) (jsonPath, htmlPath string) {
	ts := now.Format(TimestampLayout)

	if explicitJSON != "" {
		jsonPath = explicitJSON
	} else {
		jsonPath = filepath.Join(dir, "results_"+ts+".json")
	}

	htmlPath = filepath.Join(dir, "report_"+ts+".html")

	return jsonPath, htmlPath
}
