// Package textstats computes Unicode word and sentence counts per UAX #29.
package textstats

import (
	"unicode"

	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"

	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/models"
)

// Compute segments text into words and sentences and returns the counts.
// Whitespace and punctuation-only word tokens are not counted.
func Compute(text string) models.TextStats {
	stats := models.TextStats{Bytes: len(text)}

	wordTokens := words.FromString(text)
	for wordTokens.Next() {
		if wordlike(wordTokens.Value()) {
			stats.Words++
		}
	}

	sentenceTokens := sentences.FromString(text)
	for sentenceTokens.Next() {
		if wordlike(sentenceTokens.Value()) {
			stats.Sentences++
		}
	}

	return stats
}

// wordlike reports whether a token contains at least one letter or digit.
func wordlike(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}

	return false
}
