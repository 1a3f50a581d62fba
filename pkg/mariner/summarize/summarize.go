// Package summarize builds short extractive summaries of document text.
package summarize

import (
	"unicode/utf8"

	"github.com/seaops/mariner/pkg/mariner/textproc"
)

// DefaultMaxLength is the summary length cap used when the caller passes a
// non-positive maximum.
const DefaultMaxLength = 150

const ellipsis = "..."

// Summarize returns an extractive summary of at most maxLength runes,
// allowing up to three extra for a trailing ellipsis. It keeps the first
// sentence and greedily appends following sentences while they fit. Text
// with no detectable sentences is truncated directly.
func Summarize(text string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	sentences := textproc.Sentences(text)
	if len(sentences) == 0 {
		return truncate(text, maxLength)
	}

	summary := sentences[0]
	for _, s := range sentences[1:] {
		candidate := summary + " " + s
		if utf8.RuneCountInString(candidate) > maxLength {
			break
		}
		summary = candidate
	}

	if utf8.RuneCountInString(summary) > maxLength {
		cut := maxLength - len(ellipsis)
		if cut < 0 {
			cut = 0
		}
		summary = string([]rune(summary)[:cut]) + ellipsis
	}
	return summary
}

// truncate cuts raw text to maxLength runes, appending an ellipsis when
// anything was dropped.
func truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + ellipsis
}
