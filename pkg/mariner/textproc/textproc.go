// Package textproc normalizes raw document text and splits it into
// sentences for the downstream analysis stages. Normalization is
// idempotent: applying it twice yields the same string.
package textproc

import (
	"strings"
	"unicode"
)

// Normalize cleans raw text for analysis. Runs of whitespace (including
// newlines) collapse to single spaces, characters outside a conservative
// allowlist are replaced with spaces, and repeated '.' or '!' runs collapse
// to a single mark. Empty or all-punctuation input yields "".
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	var prev rune
	pendingSpace := false

	for _, r := range text {
		if unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}
		if !allowed(r) {
			pendingSpace = true
			continue
		}
		if r == prev && (r == '.' || r == '!') && !pendingSpace {
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
		prev = r
	}

	return b.String()
}

// allowed reports whether r survives normalization: word characters plus a
// small retained punctuation set.
func allowed(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		return true
	}
	switch r {
	case '.', ',', ';', ':', '!', '?', '-', '(', ')':
		return true
	}
	return false
}

// Sentences splits text into sentences. A sentence boundary is a run of
// '.', '!' or '?' followed by whitespace or end of text, so decimals like
// "3.5 bar" stay intact. Terminal punctuation is kept with its sentence.
func Sentences(text string) []string {
	var sentences []string
	runes := []rune(text)

	start := 0
	i := 0
	for i < len(runes) {
		if isTerminator(runes[i]) {
			j := i
			for j < len(runes) && isTerminator(runes[j]) {
				j++
			}
			if j >= len(runes) || unicode.IsSpace(runes[j]) {
				s := strings.TrimSpace(string(runes[start:j]))
				if hasContent(s) {
					sentences = append(sentences, s)
				}
				start = j
			}
			i = j
			continue
		}
		i++
	}

	if start < len(runes) {
		s := strings.TrimSpace(string(runes[start:]))
		if hasContent(s) {
			sentences = append(sentences, s)
		}
	}

	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// hasContent reports whether s contains at least one letter or digit.
func hasContent(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
