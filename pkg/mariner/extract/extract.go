// Package extract pulls named entities and salient keywords out of
// normalized document text.
package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind labels a class of extracted entity.
type Kind string

const (
	KindEquipment    Kind = "equipment"
	KindLocations    Kind = "locations"
	KindDates        Kind = "dates"
	KindMeasurements Kind = "measurements"
	KindPersonnel    Kind = "personnel"
)

// Kinds returns every entity kind an Extractor reports.
func Kinds() []Kind {
	return []Kind{KindEquipment, KindLocations, KindDates, KindMeasurements, KindPersonnel}
}

const (
	// MaxKeywords caps the keyword list length.
	MaxKeywords = 15

	maxFrequentWords      = 10
	maxFallbackKeywords   = 10
	minKeywordLength      = 3
	minFallbackWordLength = 5
)

// trimCutset strips sentence punctuation when tokenizing words.
const trimCutset = ".,;:!?()-"

var equipmentPatterns = []string{
	`(?i)\b(engine|motor|pump|valve|turbine|generator|propeller)\b`,
	`(?i)\b(radar|gps|compass|navigation|steering)\b`,
	`(?i)\b(hull|deck|bridge|compartment)\b`,
}

// Extractor holds the compiled patterns and vocabularies for extraction.
// It is stateless after construction and safe for concurrent use.
type Extractor struct {
	equipment    []*regexp.Regexp
	dates        *regexp.Regexp
	measurements *regexp.Regexp
	stopwords    map[string]struct{}
}

// NewExtractor compiles the built-in patterns.
func NewExtractor() *Extractor {
	ex := &Extractor{
		dates:        regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
		measurements: regexp.MustCompile(`(?i)\b\d+\.?\d*\s*(meters?|feet|inches|kg|lbs|degrees?|psi|bar)\b`),
		stopwords:    make(map[string]struct{}, len(stopwords)),
	}
	for _, p := range equipmentPatterns {
		ex.equipment = append(ex.equipment, regexp.MustCompile(p))
	}
	for _, w := range stopwords {
		ex.stopwords[w] = struct{}{}
	}
	return ex
}

var stopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "been", "but", "by",
	"for", "from", "had", "has", "have", "in", "into", "is", "it",
	"its", "of", "on", "or", "our", "over", "so", "such", "that",
	"the", "their", "there", "these", "this", "those", "to", "under",
	"upon", "was", "were", "which", "while", "will", "with", "would",
}

// Entities extracts equipment mentions, dates, and measurements. The
// returned map always carries every Kind; locations and personnel stay
// empty until a gazetteer or crew roster source is wired in. Values keep
// their original casing, deduplicated in first-seen order.
func (e *Extractor) Entities(text string) map[Kind][]string {
	var equipment []string
	for _, re := range e.equipment {
		equipment = append(equipment, re.FindAllString(text, -1)...)
	}

	return map[Kind][]string{
		KindEquipment:    dedup(equipment),
		KindLocations:    {},
		KindDates:        dedup(e.dates.FindAllString(text, -1)),
		KindMeasurements: dedup(e.measurements.FindAllString(text, -1)),
		KindPersonnel:    {},
	}
}

// Keywords returns up to MaxKeywords salient terms: capitalized multi-word
// phrases first, then the most frequent meaningful words, deduplicated in
// that order. When nothing survives the filters it falls back to the bare
// long words of the text and reports degraded=true.
func (e *Extractor) Keywords(text string) (keywords []string, degraded bool) {
	candidates := e.capitalizedPhrases(text)
	candidates = append(candidates, e.frequentWords(text)...)

	out := make([]string, 0, MaxKeywords)
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if utf8.RuneCountInString(c) < minKeywordLength {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
		if len(out) == MaxKeywords {
			break
		}
	}

	if len(out) > 0 {
		return out, false
	}
	return e.fallbackWords(text), true
}

// capitalizedPhrases collects runs of two or more capitalized words as
// lower-cased phrases. Sentence punctuation ends a run, and leading
// stopwords are dropped so "The Main Engine" yields "main engine".
func (e *Extractor) capitalizedPhrases(text string) []string {
	var phrases []string
	var run []string

	flush := func() {
		for len(run) > 0 {
			if _, stop := e.stopwords[run[0]]; !stop {
				break
			}
			run = run[1:]
		}
		if len(run) >= 2 {
			phrases = append(phrases, strings.Join(run, " "))
		}
		run = nil
	}

	for _, word := range strings.Fields(text) {
		trimmed := strings.Trim(word, trimCutset)
		if !isCapitalized(trimmed) {
			flush()
			continue
		}
		run = append(run, strings.ToLower(trimmed))
		if endsSentence(word) {
			flush()
		}
	}
	flush()

	return phrases
}

// frequentWords returns the most frequent non-stopword words longer than
// three characters, most frequent first. Equal counts keep first-seen
// order.
func (e *Extractor) frequentWords(text string) []string {
	counts := make(map[string]int)
	var order []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, trimCutset)
		if utf8.RuneCountInString(word) < minKeywordLength+1 {
			continue
		}
		if _, stop := e.stopwords[word]; stop {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxFrequentWords {
		order = order[:maxFrequentWords]
	}
	return order
}

// fallbackWords is the degraded path: unique words longer than four
// characters, first-seen order, no stopword filtering.
func (e *Extractor) fallbackWords(text string) []string {
	out := []string{}
	seen := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, trimCutset)
		if utf8.RuneCountInString(word) < minFallbackWordLength {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
		if len(out) == maxFallbackKeywords {
			break
		}
	}
	return out
}

func isCapitalized(word string) bool {
	if word == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

func endsSentence(word string) bool {
	r, _ := utf8.DecodeLastRuneInString(word)
	return strings.ContainsRune(".,;:!?)", r)
}

func dedup(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
