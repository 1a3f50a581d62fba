// Package classify scores normalized document text against every catalog
// entry and selects the winning category. Scoring is deterministic for a
// fixed catalog: the same text always produces the same category and
// confidence.
package classify

import (
	"strings"

	"github.com/seaops/mariner/pkg/mariner/catalog"
)

// Weights scales the three rule components of the score:
//
//	raw = Keyword·(#keyword hits) + Equipment·(#equipment hits) + Priority·(#indicator hits)
//	total = raw · category weight
type Weights struct {
	Keyword   float64
	Equipment float64
	Priority  float64
}

// DefaultWeights returns the standard component weights.
func DefaultWeights() Weights {
	return Weights{Keyword: 0.4, Equipment: 0.3, Priority: 0.3}
}

const (
	// FallbackThreshold is the minimum winning score required to trust a
	// classification. Anything weaker falls back to RoutineMaintenance.
	FallbackThreshold = 0.5

	// FallbackConfidence is the fixed confidence reported on fallback.
	FallbackConfidence = 0.1
)

// Scorer classifies text against a fixed catalog.
type Scorer struct {
	cat     *catalog.Catalog
	weights Weights
}

// NewScorer creates a scorer over the given catalog and component weights.
func NewScorer(cat *catalog.Catalog, w Weights) *Scorer {
	return &Scorer{cat: cat, weights: w}
}

// Outcome is a classification decision.
type Outcome struct {
	Category   catalog.Category
	Confidence float64
	// Fallback is true when no category scored above FallbackThreshold and
	// the weak-signal escape valve forced RoutineMaintenance.
	Fallback bool
}

// Score is the per-category breakdown behind a decision.
type Score struct {
	Category         catalog.Category
	KeywordMatches   int
	EquipmentMatches int
	PriorityMatches  int
	// Matched lists the terms that hit, in rule order.
	Matched []string
	// Raw is the component-weighted sum before the category weight.
	Raw float64
	// Total is Raw scaled by the category weight.
	Total float64
}

// Scores returns the full breakdown for every catalog entry, in catalog
// (tie-break) order. Matching is substring containment on the lower-cased
// text; each term counts at most once.
func (s *Scorer) Scores(text string) []Score {
	lower := strings.ToLower(text)
	scores := make([]Score, 0, s.cat.Len())

	for _, entry := range s.cat.Entries() {
		sc := Score{Category: entry.Category}
		sc.KeywordMatches, sc.Matched = countMatches(lower, entry.Rule.Keywords, sc.Matched)
		sc.EquipmentMatches, sc.Matched = countMatches(lower, entry.Rule.EquipmentTerms, sc.Matched)
		sc.PriorityMatches, sc.Matched = countMatches(lower, entry.Rule.PriorityIndicators, sc.Matched)

		sc.Raw = s.weights.Keyword*float64(sc.KeywordMatches) +
			s.weights.Equipment*float64(sc.EquipmentMatches) +
			s.weights.Priority*float64(sc.PriorityMatches)
		sc.Total = sc.Raw * entry.Rule.Weight

		scores = append(scores, sc)
	}

	return scores
}

// Classify picks the highest-scoring category. Ties resolve toward the
// earlier catalog entry. Confidence is the winning score's share of the
// total score mass, clamped to [0,1]; a winning score below
// FallbackThreshold overrides the decision to RoutineMaintenance with
// FallbackConfidence.
func (s *Scorer) Classify(text string) Outcome {
	scores := s.Scores(text)

	best := 0
	sum := 0.0
	for i, sc := range scores {
		sum += sc.Total
		// Strict comparison keeps the earliest entry on ties.
		if sc.Total > scores[best].Total {
			best = i
		}
	}

	winning := scores[best]
	if winning.Total < FallbackThreshold {
		return Outcome{
			Category:   catalog.RoutineMaintenance,
			Confidence: FallbackConfidence,
			Fallback:   true,
		}
	}

	confidence := 0.0
	if sum > 0 {
		confidence = winning.Total / sum
	}
	if confidence > 1 {
		confidence = 1
	}
	if confidence < 0 {
		confidence = 0
	}

	return Outcome{Category: winning.Category, Confidence: confidence}
}

// countMatches counts terms contained in lower and appends the hits to
// matched.
func countMatches(lower string, terms []string, matched []string) (int, []string) {
	n := 0
	for _, term := range terms {
		if strings.Contains(lower, term) {
			n++
			matched = append(matched, term)
		}
	}
	return n, matched
}
