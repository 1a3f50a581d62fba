// Package catalog defines the classification taxonomy and the weighted
// pattern rules that drive document scoring. A Catalog is built once at
// startup, validated, and treated as read-only afterwards; entry order is
// significant because the classifier breaks score ties in favor of the
// earlier entry.
package catalog

import (
	"fmt"
	"strings"

	"github.com/seaops/mariner/pkg/mariner/internalerr"
)

// Category labels a maritime issue type.
type Category string

// The fixed classification taxonomy. Declaration order doubles as the
// tie-break order of the default catalog.
const (
	CriticalEquipmentFailure Category = "Critical Equipment Failure Risk"
	NavigationalHazard       Category = "Navigational Hazard Alert"
	EnvironmentalCompliance  Category = "Environmental Compliance Breach"
	RoutineMaintenance       Category = "Routine Maintenance Required"
	SafetyViolation          Category = "Safety Violation Detected"
	FuelEfficiency           Category = "Fuel Efficiency Alert"
)

// Categories returns the taxonomy in declaration order.
func Categories() []Category {
	return []Category{
		CriticalEquipmentFailure,
		NavigationalHazard,
		EnvironmentalCompliance,
		RoutineMaintenance,
		SafetyViolation,
		FuelEfficiency,
	}
}

func (c Category) String() string { return string(c) }

// ParseCategory resolves a category label, case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", internalerr.ErrUnknownCategory, s)
}

// Rule is one category's weighted matching bag. Matching is substring
// containment against lower-cased text, so "engine" also matches inside
// "engineering"; terms are stored lower-cased.
type Rule struct {
	Keywords           []string
	EquipmentTerms     []string
	PriorityIndicators []string
	Weight             float64
}

// terms returns all matching terms across the three lists.
func (r Rule) terms() int {
	return len(r.Keywords) + len(r.EquipmentTerms) + len(r.PriorityIndicators)
}

// Entry binds a category to its rule.
type Entry struct {
	Category Category
	Rule     Rule
}

// Catalog is an ordered, immutable set of classification entries.
type Catalog struct {
	entries []Entry
}

// New builds a validated catalog from the given entries. Entry order is
// preserved and observable: the classifier resolves score ties toward the
// earlier entry. All terms are lower-cased on the way in.
func New(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no entries", internalerr.ErrInvalidCatalog)
	}

	seen := make(map[Category]struct{}, len(entries))
	normalized := make([]Entry, 0, len(entries))
	hasFallback := false

	for _, e := range entries {
		if _, err := ParseCategory(string(e.Category)); err != nil {
			return nil, fmt.Errorf("%w: %q", internalerr.ErrInvalidCatalog, e.Category)
		}
		if _, dup := seen[e.Category]; dup {
			return nil, fmt.Errorf("%w: duplicate entry for %q", internalerr.ErrInvalidCatalog, e.Category)
		}
		seen[e.Category] = struct{}{}

		if e.Rule.terms() == 0 {
			return nil, fmt.Errorf("%w: %q has no matching terms", internalerr.ErrInvalidCatalog, e.Category)
		}
		if e.Rule.Weight < 0 {
			return nil, fmt.Errorf("%w: %q has negative weight %v", internalerr.ErrInvalidCatalog, e.Category, e.Rule.Weight)
		}

		if e.Category == RoutineMaintenance {
			hasFallback = true
		}

		normalized = append(normalized, Entry{
			Category: e.Category,
			Rule: Rule{
				Keywords:           lowerAll(e.Rule.Keywords),
				EquipmentTerms:     lowerAll(e.Rule.EquipmentTerms),
				PriorityIndicators: lowerAll(e.Rule.PriorityIndicators),
				Weight:             e.Rule.Weight,
			},
		})
	}

	// The weak-signal escape valve always lands on RoutineMaintenance, so
	// a catalog without it cannot honor the fallback contract.
	if !hasFallback {
		return nil, fmt.Errorf("%w: missing fallback entry %q", internalerr.ErrInvalidCatalog, RoutineMaintenance)
	}

	return &Catalog{entries: normalized}, nil
}

// Entries returns the catalog entries in tie-break order. The returned
// slice is a copy; rule contents must not be mutated.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
