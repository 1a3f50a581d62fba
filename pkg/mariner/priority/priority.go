// Package priority derives an action priority from document text and its
// classified category. Resolution is layered: urgent language always wins,
// then category-specific overrides, then weaker textual cues.
package priority

import (
	"fmt"
	"strings"

	"github.com/seaops/mariner/pkg/mariner/catalog"
	"github.com/seaops/mariner/pkg/mariner/internalerr"
)

// Level is an action priority.
type Level string

const (
	Critical Level = "Critical"
	High     Level = "High"
	Medium   Level = "Medium"
	Low      Level = "Low"
)

// Levels returns all levels in descending severity.
func Levels() []Level {
	return []Level{Critical, High, Medium, Low}
}

// Severity maps a level to a comparable rank, Critical highest. Unknown
// levels rank below Low.
func (l Level) Severity() int {
	switch l {
	case Critical:
		return 4
	case High:
		return 3
	case Medium:
		return 2
	case Low:
		return 1
	}
	return 0
}

func (l Level) String() string { return string(l) }

// ParseLevel maps a display string to a Level, case-insensitively.
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels() {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", internalerr.ErrUnknownPriority, s)
}

// Rules holds the trigger vocabularies used by a Resolver.
type Rules struct {
	// Urgent terms force Critical regardless of category.
	Urgent []string
	// High and Medium terms apply when no category override fires.
	High   []string
	Medium []string
	// Environmental terms escalate compliance breaches to Critical.
	Environmental []string
	// Safety terms escalate safety violations to High.
	Safety []string
}

// DefaultRules returns the standard trigger vocabularies.
func DefaultRules() Rules {
	return Rules{
		Urgent: []string{
			"critical", "emergency", "immediate", "urgent", "danger",
			"failure", "shutdown", "stop", "collision", "fire", "flood",
		},
		High: []string{
			"warning", "alert", "malfunction", "leak", "damage",
			"hazard", "risk", "violation", "non-compliance",
		},
		Medium: []string{
			"attention", "monitor", "check", "inspect", "service",
			"repair", "replace", "maintenance",
		},
		Environmental: []string{"spill", "discharge", "violation"},
		Safety:        []string{"accident", "injury"},
	}
}

// Resolver derives priority levels from text and category.
type Resolver struct {
	rules Rules
}

// NewResolver builds a resolver over the given rules. Terms are matched
// case-insensitively by substring containment.
func NewResolver(rules Rules) *Resolver {
	return &Resolver{rules: Rules{
		Urgent:        lowerAll(rules.Urgent),
		High:          lowerAll(rules.High),
		Medium:        lowerAll(rules.Medium),
		Environmental: lowerAll(rules.Environmental),
		Safety:        lowerAll(rules.Safety),
	}}
}

// Resolve returns the priority for a document. The first matching layer
// wins: urgent terms, then category overrides, then high terms, then
// medium terms, then Low.
func (r *Resolver) Resolve(text string, category catalog.Category) Level {
	lower := strings.ToLower(text)

	if containsAny(lower, r.rules.Urgent) {
		return Critical
	}

	switch category {
	case catalog.CriticalEquipmentFailure:
		return Critical
	case catalog.EnvironmentalCompliance:
		if containsAny(lower, r.rules.Environmental) {
			return Critical
		}
		return High
	case catalog.NavigationalHazard:
		return High
	case catalog.SafetyViolation:
		if containsAny(lower, r.rules.Safety) {
			return High
		}
		return Medium
	}

	if containsAny(lower, r.rules.High) {
		return High
	}
	if containsAny(lower, r.rules.Medium) {
		return Medium
	}
	return Low
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func lowerAll(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = strings.ToLower(t)
	}
	return out
}
