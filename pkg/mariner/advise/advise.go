// Package advise turns a classification and priority into recommended
// actions, a risk assessment, and a detail narrative. Everything here is
// template lookup over static tables so output stays reviewable and
// deterministic.
package advise

import (
	"strings"

	"github.com/seaops/mariner/pkg/mariner/catalog"
	"github.com/seaops/mariner/pkg/mariner/priority"
)

// MaxRecommendations caps the action list length.
const MaxRecommendations = 6

var priorityActions = map[priority.Level][]string{
	priority.Critical: {
		"IMMEDIATE ACTION REQUIRED",
		"Stop operations immediately if safe to do so",
		"Contact technical support team",
		"Initiate emergency response procedures",
		"Document all findings thoroughly",
	},
	priority.High: {
		"Address within 24 hours",
		"Notify relevant personnel",
		"Schedule immediate inspection",
		"Prepare contingency plans",
	},
	priority.Medium: {
		"Monitor pressure levels continuously",
		"Investigate leak source and implement temporary repairs",
	},
	priority.Low: {
		"Monitor pressure levels continuously",
		"Investigate leak source and implement temporary repairs",
	},
}

var categoryActions = map[catalog.Category][]string{
	catalog.CriticalEquipmentFailure: {
		"Isolate affected equipment",
		"Order replacement parts immediately",
		"Consider emergency port call if necessary",
		"Implement backup systems if available",
	},
	catalog.NavigationalHazard: {
		"Increase bridge watch",
		"Use manual navigation procedures",
		"Contact vessel traffic services",
		"Reduce speed if conditions warrant",
	},
	catalog.EnvironmentalCompliance: {
		"Stop any discharge operations",
		"Contact environmental compliance officer",
		"Prepare incident report for authorities",
		"Implement containment measures",
	},
	catalog.RoutineMaintenance: {
		"Schedule maintenance during next port call",
		"Order required spare parts",
		"Assign qualified personnel",
		"Update maintenance logs",
	},
	catalog.SafetyViolation: {
		"Immediate safety briefing for crew",
		"Review safety procedures",
		"Ensure proper PPE usage",
		"Report to safety officer",
	},
	catalog.FuelEfficiency: {
		"Monitor fuel consumption patterns",
		"Optimize engine parameters",
		"Review voyage planning",
		"Consider trim adjustments",
	},
}

// Recommendations assembles the action list for a document: priority
// actions first, then category actions, deduplicated in order and capped
// at MaxRecommendations.
func Recommendations(cat catalog.Category, level priority.Level) []string {
	out := make([]string, 0, MaxRecommendations)
	seen := make(map[string]struct{}, MaxRecommendations)

	add := func(actions []string) {
		for _, a := range actions {
			if len(out) == MaxRecommendations {
				return
			}
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			out = append(out, a)
		}
	}
	add(priorityActions[level])
	add(categoryActions[cat])

	return out
}

var baseRisk = map[priority.Level]string{
	priority.Critical: "CRITICAL RISK: Immediate threat to vessel safety, operations, or environment.",
	priority.High:     "HIGH RISK: Significant impact on operations or safety if not addressed promptly.",
	priority.Medium:   "MEDIUM RISK: Moderate impact on operations, requires attention within reasonable timeframe.",
	priority.Low:      "LOW RISK: Minor operational impact, routine maintenance required.",
}

// riskTriggers contribute extra factor labels when their terms appear in
// the text. Terms is an any-of match; With, when set, must also hit.
var riskTriggers = []struct {
	terms []string
	with  []string
	label string
}{
	{terms: []string{"navigation", "gps"}, label: "Navigation safety impact"},
	{terms: []string{"fire", "explosion"}, label: "Fire/explosion hazard"},
	{terms: []string{"pollution", "spill"}, label: "Environmental impact"},
	{terms: []string{"pressure"}, label: "Pressure system risk"},
	{terms: []string{"temperature"}, with: []string{"high", "hot"}, label: "Overheating risk"},
}

// Risk produces the risk assessment sentence: a fixed base per priority
// level, extended with any additional factors the text triggers, in
// trigger table order.
func Risk(level priority.Level, text string) string {
	base, ok := baseRisk[level]
	if !ok {
		base = baseRisk[priority.Low]
	}

	lower := strings.ToLower(text)
	var factors []string
	for _, t := range riskTriggers {
		if !containsAny(lower, t.terms) {
			continue
		}
		if len(t.with) > 0 && !containsAny(lower, t.with) {
			continue
		}
		factors = append(factors, t.label)
	}

	if len(factors) == 0 {
		return base
	}
	return base + " Additional factors: " + strings.Join(factors, ", ") + "."
}

var categoryDetails = map[catalog.Category]string{
	catalog.CriticalEquipmentFailure: "Critical equipment failure detected. Immediate attention required to prevent operational disruption or safety hazards.",
	catalog.NavigationalHazard:       "Navigation-related issue identified. Take appropriate measures to ensure safe navigation.",
	catalog.EnvironmentalCompliance:  "Environmental compliance issue detected. Immediate action needed to prevent regulatory violations.",
	catalog.RoutineMaintenance:       "Routine maintenance requirement identified. Schedule appropriate maintenance activities.",
	catalog.SafetyViolation:          "Safety violation detected. Review and reinforce safety procedures immediately.",
	catalog.FuelEfficiency:           "Fuel efficiency concern identified. Consider optimization measures to improve performance.",
}

var priorityDetails = map[priority.Level]string{
	priority.Critical: "CRITICAL priority requires immediate action to prevent serious consequences.",
	priority.High:     "HIGH priority should be addressed within 24 hours to prevent escalation.",
}

// Details builds the narrative for a result: the category sentence plus an
// urgency sentence for Critical and High priorities.
func Details(cat catalog.Category, level priority.Level) string {
	parts := []string{categoryDetails[cat]}
	if extra, ok := priorityDetails[level]; ok {
		parts = append(parts, extra)
	}
	return strings.Join(parts, " ")
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
