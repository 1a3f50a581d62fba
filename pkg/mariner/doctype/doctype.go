// Package doctype infers what kind of operational document a text is.
package doctype

import (
	"fmt"
	"strings"

	"github.com/seaops/mariner/pkg/mariner/internalerr"
)

// Type is a document type label.
type Type string

const (
	MaintenanceRecord  Type = "Maintenance Record"
	SensorAlert        Type = "Sensor Alert"
	IncidentReport     Type = "Incident Report"
	InspectionReport   Type = "Inspection Report"
	ComplianceDocument Type = "Compliance Document"
)

// Types returns all document types.
func Types() []Type {
	return []Type{MaintenanceRecord, SensorAlert, IncidentReport, InspectionReport, ComplianceDocument}
}

func (t Type) String() string { return string(t) }

// ParseType maps a display string to a Type, case-insensitively.
func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", internalerr.ErrUnknownDocumentType, s)
}

// indicators vote for a type; list order is the tie-break order.
var indicators = []struct {
	typ   Type
	terms []string
}{
	{SensorAlert, []string{"alert", "alarm", "sensor", "warning"}},
	{IncidentReport, []string{"incident", "accident", "spill", "collision"}},
	{InspectionReport, []string{"inspection", "survey", "audit", "examination"}},
	{ComplianceDocument, []string{"compliance", "regulation", "marpol", "certificate"}},
	{MaintenanceRecord, []string{"maintenance", "repair", "service", "overhaul"}},
}

// Infer guesses the document type from its text by counting indicator
// terms per type. The most hits wins, ties resolving toward the earlier
// indicator list. Text with no indicators at all defaults to
// MaintenanceRecord.
func Infer(text string) Type {
	lower := strings.ToLower(text)

	best := MaintenanceRecord
	bestHits := 0
	for _, ind := range indicators {
		hits := 0
		for _, term := range ind.terms {
			if strings.Contains(lower, term) {
				hits++
			}
		}
		if hits > bestHits {
			best = ind.typ
			bestHits = hits
		}
	}
	return best
}
