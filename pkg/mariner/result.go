package mariner

import (
	"time"

	"github.com/seaops/mariner/pkg/mariner/catalog"
	"github.com/seaops/mariner/pkg/mariner/doctype"
	"github.com/seaops/mariner/pkg/mariner/extract"
	"github.com/seaops/mariner/pkg/mariner/priority"
)

// Version identifies the processing pipeline revision recorded in result
// metadata.
const Version = "1.0.0"

// Metadata keys set on successful results.
const (
	MetaOriginalLength    = "original_length"
	MetaProcessedLength   = "processed_length"
	MetaProcessingVersion = "processing_version"
	MetaDegradedSteps     = "degraded_steps"
)

// Request is a single document submitted for processing.
type Request struct {
	// Text is the raw document body.
	Text string
	// DocumentType optionally names the document type using its display
	// string ("Sensor Alert", "Incident Report", ...). Empty or unknown
	// hints fall back to inference from the text.
	DocumentType string
	// VesselID optionally ties the document to a vessel.
	VesselID string
}

// Result is the complete outcome of processing one document. Every field
// is populated on the normal path; the error path (see Process) fills a
// fixed safe shape instead.
type Result struct {
	ID                 string                    `json:"id"`
	Summary            string                    `json:"summary"`
	Details            string                    `json:"details"`
	Classification     catalog.Category          `json:"classification"`
	Priority           priority.Level            `json:"priority"`
	Confidence         float64                   `json:"confidence"`
	Keywords           []string                  `json:"keywords"`
	Entities           map[extract.Kind][]string `json:"entities"`
	RecommendedActions []string                  `json:"recommended_actions"`
	RiskAssessment     string                    `json:"risk_assessment"`
	DocumentType       doctype.Type              `json:"document_type,omitempty"`
	VesselID           string                    `json:"vessel_id,omitempty"`
	Timestamp          time.Time                 `json:"timestamp"`
	Metadata           map[string]any            `json:"metadata"`
}
