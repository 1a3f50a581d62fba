package doctype

import (
	"errors"
	"testing"

	"github.com/seaops/mariner/pkg/mariner/internalerr"
)

func TestInferCountsIndicatorVotes(t *testing.T) {
	tests := []struct {
		text string
		want Type
	}{
		{"CRITICAL ALARM: sensor warning from engine room", SensorAlert},
		{"incident during bunkering, fuel spill contained", IncidentReport},
		{"annual survey and audit of hull plating", InspectionReport},
		{"MARPOL certificate renewal and compliance check", ComplianceDocument},
		{"overhaul of main engine, repair log updated", MaintenanceRecord},
	}
	for _, tt := range tests {
		if got := Infer(tt.text); got != tt.want {
			t.Errorf("Infer(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestInferMostHitsWins(t *testing.T) {
	// One maintenance indicator against three incident indicators.
	got := Infer("repair after collision incident, accident report attached")
	if got != IncidentReport {
		t.Errorf("Infer() = %q, want %q", got, IncidentReport)
	}
}

func TestInferTieResolvesByDeclarationOrder(t *testing.T) {
	// "alert" votes sensor, "incident" votes incident; the earlier
	// indicator list wins the tie.
	got := Infer("alert raised after incident")
	if got != SensorAlert {
		t.Errorf("Infer() = %q, want %q (earlier list on tie)", got, SensorAlert)
	}
}

func TestInferDefaultsToMaintenanceRecord(t *testing.T) {
	got := Infer("quarterly crew roster update")
	if got != MaintenanceRecord {
		t.Errorf("Infer() = %q, want %q", got, MaintenanceRecord)
	}
}

func TestParseType(t *testing.T) {
	got, err := ParseType("sensor alert")
	if err != nil {
		t.Fatalf("ParseType() error = %v", err)
	}
	if got != SensorAlert {
		t.Errorf("ParseType() = %q, want %q", got, SensorAlert)
	}

	if _, err := ParseType("Cargo Manifest"); !errors.Is(err, internalerr.ErrUnknownDocumentType) {
		t.Errorf("ParseType(unknown) error = %v, want ErrUnknownDocumentType", err)
	}
	if _, err := ParseType(""); !errors.Is(err, internalerr.ErrUnknownDocumentType) {
		t.Errorf("ParseType(\"\") error = %v, want ErrUnknownDocumentType", err)
	}
}
