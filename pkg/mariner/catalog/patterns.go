package catalog

// Default returns the built-in pattern catalog. Entry order here is the
// documented tie-break order; changing it changes observable behavior on
// tied scores.
func Default() *Catalog {
	c, err := New(defaultEntries())
	if err != nil {
		// The built-in table is validated by tests; reaching this is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return c
}

func defaultEntries() []Entry {
	return []Entry{
		{
			Category: CriticalEquipmentFailure,
			Rule: Rule{
				Keywords: []string{
					"failure", "malfunction", "breakdown", "critical", "emergency",
					"shutdown", "stopped", "failed", "damage", "fault", "defect",
					"overheating", "overpressure", "leak", "crack", "broken",
				},
				EquipmentTerms: []string{
					"engine", "generator", "pump", "motor", "turbine", "propeller",
					"steering", "rudder", "thruster", "boiler", "compressor",
				},
				PriorityIndicators: []string{"critical", "emergency", "immediate", "urgent"},
				Weight:             1.0,
			},
		},
		{
			Category: NavigationalHazard,
			Rule: Rule{
				Keywords: []string{
					"navigation", "gps", "radar", "compass", "position", "course",
					"collision", "grounding", "drift", "signal", "communication",
					"visibility", "weather", "storm", "fog", "ice",
				},
				EquipmentTerms: []string{
					"gps", "radar", "compass", "autopilot", "ais", "ecdis",
					"gyrocompass", "speed log", "echo sounder",
				},
				PriorityIndicators: []string{"hazard", "danger", "risk", "warning"},
				Weight:             0.9,
			},
		},
		{
			Category: EnvironmentalCompliance,
			Rule: Rule{
				Keywords: []string{
					"spill", "discharge", "pollution", "emission", "waste",
					"environmental", "compliance", "violation", "regulation",
					"marpol", "ballast", "bilge", "oily", "sewage",
				},
				EquipmentTerms: []string{
					"ballast", "sewage", "incinerator", "oily water separator",
					"scrubber", "monitoring system",
				},
				PriorityIndicators: []string{"violation", "breach", "non-compliance"},
				Weight:             0.8,
			},
		},
		{
			Category: RoutineMaintenance,
			Rule: Rule{
				Keywords: []string{
					"maintenance", "inspection", "service", "check", "test",
					"routine", "scheduled", "preventive", "calibration",
					"cleaning", "lubrication", "replacement",
				},
				EquipmentTerms: []string{
					"filter", "oil", "coolant", "belt", "bearing", "gasket",
					"valve", "pipe", "hose", "cable",
				},
				PriorityIndicators: []string{"scheduled", "routine", "preventive"},
				Weight:             0.3,
			},
		},
		{
			Category: SafetyViolation,
			Rule: Rule{
				Keywords: []string{
					"safety", "violation", "accident", "injury", "hazard",
					"risk", "unsafe", "dangerous", "incident", "near miss",
					"ppe", "personal protective equipment",
				},
				EquipmentTerms: []string{
					"life jacket", "fire extinguisher", "alarm", "detector",
					"emergency light", "safety valve",
				},
				PriorityIndicators: []string{"unsafe", "violation", "accident"},
				Weight:             0.7,
			},
		},
		{
			Category: FuelEfficiency,
			Rule: Rule{
				Keywords: []string{
					"fuel", "consumption", "efficiency", "economy", "performance",
					"optimization", "trim", "speed", "rpm", "load",
				},
				EquipmentTerms: []string{
					"fuel system", "injection", "governor", "turbocharger",
					"fuel pump", "fuel filter",
				},
				PriorityIndicators: []string{"efficiency", "optimization", "economy"},
				Weight:             0.4,
			},
		},
	}
}
