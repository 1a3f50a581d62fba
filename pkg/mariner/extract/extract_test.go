package extract

import (
	"reflect"
	"strings"
	"testing"
)

func TestEntitiesEquipmentMentions(t *testing.T) {
	e := NewExtractor()
	entities := e.Entities("Main engine overheating, backup generator started. GPS and radar operating normally. Hull inspection due.")

	want := []string{"engine", "generator", "GPS", "radar", "Hull"}
	if !reflect.DeepEqual(entities[KindEquipment], want) {
		t.Errorf("equipment = %v, want %v", entities[KindEquipment], want)
	}
}

func TestEntitiesWholeWordsOnly(t *testing.T) {
	e := NewExtractor()
	entities := e.Entities("pumping station and engineering crew")

	// "pumping" must not match "pump", "engineering" must not match
	// "engine".
	if len(entities[KindEquipment]) != 0 {
		t.Errorf("equipment = %v, want empty", entities[KindEquipment])
	}
}

func TestEntitiesDates(t *testing.T) {
	e := NewExtractor()
	entities := e.Entities("Inspected on 12/03/2024, next service 1-7-25. Port call 15/11/2024.")

	want := []string{"12/03/2024", "1-7-25", "15/11/2024"}
	if !reflect.DeepEqual(entities[KindDates], want) {
		t.Errorf("dates = %v, want %v", entities[KindDates], want)
	}
}

func TestEntitiesMeasurements(t *testing.T) {
	e := NewExtractor()
	entities := e.Entities("Pressure reading 125 psi, oil temperature 95 degrees, draft 8.5 meters.")

	want := []string{"125 psi", "95 degrees", "8.5 meters"}
	if !reflect.DeepEqual(entities[KindMeasurements], want) {
		t.Errorf("measurements = %v, want %v", entities[KindMeasurements], want)
	}
}

func TestEntitiesDeduplicatesPerKind(t *testing.T) {
	e := NewExtractor()
	entities := e.Entities("engine check: engine oil, engine mounts")

	want := []string{"engine"}
	if !reflect.DeepEqual(entities[KindEquipment], want) {
		t.Errorf("equipment = %v, want %v", entities[KindEquipment], want)
	}
}

func TestEntitiesAlwaysCarryAllKinds(t *testing.T) {
	e := NewExtractor()
	entities := e.Entities("")

	for _, kind := range Kinds() {
		values, ok := entities[kind]
		if !ok {
			t.Errorf("kind %q missing from entity map", kind)
			continue
		}
		if values == nil {
			t.Errorf("kind %q is nil, want empty slice", kind)
		}
		if len(values) != 0 {
			t.Errorf("kind %q = %v, want empty for empty text", kind, values)
		}
	}
}

func TestEntitiesLocationsAndPersonnelStayEmpty(t *testing.T) {
	e := NewExtractor()
	entities := e.Entities("Captain Smith reported from Rotterdam on 12/03/2024")

	if len(entities[KindLocations]) != 0 {
		t.Errorf("locations = %v, want empty", entities[KindLocations])
	}
	if len(entities[KindPersonnel]) != 0 {
		t.Errorf("personnel = %v, want empty", entities[KindPersonnel])
	}
}

func TestKeywordsCapitalizedPhrases(t *testing.T) {
	e := NewExtractor()
	kws, degraded := e.Keywords("Main Engine Maintenance Report. During routine inspection of main engine, discovered oil leak from cylinder head gasket.")

	if degraded {
		t.Fatal("degraded = true, want false")
	}
	if len(kws) == 0 || kws[0] != "main engine maintenance report" {
		t.Errorf("kws[0] = %v, want leading capitalized phrase", kws)
	}
	if !contains(kws, "engine") {
		t.Errorf("keywords %v missing frequent word \"engine\"", kws)
	}
	if contains(kws, "from") {
		t.Errorf("keywords %v must not contain stopwords", kws)
	}
}

func TestKeywordsPhraseDropsLeadingStopword(t *testing.T) {
	e := NewExtractor()
	kws, _ := e.Keywords("The Ballast Pump requires attention before departure clearance.")

	if !contains(kws, "ballast pump") {
		t.Errorf("keywords = %v, want phrase \"ballast pump\"", kws)
	}
	if contains(kws, "the ballast pump") {
		t.Errorf("keywords = %v, leading stopword must be dropped", kws)
	}
}

func TestKeywordsFrequencyOrdering(t *testing.T) {
	e := NewExtractor()
	kws, _ := e.Keywords("valve valve valve gasket gasket coupling")

	// No capitalized phrases, so frequency order drives the list.
	want := []string{"valve", "gasket", "coupling"}
	if !reflect.DeepEqual(kws, want) {
		t.Errorf("keywords = %v, want %v", kws, want)
	}
}

func TestKeywordsCap(t *testing.T) {
	e := NewExtractor()

	// Eight capitalized phrases plus ten frequent words overflow the cap.
	text := "Main Engine Report. Ballast Pump Status. Cargo Hold Survey. Deck Crane Check. " +
		"Fuel System Review. Bridge Watch Log. Generator Room Entry. Safety Gear Audit. " +
		strings.Repeat("alternator compressor condenser evaporator purifier separator incinerator windlass capstan manifold ", 2)

	kws, degraded := e.Keywords(text)
	if degraded {
		t.Fatal("degraded = true, want false")
	}
	if len(kws) != MaxKeywords {
		t.Errorf("len(keywords) = %d, want %d", len(kws), MaxKeywords)
	}
	if kws[0] != "main engine report" {
		t.Errorf("kws[0] = %q, want first phrase", kws[0])
	}
}

func TestKeywordsFallbackOnNoCandidates(t *testing.T) {
	e := NewExtractor()

	// Every word is a stopword or too short, so the frequency filter
	// yields nothing and extraction degrades to bare long words.
	kws, degraded := e.Keywords("these would there")
	if !degraded {
		t.Fatal("degraded = false, want true")
	}
	want := []string{"these", "would", "there"}
	if !reflect.DeepEqual(kws, want) {
		t.Errorf("fallback keywords = %v, want %v", kws, want)
	}
}

func TestKeywordsEmptyText(t *testing.T) {
	e := NewExtractor()
	kws, degraded := e.Keywords("")

	if !degraded {
		t.Error("degraded = false, want true for empty text")
	}
	if len(kws) != 0 {
		t.Errorf("keywords = %v, want empty", kws)
	}
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
