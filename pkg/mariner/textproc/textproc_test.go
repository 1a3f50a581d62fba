package textproc

import (
	"reflect"
	"testing"
)

func TestNormalizeWhitespaceCollapse(t *testing.T) {
	got := Normalize("Engine   room\n\tflooding\r\nreported")
	want := "Engine room flooding reported"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeDisallowedCharacters(t *testing.T) {
	// Characters outside the allowlist become spaces
	got := Normalize("engine@room #5 [aft]")
	want := "engine room 5 aft"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeRepeatedPunctuation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Warning... pressure rising!!", "Warning. pressure rising!"},
		{"a..b", "a.b"},
		{"a. .b", "a. .b"}, // separated marks are not a run
		{"Stop!!!", "Stop!"},
		{"Wait?? Really??", "Wait?? Really??"}, // only '.' and '!' runs collapse
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeTrimsEnds(t *testing.T) {
	got := Normalize("  ***alert***  ")
	if got != "alert" {
		t.Errorf("Normalize() = %q, want %q", got, "alert")
	}
}

func TestNormalizeEmptyAndPunctuationOnly(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize(\"\") = %q, want \"\"", got)
	}
	if got := Normalize("@#$% &*"); got != "" {
		t.Errorf("Normalize(punct) = %q, want \"\"", got)
	}
}

func TestNormalizeKeepsUnicodeLetters(t *testing.T) {
	got := Normalize("prüfung çelik engine")
	want := "prüfung çelik engine"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Main engine... FAILURE!!  @deck #2\toil leak",
		"  GPS signal lost. \n Visibility: 2nm (fog)  ",
		"pressure 3.5 bar, temperature 95 degrees",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSentencesSplitsOnTerminators(t *testing.T) {
	got := Sentences("Engine failed. Oil leaking everywhere! Investigate now?")
	want := []string{"Engine failed.", "Oil leaking everywhere!", "Investigate now?"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences() = %v, want %v", got, want)
	}
}

func TestSentencesKeepsDecimalsIntact(t *testing.T) {
	got := Sentences("Pressure dropped to 3.5 bar. Investigate the leak.")
	want := []string{"Pressure dropped to 3.5 bar.", "Investigate the leak."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences() = %v, want %v", got, want)
	}
}

func TestSentencesTerminatorRuns(t *testing.T) {
	got := Sentences("Fire!? Muster stations. All clear")
	want := []string{"Fire!?", "Muster stations.", "All clear"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences() = %v, want %v", got, want)
	}
}

func TestSentencesNoTerminator(t *testing.T) {
	got := Sentences("engine room status nominal")
	want := []string{"engine room status nominal"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences() = %v, want %v", got, want)
	}
}

func TestSentencesFiltersEmptyChunks(t *testing.T) {
	if got := Sentences("... . !"); len(got) != 0 {
		t.Errorf("Sentences(punct) = %v, want empty", got)
	}
	if got := Sentences(""); len(got) != 0 {
		t.Errorf("Sentences(\"\") = %v, want empty", got)
	}
}
