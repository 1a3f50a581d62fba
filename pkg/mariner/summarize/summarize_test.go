package summarize

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSummarizeSingleSentenceFits(t *testing.T) {
	text := "Engine oil pressure dropped below the alarm threshold."
	if got := Summarize(text, DefaultMaxLength); got != text {
		t.Errorf("Summarize(%q) = %q, want input unchanged", text, got)
	}
}

func TestSummarizeGreedySentencePacking(t *testing.T) {
	s1 := "Main engine lubrication oil pressure dropped below threshold during routine watch."
	s2 := "Engineer on duty increased RPM to compensate."
	s3 := "Further investigation required."
	text := s1 + " " + s2 + " " + s3

	// The first two sentences fill 128 of 150 runes; the third would
	// overflow and is dropped.
	want := s1 + " " + s2
	if got := Summarize(text, DefaultMaxLength); got != want {
		t.Errorf("Summarize(text, %d) = %q, want %q", DefaultMaxLength, got, want)
	}
}

func TestSummarizeCutsOverlongFirstSentence(t *testing.T) {
	text := strings.Repeat("x", 200) + "."

	got := Summarize(text, 150)
	if want := strings.Repeat("x", 147) + ellipsis; got != want {
		t.Errorf("Summarize(long sentence, 150) = %q, want 147 runes plus ellipsis", got)
	}
	if n := utf8.RuneCountInString(got); n != 150 {
		t.Errorf("summary length = %d runes, want 150", n)
	}
}

func TestSummarizeDefaultMaxLength(t *testing.T) {
	text := strings.Repeat("y", 200) + "."

	got := Summarize(text, 0)
	if n := utf8.RuneCountInString(got); n != DefaultMaxLength {
		t.Errorf("Summarize(text, 0) length = %d runes, want %d", n, DefaultMaxLength)
	}
	if !strings.HasSuffix(got, ellipsis) {
		t.Errorf("Summarize(text, 0) = %q, want trailing ellipsis", got)
	}
}

func TestSummarizeNoSentences(t *testing.T) {
	// Dashes carry no letters or digits, so no sentences are detected
	// and raw truncation applies.
	if got := Summarize("----", 150); got != "----" {
		t.Errorf("Summarize(%q) = %q, want raw text", "----", got)
	}

	got := Summarize(strings.Repeat("- ", 8), 10)
	if want := "- - - - - ..."; got != want {
		t.Errorf("Summarize(dashes, 10) = %q, want %q", got, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize("", DefaultMaxLength); got != "" {
		t.Errorf("Summarize(%q) = %q, want empty", "", got)
	}
}

func TestSummarizeTinyMax(t *testing.T) {
	if got := Summarize("Fire.", 2); got != ellipsis {
		t.Errorf("Summarize(%q, 2) = %q, want bare ellipsis", "Fire.", got)
	}
}
