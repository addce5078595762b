package classify

import (
	"testing"
)

func testTable() Table {
	return Table{
		Rules: []Rule{
			MustRule(`\bnoun\b|\bverb\b`, "Grammar"),
			MustRule(`\bmeaning\b`, "Vocabulary"),
		},
		Fallback: "General",
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	table := testTable()
	// Matches both rules; the earlier one decides.
	got := table.Classify("Choose the noun nearest in meaning to the word")
	if got != "Grammar" {
		t.Errorf("got %q, want %q", got, "Grammar")
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	table := testTable()
	if got := table.Classify("IDENTIFY THE VERB IN THE SENTENCE"); got != "Grammar" {
		t.Errorf("got %q, want %q", got, "Grammar")
	}
}

func TestClassifyFallbackIsTotal(t *testing.T) {
	table := testTable()
	stems := []string{
		"",
		"Completely unrelated text",
		"1234567890 !@#$",
	}
	for _, stem := range stems {
		if got := table.Classify(stem); got != "General" {
			t.Errorf("Classify(%q) = %q, want fallback", stem, got)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	table := testTable()
	stem := "What is the meaning of this word?"
	first := table.Classify(stem)
	for i := 0; i < 100; i++ {
		if got := table.Classify(stem); got != first {
			t.Fatalf("run %d: got %q, want %q", i, got, first)
		}
	}
}

func TestLabels(t *testing.T) {
	table := Table{
		Rules: []Rule{
			MustRule(`a`, "X"),
			MustRule(`b`, "Y"),
			MustRule(`c`, "X"), // duplicate label
		},
		Fallback: "Z",
	}
	got := table.Labels()
	want := []string{"X", "Y", "Z"}
	if len(got) != len(want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("labels = %v, want %v", got, want)
		}
	}
}

func TestLabelsFallbackNotDuplicated(t *testing.T) {
	table := Table{
		Rules:    []Rule{MustRule(`a`, "General")},
		Fallback: "General",
	}
	if got := table.Labels(); len(got) != 1 {
		t.Fatalf("labels = %v, want one entry", got)
	}
}
