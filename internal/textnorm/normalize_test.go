package textnorm

import (
	"reflect"
	"testing"
)

func TestNormalizeEmptyInput(t *testing.T) {
	if got := Normalize(""); len(got) != 0 {
		t.Fatalf("expected no lines, got %v", got)
	}
	if got := Normalize("\n\n\n"); len(got) != 0 {
		t.Fatalf("expected no lines for blank input, got %v", got)
	}
}

func TestNormalizeTrimsAndCollapsesWhitespace(t *testing.T) {
	got := Normalize("  hello \t  world  ")
	want := []Line{{Text: "hello world"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalizeCollapsesBlankRuns(t *testing.T) {
	got := Normalize("first\n\n\n\nsecond")
	want := []Line{
		{Text: "first"},
		{Blank: true},
		{Text: "second"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalizeDropsLeadingAndTrailingBlanks(t *testing.T) {
	got := Normalize("\n\nonly line\n\n")
	want := []Line{{Text: "only line"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalizeDropsPageMarkers(t *testing.T) {
	got := Normalize("before\n==== Page 3 ====\nafter")
	want := []Line{
		{Text: "before"},
		{Text: "after"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalizeJoinsHyphenatedBreaks(t *testing.T) {
	got := Normalize("the exami-\nnation hall")
	want := []Line{{Text: "the examination hall"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// Joins across an intervening blank line too.
	got = Normalize("exami-\n\nnation")
	want = []Line{{Text: "examination"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("across blank: got %v, want %v", got, want)
	}
}

func TestNormalizeKeepsTrailingHyphenAtEOF(t *testing.T) {
	got := Normalize("dangling exami-")
	want := []Line{{Text: "dangling exami-"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalizeMapsNoiseCharacters(t *testing.T) {
	got := Normalize("• Lagos\n```\n\u200B● Abuja")
	want := []Line{
		{Text: "● Lagos"},
		{Blank: true},
		{Text: "● Abuja"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalizeStripsByteOrderMarks(t *testing.T) {
	// A BOM at the start of the document and stray ones mid-stream both go.
	got := Normalize("\uFEFF1. First line\nmid\uFEFFdle")
	want := []Line{
		{Text: "1. First line"},
		{Text: "middle"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	raw := "  1. First   question\n\n\n● opt-\nion one\n==== Page 1 ====\n"
	once := Normalize(raw)

	var rejoined string
	for i, ln := range once {
		if i > 0 {
			rejoined += "\n"
		}
		rejoined += ln.Text
	}
	twice := Normalize(rejoined)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second pass changed output:\nonce:  %v\ntwice: %v", once, twice)
	}
}

func TestCollapseSpaces(t *testing.T) {
	if got := CollapseSpaces("  a \n b\t c  "); got != "a b c" {
		t.Fatalf("got %q", got)
	}
}
