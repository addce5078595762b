package extract

import (
	"testing"

	"github.com/edtech-ng/question-bank/internal/subject"
	"github.com/edtech-ng/question-bank/internal/textnorm"
)

func scanAll(t *testing.T, raw string, cfg *subject.Config) []*RawBlock {
	t.Helper()
	s := NewBlockScanner(textnorm.Normalize(raw), cfg)
	var blocks []*RawBlock
	for {
		b, ok := s.Next()
		if !ok {
			return blocks
		}
		blocks = append(blocks, b)
	}
}

func TestBlockScannerOneBlockPerMarker(t *testing.T) {
	raw := `1. First question text here
A) one B) two

2. Second question text here
A) one B) two

3. Third question text here
A) one B) two`

	blocks := scanAll(t, raw, subject.EnglishConfig())
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	for i, b := range blocks {
		wantLabel := string(rune('1' + i))
		if b.Label != wantLabel {
			t.Errorf("block %d: label = %q, want %q", i, b.Label, wantLabel)
		}
		if b.Ordinal != i+1 {
			t.Errorf("block %d: ordinal = %d, want %d", i, b.Ordinal, i+1)
		}
	}
}

func TestBlockScannerDiscardsPreamble(t *testing.T) {
	raw := `ENGLISH LANGUAGE PAST QUESTIONS
Compiled for practice use.

1. Only question in this document
A) yes B) no`

	blocks := scanAll(t, raw, subject.EnglishConfig())
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Label != "1" {
		t.Errorf("label = %q, want %q", blocks[0].Label, "1")
	}
	for _, ln := range blocks[0].Lines {
		if ln.Text == "Compiled for practice use." {
			t.Error("preamble leaked into block")
		}
	}
}

func TestBlockScannerStemFragmentOnMarkerLine(t *testing.T) {
	raw := `5. Choose the correct option below
A) one B) two`

	blocks := scanAll(t, raw, subject.EnglishConfig())
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if got := blocks[0].Lines[0].Text; got != "Choose the correct option below" {
		t.Errorf("first line = %q, want stem fragment", got)
	}
}

func TestBlockScannerSkipsMarkerOnlyBlocks(t *testing.T) {
	// A bare header immediately followed by the next marker has no content
	// and must not surface as a block or consume an ordinal.
	raw := `Question 7:
Question 8: Real question text here
A) one B) two`

	blocks := scanAll(t, raw, subject.EnglishConfig())
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Label != "8" {
		t.Errorf("label = %q, want %q", blocks[0].Label, "8")
	}
	if blocks[0].Ordinal != 1 {
		t.Errorf("ordinal = %d, want 1", blocks[0].Ordinal)
	}
}

func TestBlockScannerBlankLinesStayInsideBlocks(t *testing.T) {
	raw := `1. Question with a gap before options

A) one B) two`

	blocks := scanAll(t, raw, subject.EnglishConfig())
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	sawBlank := false
	for _, ln := range blocks[0].Lines {
		if ln.Blank {
			sawBlank = true
		}
	}
	if !sawBlank {
		t.Error("blank separator inside block was dropped")
	}
}

func TestBlockScannerMathematicsHeaders(t *testing.T) {
	raw := `--*Question 5:*
If x + 2 = 7, find x
A) 3 B) 5 C) 7 D) 9

--*Question:*
Unnumbered follow-up question
A) 1 B) 2 C) 3 D) 4`

	blocks := scanAll(t, raw, subject.MathematicsConfig())
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Label != "5" {
		t.Errorf("block 0 label = %q, want %q", blocks[0].Label, "5")
	}
	if blocks[1].Label != "" {
		t.Errorf("block 1 label = %q, want empty", blocks[1].Label)
	}
	if blocks[1].Ordinal != 2 {
		t.Errorf("block 1 ordinal = %d, want 2", blocks[1].Ordinal)
	}
}

func TestBlockScannerNoMarkersNoBlocks(t *testing.T) {
	raw := "Just some prose.\nWith no question markers at all."
	blocks := scanAll(t, raw, subject.GeneralKnowledgeConfig())
	if len(blocks) != 0 {
		t.Fatalf("expected no blocks, got %d", len(blocks))
	}
}

func TestBlockScannerQuestionnaireIsNotAHeader(t *testing.T) {
	raw := `Questionnaire results are attached below for reference purposes.

1. Actual question starts here
A) one B) two`

	blocks := scanAll(t, raw, subject.MathematicsConfig())
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Label != "1" {
		t.Errorf("label = %q, want %q", blocks[0].Label, "1")
	}
}
