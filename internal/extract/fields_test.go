package extract

import (
	"reflect"
	"testing"

	"github.com/edtech-ng/question-bank/internal/subject"
	"github.com/edtech-ng/question-bank/internal/textnorm"
)

func firstCandidate(t *testing.T, raw string, cfg *subject.Config) *Candidate {
	t.Helper()
	s := NewBlockScanner(textnorm.Normalize(raw), cfg)
	b, ok := s.Next()
	if !ok {
		t.Fatal("no block found")
	}
	return Fields(b, cfg)
}

func TestFieldsInlineOptionsWithAnswerLine(t *testing.T) {
	raw := `5. Choose the noun from the options below.
A) run B) table C) quick D) softly
Answer: B`

	c := firstCandidate(t, raw, subject.EnglishConfig())

	if c.Number != "5" {
		t.Errorf("number = %q, want %q", c.Number, "5")
	}
	if c.Stem != "Choose the noun from the options below." {
		t.Errorf("stem = %q", c.Stem)
	}
	wantOpts := map[string]string{"A": "run", "B": "table", "C": "quick", "D": "softly"}
	if !reflect.DeepEqual(c.Options, wantOpts) {
		t.Errorf("options = %v, want %v", c.Options, wantOpts)
	}
	if !reflect.DeepEqual(c.AnswerLetters, []string{"B"}) {
		t.Errorf("answers = %v, want [B]", c.AnswerLetters)
	}
}

// Everything on one source line: marker, stem, options, answer.
func TestFieldsSingleLineBlock(t *testing.T) {
	raw := `5. Choose the noun. A) run B) table C) quick D) softly Answer: B`

	c := firstCandidate(t, raw, subject.EnglishConfig())
	if c.Number != "5" {
		t.Errorf("number = %q, want %q", c.Number, "5")
	}
	if c.Stem != "Choose the noun." {
		t.Errorf("stem = %q", c.Stem)
	}
	wantOpts := map[string]string{"A": "run", "B": "table", "C": "quick", "D": "softly"}
	if !reflect.DeepEqual(c.Options, wantOpts) {
		t.Errorf("options = %v, want %v", c.Options, wantOpts)
	}
	if !reflect.DeepEqual(c.AnswerLetters, []string{"B"}) {
		t.Errorf("answers = %v, want [B]", c.AnswerLetters)
	}
}

func TestFieldsSingleLineDuplicateOptions(t *testing.T) {
	raw := `12) What is 2+2? A) 3 B) 4 C) 4 D) 5`

	c := firstCandidate(t, raw, subject.EnglishConfig())
	if c.Stem != "What is 2+2?" {
		t.Errorf("stem = %q", c.Stem)
	}
	if c.Options["B"] != "4" || c.Options["C"] != "4" {
		t.Errorf("options = %v, want duplicated B/C text preserved", c.Options)
	}
}

func TestFieldsOptionsOnSeparateLines(t *testing.T) {
	raw := `3. Which word is spelt correctly in this list?
A) recieve
B) receive
C) receeve
D) riceive
Ans. B`

	c := firstCandidate(t, raw, subject.EnglishConfig())
	if got := c.Options["B"]; got != "receive" {
		t.Errorf("option B = %q", got)
	}
	if len(c.OptionOrder) != 4 {
		t.Errorf("option order = %v, want 4 entries", c.OptionOrder)
	}
	if !reflect.DeepEqual(c.AnswerLetters, []string{"B"}) {
		t.Errorf("answers = %v, want [B]", c.AnswerLetters)
	}
}

func TestFieldsBulletOptionsWithCheckmark(t *testing.T) {
	raw := `7. Which planet is known as the Red Planet?
● Venus
● Mars ✅
● Jupiter
● Saturn`

	c := firstCandidate(t, raw, subject.GeneralKnowledgeConfig())

	wantOpts := map[string]string{"A": "Venus", "B": "Mars", "C": "Jupiter", "D": "Saturn"}
	if !reflect.DeepEqual(c.Options, wantOpts) {
		t.Errorf("options = %v, want %v", c.Options, wantOpts)
	}
	if !reflect.DeepEqual(c.AnswerLetters, []string{"B"}) {
		t.Errorf("answers = %v, want [B]", c.AnswerLetters)
	}
}

func TestFieldsStandaloneCheckmarkLine(t *testing.T) {
	raw := `4. What colour is the Nigerian flag?
● Green and white
✅
● Red and white
● Blue and white
● Black and white`

	c := firstCandidate(t, raw, subject.GeneralKnowledgeConfig())
	if !reflect.DeepEqual(c.AnswerLetters, []string{"A"}) {
		t.Errorf("answers = %v, want [A]", c.AnswerLetters)
	}
	if got := c.Options["A"]; got != "Green and white" {
		t.Errorf("option A = %q", got)
	}
}

func TestFieldsBoldWrappedOptionIsCorrect(t *testing.T) {
	raw := `9. Opposite in meaning to "ancient" is which option?
A) old B) *modern* C) antique D) classic`

	c := firstCandidate(t, raw, subject.EnglishConfig())
	if got := c.Options["B"]; got != "modern" {
		t.Errorf("option B = %q, want asterisks stripped", got)
	}
	if !reflect.DeepEqual(c.AnswerLetters, []string{"B"}) {
		t.Errorf("answers = %v, want [B]", c.AnswerLetters)
	}
}

func TestFieldsConflictingIndicatorsAllRecorded(t *testing.T) {
	raw := `2. Pick the correct spelling from these options
A) seperate B) separate ✅ C) separete D) separatee
Answer: C`

	c := firstCandidate(t, raw, subject.EnglishConfig())
	if len(c.AnswerLetters) != 2 {
		t.Fatalf("answers = %v, want two conflicting letters", c.AnswerLetters)
	}
}

func TestFieldsNoAnswerIndicator(t *testing.T) {
	raw := `6. Choose the correct plural form of "child"
A) childs B) children C) childes D) childrens`

	c := firstCandidate(t, raw, subject.EnglishConfig())
	if len(c.AnswerLetters) != 0 {
		t.Errorf("answers = %v, want none", c.AnswerLetters)
	}
}

func TestFieldsMultiLineStem(t *testing.T) {
	raw := `11. Read the passage carefully and answer
the question that follows about its tone.
A) joyful B) somber C) neutral D) angry
Answer: B`

	c := firstCandidate(t, raw, subject.EnglishConfig())
	want := "Read the passage carefully and answer the question that follows about its tone."
	if c.Stem != want {
		t.Errorf("stem = %q, want %q", c.Stem, want)
	}
}

func TestFieldsOptionWrapContinuation(t *testing.T) {
	raw := `8. Which statement about photosynthesis is accurate?
A) It releases carbon dioxide
B) It converts light energy into
chemical energy
C) It only happens at night
D) It requires no water
Answer: B`

	c := firstCandidate(t, raw, subject.GeneralKnowledgeConfig())
	if got := c.Options["B"]; got != "It converts light energy into chemical energy" {
		t.Errorf("option B = %q", got)
	}
}

func TestFieldsDifficultyLine(t *testing.T) {
	raw := `--*Question 3:*
Find the derivative of x squared
A) x B) 2x C) x/2 D) 2
Answer: B
*Difficulty: Hard*`

	c := firstCandidate(t, raw, subject.MathematicsConfig())
	if c.Difficulty != "Hard" {
		t.Errorf("difficulty = %q, want %q", c.Difficulty, "Hard")
	}
	if c.Number != "MATH_003" {
		t.Errorf("number = %q, want %q", c.Number, "MATH_003")
	}
}

func TestFieldsNumberFormatting(t *testing.T) {
	cfg := subject.GeneralKnowledgeConfig()

	tests := []struct {
		label   string
		ordinal int
		want    string
	}{
		{"7", 1, "GK_007"},
		{"12", 2, "GK_012"},
		{"", 3, "GK_003"},
		{"14b", 4, "14b"}, // non-numeric labels pass through
	}
	for _, tt := range tests {
		got := formatNumber(tt.label, tt.ordinal, cfg)
		if got != tt.want {
			t.Errorf("formatNumber(%q, %d) = %q, want %q", tt.label, tt.ordinal, got, tt.want)
		}
	}
}

func TestFieldsNumberDefaultsToLabel(t *testing.T) {
	cfg := subject.EnglishConfig()
	if got := formatNumber("2292", 1, cfg); got != "2292" {
		t.Errorf("got %q, want raw label", got)
	}
	if got := formatNumber("", 9, cfg); got != "9" {
		t.Errorf("got %q, want ordinal", got)
	}
}

// Overridden option patterns replace the built-in markers wholesale and
// drive extraction, line-leading and inline alike.
func TestFieldsOptionPatternOverride(t *testing.T) {
	cfg, err := subject.Parse([]byte(`{
		"subject": "english",
		"option_patterns": ["(?:^|\\s)\\[([A-Da-d])\\]\\s*"]
	}`))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}

	raw := `5. Choose the noun from the options below.
[A] run
[B] table
[C] quick [D] softly
Answer: B`

	c := firstCandidate(t, raw, cfg)
	wantOpts := map[string]string{"A": "run", "B": "table", "C": "quick", "D": "softly"}
	if !reflect.DeepEqual(c.Options, wantOpts) {
		t.Errorf("options = %v, want %v", c.Options, wantOpts)
	}
	if !reflect.DeepEqual(c.AnswerLetters, []string{"B"}) {
		t.Errorf("answers = %v, want [B]", c.AnswerLetters)
	}

	// The built-in "A) text" markers are gone once overridden.
	raw = `6. Identify the verb in this sentence.
A) run B) table C) quick D) softly
Answer: A`
	c = firstCandidate(t, raw, cfg)
	if len(c.Options) != 0 {
		t.Errorf("options = %v, want none for unconfigured marker style", c.Options)
	}
}

func TestFieldsDuplicateMarkersLastWriteWins(t *testing.T) {
	raw := `10. Identify the adverb in the sentence below
A) quickly
A) slowly
B) table C) chair D) dog
Answer: A`

	c := firstCandidate(t, raw, subject.EnglishConfig())
	if got := c.Options["A"]; got != "slowly" {
		t.Errorf("option A = %q, want last write", got)
	}
	if len(c.OptionOrder) != 4 {
		t.Errorf("option order = %v, want 4 distinct letters", c.OptionOrder)
	}
}
