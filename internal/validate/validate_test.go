package validate

import (
	"testing"

	"github.com/edtech-ng/question-bank/constants"
	"github.com/edtech-ng/question-bank/internal/extract"
)

func candidate() *extract.Candidate {
	return &extract.Candidate{
		Number: "GK_001",
		Stem:   "Which planet is known as the Red Planet?",
		Options: map[string]string{
			"A": "Venus",
			"B": "Mars",
			"C": "Jupiter",
			"D": "Saturn",
		},
		OptionOrder:   []string{"A", "B", "C", "D"},
		AnswerLetters: []string{"B"},
	}
}

func TestValidateAccepts(t *testing.T) {
	q, reason, ok := Validate(candidate(), 10)
	if !ok {
		t.Fatalf("rejected with %q", reason)
	}
	if q.QuestionNumber != "GK_001" || q.CorrectAnswer != "B" {
		t.Errorf("unexpected question: %+v", q)
	}
	if q.OptionB != "Mars" {
		t.Errorf("option B = %q", q.OptionB)
	}
	if q.QuestionType != "" {
		t.Errorf("question type should be unset before classification, got %q", q.QuestionType)
	}
}

func TestValidateNormalizesOptionWhitespace(t *testing.T) {
	c := candidate()
	c.Options["C"] = "  Jupiter   the  largest "
	q, _, ok := Validate(c, 10)
	if !ok {
		t.Fatal("rejected")
	}
	if q.OptionC != "Jupiter the largest" {
		t.Errorf("option C = %q", q.OptionC)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *extract.Candidate)
		want   constants.RejectionReason
	}{
		{
			name:   "short stem",
			mutate: func(c *extract.Candidate) { c.Stem = "Pick one" },
			want:   constants.RejectShortStem,
		},
		{
			name:   "three options",
			mutate: func(c *extract.Candidate) { delete(c.Options, "D") },
			want:   constants.RejectInsufficientOptions,
		},
		{
			name:   "no options",
			mutate: func(c *extract.Candidate) { c.Options = map[string]string{} },
			want:   constants.RejectInsufficientOptions,
		},
		{
			name:   "empty option text",
			mutate: func(c *extract.Candidate) { c.Options["C"] = "   " },
			want:   constants.RejectEmptyOption,
		},
		{
			name:   "duplicate options",
			mutate: func(c *extract.Candidate) { c.Options["C"] = "mars"; c.Options["B"] = "Mars " },
			want:   constants.RejectDuplicateOption,
		},
		{
			name:   "missing answer",
			mutate: func(c *extract.Candidate) { c.AnswerLetters = nil },
			want:   constants.RejectMissingAnswer,
		},
		{
			name:   "conflicting answers",
			mutate: func(c *extract.Candidate) { c.AnswerLetters = []string{"B", "C"} },
			want:   constants.RejectAmbiguousAnswer,
		},
		{
			name:   "answer letter out of range",
			mutate: func(c *extract.Candidate) { c.AnswerLetters = []string{"E"} },
			want:   constants.RejectMissingAnswer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := candidate()
			tt.mutate(c)
			_, reason, ok := Validate(c, 10)
			if ok {
				t.Fatal("accepted, want rejection")
			}
			if reason != tt.want {
				t.Errorf("reason = %q, want %q", reason, tt.want)
			}
		})
	}
}

// Rule order fixes which reason a multiply-broken candidate reports.
func TestValidateFirstFailureWins(t *testing.T) {
	c := candidate()
	c.Stem = "short"
	c.Options = map[string]string{}
	c.AnswerLetters = nil

	_, reason, ok := Validate(c, 10)
	if ok {
		t.Fatal("accepted")
	}
	if reason != constants.RejectShortStem {
		t.Errorf("reason = %q, want %q", reason, constants.RejectShortStem)
	}
}

func TestValidateMinStemLenIsRunes(t *testing.T) {
	c := candidate()
	c.Stem = "héllo wörld" // 11 runes
	if _, reason, ok := Validate(c, 11); !ok {
		t.Fatalf("rejected with %q", reason)
	}
	if _, _, ok := Validate(c, 12); ok {
		t.Fatal("accepted a stem below the rune threshold")
	}
}
