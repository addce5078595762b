package constants

import "testing"

func TestParseSubject(t *testing.T) {
	tests := []struct {
		in   string
		want Subject
		ok   bool
	}{
		{"english", English, true},
		{"English", English, true},
		{" ENG ", English, true},
		{"maths", Mathematics, true},
		{"math", Mathematics, true},
		{"mathematics", Mathematics, true},
		{"gk", GeneralKnowledge, true},
		{"general knowledge", GeneralKnowledge, true},
		{"general_knowledge", GeneralKnowledge, true},
		{"", "", false},
		{"physics", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseSubject(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSubject(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSubjectTableName(t *testing.T) {
	if got := GeneralKnowledge.TableName(); got != "general_knowledge_questions" {
		t.Errorf("table name = %q", got)
	}
	if got := English.DefaultSource(); got != "english_bank_pdf" {
		t.Errorf("default source = %q", got)
	}
}

func TestIsAnswerLetter(t *testing.T) {
	for _, l := range AnswerLetters {
		if !IsAnswerLetter(l) {
			t.Errorf("%q should be valid", l)
		}
	}
	for _, l := range []string{"E", "a", "", "AB"} {
		if IsAnswerLetter(l) {
			t.Errorf("%q should be invalid", l)
		}
	}
}
