package subject

import (
	"testing"

	"github.com/edtech-ng/question-bank/constants"
)

func TestParseOverridesBuiltins(t *testing.T) {
	data := []byte(`{
		"subject": "general_knowledge",
		"min_stem_length": 5,
		"number_format": "GKX_%04d",
		"answer_line_patterns": ["(?i)^Key\\s*:\\s*([A-D])$"],
		"classifier": {
			"fallback": "Misc",
			"rules": [
				{"pattern": "nigeria", "label": "Civics"}
			]
		}
	}`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Subject != constants.GeneralKnowledge {
		t.Errorf("subject = %q", cfg.Subject)
	}
	if cfg.MinStemLen != 5 {
		t.Errorf("min stem len = %d, want 5", cfg.MinStemLen)
	}
	if cfg.NumberFormat != "GKX_%04d" {
		t.Errorf("number format = %q", cfg.NumberFormat)
	}
	if len(cfg.AnswerLine) != 1 {
		t.Fatalf("answer line patterns = %d, want 1", len(cfg.AnswerLine))
	}
	if !cfg.AnswerLine[0].MatchString("Key: B") {
		t.Error("override answer pattern does not match")
	}
	if got := cfg.Classifier.Classify("capital of nigeria"); got != "Civics" {
		t.Errorf("classify = %q, want %q", got, "Civics")
	}
	if got := cfg.Classifier.Classify("anything else"); got != "Misc" {
		t.Errorf("fallback = %q, want %q", got, "Misc")
	}
}

func TestParseKeepsDefaultsWhenOmitted(t *testing.T) {
	cfg, err := Parse([]byte(`{"subject": "english"}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	builtin := EnglishConfig()
	if cfg.MinStemLen != builtin.MinStemLen {
		t.Errorf("min stem len = %d, want builtin %d", cfg.MinStemLen, builtin.MinStemLen)
	}
	if len(cfg.QuestionStart) != len(builtin.QuestionStart) {
		t.Errorf("question start patterns = %d, want builtin %d",
			len(cfg.QuestionStart), len(builtin.QuestionStart))
	}
}

func TestParseRejectsUnknownSubject(t *testing.T) {
	if _, err := Parse([]byte(`{"subject": "physics"}`)); err == nil {
		t.Fatal("expected error for unknown subject")
	}
}

func TestParseRejectsUnknownField(t *testing.T) {
	if _, err := Parse([]byte(`{"subject": "english", "bogus": true}`)); err == nil {
		t.Fatal("expected schema error for unknown field")
	}
}

func TestParseRejectsMissingSubject(t *testing.T) {
	if _, err := Parse([]byte(`{"min_stem_length": 5}`)); err == nil {
		t.Fatal("expected schema error for missing subject")
	}
}

func TestParseRejectsInvalidPattern(t *testing.T) {
	data := []byte(`{"subject": "english", "option_patterns": ["([A-D"]}`)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for invalid regex")
	}
}

func TestParseRejectsPatternWithTooFewGroups(t *testing.T) {
	// Start patterns need label and stem capture groups.
	data := []byte(`{"subject": "english", "question_start_patterns": ["^Q(\\d+)"]}`)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for missing capture group")
	}

	// Option patterns need at least the letter capture group.
	data = []byte(`{"subject": "english", "option_patterns": ["^optional\\s+"]}`)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for option pattern without letter group")
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"subject":`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestForSubjectCoversAllSubjects(t *testing.T) {
	for _, sub := range constants.AllSubjects() {
		cfg := ForSubject(sub)
		if cfg == nil {
			t.Fatalf("no config for %q", sub)
		}
		if cfg.Subject != sub {
			t.Errorf("config subject = %q, want %q", cfg.Subject, sub)
		}
		if len(cfg.QuestionStart) == 0 {
			t.Errorf("%s: no question start patterns", sub)
		}
		if cfg.Classifier.Fallback == "" {
			t.Errorf("%s: classifier has no fallback", sub)
		}
		if cfg.MinStemLen <= 0 {
			t.Errorf("%s: min stem len = %d", sub, cfg.MinStemLen)
		}
	}
}
