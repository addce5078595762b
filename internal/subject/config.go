// Package subject holds the per-subject extraction configuration: boundary
// and option marker patterns, answer-indicator patterns, the classifier
// rule table, and validation thresholds. All subject-specific tuning lives
// here; the pipeline itself is subject-agnostic.
package subject

import (
	"regexp"

	"github.com/edtech-ng/question-bank/constants"
	"github.com/edtech-ng/question-bank/internal/classify"
)

// Config parameterizes one pipeline run for a subject.
type Config struct {
	Subject constants.Subject

	// QuestionStart patterns mark the first line of a block. Group 1
	// captures the source-assigned question label (may be empty, e.g. a
	// bare "Question:" header), group 2 the stem fragment on the same line.
	QuestionStart []*regexp.Regexp

	// Option patterns match lettered option markers, at line start or
	// mid-line (inline runs like "A) run B) table"). Group 1 captures the
	// letter; the match must end where the option text begins.
	Option []*regexp.Regexp

	// Bullet matches unlettered option lines (●, *, -). Group 1 captures
	// the option text; letters A-D are assigned in order of appearance.
	Bullet *regexp.Regexp

	// AnswerLine patterns resolve an explicit answer indicator anywhere in
	// a block ("Answer: B", "Ans. C"). Group 1 captures the letter.
	AnswerLine []*regexp.Regexp

	// Checkmarks mark an option correct when trailing its text or standing
	// alone on the following line.
	Checkmarks []string

	// MinStemLen is the validator's minimum stem length in runes.
	MinStemLen int

	// NumberFormat, when non-empty, is applied to numeric question labels
	// (e.g. "GK_%03d"). Blocks with no label at all take their ordinal.
	NumberFormat string

	Classifier classify.Table
}

// option markers shared by every subject: "A) text", "B. text", "(C) text",
// case-insensitive, matched at line start or inside an inline run.
var defaultOptionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:^|\s)\(([A-Da-d])\)\s*`),
	regexp.MustCompile(`(?:^|\s)\*?([A-Da-d])[).]\s+`),
}

var defaultBulletPattern = regexp.MustCompile(`^[●*-]\s+(.*)$`)

var defaultAnswerLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:correct\s+)?ans(?:wer)?\s*[:.\-]\s*\(?([A-Da-d])\)?\s*\.?\s*$`),
}

var defaultCheckmarks = []string{"✅", "✔️", "✔"}

// English bank: "*2292.*", "By*2293.*", "Question 1098:", plain "12." / "12)".
func EnglishConfig() *Config {
	return &Config{
		Subject: constants.English,
		QuestionStart: []*regexp.Regexp{
			regexp.MustCompile(`^\*(\d+[a-z]?)\.\*\s*(.*)$`),
			regexp.MustCompile(`^By\*(\d+[a-z]?)\.\*\s*(.*)$`),
			regexp.MustCompile(`(?i)^Question\s+(\d+[a-z]?):\s*(.*)$`),
			regexp.MustCompile(`^(\d+[a-z]?)[.)]\s+(.*)$`),
		},
		Option:     defaultOptionPatterns,
		Bullet:     defaultBulletPattern,
		AnswerLine: defaultAnswerLinePatterns,
		Checkmarks: defaultCheckmarks,
		MinStemLen: 10,
		Classifier: classify.Table{
			Rules: []classify.Rule{
				classify.MustRule(`grammatical name|grammar|\b(noun|verb|adjective|adverb|pronoun)\b`, "Grammar"),
				classify.MustRule(`\bsound\b|pronunciation|\bstress\b`, "Pronunciation"),
				classify.MustRule(`nearest (in )?meaning|opposite in meaning|\bmeaning\b|\bsynonym\b|\bantonym\b`, "Vocabulary"),
				classify.MustRule(`choose the option`, "Multiple Choice"),
				classify.MustRule(`-{6,}|_{3,}`, "Fill in Blank"),
			},
			Fallback: "General",
		},
	}
}

// Mathematics bank: "--*Question 5:*" style headers, sometimes unnumbered.
func MathematicsConfig() *Config {
	return &Config{
		Subject: constants.Mathematics,
		QuestionStart: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^(?:--)?\*?Question\b\s*(\d+[a-z]?)?\s*:?\*?\s*(.*)$`),
			regexp.MustCompile(`^(\d+[a-z]?)[.)]\s+(.*)$`),
		},
		Option:       defaultOptionPatterns,
		Bullet:       defaultBulletPattern,
		AnswerLine:   defaultAnswerLinePatterns,
		Checkmarks:   defaultCheckmarks,
		MinStemLen:   10,
		NumberFormat: "MATH_%03d",
		// Priority order matters: a trigonometry stem usually also carries
		// arithmetic operators, so trig outranks algebra and arithmetic.
		Classifier: classify.Table{
			Rules: []classify.Rule{
				classify.MustRule(`\b(sine?|cos(ine)?|tan|angle|bearing|elevation)\b`, "Trigonometry"),
				classify.MustRule(`\b(derivative|integral|limit|differential)\b`, "Calculus"),
				classify.MustRule(`\b(mean|median|mode|probability|average)\b|standard deviation`, "Statistics"),
				classify.MustRule(`\b(equation|solve|quadratic|linear)\b|solve for|x =`, "Algebra"),
				classify.MustRule(`\b(area|volume|perimeter|radius|diameter|circle|rectangle|triangle)\b`, "Geometry"),
			},
			Fallback: "Arithmetic",
		},
	}
}

// General knowledge bank: plain numbered questions with bullet options.
func GeneralKnowledgeConfig() *Config {
	return &Config{
		Subject: constants.GeneralKnowledge,
		QuestionStart: []*regexp.Regexp{
			regexp.MustCompile(`^(\d+[a-z]?)[.)]\s+(.*)$`),
		},
		Option:       defaultOptionPatterns,
		Bullet:       defaultBulletPattern,
		AnswerLine:   defaultAnswerLinePatterns,
		Checkmarks:   defaultCheckmarks,
		MinStemLen:   10,
		NumberFormat: "GK_%03d",
		Classifier: classify.Table{
			Rules: []classify.Rule{
				classify.MustRule(`nigeria|nigerian|\b(lagos|abuja|warri|ondo|ekiti|jigawa)\b|\bstate\b`, "Nigerian Geography/Politics"),
				classify.MustRule(`\b(mountain|ocean|country|continent|capital|river)\b|kilimanjaro|everest|tanzania`, "World Geography"),
				classify.MustRule(`\b(cup|olympics|sport|football|soccer|fifa|goal|score)\b`, "Sports"),
				classify.MustRule(`\b(founded|inventor|discovered|history|century)\b|tiktok|spacex`, "History/Technology"),
				classify.MustRule(`colou?r|\b(science|chemical|element|water)\b`, "Science"),
				classify.MustRule(`\b(idiom|saying|expression|phrase)\b|apple of|feather in|chip of`, "Language/Idioms"),
				classify.MustRule(`\b(day|celebrated|holiday|festival)\b`, "Culture/Events"),
				classify.MustRule(`astronomer|astrologer|surveyor|connoisseur|horticulturist`, "Professions"),
			},
			Fallback: "General Knowledge",
		},
	}
}

// ForSubject returns the built-in config for a subject.
func ForSubject(s constants.Subject) *Config {
	switch s {
	case constants.English:
		return EnglishConfig()
	case constants.Mathematics:
		return MathematicsConfig()
	case constants.GeneralKnowledge:
		return GeneralKnowledgeConfig()
	}
	return nil
}
