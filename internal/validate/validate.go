// Package validate is the pipeline's single point of rejection: it checks a
// candidate's structural completeness and either builds the final
// ExtractedQuestion or names the first rule the candidate fails.
package validate

import (
	"strings"

	"github.com/edtech-ng/question-bank/constants"
	"github.com/edtech-ng/question-bank/internal/entity"
	"github.com/edtech-ng/question-bank/internal/extract"
	"github.com/edtech-ng/question-bank/internal/textnorm"
)

// Validate checks rules in order; the first failure wins so rejection
// tallies are unambiguous. On acceptance it returns the ExtractedQuestion
// (question_type still unset); on rejection the reason.
func Validate(c *extract.Candidate, minStemLen int) (*entity.ExtractedQuestion, constants.RejectionReason, bool) {
	// 1. Stem long enough to be a question, not a stray marker.
	if len([]rune(c.Stem)) < minStemLen {
		return nil, constants.RejectShortStem, false
	}

	// 2. Exactly four option slots, each non-empty, pairwise distinct
	// after case/whitespace folding. Duplicates betray extractor mis-splits.
	filled := 0
	seen := make(map[string]struct{}, 4)
	duplicate := false
	empty := false
	for _, letter := range constants.AnswerLetters {
		text, ok := c.Options[letter]
		if !ok {
			continue
		}
		filled++
		folded := strings.ToLower(textnorm.CollapseSpaces(text))
		if folded == "" {
			empty = true
			continue
		}
		if _, dup := seen[folded]; dup {
			duplicate = true
		}
		seen[folded] = struct{}{}
	}
	if filled < 4 {
		return nil, constants.RejectInsufficientOptions, false
	}
	if empty {
		return nil, constants.RejectEmptyOption, false
	}
	if duplicate {
		return nil, constants.RejectDuplicateOption, false
	}

	// 3. Exactly one resolved answer indicator; an ambiguous answer is
	// never guessed.
	var answer string
	count := 0
	for _, letter := range c.AnswerLetters {
		if constants.IsAnswerLetter(letter) {
			answer = letter
			count++
		}
	}
	if count == 0 {
		return nil, constants.RejectMissingAnswer, false
	}
	if count > 1 {
		return nil, constants.RejectAmbiguousAnswer, false
	}

	return &entity.ExtractedQuestion{
		QuestionNumber: c.Number,
		QuestionText:   c.Stem,
		OptionA:        textnorm.CollapseSpaces(c.Options["A"]),
		OptionB:        textnorm.CollapseSpaces(c.Options["B"]),
		OptionC:        textnorm.CollapseSpaces(c.Options["C"]),
		OptionD:        textnorm.CollapseSpaces(c.Options["D"]),
		CorrectAnswer:  answer,
		Difficulty:     c.Difficulty,
	}, "", true
}
