package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractedQuestion is the validated output of one pipeline run over one
// block. It is only constructed after validation accepts the candidate.
type ExtractedQuestion struct {
	QuestionNumber string `json:"question_number"`
	QuestionText   string `json:"question_text"`
	OptionA        string `json:"option_a"`
	OptionB        string `json:"option_b"`
	OptionC        string `json:"option_c"`
	OptionD        string `json:"option_d"`
	CorrectAnswer  string `json:"correct_answer"`
	QuestionType   string `json:"question_type"`
	// Difficulty is carried through from the block when the source marks
	// one; empty otherwise.
	Difficulty string `json:"difficulty,omitempty"`
}

// Option returns the option text for a letter in A-D, or "".
func (q *ExtractedQuestion) Option(letter string) string {
	switch letter {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}

// Question represents a stored question row for data transfer between layers.
type Question struct {
	ID             uuid.UUID `json:"id"`
	QuestionNumber string    `json:"question_number"`
	QuestionText   string    `json:"question_text"`
	OptionA        string    `json:"option_a"`
	OptionB        string    `json:"option_b"`
	OptionC        string    `json:"option_c"`
	OptionD        string    `json:"option_d"`
	CorrectAnswer  string    `json:"correct_answer"`
	QuestionType   string    `json:"question_type"`
	Topic          *string   `json:"topic,omitempty"`
	Category       *string   `json:"category,omitempty"`
	Difficulty     *string   `json:"difficulty,omitempty"`
	Source         string    `json:"source"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
