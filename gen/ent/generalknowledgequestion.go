// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/edtech-ng/question-bank/gen/ent/generalknowledgequestion"
	"github.com/google/uuid"
)

// GeneralKnowledgeQuestion is the model entity for the GeneralKnowledgeQuestion schema.
type GeneralKnowledgeQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// QuestionNumber holds the value of the "question_number" field.
	QuestionNumber string `json:"question_number,omitempty"`
	// QuestionText holds the value of the "question_text" field.
	QuestionText string `json:"question_text,omitempty"`
	// OptionA holds the value of the "option_a" field.
	OptionA string `json:"option_a,omitempty"`
	// OptionB holds the value of the "option_b" field.
	OptionB string `json:"option_b,omitempty"`
	// OptionC holds the value of the "option_c" field.
	OptionC string `json:"option_c,omitempty"`
	// OptionD holds the value of the "option_d" field.
	OptionD string `json:"option_d,omitempty"`
	// CorrectAnswer holds the value of the "correct_answer" field.
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// QuestionType holds the value of the "question_type" field.
	QuestionType string `json:"question_type,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Category holds the value of the "category" field.
	Category *string `json:"category,omitempty"`
	// DifficultyLevel holds the value of the "difficulty_level" field.
	DifficultyLevel *string `json:"difficulty_level,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GeneralKnowledgeQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generalknowledgequestion.FieldQuestionNumber, generalknowledgequestion.FieldQuestionText, generalknowledgequestion.FieldOptionA, generalknowledgequestion.FieldOptionB, generalknowledgequestion.FieldOptionC, generalknowledgequestion.FieldOptionD, generalknowledgequestion.FieldCorrectAnswer, generalknowledgequestion.FieldQuestionType, generalknowledgequestion.FieldSource, generalknowledgequestion.FieldCategory, generalknowledgequestion.FieldDifficultyLevel:
			values[i] = new(sql.NullString)
		case generalknowledgequestion.FieldCreatedAt, generalknowledgequestion.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case generalknowledgequestion.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GeneralKnowledgeQuestion fields.
func (_m *GeneralKnowledgeQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generalknowledgequestion.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case generalknowledgequestion.FieldQuestionNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_number", values[i])
			} else if value.Valid {
				_m.QuestionNumber = value.String
			}
		case generalknowledgequestion.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case generalknowledgequestion.FieldOptionA:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option_a", values[i])
			} else if value.Valid {
				_m.OptionA = value.String
			}
		case generalknowledgequestion.FieldOptionB:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option_b", values[i])
			} else if value.Valid {
				_m.OptionB = value.String
			}
		case generalknowledgequestion.FieldOptionC:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option_c", values[i])
			} else if value.Valid {
				_m.OptionC = value.String
			}
		case generalknowledgequestion.FieldOptionD:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option_d", values[i])
			} else if value.Valid {
				_m.OptionD = value.String
			}
		case generalknowledgequestion.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = value.String
			}
		case generalknowledgequestion.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = value.String
			}
		case generalknowledgequestion.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case generalknowledgequestion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case generalknowledgequestion.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case generalknowledgequestion.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = new(string)
				*_m.Category = value.String
			}
		case generalknowledgequestion.FieldDifficultyLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_level", values[i])
			} else if value.Valid {
				_m.DifficultyLevel = new(string)
				*_m.DifficultyLevel = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GeneralKnowledgeQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *GeneralKnowledgeQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GeneralKnowledgeQuestion.
// Note that you need to call GeneralKnowledgeQuestion.Unwrap() before calling this method if this GeneralKnowledgeQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GeneralKnowledgeQuestion) Update() *GeneralKnowledgeQuestionUpdateOne {
	return NewGeneralKnowledgeQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GeneralKnowledgeQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GeneralKnowledgeQuestion) Unwrap() *GeneralKnowledgeQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GeneralKnowledgeQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GeneralKnowledgeQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("GeneralKnowledgeQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("question_number=")
	builder.WriteString(_m.QuestionNumber)
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	builder.WriteString("option_a=")
	builder.WriteString(_m.OptionA)
	builder.WriteString(", ")
	builder.WriteString("option_b=")
	builder.WriteString(_m.OptionB)
	builder.WriteString(", ")
	builder.WriteString("option_c=")
	builder.WriteString(_m.OptionC)
	builder.WriteString(", ")
	builder.WriteString("option_d=")
	builder.WriteString(_m.OptionD)
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(_m.CorrectAnswer)
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(_m.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Category; v != nil {
		builder.WriteString("category=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DifficultyLevel; v != nil {
		builder.WriteString("difficulty_level=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// GeneralKnowledgeQuestions is a parsable slice of GeneralKnowledgeQuestion.
type GeneralKnowledgeQuestions []*GeneralKnowledgeQuestion
