// Code generated by ent, DO NOT EDIT.

package englishquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the englishquestion type in the database.
	Label = "english_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuestionNumber holds the string denoting the question_number field in the database.
	FieldQuestionNumber = "question_number"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldOptionA holds the string denoting the option_a field in the database.
	FieldOptionA = "option_a"
	// FieldOptionB holds the string denoting the option_b field in the database.
	FieldOptionB = "option_b"
	// FieldOptionC holds the string denoting the option_c field in the database.
	FieldOptionC = "option_c"
	// FieldOptionD holds the string denoting the option_d field in the database.
	FieldOptionD = "option_d"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the englishquestion in the database.
	Table = "english_questions"
)

// Columns holds all SQL columns for englishquestion fields.
var Columns = []string{
	FieldID,
	FieldQuestionNumber,
	FieldQuestionText,
	FieldOptionA,
	FieldOptionB,
	FieldOptionC,
	FieldOptionD,
	FieldCorrectAnswer,
	FieldQuestionType,
	FieldSource,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// QuestionNumberValidator is a validator for the "question_number" field. It is called by the builders before save.
	QuestionNumberValidator func(string) error
	// QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	QuestionTextValidator func(string) error
	// OptionAValidator is a validator for the "option_a" field. It is called by the builders before save.
	OptionAValidator func(string) error
	// OptionBValidator is a validator for the "option_b" field. It is called by the builders before save.
	OptionBValidator func(string) error
	// OptionCValidator is a validator for the "option_c" field. It is called by the builders before save.
	OptionCValidator func(string) error
	// OptionDValidator is a validator for the "option_d" field. It is called by the builders before save.
	OptionDValidator func(string) error
	// CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	CorrectAnswerValidator func(string) error
	// QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	QuestionTypeValidator func(string) error
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the EnglishQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuestionNumber orders the results by the question_number field.
func ByQuestionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionNumber, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByOptionA orders the results by the option_a field.
func ByOptionA(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionA, opts...).ToFunc()
}

// ByOptionB orders the results by the option_b field.
func ByOptionB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionB, opts...).ToFunc()
}

// ByOptionC orders the results by the option_c field.
func ByOptionC(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionC, opts...).ToFunc()
}

// ByOptionD orders the results by the option_d field.
func ByOptionD(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionD, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
