// Code generated by ent, DO NOT EDIT.

package englishquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/edtech-ng/question-bank/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLTE(FieldID, id))
}

// QuestionNumber applies equality check predicate on the "question_number" field. It's identical to QuestionNumberEQ.
func QuestionNumber(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldQuestionNumber, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldQuestionText, v))
}

// OptionA applies equality check predicate on the "option_a" field. It's identical to OptionAEQ.
func OptionA(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldOptionA, v))
}

// OptionB applies equality check predicate on the "option_b" field. It's identical to OptionBEQ.
func OptionB(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldOptionB, v))
}

// OptionC applies equality check predicate on the "option_c" field. It's identical to OptionCEQ.
func OptionC(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldOptionC, v))
}

// OptionD applies equality check predicate on the "option_d" field. It's identical to OptionDEQ.
func OptionD(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldOptionD, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldCorrectAnswer, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldQuestionType, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldSource, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldUpdatedAt, v))
}

// QuestionNumberEQ applies the EQ predicate on the "question_number" field.
func QuestionNumberEQ(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldQuestionNumber, v))
}

// QuestionNumberNEQ applies the NEQ predicate on the "question_number" field.
func QuestionNumberNEQ(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNEQ(FieldQuestionNumber, v))
}

// QuestionNumberIn applies the In predicate on the "question_number" field.
func QuestionNumberIn(vs ...string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldIn(FieldQuestionNumber, vs...))
}

// QuestionNumberNotIn applies the NotIn predicate on the "question_number" field.
func QuestionNumberNotIn(vs ...string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNotIn(FieldQuestionNumber, vs...))
}

// QuestionNumberGT applies the GT predicate on the "question_number" field.
func QuestionNumberGT(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGT(FieldQuestionNumber, v))
}

// QuestionNumberGTE applies the GTE predicate on the "question_number" field.
func QuestionNumberGTE(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGTE(FieldQuestionNumber, v))
}

// QuestionNumberLT applies the LT predicate on the "question_number" field.
func QuestionNumberLT(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLT(FieldQuestionNumber, v))
}

// QuestionNumberLTE applies the LTE predicate on the "question_number" field.
func QuestionNumberLTE(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLTE(FieldQuestionNumber, v))
}

// QuestionNumberContains applies the Contains predicate on the "question_number" field.
func QuestionNumberContains(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldContains(FieldQuestionNumber, v))
}

// QuestionNumberHasPrefix applies the HasPrefix predicate on the "question_number" field.
func QuestionNumberHasPrefix(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldHasPrefix(FieldQuestionNumber, v))
}

// QuestionNumberHasSuffix applies the HasSuffix predicate on the "question_number" field.
func QuestionNumberHasSuffix(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldHasSuffix(FieldQuestionNumber, v))
}

// QuestionNumberEqualFold applies the EqualFold predicate on the "question_number" field.
func QuestionNumberEqualFold(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEqualFold(FieldQuestionNumber, v))
}

// QuestionNumberContainsFold applies the ContainsFold predicate on the "question_number" field.
func QuestionNumberContainsFold(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldContainsFold(FieldQuestionNumber, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldContainsFold(FieldQuestionText, v))
}

// OptionAEQ applies the EQ predicate on the "option_a" field.
func OptionAEQ(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldOptionA, v))
}

// OptionANEQ applies the NEQ predicate on the "option_a" field.
func OptionANEQ(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNEQ(FieldOptionA, v))
}

// OptionAIn applies the In predicate on the "option_a" field.
func OptionAIn(vs ...string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldIn(FieldOptionA, vs...))
}

// OptionANotIn applies the NotIn predicate on the "option_a" field.
func OptionANotIn(vs ...string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNotIn(FieldOptionA, vs...))
}

// OptionAGT applies the GT predicate on the "option_a" field.
func OptionAGT(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGT(FieldOptionA, v))
}

// OptionAGTE applies the GTE predicate on the "option_a" field.
func OptionAGTE(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGTE(FieldOptionA, v))
}

// OptionALT applies the LT predicate on the "option_a" field.
func OptionALT(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLT(FieldOptionA, v))
}

// OptionALTE applies the LTE predicate on the "option_a" field.
func OptionALTE(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLTE(FieldOptionA, v))
}

// OptionAContains applies the Contains predicate on the "option_a" field.
func OptionAContains(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldContains(FieldOptionA, v))
}

// OptionAHasPrefix applies the HasPrefix predicate on the "option_a" field.
func OptionAHasPrefix(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldHasPrefix(FieldOptionA, v))
}

// OptionAHasSuffix applies the HasSuffix predicate on the "option_a" field.
func OptionAHasSuffix(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldHasSuffix(FieldOptionA, v))
}

// OptionAEqualFold applies the EqualFold predicate on the "option_a" field.
func OptionAEqualFold(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEqualFold(FieldOptionA, v))
}

// OptionAContainsFold applies the ContainsFold predicate on the "option_a" field.
func OptionAContainsFold(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldContainsFold(FieldOptionA, v))
}

// OptionBEQ applies the EQ predicate on the "option_b" field.
func OptionBEQ(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldOptionB, v))
}

// OptionBNEQ applies the NEQ predicate on the "option_b" field.
func OptionBNEQ(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNEQ(FieldOptionB, v))
}

// OptionBIn applies the In predicate on the "option_b" field.
func OptionBIn(vs ...string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldIn(FieldOptionB, vs...))
}

// OptionBNotIn applies the NotIn predicate on the "option_b" field.
func OptionBNotIn(vs ...string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNotIn(FieldOptionB, vs...))
}

// OptionBGT applies the GT predicate on the "option_b" field.
func OptionBGT(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGT(FieldOptionB, v))
}

// OptionBGTE applies the GTE predicate on the "option_b" field.
func OptionBGTE(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGTE(FieldOptionB, v))
}

// OptionBLT applies the LT predicate on the "option_b" field.
func OptionBLT(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLT(FieldOptionB, v))
}

// OptionBLTE applies the LTE predicate on the "option_b" field.
func OptionBLTE(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLTE(FieldOptionB, v))
}

// OptionBContains applies the Contains predicate on the "option_b" field.
func OptionBContains(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldContains(FieldOptionB, v))
}

// OptionBHasPrefix applies the HasPrefix predicate on the "option_b" field.
func OptionBHasPrefix(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldHasPrefix(FieldOptionB, v))
}

// OptionBHasSuffix applies the HasSuffix predicate on the "option_b" field.
func OptionBHasSuffix(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldHasSuffix(FieldOptionB, v))
}

// OptionBEqualFold applies the EqualFold predicate on the "option_b" field.
func OptionBEqualFold(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEqualFold(FieldOptionB, v))
}

// OptionBContainsFold applies the ContainsFold predicate on the "option_b" field.
func OptionBContainsFold(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldContainsFold(FieldOptionB, v))
}

// OptionCEQ applies the EQ predicate on the "option_c" field.
func OptionCEQ(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldOptionC, v))
}

// OptionCNEQ applies the NEQ predicate on the "option_c" field.
func OptionCNEQ(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNEQ(FieldOptionC, v))
}

// OptionCIn applies the In predicate on the "option_c" field.
func OptionCIn(vs ...string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldIn(FieldOptionC, vs...))
}

// OptionCNotIn applies the NotIn predicate on the "option_c" field.
func OptionCNotIn(vs ...string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNotIn(FieldOptionC, vs...))
}

// OptionCGT applies the GT predicate on the "option_c" field.
func OptionCGT(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGT(FieldOptionC, v))
}

// OptionCGTE applies the GTE predicate on the "option_c" field.
func OptionCGTE(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGTE(FieldOptionC, v))
}

// OptionCLT applies the LT predicate on the "option_c" field.
func OptionCLT(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLT(FieldOptionC, v))
}

// OptionCLTE applies the LTE predicate on the "option_c" field.
func OptionCLTE(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLTE(FieldOptionC, v))
}

// OptionCContains applies the Contains predicate on the "option_c" field.
func OptionCContains(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldContains(FieldOptionC, v))
}

// OptionCHasPrefix applies the HasPrefix predicate on the "option_c" field.
func OptionCHasPrefix(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldHasPrefix(FieldOptionC, v))
}

// OptionCHasSuffix applies the HasSuffix predicate on the "option_c" field.
func OptionCHasSuffix(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldHasSuffix(FieldOptionC, v))
}

// OptionCEqualFold applies the EqualFold predicate on the "option_c" field.
func OptionCEqualFold(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEqualFold(FieldOptionC, v))
}

// OptionCContainsFold applies the ContainsFold predicate on the "option_c" field.
func OptionCContainsFold(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldContainsFold(FieldOptionC, v))
}

// OptionDEQ applies the EQ predicate on the "option_d" field.
func OptionDEQ(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldOptionD, v))
}

// OptionDNEQ applies the NEQ predicate on the "option_d" field.
func OptionDNEQ(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNEQ(FieldOptionD, v))
}

// OptionDIn applies the In predicate on the "option_d" field.
func OptionDIn(vs ...string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldIn(FieldOptionD, vs...))
}

// OptionDNotIn applies the NotIn predicate on the "option_d" field.
func OptionDNotIn(vs ...string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNotIn(FieldOptionD, vs...))
}

// OptionDGT applies the GT predicate on the "option_d" field.
func OptionDGT(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGT(FieldOptionD, v))
}

// OptionDGTE applies the GTE predicate on the "option_d" field.
func OptionDGTE(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGTE(FieldOptionD, v))
}

// OptionDLT applies the LT predicate on the "option_d" field.
func OptionDLT(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLT(FieldOptionD, v))
}

// OptionDLTE applies the LTE predicate on the "option_d" field.
func OptionDLTE(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLTE(FieldOptionD, v))
}

// OptionDContains applies the Contains predicate on the "option_d" field.
func OptionDContains(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldContains(FieldOptionD, v))
}

// OptionDHasPrefix applies the HasPrefix predicate on the "option_d" field.
func OptionDHasPrefix(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldHasPrefix(FieldOptionD, v))
}

// OptionDHasSuffix applies the HasSuffix predicate on the "option_d" field.
func OptionDHasSuffix(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldHasSuffix(FieldOptionD, v))
}

// OptionDEqualFold applies the EqualFold predicate on the "option_d" field.
func OptionDEqualFold(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEqualFold(FieldOptionD, v))
}

// OptionDContainsFold applies the ContainsFold predicate on the "option_d" field.
func OptionDContainsFold(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldContainsFold(FieldOptionD, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldContainsFold(FieldQuestionType, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldContainsFold(FieldSource, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EnglishQuestion) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EnglishQuestion) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EnglishQuestion) predicate.EnglishQuestion {
	return predicate.EnglishQuestion(sql.NotPredicates(p))
}
