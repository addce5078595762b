// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/edtech-ng/question-bank/db/ent/schema"
	"github.com/edtech-ng/question-bank/gen/ent/englishquestion"
	"github.com/edtech-ng/question-bank/gen/ent/generalknowledgequestion"
	"github.com/edtech-ng/question-bank/gen/ent/mathematicsquestion"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	englishquestionMixin := schema.EnglishQuestion{}.Mixin()
	englishquestionMixinFields0 := englishquestionMixin[0].Fields()
	_ = englishquestionMixinFields0
	englishquestionFields := schema.EnglishQuestion{}.Fields()
	_ = englishquestionFields
	// englishquestionDescQuestionNumber is the schema descriptor for question_number field.
	englishquestionDescQuestionNumber := englishquestionMixinFields0[1].Descriptor()
	// englishquestion.QuestionNumberValidator is a validator for the "question_number" field. It is called by the builders before save.
	englishquestion.QuestionNumberValidator = englishquestionDescQuestionNumber.Validators[0].(func(string) error)
	// englishquestionDescQuestionText is the schema descriptor for question_text field.
	englishquestionDescQuestionText := englishquestionMixinFields0[2].Descriptor()
	// englishquestion.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	englishquestion.QuestionTextValidator = englishquestionDescQuestionText.Validators[0].(func(string) error)
	// englishquestionDescOptionA is the schema descriptor for option_a field.
	englishquestionDescOptionA := englishquestionMixinFields0[3].Descriptor()
	// englishquestion.OptionAValidator is a validator for the "option_a" field. It is called by the builders before save.
	englishquestion.OptionAValidator = englishquestionDescOptionA.Validators[0].(func(string) error)
	// englishquestionDescOptionB is the schema descriptor for option_b field.
	englishquestionDescOptionB := englishquestionMixinFields0[4].Descriptor()
	// englishquestion.OptionBValidator is a validator for the "option_b" field. It is called by the builders before save.
	englishquestion.OptionBValidator = englishquestionDescOptionB.Validators[0].(func(string) error)
	// englishquestionDescOptionC is the schema descriptor for option_c field.
	englishquestionDescOptionC := englishquestionMixinFields0[5].Descriptor()
	// englishquestion.OptionCValidator is a validator for the "option_c" field. It is called by the builders before save.
	englishquestion.OptionCValidator = englishquestionDescOptionC.Validators[0].(func(string) error)
	// englishquestionDescOptionD is the schema descriptor for option_d field.
	englishquestionDescOptionD := englishquestionMixinFields0[6].Descriptor()
	// englishquestion.OptionDValidator is a validator for the "option_d" field. It is called by the builders before save.
	englishquestion.OptionDValidator = englishquestionDescOptionD.Validators[0].(func(string) error)
	// englishquestionDescCorrectAnswer is the schema descriptor for correct_answer field.
	englishquestionDescCorrectAnswer := englishquestionMixinFields0[7].Descriptor()
	// englishquestion.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	englishquestion.CorrectAnswerValidator = func() func(string) error {
		validators := englishquestionDescCorrectAnswer.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(correct_answer string) error {
			for _, fn := range fns {
				if err := fn(correct_answer); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// englishquestionDescQuestionType is the schema descriptor for question_type field.
	englishquestionDescQuestionType := englishquestionMixinFields0[8].Descriptor()
	// englishquestion.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	englishquestion.QuestionTypeValidator = englishquestionDescQuestionType.Validators[0].(func(string) error)
	// englishquestionDescSource is the schema descriptor for source field.
	englishquestionDescSource := englishquestionMixinFields0[9].Descriptor()
	// englishquestion.DefaultSource holds the default value on creation for the source field.
	englishquestion.DefaultSource = englishquestionDescSource.Default.(string)
	// englishquestionDescCreatedAt is the schema descriptor for created_at field.
	englishquestionDescCreatedAt := englishquestionMixinFields0[10].Descriptor()
	// englishquestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	englishquestion.DefaultCreatedAt = englishquestionDescCreatedAt.Default.(func() time.Time)
	// englishquestionDescUpdatedAt is the schema descriptor for updated_at field.
	englishquestionDescUpdatedAt := englishquestionMixinFields0[11].Descriptor()
	// englishquestion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	englishquestion.DefaultUpdatedAt = englishquestionDescUpdatedAt.Default.(func() time.Time)
	// englishquestion.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	englishquestion.UpdateDefaultUpdatedAt = englishquestionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// englishquestionDescID is the schema descriptor for id field.
	englishquestionDescID := englishquestionMixinFields0[0].Descriptor()
	// englishquestion.DefaultID holds the default value on creation for the id field.
	englishquestion.DefaultID = englishquestionDescID.Default.(func() uuid.UUID)
	generalknowledgequestionMixin := schema.GeneralKnowledgeQuestion{}.Mixin()
	generalknowledgequestionMixinFields0 := generalknowledgequestionMixin[0].Fields()
	_ = generalknowledgequestionMixinFields0
	generalknowledgequestionFields := schema.GeneralKnowledgeQuestion{}.Fields()
	_ = generalknowledgequestionFields
	// generalknowledgequestionDescQuestionNumber is the schema descriptor for question_number field.
	generalknowledgequestionDescQuestionNumber := generalknowledgequestionMixinFields0[1].Descriptor()
	// generalknowledgequestion.QuestionNumberValidator is a validator for the "question_number" field. It is called by the builders before save.
	generalknowledgequestion.QuestionNumberValidator = generalknowledgequestionDescQuestionNumber.Validators[0].(func(string) error)
	// generalknowledgequestionDescQuestionText is the schema descriptor for question_text field.
	generalknowledgequestionDescQuestionText := generalknowledgequestionMixinFields0[2].Descriptor()
	// generalknowledgequestion.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	generalknowledgequestion.QuestionTextValidator = generalknowledgequestionDescQuestionText.Validators[0].(func(string) error)
	// generalknowledgequestionDescOptionA is the schema descriptor for option_a field.
	generalknowledgequestionDescOptionA := generalknowledgequestionMixinFields0[3].Descriptor()
	// generalknowledgequestion.OptionAValidator is a validator for the "option_a" field. It is called by the builders before save.
	generalknowledgequestion.OptionAValidator = generalknowledgequestionDescOptionA.Validators[0].(func(string) error)
	// generalknowledgequestionDescOptionB is the schema descriptor for option_b field.
	generalknowledgequestionDescOptionB := generalknowledgequestionMixinFields0[4].Descriptor()
	// generalknowledgequestion.OptionBValidator is a validator for the "option_b" field. It is called by the builders before save.
	generalknowledgequestion.OptionBValidator = generalknowledgequestionDescOptionB.Validators[0].(func(string) error)
	// generalknowledgequestionDescOptionC is the schema descriptor for option_c field.
	generalknowledgequestionDescOptionC := generalknowledgequestionMixinFields0[5].Descriptor()
	// generalknowledgequestion.OptionCValidator is a validator for the "option_c" field. It is called by the builders before save.
	generalknowledgequestion.OptionCValidator = generalknowledgequestionDescOptionC.Validators[0].(func(string) error)
	// generalknowledgequestionDescOptionD is the schema descriptor for option_d field.
	generalknowledgequestionDescOptionD := generalknowledgequestionMixinFields0[6].Descriptor()
	// generalknowledgequestion.OptionDValidator is a validator for the "option_d" field. It is called by the builders before save.
	generalknowledgequestion.OptionDValidator = generalknowledgequestionDescOptionD.Validators[0].(func(string) error)
	// generalknowledgequestionDescCorrectAnswer is the schema descriptor for correct_answer field.
	generalknowledgequestionDescCorrectAnswer := generalknowledgequestionMixinFields0[7].Descriptor()
	// generalknowledgequestion.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	generalknowledgequestion.CorrectAnswerValidator = func() func(string) error {
		validators := generalknowledgequestionDescCorrectAnswer.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(correct_answer string) error {
			for _, fn := range fns {
				if err := fn(correct_answer); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// generalknowledgequestionDescQuestionType is the schema descriptor for question_type field.
	generalknowledgequestionDescQuestionType := generalknowledgequestionMixinFields0[8].Descriptor()
	// generalknowledgequestion.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	generalknowledgequestion.QuestionTypeValidator = generalknowledgequestionDescQuestionType.Validators[0].(func(string) error)
	// generalknowledgequestionDescSource is the schema descriptor for source field.
	generalknowledgequestionDescSource := generalknowledgequestionMixinFields0[9].Descriptor()
	// generalknowledgequestion.DefaultSource holds the default value on creation for the source field.
	generalknowledgequestion.DefaultSource = generalknowledgequestionDescSource.Default.(string)
	// generalknowledgequestionDescCreatedAt is the schema descriptor for created_at field.
	generalknowledgequestionDescCreatedAt := generalknowledgequestionMixinFields0[10].Descriptor()
	// generalknowledgequestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	generalknowledgequestion.DefaultCreatedAt = generalknowledgequestionDescCreatedAt.Default.(func() time.Time)
	// generalknowledgequestionDescUpdatedAt is the schema descriptor for updated_at field.
	generalknowledgequestionDescUpdatedAt := generalknowledgequestionMixinFields0[11].Descriptor()
	// generalknowledgequestion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	generalknowledgequestion.DefaultUpdatedAt = generalknowledgequestionDescUpdatedAt.Default.(func() time.Time)
	// generalknowledgequestion.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	generalknowledgequestion.UpdateDefaultUpdatedAt = generalknowledgequestionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// generalknowledgequestionDescID is the schema descriptor for id field.
	generalknowledgequestionDescID := generalknowledgequestionMixinFields0[0].Descriptor()
	// generalknowledgequestion.DefaultID holds the default value on creation for the id field.
	generalknowledgequestion.DefaultID = generalknowledgequestionDescID.Default.(func() uuid.UUID)
	mathematicsquestionMixin := schema.MathematicsQuestion{}.Mixin()
	mathematicsquestionMixinFields0 := mathematicsquestionMixin[0].Fields()
	_ = mathematicsquestionMixinFields0
	mathematicsquestionFields := schema.MathematicsQuestion{}.Fields()
	_ = mathematicsquestionFields
	// mathematicsquestionDescQuestionNumber is the schema descriptor for question_number field.
	mathematicsquestionDescQuestionNumber := mathematicsquestionMixinFields0[1].Descriptor()
	// mathematicsquestion.QuestionNumberValidator is a validator for the "question_number" field. It is called by the builders before save.
	mathematicsquestion.QuestionNumberValidator = mathematicsquestionDescQuestionNumber.Validators[0].(func(string) error)
	// mathematicsquestionDescQuestionText is the schema descriptor for question_text field.
	mathematicsquestionDescQuestionText := mathematicsquestionMixinFields0[2].Descriptor()
	// mathematicsquestion.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	mathematicsquestion.QuestionTextValidator = mathematicsquestionDescQuestionText.Validators[0].(func(string) error)
	// mathematicsquestionDescOptionA is the schema descriptor for option_a field.
	mathematicsquestionDescOptionA := mathematicsquestionMixinFields0[3].Descriptor()
	// mathematicsquestion.OptionAValidator is a validator for the "option_a" field. It is called by the builders before save.
	mathematicsquestion.OptionAValidator = mathematicsquestionDescOptionA.Validators[0].(func(string) error)
	// mathematicsquestionDescOptionB is the schema descriptor for option_b field.
	mathematicsquestionDescOptionB := mathematicsquestionMixinFields0[4].Descriptor()
	// mathematicsquestion.OptionBValidator is a validator for the "option_b" field. It is called by the builders before save.
	mathematicsquestion.OptionBValidator = mathematicsquestionDescOptionB.Validators[0].(func(string) error)
	// mathematicsquestionDescOptionC is the schema descriptor for option_c field.
	mathematicsquestionDescOptionC := mathematicsquestionMixinFields0[5].Descriptor()
	// mathematicsquestion.OptionCValidator is a validator for the "option_c" field. It is called by the builders before save.
	mathematicsquestion.OptionCValidator = mathematicsquestionDescOptionC.Validators[0].(func(string) error)
	// mathematicsquestionDescOptionD is the schema descriptor for option_d field.
	mathematicsquestionDescOptionD := mathematicsquestionMixinFields0[6].Descriptor()
	// mathematicsquestion.OptionDValidator is a validator for the "option_d" field. It is called by the builders before save.
	mathematicsquestion.OptionDValidator = mathematicsquestionDescOptionD.Validators[0].(func(string) error)
	// mathematicsquestionDescCorrectAnswer is the schema descriptor for correct_answer field.
	mathematicsquestionDescCorrectAnswer := mathematicsquestionMixinFields0[7].Descriptor()
	// mathematicsquestion.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	mathematicsquestion.CorrectAnswerValidator = func() func(string) error {
		validators := mathematicsquestionDescCorrectAnswer.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(correct_answer string) error {
			for _, fn := range fns {
				if err := fn(correct_answer); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// mathematicsquestionDescQuestionType is the schema descriptor for question_type field.
	mathematicsquestionDescQuestionType := mathematicsquestionMixinFields0[8].Descriptor()
	// mathematicsquestion.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	mathematicsquestion.QuestionTypeValidator = mathematicsquestionDescQuestionType.Validators[0].(func(string) error)
	// mathematicsquestionDescSource is the schema descriptor for source field.
	mathematicsquestionDescSource := mathematicsquestionMixinFields0[9].Descriptor()
	// mathematicsquestion.DefaultSource holds the default value on creation for the source field.
	mathematicsquestion.DefaultSource = mathematicsquestionDescSource.Default.(string)
	// mathematicsquestionDescCreatedAt is the schema descriptor for created_at field.
	mathematicsquestionDescCreatedAt := mathematicsquestionMixinFields0[10].Descriptor()
	// mathematicsquestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	mathematicsquestion.DefaultCreatedAt = mathematicsquestionDescCreatedAt.Default.(func() time.Time)
	// mathematicsquestionDescUpdatedAt is the schema descriptor for updated_at field.
	mathematicsquestionDescUpdatedAt := mathematicsquestionMixinFields0[11].Descriptor()
	// mathematicsquestion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mathematicsquestion.DefaultUpdatedAt = mathematicsquestionDescUpdatedAt.Default.(func() time.Time)
	// mathematicsquestion.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mathematicsquestion.UpdateDefaultUpdatedAt = mathematicsquestionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// mathematicsquestionDescID is the schema descriptor for id field.
	mathematicsquestionDescID := mathematicsquestionMixinFields0[0].Descriptor()
	// mathematicsquestion.DefaultID holds the default value on creation for the id field.
	mathematicsquestion.DefaultID = mathematicsquestionDescID.Default.(func() uuid.UUID)
}
