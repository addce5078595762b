// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edtech-ng/question-bank/gen/ent/generalknowledgequestion"
	"github.com/edtech-ng/question-bank/gen/ent/predicate"
)

// GeneralKnowledgeQuestionUpdate is the builder for updating GeneralKnowledgeQuestion entities.
type GeneralKnowledgeQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *GeneralKnowledgeQuestionMutation
}

// Where appends a list predicates to the GeneralKnowledgeQuestionUpdate builder.
func (_u *GeneralKnowledgeQuestionUpdate) Where(ps ...predicate.GeneralKnowledgeQuestion) *GeneralKnowledgeQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *GeneralKnowledgeQuestionUpdate) SetQuestionNumber(v string) *GeneralKnowledgeQuestionUpdate {
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdate) SetNillableQuestionNumber(v *string) *GeneralKnowledgeQuestionUpdate {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *GeneralKnowledgeQuestionUpdate) SetQuestionText(v string) *GeneralKnowledgeQuestionUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdate) SetNillableQuestionText(v *string) *GeneralKnowledgeQuestionUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetOptionA sets the "option_a" field.
func (_u *GeneralKnowledgeQuestionUpdate) SetOptionA(v string) *GeneralKnowledgeQuestionUpdate {
	_u.mutation.SetOptionA(v)
	return _u
}

// SetNillableOptionA sets the "option_a" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdate) SetNillableOptionA(v *string) *GeneralKnowledgeQuestionUpdate {
	if v != nil {
		_u.SetOptionA(*v)
	}
	return _u
}

// SetOptionB sets the "option_b" field.
func (_u *GeneralKnowledgeQuestionUpdate) SetOptionB(v string) *GeneralKnowledgeQuestionUpdate {
	_u.mutation.SetOptionB(v)
	return _u
}

// SetNillableOptionB sets the "option_b" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdate) SetNillableOptionB(v *string) *GeneralKnowledgeQuestionUpdate {
	if v != nil {
		_u.SetOptionB(*v)
	}
	return _u
}

// SetOptionC sets the "option_c" field.
func (_u *GeneralKnowledgeQuestionUpdate) SetOptionC(v string) *GeneralKnowledgeQuestionUpdate {
	_u.mutation.SetOptionC(v)
	return _u
}

// SetNillableOptionC sets the "option_c" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdate) SetNillableOptionC(v *string) *GeneralKnowledgeQuestionUpdate {
	if v != nil {
		_u.SetOptionC(*v)
	}
	return _u
}

// SetOptionD sets the "option_d" field.
func (_u *GeneralKnowledgeQuestionUpdate) SetOptionD(v string) *GeneralKnowledgeQuestionUpdate {
	_u.mutation.SetOptionD(v)
	return _u
}

// SetNillableOptionD sets the "option_d" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdate) SetNillableOptionD(v *string) *GeneralKnowledgeQuestionUpdate {
	if v != nil {
		_u.SetOptionD(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *GeneralKnowledgeQuestionUpdate) SetCorrectAnswer(v string) *GeneralKnowledgeQuestionUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdate) SetNillableCorrectAnswer(v *string) *GeneralKnowledgeQuestionUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *GeneralKnowledgeQuestionUpdate) SetQuestionType(v string) *GeneralKnowledgeQuestionUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdate) SetNillableQuestionType(v *string) *GeneralKnowledgeQuestionUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *GeneralKnowledgeQuestionUpdate) SetSource(v string) *GeneralKnowledgeQuestionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdate) SetNillableSource(v *string) *GeneralKnowledgeQuestionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GeneralKnowledgeQuestionUpdate) SetUpdatedAt(v time.Time) *GeneralKnowledgeQuestionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *GeneralKnowledgeQuestionUpdate) SetCategory(v string) *GeneralKnowledgeQuestionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdate) SetNillableCategory(v *string) *GeneralKnowledgeQuestionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *GeneralKnowledgeQuestionUpdate) ClearCategory() *GeneralKnowledgeQuestionUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *GeneralKnowledgeQuestionUpdate) SetDifficultyLevel(v string) *GeneralKnowledgeQuestionUpdate {
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdate) SetNillableDifficultyLevel(v *string) *GeneralKnowledgeQuestionUpdate {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// ClearDifficultyLevel clears the value of the "difficulty_level" field.
func (_u *GeneralKnowledgeQuestionUpdate) ClearDifficultyLevel() *GeneralKnowledgeQuestionUpdate {
	_u.mutation.ClearDifficultyLevel()
	return _u
}

// Mutation returns the GeneralKnowledgeQuestionMutation object of the builder.
func (_u *GeneralKnowledgeQuestionUpdate) Mutation() *GeneralKnowledgeQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GeneralKnowledgeQuestionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneralKnowledgeQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GeneralKnowledgeQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneralKnowledgeQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GeneralKnowledgeQuestionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := generalknowledgequestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneralKnowledgeQuestionUpdate) check() error {
	if v, ok := _u.mutation.QuestionNumber(); ok {
		if err := generalknowledgequestion.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.question_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := generalknowledgequestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionA(); ok {
		if err := generalknowledgequestion.OptionAValidator(v); err != nil {
			return &ValidationError{Name: "option_a", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.option_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionB(); ok {
		if err := generalknowledgequestion.OptionBValidator(v); err != nil {
			return &ValidationError{Name: "option_b", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.option_b": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionC(); ok {
		if err := generalknowledgequestion.OptionCValidator(v); err != nil {
			return &ValidationError{Name: "option_c", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.option_c": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionD(); ok {
		if err := generalknowledgequestion.OptionDValidator(v); err != nil {
			return &ValidationError{Name: "option_d", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.option_d": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := generalknowledgequestion.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := generalknowledgequestion.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *GeneralKnowledgeQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generalknowledgequestion.Table, generalknowledgequestion.Columns, sqlgraph.NewFieldSpec(generalknowledgequestion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(generalknowledgequestion.FieldQuestionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(generalknowledgequestion.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionA(); ok {
		_spec.SetField(generalknowledgequestion.FieldOptionA, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionB(); ok {
		_spec.SetField(generalknowledgequestion.FieldOptionB, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionC(); ok {
		_spec.SetField(generalknowledgequestion.FieldOptionC, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionD(); ok {
		_spec.SetField(generalknowledgequestion.FieldOptionD, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(generalknowledgequestion.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(generalknowledgequestion.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(generalknowledgequestion.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(generalknowledgequestion.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(generalknowledgequestion.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(generalknowledgequestion.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(generalknowledgequestion.FieldDifficultyLevel, field.TypeString, value)
	}
	if _u.mutation.DifficultyLevelCleared() {
		_spec.ClearField(generalknowledgequestion.FieldDifficultyLevel, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generalknowledgequestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GeneralKnowledgeQuestionUpdateOne is the builder for updating a single GeneralKnowledgeQuestion entity.
type GeneralKnowledgeQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GeneralKnowledgeQuestionMutation
}

// SetQuestionNumber sets the "question_number" field.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetQuestionNumber(v string) *GeneralKnowledgeQuestionUpdateOne {
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetNillableQuestionNumber(v *string) *GeneralKnowledgeQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetQuestionText(v string) *GeneralKnowledgeQuestionUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetNillableQuestionText(v *string) *GeneralKnowledgeQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetOptionA sets the "option_a" field.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetOptionA(v string) *GeneralKnowledgeQuestionUpdateOne {
	_u.mutation.SetOptionA(v)
	return _u
}

// SetNillableOptionA sets the "option_a" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetNillableOptionA(v *string) *GeneralKnowledgeQuestionUpdateOne {
	if v != nil {
		_u.SetOptionA(*v)
	}
	return _u
}

// SetOptionB sets the "option_b" field.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetOptionB(v string) *GeneralKnowledgeQuestionUpdateOne {
	_u.mutation.SetOptionB(v)
	return _u
}

// SetNillableOptionB sets the "option_b" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetNillableOptionB(v *string) *GeneralKnowledgeQuestionUpdateOne {
	if v != nil {
		_u.SetOptionB(*v)
	}
	return _u
}

// SetOptionC sets the "option_c" field.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetOptionC(v string) *GeneralKnowledgeQuestionUpdateOne {
	_u.mutation.SetOptionC(v)
	return _u
}

// SetNillableOptionC sets the "option_c" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetNillableOptionC(v *string) *GeneralKnowledgeQuestionUpdateOne {
	if v != nil {
		_u.SetOptionC(*v)
	}
	return _u
}

// SetOptionD sets the "option_d" field.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetOptionD(v string) *GeneralKnowledgeQuestionUpdateOne {
	_u.mutation.SetOptionD(v)
	return _u
}

// SetNillableOptionD sets the "option_d" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetNillableOptionD(v *string) *GeneralKnowledgeQuestionUpdateOne {
	if v != nil {
		_u.SetOptionD(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetCorrectAnswer(v string) *GeneralKnowledgeQuestionUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetNillableCorrectAnswer(v *string) *GeneralKnowledgeQuestionUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetQuestionType(v string) *GeneralKnowledgeQuestionUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetNillableQuestionType(v *string) *GeneralKnowledgeQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetSource(v string) *GeneralKnowledgeQuestionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetNillableSource(v *string) *GeneralKnowledgeQuestionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetUpdatedAt(v time.Time) *GeneralKnowledgeQuestionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetCategory(v string) *GeneralKnowledgeQuestionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetNillableCategory(v *string) *GeneralKnowledgeQuestionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *GeneralKnowledgeQuestionUpdateOne) ClearCategory() *GeneralKnowledgeQuestionUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetDifficultyLevel(v string) *GeneralKnowledgeQuestionUpdateOne {
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *GeneralKnowledgeQuestionUpdateOne) SetNillableDifficultyLevel(v *string) *GeneralKnowledgeQuestionUpdateOne {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// ClearDifficultyLevel clears the value of the "difficulty_level" field.
func (_u *GeneralKnowledgeQuestionUpdateOne) ClearDifficultyLevel() *GeneralKnowledgeQuestionUpdateOne {
	_u.mutation.ClearDifficultyLevel()
	return _u
}

// Mutation returns the GeneralKnowledgeQuestionMutation object of the builder.
func (_u *GeneralKnowledgeQuestionUpdateOne) Mutation() *GeneralKnowledgeQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the GeneralKnowledgeQuestionUpdate builder.
func (_u *GeneralKnowledgeQuestionUpdateOne) Where(ps ...predicate.GeneralKnowledgeQuestion) *GeneralKnowledgeQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GeneralKnowledgeQuestionUpdateOne) Select(field string, fields ...string) *GeneralKnowledgeQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GeneralKnowledgeQuestion entity.
func (_u *GeneralKnowledgeQuestionUpdateOne) Save(ctx context.Context) (*GeneralKnowledgeQuestion, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneralKnowledgeQuestionUpdateOne) SaveX(ctx context.Context) *GeneralKnowledgeQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GeneralKnowledgeQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneralKnowledgeQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GeneralKnowledgeQuestionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := generalknowledgequestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneralKnowledgeQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionNumber(); ok {
		if err := generalknowledgequestion.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.question_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := generalknowledgequestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionA(); ok {
		if err := generalknowledgequestion.OptionAValidator(v); err != nil {
			return &ValidationError{Name: "option_a", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.option_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionB(); ok {
		if err := generalknowledgequestion.OptionBValidator(v); err != nil {
			return &ValidationError{Name: "option_b", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.option_b": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionC(); ok {
		if err := generalknowledgequestion.OptionCValidator(v); err != nil {
			return &ValidationError{Name: "option_c", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.option_c": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionD(); ok {
		if err := generalknowledgequestion.OptionDValidator(v); err != nil {
			return &ValidationError{Name: "option_d", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.option_d": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := generalknowledgequestion.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := generalknowledgequestion.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *GeneralKnowledgeQuestionUpdateOne) sqlSave(ctx context.Context) (_node *GeneralKnowledgeQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generalknowledgequestion.Table, generalknowledgequestion.Columns, sqlgraph.NewFieldSpec(generalknowledgequestion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GeneralKnowledgeQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generalknowledgequestion.FieldID)
		for _, f := range fields {
			if !generalknowledgequestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generalknowledgequestion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(generalknowledgequestion.FieldQuestionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(generalknowledgequestion.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionA(); ok {
		_spec.SetField(generalknowledgequestion.FieldOptionA, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionB(); ok {
		_spec.SetField(generalknowledgequestion.FieldOptionB, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionC(); ok {
		_spec.SetField(generalknowledgequestion.FieldOptionC, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionD(); ok {
		_spec.SetField(generalknowledgequestion.FieldOptionD, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(generalknowledgequestion.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(generalknowledgequestion.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(generalknowledgequestion.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(generalknowledgequestion.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(generalknowledgequestion.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(generalknowledgequestion.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(generalknowledgequestion.FieldDifficultyLevel, field.TypeString, value)
	}
	if _u.mutation.DifficultyLevelCleared() {
		_spec.ClearField(generalknowledgequestion.FieldDifficultyLevel, field.TypeString)
	}
	_node = &GeneralKnowledgeQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generalknowledgequestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
