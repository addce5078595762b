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
	"github.com/edtech-ng/question-bank/gen/ent/mathematicsquestion"
	"github.com/edtech-ng/question-bank/gen/ent/predicate"
)

// MathematicsQuestionUpdate is the builder for updating MathematicsQuestion entities.
type MathematicsQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *MathematicsQuestionMutation
}

// Where appends a list predicates to the MathematicsQuestionUpdate builder.
func (_u *MathematicsQuestionUpdate) Where(ps ...predicate.MathematicsQuestion) *MathematicsQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *MathematicsQuestionUpdate) SetQuestionNumber(v string) *MathematicsQuestionUpdate {
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *MathematicsQuestionUpdate) SetNillableQuestionNumber(v *string) *MathematicsQuestionUpdate {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *MathematicsQuestionUpdate) SetQuestionText(v string) *MathematicsQuestionUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *MathematicsQuestionUpdate) SetNillableQuestionText(v *string) *MathematicsQuestionUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetOptionA sets the "option_a" field.
func (_u *MathematicsQuestionUpdate) SetOptionA(v string) *MathematicsQuestionUpdate {
	_u.mutation.SetOptionA(v)
	return _u
}

// SetNillableOptionA sets the "option_a" field if the given value is not nil.
func (_u *MathematicsQuestionUpdate) SetNillableOptionA(v *string) *MathematicsQuestionUpdate {
	if v != nil {
		_u.SetOptionA(*v)
	}
	return _u
}

// SetOptionB sets the "option_b" field.
func (_u *MathematicsQuestionUpdate) SetOptionB(v string) *MathematicsQuestionUpdate {
	_u.mutation.SetOptionB(v)
	return _u
}

// SetNillableOptionB sets the "option_b" field if the given value is not nil.
func (_u *MathematicsQuestionUpdate) SetNillableOptionB(v *string) *MathematicsQuestionUpdate {
	if v != nil {
		_u.SetOptionB(*v)
	}
	return _u
}

// SetOptionC sets the "option_c" field.
func (_u *MathematicsQuestionUpdate) SetOptionC(v string) *MathematicsQuestionUpdate {
	_u.mutation.SetOptionC(v)
	return _u
}

// SetNillableOptionC sets the "option_c" field if the given value is not nil.
func (_u *MathematicsQuestionUpdate) SetNillableOptionC(v *string) *MathematicsQuestionUpdate {
	if v != nil {
		_u.SetOptionC(*v)
	}
	return _u
}

// SetOptionD sets the "option_d" field.
func (_u *MathematicsQuestionUpdate) SetOptionD(v string) *MathematicsQuestionUpdate {
	_u.mutation.SetOptionD(v)
	return _u
}

// SetNillableOptionD sets the "option_d" field if the given value is not nil.
func (_u *MathematicsQuestionUpdate) SetNillableOptionD(v *string) *MathematicsQuestionUpdate {
	if v != nil {
		_u.SetOptionD(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *MathematicsQuestionUpdate) SetCorrectAnswer(v string) *MathematicsQuestionUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *MathematicsQuestionUpdate) SetNillableCorrectAnswer(v *string) *MathematicsQuestionUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *MathematicsQuestionUpdate) SetQuestionType(v string) *MathematicsQuestionUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *MathematicsQuestionUpdate) SetNillableQuestionType(v *string) *MathematicsQuestionUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *MathematicsQuestionUpdate) SetSource(v string) *MathematicsQuestionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *MathematicsQuestionUpdate) SetNillableSource(v *string) *MathematicsQuestionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MathematicsQuestionUpdate) SetUpdatedAt(v time.Time) *MathematicsQuestionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *MathematicsQuestionUpdate) SetTopic(v string) *MathematicsQuestionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *MathematicsQuestionUpdate) SetNillableTopic(v *string) *MathematicsQuestionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *MathematicsQuestionUpdate) ClearTopic() *MathematicsQuestionUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *MathematicsQuestionUpdate) SetDifficultyLevel(v string) *MathematicsQuestionUpdate {
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *MathematicsQuestionUpdate) SetNillableDifficultyLevel(v *string) *MathematicsQuestionUpdate {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// ClearDifficultyLevel clears the value of the "difficulty_level" field.
func (_u *MathematicsQuestionUpdate) ClearDifficultyLevel() *MathematicsQuestionUpdate {
	_u.mutation.ClearDifficultyLevel()
	return _u
}

// Mutation returns the MathematicsQuestionMutation object of the builder.
func (_u *MathematicsQuestionUpdate) Mutation() *MathematicsQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MathematicsQuestionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MathematicsQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MathematicsQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MathematicsQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MathematicsQuestionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mathematicsquestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MathematicsQuestionUpdate) check() error {
	if v, ok := _u.mutation.QuestionNumber(); ok {
		if err := mathematicsquestion.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.question_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := mathematicsquestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionA(); ok {
		if err := mathematicsquestion.OptionAValidator(v); err != nil {
			return &ValidationError{Name: "option_a", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.option_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionB(); ok {
		if err := mathematicsquestion.OptionBValidator(v); err != nil {
			return &ValidationError{Name: "option_b", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.option_b": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionC(); ok {
		if err := mathematicsquestion.OptionCValidator(v); err != nil {
			return &ValidationError{Name: "option_c", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.option_c": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionD(); ok {
		if err := mathematicsquestion.OptionDValidator(v); err != nil {
			return &ValidationError{Name: "option_d", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.option_d": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := mathematicsquestion.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := mathematicsquestion.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MathematicsQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mathematicsquestion.Table, mathematicsquestion.Columns, sqlgraph.NewFieldSpec(mathematicsquestion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(mathematicsquestion.FieldQuestionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(mathematicsquestion.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionA(); ok {
		_spec.SetField(mathematicsquestion.FieldOptionA, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionB(); ok {
		_spec.SetField(mathematicsquestion.FieldOptionB, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionC(); ok {
		_spec.SetField(mathematicsquestion.FieldOptionC, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionD(); ok {
		_spec.SetField(mathematicsquestion.FieldOptionD, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(mathematicsquestion.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(mathematicsquestion.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(mathematicsquestion.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mathematicsquestion.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(mathematicsquestion.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(mathematicsquestion.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(mathematicsquestion.FieldDifficultyLevel, field.TypeString, value)
	}
	if _u.mutation.DifficultyLevelCleared() {
		_spec.ClearField(mathematicsquestion.FieldDifficultyLevel, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mathematicsquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MathematicsQuestionUpdateOne is the builder for updating a single MathematicsQuestion entity.
type MathematicsQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MathematicsQuestionMutation
}

// SetQuestionNumber sets the "question_number" field.
func (_u *MathematicsQuestionUpdateOne) SetQuestionNumber(v string) *MathematicsQuestionUpdateOne {
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *MathematicsQuestionUpdateOne) SetNillableQuestionNumber(v *string) *MathematicsQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *MathematicsQuestionUpdateOne) SetQuestionText(v string) *MathematicsQuestionUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *MathematicsQuestionUpdateOne) SetNillableQuestionText(v *string) *MathematicsQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetOptionA sets the "option_a" field.
func (_u *MathematicsQuestionUpdateOne) SetOptionA(v string) *MathematicsQuestionUpdateOne {
	_u.mutation.SetOptionA(v)
	return _u
}

// SetNillableOptionA sets the "option_a" field if the given value is not nil.
func (_u *MathematicsQuestionUpdateOne) SetNillableOptionA(v *string) *MathematicsQuestionUpdateOne {
	if v != nil {
		_u.SetOptionA(*v)
	}
	return _u
}

// SetOptionB sets the "option_b" field.
func (_u *MathematicsQuestionUpdateOne) SetOptionB(v string) *MathematicsQuestionUpdateOne {
	_u.mutation.SetOptionB(v)
	return _u
}

// SetNillableOptionB sets the "option_b" field if the given value is not nil.
func (_u *MathematicsQuestionUpdateOne) SetNillableOptionB(v *string) *MathematicsQuestionUpdateOne {
	if v != nil {
		_u.SetOptionB(*v)
	}
	return _u
}

// SetOptionC sets the "option_c" field.
func (_u *MathematicsQuestionUpdateOne) SetOptionC(v string) *MathematicsQuestionUpdateOne {
	_u.mutation.SetOptionC(v)
	return _u
}

// SetNillableOptionC sets the "option_c" field if the given value is not nil.
func (_u *MathematicsQuestionUpdateOne) SetNillableOptionC(v *string) *MathematicsQuestionUpdateOne {
	if v != nil {
		_u.SetOptionC(*v)
	}
	return _u
}

// SetOptionD sets the "option_d" field.
func (_u *MathematicsQuestionUpdateOne) SetOptionD(v string) *MathematicsQuestionUpdateOne {
	_u.mutation.SetOptionD(v)
	return _u
}

// SetNillableOptionD sets the "option_d" field if the given value is not nil.
func (_u *MathematicsQuestionUpdateOne) SetNillableOptionD(v *string) *MathematicsQuestionUpdateOne {
	if v != nil {
		_u.SetOptionD(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *MathematicsQuestionUpdateOne) SetCorrectAnswer(v string) *MathematicsQuestionUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *MathematicsQuestionUpdateOne) SetNillableCorrectAnswer(v *string) *MathematicsQuestionUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *MathematicsQuestionUpdateOne) SetQuestionType(v string) *MathematicsQuestionUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *MathematicsQuestionUpdateOne) SetNillableQuestionType(v *string) *MathematicsQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *MathematicsQuestionUpdateOne) SetSource(v string) *MathematicsQuestionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *MathematicsQuestionUpdateOne) SetNillableSource(v *string) *MathematicsQuestionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MathematicsQuestionUpdateOne) SetUpdatedAt(v time.Time) *MathematicsQuestionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *MathematicsQuestionUpdateOne) SetTopic(v string) *MathematicsQuestionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *MathematicsQuestionUpdateOne) SetNillableTopic(v *string) *MathematicsQuestionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *MathematicsQuestionUpdateOne) ClearTopic() *MathematicsQuestionUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *MathematicsQuestionUpdateOne) SetDifficultyLevel(v string) *MathematicsQuestionUpdateOne {
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *MathematicsQuestionUpdateOne) SetNillableDifficultyLevel(v *string) *MathematicsQuestionUpdateOne {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// ClearDifficultyLevel clears the value of the "difficulty_level" field.
func (_u *MathematicsQuestionUpdateOne) ClearDifficultyLevel() *MathematicsQuestionUpdateOne {
	_u.mutation.ClearDifficultyLevel()
	return _u
}

// Mutation returns the MathematicsQuestionMutation object of the builder.
func (_u *MathematicsQuestionUpdateOne) Mutation() *MathematicsQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the MathematicsQuestionUpdate builder.
func (_u *MathematicsQuestionUpdateOne) Where(ps ...predicate.MathematicsQuestion) *MathematicsQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MathematicsQuestionUpdateOne) Select(field string, fields ...string) *MathematicsQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MathematicsQuestion entity.
func (_u *MathematicsQuestionUpdateOne) Save(ctx context.Context) (*MathematicsQuestion, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MathematicsQuestionUpdateOne) SaveX(ctx context.Context) *MathematicsQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MathematicsQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MathematicsQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MathematicsQuestionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mathematicsquestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MathematicsQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionNumber(); ok {
		if err := mathematicsquestion.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.question_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := mathematicsquestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionA(); ok {
		if err := mathematicsquestion.OptionAValidator(v); err != nil {
			return &ValidationError{Name: "option_a", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.option_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionB(); ok {
		if err := mathematicsquestion.OptionBValidator(v); err != nil {
			return &ValidationError{Name: "option_b", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.option_b": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionC(); ok {
		if err := mathematicsquestion.OptionCValidator(v); err != nil {
			return &ValidationError{Name: "option_c", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.option_c": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionD(); ok {
		if err := mathematicsquestion.OptionDValidator(v); err != nil {
			return &ValidationError{Name: "option_d", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.option_d": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := mathematicsquestion.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := mathematicsquestion.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MathematicsQuestionUpdateOne) sqlSave(ctx context.Context) (_node *MathematicsQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mathematicsquestion.Table, mathematicsquestion.Columns, sqlgraph.NewFieldSpec(mathematicsquestion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MathematicsQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mathematicsquestion.FieldID)
		for _, f := range fields {
			if !mathematicsquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mathematicsquestion.FieldID {
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
		_spec.SetField(mathematicsquestion.FieldQuestionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(mathematicsquestion.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionA(); ok {
		_spec.SetField(mathematicsquestion.FieldOptionA, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionB(); ok {
		_spec.SetField(mathematicsquestion.FieldOptionB, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionC(); ok {
		_spec.SetField(mathematicsquestion.FieldOptionC, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionD(); ok {
		_spec.SetField(mathematicsquestion.FieldOptionD, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(mathematicsquestion.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(mathematicsquestion.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(mathematicsquestion.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mathematicsquestion.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(mathematicsquestion.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(mathematicsquestion.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(mathematicsquestion.FieldDifficultyLevel, field.TypeString, value)
	}
	if _u.mutation.DifficultyLevelCleared() {
		_spec.ClearField(mathematicsquestion.FieldDifficultyLevel, field.TypeString)
	}
	_node = &MathematicsQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mathematicsquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
