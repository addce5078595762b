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
	"github.com/edtech-ng/question-bank/gen/ent/englishquestion"
	"github.com/edtech-ng/question-bank/gen/ent/predicate"
)

// EnglishQuestionUpdate is the builder for updating EnglishQuestion entities.
type EnglishQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *EnglishQuestionMutation
}

// Where appends a list predicates to the EnglishQuestionUpdate builder.
func (_u *EnglishQuestionUpdate) Where(ps ...predicate.EnglishQuestion) *EnglishQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *EnglishQuestionUpdate) SetQuestionNumber(v string) *EnglishQuestionUpdate {
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *EnglishQuestionUpdate) SetNillableQuestionNumber(v *string) *EnglishQuestionUpdate {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *EnglishQuestionUpdate) SetQuestionText(v string) *EnglishQuestionUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *EnglishQuestionUpdate) SetNillableQuestionText(v *string) *EnglishQuestionUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetOptionA sets the "option_a" field.
func (_u *EnglishQuestionUpdate) SetOptionA(v string) *EnglishQuestionUpdate {
	_u.mutation.SetOptionA(v)
	return _u
}

// SetNillableOptionA sets the "option_a" field if the given value is not nil.
func (_u *EnglishQuestionUpdate) SetNillableOptionA(v *string) *EnglishQuestionUpdate {
	if v != nil {
		_u.SetOptionA(*v)
	}
	return _u
}

// SetOptionB sets the "option_b" field.
func (_u *EnglishQuestionUpdate) SetOptionB(v string) *EnglishQuestionUpdate {
	_u.mutation.SetOptionB(v)
	return _u
}

// SetNillableOptionB sets the "option_b" field if the given value is not nil.
func (_u *EnglishQuestionUpdate) SetNillableOptionB(v *string) *EnglishQuestionUpdate {
	if v != nil {
		_u.SetOptionB(*v)
	}
	return _u
}

// SetOptionC sets the "option_c" field.
func (_u *EnglishQuestionUpdate) SetOptionC(v string) *EnglishQuestionUpdate {
	_u.mutation.SetOptionC(v)
	return _u
}

// SetNillableOptionC sets the "option_c" field if the given value is not nil.
func (_u *EnglishQuestionUpdate) SetNillableOptionC(v *string) *EnglishQuestionUpdate {
	if v != nil {
		_u.SetOptionC(*v)
	}
	return _u
}

// SetOptionD sets the "option_d" field.
func (_u *EnglishQuestionUpdate) SetOptionD(v string) *EnglishQuestionUpdate {
	_u.mutation.SetOptionD(v)
	return _u
}

// SetNillableOptionD sets the "option_d" field if the given value is not nil.
func (_u *EnglishQuestionUpdate) SetNillableOptionD(v *string) *EnglishQuestionUpdate {
	if v != nil {
		_u.SetOptionD(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *EnglishQuestionUpdate) SetCorrectAnswer(v string) *EnglishQuestionUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *EnglishQuestionUpdate) SetNillableCorrectAnswer(v *string) *EnglishQuestionUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *EnglishQuestionUpdate) SetQuestionType(v string) *EnglishQuestionUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *EnglishQuestionUpdate) SetNillableQuestionType(v *string) *EnglishQuestionUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *EnglishQuestionUpdate) SetSource(v string) *EnglishQuestionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *EnglishQuestionUpdate) SetNillableSource(v *string) *EnglishQuestionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EnglishQuestionUpdate) SetUpdatedAt(v time.Time) *EnglishQuestionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EnglishQuestionMutation object of the builder.
func (_u *EnglishQuestionUpdate) Mutation() *EnglishQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnglishQuestionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnglishQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnglishQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnglishQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EnglishQuestionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := englishquestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnglishQuestionUpdate) check() error {
	if v, ok := _u.mutation.QuestionNumber(); ok {
		if err := englishquestion.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.question_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := englishquestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionA(); ok {
		if err := englishquestion.OptionAValidator(v); err != nil {
			return &ValidationError{Name: "option_a", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.option_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionB(); ok {
		if err := englishquestion.OptionBValidator(v); err != nil {
			return &ValidationError{Name: "option_b", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.option_b": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionC(); ok {
		if err := englishquestion.OptionCValidator(v); err != nil {
			return &ValidationError{Name: "option_c", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.option_c": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionD(); ok {
		if err := englishquestion.OptionDValidator(v); err != nil {
			return &ValidationError{Name: "option_d", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.option_d": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := englishquestion.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := englishquestion.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EnglishQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(englishquestion.Table, englishquestion.Columns, sqlgraph.NewFieldSpec(englishquestion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(englishquestion.FieldQuestionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(englishquestion.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionA(); ok {
		_spec.SetField(englishquestion.FieldOptionA, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionB(); ok {
		_spec.SetField(englishquestion.FieldOptionB, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionC(); ok {
		_spec.SetField(englishquestion.FieldOptionC, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionD(); ok {
		_spec.SetField(englishquestion.FieldOptionD, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(englishquestion.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(englishquestion.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(englishquestion.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(englishquestion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{englishquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnglishQuestionUpdateOne is the builder for updating a single EnglishQuestion entity.
type EnglishQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnglishQuestionMutation
}

// SetQuestionNumber sets the "question_number" field.
func (_u *EnglishQuestionUpdateOne) SetQuestionNumber(v string) *EnglishQuestionUpdateOne {
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *EnglishQuestionUpdateOne) SetNillableQuestionNumber(v *string) *EnglishQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *EnglishQuestionUpdateOne) SetQuestionText(v string) *EnglishQuestionUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *EnglishQuestionUpdateOne) SetNillableQuestionText(v *string) *EnglishQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetOptionA sets the "option_a" field.
func (_u *EnglishQuestionUpdateOne) SetOptionA(v string) *EnglishQuestionUpdateOne {
	_u.mutation.SetOptionA(v)
	return _u
}

// SetNillableOptionA sets the "option_a" field if the given value is not nil.
func (_u *EnglishQuestionUpdateOne) SetNillableOptionA(v *string) *EnglishQuestionUpdateOne {
	if v != nil {
		_u.SetOptionA(*v)
	}
	return _u
}

// SetOptionB sets the "option_b" field.
func (_u *EnglishQuestionUpdateOne) SetOptionB(v string) *EnglishQuestionUpdateOne {
	_u.mutation.SetOptionB(v)
	return _u
}

// SetNillableOptionB sets the "option_b" field if the given value is not nil.
func (_u *EnglishQuestionUpdateOne) SetNillableOptionB(v *string) *EnglishQuestionUpdateOne {
	if v != nil {
		_u.SetOptionB(*v)
	}
	return _u
}

// SetOptionC sets the "option_c" field.
func (_u *EnglishQuestionUpdateOne) SetOptionC(v string) *EnglishQuestionUpdateOne {
	_u.mutation.SetOptionC(v)
	return _u
}

// SetNillableOptionC sets the "option_c" field if the given value is not nil.
func (_u *EnglishQuestionUpdateOne) SetNillableOptionC(v *string) *EnglishQuestionUpdateOne {
	if v != nil {
		_u.SetOptionC(*v)
	}
	return _u
}

// SetOptionD sets the "option_d" field.
func (_u *EnglishQuestionUpdateOne) SetOptionD(v string) *EnglishQuestionUpdateOne {
	_u.mutation.SetOptionD(v)
	return _u
}

// SetNillableOptionD sets the "option_d" field if the given value is not nil.
func (_u *EnglishQuestionUpdateOne) SetNillableOptionD(v *string) *EnglishQuestionUpdateOne {
	if v != nil {
		_u.SetOptionD(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *EnglishQuestionUpdateOne) SetCorrectAnswer(v string) *EnglishQuestionUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *EnglishQuestionUpdateOne) SetNillableCorrectAnswer(v *string) *EnglishQuestionUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *EnglishQuestionUpdateOne) SetQuestionType(v string) *EnglishQuestionUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *EnglishQuestionUpdateOne) SetNillableQuestionType(v *string) *EnglishQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *EnglishQuestionUpdateOne) SetSource(v string) *EnglishQuestionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *EnglishQuestionUpdateOne) SetNillableSource(v *string) *EnglishQuestionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EnglishQuestionUpdateOne) SetUpdatedAt(v time.Time) *EnglishQuestionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EnglishQuestionMutation object of the builder.
func (_u *EnglishQuestionUpdateOne) Mutation() *EnglishQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the EnglishQuestionUpdate builder.
func (_u *EnglishQuestionUpdateOne) Where(ps ...predicate.EnglishQuestion) *EnglishQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnglishQuestionUpdateOne) Select(field string, fields ...string) *EnglishQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EnglishQuestion entity.
func (_u *EnglishQuestionUpdateOne) Save(ctx context.Context) (*EnglishQuestion, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnglishQuestionUpdateOne) SaveX(ctx context.Context) *EnglishQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnglishQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnglishQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EnglishQuestionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := englishquestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnglishQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionNumber(); ok {
		if err := englishquestion.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.question_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := englishquestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionA(); ok {
		if err := englishquestion.OptionAValidator(v); err != nil {
			return &ValidationError{Name: "option_a", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.option_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionB(); ok {
		if err := englishquestion.OptionBValidator(v); err != nil {
			return &ValidationError{Name: "option_b", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.option_b": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionC(); ok {
		if err := englishquestion.OptionCValidator(v); err != nil {
			return &ValidationError{Name: "option_c", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.option_c": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionD(); ok {
		if err := englishquestion.OptionDValidator(v); err != nil {
			return &ValidationError{Name: "option_d", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.option_d": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := englishquestion.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := englishquestion.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EnglishQuestionUpdateOne) sqlSave(ctx context.Context) (_node *EnglishQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(englishquestion.Table, englishquestion.Columns, sqlgraph.NewFieldSpec(englishquestion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EnglishQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, englishquestion.FieldID)
		for _, f := range fields {
			if !englishquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != englishquestion.FieldID {
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
		_spec.SetField(englishquestion.FieldQuestionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(englishquestion.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionA(); ok {
		_spec.SetField(englishquestion.FieldOptionA, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionB(); ok {
		_spec.SetField(englishquestion.FieldOptionB, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionC(); ok {
		_spec.SetField(englishquestion.FieldOptionC, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionD(); ok {
		_spec.SetField(englishquestion.FieldOptionD, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(englishquestion.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(englishquestion.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(englishquestion.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(englishquestion.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &EnglishQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{englishquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
