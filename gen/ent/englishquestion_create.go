// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edtech-ng/question-bank/gen/ent/englishquestion"
	"github.com/google/uuid"
)

// EnglishQuestionCreate is the builder for creating a EnglishQuestion entity.
type EnglishQuestionCreate struct {
	config
	mutation *EnglishQuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQuestionNumber sets the "question_number" field.
func (_c *EnglishQuestionCreate) SetQuestionNumber(v string) *EnglishQuestionCreate {
	_c.mutation.SetQuestionNumber(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *EnglishQuestionCreate) SetQuestionText(v string) *EnglishQuestionCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetOptionA sets the "option_a" field.
func (_c *EnglishQuestionCreate) SetOptionA(v string) *EnglishQuestionCreate {
	_c.mutation.SetOptionA(v)
	return _c
}

// SetOptionB sets the "option_b" field.
func (_c *EnglishQuestionCreate) SetOptionB(v string) *EnglishQuestionCreate {
	_c.mutation.SetOptionB(v)
	return _c
}

// SetOptionC sets the "option_c" field.
func (_c *EnglishQuestionCreate) SetOptionC(v string) *EnglishQuestionCreate {
	_c.mutation.SetOptionC(v)
	return _c
}

// SetOptionD sets the "option_d" field.
func (_c *EnglishQuestionCreate) SetOptionD(v string) *EnglishQuestionCreate {
	_c.mutation.SetOptionD(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *EnglishQuestionCreate) SetCorrectAnswer(v string) *EnglishQuestionCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *EnglishQuestionCreate) SetQuestionType(v string) *EnglishQuestionCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *EnglishQuestionCreate) SetSource(v string) *EnglishQuestionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *EnglishQuestionCreate) SetNillableSource(v *string) *EnglishQuestionCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EnglishQuestionCreate) SetCreatedAt(v time.Time) *EnglishQuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EnglishQuestionCreate) SetNillableCreatedAt(v *time.Time) *EnglishQuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EnglishQuestionCreate) SetUpdatedAt(v time.Time) *EnglishQuestionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EnglishQuestionCreate) SetNillableUpdatedAt(v *time.Time) *EnglishQuestionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EnglishQuestionCreate) SetID(v uuid.UUID) *EnglishQuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EnglishQuestionCreate) SetNillableID(v *uuid.UUID) *EnglishQuestionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the EnglishQuestionMutation object of the builder.
func (_c *EnglishQuestionCreate) Mutation() *EnglishQuestionMutation {
	return _c.mutation
}

// Save creates the EnglishQuestion in the database.
func (_c *EnglishQuestionCreate) Save(ctx context.Context) (*EnglishQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EnglishQuestionCreate) SaveX(ctx context.Context) *EnglishQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnglishQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnglishQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EnglishQuestionCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := englishquestion.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := englishquestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := englishquestion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := englishquestion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EnglishQuestionCreate) check() error {
	if _, ok := _c.mutation.QuestionNumber(); !ok {
		return &ValidationError{Name: "question_number", err: errors.New(`ent: missing required field "EnglishQuestion.question_number"`)}
	}
	if v, ok := _c.mutation.QuestionNumber(); ok {
		if err := englishquestion.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.question_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "EnglishQuestion.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := englishquestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionA(); !ok {
		return &ValidationError{Name: "option_a", err: errors.New(`ent: missing required field "EnglishQuestion.option_a"`)}
	}
	if v, ok := _c.mutation.OptionA(); ok {
		if err := englishquestion.OptionAValidator(v); err != nil {
			return &ValidationError{Name: "option_a", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.option_a": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionB(); !ok {
		return &ValidationError{Name: "option_b", err: errors.New(`ent: missing required field "EnglishQuestion.option_b"`)}
	}
	if v, ok := _c.mutation.OptionB(); ok {
		if err := englishquestion.OptionBValidator(v); err != nil {
			return &ValidationError{Name: "option_b", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.option_b": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionC(); !ok {
		return &ValidationError{Name: "option_c", err: errors.New(`ent: missing required field "EnglishQuestion.option_c"`)}
	}
	if v, ok := _c.mutation.OptionC(); ok {
		if err := englishquestion.OptionCValidator(v); err != nil {
			return &ValidationError{Name: "option_c", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.option_c": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionD(); !ok {
		return &ValidationError{Name: "option_d", err: errors.New(`ent: missing required field "EnglishQuestion.option_d"`)}
	}
	if v, ok := _c.mutation.OptionD(); ok {
		if err := englishquestion.OptionDValidator(v); err != nil {
			return &ValidationError{Name: "option_d", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.option_d": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "EnglishQuestion.correct_answer"`)}
	}
	if v, ok := _c.mutation.CorrectAnswer(); ok {
		if err := englishquestion.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.correct_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "EnglishQuestion.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := englishquestion.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "EnglishQuestion.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "EnglishQuestion.source"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EnglishQuestion.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EnglishQuestion.updated_at"`)}
	}
	return nil
}

func (_c *EnglishQuestionCreate) sqlSave(ctx context.Context) (*EnglishQuestion, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EnglishQuestionCreate) createSpec() (*EnglishQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &EnglishQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(englishquestion.Table, sqlgraph.NewFieldSpec(englishquestion.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.QuestionNumber(); ok {
		_spec.SetField(englishquestion.FieldQuestionNumber, field.TypeString, value)
		_node.QuestionNumber = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(englishquestion.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.OptionA(); ok {
		_spec.SetField(englishquestion.FieldOptionA, field.TypeString, value)
		_node.OptionA = value
	}
	if value, ok := _c.mutation.OptionB(); ok {
		_spec.SetField(englishquestion.FieldOptionB, field.TypeString, value)
		_node.OptionB = value
	}
	if value, ok := _c.mutation.OptionC(); ok {
		_spec.SetField(englishquestion.FieldOptionC, field.TypeString, value)
		_node.OptionC = value
	}
	if value, ok := _c.mutation.OptionD(); ok {
		_spec.SetField(englishquestion.FieldOptionD, field.TypeString, value)
		_node.OptionD = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(englishquestion.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(englishquestion.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(englishquestion.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(englishquestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(englishquestion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EnglishQuestion.Create().
//		SetQuestionNumber(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EnglishQuestionUpsert) {
//			SetQuestionNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *EnglishQuestionCreate) OnConflict(opts ...sql.ConflictOption) *EnglishQuestionUpsertOne {
	_c.conflict = opts
	return &EnglishQuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EnglishQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EnglishQuestionCreate) OnConflictColumns(columns ...string) *EnglishQuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EnglishQuestionUpsertOne{
		create: _c,
	}
}

type (
	// EnglishQuestionUpsertOne is the builder for "upsert"-ing
	//  one EnglishQuestion node.
	EnglishQuestionUpsertOne struct {
		create *EnglishQuestionCreate
	}

	// EnglishQuestionUpsert is the "OnConflict" setter.
	EnglishQuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetQuestionNumber sets the "question_number" field.
func (u *EnglishQuestionUpsert) SetQuestionNumber(v string) *EnglishQuestionUpsert {
	u.Set(englishquestion.FieldQuestionNumber, v)
	return u
}

// UpdateQuestionNumber sets the "question_number" field to the value that was provided on create.
func (u *EnglishQuestionUpsert) UpdateQuestionNumber() *EnglishQuestionUpsert {
	u.SetExcluded(englishquestion.FieldQuestionNumber)
	return u
}

// SetQuestionText sets the "question_text" field.
func (u *EnglishQuestionUpsert) SetQuestionText(v string) *EnglishQuestionUpsert {
	u.Set(englishquestion.FieldQuestionText, v)
	return u
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *EnglishQuestionUpsert) UpdateQuestionText() *EnglishQuestionUpsert {
	u.SetExcluded(englishquestion.FieldQuestionText)
	return u
}

// SetOptionA sets the "option_a" field.
func (u *EnglishQuestionUpsert) SetOptionA(v string) *EnglishQuestionUpsert {
	u.Set(englishquestion.FieldOptionA, v)
	return u
}

// UpdateOptionA sets the "option_a" field to the value that was provided on create.
func (u *EnglishQuestionUpsert) UpdateOptionA() *EnglishQuestionUpsert {
	u.SetExcluded(englishquestion.FieldOptionA)
	return u
}

// SetOptionB sets the "option_b" field.
func (u *EnglishQuestionUpsert) SetOptionB(v string) *EnglishQuestionUpsert {
	u.Set(englishquestion.FieldOptionB, v)
	return u
}

// UpdateOptionB sets the "option_b" field to the value that was provided on create.
func (u *EnglishQuestionUpsert) UpdateOptionB() *EnglishQuestionUpsert {
	u.SetExcluded(englishquestion.FieldOptionB)
	return u
}

// SetOptionC sets the "option_c" field.
func (u *EnglishQuestionUpsert) SetOptionC(v string) *EnglishQuestionUpsert {
	u.Set(englishquestion.FieldOptionC, v)
	return u
}

// UpdateOptionC sets the "option_c" field to the value that was provided on create.
func (u *EnglishQuestionUpsert) UpdateOptionC() *EnglishQuestionUpsert {
	u.SetExcluded(englishquestion.FieldOptionC)
	return u
}

// SetOptionD sets the "option_d" field.
func (u *EnglishQuestionUpsert) SetOptionD(v string) *EnglishQuestionUpsert {
	u.Set(englishquestion.FieldOptionD, v)
	return u
}

// UpdateOptionD sets the "option_d" field to the value that was provided on create.
func (u *EnglishQuestionUpsert) UpdateOptionD() *EnglishQuestionUpsert {
	u.SetExcluded(englishquestion.FieldOptionD)
	return u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *EnglishQuestionUpsert) SetCorrectAnswer(v string) *EnglishQuestionUpsert {
	u.Set(englishquestion.FieldCorrectAnswer, v)
	return u
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *EnglishQuestionUpsert) UpdateCorrectAnswer() *EnglishQuestionUpsert {
	u.SetExcluded(englishquestion.FieldCorrectAnswer)
	return u
}

// SetQuestionType sets the "question_type" field.
func (u *EnglishQuestionUpsert) SetQuestionType(v string) *EnglishQuestionUpsert {
	u.Set(englishquestion.FieldQuestionType, v)
	return u
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *EnglishQuestionUpsert) UpdateQuestionType() *EnglishQuestionUpsert {
	u.SetExcluded(englishquestion.FieldQuestionType)
	return u
}

// SetSource sets the "source" field.
func (u *EnglishQuestionUpsert) SetSource(v string) *EnglishQuestionUpsert {
	u.Set(englishquestion.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *EnglishQuestionUpsert) UpdateSource() *EnglishQuestionUpsert {
	u.SetExcluded(englishquestion.FieldSource)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EnglishQuestionUpsert) SetUpdatedAt(v time.Time) *EnglishQuestionUpsert {
	u.Set(englishquestion.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EnglishQuestionUpsert) UpdateUpdatedAt() *EnglishQuestionUpsert {
	u.SetExcluded(englishquestion.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EnglishQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(englishquestion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EnglishQuestionUpsertOne) UpdateNewValues() *EnglishQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(englishquestion.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(englishquestion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EnglishQuestion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EnglishQuestionUpsertOne) Ignore() *EnglishQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EnglishQuestionUpsertOne) DoNothing() *EnglishQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EnglishQuestionCreate.OnConflict
// documentation for more info.
func (u *EnglishQuestionUpsertOne) Update(set func(*EnglishQuestionUpsert)) *EnglishQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EnglishQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionNumber sets the "question_number" field.
func (u *EnglishQuestionUpsertOne) SetQuestionNumber(v string) *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetQuestionNumber(v)
	})
}

// UpdateQuestionNumber sets the "question_number" field to the value that was provided on create.
func (u *EnglishQuestionUpsertOne) UpdateQuestionNumber() *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateQuestionNumber()
	})
}

// SetQuestionText sets the "question_text" field.
func (u *EnglishQuestionUpsertOne) SetQuestionText(v string) *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetQuestionText(v)
	})
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *EnglishQuestionUpsertOne) UpdateQuestionText() *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateQuestionText()
	})
}

// SetOptionA sets the "option_a" field.
func (u *EnglishQuestionUpsertOne) SetOptionA(v string) *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetOptionA(v)
	})
}

// UpdateOptionA sets the "option_a" field to the value that was provided on create.
func (u *EnglishQuestionUpsertOne) UpdateOptionA() *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateOptionA()
	})
}

// SetOptionB sets the "option_b" field.
func (u *EnglishQuestionUpsertOne) SetOptionB(v string) *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetOptionB(v)
	})
}

// UpdateOptionB sets the "option_b" field to the value that was provided on create.
func (u *EnglishQuestionUpsertOne) UpdateOptionB() *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateOptionB()
	})
}

// SetOptionC sets the "option_c" field.
func (u *EnglishQuestionUpsertOne) SetOptionC(v string) *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetOptionC(v)
	})
}

// UpdateOptionC sets the "option_c" field to the value that was provided on create.
func (u *EnglishQuestionUpsertOne) UpdateOptionC() *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateOptionC()
	})
}

// SetOptionD sets the "option_d" field.
func (u *EnglishQuestionUpsertOne) SetOptionD(v string) *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetOptionD(v)
	})
}

// UpdateOptionD sets the "option_d" field to the value that was provided on create.
func (u *EnglishQuestionUpsertOne) UpdateOptionD() *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateOptionD()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *EnglishQuestionUpsertOne) SetCorrectAnswer(v string) *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *EnglishQuestionUpsertOne) UpdateCorrectAnswer() *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// SetQuestionType sets the "question_type" field.
func (u *EnglishQuestionUpsertOne) SetQuestionType(v string) *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetQuestionType(v)
	})
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *EnglishQuestionUpsertOne) UpdateQuestionType() *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateQuestionType()
	})
}

// SetSource sets the "source" field.
func (u *EnglishQuestionUpsertOne) SetSource(v string) *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *EnglishQuestionUpsertOne) UpdateSource() *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateSource()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EnglishQuestionUpsertOne) SetUpdatedAt(v time.Time) *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EnglishQuestionUpsertOne) UpdateUpdatedAt() *EnglishQuestionUpsertOne {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EnglishQuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EnglishQuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EnglishQuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EnglishQuestionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EnglishQuestionUpsertOne.ID is not supported by MySQL driver. Use EnglishQuestionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EnglishQuestionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EnglishQuestionCreateBulk is the builder for creating many EnglishQuestion entities in bulk.
type EnglishQuestionCreateBulk struct {
	config
	err      error
	builders []*EnglishQuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the EnglishQuestion entities in the database.
func (_c *EnglishQuestionCreateBulk) Save(ctx context.Context) ([]*EnglishQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EnglishQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EnglishQuestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EnglishQuestionCreateBulk) SaveX(ctx context.Context) []*EnglishQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnglishQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnglishQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EnglishQuestion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EnglishQuestionUpsert) {
//			SetQuestionNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *EnglishQuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *EnglishQuestionUpsertBulk {
	_c.conflict = opts
	return &EnglishQuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EnglishQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EnglishQuestionCreateBulk) OnConflictColumns(columns ...string) *EnglishQuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EnglishQuestionUpsertBulk{
		create: _c,
	}
}

// EnglishQuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of EnglishQuestion nodes.
type EnglishQuestionUpsertBulk struct {
	create *EnglishQuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EnglishQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(englishquestion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EnglishQuestionUpsertBulk) UpdateNewValues() *EnglishQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(englishquestion.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(englishquestion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EnglishQuestion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EnglishQuestionUpsertBulk) Ignore() *EnglishQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EnglishQuestionUpsertBulk) DoNothing() *EnglishQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EnglishQuestionCreateBulk.OnConflict
// documentation for more info.
func (u *EnglishQuestionUpsertBulk) Update(set func(*EnglishQuestionUpsert)) *EnglishQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EnglishQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionNumber sets the "question_number" field.
func (u *EnglishQuestionUpsertBulk) SetQuestionNumber(v string) *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetQuestionNumber(v)
	})
}

// UpdateQuestionNumber sets the "question_number" field to the value that was provided on create.
func (u *EnglishQuestionUpsertBulk) UpdateQuestionNumber() *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateQuestionNumber()
	})
}

// SetQuestionText sets the "question_text" field.
func (u *EnglishQuestionUpsertBulk) SetQuestionText(v string) *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetQuestionText(v)
	})
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *EnglishQuestionUpsertBulk) UpdateQuestionText() *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateQuestionText()
	})
}

// SetOptionA sets the "option_a" field.
func (u *EnglishQuestionUpsertBulk) SetOptionA(v string) *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetOptionA(v)
	})
}

// UpdateOptionA sets the "option_a" field to the value that was provided on create.
func (u *EnglishQuestionUpsertBulk) UpdateOptionA() *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateOptionA()
	})
}

// SetOptionB sets the "option_b" field.
func (u *EnglishQuestionUpsertBulk) SetOptionB(v string) *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetOptionB(v)
	})
}

// UpdateOptionB sets the "option_b" field to the value that was provided on create.
func (u *EnglishQuestionUpsertBulk) UpdateOptionB() *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateOptionB()
	})
}

// SetOptionC sets the "option_c" field.
func (u *EnglishQuestionUpsertBulk) SetOptionC(v string) *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetOptionC(v)
	})
}

// UpdateOptionC sets the "option_c" field to the value that was provided on create.
func (u *EnglishQuestionUpsertBulk) UpdateOptionC() *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateOptionC()
	})
}

// SetOptionD sets the "option_d" field.
func (u *EnglishQuestionUpsertBulk) SetOptionD(v string) *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetOptionD(v)
	})
}

// UpdateOptionD sets the "option_d" field to the value that was provided on create.
func (u *EnglishQuestionUpsertBulk) UpdateOptionD() *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateOptionD()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *EnglishQuestionUpsertBulk) SetCorrectAnswer(v string) *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *EnglishQuestionUpsertBulk) UpdateCorrectAnswer() *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// SetQuestionType sets the "question_type" field.
func (u *EnglishQuestionUpsertBulk) SetQuestionType(v string) *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetQuestionType(v)
	})
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *EnglishQuestionUpsertBulk) UpdateQuestionType() *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateQuestionType()
	})
}

// SetSource sets the "source" field.
func (u *EnglishQuestionUpsertBulk) SetSource(v string) *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *EnglishQuestionUpsertBulk) UpdateSource() *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateSource()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EnglishQuestionUpsertBulk) SetUpdatedAt(v time.Time) *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EnglishQuestionUpsertBulk) UpdateUpdatedAt() *EnglishQuestionUpsertBulk {
	return u.Update(func(s *EnglishQuestionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EnglishQuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EnglishQuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EnglishQuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EnglishQuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
