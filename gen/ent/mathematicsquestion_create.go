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
	"github.com/edtech-ng/question-bank/gen/ent/mathematicsquestion"
	"github.com/google/uuid"
)

// MathematicsQuestionCreate is the builder for creating a MathematicsQuestion entity.
type MathematicsQuestionCreate struct {
	config
	mutation *MathematicsQuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQuestionNumber sets the "question_number" field.
func (_c *MathematicsQuestionCreate) SetQuestionNumber(v string) *MathematicsQuestionCreate {
	_c.mutation.SetQuestionNumber(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *MathematicsQuestionCreate) SetQuestionText(v string) *MathematicsQuestionCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetOptionA sets the "option_a" field.
func (_c *MathematicsQuestionCreate) SetOptionA(v string) *MathematicsQuestionCreate {
	_c.mutation.SetOptionA(v)
	return _c
}

// SetOptionB sets the "option_b" field.
func (_c *MathematicsQuestionCreate) SetOptionB(v string) *MathematicsQuestionCreate {
	_c.mutation.SetOptionB(v)
	return _c
}

// SetOptionC sets the "option_c" field.
func (_c *MathematicsQuestionCreate) SetOptionC(v string) *MathematicsQuestionCreate {
	_c.mutation.SetOptionC(v)
	return _c
}

// SetOptionD sets the "option_d" field.
func (_c *MathematicsQuestionCreate) SetOptionD(v string) *MathematicsQuestionCreate {
	_c.mutation.SetOptionD(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *MathematicsQuestionCreate) SetCorrectAnswer(v string) *MathematicsQuestionCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *MathematicsQuestionCreate) SetQuestionType(v string) *MathematicsQuestionCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *MathematicsQuestionCreate) SetSource(v string) *MathematicsQuestionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *MathematicsQuestionCreate) SetNillableSource(v *string) *MathematicsQuestionCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MathematicsQuestionCreate) SetCreatedAt(v time.Time) *MathematicsQuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MathematicsQuestionCreate) SetNillableCreatedAt(v *time.Time) *MathematicsQuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MathematicsQuestionCreate) SetUpdatedAt(v time.Time) *MathematicsQuestionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MathematicsQuestionCreate) SetNillableUpdatedAt(v *time.Time) *MathematicsQuestionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *MathematicsQuestionCreate) SetTopic(v string) *MathematicsQuestionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *MathematicsQuestionCreate) SetNillableTopic(v *string) *MathematicsQuestionCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_c *MathematicsQuestionCreate) SetDifficultyLevel(v string) *MathematicsQuestionCreate {
	_c.mutation.SetDifficultyLevel(v)
	return _c
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_c *MathematicsQuestionCreate) SetNillableDifficultyLevel(v *string) *MathematicsQuestionCreate {
	if v != nil {
		_c.SetDifficultyLevel(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MathematicsQuestionCreate) SetID(v uuid.UUID) *MathematicsQuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MathematicsQuestionCreate) SetNillableID(v *uuid.UUID) *MathematicsQuestionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MathematicsQuestionMutation object of the builder.
func (_c *MathematicsQuestionCreate) Mutation() *MathematicsQuestionMutation {
	return _c.mutation
}

// Save creates the MathematicsQuestion in the database.
func (_c *MathematicsQuestionCreate) Save(ctx context.Context) (*MathematicsQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MathematicsQuestionCreate) SaveX(ctx context.Context) *MathematicsQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MathematicsQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MathematicsQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MathematicsQuestionCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := mathematicsquestion.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mathematicsquestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mathematicsquestion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := mathematicsquestion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MathematicsQuestionCreate) check() error {
	if _, ok := _c.mutation.QuestionNumber(); !ok {
		return &ValidationError{Name: "question_number", err: errors.New(`ent: missing required field "MathematicsQuestion.question_number"`)}
	}
	if v, ok := _c.mutation.QuestionNumber(); ok {
		if err := mathematicsquestion.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.question_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "MathematicsQuestion.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := mathematicsquestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionA(); !ok {
		return &ValidationError{Name: "option_a", err: errors.New(`ent: missing required field "MathematicsQuestion.option_a"`)}
	}
	if v, ok := _c.mutation.OptionA(); ok {
		if err := mathematicsquestion.OptionAValidator(v); err != nil {
			return &ValidationError{Name: "option_a", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.option_a": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionB(); !ok {
		return &ValidationError{Name: "option_b", err: errors.New(`ent: missing required field "MathematicsQuestion.option_b"`)}
	}
	if v, ok := _c.mutation.OptionB(); ok {
		if err := mathematicsquestion.OptionBValidator(v); err != nil {
			return &ValidationError{Name: "option_b", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.option_b": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionC(); !ok {
		return &ValidationError{Name: "option_c", err: errors.New(`ent: missing required field "MathematicsQuestion.option_c"`)}
	}
	if v, ok := _c.mutation.OptionC(); ok {
		if err := mathematicsquestion.OptionCValidator(v); err != nil {
			return &ValidationError{Name: "option_c", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.option_c": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionD(); !ok {
		return &ValidationError{Name: "option_d", err: errors.New(`ent: missing required field "MathematicsQuestion.option_d"`)}
	}
	if v, ok := _c.mutation.OptionD(); ok {
		if err := mathematicsquestion.OptionDValidator(v); err != nil {
			return &ValidationError{Name: "option_d", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.option_d": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "MathematicsQuestion.correct_answer"`)}
	}
	if v, ok := _c.mutation.CorrectAnswer(); ok {
		if err := mathematicsquestion.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.correct_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "MathematicsQuestion.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := mathematicsquestion.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "MathematicsQuestion.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "MathematicsQuestion.source"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MathematicsQuestion.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MathematicsQuestion.updated_at"`)}
	}
	return nil
}

func (_c *MathematicsQuestionCreate) sqlSave(ctx context.Context) (*MathematicsQuestion, error) {
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

func (_c *MathematicsQuestionCreate) createSpec() (*MathematicsQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &MathematicsQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mathematicsquestion.Table, sqlgraph.NewFieldSpec(mathematicsquestion.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.QuestionNumber(); ok {
		_spec.SetField(mathematicsquestion.FieldQuestionNumber, field.TypeString, value)
		_node.QuestionNumber = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(mathematicsquestion.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.OptionA(); ok {
		_spec.SetField(mathematicsquestion.FieldOptionA, field.TypeString, value)
		_node.OptionA = value
	}
	if value, ok := _c.mutation.OptionB(); ok {
		_spec.SetField(mathematicsquestion.FieldOptionB, field.TypeString, value)
		_node.OptionB = value
	}
	if value, ok := _c.mutation.OptionC(); ok {
		_spec.SetField(mathematicsquestion.FieldOptionC, field.TypeString, value)
		_node.OptionC = value
	}
	if value, ok := _c.mutation.OptionD(); ok {
		_spec.SetField(mathematicsquestion.FieldOptionD, field.TypeString, value)
		_node.OptionD = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(mathematicsquestion.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(mathematicsquestion.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(mathematicsquestion.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mathematicsquestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mathematicsquestion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(mathematicsquestion.FieldTopic, field.TypeString, value)
		_node.Topic = &value
	}
	if value, ok := _c.mutation.DifficultyLevel(); ok {
		_spec.SetField(mathematicsquestion.FieldDifficultyLevel, field.TypeString, value)
		_node.DifficultyLevel = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MathematicsQuestion.Create().
//		SetQuestionNumber(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MathematicsQuestionUpsert) {
//			SetQuestionNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *MathematicsQuestionCreate) OnConflict(opts ...sql.ConflictOption) *MathematicsQuestionUpsertOne {
	_c.conflict = opts
	return &MathematicsQuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MathematicsQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MathematicsQuestionCreate) OnConflictColumns(columns ...string) *MathematicsQuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MathematicsQuestionUpsertOne{
		create: _c,
	}
}

type (
	// MathematicsQuestionUpsertOne is the builder for "upsert"-ing
	//  one MathematicsQuestion node.
	MathematicsQuestionUpsertOne struct {
		create *MathematicsQuestionCreate
	}

	// MathematicsQuestionUpsert is the "OnConflict" setter.
	MathematicsQuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetQuestionNumber sets the "question_number" field.
func (u *MathematicsQuestionUpsert) SetQuestionNumber(v string) *MathematicsQuestionUpsert {
	u.Set(mathematicsquestion.FieldQuestionNumber, v)
	return u
}

// UpdateQuestionNumber sets the "question_number" field to the value that was provided on create.
func (u *MathematicsQuestionUpsert) UpdateQuestionNumber() *MathematicsQuestionUpsert {
	u.SetExcluded(mathematicsquestion.FieldQuestionNumber)
	return u
}

// SetQuestionText sets the "question_text" field.
func (u *MathematicsQuestionUpsert) SetQuestionText(v string) *MathematicsQuestionUpsert {
	u.Set(mathematicsquestion.FieldQuestionText, v)
	return u
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *MathematicsQuestionUpsert) UpdateQuestionText() *MathematicsQuestionUpsert {
	u.SetExcluded(mathematicsquestion.FieldQuestionText)
	return u
}

// SetOptionA sets the "option_a" field.
func (u *MathematicsQuestionUpsert) SetOptionA(v string) *MathematicsQuestionUpsert {
	u.Set(mathematicsquestion.FieldOptionA, v)
	return u
}

// UpdateOptionA sets the "option_a" field to the value that was provided on create.
func (u *MathematicsQuestionUpsert) UpdateOptionA() *MathematicsQuestionUpsert {
	u.SetExcluded(mathematicsquestion.FieldOptionA)
	return u
}

// SetOptionB sets the "option_b" field.
func (u *MathematicsQuestionUpsert) SetOptionB(v string) *MathematicsQuestionUpsert {
	u.Set(mathematicsquestion.FieldOptionB, v)
	return u
}

// UpdateOptionB sets the "option_b" field to the value that was provided on create.
func (u *MathematicsQuestionUpsert) UpdateOptionB() *MathematicsQuestionUpsert {
	u.SetExcluded(mathematicsquestion.FieldOptionB)
	return u
}

// SetOptionC sets the "option_c" field.
func (u *MathematicsQuestionUpsert) SetOptionC(v string) *MathematicsQuestionUpsert {
	u.Set(mathematicsquestion.FieldOptionC, v)
	return u
}

// UpdateOptionC sets the "option_c" field to the value that was provided on create.
func (u *MathematicsQuestionUpsert) UpdateOptionC() *MathematicsQuestionUpsert {
	u.SetExcluded(mathematicsquestion.FieldOptionC)
	return u
}

// SetOptionD sets the "option_d" field.
func (u *MathematicsQuestionUpsert) SetOptionD(v string) *MathematicsQuestionUpsert {
	u.Set(mathematicsquestion.FieldOptionD, v)
	return u
}

// UpdateOptionD sets the "option_d" field to the value that was provided on create.
func (u *MathematicsQuestionUpsert) UpdateOptionD() *MathematicsQuestionUpsert {
	u.SetExcluded(mathematicsquestion.FieldOptionD)
	return u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *MathematicsQuestionUpsert) SetCorrectAnswer(v string) *MathematicsQuestionUpsert {
	u.Set(mathematicsquestion.FieldCorrectAnswer, v)
	return u
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *MathematicsQuestionUpsert) UpdateCorrectAnswer() *MathematicsQuestionUpsert {
	u.SetExcluded(mathematicsquestion.FieldCorrectAnswer)
	return u
}

// SetQuestionType sets the "question_type" field.
func (u *MathematicsQuestionUpsert) SetQuestionType(v string) *MathematicsQuestionUpsert {
	u.Set(mathematicsquestion.FieldQuestionType, v)
	return u
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *MathematicsQuestionUpsert) UpdateQuestionType() *MathematicsQuestionUpsert {
	u.SetExcluded(mathematicsquestion.FieldQuestionType)
	return u
}

// SetSource sets the "source" field.
func (u *MathematicsQuestionUpsert) SetSource(v string) *MathematicsQuestionUpsert {
	u.Set(mathematicsquestion.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *MathematicsQuestionUpsert) UpdateSource() *MathematicsQuestionUpsert {
	u.SetExcluded(mathematicsquestion.FieldSource)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MathematicsQuestionUpsert) SetUpdatedAt(v time.Time) *MathematicsQuestionUpsert {
	u.Set(mathematicsquestion.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MathematicsQuestionUpsert) UpdateUpdatedAt() *MathematicsQuestionUpsert {
	u.SetExcluded(mathematicsquestion.FieldUpdatedAt)
	return u
}

// SetTopic sets the "topic" field.
func (u *MathematicsQuestionUpsert) SetTopic(v string) *MathematicsQuestionUpsert {
	u.Set(mathematicsquestion.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *MathematicsQuestionUpsert) UpdateTopic() *MathematicsQuestionUpsert {
	u.SetExcluded(mathematicsquestion.FieldTopic)
	return u
}

// ClearTopic clears the value of the "topic" field.
func (u *MathematicsQuestionUpsert) ClearTopic() *MathematicsQuestionUpsert {
	u.SetNull(mathematicsquestion.FieldTopic)
	return u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (u *MathematicsQuestionUpsert) SetDifficultyLevel(v string) *MathematicsQuestionUpsert {
	u.Set(mathematicsquestion.FieldDifficultyLevel, v)
	return u
}

// UpdateDifficultyLevel sets the "difficulty_level" field to the value that was provided on create.
func (u *MathematicsQuestionUpsert) UpdateDifficultyLevel() *MathematicsQuestionUpsert {
	u.SetExcluded(mathematicsquestion.FieldDifficultyLevel)
	return u
}

// ClearDifficultyLevel clears the value of the "difficulty_level" field.
func (u *MathematicsQuestionUpsert) ClearDifficultyLevel() *MathematicsQuestionUpsert {
	u.SetNull(mathematicsquestion.FieldDifficultyLevel)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MathematicsQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mathematicsquestion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MathematicsQuestionUpsertOne) UpdateNewValues() *MathematicsQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mathematicsquestion.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(mathematicsquestion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MathematicsQuestion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MathematicsQuestionUpsertOne) Ignore() *MathematicsQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MathematicsQuestionUpsertOne) DoNothing() *MathematicsQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MathematicsQuestionCreate.OnConflict
// documentation for more info.
func (u *MathematicsQuestionUpsertOne) Update(set func(*MathematicsQuestionUpsert)) *MathematicsQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MathematicsQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionNumber sets the "question_number" field.
func (u *MathematicsQuestionUpsertOne) SetQuestionNumber(v string) *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetQuestionNumber(v)
	})
}

// UpdateQuestionNumber sets the "question_number" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertOne) UpdateQuestionNumber() *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateQuestionNumber()
	})
}

// SetQuestionText sets the "question_text" field.
func (u *MathematicsQuestionUpsertOne) SetQuestionText(v string) *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetQuestionText(v)
	})
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertOne) UpdateQuestionText() *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateQuestionText()
	})
}

// SetOptionA sets the "option_a" field.
func (u *MathematicsQuestionUpsertOne) SetOptionA(v string) *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetOptionA(v)
	})
}

// UpdateOptionA sets the "option_a" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertOne) UpdateOptionA() *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateOptionA()
	})
}

// SetOptionB sets the "option_b" field.
func (u *MathematicsQuestionUpsertOne) SetOptionB(v string) *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetOptionB(v)
	})
}

// UpdateOptionB sets the "option_b" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertOne) UpdateOptionB() *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateOptionB()
	})
}

// SetOptionC sets the "option_c" field.
func (u *MathematicsQuestionUpsertOne) SetOptionC(v string) *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetOptionC(v)
	})
}

// UpdateOptionC sets the "option_c" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertOne) UpdateOptionC() *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateOptionC()
	})
}

// SetOptionD sets the "option_d" field.
func (u *MathematicsQuestionUpsertOne) SetOptionD(v string) *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetOptionD(v)
	})
}

// UpdateOptionD sets the "option_d" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertOne) UpdateOptionD() *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateOptionD()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *MathematicsQuestionUpsertOne) SetCorrectAnswer(v string) *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertOne) UpdateCorrectAnswer() *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// SetQuestionType sets the "question_type" field.
func (u *MathematicsQuestionUpsertOne) SetQuestionType(v string) *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetQuestionType(v)
	})
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertOne) UpdateQuestionType() *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateQuestionType()
	})
}

// SetSource sets the "source" field.
func (u *MathematicsQuestionUpsertOne) SetSource(v string) *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertOne) UpdateSource() *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateSource()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MathematicsQuestionUpsertOne) SetUpdatedAt(v time.Time) *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertOne) UpdateUpdatedAt() *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTopic sets the "topic" field.
func (u *MathematicsQuestionUpsertOne) SetTopic(v string) *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertOne) UpdateTopic() *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateTopic()
	})
}

// ClearTopic clears the value of the "topic" field.
func (u *MathematicsQuestionUpsertOne) ClearTopic() *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.ClearTopic()
	})
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (u *MathematicsQuestionUpsertOne) SetDifficultyLevel(v string) *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetDifficultyLevel(v)
	})
}

// UpdateDifficultyLevel sets the "difficulty_level" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertOne) UpdateDifficultyLevel() *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateDifficultyLevel()
	})
}

// ClearDifficultyLevel clears the value of the "difficulty_level" field.
func (u *MathematicsQuestionUpsertOne) ClearDifficultyLevel() *MathematicsQuestionUpsertOne {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.ClearDifficultyLevel()
	})
}

// Exec executes the query.
func (u *MathematicsQuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MathematicsQuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MathematicsQuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MathematicsQuestionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MathematicsQuestionUpsertOne.ID is not supported by MySQL driver. Use MathematicsQuestionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MathematicsQuestionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MathematicsQuestionCreateBulk is the builder for creating many MathematicsQuestion entities in bulk.
type MathematicsQuestionCreateBulk struct {
	config
	err      error
	builders []*MathematicsQuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the MathematicsQuestion entities in the database.
func (_c *MathematicsQuestionCreateBulk) Save(ctx context.Context) ([]*MathematicsQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MathematicsQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MathematicsQuestionMutation)
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
func (_c *MathematicsQuestionCreateBulk) SaveX(ctx context.Context) []*MathematicsQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MathematicsQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MathematicsQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MathematicsQuestion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MathematicsQuestionUpsert) {
//			SetQuestionNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *MathematicsQuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *MathematicsQuestionUpsertBulk {
	_c.conflict = opts
	return &MathematicsQuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MathematicsQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MathematicsQuestionCreateBulk) OnConflictColumns(columns ...string) *MathematicsQuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MathematicsQuestionUpsertBulk{
		create: _c,
	}
}

// MathematicsQuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of MathematicsQuestion nodes.
type MathematicsQuestionUpsertBulk struct {
	create *MathematicsQuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MathematicsQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mathematicsquestion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MathematicsQuestionUpsertBulk) UpdateNewValues() *MathematicsQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mathematicsquestion.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(mathematicsquestion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MathematicsQuestion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MathematicsQuestionUpsertBulk) Ignore() *MathematicsQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MathematicsQuestionUpsertBulk) DoNothing() *MathematicsQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MathematicsQuestionCreateBulk.OnConflict
// documentation for more info.
func (u *MathematicsQuestionUpsertBulk) Update(set func(*MathematicsQuestionUpsert)) *MathematicsQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MathematicsQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionNumber sets the "question_number" field.
func (u *MathematicsQuestionUpsertBulk) SetQuestionNumber(v string) *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetQuestionNumber(v)
	})
}

// UpdateQuestionNumber sets the "question_number" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertBulk) UpdateQuestionNumber() *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateQuestionNumber()
	})
}

// SetQuestionText sets the "question_text" field.
func (u *MathematicsQuestionUpsertBulk) SetQuestionText(v string) *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetQuestionText(v)
	})
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertBulk) UpdateQuestionText() *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateQuestionText()
	})
}

// SetOptionA sets the "option_a" field.
func (u *MathematicsQuestionUpsertBulk) SetOptionA(v string) *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetOptionA(v)
	})
}

// UpdateOptionA sets the "option_a" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertBulk) UpdateOptionA() *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateOptionA()
	})
}

// SetOptionB sets the "option_b" field.
func (u *MathematicsQuestionUpsertBulk) SetOptionB(v string) *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetOptionB(v)
	})
}

// UpdateOptionB sets the "option_b" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertBulk) UpdateOptionB() *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateOptionB()
	})
}

// SetOptionC sets the "option_c" field.
func (u *MathematicsQuestionUpsertBulk) SetOptionC(v string) *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetOptionC(v)
	})
}

// UpdateOptionC sets the "option_c" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertBulk) UpdateOptionC() *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateOptionC()
	})
}

// SetOptionD sets the "option_d" field.
func (u *MathematicsQuestionUpsertBulk) SetOptionD(v string) *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetOptionD(v)
	})
}

// UpdateOptionD sets the "option_d" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertBulk) UpdateOptionD() *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateOptionD()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *MathematicsQuestionUpsertBulk) SetCorrectAnswer(v string) *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertBulk) UpdateCorrectAnswer() *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// SetQuestionType sets the "question_type" field.
func (u *MathematicsQuestionUpsertBulk) SetQuestionType(v string) *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetQuestionType(v)
	})
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertBulk) UpdateQuestionType() *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateQuestionType()
	})
}

// SetSource sets the "source" field.
func (u *MathematicsQuestionUpsertBulk) SetSource(v string) *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertBulk) UpdateSource() *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateSource()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MathematicsQuestionUpsertBulk) SetUpdatedAt(v time.Time) *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertBulk) UpdateUpdatedAt() *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTopic sets the "topic" field.
func (u *MathematicsQuestionUpsertBulk) SetTopic(v string) *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertBulk) UpdateTopic() *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateTopic()
	})
}

// ClearTopic clears the value of the "topic" field.
func (u *MathematicsQuestionUpsertBulk) ClearTopic() *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.ClearTopic()
	})
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (u *MathematicsQuestionUpsertBulk) SetDifficultyLevel(v string) *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.SetDifficultyLevel(v)
	})
}

// UpdateDifficultyLevel sets the "difficulty_level" field to the value that was provided on create.
func (u *MathematicsQuestionUpsertBulk) UpdateDifficultyLevel() *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.UpdateDifficultyLevel()
	})
}

// ClearDifficultyLevel clears the value of the "difficulty_level" field.
func (u *MathematicsQuestionUpsertBulk) ClearDifficultyLevel() *MathematicsQuestionUpsertBulk {
	return u.Update(func(s *MathematicsQuestionUpsert) {
		s.ClearDifficultyLevel()
	})
}

// Exec executes the query.
func (u *MathematicsQuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MathematicsQuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MathematicsQuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MathematicsQuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
