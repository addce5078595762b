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
	"github.com/edtech-ng/question-bank/gen/ent/generalknowledgequestion"
	"github.com/google/uuid"
)

// GeneralKnowledgeQuestionCreate is the builder for creating a GeneralKnowledgeQuestion entity.
type GeneralKnowledgeQuestionCreate struct {
	config
	mutation *GeneralKnowledgeQuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQuestionNumber sets the "question_number" field.
func (_c *GeneralKnowledgeQuestionCreate) SetQuestionNumber(v string) *GeneralKnowledgeQuestionCreate {
	_c.mutation.SetQuestionNumber(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *GeneralKnowledgeQuestionCreate) SetQuestionText(v string) *GeneralKnowledgeQuestionCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetOptionA sets the "option_a" field.
func (_c *GeneralKnowledgeQuestionCreate) SetOptionA(v string) *GeneralKnowledgeQuestionCreate {
	_c.mutation.SetOptionA(v)
	return _c
}

// SetOptionB sets the "option_b" field.
func (_c *GeneralKnowledgeQuestionCreate) SetOptionB(v string) *GeneralKnowledgeQuestionCreate {
	_c.mutation.SetOptionB(v)
	return _c
}

// SetOptionC sets the "option_c" field.
func (_c *GeneralKnowledgeQuestionCreate) SetOptionC(v string) *GeneralKnowledgeQuestionCreate {
	_c.mutation.SetOptionC(v)
	return _c
}

// SetOptionD sets the "option_d" field.
func (_c *GeneralKnowledgeQuestionCreate) SetOptionD(v string) *GeneralKnowledgeQuestionCreate {
	_c.mutation.SetOptionD(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *GeneralKnowledgeQuestionCreate) SetCorrectAnswer(v string) *GeneralKnowledgeQuestionCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *GeneralKnowledgeQuestionCreate) SetQuestionType(v string) *GeneralKnowledgeQuestionCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *GeneralKnowledgeQuestionCreate) SetSource(v string) *GeneralKnowledgeQuestionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *GeneralKnowledgeQuestionCreate) SetNillableSource(v *string) *GeneralKnowledgeQuestionCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GeneralKnowledgeQuestionCreate) SetCreatedAt(v time.Time) *GeneralKnowledgeQuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GeneralKnowledgeQuestionCreate) SetNillableCreatedAt(v *time.Time) *GeneralKnowledgeQuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GeneralKnowledgeQuestionCreate) SetUpdatedAt(v time.Time) *GeneralKnowledgeQuestionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GeneralKnowledgeQuestionCreate) SetNillableUpdatedAt(v *time.Time) *GeneralKnowledgeQuestionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *GeneralKnowledgeQuestionCreate) SetCategory(v string) *GeneralKnowledgeQuestionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *GeneralKnowledgeQuestionCreate) SetNillableCategory(v *string) *GeneralKnowledgeQuestionCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_c *GeneralKnowledgeQuestionCreate) SetDifficultyLevel(v string) *GeneralKnowledgeQuestionCreate {
	_c.mutation.SetDifficultyLevel(v)
	return _c
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_c *GeneralKnowledgeQuestionCreate) SetNillableDifficultyLevel(v *string) *GeneralKnowledgeQuestionCreate {
	if v != nil {
		_c.SetDifficultyLevel(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GeneralKnowledgeQuestionCreate) SetID(v uuid.UUID) *GeneralKnowledgeQuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GeneralKnowledgeQuestionCreate) SetNillableID(v *uuid.UUID) *GeneralKnowledgeQuestionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the GeneralKnowledgeQuestionMutation object of the builder.
func (_c *GeneralKnowledgeQuestionCreate) Mutation() *GeneralKnowledgeQuestionMutation {
	return _c.mutation
}

// Save creates the GeneralKnowledgeQuestion in the database.
func (_c *GeneralKnowledgeQuestionCreate) Save(ctx context.Context) (*GeneralKnowledgeQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GeneralKnowledgeQuestionCreate) SaveX(ctx context.Context) *GeneralKnowledgeQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneralKnowledgeQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneralKnowledgeQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GeneralKnowledgeQuestionCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := generalknowledgequestion.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := generalknowledgequestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := generalknowledgequestion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := generalknowledgequestion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GeneralKnowledgeQuestionCreate) check() error {
	if _, ok := _c.mutation.QuestionNumber(); !ok {
		return &ValidationError{Name: "question_number", err: errors.New(`ent: missing required field "GeneralKnowledgeQuestion.question_number"`)}
	}
	if v, ok := _c.mutation.QuestionNumber(); ok {
		if err := generalknowledgequestion.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.question_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "GeneralKnowledgeQuestion.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := generalknowledgequestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionA(); !ok {
		return &ValidationError{Name: "option_a", err: errors.New(`ent: missing required field "GeneralKnowledgeQuestion.option_a"`)}
	}
	if v, ok := _c.mutation.OptionA(); ok {
		if err := generalknowledgequestion.OptionAValidator(v); err != nil {
			return &ValidationError{Name: "option_a", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.option_a": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionB(); !ok {
		return &ValidationError{Name: "option_b", err: errors.New(`ent: missing required field "GeneralKnowledgeQuestion.option_b"`)}
	}
	if v, ok := _c.mutation.OptionB(); ok {
		if err := generalknowledgequestion.OptionBValidator(v); err != nil {
			return &ValidationError{Name: "option_b", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.option_b": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionC(); !ok {
		return &ValidationError{Name: "option_c", err: errors.New(`ent: missing required field "GeneralKnowledgeQuestion.option_c"`)}
	}
	if v, ok := _c.mutation.OptionC(); ok {
		if err := generalknowledgequestion.OptionCValidator(v); err != nil {
			return &ValidationError{Name: "option_c", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.option_c": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionD(); !ok {
		return &ValidationError{Name: "option_d", err: errors.New(`ent: missing required field "GeneralKnowledgeQuestion.option_d"`)}
	}
	if v, ok := _c.mutation.OptionD(); ok {
		if err := generalknowledgequestion.OptionDValidator(v); err != nil {
			return &ValidationError{Name: "option_d", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.option_d": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "GeneralKnowledgeQuestion.correct_answer"`)}
	}
	if v, ok := _c.mutation.CorrectAnswer(); ok {
		if err := generalknowledgequestion.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.correct_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "GeneralKnowledgeQuestion.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := generalknowledgequestion.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "GeneralKnowledgeQuestion.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "GeneralKnowledgeQuestion.source"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GeneralKnowledgeQuestion.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GeneralKnowledgeQuestion.updated_at"`)}
	}
	return nil
}

func (_c *GeneralKnowledgeQuestionCreate) sqlSave(ctx context.Context) (*GeneralKnowledgeQuestion, error) {
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

func (_c *GeneralKnowledgeQuestionCreate) createSpec() (*GeneralKnowledgeQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &GeneralKnowledgeQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generalknowledgequestion.Table, sqlgraph.NewFieldSpec(generalknowledgequestion.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.QuestionNumber(); ok {
		_spec.SetField(generalknowledgequestion.FieldQuestionNumber, field.TypeString, value)
		_node.QuestionNumber = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(generalknowledgequestion.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.OptionA(); ok {
		_spec.SetField(generalknowledgequestion.FieldOptionA, field.TypeString, value)
		_node.OptionA = value
	}
	if value, ok := _c.mutation.OptionB(); ok {
		_spec.SetField(generalknowledgequestion.FieldOptionB, field.TypeString, value)
		_node.OptionB = value
	}
	if value, ok := _c.mutation.OptionC(); ok {
		_spec.SetField(generalknowledgequestion.FieldOptionC, field.TypeString, value)
		_node.OptionC = value
	}
	if value, ok := _c.mutation.OptionD(); ok {
		_spec.SetField(generalknowledgequestion.FieldOptionD, field.TypeString, value)
		_node.OptionD = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(generalknowledgequestion.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(generalknowledgequestion.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(generalknowledgequestion.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(generalknowledgequestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(generalknowledgequestion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(generalknowledgequestion.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.DifficultyLevel(); ok {
		_spec.SetField(generalknowledgequestion.FieldDifficultyLevel, field.TypeString, value)
		_node.DifficultyLevel = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GeneralKnowledgeQuestion.Create().
//		SetQuestionNumber(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GeneralKnowledgeQuestionUpsert) {
//			SetQuestionNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *GeneralKnowledgeQuestionCreate) OnConflict(opts ...sql.ConflictOption) *GeneralKnowledgeQuestionUpsertOne {
	_c.conflict = opts
	return &GeneralKnowledgeQuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GeneralKnowledgeQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GeneralKnowledgeQuestionCreate) OnConflictColumns(columns ...string) *GeneralKnowledgeQuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GeneralKnowledgeQuestionUpsertOne{
		create: _c,
	}
}

type (
	// GeneralKnowledgeQuestionUpsertOne is the builder for "upsert"-ing
	//  one GeneralKnowledgeQuestion node.
	GeneralKnowledgeQuestionUpsertOne struct {
		create *GeneralKnowledgeQuestionCreate
	}

	// GeneralKnowledgeQuestionUpsert is the "OnConflict" setter.
	GeneralKnowledgeQuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetQuestionNumber sets the "question_number" field.
func (u *GeneralKnowledgeQuestionUpsert) SetQuestionNumber(v string) *GeneralKnowledgeQuestionUpsert {
	u.Set(generalknowledgequestion.FieldQuestionNumber, v)
	return u
}

// UpdateQuestionNumber sets the "question_number" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsert) UpdateQuestionNumber() *GeneralKnowledgeQuestionUpsert {
	u.SetExcluded(generalknowledgequestion.FieldQuestionNumber)
	return u
}

// SetQuestionText sets the "question_text" field.
func (u *GeneralKnowledgeQuestionUpsert) SetQuestionText(v string) *GeneralKnowledgeQuestionUpsert {
	u.Set(generalknowledgequestion.FieldQuestionText, v)
	return u
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsert) UpdateQuestionText() *GeneralKnowledgeQuestionUpsert {
	u.SetExcluded(generalknowledgequestion.FieldQuestionText)
	return u
}

// SetOptionA sets the "option_a" field.
func (u *GeneralKnowledgeQuestionUpsert) SetOptionA(v string) *GeneralKnowledgeQuestionUpsert {
	u.Set(generalknowledgequestion.FieldOptionA, v)
	return u
}

// UpdateOptionA sets the "option_a" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsert) UpdateOptionA() *GeneralKnowledgeQuestionUpsert {
	u.SetExcluded(generalknowledgequestion.FieldOptionA)
	return u
}

// SetOptionB sets the "option_b" field.
func (u *GeneralKnowledgeQuestionUpsert) SetOptionB(v string) *GeneralKnowledgeQuestionUpsert {
	u.Set(generalknowledgequestion.FieldOptionB, v)
	return u
}

// UpdateOptionB sets the "option_b" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsert) UpdateOptionB() *GeneralKnowledgeQuestionUpsert {
	u.SetExcluded(generalknowledgequestion.FieldOptionB)
	return u
}

// SetOptionC sets the "option_c" field.
func (u *GeneralKnowledgeQuestionUpsert) SetOptionC(v string) *GeneralKnowledgeQuestionUpsert {
	u.Set(generalknowledgequestion.FieldOptionC, v)
	return u
}

// UpdateOptionC sets the "option_c" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsert) UpdateOptionC() *GeneralKnowledgeQuestionUpsert {
	u.SetExcluded(generalknowledgequestion.FieldOptionC)
	return u
}

// SetOptionD sets the "option_d" field.
func (u *GeneralKnowledgeQuestionUpsert) SetOptionD(v string) *GeneralKnowledgeQuestionUpsert {
	u.Set(generalknowledgequestion.FieldOptionD, v)
	return u
}

// UpdateOptionD sets the "option_d" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsert) UpdateOptionD() *GeneralKnowledgeQuestionUpsert {
	u.SetExcluded(generalknowledgequestion.FieldOptionD)
	return u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *GeneralKnowledgeQuestionUpsert) SetCorrectAnswer(v string) *GeneralKnowledgeQuestionUpsert {
	u.Set(generalknowledgequestion.FieldCorrectAnswer, v)
	return u
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsert) UpdateCorrectAnswer() *GeneralKnowledgeQuestionUpsert {
	u.SetExcluded(generalknowledgequestion.FieldCorrectAnswer)
	return u
}

// SetQuestionType sets the "question_type" field.
func (u *GeneralKnowledgeQuestionUpsert) SetQuestionType(v string) *GeneralKnowledgeQuestionUpsert {
	u.Set(generalknowledgequestion.FieldQuestionType, v)
	return u
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsert) UpdateQuestionType() *GeneralKnowledgeQuestionUpsert {
	u.SetExcluded(generalknowledgequestion.FieldQuestionType)
	return u
}

// SetSource sets the "source" field.
func (u *GeneralKnowledgeQuestionUpsert) SetSource(v string) *GeneralKnowledgeQuestionUpsert {
	u.Set(generalknowledgequestion.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsert) UpdateSource() *GeneralKnowledgeQuestionUpsert {
	u.SetExcluded(generalknowledgequestion.FieldSource)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GeneralKnowledgeQuestionUpsert) SetUpdatedAt(v time.Time) *GeneralKnowledgeQuestionUpsert {
	u.Set(generalknowledgequestion.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsert) UpdateUpdatedAt() *GeneralKnowledgeQuestionUpsert {
	u.SetExcluded(generalknowledgequestion.FieldUpdatedAt)
	return u
}

// SetCategory sets the "category" field.
func (u *GeneralKnowledgeQuestionUpsert) SetCategory(v string) *GeneralKnowledgeQuestionUpsert {
	u.Set(generalknowledgequestion.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsert) UpdateCategory() *GeneralKnowledgeQuestionUpsert {
	u.SetExcluded(generalknowledgequestion.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *GeneralKnowledgeQuestionUpsert) ClearCategory() *GeneralKnowledgeQuestionUpsert {
	u.SetNull(generalknowledgequestion.FieldCategory)
	return u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (u *GeneralKnowledgeQuestionUpsert) SetDifficultyLevel(v string) *GeneralKnowledgeQuestionUpsert {
	u.Set(generalknowledgequestion.FieldDifficultyLevel, v)
	return u
}

// UpdateDifficultyLevel sets the "difficulty_level" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsert) UpdateDifficultyLevel() *GeneralKnowledgeQuestionUpsert {
	u.SetExcluded(generalknowledgequestion.FieldDifficultyLevel)
	return u
}

// ClearDifficultyLevel clears the value of the "difficulty_level" field.
func (u *GeneralKnowledgeQuestionUpsert) ClearDifficultyLevel() *GeneralKnowledgeQuestionUpsert {
	u.SetNull(generalknowledgequestion.FieldDifficultyLevel)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GeneralKnowledgeQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(generalknowledgequestion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GeneralKnowledgeQuestionUpsertOne) UpdateNewValues() *GeneralKnowledgeQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(generalknowledgequestion.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(generalknowledgequestion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GeneralKnowledgeQuestion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GeneralKnowledgeQuestionUpsertOne) Ignore() *GeneralKnowledgeQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GeneralKnowledgeQuestionUpsertOne) DoNothing() *GeneralKnowledgeQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GeneralKnowledgeQuestionCreate.OnConflict
// documentation for more info.
func (u *GeneralKnowledgeQuestionUpsertOne) Update(set func(*GeneralKnowledgeQuestionUpsert)) *GeneralKnowledgeQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GeneralKnowledgeQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionNumber sets the "question_number" field.
func (u *GeneralKnowledgeQuestionUpsertOne) SetQuestionNumber(v string) *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetQuestionNumber(v)
	})
}

// UpdateQuestionNumber sets the "question_number" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertOne) UpdateQuestionNumber() *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateQuestionNumber()
	})
}

// SetQuestionText sets the "question_text" field.
func (u *GeneralKnowledgeQuestionUpsertOne) SetQuestionText(v string) *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetQuestionText(v)
	})
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertOne) UpdateQuestionText() *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateQuestionText()
	})
}

// SetOptionA sets the "option_a" field.
func (u *GeneralKnowledgeQuestionUpsertOne) SetOptionA(v string) *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetOptionA(v)
	})
}

// UpdateOptionA sets the "option_a" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertOne) UpdateOptionA() *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateOptionA()
	})
}

// SetOptionB sets the "option_b" field.
func (u *GeneralKnowledgeQuestionUpsertOne) SetOptionB(v string) *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetOptionB(v)
	})
}

// UpdateOptionB sets the "option_b" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertOne) UpdateOptionB() *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateOptionB()
	})
}

// SetOptionC sets the "option_c" field.
func (u *GeneralKnowledgeQuestionUpsertOne) SetOptionC(v string) *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetOptionC(v)
	})
}

// UpdateOptionC sets the "option_c" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertOne) UpdateOptionC() *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateOptionC()
	})
}

// SetOptionD sets the "option_d" field.
func (u *GeneralKnowledgeQuestionUpsertOne) SetOptionD(v string) *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetOptionD(v)
	})
}

// UpdateOptionD sets the "option_d" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertOne) UpdateOptionD() *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateOptionD()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *GeneralKnowledgeQuestionUpsertOne) SetCorrectAnswer(v string) *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertOne) UpdateCorrectAnswer() *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// SetQuestionType sets the "question_type" field.
func (u *GeneralKnowledgeQuestionUpsertOne) SetQuestionType(v string) *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetQuestionType(v)
	})
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertOne) UpdateQuestionType() *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateQuestionType()
	})
}

// SetSource sets the "source" field.
func (u *GeneralKnowledgeQuestionUpsertOne) SetSource(v string) *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertOne) UpdateSource() *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateSource()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GeneralKnowledgeQuestionUpsertOne) SetUpdatedAt(v time.Time) *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertOne) UpdateUpdatedAt() *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCategory sets the "category" field.
func (u *GeneralKnowledgeQuestionUpsertOne) SetCategory(v string) *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertOne) UpdateCategory() *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *GeneralKnowledgeQuestionUpsertOne) ClearCategory() *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.ClearCategory()
	})
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (u *GeneralKnowledgeQuestionUpsertOne) SetDifficultyLevel(v string) *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetDifficultyLevel(v)
	})
}

// UpdateDifficultyLevel sets the "difficulty_level" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertOne) UpdateDifficultyLevel() *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateDifficultyLevel()
	})
}

// ClearDifficultyLevel clears the value of the "difficulty_level" field.
func (u *GeneralKnowledgeQuestionUpsertOne) ClearDifficultyLevel() *GeneralKnowledgeQuestionUpsertOne {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.ClearDifficultyLevel()
	})
}

// Exec executes the query.
func (u *GeneralKnowledgeQuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GeneralKnowledgeQuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GeneralKnowledgeQuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GeneralKnowledgeQuestionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GeneralKnowledgeQuestionUpsertOne.ID is not supported by MySQL driver. Use GeneralKnowledgeQuestionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GeneralKnowledgeQuestionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GeneralKnowledgeQuestionCreateBulk is the builder for creating many GeneralKnowledgeQuestion entities in bulk.
type GeneralKnowledgeQuestionCreateBulk struct {
	config
	err      error
	builders []*GeneralKnowledgeQuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the GeneralKnowledgeQuestion entities in the database.
func (_c *GeneralKnowledgeQuestionCreateBulk) Save(ctx context.Context) ([]*GeneralKnowledgeQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GeneralKnowledgeQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GeneralKnowledgeQuestionMutation)
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
func (_c *GeneralKnowledgeQuestionCreateBulk) SaveX(ctx context.Context) []*GeneralKnowledgeQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneralKnowledgeQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneralKnowledgeQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GeneralKnowledgeQuestion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GeneralKnowledgeQuestionUpsert) {
//			SetQuestionNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *GeneralKnowledgeQuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *GeneralKnowledgeQuestionUpsertBulk {
	_c.conflict = opts
	return &GeneralKnowledgeQuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GeneralKnowledgeQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GeneralKnowledgeQuestionCreateBulk) OnConflictColumns(columns ...string) *GeneralKnowledgeQuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GeneralKnowledgeQuestionUpsertBulk{
		create: _c,
	}
}

// GeneralKnowledgeQuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of GeneralKnowledgeQuestion nodes.
type GeneralKnowledgeQuestionUpsertBulk struct {
	create *GeneralKnowledgeQuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GeneralKnowledgeQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(generalknowledgequestion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GeneralKnowledgeQuestionUpsertBulk) UpdateNewValues() *GeneralKnowledgeQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(generalknowledgequestion.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(generalknowledgequestion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GeneralKnowledgeQuestion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GeneralKnowledgeQuestionUpsertBulk) Ignore() *GeneralKnowledgeQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GeneralKnowledgeQuestionUpsertBulk) DoNothing() *GeneralKnowledgeQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GeneralKnowledgeQuestionCreateBulk.OnConflict
// documentation for more info.
func (u *GeneralKnowledgeQuestionUpsertBulk) Update(set func(*GeneralKnowledgeQuestionUpsert)) *GeneralKnowledgeQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GeneralKnowledgeQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionNumber sets the "question_number" field.
func (u *GeneralKnowledgeQuestionUpsertBulk) SetQuestionNumber(v string) *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetQuestionNumber(v)
	})
}

// UpdateQuestionNumber sets the "question_number" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertBulk) UpdateQuestionNumber() *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateQuestionNumber()
	})
}

// SetQuestionText sets the "question_text" field.
func (u *GeneralKnowledgeQuestionUpsertBulk) SetQuestionText(v string) *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetQuestionText(v)
	})
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertBulk) UpdateQuestionText() *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateQuestionText()
	})
}

// SetOptionA sets the "option_a" field.
func (u *GeneralKnowledgeQuestionUpsertBulk) SetOptionA(v string) *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetOptionA(v)
	})
}

// UpdateOptionA sets the "option_a" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertBulk) UpdateOptionA() *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateOptionA()
	})
}

// SetOptionB sets the "option_b" field.
func (u *GeneralKnowledgeQuestionUpsertBulk) SetOptionB(v string) *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetOptionB(v)
	})
}

// UpdateOptionB sets the "option_b" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertBulk) UpdateOptionB() *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateOptionB()
	})
}

// SetOptionC sets the "option_c" field.
func (u *GeneralKnowledgeQuestionUpsertBulk) SetOptionC(v string) *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetOptionC(v)
	})
}

// UpdateOptionC sets the "option_c" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertBulk) UpdateOptionC() *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateOptionC()
	})
}

// SetOptionD sets the "option_d" field.
func (u *GeneralKnowledgeQuestionUpsertBulk) SetOptionD(v string) *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetOptionD(v)
	})
}

// UpdateOptionD sets the "option_d" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertBulk) UpdateOptionD() *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateOptionD()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *GeneralKnowledgeQuestionUpsertBulk) SetCorrectAnswer(v string) *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertBulk) UpdateCorrectAnswer() *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// SetQuestionType sets the "question_type" field.
func (u *GeneralKnowledgeQuestionUpsertBulk) SetQuestionType(v string) *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetQuestionType(v)
	})
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertBulk) UpdateQuestionType() *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateQuestionType()
	})
}

// SetSource sets the "source" field.
func (u *GeneralKnowledgeQuestionUpsertBulk) SetSource(v string) *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertBulk) UpdateSource() *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateSource()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GeneralKnowledgeQuestionUpsertBulk) SetUpdatedAt(v time.Time) *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertBulk) UpdateUpdatedAt() *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCategory sets the "category" field.
func (u *GeneralKnowledgeQuestionUpsertBulk) SetCategory(v string) *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertBulk) UpdateCategory() *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *GeneralKnowledgeQuestionUpsertBulk) ClearCategory() *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.ClearCategory()
	})
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (u *GeneralKnowledgeQuestionUpsertBulk) SetDifficultyLevel(v string) *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.SetDifficultyLevel(v)
	})
}

// UpdateDifficultyLevel sets the "difficulty_level" field to the value that was provided on create.
func (u *GeneralKnowledgeQuestionUpsertBulk) UpdateDifficultyLevel() *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.UpdateDifficultyLevel()
	})
}

// ClearDifficultyLevel clears the value of the "difficulty_level" field.
func (u *GeneralKnowledgeQuestionUpsertBulk) ClearDifficultyLevel() *GeneralKnowledgeQuestionUpsertBulk {
	return u.Update(func(s *GeneralKnowledgeQuestionUpsert) {
		s.ClearDifficultyLevel()
	})
}

// Exec executes the query.
func (u *GeneralKnowledgeQuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GeneralKnowledgeQuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GeneralKnowledgeQuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GeneralKnowledgeQuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
