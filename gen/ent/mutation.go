// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/edtech-ng/question-bank/gen/ent/englishquestion"
	"github.com/edtech-ng/question-bank/gen/ent/generalknowledgequestion"
	"github.com/edtech-ng/question-bank/gen/ent/mathematicsquestion"
	"github.com/edtech-ng/question-bank/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEnglishQuestion          = "EnglishQuestion"
	TypeGeneralKnowledgeQuestion = "GeneralKnowledgeQuestion"
	TypeMathematicsQuestion      = "MathematicsQuestion"
)

// EnglishQuestionMutation represents an operation that mutates the EnglishQuestion nodes in the graph.
type EnglishQuestionMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	question_number *string
	question_text   *string
	option_a        *string
	option_b        *string
	option_c        *string
	option_d        *string
	correct_answer  *string
	question_type   *string
	source          *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*EnglishQuestion, error)
	predicates      []predicate.EnglishQuestion
}

var _ ent.Mutation = (*EnglishQuestionMutation)(nil)

// englishquestionOption allows management of the mutation configuration using functional options.
type englishquestionOption func(*EnglishQuestionMutation)

// newEnglishQuestionMutation creates new mutation for the EnglishQuestion entity.
func newEnglishQuestionMutation(c config, op Op, opts ...englishquestionOption) *EnglishQuestionMutation {
	m := &EnglishQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeEnglishQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEnglishQuestionID sets the ID field of the mutation.
func withEnglishQuestionID(id uuid.UUID) englishquestionOption {
	return func(m *EnglishQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *EnglishQuestion
		)
		m.oldValue = func(ctx context.Context) (*EnglishQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EnglishQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEnglishQuestion sets the old EnglishQuestion of the mutation.
func withEnglishQuestion(node *EnglishQuestion) englishquestionOption {
	return func(m *EnglishQuestionMutation) {
		m.oldValue = func(context.Context) (*EnglishQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EnglishQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EnglishQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EnglishQuestion entities.
func (m *EnglishQuestionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EnglishQuestionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EnglishQuestionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EnglishQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuestionNumber sets the "question_number" field.
func (m *EnglishQuestionMutation) SetQuestionNumber(s string) {
	m.question_number = &s
}

// QuestionNumber returns the value of the "question_number" field in the mutation.
func (m *EnglishQuestionMutation) QuestionNumber() (r string, exists bool) {
	v := m.question_number
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionNumber returns the old "question_number" field's value of the EnglishQuestion entity.
// If the EnglishQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnglishQuestionMutation) OldQuestionNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionNumber: %w", err)
	}
	return oldValue.QuestionNumber, nil
}

// ResetQuestionNumber resets all changes to the "question_number" field.
func (m *EnglishQuestionMutation) ResetQuestionNumber() {
	m.question_number = nil
}

// SetQuestionText sets the "question_text" field.
func (m *EnglishQuestionMutation) SetQuestionText(s string) {
	m.question_text = &s
}

// QuestionText returns the value of the "question_text" field in the mutation.
func (m *EnglishQuestionMutation) QuestionText() (r string, exists bool) {
	v := m.question_text
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionText returns the old "question_text" field's value of the EnglishQuestion entity.
// If the EnglishQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnglishQuestionMutation) OldQuestionText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionText: %w", err)
	}
	return oldValue.QuestionText, nil
}

// ResetQuestionText resets all changes to the "question_text" field.
func (m *EnglishQuestionMutation) ResetQuestionText() {
	m.question_text = nil
}

// SetOptionA sets the "option_a" field.
func (m *EnglishQuestionMutation) SetOptionA(s string) {
	m.option_a = &s
}

// OptionA returns the value of the "option_a" field in the mutation.
func (m *EnglishQuestionMutation) OptionA() (r string, exists bool) {
	v := m.option_a
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionA returns the old "option_a" field's value of the EnglishQuestion entity.
// If the EnglishQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnglishQuestionMutation) OldOptionA(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionA is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionA requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionA: %w", err)
	}
	return oldValue.OptionA, nil
}

// ResetOptionA resets all changes to the "option_a" field.
func (m *EnglishQuestionMutation) ResetOptionA() {
	m.option_a = nil
}

// SetOptionB sets the "option_b" field.
func (m *EnglishQuestionMutation) SetOptionB(s string) {
	m.option_b = &s
}

// OptionB returns the value of the "option_b" field in the mutation.
func (m *EnglishQuestionMutation) OptionB() (r string, exists bool) {
	v := m.option_b
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionB returns the old "option_b" field's value of the EnglishQuestion entity.
// If the EnglishQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnglishQuestionMutation) OldOptionB(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionB: %w", err)
	}
	return oldValue.OptionB, nil
}

// ResetOptionB resets all changes to the "option_b" field.
func (m *EnglishQuestionMutation) ResetOptionB() {
	m.option_b = nil
}

// SetOptionC sets the "option_c" field.
func (m *EnglishQuestionMutation) SetOptionC(s string) {
	m.option_c = &s
}

// OptionC returns the value of the "option_c" field in the mutation.
func (m *EnglishQuestionMutation) OptionC() (r string, exists bool) {
	v := m.option_c
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionC returns the old "option_c" field's value of the EnglishQuestion entity.
// If the EnglishQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnglishQuestionMutation) OldOptionC(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionC is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionC requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionC: %w", err)
	}
	return oldValue.OptionC, nil
}

// ResetOptionC resets all changes to the "option_c" field.
func (m *EnglishQuestionMutation) ResetOptionC() {
	m.option_c = nil
}

// SetOptionD sets the "option_d" field.
func (m *EnglishQuestionMutation) SetOptionD(s string) {
	m.option_d = &s
}

// OptionD returns the value of the "option_d" field in the mutation.
func (m *EnglishQuestionMutation) OptionD() (r string, exists bool) {
	v := m.option_d
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionD returns the old "option_d" field's value of the EnglishQuestion entity.
// If the EnglishQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnglishQuestionMutation) OldOptionD(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionD is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionD requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionD: %w", err)
	}
	return oldValue.OptionD, nil
}

// ResetOptionD resets all changes to the "option_d" field.
func (m *EnglishQuestionMutation) ResetOptionD() {
	m.option_d = nil
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *EnglishQuestionMutation) SetCorrectAnswer(s string) {
	m.correct_answer = &s
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *EnglishQuestionMutation) CorrectAnswer() (r string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the EnglishQuestion entity.
// If the EnglishQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnglishQuestionMutation) OldCorrectAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *EnglishQuestionMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
}

// SetQuestionType sets the "question_type" field.
func (m *EnglishQuestionMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *EnglishQuestionMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the EnglishQuestion entity.
// If the EnglishQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnglishQuestionMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *EnglishQuestionMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetSource sets the "source" field.
func (m *EnglishQuestionMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *EnglishQuestionMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the EnglishQuestion entity.
// If the EnglishQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnglishQuestionMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *EnglishQuestionMutation) ResetSource() {
	m.source = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EnglishQuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EnglishQuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EnglishQuestion entity.
// If the EnglishQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnglishQuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EnglishQuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EnglishQuestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EnglishQuestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EnglishQuestion entity.
// If the EnglishQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnglishQuestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EnglishQuestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the EnglishQuestionMutation builder.
func (m *EnglishQuestionMutation) Where(ps ...predicate.EnglishQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EnglishQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EnglishQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EnglishQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EnglishQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EnglishQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EnglishQuestion).
func (m *EnglishQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EnglishQuestionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.question_number != nil {
		fields = append(fields, englishquestion.FieldQuestionNumber)
	}
	if m.question_text != nil {
		fields = append(fields, englishquestion.FieldQuestionText)
	}
	if m.option_a != nil {
		fields = append(fields, englishquestion.FieldOptionA)
	}
	if m.option_b != nil {
		fields = append(fields, englishquestion.FieldOptionB)
	}
	if m.option_c != nil {
		fields = append(fields, englishquestion.FieldOptionC)
	}
	if m.option_d != nil {
		fields = append(fields, englishquestion.FieldOptionD)
	}
	if m.correct_answer != nil {
		fields = append(fields, englishquestion.FieldCorrectAnswer)
	}
	if m.question_type != nil {
		fields = append(fields, englishquestion.FieldQuestionType)
	}
	if m.source != nil {
		fields = append(fields, englishquestion.FieldSource)
	}
	if m.created_at != nil {
		fields = append(fields, englishquestion.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, englishquestion.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EnglishQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case englishquestion.FieldQuestionNumber:
		return m.QuestionNumber()
	case englishquestion.FieldQuestionText:
		return m.QuestionText()
	case englishquestion.FieldOptionA:
		return m.OptionA()
	case englishquestion.FieldOptionB:
		return m.OptionB()
	case englishquestion.FieldOptionC:
		return m.OptionC()
	case englishquestion.FieldOptionD:
		return m.OptionD()
	case englishquestion.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case englishquestion.FieldQuestionType:
		return m.QuestionType()
	case englishquestion.FieldSource:
		return m.Source()
	case englishquestion.FieldCreatedAt:
		return m.CreatedAt()
	case englishquestion.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EnglishQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case englishquestion.FieldQuestionNumber:
		return m.OldQuestionNumber(ctx)
	case englishquestion.FieldQuestionText:
		return m.OldQuestionText(ctx)
	case englishquestion.FieldOptionA:
		return m.OldOptionA(ctx)
	case englishquestion.FieldOptionB:
		return m.OldOptionB(ctx)
	case englishquestion.FieldOptionC:
		return m.OldOptionC(ctx)
	case englishquestion.FieldOptionD:
		return m.OldOptionD(ctx)
	case englishquestion.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case englishquestion.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case englishquestion.FieldSource:
		return m.OldSource(ctx)
	case englishquestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case englishquestion.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EnglishQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnglishQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case englishquestion.FieldQuestionNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionNumber(v)
		return nil
	case englishquestion.FieldQuestionText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionText(v)
		return nil
	case englishquestion.FieldOptionA:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionA(v)
		return nil
	case englishquestion.FieldOptionB:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionB(v)
		return nil
	case englishquestion.FieldOptionC:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionC(v)
		return nil
	case englishquestion.FieldOptionD:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionD(v)
		return nil
	case englishquestion.FieldCorrectAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case englishquestion.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case englishquestion.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case englishquestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case englishquestion.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EnglishQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EnglishQuestionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EnglishQuestionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnglishQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EnglishQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EnglishQuestionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EnglishQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EnglishQuestionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EnglishQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EnglishQuestionMutation) ResetField(name string) error {
	switch name {
	case englishquestion.FieldQuestionNumber:
		m.ResetQuestionNumber()
		return nil
	case englishquestion.FieldQuestionText:
		m.ResetQuestionText()
		return nil
	case englishquestion.FieldOptionA:
		m.ResetOptionA()
		return nil
	case englishquestion.FieldOptionB:
		m.ResetOptionB()
		return nil
	case englishquestion.FieldOptionC:
		m.ResetOptionC()
		return nil
	case englishquestion.FieldOptionD:
		m.ResetOptionD()
		return nil
	case englishquestion.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case englishquestion.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case englishquestion.FieldSource:
		m.ResetSource()
		return nil
	case englishquestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case englishquestion.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EnglishQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EnglishQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EnglishQuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EnglishQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EnglishQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EnglishQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EnglishQuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EnglishQuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EnglishQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EnglishQuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EnglishQuestion edge %s", name)
}

// GeneralKnowledgeQuestionMutation represents an operation that mutates the GeneralKnowledgeQuestion nodes in the graph.
type GeneralKnowledgeQuestionMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	question_number  *string
	question_text    *string
	option_a         *string
	option_b         *string
	option_c         *string
	option_d         *string
	correct_answer   *string
	question_type    *string
	source           *string
	created_at       *time.Time
	updated_at       *time.Time
	category         *string
	difficulty_level *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*GeneralKnowledgeQuestion, error)
	predicates       []predicate.GeneralKnowledgeQuestion
}

var _ ent.Mutation = (*GeneralKnowledgeQuestionMutation)(nil)

// generalknowledgequestionOption allows management of the mutation configuration using functional options.
type generalknowledgequestionOption func(*GeneralKnowledgeQuestionMutation)

// newGeneralKnowledgeQuestionMutation creates new mutation for the GeneralKnowledgeQuestion entity.
func newGeneralKnowledgeQuestionMutation(c config, op Op, opts ...generalknowledgequestionOption) *GeneralKnowledgeQuestionMutation {
	m := &GeneralKnowledgeQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeGeneralKnowledgeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGeneralKnowledgeQuestionID sets the ID field of the mutation.
func withGeneralKnowledgeQuestionID(id uuid.UUID) generalknowledgequestionOption {
	return func(m *GeneralKnowledgeQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *GeneralKnowledgeQuestion
		)
		m.oldValue = func(ctx context.Context) (*GeneralKnowledgeQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GeneralKnowledgeQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGeneralKnowledgeQuestion sets the old GeneralKnowledgeQuestion of the mutation.
func withGeneralKnowledgeQuestion(node *GeneralKnowledgeQuestion) generalknowledgequestionOption {
	return func(m *GeneralKnowledgeQuestionMutation) {
		m.oldValue = func(context.Context) (*GeneralKnowledgeQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GeneralKnowledgeQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GeneralKnowledgeQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GeneralKnowledgeQuestion entities.
func (m *GeneralKnowledgeQuestionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GeneralKnowledgeQuestionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GeneralKnowledgeQuestionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GeneralKnowledgeQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuestionNumber sets the "question_number" field.
func (m *GeneralKnowledgeQuestionMutation) SetQuestionNumber(s string) {
	m.question_number = &s
}

// QuestionNumber returns the value of the "question_number" field in the mutation.
func (m *GeneralKnowledgeQuestionMutation) QuestionNumber() (r string, exists bool) {
	v := m.question_number
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionNumber returns the old "question_number" field's value of the GeneralKnowledgeQuestion entity.
// If the GeneralKnowledgeQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneralKnowledgeQuestionMutation) OldQuestionNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionNumber: %w", err)
	}
	return oldValue.QuestionNumber, nil
}

// ResetQuestionNumber resets all changes to the "question_number" field.
func (m *GeneralKnowledgeQuestionMutation) ResetQuestionNumber() {
	m.question_number = nil
}

// SetQuestionText sets the "question_text" field.
func (m *GeneralKnowledgeQuestionMutation) SetQuestionText(s string) {
	m.question_text = &s
}

// QuestionText returns the value of the "question_text" field in the mutation.
func (m *GeneralKnowledgeQuestionMutation) QuestionText() (r string, exists bool) {
	v := m.question_text
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionText returns the old "question_text" field's value of the GeneralKnowledgeQuestion entity.
// If the GeneralKnowledgeQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneralKnowledgeQuestionMutation) OldQuestionText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionText: %w", err)
	}
	return oldValue.QuestionText, nil
}

// ResetQuestionText resets all changes to the "question_text" field.
func (m *GeneralKnowledgeQuestionMutation) ResetQuestionText() {
	m.question_text = nil
}

// SetOptionA sets the "option_a" field.
func (m *GeneralKnowledgeQuestionMutation) SetOptionA(s string) {
	m.option_a = &s
}

// OptionA returns the value of the "option_a" field in the mutation.
func (m *GeneralKnowledgeQuestionMutation) OptionA() (r string, exists bool) {
	v := m.option_a
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionA returns the old "option_a" field's value of the GeneralKnowledgeQuestion entity.
// If the GeneralKnowledgeQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneralKnowledgeQuestionMutation) OldOptionA(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionA is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionA requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionA: %w", err)
	}
	return oldValue.OptionA, nil
}

// ResetOptionA resets all changes to the "option_a" field.
func (m *GeneralKnowledgeQuestionMutation) ResetOptionA() {
	m.option_a = nil
}

// SetOptionB sets the "option_b" field.
func (m *GeneralKnowledgeQuestionMutation) SetOptionB(s string) {
	m.option_b = &s
}

// OptionB returns the value of the "option_b" field in the mutation.
func (m *GeneralKnowledgeQuestionMutation) OptionB() (r string, exists bool) {
	v := m.option_b
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionB returns the old "option_b" field's value of the GeneralKnowledgeQuestion entity.
// If the GeneralKnowledgeQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneralKnowledgeQuestionMutation) OldOptionB(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionB: %w", err)
	}
	return oldValue.OptionB, nil
}

// ResetOptionB resets all changes to the "option_b" field.
func (m *GeneralKnowledgeQuestionMutation) ResetOptionB() {
	m.option_b = nil
}

// SetOptionC sets the "option_c" field.
func (m *GeneralKnowledgeQuestionMutation) SetOptionC(s string) {
	m.option_c = &s
}

// OptionC returns the value of the "option_c" field in the mutation.
func (m *GeneralKnowledgeQuestionMutation) OptionC() (r string, exists bool) {
	v := m.option_c
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionC returns the old "option_c" field's value of the GeneralKnowledgeQuestion entity.
// If the GeneralKnowledgeQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneralKnowledgeQuestionMutation) OldOptionC(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionC is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionC requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionC: %w", err)
	}
	return oldValue.OptionC, nil
}

// ResetOptionC resets all changes to the "option_c" field.
func (m *GeneralKnowledgeQuestionMutation) ResetOptionC() {
	m.option_c = nil
}

// SetOptionD sets the "option_d" field.
func (m *GeneralKnowledgeQuestionMutation) SetOptionD(s string) {
	m.option_d = &s
}

// OptionD returns the value of the "option_d" field in the mutation.
func (m *GeneralKnowledgeQuestionMutation) OptionD() (r string, exists bool) {
	v := m.option_d
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionD returns the old "option_d" field's value of the GeneralKnowledgeQuestion entity.
// If the GeneralKnowledgeQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneralKnowledgeQuestionMutation) OldOptionD(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionD is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionD requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionD: %w", err)
	}
	return oldValue.OptionD, nil
}

// ResetOptionD resets all changes to the "option_d" field.
func (m *GeneralKnowledgeQuestionMutation) ResetOptionD() {
	m.option_d = nil
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *GeneralKnowledgeQuestionMutation) SetCorrectAnswer(s string) {
	m.correct_answer = &s
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *GeneralKnowledgeQuestionMutation) CorrectAnswer() (r string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the GeneralKnowledgeQuestion entity.
// If the GeneralKnowledgeQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneralKnowledgeQuestionMutation) OldCorrectAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *GeneralKnowledgeQuestionMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
}

// SetQuestionType sets the "question_type" field.
func (m *GeneralKnowledgeQuestionMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *GeneralKnowledgeQuestionMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the GeneralKnowledgeQuestion entity.
// If the GeneralKnowledgeQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneralKnowledgeQuestionMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *GeneralKnowledgeQuestionMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetSource sets the "source" field.
func (m *GeneralKnowledgeQuestionMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *GeneralKnowledgeQuestionMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the GeneralKnowledgeQuestion entity.
// If the GeneralKnowledgeQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneralKnowledgeQuestionMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *GeneralKnowledgeQuestionMutation) ResetSource() {
	m.source = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GeneralKnowledgeQuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GeneralKnowledgeQuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GeneralKnowledgeQuestion entity.
// If the GeneralKnowledgeQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneralKnowledgeQuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GeneralKnowledgeQuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GeneralKnowledgeQuestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GeneralKnowledgeQuestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the GeneralKnowledgeQuestion entity.
// If the GeneralKnowledgeQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneralKnowledgeQuestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GeneralKnowledgeQuestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCategory sets the "category" field.
func (m *GeneralKnowledgeQuestionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *GeneralKnowledgeQuestionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the GeneralKnowledgeQuestion entity.
// If the GeneralKnowledgeQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneralKnowledgeQuestionMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *GeneralKnowledgeQuestionMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[generalknowledgequestion.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *GeneralKnowledgeQuestionMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[generalknowledgequestion.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *GeneralKnowledgeQuestionMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, generalknowledgequestion.FieldCategory)
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (m *GeneralKnowledgeQuestionMutation) SetDifficultyLevel(s string) {
	m.difficulty_level = &s
}

// DifficultyLevel returns the value of the "difficulty_level" field in the mutation.
func (m *GeneralKnowledgeQuestionMutation) DifficultyLevel() (r string, exists bool) {
	v := m.difficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyLevel returns the old "difficulty_level" field's value of the GeneralKnowledgeQuestion entity.
// If the GeneralKnowledgeQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneralKnowledgeQuestionMutation) OldDifficultyLevel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyLevel: %w", err)
	}
	return oldValue.DifficultyLevel, nil
}

// ClearDifficultyLevel clears the value of the "difficulty_level" field.
func (m *GeneralKnowledgeQuestionMutation) ClearDifficultyLevel() {
	m.difficulty_level = nil
	m.clearedFields[generalknowledgequestion.FieldDifficultyLevel] = struct{}{}
}

// DifficultyLevelCleared returns if the "difficulty_level" field was cleared in this mutation.
func (m *GeneralKnowledgeQuestionMutation) DifficultyLevelCleared() bool {
	_, ok := m.clearedFields[generalknowledgequestion.FieldDifficultyLevel]
	return ok
}

// ResetDifficultyLevel resets all changes to the "difficulty_level" field.
func (m *GeneralKnowledgeQuestionMutation) ResetDifficultyLevel() {
	m.difficulty_level = nil
	delete(m.clearedFields, generalknowledgequestion.FieldDifficultyLevel)
}

// Where appends a list predicates to the GeneralKnowledgeQuestionMutation builder.
func (m *GeneralKnowledgeQuestionMutation) Where(ps ...predicate.GeneralKnowledgeQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GeneralKnowledgeQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GeneralKnowledgeQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GeneralKnowledgeQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GeneralKnowledgeQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GeneralKnowledgeQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GeneralKnowledgeQuestion).
func (m *GeneralKnowledgeQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GeneralKnowledgeQuestionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.question_number != nil {
		fields = append(fields, generalknowledgequestion.FieldQuestionNumber)
	}
	if m.question_text != nil {
		fields = append(fields, generalknowledgequestion.FieldQuestionText)
	}
	if m.option_a != nil {
		fields = append(fields, generalknowledgequestion.FieldOptionA)
	}
	if m.option_b != nil {
		fields = append(fields, generalknowledgequestion.FieldOptionB)
	}
	if m.option_c != nil {
		fields = append(fields, generalknowledgequestion.FieldOptionC)
	}
	if m.option_d != nil {
		fields = append(fields, generalknowledgequestion.FieldOptionD)
	}
	if m.correct_answer != nil {
		fields = append(fields, generalknowledgequestion.FieldCorrectAnswer)
	}
	if m.question_type != nil {
		fields = append(fields, generalknowledgequestion.FieldQuestionType)
	}
	if m.source != nil {
		fields = append(fields, generalknowledgequestion.FieldSource)
	}
	if m.created_at != nil {
		fields = append(fields, generalknowledgequestion.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, generalknowledgequestion.FieldUpdatedAt)
	}
	if m.category != nil {
		fields = append(fields, generalknowledgequestion.FieldCategory)
	}
	if m.difficulty_level != nil {
		fields = append(fields, generalknowledgequestion.FieldDifficultyLevel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GeneralKnowledgeQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generalknowledgequestion.FieldQuestionNumber:
		return m.QuestionNumber()
	case generalknowledgequestion.FieldQuestionText:
		return m.QuestionText()
	case generalknowledgequestion.FieldOptionA:
		return m.OptionA()
	case generalknowledgequestion.FieldOptionB:
		return m.OptionB()
	case generalknowledgequestion.FieldOptionC:
		return m.OptionC()
	case generalknowledgequestion.FieldOptionD:
		return m.OptionD()
	case generalknowledgequestion.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case generalknowledgequestion.FieldQuestionType:
		return m.QuestionType()
	case generalknowledgequestion.FieldSource:
		return m.Source()
	case generalknowledgequestion.FieldCreatedAt:
		return m.CreatedAt()
	case generalknowledgequestion.FieldUpdatedAt:
		return m.UpdatedAt()
	case generalknowledgequestion.FieldCategory:
		return m.Category()
	case generalknowledgequestion.FieldDifficultyLevel:
		return m.DifficultyLevel()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GeneralKnowledgeQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generalknowledgequestion.FieldQuestionNumber:
		return m.OldQuestionNumber(ctx)
	case generalknowledgequestion.FieldQuestionText:
		return m.OldQuestionText(ctx)
	case generalknowledgequestion.FieldOptionA:
		return m.OldOptionA(ctx)
	case generalknowledgequestion.FieldOptionB:
		return m.OldOptionB(ctx)
	case generalknowledgequestion.FieldOptionC:
		return m.OldOptionC(ctx)
	case generalknowledgequestion.FieldOptionD:
		return m.OldOptionD(ctx)
	case generalknowledgequestion.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case generalknowledgequestion.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case generalknowledgequestion.FieldSource:
		return m.OldSource(ctx)
	case generalknowledgequestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case generalknowledgequestion.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case generalknowledgequestion.FieldCategory:
		return m.OldCategory(ctx)
	case generalknowledgequestion.FieldDifficultyLevel:
		return m.OldDifficultyLevel(ctx)
	}
	return nil, fmt.Errorf("unknown GeneralKnowledgeQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GeneralKnowledgeQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generalknowledgequestion.FieldQuestionNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionNumber(v)
		return nil
	case generalknowledgequestion.FieldQuestionText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionText(v)
		return nil
	case generalknowledgequestion.FieldOptionA:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionA(v)
		return nil
	case generalknowledgequestion.FieldOptionB:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionB(v)
		return nil
	case generalknowledgequestion.FieldOptionC:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionC(v)
		return nil
	case generalknowledgequestion.FieldOptionD:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionD(v)
		return nil
	case generalknowledgequestion.FieldCorrectAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case generalknowledgequestion.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case generalknowledgequestion.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case generalknowledgequestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case generalknowledgequestion.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case generalknowledgequestion.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case generalknowledgequestion.FieldDifficultyLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyLevel(v)
		return nil
	}
	return fmt.Errorf("unknown GeneralKnowledgeQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GeneralKnowledgeQuestionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GeneralKnowledgeQuestionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GeneralKnowledgeQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GeneralKnowledgeQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GeneralKnowledgeQuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(generalknowledgequestion.FieldCategory) {
		fields = append(fields, generalknowledgequestion.FieldCategory)
	}
	if m.FieldCleared(generalknowledgequestion.FieldDifficultyLevel) {
		fields = append(fields, generalknowledgequestion.FieldDifficultyLevel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GeneralKnowledgeQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GeneralKnowledgeQuestionMutation) ClearField(name string) error {
	switch name {
	case generalknowledgequestion.FieldCategory:
		m.ClearCategory()
		return nil
	case generalknowledgequestion.FieldDifficultyLevel:
		m.ClearDifficultyLevel()
		return nil
	}
	return fmt.Errorf("unknown GeneralKnowledgeQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GeneralKnowledgeQuestionMutation) ResetField(name string) error {
	switch name {
	case generalknowledgequestion.FieldQuestionNumber:
		m.ResetQuestionNumber()
		return nil
	case generalknowledgequestion.FieldQuestionText:
		m.ResetQuestionText()
		return nil
	case generalknowledgequestion.FieldOptionA:
		m.ResetOptionA()
		return nil
	case generalknowledgequestion.FieldOptionB:
		m.ResetOptionB()
		return nil
	case generalknowledgequestion.FieldOptionC:
		m.ResetOptionC()
		return nil
	case generalknowledgequestion.FieldOptionD:
		m.ResetOptionD()
		return nil
	case generalknowledgequestion.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case generalknowledgequestion.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case generalknowledgequestion.FieldSource:
		m.ResetSource()
		return nil
	case generalknowledgequestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case generalknowledgequestion.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case generalknowledgequestion.FieldCategory:
		m.ResetCategory()
		return nil
	case generalknowledgequestion.FieldDifficultyLevel:
		m.ResetDifficultyLevel()
		return nil
	}
	return fmt.Errorf("unknown GeneralKnowledgeQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GeneralKnowledgeQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GeneralKnowledgeQuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GeneralKnowledgeQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GeneralKnowledgeQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GeneralKnowledgeQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GeneralKnowledgeQuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GeneralKnowledgeQuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GeneralKnowledgeQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GeneralKnowledgeQuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GeneralKnowledgeQuestion edge %s", name)
}

// MathematicsQuestionMutation represents an operation that mutates the MathematicsQuestion nodes in the graph.
type MathematicsQuestionMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	question_number  *string
	question_text    *string
	option_a         *string
	option_b         *string
	option_c         *string
	option_d         *string
	correct_answer   *string
	question_type    *string
	source           *string
	created_at       *time.Time
	updated_at       *time.Time
	topic            *string
	difficulty_level *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*MathematicsQuestion, error)
	predicates       []predicate.MathematicsQuestion
}

var _ ent.Mutation = (*MathematicsQuestionMutation)(nil)

// mathematicsquestionOption allows management of the mutation configuration using functional options.
type mathematicsquestionOption func(*MathematicsQuestionMutation)

// newMathematicsQuestionMutation creates new mutation for the MathematicsQuestion entity.
func newMathematicsQuestionMutation(c config, op Op, opts ...mathematicsquestionOption) *MathematicsQuestionMutation {
	m := &MathematicsQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeMathematicsQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMathematicsQuestionID sets the ID field of the mutation.
func withMathematicsQuestionID(id uuid.UUID) mathematicsquestionOption {
	return func(m *MathematicsQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *MathematicsQuestion
		)
		m.oldValue = func(ctx context.Context) (*MathematicsQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MathematicsQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMathematicsQuestion sets the old MathematicsQuestion of the mutation.
func withMathematicsQuestion(node *MathematicsQuestion) mathematicsquestionOption {
	return func(m *MathematicsQuestionMutation) {
		m.oldValue = func(context.Context) (*MathematicsQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MathematicsQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MathematicsQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MathematicsQuestion entities.
func (m *MathematicsQuestionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MathematicsQuestionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MathematicsQuestionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MathematicsQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuestionNumber sets the "question_number" field.
func (m *MathematicsQuestionMutation) SetQuestionNumber(s string) {
	m.question_number = &s
}

// QuestionNumber returns the value of the "question_number" field in the mutation.
func (m *MathematicsQuestionMutation) QuestionNumber() (r string, exists bool) {
	v := m.question_number
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionNumber returns the old "question_number" field's value of the MathematicsQuestion entity.
// If the MathematicsQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MathematicsQuestionMutation) OldQuestionNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionNumber: %w", err)
	}
	return oldValue.QuestionNumber, nil
}

// ResetQuestionNumber resets all changes to the "question_number" field.
func (m *MathematicsQuestionMutation) ResetQuestionNumber() {
	m.question_number = nil
}

// SetQuestionText sets the "question_text" field.
func (m *MathematicsQuestionMutation) SetQuestionText(s string) {
	m.question_text = &s
}

// QuestionText returns the value of the "question_text" field in the mutation.
func (m *MathematicsQuestionMutation) QuestionText() (r string, exists bool) {
	v := m.question_text
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionText returns the old "question_text" field's value of the MathematicsQuestion entity.
// If the MathematicsQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MathematicsQuestionMutation) OldQuestionText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionText: %w", err)
	}
	return oldValue.QuestionText, nil
}

// ResetQuestionText resets all changes to the "question_text" field.
func (m *MathematicsQuestionMutation) ResetQuestionText() {
	m.question_text = nil
}

// SetOptionA sets the "option_a" field.
func (m *MathematicsQuestionMutation) SetOptionA(s string) {
	m.option_a = &s
}

// OptionA returns the value of the "option_a" field in the mutation.
func (m *MathematicsQuestionMutation) OptionA() (r string, exists bool) {
	v := m.option_a
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionA returns the old "option_a" field's value of the MathematicsQuestion entity.
// If the MathematicsQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MathematicsQuestionMutation) OldOptionA(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionA is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionA requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionA: %w", err)
	}
	return oldValue.OptionA, nil
}

// ResetOptionA resets all changes to the "option_a" field.
func (m *MathematicsQuestionMutation) ResetOptionA() {
	m.option_a = nil
}

// SetOptionB sets the "option_b" field.
func (m *MathematicsQuestionMutation) SetOptionB(s string) {
	m.option_b = &s
}

// OptionB returns the value of the "option_b" field in the mutation.
func (m *MathematicsQuestionMutation) OptionB() (r string, exists bool) {
	v := m.option_b
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionB returns the old "option_b" field's value of the MathematicsQuestion entity.
// If the MathematicsQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MathematicsQuestionMutation) OldOptionB(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionB: %w", err)
	}
	return oldValue.OptionB, nil
}

// ResetOptionB resets all changes to the "option_b" field.
func (m *MathematicsQuestionMutation) ResetOptionB() {
	m.option_b = nil
}

// SetOptionC sets the "option_c" field.
func (m *MathematicsQuestionMutation) SetOptionC(s string) {
	m.option_c = &s
}

// OptionC returns the value of the "option_c" field in the mutation.
func (m *MathematicsQuestionMutation) OptionC() (r string, exists bool) {
	v := m.option_c
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionC returns the old "option_c" field's value of the MathematicsQuestion entity.
// If the MathematicsQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MathematicsQuestionMutation) OldOptionC(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionC is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionC requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionC: %w", err)
	}
	return oldValue.OptionC, nil
}

// ResetOptionC resets all changes to the "option_c" field.
func (m *MathematicsQuestionMutation) ResetOptionC() {
	m.option_c = nil
}

// SetOptionD sets the "option_d" field.
func (m *MathematicsQuestionMutation) SetOptionD(s string) {
	m.option_d = &s
}

// OptionD returns the value of the "option_d" field in the mutation.
func (m *MathematicsQuestionMutation) OptionD() (r string, exists bool) {
	v := m.option_d
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionD returns the old "option_d" field's value of the MathematicsQuestion entity.
// If the MathematicsQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MathematicsQuestionMutation) OldOptionD(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionD is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionD requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionD: %w", err)
	}
	return oldValue.OptionD, nil
}

// ResetOptionD resets all changes to the "option_d" field.
func (m *MathematicsQuestionMutation) ResetOptionD() {
	m.option_d = nil
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *MathematicsQuestionMutation) SetCorrectAnswer(s string) {
	m.correct_answer = &s
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *MathematicsQuestionMutation) CorrectAnswer() (r string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the MathematicsQuestion entity.
// If the MathematicsQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MathematicsQuestionMutation) OldCorrectAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *MathematicsQuestionMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
}

// SetQuestionType sets the "question_type" field.
func (m *MathematicsQuestionMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *MathematicsQuestionMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the MathematicsQuestion entity.
// If the MathematicsQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MathematicsQuestionMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *MathematicsQuestionMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetSource sets the "source" field.
func (m *MathematicsQuestionMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *MathematicsQuestionMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the MathematicsQuestion entity.
// If the MathematicsQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MathematicsQuestionMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *MathematicsQuestionMutation) ResetSource() {
	m.source = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MathematicsQuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MathematicsQuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MathematicsQuestion entity.
// If the MathematicsQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MathematicsQuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MathematicsQuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MathematicsQuestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MathematicsQuestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MathematicsQuestion entity.
// If the MathematicsQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MathematicsQuestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MathematicsQuestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTopic sets the "topic" field.
func (m *MathematicsQuestionMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *MathematicsQuestionMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the MathematicsQuestion entity.
// If the MathematicsQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MathematicsQuestionMutation) OldTopic(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ClearTopic clears the value of the "topic" field.
func (m *MathematicsQuestionMutation) ClearTopic() {
	m.topic = nil
	m.clearedFields[mathematicsquestion.FieldTopic] = struct{}{}
}

// TopicCleared returns if the "topic" field was cleared in this mutation.
func (m *MathematicsQuestionMutation) TopicCleared() bool {
	_, ok := m.clearedFields[mathematicsquestion.FieldTopic]
	return ok
}

// ResetTopic resets all changes to the "topic" field.
func (m *MathematicsQuestionMutation) ResetTopic() {
	m.topic = nil
	delete(m.clearedFields, mathematicsquestion.FieldTopic)
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (m *MathematicsQuestionMutation) SetDifficultyLevel(s string) {
	m.difficulty_level = &s
}

// DifficultyLevel returns the value of the "difficulty_level" field in the mutation.
func (m *MathematicsQuestionMutation) DifficultyLevel() (r string, exists bool) {
	v := m.difficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyLevel returns the old "difficulty_level" field's value of the MathematicsQuestion entity.
// If the MathematicsQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MathematicsQuestionMutation) OldDifficultyLevel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyLevel: %w", err)
	}
	return oldValue.DifficultyLevel, nil
}

// ClearDifficultyLevel clears the value of the "difficulty_level" field.
func (m *MathematicsQuestionMutation) ClearDifficultyLevel() {
	m.difficulty_level = nil
	m.clearedFields[mathematicsquestion.FieldDifficultyLevel] = struct{}{}
}

// DifficultyLevelCleared returns if the "difficulty_level" field was cleared in this mutation.
func (m *MathematicsQuestionMutation) DifficultyLevelCleared() bool {
	_, ok := m.clearedFields[mathematicsquestion.FieldDifficultyLevel]
	return ok
}

// ResetDifficultyLevel resets all changes to the "difficulty_level" field.
func (m *MathematicsQuestionMutation) ResetDifficultyLevel() {
	m.difficulty_level = nil
	delete(m.clearedFields, mathematicsquestion.FieldDifficultyLevel)
}

// Where appends a list predicates to the MathematicsQuestionMutation builder.
func (m *MathematicsQuestionMutation) Where(ps ...predicate.MathematicsQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MathematicsQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MathematicsQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MathematicsQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MathematicsQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MathematicsQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MathematicsQuestion).
func (m *MathematicsQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MathematicsQuestionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.question_number != nil {
		fields = append(fields, mathematicsquestion.FieldQuestionNumber)
	}
	if m.question_text != nil {
		fields = append(fields, mathematicsquestion.FieldQuestionText)
	}
	if m.option_a != nil {
		fields = append(fields, mathematicsquestion.FieldOptionA)
	}
	if m.option_b != nil {
		fields = append(fields, mathematicsquestion.FieldOptionB)
	}
	if m.option_c != nil {
		fields = append(fields, mathematicsquestion.FieldOptionC)
	}
	if m.option_d != nil {
		fields = append(fields, mathematicsquestion.FieldOptionD)
	}
	if m.correct_answer != nil {
		fields = append(fields, mathematicsquestion.FieldCorrectAnswer)
	}
	if m.question_type != nil {
		fields = append(fields, mathematicsquestion.FieldQuestionType)
	}
	if m.source != nil {
		fields = append(fields, mathematicsquestion.FieldSource)
	}
	if m.created_at != nil {
		fields = append(fields, mathematicsquestion.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, mathematicsquestion.FieldUpdatedAt)
	}
	if m.topic != nil {
		fields = append(fields, mathematicsquestion.FieldTopic)
	}
	if m.difficulty_level != nil {
		fields = append(fields, mathematicsquestion.FieldDifficultyLevel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MathematicsQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mathematicsquestion.FieldQuestionNumber:
		return m.QuestionNumber()
	case mathematicsquestion.FieldQuestionText:
		return m.QuestionText()
	case mathematicsquestion.FieldOptionA:
		return m.OptionA()
	case mathematicsquestion.FieldOptionB:
		return m.OptionB()
	case mathematicsquestion.FieldOptionC:
		return m.OptionC()
	case mathematicsquestion.FieldOptionD:
		return m.OptionD()
	case mathematicsquestion.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case mathematicsquestion.FieldQuestionType:
		return m.QuestionType()
	case mathematicsquestion.FieldSource:
		return m.Source()
	case mathematicsquestion.FieldCreatedAt:
		return m.CreatedAt()
	case mathematicsquestion.FieldUpdatedAt:
		return m.UpdatedAt()
	case mathematicsquestion.FieldTopic:
		return m.Topic()
	case mathematicsquestion.FieldDifficultyLevel:
		return m.DifficultyLevel()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MathematicsQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mathematicsquestion.FieldQuestionNumber:
		return m.OldQuestionNumber(ctx)
	case mathematicsquestion.FieldQuestionText:
		return m.OldQuestionText(ctx)
	case mathematicsquestion.FieldOptionA:
		return m.OldOptionA(ctx)
	case mathematicsquestion.FieldOptionB:
		return m.OldOptionB(ctx)
	case mathematicsquestion.FieldOptionC:
		return m.OldOptionC(ctx)
	case mathematicsquestion.FieldOptionD:
		return m.OldOptionD(ctx)
	case mathematicsquestion.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case mathematicsquestion.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case mathematicsquestion.FieldSource:
		return m.OldSource(ctx)
	case mathematicsquestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mathematicsquestion.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case mathematicsquestion.FieldTopic:
		return m.OldTopic(ctx)
	case mathematicsquestion.FieldDifficultyLevel:
		return m.OldDifficultyLevel(ctx)
	}
	return nil, fmt.Errorf("unknown MathematicsQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MathematicsQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mathematicsquestion.FieldQuestionNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionNumber(v)
		return nil
	case mathematicsquestion.FieldQuestionText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionText(v)
		return nil
	case mathematicsquestion.FieldOptionA:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionA(v)
		return nil
	case mathematicsquestion.FieldOptionB:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionB(v)
		return nil
	case mathematicsquestion.FieldOptionC:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionC(v)
		return nil
	case mathematicsquestion.FieldOptionD:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionD(v)
		return nil
	case mathematicsquestion.FieldCorrectAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case mathematicsquestion.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case mathematicsquestion.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case mathematicsquestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mathematicsquestion.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case mathematicsquestion.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case mathematicsquestion.FieldDifficultyLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyLevel(v)
		return nil
	}
	return fmt.Errorf("unknown MathematicsQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MathematicsQuestionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MathematicsQuestionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MathematicsQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MathematicsQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MathematicsQuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mathematicsquestion.FieldTopic) {
		fields = append(fields, mathematicsquestion.FieldTopic)
	}
	if m.FieldCleared(mathematicsquestion.FieldDifficultyLevel) {
		fields = append(fields, mathematicsquestion.FieldDifficultyLevel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MathematicsQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MathematicsQuestionMutation) ClearField(name string) error {
	switch name {
	case mathematicsquestion.FieldTopic:
		m.ClearTopic()
		return nil
	case mathematicsquestion.FieldDifficultyLevel:
		m.ClearDifficultyLevel()
		return nil
	}
	return fmt.Errorf("unknown MathematicsQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MathematicsQuestionMutation) ResetField(name string) error {
	switch name {
	case mathematicsquestion.FieldQuestionNumber:
		m.ResetQuestionNumber()
		return nil
	case mathematicsquestion.FieldQuestionText:
		m.ResetQuestionText()
		return nil
	case mathematicsquestion.FieldOptionA:
		m.ResetOptionA()
		return nil
	case mathematicsquestion.FieldOptionB:
		m.ResetOptionB()
		return nil
	case mathematicsquestion.FieldOptionC:
		m.ResetOptionC()
		return nil
	case mathematicsquestion.FieldOptionD:
		m.ResetOptionD()
		return nil
	case mathematicsquestion.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case mathematicsquestion.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case mathematicsquestion.FieldSource:
		m.ResetSource()
		return nil
	case mathematicsquestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mathematicsquestion.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case mathematicsquestion.FieldTopic:
		m.ResetTopic()
		return nil
	case mathematicsquestion.FieldDifficultyLevel:
		m.ResetDifficultyLevel()
		return nil
	}
	return fmt.Errorf("unknown MathematicsQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MathematicsQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MathematicsQuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MathematicsQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MathematicsQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MathematicsQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MathematicsQuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MathematicsQuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MathematicsQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MathematicsQuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MathematicsQuestion edge %s", name)
}
