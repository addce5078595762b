package schema

import (
	"errors"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"

	"github.com/google/uuid"
)

var (
	reAnswer    = regexp.MustCompile(`^[A-D]$`)
	reAnswerErr = errors.New("correct_answer must be one of A-D")
)

// QuestionMixin holds the columns every subject table shares. The three
// subject tables are identical in shape apart from their optional columns.
type QuestionMixin struct{ mixin.Schema }

func (QuestionMixin) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// natural key within the subject table; upserts conflict on it
		field.String("question_number").NotEmpty().Unique(),
		field.Text("question_text").NotEmpty(),
		field.Text("option_a").NotEmpty(),
		field.Text("option_b").NotEmpty(),
		field.Text("option_c").NotEmpty(),
		field.Text("option_d").NotEmpty(),
		field.String("correct_answer").
			MinLen(1).MaxLen(1).
			Validate(func(s string) error {
				if reAnswer.MatchString(s) {
					return nil
				}
				return reAnswerErr
			}),
		field.String("question_type").NotEmpty(),
		field.String("source").Default(""),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
