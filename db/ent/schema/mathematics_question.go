package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

type MathematicsQuestion struct{ ent.Schema }

func (MathematicsQuestion) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "mathematics_questions"},
	}
}

func (MathematicsQuestion) Mixin() []ent.Mixin {
	return []ent.Mixin{QuestionMixin{}}
}

func (MathematicsQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").Optional().Nillable(),
		field.String("difficulty_level").Optional().Nillable(),
	}
}
