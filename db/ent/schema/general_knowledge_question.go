package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

type GeneralKnowledgeQuestion struct{ ent.Schema }

func (GeneralKnowledgeQuestion) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "general_knowledge_questions"},
	}
}

func (GeneralKnowledgeQuestion) Mixin() []ent.Mixin {
	return []ent.Mixin{QuestionMixin{}}
}

func (GeneralKnowledgeQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("category").Optional().Nillable(),
		field.String("difficulty_level").Optional().Nillable(),
	}
}
