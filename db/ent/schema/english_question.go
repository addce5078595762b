package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
)

type EnglishQuestion struct{ ent.Schema }

func (EnglishQuestion) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "english_questions"},
	}
}

func (EnglishQuestion) Mixin() []ent.Mixin {
	return []ent.Mixin{QuestionMixin{}}
}
