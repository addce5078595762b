// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EnglishQuestionsColumns holds the columns for the "english_questions" table.
	EnglishQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "question_number", Type: field.TypeString, Unique: true},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "option_a", Type: field.TypeString, Size: 2147483647},
		{Name: "option_b", Type: field.TypeString, Size: 2147483647},
		{Name: "option_c", Type: field.TypeString, Size: 2147483647},
		{Name: "option_d", Type: field.TypeString, Size: 2147483647},
		{Name: "correct_answer", Type: field.TypeString, Size: 1},
		{Name: "question_type", Type: field.TypeString},
		{Name: "source", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EnglishQuestionsTable holds the schema information for the "english_questions" table.
	EnglishQuestionsTable = &schema.Table{
		Name:       "english_questions",
		Columns:    EnglishQuestionsColumns,
		PrimaryKey: []*schema.Column{EnglishQuestionsColumns[0]},
	}
	// GeneralKnowledgeQuestionsColumns holds the columns for the "general_knowledge_questions" table.
	GeneralKnowledgeQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "question_number", Type: field.TypeString, Unique: true},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "option_a", Type: field.TypeString, Size: 2147483647},
		{Name: "option_b", Type: field.TypeString, Size: 2147483647},
		{Name: "option_c", Type: field.TypeString, Size: 2147483647},
		{Name: "option_d", Type: field.TypeString, Size: 2147483647},
		{Name: "correct_answer", Type: field.TypeString, Size: 1},
		{Name: "question_type", Type: field.TypeString},
		{Name: "source", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "difficulty_level", Type: field.TypeString, Nullable: true},
	}
	// GeneralKnowledgeQuestionsTable holds the schema information for the "general_knowledge_questions" table.
	GeneralKnowledgeQuestionsTable = &schema.Table{
		Name:       "general_knowledge_questions",
		Columns:    GeneralKnowledgeQuestionsColumns,
		PrimaryKey: []*schema.Column{GeneralKnowledgeQuestionsColumns[0]},
	}
	// MathematicsQuestionsColumns holds the columns for the "mathematics_questions" table.
	MathematicsQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "question_number", Type: field.TypeString, Unique: true},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "option_a", Type: field.TypeString, Size: 2147483647},
		{Name: "option_b", Type: field.TypeString, Size: 2147483647},
		{Name: "option_c", Type: field.TypeString, Size: 2147483647},
		{Name: "option_d", Type: field.TypeString, Size: 2147483647},
		{Name: "correct_answer", Type: field.TypeString, Size: 1},
		{Name: "question_type", Type: field.TypeString},
		{Name: "source", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "topic", Type: field.TypeString, Nullable: true},
		{Name: "difficulty_level", Type: field.TypeString, Nullable: true},
	}
	// MathematicsQuestionsTable holds the schema information for the "mathematics_questions" table.
	MathematicsQuestionsTable = &schema.Table{
		Name:       "mathematics_questions",
		Columns:    MathematicsQuestionsColumns,
		PrimaryKey: []*schema.Column{MathematicsQuestionsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EnglishQuestionsTable,
		GeneralKnowledgeQuestionsTable,
		MathematicsQuestionsTable,
	}
)

func init() {
	EnglishQuestionsTable.Annotation = &entsql.Annotation{
		Table: "english_questions",
	}
	GeneralKnowledgeQuestionsTable.Annotation = &entsql.Annotation{
		Table: "general_knowledge_questions",
	}
	MathematicsQuestionsTable.Annotation = &entsql.Annotation{
		Table: "mathematics_questions",
	}
}
