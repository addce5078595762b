// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// EnglishQuestion is the predicate function for englishquestion builders.
type EnglishQuestion func(*sql.Selector)

// GeneralKnowledgeQuestion is the predicate function for generalknowledgequestion builders.
type GeneralKnowledgeQuestion func(*sql.Selector)

// MathematicsQuestion is the predicate function for mathematicsquestion builders.
type MathematicsQuestion func(*sql.Selector)
