// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edtech-ng/question-bank/gen/ent/englishquestion"
	"github.com/edtech-ng/question-bank/gen/ent/predicate"
)

// EnglishQuestionDelete is the builder for deleting a EnglishQuestion entity.
type EnglishQuestionDelete struct {
	config
	hooks    []Hook
	mutation *EnglishQuestionMutation
}

// Where appends a list predicates to the EnglishQuestionDelete builder.
func (_d *EnglishQuestionDelete) Where(ps ...predicate.EnglishQuestion) *EnglishQuestionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EnglishQuestionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EnglishQuestionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EnglishQuestionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(englishquestion.Table, sqlgraph.NewFieldSpec(englishquestion.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// EnglishQuestionDeleteOne is the builder for deleting a single EnglishQuestion entity.
type EnglishQuestionDeleteOne struct {
	_d *EnglishQuestionDelete
}

// Where appends a list predicates to the EnglishQuestionDelete builder.
func (_d *EnglishQuestionDeleteOne) Where(ps ...predicate.EnglishQuestion) *EnglishQuestionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EnglishQuestionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{englishquestion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EnglishQuestionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
