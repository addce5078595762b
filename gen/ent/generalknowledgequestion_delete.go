// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edtech-ng/question-bank/gen/ent/generalknowledgequestion"
	"github.com/edtech-ng/question-bank/gen/ent/predicate"
)

// GeneralKnowledgeQuestionDelete is the builder for deleting a GeneralKnowledgeQuestion entity.
type GeneralKnowledgeQuestionDelete struct {
	config
	hooks    []Hook
	mutation *GeneralKnowledgeQuestionMutation
}

// Where appends a list predicates to the GeneralKnowledgeQuestionDelete builder.
func (_d *GeneralKnowledgeQuestionDelete) Where(ps ...predicate.GeneralKnowledgeQuestion) *GeneralKnowledgeQuestionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GeneralKnowledgeQuestionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GeneralKnowledgeQuestionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GeneralKnowledgeQuestionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(generalknowledgequestion.Table, sqlgraph.NewFieldSpec(generalknowledgequestion.FieldID, field.TypeUUID))
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

// GeneralKnowledgeQuestionDeleteOne is the builder for deleting a single GeneralKnowledgeQuestion entity.
type GeneralKnowledgeQuestionDeleteOne struct {
	_d *GeneralKnowledgeQuestionDelete
}

// Where appends a list predicates to the GeneralKnowledgeQuestionDelete builder.
func (_d *GeneralKnowledgeQuestionDeleteOne) Where(ps ...predicate.GeneralKnowledgeQuestion) *GeneralKnowledgeQuestionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GeneralKnowledgeQuestionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{generalknowledgequestion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GeneralKnowledgeQuestionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
