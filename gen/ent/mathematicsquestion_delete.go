// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edtech-ng/question-bank/gen/ent/mathematicsquestion"
	"github.com/edtech-ng/question-bank/gen/ent/predicate"
)

// MathematicsQuestionDelete is the builder for deleting a MathematicsQuestion entity.
type MathematicsQuestionDelete struct {
	config
	hooks    []Hook
	mutation *MathematicsQuestionMutation
}

// Where appends a list predicates to the MathematicsQuestionDelete builder.
func (_d *MathematicsQuestionDelete) Where(ps ...predicate.MathematicsQuestion) *MathematicsQuestionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MathematicsQuestionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MathematicsQuestionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MathematicsQuestionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(mathematicsquestion.Table, sqlgraph.NewFieldSpec(mathematicsquestion.FieldID, field.TypeUUID))
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

// MathematicsQuestionDeleteOne is the builder for deleting a single MathematicsQuestion entity.
type MathematicsQuestionDeleteOne struct {
	_d *MathematicsQuestionDelete
}

// Where appends a list predicates to the MathematicsQuestionDelete builder.
func (_d *MathematicsQuestionDeleteOne) Where(ps ...predicate.MathematicsQuestion) *MathematicsQuestionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MathematicsQuestionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{mathematicsquestion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MathematicsQuestionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
