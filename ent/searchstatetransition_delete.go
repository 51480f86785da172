// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bidiq/bidiq/ent/predicate"
	"github.com/bidiq/bidiq/ent/searchstatetransition"
)

// SearchStateTransitionDelete is the builder for deleting a SearchStateTransition entity.
type SearchStateTransitionDelete struct {
	config
	hooks    []Hook
	mutation *SearchStateTransitionMutation
}

// Where appends a list predicates to the SearchStateTransitionDelete builder.
func (_d *SearchStateTransitionDelete) Where(ps ...predicate.SearchStateTransition) *SearchStateTransitionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SearchStateTransitionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SearchStateTransitionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SearchStateTransitionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(searchstatetransition.Table, sqlgraph.NewFieldSpec(searchstatetransition.FieldID, field.TypeInt))
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

// SearchStateTransitionDeleteOne is the builder for deleting a single SearchStateTransition entity.
type SearchStateTransitionDeleteOne struct {
	_d *SearchStateTransitionDelete
}

// Where appends a list predicates to the SearchStateTransitionDelete builder.
func (_d *SearchStateTransitionDeleteOne) Where(ps ...predicate.SearchStateTransition) *SearchStateTransitionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SearchStateTransitionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{searchstatetransition.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SearchStateTransitionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
