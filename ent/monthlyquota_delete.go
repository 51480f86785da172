// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bidiq/bidiq/ent/monthlyquota"
	"github.com/bidiq/bidiq/ent/predicate"
)

// MonthlyQuotaDelete is the builder for deleting a MonthlyQuota entity.
type MonthlyQuotaDelete struct {
	config
	hooks    []Hook
	mutation *MonthlyQuotaMutation
}

// Where appends a list predicates to the MonthlyQuotaDelete builder.
func (_d *MonthlyQuotaDelete) Where(ps ...predicate.MonthlyQuota) *MonthlyQuotaDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MonthlyQuotaDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MonthlyQuotaDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MonthlyQuotaDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(monthlyquota.Table, sqlgraph.NewFieldSpec(monthlyquota.FieldID, field.TypeInt))
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

// MonthlyQuotaDeleteOne is the builder for deleting a single MonthlyQuota entity.
type MonthlyQuotaDeleteOne struct {
	_d *MonthlyQuotaDelete
}

// Where appends a list predicates to the MonthlyQuotaDelete builder.
func (_d *MonthlyQuotaDeleteOne) Where(ps ...predicate.MonthlyQuota) *MonthlyQuotaDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MonthlyQuotaDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{monthlyquota.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MonthlyQuotaDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
