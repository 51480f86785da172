// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bidiq/bidiq/ent/monthlyquota"
	"github.com/bidiq/bidiq/ent/predicate"
)

// MonthlyQuotaUpdate is the builder for updating MonthlyQuota entities.
type MonthlyQuotaUpdate struct {
	config
	hooks    []Hook
	mutation *MonthlyQuotaMutation
}

// Where appends a list predicates to the MonthlyQuotaUpdate builder.
func (_u *MonthlyQuotaUpdate) Where(ps ...predicate.MonthlyQuota) *MonthlyQuotaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MonthlyQuotaUpdate) SetUserID(v string) *MonthlyQuotaUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MonthlyQuotaUpdate) SetNillableUserID(v *string) *MonthlyQuotaUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMonthKey sets the "month_key" field.
func (_u *MonthlyQuotaUpdate) SetMonthKey(v string) *MonthlyQuotaUpdate {
	_u.mutation.SetMonthKey(v)
	return _u
}

// SetNillableMonthKey sets the "month_key" field if the given value is not nil.
func (_u *MonthlyQuotaUpdate) SetNillableMonthKey(v *string) *MonthlyQuotaUpdate {
	if v != nil {
		_u.SetMonthKey(*v)
	}
	return _u
}

// SetSearchesCount sets the "searches_count" field.
func (_u *MonthlyQuotaUpdate) SetSearchesCount(v int) *MonthlyQuotaUpdate {
	_u.mutation.ResetSearchesCount()
	_u.mutation.SetSearchesCount(v)
	return _u
}

// SetNillableSearchesCount sets the "searches_count" field if the given value is not nil.
func (_u *MonthlyQuotaUpdate) SetNillableSearchesCount(v *int) *MonthlyQuotaUpdate {
	if v != nil {
		_u.SetSearchesCount(*v)
	}
	return _u
}

// AddSearchesCount adds value to the "searches_count" field.
func (_u *MonthlyQuotaUpdate) AddSearchesCount(v int) *MonthlyQuotaUpdate {
	_u.mutation.AddSearchesCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MonthlyQuotaUpdate) SetUpdatedAt(v time.Time) *MonthlyQuotaUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MonthlyQuotaMutation object of the builder.
func (_u *MonthlyQuotaUpdate) Mutation() *MonthlyQuotaMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MonthlyQuotaUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonthlyQuotaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MonthlyQuotaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonthlyQuotaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MonthlyQuotaUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := monthlyquota.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *MonthlyQuotaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(monthlyquota.Table, monthlyquota.Columns, sqlgraph.NewFieldSpec(monthlyquota.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(monthlyquota.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MonthKey(); ok {
		_spec.SetField(monthlyquota.FieldMonthKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SearchesCount(); ok {
		_spec.SetField(monthlyquota.FieldSearchesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSearchesCount(); ok {
		_spec.AddField(monthlyquota.FieldSearchesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(monthlyquota.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monthlyquota.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MonthlyQuotaUpdateOne is the builder for updating a single MonthlyQuota entity.
type MonthlyQuotaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MonthlyQuotaMutation
}

// SetUserID sets the "user_id" field.
func (_u *MonthlyQuotaUpdateOne) SetUserID(v string) *MonthlyQuotaUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MonthlyQuotaUpdateOne) SetNillableUserID(v *string) *MonthlyQuotaUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMonthKey sets the "month_key" field.
func (_u *MonthlyQuotaUpdateOne) SetMonthKey(v string) *MonthlyQuotaUpdateOne {
	_u.mutation.SetMonthKey(v)
	return _u
}

// SetNillableMonthKey sets the "month_key" field if the given value is not nil.
func (_u *MonthlyQuotaUpdateOne) SetNillableMonthKey(v *string) *MonthlyQuotaUpdateOne {
	if v != nil {
		_u.SetMonthKey(*v)
	}
	return _u
}

// SetSearchesCount sets the "searches_count" field.
func (_u *MonthlyQuotaUpdateOne) SetSearchesCount(v int) *MonthlyQuotaUpdateOne {
	_u.mutation.ResetSearchesCount()
	_u.mutation.SetSearchesCount(v)
	return _u
}

// SetNillableSearchesCount sets the "searches_count" field if the given value is not nil.
func (_u *MonthlyQuotaUpdateOne) SetNillableSearchesCount(v *int) *MonthlyQuotaUpdateOne {
	if v != nil {
		_u.SetSearchesCount(*v)
	}
	return _u
}

// AddSearchesCount adds value to the "searches_count" field.
func (_u *MonthlyQuotaUpdateOne) AddSearchesCount(v int) *MonthlyQuotaUpdateOne {
	_u.mutation.AddSearchesCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MonthlyQuotaUpdateOne) SetUpdatedAt(v time.Time) *MonthlyQuotaUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MonthlyQuotaMutation object of the builder.
func (_u *MonthlyQuotaUpdateOne) Mutation() *MonthlyQuotaMutation {
	return _u.mutation
}

// Where appends a list predicates to the MonthlyQuotaUpdate builder.
func (_u *MonthlyQuotaUpdateOne) Where(ps ...predicate.MonthlyQuota) *MonthlyQuotaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MonthlyQuotaUpdateOne) Select(field string, fields ...string) *MonthlyQuotaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MonthlyQuota entity.
func (_u *MonthlyQuotaUpdateOne) Save(ctx context.Context) (*MonthlyQuota, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonthlyQuotaUpdateOne) SaveX(ctx context.Context) *MonthlyQuota {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MonthlyQuotaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonthlyQuotaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MonthlyQuotaUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := monthlyquota.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *MonthlyQuotaUpdateOne) sqlSave(ctx context.Context) (_node *MonthlyQuota, err error) {
	_spec := sqlgraph.NewUpdateSpec(monthlyquota.Table, monthlyquota.Columns, sqlgraph.NewFieldSpec(monthlyquota.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MonthlyQuota.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, monthlyquota.FieldID)
		for _, f := range fields {
			if !monthlyquota.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != monthlyquota.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(monthlyquota.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MonthKey(); ok {
		_spec.SetField(monthlyquota.FieldMonthKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SearchesCount(); ok {
		_spec.SetField(monthlyquota.FieldSearchesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSearchesCount(); ok {
		_spec.AddField(monthlyquota.FieldSearchesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(monthlyquota.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MonthlyQuota{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monthlyquota.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
