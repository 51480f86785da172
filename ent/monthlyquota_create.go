// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bidiq/bidiq/ent/monthlyquota"
)

// MonthlyQuotaCreate is the builder for creating a MonthlyQuota entity.
type MonthlyQuotaCreate struct {
	config
	mutation *MonthlyQuotaMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *MonthlyQuotaCreate) SetUserID(v string) *MonthlyQuotaCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetMonthKey sets the "month_key" field.
func (_c *MonthlyQuotaCreate) SetMonthKey(v string) *MonthlyQuotaCreate {
	_c.mutation.SetMonthKey(v)
	return _c
}

// SetSearchesCount sets the "searches_count" field.
func (_c *MonthlyQuotaCreate) SetSearchesCount(v int) *MonthlyQuotaCreate {
	_c.mutation.SetSearchesCount(v)
	return _c
}

// SetNillableSearchesCount sets the "searches_count" field if the given value is not nil.
func (_c *MonthlyQuotaCreate) SetNillableSearchesCount(v *int) *MonthlyQuotaCreate {
	if v != nil {
		_c.SetSearchesCount(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MonthlyQuotaCreate) SetUpdatedAt(v time.Time) *MonthlyQuotaCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MonthlyQuotaCreate) SetNillableUpdatedAt(v *time.Time) *MonthlyQuotaCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the MonthlyQuotaMutation object of the builder.
func (_c *MonthlyQuotaCreate) Mutation() *MonthlyQuotaMutation {
	return _c.mutation
}

// Save creates the MonthlyQuota in the database.
func (_c *MonthlyQuotaCreate) Save(ctx context.Context) (*MonthlyQuota, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MonthlyQuotaCreate) SaveX(ctx context.Context) *MonthlyQuota {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonthlyQuotaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonthlyQuotaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MonthlyQuotaCreate) defaults() {
	if _, ok := _c.mutation.SearchesCount(); !ok {
		v := monthlyquota.DefaultSearchesCount
		_c.mutation.SetSearchesCount(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := monthlyquota.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MonthlyQuotaCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MonthlyQuota.user_id"`)}
	}
	if _, ok := _c.mutation.MonthKey(); !ok {
		return &ValidationError{Name: "month_key", err: errors.New(`ent: missing required field "MonthlyQuota.month_key"`)}
	}
	if _, ok := _c.mutation.SearchesCount(); !ok {
		return &ValidationError{Name: "searches_count", err: errors.New(`ent: missing required field "MonthlyQuota.searches_count"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MonthlyQuota.updated_at"`)}
	}
	return nil
}

func (_c *MonthlyQuotaCreate) sqlSave(ctx context.Context) (*MonthlyQuota, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MonthlyQuotaCreate) createSpec() (*MonthlyQuota, *sqlgraph.CreateSpec) {
	var (
		_node = &MonthlyQuota{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(monthlyquota.Table, sqlgraph.NewFieldSpec(monthlyquota.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(monthlyquota.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.MonthKey(); ok {
		_spec.SetField(monthlyquota.FieldMonthKey, field.TypeString, value)
		_node.MonthKey = value
	}
	if value, ok := _c.mutation.SearchesCount(); ok {
		_spec.SetField(monthlyquota.FieldSearchesCount, field.TypeInt, value)
		_node.SearchesCount = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(monthlyquota.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// MonthlyQuotaCreateBulk is the builder for creating many MonthlyQuota entities in bulk.
type MonthlyQuotaCreateBulk struct {
	config
	err      error
	builders []*MonthlyQuotaCreate
}

// Save creates the MonthlyQuota entities in the database.
func (_c *MonthlyQuotaCreateBulk) Save(ctx context.Context) ([]*MonthlyQuota, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MonthlyQuota, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MonthlyQuotaMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MonthlyQuotaCreateBulk) SaveX(ctx context.Context) []*MonthlyQuota {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonthlyQuotaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonthlyQuotaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
