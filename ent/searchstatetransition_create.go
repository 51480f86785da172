// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bidiq/bidiq/ent/searchsession"
	"github.com/bidiq/bidiq/ent/searchstatetransition"
)

// SearchStateTransitionCreate is the builder for creating a SearchStateTransition entity.
type SearchStateTransitionCreate struct {
	config
	mutation *SearchStateTransitionMutation
	hooks    []Hook
}

// SetSearchID sets the "search_id" field.
func (_c *SearchStateTransitionCreate) SetSearchID(v string) *SearchStateTransitionCreate {
	_c.mutation.SetSearchID(v)
	return _c
}

// SetFromState sets the "from_state" field.
func (_c *SearchStateTransitionCreate) SetFromState(v string) *SearchStateTransitionCreate {
	_c.mutation.SetFromState(v)
	return _c
}

// SetToState sets the "to_state" field.
func (_c *SearchStateTransitionCreate) SetToState(v string) *SearchStateTransitionCreate {
	_c.mutation.SetToState(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *SearchStateTransitionCreate) SetStage(v string) *SearchStateTransitionCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *SearchStateTransitionCreate) SetNillableStage(v *string) *SearchStateTransitionCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *SearchStateTransitionCreate) SetDetails(v map[string]interface{}) *SearchStateTransitionCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetDurationSincePreviousMs sets the "duration_since_previous_ms" field.
func (_c *SearchStateTransitionCreate) SetDurationSincePreviousMs(v int64) *SearchStateTransitionCreate {
	_c.mutation.SetDurationSincePreviousMs(v)
	return _c
}

// SetNillableDurationSincePreviousMs sets the "duration_since_previous_ms" field if the given value is not nil.
func (_c *SearchStateTransitionCreate) SetNillableDurationSincePreviousMs(v *int64) *SearchStateTransitionCreate {
	if v != nil {
		_c.SetDurationSincePreviousMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SearchStateTransitionCreate) SetCreatedAt(v time.Time) *SearchStateTransitionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SearchStateTransitionCreate) SetNillableCreatedAt(v *time.Time) *SearchStateTransitionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSessionID sets the "session" edge to the SearchSession entity by ID.
func (_c *SearchStateTransitionCreate) SetSessionID(id string) *SearchStateTransitionCreate {
	_c.mutation.SetSessionID(id)
	return _c
}

// SetSession sets the "session" edge to the SearchSession entity.
func (_c *SearchStateTransitionCreate) SetSession(v *SearchSession) *SearchStateTransitionCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the SearchStateTransitionMutation object of the builder.
func (_c *SearchStateTransitionCreate) Mutation() *SearchStateTransitionMutation {
	return _c.mutation
}

// Save creates the SearchStateTransition in the database.
func (_c *SearchStateTransitionCreate) Save(ctx context.Context) (*SearchStateTransition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SearchStateTransitionCreate) SaveX(ctx context.Context) *SearchStateTransition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchStateTransitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchStateTransitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SearchStateTransitionCreate) defaults() {
	if _, ok := _c.mutation.DurationSincePreviousMs(); !ok {
		v := searchstatetransition.DefaultDurationSincePreviousMs
		_c.mutation.SetDurationSincePreviousMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := searchstatetransition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SearchStateTransitionCreate) check() error {
	if _, ok := _c.mutation.SearchID(); !ok {
		return &ValidationError{Name: "search_id", err: errors.New(`ent: missing required field "SearchStateTransition.search_id"`)}
	}
	if _, ok := _c.mutation.FromState(); !ok {
		return &ValidationError{Name: "from_state", err: errors.New(`ent: missing required field "SearchStateTransition.from_state"`)}
	}
	if _, ok := _c.mutation.ToState(); !ok {
		return &ValidationError{Name: "to_state", err: errors.New(`ent: missing required field "SearchStateTransition.to_state"`)}
	}
	if _, ok := _c.mutation.DurationSincePreviousMs(); !ok {
		return &ValidationError{Name: "duration_since_previous_ms", err: errors.New(`ent: missing required field "SearchStateTransition.duration_since_previous_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SearchStateTransition.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "SearchStateTransition.session"`)}
	}
	return nil
}

func (_c *SearchStateTransitionCreate) sqlSave(ctx context.Context) (*SearchStateTransition, error) {
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

func (_c *SearchStateTransitionCreate) createSpec() (*SearchStateTransition, *sqlgraph.CreateSpec) {
	var (
		_node = &SearchStateTransition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(searchstatetransition.Table, sqlgraph.NewFieldSpec(searchstatetransition.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.FromState(); ok {
		_spec.SetField(searchstatetransition.FieldFromState, field.TypeString, value)
		_node.FromState = value
	}
	if value, ok := _c.mutation.ToState(); ok {
		_spec.SetField(searchstatetransition.FieldToState, field.TypeString, value)
		_node.ToState = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(searchstatetransition.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(searchstatetransition.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.DurationSincePreviousMs(); ok {
		_spec.SetField(searchstatetransition.FieldDurationSincePreviousMs, field.TypeInt64, value)
		_node.DurationSincePreviousMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(searchstatetransition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   searchstatetransition.SessionTable,
			Columns: []string{searchstatetransition.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(searchsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SearchID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SearchStateTransitionCreateBulk is the builder for creating many SearchStateTransition entities in bulk.
type SearchStateTransitionCreateBulk struct {
	config
	err      error
	builders []*SearchStateTransitionCreate
}

// Save creates the SearchStateTransition entities in the database.
func (_c *SearchStateTransitionCreateBulk) Save(ctx context.Context) ([]*SearchStateTransition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SearchStateTransition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SearchStateTransitionMutation)
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
func (_c *SearchStateTransitionCreateBulk) SaveX(ctx context.Context) []*SearchStateTransition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchStateTransitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchStateTransitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
