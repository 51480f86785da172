// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bidiq/bidiq/ent/predicate"
	"github.com/bidiq/bidiq/ent/searchsession"
	"github.com/bidiq/bidiq/ent/searchstatetransition"
)

// SearchStateTransitionUpdate is the builder for updating SearchStateTransition entities.
type SearchStateTransitionUpdate struct {
	config
	hooks    []Hook
	mutation *SearchStateTransitionMutation
}

// Where appends a list predicates to the SearchStateTransitionUpdate builder.
func (_u *SearchStateTransitionUpdate) Where(ps ...predicate.SearchStateTransition) *SearchStateTransitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSearchID sets the "search_id" field.
func (_u *SearchStateTransitionUpdate) SetSearchID(v string) *SearchStateTransitionUpdate {
	_u.mutation.SetSearchID(v)
	return _u
}

// SetNillableSearchID sets the "search_id" field if the given value is not nil.
func (_u *SearchStateTransitionUpdate) SetNillableSearchID(v *string) *SearchStateTransitionUpdate {
	if v != nil {
		_u.SetSearchID(*v)
	}
	return _u
}

// SetFromState sets the "from_state" field.
func (_u *SearchStateTransitionUpdate) SetFromState(v string) *SearchStateTransitionUpdate {
	_u.mutation.SetFromState(v)
	return _u
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (_u *SearchStateTransitionUpdate) SetNillableFromState(v *string) *SearchStateTransitionUpdate {
	if v != nil {
		_u.SetFromState(*v)
	}
	return _u
}

// SetToState sets the "to_state" field.
func (_u *SearchStateTransitionUpdate) SetToState(v string) *SearchStateTransitionUpdate {
	_u.mutation.SetToState(v)
	return _u
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (_u *SearchStateTransitionUpdate) SetNillableToState(v *string) *SearchStateTransitionUpdate {
	if v != nil {
		_u.SetToState(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *SearchStateTransitionUpdate) SetStage(v string) *SearchStateTransitionUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *SearchStateTransitionUpdate) SetNillableStage(v *string) *SearchStateTransitionUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// ClearStage clears the value of the "stage" field.
func (_u *SearchStateTransitionUpdate) ClearStage() *SearchStateTransitionUpdate {
	_u.mutation.ClearStage()
	return _u
}

// SetDetails sets the "details" field.
func (_u *SearchStateTransitionUpdate) SetDetails(v map[string]interface{}) *SearchStateTransitionUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *SearchStateTransitionUpdate) ClearDetails() *SearchStateTransitionUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// SetDurationSincePreviousMs sets the "duration_since_previous_ms" field.
func (_u *SearchStateTransitionUpdate) SetDurationSincePreviousMs(v int64) *SearchStateTransitionUpdate {
	_u.mutation.ResetDurationSincePreviousMs()
	_u.mutation.SetDurationSincePreviousMs(v)
	return _u
}

// SetNillableDurationSincePreviousMs sets the "duration_since_previous_ms" field if the given value is not nil.
func (_u *SearchStateTransitionUpdate) SetNillableDurationSincePreviousMs(v *int64) *SearchStateTransitionUpdate {
	if v != nil {
		_u.SetDurationSincePreviousMs(*v)
	}
	return _u
}

// AddDurationSincePreviousMs adds value to the "duration_since_previous_ms" field.
func (_u *SearchStateTransitionUpdate) AddDurationSincePreviousMs(v int64) *SearchStateTransitionUpdate {
	_u.mutation.AddDurationSincePreviousMs(v)
	return _u
}

// SetSessionID sets the "session" edge to the SearchSession entity by ID.
func (_u *SearchStateTransitionUpdate) SetSessionID(id string) *SearchStateTransitionUpdate {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetSession sets the "session" edge to the SearchSession entity.
func (_u *SearchStateTransitionUpdate) SetSession(v *SearchSession) *SearchStateTransitionUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the SearchStateTransitionMutation object of the builder.
func (_u *SearchStateTransitionUpdate) Mutation() *SearchStateTransitionMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the SearchSession entity.
func (_u *SearchStateTransitionUpdate) ClearSession() *SearchStateTransitionUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SearchStateTransitionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchStateTransitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SearchStateTransitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchStateTransitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SearchStateTransitionUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SearchStateTransition.session"`)
	}
	return nil
}

func (_u *SearchStateTransitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(searchstatetransition.Table, searchstatetransition.Columns, sqlgraph.NewFieldSpec(searchstatetransition.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FromState(); ok {
		_spec.SetField(searchstatetransition.FieldFromState, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToState(); ok {
		_spec.SetField(searchstatetransition.FieldToState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(searchstatetransition.FieldStage, field.TypeString, value)
	}
	if _u.mutation.StageCleared() {
		_spec.ClearField(searchstatetransition.FieldStage, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(searchstatetransition.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(searchstatetransition.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationSincePreviousMs(); ok {
		_spec.SetField(searchstatetransition.FieldDurationSincePreviousMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationSincePreviousMs(); ok {
		_spec.AddField(searchstatetransition.FieldDurationSincePreviousMs, field.TypeInt64, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{searchstatetransition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SearchStateTransitionUpdateOne is the builder for updating a single SearchStateTransition entity.
type SearchStateTransitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SearchStateTransitionMutation
}

// SetSearchID sets the "search_id" field.
func (_u *SearchStateTransitionUpdateOne) SetSearchID(v string) *SearchStateTransitionUpdateOne {
	_u.mutation.SetSearchID(v)
	return _u
}

// SetNillableSearchID sets the "search_id" field if the given value is not nil.
func (_u *SearchStateTransitionUpdateOne) SetNillableSearchID(v *string) *SearchStateTransitionUpdateOne {
	if v != nil {
		_u.SetSearchID(*v)
	}
	return _u
}

// SetFromState sets the "from_state" field.
func (_u *SearchStateTransitionUpdateOne) SetFromState(v string) *SearchStateTransitionUpdateOne {
	_u.mutation.SetFromState(v)
	return _u
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (_u *SearchStateTransitionUpdateOne) SetNillableFromState(v *string) *SearchStateTransitionUpdateOne {
	if v != nil {
		_u.SetFromState(*v)
	}
	return _u
}

// SetToState sets the "to_state" field.
func (_u *SearchStateTransitionUpdateOne) SetToState(v string) *SearchStateTransitionUpdateOne {
	_u.mutation.SetToState(v)
	return _u
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (_u *SearchStateTransitionUpdateOne) SetNillableToState(v *string) *SearchStateTransitionUpdateOne {
	if v != nil {
		_u.SetToState(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *SearchStateTransitionUpdateOne) SetStage(v string) *SearchStateTransitionUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *SearchStateTransitionUpdateOne) SetNillableStage(v *string) *SearchStateTransitionUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// ClearStage clears the value of the "stage" field.
func (_u *SearchStateTransitionUpdateOne) ClearStage() *SearchStateTransitionUpdateOne {
	_u.mutation.ClearStage()
	return _u
}

// SetDetails sets the "details" field.
func (_u *SearchStateTransitionUpdateOne) SetDetails(v map[string]interface{}) *SearchStateTransitionUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *SearchStateTransitionUpdateOne) ClearDetails() *SearchStateTransitionUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// SetDurationSincePreviousMs sets the "duration_since_previous_ms" field.
func (_u *SearchStateTransitionUpdateOne) SetDurationSincePreviousMs(v int64) *SearchStateTransitionUpdateOne {
	_u.mutation.ResetDurationSincePreviousMs()
	_u.mutation.SetDurationSincePreviousMs(v)
	return _u
}

// SetNillableDurationSincePreviousMs sets the "duration_since_previous_ms" field if the given value is not nil.
func (_u *SearchStateTransitionUpdateOne) SetNillableDurationSincePreviousMs(v *int64) *SearchStateTransitionUpdateOne {
	if v != nil {
		_u.SetDurationSincePreviousMs(*v)
	}
	return _u
}

// AddDurationSincePreviousMs adds value to the "duration_since_previous_ms" field.
func (_u *SearchStateTransitionUpdateOne) AddDurationSincePreviousMs(v int64) *SearchStateTransitionUpdateOne {
	_u.mutation.AddDurationSincePreviousMs(v)
	return _u
}

// SetSessionID sets the "session" edge to the SearchSession entity by ID.
func (_u *SearchStateTransitionUpdateOne) SetSessionID(id string) *SearchStateTransitionUpdateOne {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetSession sets the "session" edge to the SearchSession entity.
func (_u *SearchStateTransitionUpdateOne) SetSession(v *SearchSession) *SearchStateTransitionUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the SearchStateTransitionMutation object of the builder.
func (_u *SearchStateTransitionUpdateOne) Mutation() *SearchStateTransitionMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the SearchSession entity.
func (_u *SearchStateTransitionUpdateOne) ClearSession() *SearchStateTransitionUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the SearchStateTransitionUpdate builder.
func (_u *SearchStateTransitionUpdateOne) Where(ps ...predicate.SearchStateTransition) *SearchStateTransitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SearchStateTransitionUpdateOne) Select(field string, fields ...string) *SearchStateTransitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SearchStateTransition entity.
func (_u *SearchStateTransitionUpdateOne) Save(ctx context.Context) (*SearchStateTransition, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchStateTransitionUpdateOne) SaveX(ctx context.Context) *SearchStateTransition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SearchStateTransitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchStateTransitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SearchStateTransitionUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SearchStateTransition.session"`)
	}
	return nil
}

func (_u *SearchStateTransitionUpdateOne) sqlSave(ctx context.Context) (_node *SearchStateTransition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(searchstatetransition.Table, searchstatetransition.Columns, sqlgraph.NewFieldSpec(searchstatetransition.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SearchStateTransition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, searchstatetransition.FieldID)
		for _, f := range fields {
			if !searchstatetransition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != searchstatetransition.FieldID {
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
	if value, ok := _u.mutation.FromState(); ok {
		_spec.SetField(searchstatetransition.FieldFromState, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToState(); ok {
		_spec.SetField(searchstatetransition.FieldToState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(searchstatetransition.FieldStage, field.TypeString, value)
	}
	if _u.mutation.StageCleared() {
		_spec.ClearField(searchstatetransition.FieldStage, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(searchstatetransition.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(searchstatetransition.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationSincePreviousMs(); ok {
		_spec.SetField(searchstatetransition.FieldDurationSincePreviousMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationSincePreviousMs(); ok {
		_spec.AddField(searchstatetransition.FieldDurationSincePreviousMs, field.TypeInt64, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SearchStateTransition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{searchstatetransition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
