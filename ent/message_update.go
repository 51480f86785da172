// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bidiq/bidiq/ent/message"
	"github.com/bidiq/bidiq/ent/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MessageUpdate) SetUserID(v string) *MessageUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableUserID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *MessageUpdate) SetKind(v string) *MessageUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableKind(v *string) *MessageUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *MessageUpdate) SetTitle(v string) *MessageUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableTitle(v *string) *MessageUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *MessageUpdate) SetBody(v string) *MessageUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableBody(v *string) *MessageUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *MessageUpdate) ClearBody() *MessageUpdate {
	_u.mutation.ClearBody()
	return _u
}

// SetSearchID sets the "search_id" field.
func (_u *MessageUpdate) SetSearchID(v string) *MessageUpdate {
	_u.mutation.SetSearchID(v)
	return _u
}

// SetNillableSearchID sets the "search_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableSearchID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetSearchID(*v)
	}
	return _u
}

// ClearSearchID clears the value of the "search_id" field.
func (_u *MessageUpdate) ClearSearchID() *MessageUpdate {
	_u.mutation.ClearSearchID()
	return _u
}

// SetRead sets the "read" field.
func (_u *MessageUpdate) SetRead(v bool) *MessageUpdate {
	_u.mutation.SetRead(v)
	return _u
}

// SetNillableRead sets the "read" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableRead(v *bool) *MessageUpdate {
	if v != nil {
		_u.SetRead(*v)
	}
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(message.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(message.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(message.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(message.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(message.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.SearchID(); ok {
		_spec.SetField(message.FieldSearchID, field.TypeString, value)
	}
	if _u.mutation.SearchIDCleared() {
		_spec.ClearField(message.FieldSearchID, field.TypeString)
	}
	if value, ok := _u.mutation.Read(); ok {
		_spec.SetField(message.FieldRead, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetUserID sets the "user_id" field.
func (_u *MessageUpdateOne) SetUserID(v string) *MessageUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableUserID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *MessageUpdateOne) SetKind(v string) *MessageUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableKind(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *MessageUpdateOne) SetTitle(v string) *MessageUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableTitle(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *MessageUpdateOne) SetBody(v string) *MessageUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableBody(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *MessageUpdateOne) ClearBody() *MessageUpdateOne {
	_u.mutation.ClearBody()
	return _u
}

// SetSearchID sets the "search_id" field.
func (_u *MessageUpdateOne) SetSearchID(v string) *MessageUpdateOne {
	_u.mutation.SetSearchID(v)
	return _u
}

// SetNillableSearchID sets the "search_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableSearchID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetSearchID(*v)
	}
	return _u
}

// ClearSearchID clears the value of the "search_id" field.
func (_u *MessageUpdateOne) ClearSearchID() *MessageUpdateOne {
	_u.mutation.ClearSearchID()
	return _u
}

// SetRead sets the "read" field.
func (_u *MessageUpdateOne) SetRead(v bool) *MessageUpdateOne {
	_u.mutation.SetRead(v)
	return _u
}

// SetNillableRead sets the "read" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableRead(v *bool) *MessageUpdateOne {
	if v != nil {
		_u.SetRead(*v)
	}
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
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
		_spec.SetField(message.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(message.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(message.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(message.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(message.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.SearchID(); ok {
		_spec.SetField(message.FieldSearchID, field.TypeString, value)
	}
	if _u.mutation.SearchIDCleared() {
		_spec.ClearField(message.FieldSearchID, field.TypeString)
	}
	if value, ok := _u.mutation.Read(); ok {
		_spec.SetField(message.FieldRead, field.TypeBool, value)
	}
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
