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
	"github.com/bidiq/bidiq/ent/predicate"
	"github.com/bidiq/bidiq/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProfileUpdate) SetEmail(v string) *ProfileUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableEmail(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ProfileUpdate) ClearEmail() *ProfileUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetIsAdmin sets the "is_admin" field.
func (_u *ProfileUpdate) SetIsAdmin(v bool) *ProfileUpdate {
	_u.mutation.SetIsAdmin(v)
	return _u
}

// SetNillableIsAdmin sets the "is_admin" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableIsAdmin(v *bool) *ProfileUpdate {
	if v != nil {
		_u.SetIsAdmin(*v)
	}
	return _u
}

// SetPlanType sets the "plan_type" field.
func (_u *ProfileUpdate) SetPlanType(v string) *ProfileUpdate {
	_u.mutation.SetPlanType(v)
	return _u
}

// SetNillablePlanType sets the "plan_type" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillablePlanType(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetPlanType(*v)
	}
	return _u
}

// SetTrialExpiresAt sets the "trial_expires_at" field.
func (_u *ProfileUpdate) SetTrialExpiresAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetTrialExpiresAt(v)
	return _u
}

// SetNillableTrialExpiresAt sets the "trial_expires_at" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableTrialExpiresAt(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetTrialExpiresAt(*v)
	}
	return _u
}

// ClearTrialExpiresAt clears the value of the "trial_expires_at" field.
func (_u *ProfileUpdate) ClearTrialExpiresAt() *ProfileUpdate {
	_u.mutation.ClearTrialExpiresAt()
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(profile.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.IsAdmin(); ok {
		_spec.SetField(profile.FieldIsAdmin, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PlanType(); ok {
		_spec.SetField(profile.FieldPlanType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrialExpiresAt(); ok {
		_spec.SetField(profile.FieldTrialExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.TrialExpiresAtCleared() {
		_spec.ClearField(profile.FieldTrialExpiresAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetEmail sets the "email" field.
func (_u *ProfileUpdateOne) SetEmail(v string) *ProfileUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableEmail(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ProfileUpdateOne) ClearEmail() *ProfileUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetIsAdmin sets the "is_admin" field.
func (_u *ProfileUpdateOne) SetIsAdmin(v bool) *ProfileUpdateOne {
	_u.mutation.SetIsAdmin(v)
	return _u
}

// SetNillableIsAdmin sets the "is_admin" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableIsAdmin(v *bool) *ProfileUpdateOne {
	if v != nil {
		_u.SetIsAdmin(*v)
	}
	return _u
}

// SetPlanType sets the "plan_type" field.
func (_u *ProfileUpdateOne) SetPlanType(v string) *ProfileUpdateOne {
	_u.mutation.SetPlanType(v)
	return _u
}

// SetNillablePlanType sets the "plan_type" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillablePlanType(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetPlanType(*v)
	}
	return _u
}

// SetTrialExpiresAt sets the "trial_expires_at" field.
func (_u *ProfileUpdateOne) SetTrialExpiresAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetTrialExpiresAt(v)
	return _u
}

// SetNillableTrialExpiresAt sets the "trial_expires_at" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableTrialExpiresAt(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetTrialExpiresAt(*v)
	}
	return _u
}

// ClearTrialExpiresAt clears the value of the "trial_expires_at" field.
func (_u *ProfileUpdateOne) ClearTrialExpiresAt() *ProfileUpdateOne {
	_u.mutation.ClearTrialExpiresAt()
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(profile.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.IsAdmin(); ok {
		_spec.SetField(profile.FieldIsAdmin, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PlanType(); ok {
		_spec.SetField(profile.FieldPlanType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrialExpiresAt(); ok {
		_spec.SetField(profile.FieldTrialExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.TrialExpiresAtCleared() {
		_spec.ClearField(profile.FieldTrialExpiresAt, field.TypeTime)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
