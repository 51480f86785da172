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
	"github.com/bidiq/bidiq/ent/oauthtoken"
	"github.com/bidiq/bidiq/ent/predicate"
)

// OAuthTokenUpdate is the builder for updating OAuthToken entities.
type OAuthTokenUpdate struct {
	config
	hooks    []Hook
	mutation *OAuthTokenMutation
}

// Where appends a list predicates to the OAuthTokenUpdate builder.
func (_u *OAuthTokenUpdate) Where(ps ...predicate.OAuthToken) *OAuthTokenUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *OAuthTokenUpdate) SetUserID(v string) *OAuthTokenUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OAuthTokenUpdate) SetNillableUserID(v *string) *OAuthTokenUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *OAuthTokenUpdate) SetProvider(v string) *OAuthTokenUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *OAuthTokenUpdate) SetNillableProvider(v *string) *OAuthTokenUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetAccessTokenEncrypted sets the "access_token_encrypted" field.
func (_u *OAuthTokenUpdate) SetAccessTokenEncrypted(v string) *OAuthTokenUpdate {
	_u.mutation.SetAccessTokenEncrypted(v)
	return _u
}

// SetNillableAccessTokenEncrypted sets the "access_token_encrypted" field if the given value is not nil.
func (_u *OAuthTokenUpdate) SetNillableAccessTokenEncrypted(v *string) *OAuthTokenUpdate {
	if v != nil {
		_u.SetAccessTokenEncrypted(*v)
	}
	return _u
}

// SetRefreshTokenEncrypted sets the "refresh_token_encrypted" field.
func (_u *OAuthTokenUpdate) SetRefreshTokenEncrypted(v string) *OAuthTokenUpdate {
	_u.mutation.SetRefreshTokenEncrypted(v)
	return _u
}

// SetNillableRefreshTokenEncrypted sets the "refresh_token_encrypted" field if the given value is not nil.
func (_u *OAuthTokenUpdate) SetNillableRefreshTokenEncrypted(v *string) *OAuthTokenUpdate {
	if v != nil {
		_u.SetRefreshTokenEncrypted(*v)
	}
	return _u
}

// ClearRefreshTokenEncrypted clears the value of the "refresh_token_encrypted" field.
func (_u *OAuthTokenUpdate) ClearRefreshTokenEncrypted() *OAuthTokenUpdate {
	_u.mutation.ClearRefreshTokenEncrypted()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *OAuthTokenUpdate) SetExpiresAt(v time.Time) *OAuthTokenUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *OAuthTokenUpdate) SetNillableExpiresAt(v *time.Time) *OAuthTokenUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *OAuthTokenUpdate) ClearExpiresAt() *OAuthTokenUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OAuthTokenUpdate) SetUpdatedAt(v time.Time) *OAuthTokenUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OAuthTokenMutation object of the builder.
func (_u *OAuthTokenUpdate) Mutation() *OAuthTokenMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OAuthTokenUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OAuthTokenUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OAuthTokenUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OAuthTokenUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OAuthTokenUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := oauthtoken.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *OAuthTokenUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(oauthtoken.Table, oauthtoken.Columns, sqlgraph.NewFieldSpec(oauthtoken.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(oauthtoken.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(oauthtoken.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccessTokenEncrypted(); ok {
		_spec.SetField(oauthtoken.FieldAccessTokenEncrypted, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefreshTokenEncrypted(); ok {
		_spec.SetField(oauthtoken.FieldRefreshTokenEncrypted, field.TypeString, value)
	}
	if _u.mutation.RefreshTokenEncryptedCleared() {
		_spec.ClearField(oauthtoken.FieldRefreshTokenEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(oauthtoken.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(oauthtoken.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(oauthtoken.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{oauthtoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OAuthTokenUpdateOne is the builder for updating a single OAuthToken entity.
type OAuthTokenUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OAuthTokenMutation
}

// SetUserID sets the "user_id" field.
func (_u *OAuthTokenUpdateOne) SetUserID(v string) *OAuthTokenUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OAuthTokenUpdateOne) SetNillableUserID(v *string) *OAuthTokenUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *OAuthTokenUpdateOne) SetProvider(v string) *OAuthTokenUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *OAuthTokenUpdateOne) SetNillableProvider(v *string) *OAuthTokenUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetAccessTokenEncrypted sets the "access_token_encrypted" field.
func (_u *OAuthTokenUpdateOne) SetAccessTokenEncrypted(v string) *OAuthTokenUpdateOne {
	_u.mutation.SetAccessTokenEncrypted(v)
	return _u
}

// SetNillableAccessTokenEncrypted sets the "access_token_encrypted" field if the given value is not nil.
func (_u *OAuthTokenUpdateOne) SetNillableAccessTokenEncrypted(v *string) *OAuthTokenUpdateOne {
	if v != nil {
		_u.SetAccessTokenEncrypted(*v)
	}
	return _u
}

// SetRefreshTokenEncrypted sets the "refresh_token_encrypted" field.
func (_u *OAuthTokenUpdateOne) SetRefreshTokenEncrypted(v string) *OAuthTokenUpdateOne {
	_u.mutation.SetRefreshTokenEncrypted(v)
	return _u
}

// SetNillableRefreshTokenEncrypted sets the "refresh_token_encrypted" field if the given value is not nil.
func (_u *OAuthTokenUpdateOne) SetNillableRefreshTokenEncrypted(v *string) *OAuthTokenUpdateOne {
	if v != nil {
		_u.SetRefreshTokenEncrypted(*v)
	}
	return _u
}

// ClearRefreshTokenEncrypted clears the value of the "refresh_token_encrypted" field.
func (_u *OAuthTokenUpdateOne) ClearRefreshTokenEncrypted() *OAuthTokenUpdateOne {
	_u.mutation.ClearRefreshTokenEncrypted()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *OAuthTokenUpdateOne) SetExpiresAt(v time.Time) *OAuthTokenUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *OAuthTokenUpdateOne) SetNillableExpiresAt(v *time.Time) *OAuthTokenUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *OAuthTokenUpdateOne) ClearExpiresAt() *OAuthTokenUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OAuthTokenUpdateOne) SetUpdatedAt(v time.Time) *OAuthTokenUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OAuthTokenMutation object of the builder.
func (_u *OAuthTokenUpdateOne) Mutation() *OAuthTokenMutation {
	return _u.mutation
}

// Where appends a list predicates to the OAuthTokenUpdate builder.
func (_u *OAuthTokenUpdateOne) Where(ps ...predicate.OAuthToken) *OAuthTokenUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OAuthTokenUpdateOne) Select(field string, fields ...string) *OAuthTokenUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OAuthToken entity.
func (_u *OAuthTokenUpdateOne) Save(ctx context.Context) (*OAuthToken, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OAuthTokenUpdateOne) SaveX(ctx context.Context) *OAuthToken {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OAuthTokenUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OAuthTokenUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OAuthTokenUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := oauthtoken.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *OAuthTokenUpdateOne) sqlSave(ctx context.Context) (_node *OAuthToken, err error) {
	_spec := sqlgraph.NewUpdateSpec(oauthtoken.Table, oauthtoken.Columns, sqlgraph.NewFieldSpec(oauthtoken.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OAuthToken.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, oauthtoken.FieldID)
		for _, f := range fields {
			if !oauthtoken.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != oauthtoken.FieldID {
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
		_spec.SetField(oauthtoken.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(oauthtoken.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccessTokenEncrypted(); ok {
		_spec.SetField(oauthtoken.FieldAccessTokenEncrypted, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefreshTokenEncrypted(); ok {
		_spec.SetField(oauthtoken.FieldRefreshTokenEncrypted, field.TypeString, value)
	}
	if _u.mutation.RefreshTokenEncryptedCleared() {
		_spec.ClearField(oauthtoken.FieldRefreshTokenEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(oauthtoken.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(oauthtoken.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(oauthtoken.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &OAuthToken{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{oauthtoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
