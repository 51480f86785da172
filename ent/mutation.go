// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bidiq/bidiq/ent/message"
	"github.com/bidiq/bidiq/ent/monthlyquota"
	"github.com/bidiq/bidiq/ent/oauthtoken"
	"github.com/bidiq/bidiq/ent/predicate"
	"github.com/bidiq/bidiq/ent/profile"
	"github.com/bidiq/bidiq/ent/searchsession"
	"github.com/bidiq/bidiq/ent/searchstatetransition"
	"github.com/bidiq/bidiq/ent/usersubscription"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeMessage               = "Message"
	TypeMonthlyQuota          = "MonthlyQuota"
	TypeOAuthToken            = "OAuthToken"
	TypeProfile               = "Profile"
	TypeSearchSession         = "SearchSession"
	TypeSearchStateTransition = "SearchStateTransition"
	TypeUserSubscription      = "UserSubscription"
)

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	kind          *string
	title         *string
	body          *string
	search_id     *string
	read          *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Message, error)
	predicates    []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id int) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *MessageMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MessageMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MessageMutation) ResetUserID() {
	m.user_id = nil
}

// SetKind sets the "kind" field.
func (m *MessageMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *MessageMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *MessageMutation) ResetKind() {
	m.kind = nil
}

// SetTitle sets the "title" field.
func (m *MessageMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *MessageMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *MessageMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *MessageMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *MessageMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *MessageMutation) ClearBody() {
	m.body = nil
	m.clearedFields[message.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *MessageMutation) BodyCleared() bool {
	_, ok := m.clearedFields[message.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *MessageMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, message.FieldBody)
}

// SetSearchID sets the "search_id" field.
func (m *MessageMutation) SetSearchID(s string) {
	m.search_id = &s
}

// SearchID returns the value of the "search_id" field in the mutation.
func (m *MessageMutation) SearchID() (r string, exists bool) {
	v := m.search_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSearchID returns the old "search_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSearchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSearchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSearchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSearchID: %w", err)
	}
	return oldValue.SearchID, nil
}

// ClearSearchID clears the value of the "search_id" field.
func (m *MessageMutation) ClearSearchID() {
	m.search_id = nil
	m.clearedFields[message.FieldSearchID] = struct{}{}
}

// SearchIDCleared returns if the "search_id" field was cleared in this mutation.
func (m *MessageMutation) SearchIDCleared() bool {
	_, ok := m.clearedFields[message.FieldSearchID]
	return ok
}

// ResetSearchID resets all changes to the "search_id" field.
func (m *MessageMutation) ResetSearchID() {
	m.search_id = nil
	delete(m.clearedFields, message.FieldSearchID)
}

// SetRead sets the "read" field.
func (m *MessageMutation) SetRead(b bool) {
	m.read = &b
}

// Read returns the value of the "read" field in the mutation.
func (m *MessageMutation) Read() (r bool, exists bool) {
	v := m.read
	if v == nil {
		return
	}
	return *v, true
}

// OldRead returns the old "read" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRead: %w", err)
	}
	return oldValue.Read, nil
}

// ResetRead resets all changes to the "read" field.
func (m *MessageMutation) ResetRead() {
	m.read = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, message.FieldUserID)
	}
	if m.kind != nil {
		fields = append(fields, message.FieldKind)
	}
	if m.title != nil {
		fields = append(fields, message.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, message.FieldBody)
	}
	if m.search_id != nil {
		fields = append(fields, message.FieldSearchID)
	}
	if m.read != nil {
		fields = append(fields, message.FieldRead)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldUserID:
		return m.UserID()
	case message.FieldKind:
		return m.Kind()
	case message.FieldTitle:
		return m.Title()
	case message.FieldBody:
		return m.Body()
	case message.FieldSearchID:
		return m.SearchID()
	case message.FieldRead:
		return m.Read()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldUserID:
		return m.OldUserID(ctx)
	case message.FieldKind:
		return m.OldKind(ctx)
	case message.FieldTitle:
		return m.OldTitle(ctx)
	case message.FieldBody:
		return m.OldBody(ctx)
	case message.FieldSearchID:
		return m.OldSearchID(ctx)
	case message.FieldRead:
		return m.OldRead(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case message.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case message.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case message.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case message.FieldSearchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSearchID(v)
		return nil
	case message.FieldRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRead(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldBody) {
		fields = append(fields, message.FieldBody)
	}
	if m.FieldCleared(message.FieldSearchID) {
		fields = append(fields, message.FieldSearchID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldBody:
		m.ClearBody()
		return nil
	case message.FieldSearchID:
		m.ClearSearchID()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldUserID:
		m.ResetUserID()
		return nil
	case message.FieldKind:
		m.ResetKind()
		return nil
	case message.FieldTitle:
		m.ResetTitle()
		return nil
	case message.FieldBody:
		m.ResetBody()
		return nil
	case message.FieldSearchID:
		m.ResetSearchID()
		return nil
	case message.FieldRead:
		m.ResetRead()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Message edge %s", name)
}

// MonthlyQuotaMutation represents an operation that mutates the MonthlyQuota nodes in the graph.
type MonthlyQuotaMutation struct {
	config
	op                Op
	typ               string
	id                *int
	user_id           *string
	month_key         *string
	searches_count    *int
	addsearches_count *int
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*MonthlyQuota, error)
	predicates        []predicate.MonthlyQuota
}

var _ ent.Mutation = (*MonthlyQuotaMutation)(nil)

// monthlyquotaOption allows management of the mutation configuration using functional options.
type monthlyquotaOption func(*MonthlyQuotaMutation)

// newMonthlyQuotaMutation creates new mutation for the MonthlyQuota entity.
func newMonthlyQuotaMutation(c config, op Op, opts ...monthlyquotaOption) *MonthlyQuotaMutation {
	m := &MonthlyQuotaMutation{
		config:        c,
		op:            op,
		typ:           TypeMonthlyQuota,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMonthlyQuotaID sets the ID field of the mutation.
func withMonthlyQuotaID(id int) monthlyquotaOption {
	return func(m *MonthlyQuotaMutation) {
		var (
			err   error
			once  sync.Once
			value *MonthlyQuota
		)
		m.oldValue = func(ctx context.Context) (*MonthlyQuota, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MonthlyQuota.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMonthlyQuota sets the old MonthlyQuota of the mutation.
func withMonthlyQuota(node *MonthlyQuota) monthlyquotaOption {
	return func(m *MonthlyQuotaMutation) {
		m.oldValue = func(context.Context) (*MonthlyQuota, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MonthlyQuotaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MonthlyQuotaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MonthlyQuotaMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MonthlyQuotaMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MonthlyQuota.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *MonthlyQuotaMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MonthlyQuotaMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MonthlyQuota entity.
// If the MonthlyQuota object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthlyQuotaMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MonthlyQuotaMutation) ResetUserID() {
	m.user_id = nil
}

// SetMonthKey sets the "month_key" field.
func (m *MonthlyQuotaMutation) SetMonthKey(s string) {
	m.month_key = &s
}

// MonthKey returns the value of the "month_key" field in the mutation.
func (m *MonthlyQuotaMutation) MonthKey() (r string, exists bool) {
	v := m.month_key
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthKey returns the old "month_key" field's value of the MonthlyQuota entity.
// If the MonthlyQuota object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthlyQuotaMutation) OldMonthKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthKey: %w", err)
	}
	return oldValue.MonthKey, nil
}

// ResetMonthKey resets all changes to the "month_key" field.
func (m *MonthlyQuotaMutation) ResetMonthKey() {
	m.month_key = nil
}

// SetSearchesCount sets the "searches_count" field.
func (m *MonthlyQuotaMutation) SetSearchesCount(i int) {
	m.searches_count = &i
	m.addsearches_count = nil
}

// SearchesCount returns the value of the "searches_count" field in the mutation.
func (m *MonthlyQuotaMutation) SearchesCount() (r int, exists bool) {
	v := m.searches_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSearchesCount returns the old "searches_count" field's value of the MonthlyQuota entity.
// If the MonthlyQuota object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthlyQuotaMutation) OldSearchesCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSearchesCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSearchesCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSearchesCount: %w", err)
	}
	return oldValue.SearchesCount, nil
}

// AddSearchesCount adds i to the "searches_count" field.
func (m *MonthlyQuotaMutation) AddSearchesCount(i int) {
	if m.addsearches_count != nil {
		*m.addsearches_count += i
	} else {
		m.addsearches_count = &i
	}
}

// AddedSearchesCount returns the value that was added to the "searches_count" field in this mutation.
func (m *MonthlyQuotaMutation) AddedSearchesCount() (r int, exists bool) {
	v := m.addsearches_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSearchesCount resets all changes to the "searches_count" field.
func (m *MonthlyQuotaMutation) ResetSearchesCount() {
	m.searches_count = nil
	m.addsearches_count = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MonthlyQuotaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MonthlyQuotaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MonthlyQuota entity.
// If the MonthlyQuota object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthlyQuotaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MonthlyQuotaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MonthlyQuotaMutation builder.
func (m *MonthlyQuotaMutation) Where(ps ...predicate.MonthlyQuota) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MonthlyQuotaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MonthlyQuotaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MonthlyQuota, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MonthlyQuotaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MonthlyQuotaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MonthlyQuota).
func (m *MonthlyQuotaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MonthlyQuotaMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, monthlyquota.FieldUserID)
	}
	if m.month_key != nil {
		fields = append(fields, monthlyquota.FieldMonthKey)
	}
	if m.searches_count != nil {
		fields = append(fields, monthlyquota.FieldSearchesCount)
	}
	if m.updated_at != nil {
		fields = append(fields, monthlyquota.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MonthlyQuotaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case monthlyquota.FieldUserID:
		return m.UserID()
	case monthlyquota.FieldMonthKey:
		return m.MonthKey()
	case monthlyquota.FieldSearchesCount:
		return m.SearchesCount()
	case monthlyquota.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MonthlyQuotaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case monthlyquota.FieldUserID:
		return m.OldUserID(ctx)
	case monthlyquota.FieldMonthKey:
		return m.OldMonthKey(ctx)
	case monthlyquota.FieldSearchesCount:
		return m.OldSearchesCount(ctx)
	case monthlyquota.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MonthlyQuota field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonthlyQuotaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case monthlyquota.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case monthlyquota.FieldMonthKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthKey(v)
		return nil
	case monthlyquota.FieldSearchesCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSearchesCount(v)
		return nil
	case monthlyquota.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MonthlyQuota field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MonthlyQuotaMutation) AddedFields() []string {
	var fields []string
	if m.addsearches_count != nil {
		fields = append(fields, monthlyquota.FieldSearchesCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MonthlyQuotaMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case monthlyquota.FieldSearchesCount:
		return m.AddedSearchesCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonthlyQuotaMutation) AddField(name string, value ent.Value) error {
	switch name {
	case monthlyquota.FieldSearchesCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSearchesCount(v)
		return nil
	}
	return fmt.Errorf("unknown MonthlyQuota numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MonthlyQuotaMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MonthlyQuotaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MonthlyQuotaMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MonthlyQuota nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MonthlyQuotaMutation) ResetField(name string) error {
	switch name {
	case monthlyquota.FieldUserID:
		m.ResetUserID()
		return nil
	case monthlyquota.FieldMonthKey:
		m.ResetMonthKey()
		return nil
	case monthlyquota.FieldSearchesCount:
		m.ResetSearchesCount()
		return nil
	case monthlyquota.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MonthlyQuota field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MonthlyQuotaMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MonthlyQuotaMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MonthlyQuotaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MonthlyQuotaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MonthlyQuotaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MonthlyQuotaMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MonthlyQuotaMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MonthlyQuota unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MonthlyQuotaMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MonthlyQuota edge %s", name)
}

// OAuthTokenMutation represents an operation that mutates the OAuthToken nodes in the graph.
type OAuthTokenMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	user_id                 *string
	provider                *string
	access_token_encrypted  *string
	refresh_token_encrypted *string
	expires_at              *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*OAuthToken, error)
	predicates              []predicate.OAuthToken
}

var _ ent.Mutation = (*OAuthTokenMutation)(nil)

// oauthtokenOption allows management of the mutation configuration using functional options.
type oauthtokenOption func(*OAuthTokenMutation)

// newOAuthTokenMutation creates new mutation for the OAuthToken entity.
func newOAuthTokenMutation(c config, op Op, opts ...oauthtokenOption) *OAuthTokenMutation {
	m := &OAuthTokenMutation{
		config:        c,
		op:            op,
		typ:           TypeOAuthToken,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOAuthTokenID sets the ID field of the mutation.
func withOAuthTokenID(id int) oauthtokenOption {
	return func(m *OAuthTokenMutation) {
		var (
			err   error
			once  sync.Once
			value *OAuthToken
		)
		m.oldValue = func(ctx context.Context) (*OAuthToken, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OAuthToken.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOAuthToken sets the old OAuthToken of the mutation.
func withOAuthToken(node *OAuthToken) oauthtokenOption {
	return func(m *OAuthTokenMutation) {
		m.oldValue = func(context.Context) (*OAuthToken, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OAuthTokenMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OAuthTokenMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OAuthTokenMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OAuthTokenMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OAuthToken.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *OAuthTokenMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *OAuthTokenMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the OAuthToken entity.
// If the OAuthToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthTokenMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *OAuthTokenMutation) ResetUserID() {
	m.user_id = nil
}

// SetProvider sets the "provider" field.
func (m *OAuthTokenMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *OAuthTokenMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the OAuthToken entity.
// If the OAuthToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthTokenMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *OAuthTokenMutation) ResetProvider() {
	m.provider = nil
}

// SetAccessTokenEncrypted sets the "access_token_encrypted" field.
func (m *OAuthTokenMutation) SetAccessTokenEncrypted(s string) {
	m.access_token_encrypted = &s
}

// AccessTokenEncrypted returns the value of the "access_token_encrypted" field in the mutation.
func (m *OAuthTokenMutation) AccessTokenEncrypted() (r string, exists bool) {
	v := m.access_token_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessTokenEncrypted returns the old "access_token_encrypted" field's value of the OAuthToken entity.
// If the OAuthToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthTokenMutation) OldAccessTokenEncrypted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessTokenEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessTokenEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessTokenEncrypted: %w", err)
	}
	return oldValue.AccessTokenEncrypted, nil
}

// ResetAccessTokenEncrypted resets all changes to the "access_token_encrypted" field.
func (m *OAuthTokenMutation) ResetAccessTokenEncrypted() {
	m.access_token_encrypted = nil
}

// SetRefreshTokenEncrypted sets the "refresh_token_encrypted" field.
func (m *OAuthTokenMutation) SetRefreshTokenEncrypted(s string) {
	m.refresh_token_encrypted = &s
}

// RefreshTokenEncrypted returns the value of the "refresh_token_encrypted" field in the mutation.
func (m *OAuthTokenMutation) RefreshTokenEncrypted() (r string, exists bool) {
	v := m.refresh_token_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshTokenEncrypted returns the old "refresh_token_encrypted" field's value of the OAuthToken entity.
// If the OAuthToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthTokenMutation) OldRefreshTokenEncrypted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshTokenEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshTokenEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshTokenEncrypted: %w", err)
	}
	return oldValue.RefreshTokenEncrypted, nil
}

// ClearRefreshTokenEncrypted clears the value of the "refresh_token_encrypted" field.
func (m *OAuthTokenMutation) ClearRefreshTokenEncrypted() {
	m.refresh_token_encrypted = nil
	m.clearedFields[oauthtoken.FieldRefreshTokenEncrypted] = struct{}{}
}

// RefreshTokenEncryptedCleared returns if the "refresh_token_encrypted" field was cleared in this mutation.
func (m *OAuthTokenMutation) RefreshTokenEncryptedCleared() bool {
	_, ok := m.clearedFields[oauthtoken.FieldRefreshTokenEncrypted]
	return ok
}

// ResetRefreshTokenEncrypted resets all changes to the "refresh_token_encrypted" field.
func (m *OAuthTokenMutation) ResetRefreshTokenEncrypted() {
	m.refresh_token_encrypted = nil
	delete(m.clearedFields, oauthtoken.FieldRefreshTokenEncrypted)
}

// SetExpiresAt sets the "expires_at" field.
func (m *OAuthTokenMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *OAuthTokenMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the OAuthToken entity.
// If the OAuthToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthTokenMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *OAuthTokenMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[oauthtoken.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *OAuthTokenMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[oauthtoken.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *OAuthTokenMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, oauthtoken.FieldExpiresAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *OAuthTokenMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OAuthTokenMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OAuthToken entity.
// If the OAuthToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthTokenMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OAuthTokenMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OAuthTokenMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OAuthTokenMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the OAuthToken entity.
// If the OAuthToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthTokenMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OAuthTokenMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the OAuthTokenMutation builder.
func (m *OAuthTokenMutation) Where(ps ...predicate.OAuthToken) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OAuthTokenMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OAuthTokenMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OAuthToken, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OAuthTokenMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OAuthTokenMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OAuthToken).
func (m *OAuthTokenMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OAuthTokenMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, oauthtoken.FieldUserID)
	}
	if m.provider != nil {
		fields = append(fields, oauthtoken.FieldProvider)
	}
	if m.access_token_encrypted != nil {
		fields = append(fields, oauthtoken.FieldAccessTokenEncrypted)
	}
	if m.refresh_token_encrypted != nil {
		fields = append(fields, oauthtoken.FieldRefreshTokenEncrypted)
	}
	if m.expires_at != nil {
		fields = append(fields, oauthtoken.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, oauthtoken.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, oauthtoken.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OAuthTokenMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case oauthtoken.FieldUserID:
		return m.UserID()
	case oauthtoken.FieldProvider:
		return m.Provider()
	case oauthtoken.FieldAccessTokenEncrypted:
		return m.AccessTokenEncrypted()
	case oauthtoken.FieldRefreshTokenEncrypted:
		return m.RefreshTokenEncrypted()
	case oauthtoken.FieldExpiresAt:
		return m.ExpiresAt()
	case oauthtoken.FieldCreatedAt:
		return m.CreatedAt()
	case oauthtoken.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OAuthTokenMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case oauthtoken.FieldUserID:
		return m.OldUserID(ctx)
	case oauthtoken.FieldProvider:
		return m.OldProvider(ctx)
	case oauthtoken.FieldAccessTokenEncrypted:
		return m.OldAccessTokenEncrypted(ctx)
	case oauthtoken.FieldRefreshTokenEncrypted:
		return m.OldRefreshTokenEncrypted(ctx)
	case oauthtoken.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case oauthtoken.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case oauthtoken.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OAuthToken field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OAuthTokenMutation) SetField(name string, value ent.Value) error {
	switch name {
	case oauthtoken.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case oauthtoken.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case oauthtoken.FieldAccessTokenEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessTokenEncrypted(v)
		return nil
	case oauthtoken.FieldRefreshTokenEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshTokenEncrypted(v)
		return nil
	case oauthtoken.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case oauthtoken.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case oauthtoken.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OAuthToken field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OAuthTokenMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OAuthTokenMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OAuthTokenMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OAuthToken numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OAuthTokenMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(oauthtoken.FieldRefreshTokenEncrypted) {
		fields = append(fields, oauthtoken.FieldRefreshTokenEncrypted)
	}
	if m.FieldCleared(oauthtoken.FieldExpiresAt) {
		fields = append(fields, oauthtoken.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OAuthTokenMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OAuthTokenMutation) ClearField(name string) error {
	switch name {
	case oauthtoken.FieldRefreshTokenEncrypted:
		m.ClearRefreshTokenEncrypted()
		return nil
	case oauthtoken.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown OAuthToken nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OAuthTokenMutation) ResetField(name string) error {
	switch name {
	case oauthtoken.FieldUserID:
		m.ResetUserID()
		return nil
	case oauthtoken.FieldProvider:
		m.ResetProvider()
		return nil
	case oauthtoken.FieldAccessTokenEncrypted:
		m.ResetAccessTokenEncrypted()
		return nil
	case oauthtoken.FieldRefreshTokenEncrypted:
		m.ResetRefreshTokenEncrypted()
		return nil
	case oauthtoken.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case oauthtoken.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case oauthtoken.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown OAuthToken field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OAuthTokenMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OAuthTokenMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OAuthTokenMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OAuthTokenMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OAuthTokenMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OAuthTokenMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OAuthTokenMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OAuthToken unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OAuthTokenMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OAuthToken edge %s", name)
}

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op               Op
	typ              string
	id               *string
	email            *string
	is_admin         *bool
	plan_type        *string
	trial_expires_at *time.Time
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Profile, error)
	predicates       []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id string) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Profile entities.
func (m *ProfileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *ProfileMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ProfileMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ProfileMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[profile.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ProfileMutation) EmailCleared() bool {
	_, ok := m.clearedFields[profile.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ProfileMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, profile.FieldEmail)
}

// SetIsAdmin sets the "is_admin" field.
func (m *ProfileMutation) SetIsAdmin(b bool) {
	m.is_admin = &b
}

// IsAdmin returns the value of the "is_admin" field in the mutation.
func (m *ProfileMutation) IsAdmin() (r bool, exists bool) {
	v := m.is_admin
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAdmin returns the old "is_admin" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldIsAdmin(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAdmin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAdmin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAdmin: %w", err)
	}
	return oldValue.IsAdmin, nil
}

// ResetIsAdmin resets all changes to the "is_admin" field.
func (m *ProfileMutation) ResetIsAdmin() {
	m.is_admin = nil
}

// SetPlanType sets the "plan_type" field.
func (m *ProfileMutation) SetPlanType(s string) {
	m.plan_type = &s
}

// PlanType returns the value of the "plan_type" field in the mutation.
func (m *ProfileMutation) PlanType() (r string, exists bool) {
	v := m.plan_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanType returns the old "plan_type" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldPlanType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanType: %w", err)
	}
	return oldValue.PlanType, nil
}

// ResetPlanType resets all changes to the "plan_type" field.
func (m *ProfileMutation) ResetPlanType() {
	m.plan_type = nil
}

// SetTrialExpiresAt sets the "trial_expires_at" field.
func (m *ProfileMutation) SetTrialExpiresAt(t time.Time) {
	m.trial_expires_at = &t
}

// TrialExpiresAt returns the value of the "trial_expires_at" field in the mutation.
func (m *ProfileMutation) TrialExpiresAt() (r time.Time, exists bool) {
	v := m.trial_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTrialExpiresAt returns the old "trial_expires_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldTrialExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrialExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrialExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrialExpiresAt: %w", err)
	}
	return oldValue.TrialExpiresAt, nil
}

// ClearTrialExpiresAt clears the value of the "trial_expires_at" field.
func (m *ProfileMutation) ClearTrialExpiresAt() {
	m.trial_expires_at = nil
	m.clearedFields[profile.FieldTrialExpiresAt] = struct{}{}
}

// TrialExpiresAtCleared returns if the "trial_expires_at" field was cleared in this mutation.
func (m *ProfileMutation) TrialExpiresAtCleared() bool {
	_, ok := m.clearedFields[profile.FieldTrialExpiresAt]
	return ok
}

// ResetTrialExpiresAt resets all changes to the "trial_expires_at" field.
func (m *ProfileMutation) ResetTrialExpiresAt() {
	m.trial_expires_at = nil
	delete(m.clearedFields, profile.FieldTrialExpiresAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.email != nil {
		fields = append(fields, profile.FieldEmail)
	}
	if m.is_admin != nil {
		fields = append(fields, profile.FieldIsAdmin)
	}
	if m.plan_type != nil {
		fields = append(fields, profile.FieldPlanType)
	}
	if m.trial_expires_at != nil {
		fields = append(fields, profile.FieldTrialExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, profile.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldEmail:
		return m.Email()
	case profile.FieldIsAdmin:
		return m.IsAdmin()
	case profile.FieldPlanType:
		return m.PlanType()
	case profile.FieldTrialExpiresAt:
		return m.TrialExpiresAt()
	case profile.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldEmail:
		return m.OldEmail(ctx)
	case profile.FieldIsAdmin:
		return m.OldIsAdmin(ctx)
	case profile.FieldPlanType:
		return m.OldPlanType(ctx)
	case profile.FieldTrialExpiresAt:
		return m.OldTrialExpiresAt(ctx)
	case profile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case profile.FieldIsAdmin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAdmin(v)
		return nil
	case profile.FieldPlanType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanType(v)
		return nil
	case profile.FieldTrialExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrialExpiresAt(v)
		return nil
	case profile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(profile.FieldEmail) {
		fields = append(fields, profile.FieldEmail)
	}
	if m.FieldCleared(profile.FieldTrialExpiresAt) {
		fields = append(fields, profile.FieldTrialExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	switch name {
	case profile.FieldEmail:
		m.ClearEmail()
		return nil
	case profile.FieldTrialExpiresAt:
		m.ClearTrialExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldEmail:
		m.ResetEmail()
		return nil
	case profile.FieldIsAdmin:
		m.ResetIsAdmin()
		return nil
	case profile.FieldPlanType:
		m.ResetPlanType()
		return nil
	case profile.FieldTrialExpiresAt:
		m.ResetTrialExpiresAt()
		return nil
	case profile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Profile edge %s", name)
}

// SearchSessionMutation represents an operation that mutates the SearchSession nodes in the graph.
type SearchSessionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	user_id               *string
	status                *searchsession.Status
	pipeline_stage        *string
	sectors               *[]string
	appendsectors         []string
	ufs                   *[]string
	appendufs             []string
	data_inicial          *time.Time
	data_final            *time.Time
	custom_keywords       *[]string
	appendcustom_keywords []string
	filters               *map[string]interface{}
	started_at            *time.Time
	completed_at          *time.Time
	error_code            *string
	error_message         *string
	total_raw             *int
	addtotal_raw          *int
	total_filtered        *int
	addtotal_filtered     *int
	valor_total           *float64
	addvalor_total        *float64
	resumo_executivo      *string
	destaques             *[]map[string]interface{}
	appenddestaques       []map[string]interface{}
	excel_path            *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	transitions           map[int]struct{}
	removedtransitions    map[int]struct{}
	clearedtransitions    bool
	done                  bool
	oldValue              func(context.Context) (*SearchSession, error)
	predicates            []predicate.SearchSession
}

var _ ent.Mutation = (*SearchSessionMutation)(nil)

// searchsessionOption allows management of the mutation configuration using functional options.
type searchsessionOption func(*SearchSessionMutation)

// newSearchSessionMutation creates new mutation for the SearchSession entity.
func newSearchSessionMutation(c config, op Op, opts ...searchsessionOption) *SearchSessionMutation {
	m := &SearchSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSearchSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSearchSessionID sets the ID field of the mutation.
func withSearchSessionID(id string) searchsessionOption {
	return func(m *SearchSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *SearchSession
		)
		m.oldValue = func(ctx context.Context) (*SearchSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SearchSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSearchSession sets the old SearchSession of the mutation.
func withSearchSession(node *SearchSession) searchsessionOption {
	return func(m *SearchSessionMutation) {
		m.oldValue = func(context.Context) (*SearchSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SearchSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SearchSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SearchSession entities.
func (m *SearchSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SearchSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SearchSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SearchSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SearchSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SearchSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SearchSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *SearchSessionMutation) SetStatus(s searchsession.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SearchSessionMutation) Status() (r searchsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldStatus(ctx context.Context) (v searchsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SearchSessionMutation) ResetStatus() {
	m.status = nil
}

// SetPipelineStage sets the "pipeline_stage" field.
func (m *SearchSessionMutation) SetPipelineStage(s string) {
	m.pipeline_stage = &s
}

// PipelineStage returns the value of the "pipeline_stage" field in the mutation.
func (m *SearchSessionMutation) PipelineStage() (r string, exists bool) {
	v := m.pipeline_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineStage returns the old "pipeline_stage" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldPipelineStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineStage: %w", err)
	}
	return oldValue.PipelineStage, nil
}

// ClearPipelineStage clears the value of the "pipeline_stage" field.
func (m *SearchSessionMutation) ClearPipelineStage() {
	m.pipeline_stage = nil
	m.clearedFields[searchsession.FieldPipelineStage] = struct{}{}
}

// PipelineStageCleared returns if the "pipeline_stage" field was cleared in this mutation.
func (m *SearchSessionMutation) PipelineStageCleared() bool {
	_, ok := m.clearedFields[searchsession.FieldPipelineStage]
	return ok
}

// ResetPipelineStage resets all changes to the "pipeline_stage" field.
func (m *SearchSessionMutation) ResetPipelineStage() {
	m.pipeline_stage = nil
	delete(m.clearedFields, searchsession.FieldPipelineStage)
}

// SetSectors sets the "sectors" field.
func (m *SearchSessionMutation) SetSectors(s []string) {
	m.sectors = &s
	m.appendsectors = nil
}

// Sectors returns the value of the "sectors" field in the mutation.
func (m *SearchSessionMutation) Sectors() (r []string, exists bool) {
	v := m.sectors
	if v == nil {
		return
	}
	return *v, true
}

// OldSectors returns the old "sectors" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldSectors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectors: %w", err)
	}
	return oldValue.Sectors, nil
}

// AppendSectors adds s to the "sectors" field.
func (m *SearchSessionMutation) AppendSectors(s []string) {
	m.appendsectors = append(m.appendsectors, s...)
}

// AppendedSectors returns the list of values that were appended to the "sectors" field in this mutation.
func (m *SearchSessionMutation) AppendedSectors() ([]string, bool) {
	if len(m.appendsectors) == 0 {
		return nil, false
	}
	return m.appendsectors, true
}

// ClearSectors clears the value of the "sectors" field.
func (m *SearchSessionMutation) ClearSectors() {
	m.sectors = nil
	m.appendsectors = nil
	m.clearedFields[searchsession.FieldSectors] = struct{}{}
}

// SectorsCleared returns if the "sectors" field was cleared in this mutation.
func (m *SearchSessionMutation) SectorsCleared() bool {
	_, ok := m.clearedFields[searchsession.FieldSectors]
	return ok
}

// ResetSectors resets all changes to the "sectors" field.
func (m *SearchSessionMutation) ResetSectors() {
	m.sectors = nil
	m.appendsectors = nil
	delete(m.clearedFields, searchsession.FieldSectors)
}

// SetUfs sets the "ufs" field.
func (m *SearchSessionMutation) SetUfs(s []string) {
	m.ufs = &s
	m.appendufs = nil
}

// Ufs returns the value of the "ufs" field in the mutation.
func (m *SearchSessionMutation) Ufs() (r []string, exists bool) {
	v := m.ufs
	if v == nil {
		return
	}
	return *v, true
}

// OldUfs returns the old "ufs" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldUfs(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUfs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUfs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUfs: %w", err)
	}
	return oldValue.Ufs, nil
}

// AppendUfs adds s to the "ufs" field.
func (m *SearchSessionMutation) AppendUfs(s []string) {
	m.appendufs = append(m.appendufs, s...)
}

// AppendedUfs returns the list of values that were appended to the "ufs" field in this mutation.
func (m *SearchSessionMutation) AppendedUfs() ([]string, bool) {
	if len(m.appendufs) == 0 {
		return nil, false
	}
	return m.appendufs, true
}

// ClearUfs clears the value of the "ufs" field.
func (m *SearchSessionMutation) ClearUfs() {
	m.ufs = nil
	m.appendufs = nil
	m.clearedFields[searchsession.FieldUfs] = struct{}{}
}

// UfsCleared returns if the "ufs" field was cleared in this mutation.
func (m *SearchSessionMutation) UfsCleared() bool {
	_, ok := m.clearedFields[searchsession.FieldUfs]
	return ok
}

// ResetUfs resets all changes to the "ufs" field.
func (m *SearchSessionMutation) ResetUfs() {
	m.ufs = nil
	m.appendufs = nil
	delete(m.clearedFields, searchsession.FieldUfs)
}

// SetDataInicial sets the "data_inicial" field.
func (m *SearchSessionMutation) SetDataInicial(t time.Time) {
	m.data_inicial = &t
}

// DataInicial returns the value of the "data_inicial" field in the mutation.
func (m *SearchSessionMutation) DataInicial() (r time.Time, exists bool) {
	v := m.data_inicial
	if v == nil {
		return
	}
	return *v, true
}

// OldDataInicial returns the old "data_inicial" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldDataInicial(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataInicial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataInicial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataInicial: %w", err)
	}
	return oldValue.DataInicial, nil
}

// ClearDataInicial clears the value of the "data_inicial" field.
func (m *SearchSessionMutation) ClearDataInicial() {
	m.data_inicial = nil
	m.clearedFields[searchsession.FieldDataInicial] = struct{}{}
}

// DataInicialCleared returns if the "data_inicial" field was cleared in this mutation.
func (m *SearchSessionMutation) DataInicialCleared() bool {
	_, ok := m.clearedFields[searchsession.FieldDataInicial]
	return ok
}

// ResetDataInicial resets all changes to the "data_inicial" field.
func (m *SearchSessionMutation) ResetDataInicial() {
	m.data_inicial = nil
	delete(m.clearedFields, searchsession.FieldDataInicial)
}

// SetDataFinal sets the "data_final" field.
func (m *SearchSessionMutation) SetDataFinal(t time.Time) {
	m.data_final = &t
}

// DataFinal returns the value of the "data_final" field in the mutation.
func (m *SearchSessionMutation) DataFinal() (r time.Time, exists bool) {
	v := m.data_final
	if v == nil {
		return
	}
	return *v, true
}

// OldDataFinal returns the old "data_final" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldDataFinal(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataFinal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataFinal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataFinal: %w", err)
	}
	return oldValue.DataFinal, nil
}

// ClearDataFinal clears the value of the "data_final" field.
func (m *SearchSessionMutation) ClearDataFinal() {
	m.data_final = nil
	m.clearedFields[searchsession.FieldDataFinal] = struct{}{}
}

// DataFinalCleared returns if the "data_final" field was cleared in this mutation.
func (m *SearchSessionMutation) DataFinalCleared() bool {
	_, ok := m.clearedFields[searchsession.FieldDataFinal]
	return ok
}

// ResetDataFinal resets all changes to the "data_final" field.
func (m *SearchSessionMutation) ResetDataFinal() {
	m.data_final = nil
	delete(m.clearedFields, searchsession.FieldDataFinal)
}

// SetCustomKeywords sets the "custom_keywords" field.
func (m *SearchSessionMutation) SetCustomKeywords(s []string) {
	m.custom_keywords = &s
	m.appendcustom_keywords = nil
}

// CustomKeywords returns the value of the "custom_keywords" field in the mutation.
func (m *SearchSessionMutation) CustomKeywords() (r []string, exists bool) {
	v := m.custom_keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomKeywords returns the old "custom_keywords" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldCustomKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomKeywords: %w", err)
	}
	return oldValue.CustomKeywords, nil
}

// AppendCustomKeywords adds s to the "custom_keywords" field.
func (m *SearchSessionMutation) AppendCustomKeywords(s []string) {
	m.appendcustom_keywords = append(m.appendcustom_keywords, s...)
}

// AppendedCustomKeywords returns the list of values that were appended to the "custom_keywords" field in this mutation.
func (m *SearchSessionMutation) AppendedCustomKeywords() ([]string, bool) {
	if len(m.appendcustom_keywords) == 0 {
		return nil, false
	}
	return m.appendcustom_keywords, true
}

// ClearCustomKeywords clears the value of the "custom_keywords" field.
func (m *SearchSessionMutation) ClearCustomKeywords() {
	m.custom_keywords = nil
	m.appendcustom_keywords = nil
	m.clearedFields[searchsession.FieldCustomKeywords] = struct{}{}
}

// CustomKeywordsCleared returns if the "custom_keywords" field was cleared in this mutation.
func (m *SearchSessionMutation) CustomKeywordsCleared() bool {
	_, ok := m.clearedFields[searchsession.FieldCustomKeywords]
	return ok
}

// ResetCustomKeywords resets all changes to the "custom_keywords" field.
func (m *SearchSessionMutation) ResetCustomKeywords() {
	m.custom_keywords = nil
	m.appendcustom_keywords = nil
	delete(m.clearedFields, searchsession.FieldCustomKeywords)
}

// SetFilters sets the "filters" field.
func (m *SearchSessionMutation) SetFilters(value map[string]interface{}) {
	m.filters = &value
}

// Filters returns the value of the "filters" field in the mutation.
func (m *SearchSessionMutation) Filters() (r map[string]interface{}, exists bool) {
	v := m.filters
	if v == nil {
		return
	}
	return *v, true
}

// OldFilters returns the old "filters" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldFilters(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilters: %w", err)
	}
	return oldValue.Filters, nil
}

// ClearFilters clears the value of the "filters" field.
func (m *SearchSessionMutation) ClearFilters() {
	m.filters = nil
	m.clearedFields[searchsession.FieldFilters] = struct{}{}
}

// FiltersCleared returns if the "filters" field was cleared in this mutation.
func (m *SearchSessionMutation) FiltersCleared() bool {
	_, ok := m.clearedFields[searchsession.FieldFilters]
	return ok
}

// ResetFilters resets all changes to the "filters" field.
func (m *SearchSessionMutation) ResetFilters() {
	m.filters = nil
	delete(m.clearedFields, searchsession.FieldFilters)
}

// SetStartedAt sets the "started_at" field.
func (m *SearchSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SearchSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SearchSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *SearchSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SearchSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SearchSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[searchsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SearchSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[searchsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SearchSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, searchsession.FieldCompletedAt)
}

// SetErrorCode sets the "error_code" field.
func (m *SearchSessionMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *SearchSessionMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *SearchSessionMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[searchsession.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *SearchSessionMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[searchsession.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *SearchSessionMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, searchsession.FieldErrorCode)
}

// SetErrorMessage sets the "error_message" field.
func (m *SearchSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SearchSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SearchSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[searchsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SearchSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[searchsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SearchSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, searchsession.FieldErrorMessage)
}

// SetTotalRaw sets the "total_raw" field.
func (m *SearchSessionMutation) SetTotalRaw(i int) {
	m.total_raw = &i
	m.addtotal_raw = nil
}

// TotalRaw returns the value of the "total_raw" field in the mutation.
func (m *SearchSessionMutation) TotalRaw() (r int, exists bool) {
	v := m.total_raw
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRaw returns the old "total_raw" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldTotalRaw(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRaw: %w", err)
	}
	return oldValue.TotalRaw, nil
}

// AddTotalRaw adds i to the "total_raw" field.
func (m *SearchSessionMutation) AddTotalRaw(i int) {
	if m.addtotal_raw != nil {
		*m.addtotal_raw += i
	} else {
		m.addtotal_raw = &i
	}
}

// AddedTotalRaw returns the value that was added to the "total_raw" field in this mutation.
func (m *SearchSessionMutation) AddedTotalRaw() (r int, exists bool) {
	v := m.addtotal_raw
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalRaw resets all changes to the "total_raw" field.
func (m *SearchSessionMutation) ResetTotalRaw() {
	m.total_raw = nil
	m.addtotal_raw = nil
}

// SetTotalFiltered sets the "total_filtered" field.
func (m *SearchSessionMutation) SetTotalFiltered(i int) {
	m.total_filtered = &i
	m.addtotal_filtered = nil
}

// TotalFiltered returns the value of the "total_filtered" field in the mutation.
func (m *SearchSessionMutation) TotalFiltered() (r int, exists bool) {
	v := m.total_filtered
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalFiltered returns the old "total_filtered" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldTotalFiltered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalFiltered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalFiltered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalFiltered: %w", err)
	}
	return oldValue.TotalFiltered, nil
}

// AddTotalFiltered adds i to the "total_filtered" field.
func (m *SearchSessionMutation) AddTotalFiltered(i int) {
	if m.addtotal_filtered != nil {
		*m.addtotal_filtered += i
	} else {
		m.addtotal_filtered = &i
	}
}

// AddedTotalFiltered returns the value that was added to the "total_filtered" field in this mutation.
func (m *SearchSessionMutation) AddedTotalFiltered() (r int, exists bool) {
	v := m.addtotal_filtered
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalFiltered resets all changes to the "total_filtered" field.
func (m *SearchSessionMutation) ResetTotalFiltered() {
	m.total_filtered = nil
	m.addtotal_filtered = nil
}

// SetValorTotal sets the "valor_total" field.
func (m *SearchSessionMutation) SetValorTotal(f float64) {
	m.valor_total = &f
	m.addvalor_total = nil
}

// ValorTotal returns the value of the "valor_total" field in the mutation.
func (m *SearchSessionMutation) ValorTotal() (r float64, exists bool) {
	v := m.valor_total
	if v == nil {
		return
	}
	return *v, true
}

// OldValorTotal returns the old "valor_total" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldValorTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValorTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValorTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValorTotal: %w", err)
	}
	return oldValue.ValorTotal, nil
}

// AddValorTotal adds f to the "valor_total" field.
func (m *SearchSessionMutation) AddValorTotal(f float64) {
	if m.addvalor_total != nil {
		*m.addvalor_total += f
	} else {
		m.addvalor_total = &f
	}
}

// AddedValorTotal returns the value that was added to the "valor_total" field in this mutation.
func (m *SearchSessionMutation) AddedValorTotal() (r float64, exists bool) {
	v := m.addvalor_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetValorTotal resets all changes to the "valor_total" field.
func (m *SearchSessionMutation) ResetValorTotal() {
	m.valor_total = nil
	m.addvalor_total = nil
}

// SetResumoExecutivo sets the "resumo_executivo" field.
func (m *SearchSessionMutation) SetResumoExecutivo(s string) {
	m.resumo_executivo = &s
}

// ResumoExecutivo returns the value of the "resumo_executivo" field in the mutation.
func (m *SearchSessionMutation) ResumoExecutivo() (r string, exists bool) {
	v := m.resumo_executivo
	if v == nil {
		return
	}
	return *v, true
}

// OldResumoExecutivo returns the old "resumo_executivo" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldResumoExecutivo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumoExecutivo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumoExecutivo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumoExecutivo: %w", err)
	}
	return oldValue.ResumoExecutivo, nil
}

// ClearResumoExecutivo clears the value of the "resumo_executivo" field.
func (m *SearchSessionMutation) ClearResumoExecutivo() {
	m.resumo_executivo = nil
	m.clearedFields[searchsession.FieldResumoExecutivo] = struct{}{}
}

// ResumoExecutivoCleared returns if the "resumo_executivo" field was cleared in this mutation.
func (m *SearchSessionMutation) ResumoExecutivoCleared() bool {
	_, ok := m.clearedFields[searchsession.FieldResumoExecutivo]
	return ok
}

// ResetResumoExecutivo resets all changes to the "resumo_executivo" field.
func (m *SearchSessionMutation) ResetResumoExecutivo() {
	m.resumo_executivo = nil
	delete(m.clearedFields, searchsession.FieldResumoExecutivo)
}

// SetDestaques sets the "destaques" field.
func (m *SearchSessionMutation) SetDestaques(value []map[string]interface{}) {
	m.destaques = &value
	m.appenddestaques = nil
}

// Destaques returns the value of the "destaques" field in the mutation.
func (m *SearchSessionMutation) Destaques() (r []map[string]interface{}, exists bool) {
	v := m.destaques
	if v == nil {
		return
	}
	return *v, true
}

// OldDestaques returns the old "destaques" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldDestaques(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDestaques is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDestaques requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDestaques: %w", err)
	}
	return oldValue.Destaques, nil
}

// AppendDestaques adds value to the "destaques" field.
func (m *SearchSessionMutation) AppendDestaques(value []map[string]interface{}) {
	m.appenddestaques = append(m.appenddestaques, value...)
}

// AppendedDestaques returns the list of values that were appended to the "destaques" field in this mutation.
func (m *SearchSessionMutation) AppendedDestaques() ([]map[string]interface{}, bool) {
	if len(m.appenddestaques) == 0 {
		return nil, false
	}
	return m.appenddestaques, true
}

// ClearDestaques clears the value of the "destaques" field.
func (m *SearchSessionMutation) ClearDestaques() {
	m.destaques = nil
	m.appenddestaques = nil
	m.clearedFields[searchsession.FieldDestaques] = struct{}{}
}

// DestaquesCleared returns if the "destaques" field was cleared in this mutation.
func (m *SearchSessionMutation) DestaquesCleared() bool {
	_, ok := m.clearedFields[searchsession.FieldDestaques]
	return ok
}

// ResetDestaques resets all changes to the "destaques" field.
func (m *SearchSessionMutation) ResetDestaques() {
	m.destaques = nil
	m.appenddestaques = nil
	delete(m.clearedFields, searchsession.FieldDestaques)
}

// SetExcelPath sets the "excel_path" field.
func (m *SearchSessionMutation) SetExcelPath(s string) {
	m.excel_path = &s
}

// ExcelPath returns the value of the "excel_path" field in the mutation.
func (m *SearchSessionMutation) ExcelPath() (r string, exists bool) {
	v := m.excel_path
	if v == nil {
		return
	}
	return *v, true
}

// OldExcelPath returns the old "excel_path" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldExcelPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExcelPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExcelPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExcelPath: %w", err)
	}
	return oldValue.ExcelPath, nil
}

// ClearExcelPath clears the value of the "excel_path" field.
func (m *SearchSessionMutation) ClearExcelPath() {
	m.excel_path = nil
	m.clearedFields[searchsession.FieldExcelPath] = struct{}{}
}

// ExcelPathCleared returns if the "excel_path" field was cleared in this mutation.
func (m *SearchSessionMutation) ExcelPathCleared() bool {
	_, ok := m.clearedFields[searchsession.FieldExcelPath]
	return ok
}

// ResetExcelPath resets all changes to the "excel_path" field.
func (m *SearchSessionMutation) ResetExcelPath() {
	m.excel_path = nil
	delete(m.clearedFields, searchsession.FieldExcelPath)
}

// SetCreatedAt sets the "created_at" field.
func (m *SearchSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SearchSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SearchSession entity.
// If the SearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SearchSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddTransitionIDs adds the "transitions" edge to the SearchStateTransition entity by ids.
func (m *SearchSessionMutation) AddTransitionIDs(ids ...int) {
	if m.transitions == nil {
		m.transitions = make(map[int]struct{})
	}
	for i := range ids {
		m.transitions[ids[i]] = struct{}{}
	}
}

// ClearTransitions clears the "transitions" edge to the SearchStateTransition entity.
func (m *SearchSessionMutation) ClearTransitions() {
	m.clearedtransitions = true
}

// TransitionsCleared reports if the "transitions" edge to the SearchStateTransition entity was cleared.
func (m *SearchSessionMutation) TransitionsCleared() bool {
	return m.clearedtransitions
}

// RemoveTransitionIDs removes the "transitions" edge to the SearchStateTransition entity by IDs.
func (m *SearchSessionMutation) RemoveTransitionIDs(ids ...int) {
	if m.removedtransitions == nil {
		m.removedtransitions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.transitions, ids[i])
		m.removedtransitions[ids[i]] = struct{}{}
	}
}

// RemovedTransitions returns the removed IDs of the "transitions" edge to the SearchStateTransition entity.
func (m *SearchSessionMutation) RemovedTransitionsIDs() (ids []int) {
	for id := range m.removedtransitions {
		ids = append(ids, id)
	}
	return
}

// TransitionsIDs returns the "transitions" edge IDs in the mutation.
func (m *SearchSessionMutation) TransitionsIDs() (ids []int) {
	for id := range m.transitions {
		ids = append(ids, id)
	}
	return
}

// ResetTransitions resets all changes to the "transitions" edge.
func (m *SearchSessionMutation) ResetTransitions() {
	m.transitions = nil
	m.clearedtransitions = false
	m.removedtransitions = nil
}

// Where appends a list predicates to the SearchSessionMutation builder.
func (m *SearchSessionMutation) Where(ps ...predicate.SearchSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SearchSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SearchSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SearchSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SearchSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SearchSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SearchSession).
func (m *SearchSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SearchSessionMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.user_id != nil {
		fields = append(fields, searchsession.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, searchsession.FieldStatus)
	}
	if m.pipeline_stage != nil {
		fields = append(fields, searchsession.FieldPipelineStage)
	}
	if m.sectors != nil {
		fields = append(fields, searchsession.FieldSectors)
	}
	if m.ufs != nil {
		fields = append(fields, searchsession.FieldUfs)
	}
	if m.data_inicial != nil {
		fields = append(fields, searchsession.FieldDataInicial)
	}
	if m.data_final != nil {
		fields = append(fields, searchsession.FieldDataFinal)
	}
	if m.custom_keywords != nil {
		fields = append(fields, searchsession.FieldCustomKeywords)
	}
	if m.filters != nil {
		fields = append(fields, searchsession.FieldFilters)
	}
	if m.started_at != nil {
		fields = append(fields, searchsession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, searchsession.FieldCompletedAt)
	}
	if m.error_code != nil {
		fields = append(fields, searchsession.FieldErrorCode)
	}
	if m.error_message != nil {
		fields = append(fields, searchsession.FieldErrorMessage)
	}
	if m.total_raw != nil {
		fields = append(fields, searchsession.FieldTotalRaw)
	}
	if m.total_filtered != nil {
		fields = append(fields, searchsession.FieldTotalFiltered)
	}
	if m.valor_total != nil {
		fields = append(fields, searchsession.FieldValorTotal)
	}
	if m.resumo_executivo != nil {
		fields = append(fields, searchsession.FieldResumoExecutivo)
	}
	if m.destaques != nil {
		fields = append(fields, searchsession.FieldDestaques)
	}
	if m.excel_path != nil {
		fields = append(fields, searchsession.FieldExcelPath)
	}
	if m.created_at != nil {
		fields = append(fields, searchsession.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SearchSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case searchsession.FieldUserID:
		return m.UserID()
	case searchsession.FieldStatus:
		return m.Status()
	case searchsession.FieldPipelineStage:
		return m.PipelineStage()
	case searchsession.FieldSectors:
		return m.Sectors()
	case searchsession.FieldUfs:
		return m.Ufs()
	case searchsession.FieldDataInicial:
		return m.DataInicial()
	case searchsession.FieldDataFinal:
		return m.DataFinal()
	case searchsession.FieldCustomKeywords:
		return m.CustomKeywords()
	case searchsession.FieldFilters:
		return m.Filters()
	case searchsession.FieldStartedAt:
		return m.StartedAt()
	case searchsession.FieldCompletedAt:
		return m.CompletedAt()
	case searchsession.FieldErrorCode:
		return m.ErrorCode()
	case searchsession.FieldErrorMessage:
		return m.ErrorMessage()
	case searchsession.FieldTotalRaw:
		return m.TotalRaw()
	case searchsession.FieldTotalFiltered:
		return m.TotalFiltered()
	case searchsession.FieldValorTotal:
		return m.ValorTotal()
	case searchsession.FieldResumoExecutivo:
		return m.ResumoExecutivo()
	case searchsession.FieldDestaques:
		return m.Destaques()
	case searchsession.FieldExcelPath:
		return m.ExcelPath()
	case searchsession.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SearchSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case searchsession.FieldUserID:
		return m.OldUserID(ctx)
	case searchsession.FieldStatus:
		return m.OldStatus(ctx)
	case searchsession.FieldPipelineStage:
		return m.OldPipelineStage(ctx)
	case searchsession.FieldSectors:
		return m.OldSectors(ctx)
	case searchsession.FieldUfs:
		return m.OldUfs(ctx)
	case searchsession.FieldDataInicial:
		return m.OldDataInicial(ctx)
	case searchsession.FieldDataFinal:
		return m.OldDataFinal(ctx)
	case searchsession.FieldCustomKeywords:
		return m.OldCustomKeywords(ctx)
	case searchsession.FieldFilters:
		return m.OldFilters(ctx)
	case searchsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case searchsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case searchsession.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case searchsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case searchsession.FieldTotalRaw:
		return m.OldTotalRaw(ctx)
	case searchsession.FieldTotalFiltered:
		return m.OldTotalFiltered(ctx)
	case searchsession.FieldValorTotal:
		return m.OldValorTotal(ctx)
	case searchsession.FieldResumoExecutivo:
		return m.OldResumoExecutivo(ctx)
	case searchsession.FieldDestaques:
		return m.OldDestaques(ctx)
	case searchsession.FieldExcelPath:
		return m.OldExcelPath(ctx)
	case searchsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SearchSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case searchsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case searchsession.FieldStatus:
		v, ok := value.(searchsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case searchsession.FieldPipelineStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineStage(v)
		return nil
	case searchsession.FieldSectors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectors(v)
		return nil
	case searchsession.FieldUfs:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUfs(v)
		return nil
	case searchsession.FieldDataInicial:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataInicial(v)
		return nil
	case searchsession.FieldDataFinal:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataFinal(v)
		return nil
	case searchsession.FieldCustomKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomKeywords(v)
		return nil
	case searchsession.FieldFilters:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilters(v)
		return nil
	case searchsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case searchsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case searchsession.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case searchsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case searchsession.FieldTotalRaw:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRaw(v)
		return nil
	case searchsession.FieldTotalFiltered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalFiltered(v)
		return nil
	case searchsession.FieldValorTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValorTotal(v)
		return nil
	case searchsession.FieldResumoExecutivo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumoExecutivo(v)
		return nil
	case searchsession.FieldDestaques:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDestaques(v)
		return nil
	case searchsession.FieldExcelPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExcelPath(v)
		return nil
	case searchsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SearchSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SearchSessionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_raw != nil {
		fields = append(fields, searchsession.FieldTotalRaw)
	}
	if m.addtotal_filtered != nil {
		fields = append(fields, searchsession.FieldTotalFiltered)
	}
	if m.addvalor_total != nil {
		fields = append(fields, searchsession.FieldValorTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SearchSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case searchsession.FieldTotalRaw:
		return m.AddedTotalRaw()
	case searchsession.FieldTotalFiltered:
		return m.AddedTotalFiltered()
	case searchsession.FieldValorTotal:
		return m.AddedValorTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case searchsession.FieldTotalRaw:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRaw(v)
		return nil
	case searchsession.FieldTotalFiltered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalFiltered(v)
		return nil
	case searchsession.FieldValorTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValorTotal(v)
		return nil
	}
	return fmt.Errorf("unknown SearchSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SearchSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(searchsession.FieldPipelineStage) {
		fields = append(fields, searchsession.FieldPipelineStage)
	}
	if m.FieldCleared(searchsession.FieldSectors) {
		fields = append(fields, searchsession.FieldSectors)
	}
	if m.FieldCleared(searchsession.FieldUfs) {
		fields = append(fields, searchsession.FieldUfs)
	}
	if m.FieldCleared(searchsession.FieldDataInicial) {
		fields = append(fields, searchsession.FieldDataInicial)
	}
	if m.FieldCleared(searchsession.FieldDataFinal) {
		fields = append(fields, searchsession.FieldDataFinal)
	}
	if m.FieldCleared(searchsession.FieldCustomKeywords) {
		fields = append(fields, searchsession.FieldCustomKeywords)
	}
	if m.FieldCleared(searchsession.FieldFilters) {
		fields = append(fields, searchsession.FieldFilters)
	}
	if m.FieldCleared(searchsession.FieldCompletedAt) {
		fields = append(fields, searchsession.FieldCompletedAt)
	}
	if m.FieldCleared(searchsession.FieldErrorCode) {
		fields = append(fields, searchsession.FieldErrorCode)
	}
	if m.FieldCleared(searchsession.FieldErrorMessage) {
		fields = append(fields, searchsession.FieldErrorMessage)
	}
	if m.FieldCleared(searchsession.FieldResumoExecutivo) {
		fields = append(fields, searchsession.FieldResumoExecutivo)
	}
	if m.FieldCleared(searchsession.FieldDestaques) {
		fields = append(fields, searchsession.FieldDestaques)
	}
	if m.FieldCleared(searchsession.FieldExcelPath) {
		fields = append(fields, searchsession.FieldExcelPath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SearchSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SearchSessionMutation) ClearField(name string) error {
	switch name {
	case searchsession.FieldPipelineStage:
		m.ClearPipelineStage()
		return nil
	case searchsession.FieldSectors:
		m.ClearSectors()
		return nil
	case searchsession.FieldUfs:
		m.ClearUfs()
		return nil
	case searchsession.FieldDataInicial:
		m.ClearDataInicial()
		return nil
	case searchsession.FieldDataFinal:
		m.ClearDataFinal()
		return nil
	case searchsession.FieldCustomKeywords:
		m.ClearCustomKeywords()
		return nil
	case searchsession.FieldFilters:
		m.ClearFilters()
		return nil
	case searchsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case searchsession.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case searchsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case searchsession.FieldResumoExecutivo:
		m.ClearResumoExecutivo()
		return nil
	case searchsession.FieldDestaques:
		m.ClearDestaques()
		return nil
	case searchsession.FieldExcelPath:
		m.ClearExcelPath()
		return nil
	}
	return fmt.Errorf("unknown SearchSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SearchSessionMutation) ResetField(name string) error {
	switch name {
	case searchsession.FieldUserID:
		m.ResetUserID()
		return nil
	case searchsession.FieldStatus:
		m.ResetStatus()
		return nil
	case searchsession.FieldPipelineStage:
		m.ResetPipelineStage()
		return nil
	case searchsession.FieldSectors:
		m.ResetSectors()
		return nil
	case searchsession.FieldUfs:
		m.ResetUfs()
		return nil
	case searchsession.FieldDataInicial:
		m.ResetDataInicial()
		return nil
	case searchsession.FieldDataFinal:
		m.ResetDataFinal()
		return nil
	case searchsession.FieldCustomKeywords:
		m.ResetCustomKeywords()
		return nil
	case searchsession.FieldFilters:
		m.ResetFilters()
		return nil
	case searchsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case searchsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case searchsession.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case searchsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case searchsession.FieldTotalRaw:
		m.ResetTotalRaw()
		return nil
	case searchsession.FieldTotalFiltered:
		m.ResetTotalFiltered()
		return nil
	case searchsession.FieldValorTotal:
		m.ResetValorTotal()
		return nil
	case searchsession.FieldResumoExecutivo:
		m.ResetResumoExecutivo()
		return nil
	case searchsession.FieldDestaques:
		m.ResetDestaques()
		return nil
	case searchsession.FieldExcelPath:
		m.ResetExcelPath()
		return nil
	case searchsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SearchSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SearchSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.transitions != nil {
		edges = append(edges, searchsession.EdgeTransitions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SearchSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case searchsession.EdgeTransitions:
		ids := make([]ent.Value, 0, len(m.transitions))
		for id := range m.transitions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SearchSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtransitions != nil {
		edges = append(edges, searchsession.EdgeTransitions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SearchSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case searchsession.EdgeTransitions:
		ids := make([]ent.Value, 0, len(m.removedtransitions))
		for id := range m.removedtransitions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SearchSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtransitions {
		edges = append(edges, searchsession.EdgeTransitions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SearchSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case searchsession.EdgeTransitions:
		return m.clearedtransitions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SearchSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown SearchSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SearchSessionMutation) ResetEdge(name string) error {
	switch name {
	case searchsession.EdgeTransitions:
		m.ResetTransitions()
		return nil
	}
	return fmt.Errorf("unknown SearchSession edge %s", name)
}

// SearchStateTransitionMutation represents an operation that mutates the SearchStateTransition nodes in the graph.
type SearchStateTransitionMutation struct {
	config
	op                            Op
	typ                           string
	id                            *int
	from_state                    *string
	to_state                      *string
	stage                         *string
	details                       *map[string]interface{}
	duration_since_previous_ms    *int64
	addduration_since_previous_ms *int64
	created_at                    *time.Time
	clearedFields                 map[string]struct{}
	session                       *string
	clearedsession                bool
	done                          bool
	oldValue                      func(context.Context) (*SearchStateTransition, error)
	predicates                    []predicate.SearchStateTransition
}

var _ ent.Mutation = (*SearchStateTransitionMutation)(nil)

// searchstatetransitionOption allows management of the mutation configuration using functional options.
type searchstatetransitionOption func(*SearchStateTransitionMutation)

// newSearchStateTransitionMutation creates new mutation for the SearchStateTransition entity.
func newSearchStateTransitionMutation(c config, op Op, opts ...searchstatetransitionOption) *SearchStateTransitionMutation {
	m := &SearchStateTransitionMutation{
		config:        c,
		op:            op,
		typ:           TypeSearchStateTransition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSearchStateTransitionID sets the ID field of the mutation.
func withSearchStateTransitionID(id int) searchstatetransitionOption {
	return func(m *SearchStateTransitionMutation) {
		var (
			err   error
			once  sync.Once
			value *SearchStateTransition
		)
		m.oldValue = func(ctx context.Context) (*SearchStateTransition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SearchStateTransition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSearchStateTransition sets the old SearchStateTransition of the mutation.
func withSearchStateTransition(node *SearchStateTransition) searchstatetransitionOption {
	return func(m *SearchStateTransitionMutation) {
		m.oldValue = func(context.Context) (*SearchStateTransition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SearchStateTransitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SearchStateTransitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SearchStateTransitionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SearchStateTransitionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SearchStateTransition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSearchID sets the "search_id" field.
func (m *SearchStateTransitionMutation) SetSearchID(s string) {
	m.session = &s
}

// SearchID returns the value of the "search_id" field in the mutation.
func (m *SearchStateTransitionMutation) SearchID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSearchID returns the old "search_id" field's value of the SearchStateTransition entity.
// If the SearchStateTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchStateTransitionMutation) OldSearchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSearchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSearchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSearchID: %w", err)
	}
	return oldValue.SearchID, nil
}

// ResetSearchID resets all changes to the "search_id" field.
func (m *SearchStateTransitionMutation) ResetSearchID() {
	m.session = nil
}

// SetFromState sets the "from_state" field.
func (m *SearchStateTransitionMutation) SetFromState(s string) {
	m.from_state = &s
}

// FromState returns the value of the "from_state" field in the mutation.
func (m *SearchStateTransitionMutation) FromState() (r string, exists bool) {
	v := m.from_state
	if v == nil {
		return
	}
	return *v, true
}

// OldFromState returns the old "from_state" field's value of the SearchStateTransition entity.
// If the SearchStateTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchStateTransitionMutation) OldFromState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromState: %w", err)
	}
	return oldValue.FromState, nil
}

// ResetFromState resets all changes to the "from_state" field.
func (m *SearchStateTransitionMutation) ResetFromState() {
	m.from_state = nil
}

// SetToState sets the "to_state" field.
func (m *SearchStateTransitionMutation) SetToState(s string) {
	m.to_state = &s
}

// ToState returns the value of the "to_state" field in the mutation.
func (m *SearchStateTransitionMutation) ToState() (r string, exists bool) {
	v := m.to_state
	if v == nil {
		return
	}
	return *v, true
}

// OldToState returns the old "to_state" field's value of the SearchStateTransition entity.
// If the SearchStateTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchStateTransitionMutation) OldToState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToState: %w", err)
	}
	return oldValue.ToState, nil
}

// ResetToState resets all changes to the "to_state" field.
func (m *SearchStateTransitionMutation) ResetToState() {
	m.to_state = nil
}

// SetStage sets the "stage" field.
func (m *SearchStateTransitionMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *SearchStateTransitionMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the SearchStateTransition entity.
// If the SearchStateTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchStateTransitionMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ClearStage clears the value of the "stage" field.
func (m *SearchStateTransitionMutation) ClearStage() {
	m.stage = nil
	m.clearedFields[searchstatetransition.FieldStage] = struct{}{}
}

// StageCleared returns if the "stage" field was cleared in this mutation.
func (m *SearchStateTransitionMutation) StageCleared() bool {
	_, ok := m.clearedFields[searchstatetransition.FieldStage]
	return ok
}

// ResetStage resets all changes to the "stage" field.
func (m *SearchStateTransitionMutation) ResetStage() {
	m.stage = nil
	delete(m.clearedFields, searchstatetransition.FieldStage)
}

// SetDetails sets the "details" field.
func (m *SearchStateTransitionMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *SearchStateTransitionMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the SearchStateTransition entity.
// If the SearchStateTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchStateTransitionMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *SearchStateTransitionMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[searchstatetransition.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *SearchStateTransitionMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[searchstatetransition.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *SearchStateTransitionMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, searchstatetransition.FieldDetails)
}

// SetDurationSincePreviousMs sets the "duration_since_previous_ms" field.
func (m *SearchStateTransitionMutation) SetDurationSincePreviousMs(i int64) {
	m.duration_since_previous_ms = &i
	m.addduration_since_previous_ms = nil
}

// DurationSincePreviousMs returns the value of the "duration_since_previous_ms" field in the mutation.
func (m *SearchStateTransitionMutation) DurationSincePreviousMs() (r int64, exists bool) {
	v := m.duration_since_previous_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSincePreviousMs returns the old "duration_since_previous_ms" field's value of the SearchStateTransition entity.
// If the SearchStateTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchStateTransitionMutation) OldDurationSincePreviousMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSincePreviousMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSincePreviousMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSincePreviousMs: %w", err)
	}
	return oldValue.DurationSincePreviousMs, nil
}

// AddDurationSincePreviousMs adds i to the "duration_since_previous_ms" field.
func (m *SearchStateTransitionMutation) AddDurationSincePreviousMs(i int64) {
	if m.addduration_since_previous_ms != nil {
		*m.addduration_since_previous_ms += i
	} else {
		m.addduration_since_previous_ms = &i
	}
}

// AddedDurationSincePreviousMs returns the value that was added to the "duration_since_previous_ms" field in this mutation.
func (m *SearchStateTransitionMutation) AddedDurationSincePreviousMs() (r int64, exists bool) {
	v := m.addduration_since_previous_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSincePreviousMs resets all changes to the "duration_since_previous_ms" field.
func (m *SearchStateTransitionMutation) ResetDurationSincePreviousMs() {
	m.duration_since_previous_ms = nil
	m.addduration_since_previous_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SearchStateTransitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SearchStateTransitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SearchStateTransition entity.
// If the SearchStateTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchStateTransitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SearchStateTransitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSessionID sets the "session" edge to the SearchSession entity by id.
func (m *SearchStateTransitionMutation) SetSessionID(id string) {
	m.session = &id
}

// ClearSession clears the "session" edge to the SearchSession entity.
func (m *SearchStateTransitionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[searchstatetransition.FieldSearchID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the SearchSession entity was cleared.
func (m *SearchStateTransitionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionID returns the "session" edge ID in the mutation.
func (m *SearchStateTransitionMutation) SessionID() (id string, exists bool) {
	if m.session != nil {
		return *m.session, true
	}
	return
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SearchStateTransitionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SearchStateTransitionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the SearchStateTransitionMutation builder.
func (m *SearchStateTransitionMutation) Where(ps ...predicate.SearchStateTransition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SearchStateTransitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SearchStateTransitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SearchStateTransition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SearchStateTransitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SearchStateTransitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SearchStateTransition).
func (m *SearchStateTransitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SearchStateTransitionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session != nil {
		fields = append(fields, searchstatetransition.FieldSearchID)
	}
	if m.from_state != nil {
		fields = append(fields, searchstatetransition.FieldFromState)
	}
	if m.to_state != nil {
		fields = append(fields, searchstatetransition.FieldToState)
	}
	if m.stage != nil {
		fields = append(fields, searchstatetransition.FieldStage)
	}
	if m.details != nil {
		fields = append(fields, searchstatetransition.FieldDetails)
	}
	if m.duration_since_previous_ms != nil {
		fields = append(fields, searchstatetransition.FieldDurationSincePreviousMs)
	}
	if m.created_at != nil {
		fields = append(fields, searchstatetransition.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SearchStateTransitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case searchstatetransition.FieldSearchID:
		return m.SearchID()
	case searchstatetransition.FieldFromState:
		return m.FromState()
	case searchstatetransition.FieldToState:
		return m.ToState()
	case searchstatetransition.FieldStage:
		return m.Stage()
	case searchstatetransition.FieldDetails:
		return m.Details()
	case searchstatetransition.FieldDurationSincePreviousMs:
		return m.DurationSincePreviousMs()
	case searchstatetransition.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SearchStateTransitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case searchstatetransition.FieldSearchID:
		return m.OldSearchID(ctx)
	case searchstatetransition.FieldFromState:
		return m.OldFromState(ctx)
	case searchstatetransition.FieldToState:
		return m.OldToState(ctx)
	case searchstatetransition.FieldStage:
		return m.OldStage(ctx)
	case searchstatetransition.FieldDetails:
		return m.OldDetails(ctx)
	case searchstatetransition.FieldDurationSincePreviousMs:
		return m.OldDurationSincePreviousMs(ctx)
	case searchstatetransition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SearchStateTransition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchStateTransitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case searchstatetransition.FieldSearchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSearchID(v)
		return nil
	case searchstatetransition.FieldFromState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromState(v)
		return nil
	case searchstatetransition.FieldToState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToState(v)
		return nil
	case searchstatetransition.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case searchstatetransition.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case searchstatetransition.FieldDurationSincePreviousMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSincePreviousMs(v)
		return nil
	case searchstatetransition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SearchStateTransition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SearchStateTransitionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_since_previous_ms != nil {
		fields = append(fields, searchstatetransition.FieldDurationSincePreviousMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SearchStateTransitionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case searchstatetransition.FieldDurationSincePreviousMs:
		return m.AddedDurationSincePreviousMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchStateTransitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case searchstatetransition.FieldDurationSincePreviousMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSincePreviousMs(v)
		return nil
	}
	return fmt.Errorf("unknown SearchStateTransition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SearchStateTransitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(searchstatetransition.FieldStage) {
		fields = append(fields, searchstatetransition.FieldStage)
	}
	if m.FieldCleared(searchstatetransition.FieldDetails) {
		fields = append(fields, searchstatetransition.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SearchStateTransitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SearchStateTransitionMutation) ClearField(name string) error {
	switch name {
	case searchstatetransition.FieldStage:
		m.ClearStage()
		return nil
	case searchstatetransition.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown SearchStateTransition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SearchStateTransitionMutation) ResetField(name string) error {
	switch name {
	case searchstatetransition.FieldSearchID:
		m.ResetSearchID()
		return nil
	case searchstatetransition.FieldFromState:
		m.ResetFromState()
		return nil
	case searchstatetransition.FieldToState:
		m.ResetToState()
		return nil
	case searchstatetransition.FieldStage:
		m.ResetStage()
		return nil
	case searchstatetransition.FieldDetails:
		m.ResetDetails()
		return nil
	case searchstatetransition.FieldDurationSincePreviousMs:
		m.ResetDurationSincePreviousMs()
		return nil
	case searchstatetransition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SearchStateTransition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SearchStateTransitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, searchstatetransition.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SearchStateTransitionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case searchstatetransition.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SearchStateTransitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SearchStateTransitionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SearchStateTransitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, searchstatetransition.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SearchStateTransitionMutation) EdgeCleared(name string) bool {
	switch name {
	case searchstatetransition.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SearchStateTransitionMutation) ClearEdge(name string) error {
	switch name {
	case searchstatetransition.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown SearchStateTransition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SearchStateTransitionMutation) ResetEdge(name string) error {
	switch name {
	case searchstatetransition.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown SearchStateTransition edge %s", name)
}

// UserSubscriptionMutation represents an operation that mutates the UserSubscription nodes in the graph.
type UserSubscriptionMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	user_id            *string
	plan_id            *string
	status             *usersubscription.Status
	current_period_end *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*UserSubscription, error)
	predicates         []predicate.UserSubscription
}

var _ ent.Mutation = (*UserSubscriptionMutation)(nil)

// usersubscriptionOption allows management of the mutation configuration using functional options.
type usersubscriptionOption func(*UserSubscriptionMutation)

// newUserSubscriptionMutation creates new mutation for the UserSubscription entity.
func newUserSubscriptionMutation(c config, op Op, opts ...usersubscriptionOption) *UserSubscriptionMutation {
	m := &UserSubscriptionMutation{
		config:        c,
		op:            op,
		typ:           TypeUserSubscription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserSubscriptionID sets the ID field of the mutation.
func withUserSubscriptionID(id int) usersubscriptionOption {
	return func(m *UserSubscriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *UserSubscription
		)
		m.oldValue = func(ctx context.Context) (*UserSubscription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserSubscription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserSubscription sets the old UserSubscription of the mutation.
func withUserSubscription(node *UserSubscription) usersubscriptionOption {
	return func(m *UserSubscriptionMutation) {
		m.oldValue = func(context.Context) (*UserSubscription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserSubscriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserSubscriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserSubscriptionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserSubscriptionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserSubscription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserSubscriptionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserSubscriptionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserSubscription entity.
// If the UserSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSubscriptionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserSubscriptionMutation) ResetUserID() {
	m.user_id = nil
}

// SetPlanID sets the "plan_id" field.
func (m *UserSubscriptionMutation) SetPlanID(s string) {
	m.plan_id = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *UserSubscriptionMutation) PlanID() (r string, exists bool) {
	v := m.plan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the UserSubscription entity.
// If the UserSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSubscriptionMutation) OldPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *UserSubscriptionMutation) ResetPlanID() {
	m.plan_id = nil
}

// SetStatus sets the "status" field.
func (m *UserSubscriptionMutation) SetStatus(u usersubscription.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UserSubscriptionMutation) Status() (r usersubscription.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UserSubscription entity.
// If the UserSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSubscriptionMutation) OldStatus(ctx context.Context) (v usersubscription.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UserSubscriptionMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentPeriodEnd sets the "current_period_end" field.
func (m *UserSubscriptionMutation) SetCurrentPeriodEnd(t time.Time) {
	m.current_period_end = &t
}

// CurrentPeriodEnd returns the value of the "current_period_end" field in the mutation.
func (m *UserSubscriptionMutation) CurrentPeriodEnd() (r time.Time, exists bool) {
	v := m.current_period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPeriodEnd returns the old "current_period_end" field's value of the UserSubscription entity.
// If the UserSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSubscriptionMutation) OldCurrentPeriodEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPeriodEnd: %w", err)
	}
	return oldValue.CurrentPeriodEnd, nil
}

// ClearCurrentPeriodEnd clears the value of the "current_period_end" field.
func (m *UserSubscriptionMutation) ClearCurrentPeriodEnd() {
	m.current_period_end = nil
	m.clearedFields[usersubscription.FieldCurrentPeriodEnd] = struct{}{}
}

// CurrentPeriodEndCleared returns if the "current_period_end" field was cleared in this mutation.
func (m *UserSubscriptionMutation) CurrentPeriodEndCleared() bool {
	_, ok := m.clearedFields[usersubscription.FieldCurrentPeriodEnd]
	return ok
}

// ResetCurrentPeriodEnd resets all changes to the "current_period_end" field.
func (m *UserSubscriptionMutation) ResetCurrentPeriodEnd() {
	m.current_period_end = nil
	delete(m.clearedFields, usersubscription.FieldCurrentPeriodEnd)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserSubscriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserSubscriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserSubscription entity.
// If the UserSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSubscriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserSubscriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserSubscriptionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserSubscriptionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserSubscription entity.
// If the UserSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSubscriptionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserSubscriptionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserSubscriptionMutation builder.
func (m *UserSubscriptionMutation) Where(ps ...predicate.UserSubscription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserSubscriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserSubscriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserSubscription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserSubscriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserSubscriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserSubscription).
func (m *UserSubscriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserSubscriptionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, usersubscription.FieldUserID)
	}
	if m.plan_id != nil {
		fields = append(fields, usersubscription.FieldPlanID)
	}
	if m.status != nil {
		fields = append(fields, usersubscription.FieldStatus)
	}
	if m.current_period_end != nil {
		fields = append(fields, usersubscription.FieldCurrentPeriodEnd)
	}
	if m.created_at != nil {
		fields = append(fields, usersubscription.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usersubscription.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserSubscriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usersubscription.FieldUserID:
		return m.UserID()
	case usersubscription.FieldPlanID:
		return m.PlanID()
	case usersubscription.FieldStatus:
		return m.Status()
	case usersubscription.FieldCurrentPeriodEnd:
		return m.CurrentPeriodEnd()
	case usersubscription.FieldCreatedAt:
		return m.CreatedAt()
	case usersubscription.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserSubscriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usersubscription.FieldUserID:
		return m.OldUserID(ctx)
	case usersubscription.FieldPlanID:
		return m.OldPlanID(ctx)
	case usersubscription.FieldStatus:
		return m.OldStatus(ctx)
	case usersubscription.FieldCurrentPeriodEnd:
		return m.OldCurrentPeriodEnd(ctx)
	case usersubscription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usersubscription.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserSubscription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSubscriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usersubscription.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usersubscription.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case usersubscription.FieldStatus:
		v, ok := value.(usersubscription.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case usersubscription.FieldCurrentPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPeriodEnd(v)
		return nil
	case usersubscription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usersubscription.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserSubscription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserSubscriptionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserSubscriptionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSubscriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserSubscription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserSubscriptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usersubscription.FieldCurrentPeriodEnd) {
		fields = append(fields, usersubscription.FieldCurrentPeriodEnd)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserSubscriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserSubscriptionMutation) ClearField(name string) error {
	switch name {
	case usersubscription.FieldCurrentPeriodEnd:
		m.ClearCurrentPeriodEnd()
		return nil
	}
	return fmt.Errorf("unknown UserSubscription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserSubscriptionMutation) ResetField(name string) error {
	switch name {
	case usersubscription.FieldUserID:
		m.ResetUserID()
		return nil
	case usersubscription.FieldPlanID:
		m.ResetPlanID()
		return nil
	case usersubscription.FieldStatus:
		m.ResetStatus()
		return nil
	case usersubscription.FieldCurrentPeriodEnd:
		m.ResetCurrentPeriodEnd()
		return nil
	case usersubscription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usersubscription.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSubscription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserSubscriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserSubscriptionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserSubscriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserSubscriptionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserSubscriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserSubscriptionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserSubscriptionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserSubscription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserSubscriptionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserSubscription edge %s", name)
}
