// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/bidiq/bidiq/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/bidiq/bidiq/ent/message"
	"github.com/bidiq/bidiq/ent/monthlyquota"
	"github.com/bidiq/bidiq/ent/oauthtoken"
	"github.com/bidiq/bidiq/ent/profile"
	"github.com/bidiq/bidiq/ent/searchsession"
	"github.com/bidiq/bidiq/ent/searchstatetransition"
	"github.com/bidiq/bidiq/ent/usersubscription"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// MonthlyQuota is the client for interacting with the MonthlyQuota builders.
	MonthlyQuota *MonthlyQuotaClient
	// OAuthToken is the client for interacting with the OAuthToken builders.
	OAuthToken *OAuthTokenClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
	// SearchSession is the client for interacting with the SearchSession builders.
	SearchSession *SearchSessionClient
	// SearchStateTransition is the client for interacting with the SearchStateTransition builders.
	SearchStateTransition *SearchStateTransitionClient
	// UserSubscription is the client for interacting with the UserSubscription builders.
	UserSubscription *UserSubscriptionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Message = NewMessageClient(c.config)
	c.MonthlyQuota = NewMonthlyQuotaClient(c.config)
	c.OAuthToken = NewOAuthTokenClient(c.config)
	c.Profile = NewProfileClient(c.config)
	c.SearchSession = NewSearchSessionClient(c.config)
	c.SearchStateTransition = NewSearchStateTransitionClient(c.config)
	c.UserSubscription = NewUserSubscriptionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                   ctx,
		config:                cfg,
		Message:               NewMessageClient(cfg),
		MonthlyQuota:          NewMonthlyQuotaClient(cfg),
		OAuthToken:            NewOAuthTokenClient(cfg),
		Profile:               NewProfileClient(cfg),
		SearchSession:         NewSearchSessionClient(cfg),
		SearchStateTransition: NewSearchStateTransitionClient(cfg),
		UserSubscription:      NewUserSubscriptionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                   ctx,
		config:                cfg,
		Message:               NewMessageClient(cfg),
		MonthlyQuota:          NewMonthlyQuotaClient(cfg),
		OAuthToken:            NewOAuthTokenClient(cfg),
		Profile:               NewProfileClient(cfg),
		SearchSession:         NewSearchSessionClient(cfg),
		SearchStateTransition: NewSearchStateTransitionClient(cfg),
		UserSubscription:      NewUserSubscriptionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Message.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Message, c.MonthlyQuota, c.OAuthToken, c.Profile, c.SearchSession,
		c.SearchStateTransition, c.UserSubscription,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Message, c.MonthlyQuota, c.OAuthToken, c.Profile, c.SearchSession,
		c.SearchStateTransition, c.UserSubscription,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *MonthlyQuotaMutation:
		return c.MonthlyQuota.mutate(ctx, m)
	case *OAuthTokenMutation:
		return c.OAuthToken.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	case *SearchSessionMutation:
		return c.SearchSession.mutate(ctx, m)
	case *SearchStateTransitionMutation:
		return c.SearchStateTransition.mutate(ctx, m)
	case *UserSubscriptionMutation:
		return c.UserSubscription.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id int) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id int) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id int) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id int) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// MonthlyQuotaClient is a client for the MonthlyQuota schema.
type MonthlyQuotaClient struct {
	config
}

// NewMonthlyQuotaClient returns a client for the MonthlyQuota from the given config.
func NewMonthlyQuotaClient(c config) *MonthlyQuotaClient {
	return &MonthlyQuotaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `monthlyquota.Hooks(f(g(h())))`.
func (c *MonthlyQuotaClient) Use(hooks ...Hook) {
	c.hooks.MonthlyQuota = append(c.hooks.MonthlyQuota, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `monthlyquota.Intercept(f(g(h())))`.
func (c *MonthlyQuotaClient) Intercept(interceptors ...Interceptor) {
	c.inters.MonthlyQuota = append(c.inters.MonthlyQuota, interceptors...)
}

// Create returns a builder for creating a MonthlyQuota entity.
func (c *MonthlyQuotaClient) Create() *MonthlyQuotaCreate {
	mutation := newMonthlyQuotaMutation(c.config, OpCreate)
	return &MonthlyQuotaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MonthlyQuota entities.
func (c *MonthlyQuotaClient) CreateBulk(builders ...*MonthlyQuotaCreate) *MonthlyQuotaCreateBulk {
	return &MonthlyQuotaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MonthlyQuotaClient) MapCreateBulk(slice any, setFunc func(*MonthlyQuotaCreate, int)) *MonthlyQuotaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MonthlyQuotaCreateBulk{err: fmt.Errorf("calling to MonthlyQuotaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MonthlyQuotaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MonthlyQuotaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MonthlyQuota.
func (c *MonthlyQuotaClient) Update() *MonthlyQuotaUpdate {
	mutation := newMonthlyQuotaMutation(c.config, OpUpdate)
	return &MonthlyQuotaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MonthlyQuotaClient) UpdateOne(_m *MonthlyQuota) *MonthlyQuotaUpdateOne {
	mutation := newMonthlyQuotaMutation(c.config, OpUpdateOne, withMonthlyQuota(_m))
	return &MonthlyQuotaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MonthlyQuotaClient) UpdateOneID(id int) *MonthlyQuotaUpdateOne {
	mutation := newMonthlyQuotaMutation(c.config, OpUpdateOne, withMonthlyQuotaID(id))
	return &MonthlyQuotaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MonthlyQuota.
func (c *MonthlyQuotaClient) Delete() *MonthlyQuotaDelete {
	mutation := newMonthlyQuotaMutation(c.config, OpDelete)
	return &MonthlyQuotaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MonthlyQuotaClient) DeleteOne(_m *MonthlyQuota) *MonthlyQuotaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MonthlyQuotaClient) DeleteOneID(id int) *MonthlyQuotaDeleteOne {
	builder := c.Delete().Where(monthlyquota.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MonthlyQuotaDeleteOne{builder}
}

// Query returns a query builder for MonthlyQuota.
func (c *MonthlyQuotaClient) Query() *MonthlyQuotaQuery {
	return &MonthlyQuotaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMonthlyQuota},
		inters: c.Interceptors(),
	}
}

// Get returns a MonthlyQuota entity by its id.
func (c *MonthlyQuotaClient) Get(ctx context.Context, id int) (*MonthlyQuota, error) {
	return c.Query().Where(monthlyquota.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MonthlyQuotaClient) GetX(ctx context.Context, id int) *MonthlyQuota {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MonthlyQuotaClient) Hooks() []Hook {
	return c.hooks.MonthlyQuota
}

// Interceptors returns the client interceptors.
func (c *MonthlyQuotaClient) Interceptors() []Interceptor {
	return c.inters.MonthlyQuota
}

func (c *MonthlyQuotaClient) mutate(ctx context.Context, m *MonthlyQuotaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MonthlyQuotaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MonthlyQuotaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MonthlyQuotaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MonthlyQuotaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MonthlyQuota mutation op: %q", m.Op())
	}
}

// OAuthTokenClient is a client for the OAuthToken schema.
type OAuthTokenClient struct {
	config
}

// NewOAuthTokenClient returns a client for the OAuthToken from the given config.
func NewOAuthTokenClient(c config) *OAuthTokenClient {
	return &OAuthTokenClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `oauthtoken.Hooks(f(g(h())))`.
func (c *OAuthTokenClient) Use(hooks ...Hook) {
	c.hooks.OAuthToken = append(c.hooks.OAuthToken, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `oauthtoken.Intercept(f(g(h())))`.
func (c *OAuthTokenClient) Intercept(interceptors ...Interceptor) {
	c.inters.OAuthToken = append(c.inters.OAuthToken, interceptors...)
}

// Create returns a builder for creating a OAuthToken entity.
func (c *OAuthTokenClient) Create() *OAuthTokenCreate {
	mutation := newOAuthTokenMutation(c.config, OpCreate)
	return &OAuthTokenCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OAuthToken entities.
func (c *OAuthTokenClient) CreateBulk(builders ...*OAuthTokenCreate) *OAuthTokenCreateBulk {
	return &OAuthTokenCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OAuthTokenClient) MapCreateBulk(slice any, setFunc func(*OAuthTokenCreate, int)) *OAuthTokenCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OAuthTokenCreateBulk{err: fmt.Errorf("calling to OAuthTokenClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OAuthTokenCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OAuthTokenCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OAuthToken.
func (c *OAuthTokenClient) Update() *OAuthTokenUpdate {
	mutation := newOAuthTokenMutation(c.config, OpUpdate)
	return &OAuthTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OAuthTokenClient) UpdateOne(_m *OAuthToken) *OAuthTokenUpdateOne {
	mutation := newOAuthTokenMutation(c.config, OpUpdateOne, withOAuthToken(_m))
	return &OAuthTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OAuthTokenClient) UpdateOneID(id int) *OAuthTokenUpdateOne {
	mutation := newOAuthTokenMutation(c.config, OpUpdateOne, withOAuthTokenID(id))
	return &OAuthTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OAuthToken.
func (c *OAuthTokenClient) Delete() *OAuthTokenDelete {
	mutation := newOAuthTokenMutation(c.config, OpDelete)
	return &OAuthTokenDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OAuthTokenClient) DeleteOne(_m *OAuthToken) *OAuthTokenDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OAuthTokenClient) DeleteOneID(id int) *OAuthTokenDeleteOne {
	builder := c.Delete().Where(oauthtoken.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OAuthTokenDeleteOne{builder}
}

// Query returns a query builder for OAuthToken.
func (c *OAuthTokenClient) Query() *OAuthTokenQuery {
	return &OAuthTokenQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOAuthToken},
		inters: c.Interceptors(),
	}
}

// Get returns a OAuthToken entity by its id.
func (c *OAuthTokenClient) Get(ctx context.Context, id int) (*OAuthToken, error) {
	return c.Query().Where(oauthtoken.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OAuthTokenClient) GetX(ctx context.Context, id int) *OAuthToken {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OAuthTokenClient) Hooks() []Hook {
	return c.hooks.OAuthToken
}

// Interceptors returns the client interceptors.
func (c *OAuthTokenClient) Interceptors() []Interceptor {
	return c.inters.OAuthToken
}

func (c *OAuthTokenClient) mutate(ctx context.Context, m *OAuthTokenMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OAuthTokenCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OAuthTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OAuthTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OAuthTokenDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OAuthToken mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id string) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id string) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id string) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id string) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Profile mutation op: %q", m.Op())
	}
}

// SearchSessionClient is a client for the SearchSession schema.
type SearchSessionClient struct {
	config
}

// NewSearchSessionClient returns a client for the SearchSession from the given config.
func NewSearchSessionClient(c config) *SearchSessionClient {
	return &SearchSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `searchsession.Hooks(f(g(h())))`.
func (c *SearchSessionClient) Use(hooks ...Hook) {
	c.hooks.SearchSession = append(c.hooks.SearchSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `searchsession.Intercept(f(g(h())))`.
func (c *SearchSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.SearchSession = append(c.inters.SearchSession, interceptors...)
}

// Create returns a builder for creating a SearchSession entity.
func (c *SearchSessionClient) Create() *SearchSessionCreate {
	mutation := newSearchSessionMutation(c.config, OpCreate)
	return &SearchSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SearchSession entities.
func (c *SearchSessionClient) CreateBulk(builders ...*SearchSessionCreate) *SearchSessionCreateBulk {
	return &SearchSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SearchSessionClient) MapCreateBulk(slice any, setFunc func(*SearchSessionCreate, int)) *SearchSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SearchSessionCreateBulk{err: fmt.Errorf("calling to SearchSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SearchSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SearchSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SearchSession.
func (c *SearchSessionClient) Update() *SearchSessionUpdate {
	mutation := newSearchSessionMutation(c.config, OpUpdate)
	return &SearchSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SearchSessionClient) UpdateOne(_m *SearchSession) *SearchSessionUpdateOne {
	mutation := newSearchSessionMutation(c.config, OpUpdateOne, withSearchSession(_m))
	return &SearchSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SearchSessionClient) UpdateOneID(id string) *SearchSessionUpdateOne {
	mutation := newSearchSessionMutation(c.config, OpUpdateOne, withSearchSessionID(id))
	return &SearchSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SearchSession.
func (c *SearchSessionClient) Delete() *SearchSessionDelete {
	mutation := newSearchSessionMutation(c.config, OpDelete)
	return &SearchSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SearchSessionClient) DeleteOne(_m *SearchSession) *SearchSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SearchSessionClient) DeleteOneID(id string) *SearchSessionDeleteOne {
	builder := c.Delete().Where(searchsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SearchSessionDeleteOne{builder}
}

// Query returns a query builder for SearchSession.
func (c *SearchSessionClient) Query() *SearchSessionQuery {
	return &SearchSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSearchSession},
		inters: c.Interceptors(),
	}
}

// Get returns a SearchSession entity by its id.
func (c *SearchSessionClient) Get(ctx context.Context, id string) (*SearchSession, error) {
	return c.Query().Where(searchsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SearchSessionClient) GetX(ctx context.Context, id string) *SearchSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTransitions queries the transitions edge of a SearchSession.
func (c *SearchSessionClient) QueryTransitions(_m *SearchSession) *SearchStateTransitionQuery {
	query := (&SearchStateTransitionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(searchsession.Table, searchsession.FieldID, id),
			sqlgraph.To(searchstatetransition.Table, searchstatetransition.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, searchsession.TransitionsTable, searchsession.TransitionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SearchSessionClient) Hooks() []Hook {
	return c.hooks.SearchSession
}

// Interceptors returns the client interceptors.
func (c *SearchSessionClient) Interceptors() []Interceptor {
	return c.inters.SearchSession
}

func (c *SearchSessionClient) mutate(ctx context.Context, m *SearchSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SearchSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SearchSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SearchSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SearchSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SearchSession mutation op: %q", m.Op())
	}
}

// SearchStateTransitionClient is a client for the SearchStateTransition schema.
type SearchStateTransitionClient struct {
	config
}

// NewSearchStateTransitionClient returns a client for the SearchStateTransition from the given config.
func NewSearchStateTransitionClient(c config) *SearchStateTransitionClient {
	return &SearchStateTransitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `searchstatetransition.Hooks(f(g(h())))`.
func (c *SearchStateTransitionClient) Use(hooks ...Hook) {
	c.hooks.SearchStateTransition = append(c.hooks.SearchStateTransition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `searchstatetransition.Intercept(f(g(h())))`.
func (c *SearchStateTransitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.SearchStateTransition = append(c.inters.SearchStateTransition, interceptors...)
}

// Create returns a builder for creating a SearchStateTransition entity.
func (c *SearchStateTransitionClient) Create() *SearchStateTransitionCreate {
	mutation := newSearchStateTransitionMutation(c.config, OpCreate)
	return &SearchStateTransitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SearchStateTransition entities.
func (c *SearchStateTransitionClient) CreateBulk(builders ...*SearchStateTransitionCreate) *SearchStateTransitionCreateBulk {
	return &SearchStateTransitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SearchStateTransitionClient) MapCreateBulk(slice any, setFunc func(*SearchStateTransitionCreate, int)) *SearchStateTransitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SearchStateTransitionCreateBulk{err: fmt.Errorf("calling to SearchStateTransitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SearchStateTransitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SearchStateTransitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SearchStateTransition.
func (c *SearchStateTransitionClient) Update() *SearchStateTransitionUpdate {
	mutation := newSearchStateTransitionMutation(c.config, OpUpdate)
	return &SearchStateTransitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SearchStateTransitionClient) UpdateOne(_m *SearchStateTransition) *SearchStateTransitionUpdateOne {
	mutation := newSearchStateTransitionMutation(c.config, OpUpdateOne, withSearchStateTransition(_m))
	return &SearchStateTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SearchStateTransitionClient) UpdateOneID(id int) *SearchStateTransitionUpdateOne {
	mutation := newSearchStateTransitionMutation(c.config, OpUpdateOne, withSearchStateTransitionID(id))
	return &SearchStateTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SearchStateTransition.
func (c *SearchStateTransitionClient) Delete() *SearchStateTransitionDelete {
	mutation := newSearchStateTransitionMutation(c.config, OpDelete)
	return &SearchStateTransitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SearchStateTransitionClient) DeleteOne(_m *SearchStateTransition) *SearchStateTransitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SearchStateTransitionClient) DeleteOneID(id int) *SearchStateTransitionDeleteOne {
	builder := c.Delete().Where(searchstatetransition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SearchStateTransitionDeleteOne{builder}
}

// Query returns a query builder for SearchStateTransition.
func (c *SearchStateTransitionClient) Query() *SearchStateTransitionQuery {
	return &SearchStateTransitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSearchStateTransition},
		inters: c.Interceptors(),
	}
}

// Get returns a SearchStateTransition entity by its id.
func (c *SearchStateTransitionClient) Get(ctx context.Context, id int) (*SearchStateTransition, error) {
	return c.Query().Where(searchstatetransition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SearchStateTransitionClient) GetX(ctx context.Context, id int) *SearchStateTransition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a SearchStateTransition.
func (c *SearchStateTransitionClient) QuerySession(_m *SearchStateTransition) *SearchSessionQuery {
	query := (&SearchSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(searchstatetransition.Table, searchstatetransition.FieldID, id),
			sqlgraph.To(searchsession.Table, searchsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, searchstatetransition.SessionTable, searchstatetransition.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SearchStateTransitionClient) Hooks() []Hook {
	return c.hooks.SearchStateTransition
}

// Interceptors returns the client interceptors.
func (c *SearchStateTransitionClient) Interceptors() []Interceptor {
	return c.inters.SearchStateTransition
}

func (c *SearchStateTransitionClient) mutate(ctx context.Context, m *SearchStateTransitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SearchStateTransitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SearchStateTransitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SearchStateTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SearchStateTransitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SearchStateTransition mutation op: %q", m.Op())
	}
}

// UserSubscriptionClient is a client for the UserSubscription schema.
type UserSubscriptionClient struct {
	config
}

// NewUserSubscriptionClient returns a client for the UserSubscription from the given config.
func NewUserSubscriptionClient(c config) *UserSubscriptionClient {
	return &UserSubscriptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usersubscription.Hooks(f(g(h())))`.
func (c *UserSubscriptionClient) Use(hooks ...Hook) {
	c.hooks.UserSubscription = append(c.hooks.UserSubscription, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usersubscription.Intercept(f(g(h())))`.
func (c *UserSubscriptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSubscription = append(c.inters.UserSubscription, interceptors...)
}

// Create returns a builder for creating a UserSubscription entity.
func (c *UserSubscriptionClient) Create() *UserSubscriptionCreate {
	mutation := newUserSubscriptionMutation(c.config, OpCreate)
	return &UserSubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSubscription entities.
func (c *UserSubscriptionClient) CreateBulk(builders ...*UserSubscriptionCreate) *UserSubscriptionCreateBulk {
	return &UserSubscriptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSubscriptionClient) MapCreateBulk(slice any, setFunc func(*UserSubscriptionCreate, int)) *UserSubscriptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSubscriptionCreateBulk{err: fmt.Errorf("calling to UserSubscriptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSubscriptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSubscriptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSubscription.
func (c *UserSubscriptionClient) Update() *UserSubscriptionUpdate {
	mutation := newUserSubscriptionMutation(c.config, OpUpdate)
	return &UserSubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSubscriptionClient) UpdateOne(_m *UserSubscription) *UserSubscriptionUpdateOne {
	mutation := newUserSubscriptionMutation(c.config, OpUpdateOne, withUserSubscription(_m))
	return &UserSubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSubscriptionClient) UpdateOneID(id int) *UserSubscriptionUpdateOne {
	mutation := newUserSubscriptionMutation(c.config, OpUpdateOne, withUserSubscriptionID(id))
	return &UserSubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSubscription.
func (c *UserSubscriptionClient) Delete() *UserSubscriptionDelete {
	mutation := newUserSubscriptionMutation(c.config, OpDelete)
	return &UserSubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSubscriptionClient) DeleteOne(_m *UserSubscription) *UserSubscriptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSubscriptionClient) DeleteOneID(id int) *UserSubscriptionDeleteOne {
	builder := c.Delete().Where(usersubscription.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSubscriptionDeleteOne{builder}
}

// Query returns a query builder for UserSubscription.
func (c *UserSubscriptionClient) Query() *UserSubscriptionQuery {
	return &UserSubscriptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSubscription},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSubscription entity by its id.
func (c *UserSubscriptionClient) Get(ctx context.Context, id int) (*UserSubscription, error) {
	return c.Query().Where(usersubscription.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSubscriptionClient) GetX(ctx context.Context, id int) *UserSubscription {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserSubscriptionClient) Hooks() []Hook {
	return c.hooks.UserSubscription
}

// Interceptors returns the client interceptors.
func (c *UserSubscriptionClient) Interceptors() []Interceptor {
	return c.inters.UserSubscription
}

func (c *UserSubscriptionClient) mutate(ctx context.Context, m *UserSubscriptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserSubscription mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Message, MonthlyQuota, OAuthToken, Profile, SearchSession,
		SearchStateTransition, UserSubscription []ent.Hook
	}
	inters struct {
		Message, MonthlyQuota, OAuthToken, Profile, SearchSession,
		SearchStateTransition, UserSubscription []ent.Interceptor
	}
)
