// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/studymap/studymap/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/studymap/studymap/ent/attemptevent"
	"github.com/studymap/studymap/ent/graphsnapshot"
	"github.com/studymap/studymap/ent/scheduleentry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AttemptEvent is the client for interacting with the AttemptEvent builders.
	AttemptEvent *AttemptEventClient
	// GraphSnapshot is the client for interacting with the GraphSnapshot builders.
	GraphSnapshot *GraphSnapshotClient
	// ScheduleEntry is the client for interacting with the ScheduleEntry builders.
	ScheduleEntry *ScheduleEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AttemptEvent = NewAttemptEventClient(c.config)
	c.GraphSnapshot = NewGraphSnapshotClient(c.config)
	c.ScheduleEntry = NewScheduleEntryClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		AttemptEvent:  NewAttemptEventClient(cfg),
		GraphSnapshot: NewGraphSnapshotClient(cfg),
		ScheduleEntry: NewScheduleEntryClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		AttemptEvent:  NewAttemptEventClient(cfg),
		GraphSnapshot: NewGraphSnapshotClient(cfg),
		ScheduleEntry: NewScheduleEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AttemptEvent.
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
	c.AttemptEvent.Use(hooks...)
	c.GraphSnapshot.Use(hooks...)
	c.ScheduleEntry.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AttemptEvent.Intercept(interceptors...)
	c.GraphSnapshot.Intercept(interceptors...)
	c.ScheduleEntry.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptEventMutation:
		return c.AttemptEvent.mutate(ctx, m)
	case *GraphSnapshotMutation:
		return c.GraphSnapshot.mutate(ctx, m)
	case *ScheduleEntryMutation:
		return c.ScheduleEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptEventClient is a client for the AttemptEvent schema.
type AttemptEventClient struct {
	config
}

// NewAttemptEventClient returns a client for the AttemptEvent from the given config.
func NewAttemptEventClient(c config) *AttemptEventClient {
	return &AttemptEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptevent.Hooks(f(g(h())))`.
func (c *AttemptEventClient) Use(hooks ...Hook) {
	c.hooks.AttemptEvent = append(c.hooks.AttemptEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptevent.Intercept(f(g(h())))`.
func (c *AttemptEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptEvent = append(c.inters.AttemptEvent, interceptors...)
}

// Create returns a builder for creating a AttemptEvent entity.
func (c *AttemptEventClient) Create() *AttemptEventCreate {
	mutation := newAttemptEventMutation(c.config, OpCreate)
	return &AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptEvent entities.
func (c *AttemptEventClient) CreateBulk(builders ...*AttemptEventCreate) *AttemptEventCreateBulk {
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptEventClient) MapCreateBulk(slice any, setFunc func(*AttemptEventCreate, int)) *AttemptEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptEventCreateBulk{err: fmt.Errorf("calling to AttemptEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptEvent.
func (c *AttemptEventClient) Update() *AttemptEventUpdate {
	mutation := newAttemptEventMutation(c.config, OpUpdate)
	return &AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptEventClient) UpdateOne(ae *AttemptEvent) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEvent(ae))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptEventClient) UpdateOneID(id int) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEventID(id))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptEvent.
func (c *AttemptEventClient) Delete() *AttemptEventDelete {
	mutation := newAttemptEventMutation(c.config, OpDelete)
	return &AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptEventClient) DeleteOne(ae *AttemptEvent) *AttemptEventDeleteOne {
	return c.DeleteOneID(ae.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptEventClient) DeleteOneID(id int) *AttemptEventDeleteOne {
	builder := c.Delete().Where(attemptevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptEventDeleteOne{builder}
}

// Query returns a query builder for AttemptEvent.
func (c *AttemptEventClient) Query() *AttemptEventQuery {
	return &AttemptEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptEvent entity by its id.
func (c *AttemptEventClient) Get(ctx context.Context, id int) (*AttemptEvent, error) {
	return c.Query().Where(attemptevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptEventClient) GetX(ctx context.Context, id int) *AttemptEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptEventClient) Hooks() []Hook {
	return c.hooks.AttemptEvent
}

// Interceptors returns the client interceptors.
func (c *AttemptEventClient) Interceptors() []Interceptor {
	return c.inters.AttemptEvent
}

func (c *AttemptEventClient) mutate(ctx context.Context, m *AttemptEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptEvent mutation op: %q", m.Op())
	}
}

// GraphSnapshotClient is a client for the GraphSnapshot schema.
type GraphSnapshotClient struct {
	config
}

// NewGraphSnapshotClient returns a client for the GraphSnapshot from the given config.
func NewGraphSnapshotClient(c config) *GraphSnapshotClient {
	return &GraphSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `graphsnapshot.Hooks(f(g(h())))`.
func (c *GraphSnapshotClient) Use(hooks ...Hook) {
	c.hooks.GraphSnapshot = append(c.hooks.GraphSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `graphsnapshot.Intercept(f(g(h())))`.
func (c *GraphSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.GraphSnapshot = append(c.inters.GraphSnapshot, interceptors...)
}

// Create returns a builder for creating a GraphSnapshot entity.
func (c *GraphSnapshotClient) Create() *GraphSnapshotCreate {
	mutation := newGraphSnapshotMutation(c.config, OpCreate)
	return &GraphSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GraphSnapshot entities.
func (c *GraphSnapshotClient) CreateBulk(builders ...*GraphSnapshotCreate) *GraphSnapshotCreateBulk {
	return &GraphSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GraphSnapshotClient) MapCreateBulk(slice any, setFunc func(*GraphSnapshotCreate, int)) *GraphSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GraphSnapshotCreateBulk{err: fmt.Errorf("calling to GraphSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GraphSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GraphSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GraphSnapshot.
func (c *GraphSnapshotClient) Update() *GraphSnapshotUpdate {
	mutation := newGraphSnapshotMutation(c.config, OpUpdate)
	return &GraphSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GraphSnapshotClient) UpdateOne(gs *GraphSnapshot) *GraphSnapshotUpdateOne {
	mutation := newGraphSnapshotMutation(c.config, OpUpdateOne, withGraphSnapshot(gs))
	return &GraphSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GraphSnapshotClient) UpdateOneID(id int) *GraphSnapshotUpdateOne {
	mutation := newGraphSnapshotMutation(c.config, OpUpdateOne, withGraphSnapshotID(id))
	return &GraphSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GraphSnapshot.
func (c *GraphSnapshotClient) Delete() *GraphSnapshotDelete {
	mutation := newGraphSnapshotMutation(c.config, OpDelete)
	return &GraphSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GraphSnapshotClient) DeleteOne(gs *GraphSnapshot) *GraphSnapshotDeleteOne {
	return c.DeleteOneID(gs.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GraphSnapshotClient) DeleteOneID(id int) *GraphSnapshotDeleteOne {
	builder := c.Delete().Where(graphsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GraphSnapshotDeleteOne{builder}
}

// Query returns a query builder for GraphSnapshot.
func (c *GraphSnapshotClient) Query() *GraphSnapshotQuery {
	return &GraphSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGraphSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a GraphSnapshot entity by its id.
func (c *GraphSnapshotClient) Get(ctx context.Context, id int) (*GraphSnapshot, error) {
	return c.Query().Where(graphsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GraphSnapshotClient) GetX(ctx context.Context, id int) *GraphSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GraphSnapshotClient) Hooks() []Hook {
	return c.hooks.GraphSnapshot
}

// Interceptors returns the client interceptors.
func (c *GraphSnapshotClient) Interceptors() []Interceptor {
	return c.inters.GraphSnapshot
}

func (c *GraphSnapshotClient) mutate(ctx context.Context, m *GraphSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GraphSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GraphSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GraphSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GraphSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GraphSnapshot mutation op: %q", m.Op())
	}
}

// ScheduleEntryClient is a client for the ScheduleEntry schema.
type ScheduleEntryClient struct {
	config
}

// NewScheduleEntryClient returns a client for the ScheduleEntry from the given config.
func NewScheduleEntryClient(c config) *ScheduleEntryClient {
	return &ScheduleEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scheduleentry.Hooks(f(g(h())))`.
func (c *ScheduleEntryClient) Use(hooks ...Hook) {
	c.hooks.ScheduleEntry = append(c.hooks.ScheduleEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scheduleentry.Intercept(f(g(h())))`.
func (c *ScheduleEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduleEntry = append(c.inters.ScheduleEntry, interceptors...)
}

// Create returns a builder for creating a ScheduleEntry entity.
func (c *ScheduleEntryClient) Create() *ScheduleEntryCreate {
	mutation := newScheduleEntryMutation(c.config, OpCreate)
	return &ScheduleEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduleEntry entities.
func (c *ScheduleEntryClient) CreateBulk(builders ...*ScheduleEntryCreate) *ScheduleEntryCreateBulk {
	return &ScheduleEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduleEntryClient) MapCreateBulk(slice any, setFunc func(*ScheduleEntryCreate, int)) *ScheduleEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduleEntryCreateBulk{err: fmt.Errorf("calling to ScheduleEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduleEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduleEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduleEntry.
func (c *ScheduleEntryClient) Update() *ScheduleEntryUpdate {
	mutation := newScheduleEntryMutation(c.config, OpUpdate)
	return &ScheduleEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduleEntryClient) UpdateOne(se *ScheduleEntry) *ScheduleEntryUpdateOne {
	mutation := newScheduleEntryMutation(c.config, OpUpdateOne, withScheduleEntry(se))
	return &ScheduleEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduleEntryClient) UpdateOneID(id int) *ScheduleEntryUpdateOne {
	mutation := newScheduleEntryMutation(c.config, OpUpdateOne, withScheduleEntryID(id))
	return &ScheduleEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduleEntry.
func (c *ScheduleEntryClient) Delete() *ScheduleEntryDelete {
	mutation := newScheduleEntryMutation(c.config, OpDelete)
	return &ScheduleEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduleEntryClient) DeleteOne(se *ScheduleEntry) *ScheduleEntryDeleteOne {
	return c.DeleteOneID(se.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduleEntryClient) DeleteOneID(id int) *ScheduleEntryDeleteOne {
	builder := c.Delete().Where(scheduleentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduleEntryDeleteOne{builder}
}

// Query returns a query builder for ScheduleEntry.
func (c *ScheduleEntryClient) Query() *ScheduleEntryQuery {
	return &ScheduleEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduleEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduleEntry entity by its id.
func (c *ScheduleEntryClient) Get(ctx context.Context, id int) (*ScheduleEntry, error) {
	return c.Query().Where(scheduleentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduleEntryClient) GetX(ctx context.Context, id int) *ScheduleEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScheduleEntryClient) Hooks() []Hook {
	return c.hooks.ScheduleEntry
}

// Interceptors returns the client interceptors.
func (c *ScheduleEntryClient) Interceptors() []Interceptor {
	return c.inters.ScheduleEntry
}

func (c *ScheduleEntryClient) mutate(ctx context.Context, m *ScheduleEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduleEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduleEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduleEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduleEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScheduleEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AttemptEvent, GraphSnapshot, ScheduleEntry []ent.Hook
	}
	inters struct {
		AttemptEvent, GraphSnapshot, ScheduleEntry []ent.Interceptor
	}
)
