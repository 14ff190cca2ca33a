// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/formshred/formshred/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/formshred/formshred/gen/ent/document"
	"github.com/formshred/formshred/gen/ent/documenterror"
	"github.com/formshred/formshred/gen/ent/documentlineitem"
	"github.com/formshred/formshred/gen/ent/modeltraining"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// DocumentError is the client for interacting with the DocumentError builders.
	DocumentError *DocumentErrorClient
	// DocumentLineItem is the client for interacting with the DocumentLineItem builders.
	DocumentLineItem *DocumentLineItemClient
	// ModelTraining is the client for interacting with the ModelTraining builders.
	ModelTraining *ModelTrainingClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Document = NewDocumentClient(c.config)
	c.DocumentError = NewDocumentErrorClient(c.config)
	c.DocumentLineItem = NewDocumentLineItemClient(c.config)
	c.ModelTraining = NewModelTrainingClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Document:         NewDocumentClient(cfg),
		DocumentError:    NewDocumentErrorClient(cfg),
		DocumentLineItem: NewDocumentLineItemClient(cfg),
		ModelTraining:    NewModelTrainingClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Document:         NewDocumentClient(cfg),
		DocumentError:    NewDocumentErrorClient(cfg),
		DocumentLineItem: NewDocumentLineItemClient(cfg),
		ModelTraining:    NewModelTrainingClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Document.
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
	c.Document.Use(hooks...)
	c.DocumentError.Use(hooks...)
	c.DocumentLineItem.Use(hooks...)
	c.ModelTraining.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Document.Intercept(interceptors...)
	c.DocumentError.Intercept(interceptors...)
	c.DocumentLineItem.Intercept(interceptors...)
	c.ModelTraining.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *DocumentErrorMutation:
		return c.DocumentError.mutate(ctx, m)
	case *DocumentLineItemMutation:
		return c.DocumentLineItem.mutate(ctx, m)
	case *ModelTrainingMutation:
		return c.ModelTraining.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLineItems queries the line_items edge of a Document.
func (c *DocumentClient) QueryLineItems(_m *Document) *DocumentLineItemQuery {
	query := (&DocumentLineItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(documentlineitem.Table, documentlineitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.LineItemsTable, document.LineItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryShreddingErrors queries the shredding_errors edge of a Document.
func (c *DocumentClient) QueryShreddingErrors(_m *Document) *DocumentErrorQuery {
	query := (&DocumentErrorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(documenterror.Table, documenterror.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.ShreddingErrorsTable, document.ShreddingErrorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// DocumentErrorClient is a client for the DocumentError schema.
type DocumentErrorClient struct {
	config
}

// NewDocumentErrorClient returns a client for the DocumentError from the given config.
func NewDocumentErrorClient(c config) *DocumentErrorClient {
	return &DocumentErrorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documenterror.Hooks(f(g(h())))`.
func (c *DocumentErrorClient) Use(hooks ...Hook) {
	c.hooks.DocumentError = append(c.hooks.DocumentError, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documenterror.Intercept(f(g(h())))`.
func (c *DocumentErrorClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentError = append(c.inters.DocumentError, interceptors...)
}

// Create returns a builder for creating a DocumentError entity.
func (c *DocumentErrorClient) Create() *DocumentErrorCreate {
	mutation := newDocumentErrorMutation(c.config, OpCreate)
	return &DocumentErrorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentError entities.
func (c *DocumentErrorClient) CreateBulk(builders ...*DocumentErrorCreate) *DocumentErrorCreateBulk {
	return &DocumentErrorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentErrorClient) MapCreateBulk(slice any, setFunc func(*DocumentErrorCreate, int)) *DocumentErrorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentErrorCreateBulk{err: fmt.Errorf("calling to DocumentErrorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentErrorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentErrorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentError.
func (c *DocumentErrorClient) Update() *DocumentErrorUpdate {
	mutation := newDocumentErrorMutation(c.config, OpUpdate)
	return &DocumentErrorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentErrorClient) UpdateOne(_m *DocumentError) *DocumentErrorUpdateOne {
	mutation := newDocumentErrorMutation(c.config, OpUpdateOne, withDocumentError(_m))
	return &DocumentErrorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentErrorClient) UpdateOneID(id uuid.UUID) *DocumentErrorUpdateOne {
	mutation := newDocumentErrorMutation(c.config, OpUpdateOne, withDocumentErrorID(id))
	return &DocumentErrorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentError.
func (c *DocumentErrorClient) Delete() *DocumentErrorDelete {
	mutation := newDocumentErrorMutation(c.config, OpDelete)
	return &DocumentErrorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentErrorClient) DeleteOne(_m *DocumentError) *DocumentErrorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentErrorClient) DeleteOneID(id uuid.UUID) *DocumentErrorDeleteOne {
	builder := c.Delete().Where(documenterror.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentErrorDeleteOne{builder}
}

// Query returns a query builder for DocumentError.
func (c *DocumentErrorClient) Query() *DocumentErrorQuery {
	return &DocumentErrorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentError},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentError entity by its id.
func (c *DocumentErrorClient) Get(ctx context.Context, id uuid.UUID) (*DocumentError, error) {
	return c.Query().Where(documenterror.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentErrorClient) GetX(ctx context.Context, id uuid.UUID) *DocumentError {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a DocumentError.
func (c *DocumentErrorClient) QueryDocument(_m *DocumentError) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documenterror.Table, documenterror.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, documenterror.DocumentTable, documenterror.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentErrorClient) Hooks() []Hook {
	return c.hooks.DocumentError
}

// Interceptors returns the client interceptors.
func (c *DocumentErrorClient) Interceptors() []Interceptor {
	return c.inters.DocumentError
}

func (c *DocumentErrorClient) mutate(ctx context.Context, m *DocumentErrorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentErrorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentErrorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentErrorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentErrorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentError mutation op: %q", m.Op())
	}
}

// DocumentLineItemClient is a client for the DocumentLineItem schema.
type DocumentLineItemClient struct {
	config
}

// NewDocumentLineItemClient returns a client for the DocumentLineItem from the given config.
func NewDocumentLineItemClient(c config) *DocumentLineItemClient {
	return &DocumentLineItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentlineitem.Hooks(f(g(h())))`.
func (c *DocumentLineItemClient) Use(hooks ...Hook) {
	c.hooks.DocumentLineItem = append(c.hooks.DocumentLineItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentlineitem.Intercept(f(g(h())))`.
func (c *DocumentLineItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentLineItem = append(c.inters.DocumentLineItem, interceptors...)
}

// Create returns a builder for creating a DocumentLineItem entity.
func (c *DocumentLineItemClient) Create() *DocumentLineItemCreate {
	mutation := newDocumentLineItemMutation(c.config, OpCreate)
	return &DocumentLineItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentLineItem entities.
func (c *DocumentLineItemClient) CreateBulk(builders ...*DocumentLineItemCreate) *DocumentLineItemCreateBulk {
	return &DocumentLineItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentLineItemClient) MapCreateBulk(slice any, setFunc func(*DocumentLineItemCreate, int)) *DocumentLineItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentLineItemCreateBulk{err: fmt.Errorf("calling to DocumentLineItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentLineItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentLineItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentLineItem.
func (c *DocumentLineItemClient) Update() *DocumentLineItemUpdate {
	mutation := newDocumentLineItemMutation(c.config, OpUpdate)
	return &DocumentLineItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentLineItemClient) UpdateOne(_m *DocumentLineItem) *DocumentLineItemUpdateOne {
	mutation := newDocumentLineItemMutation(c.config, OpUpdateOne, withDocumentLineItem(_m))
	return &DocumentLineItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentLineItemClient) UpdateOneID(id uuid.UUID) *DocumentLineItemUpdateOne {
	mutation := newDocumentLineItemMutation(c.config, OpUpdateOne, withDocumentLineItemID(id))
	return &DocumentLineItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentLineItem.
func (c *DocumentLineItemClient) Delete() *DocumentLineItemDelete {
	mutation := newDocumentLineItemMutation(c.config, OpDelete)
	return &DocumentLineItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentLineItemClient) DeleteOne(_m *DocumentLineItem) *DocumentLineItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentLineItemClient) DeleteOneID(id uuid.UUID) *DocumentLineItemDeleteOne {
	builder := c.Delete().Where(documentlineitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentLineItemDeleteOne{builder}
}

// Query returns a query builder for DocumentLineItem.
func (c *DocumentLineItemClient) Query() *DocumentLineItemQuery {
	return &DocumentLineItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentLineItem},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentLineItem entity by its id.
func (c *DocumentLineItemClient) Get(ctx context.Context, id uuid.UUID) (*DocumentLineItem, error) {
	return c.Query().Where(documentlineitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentLineItemClient) GetX(ctx context.Context, id uuid.UUID) *DocumentLineItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a DocumentLineItem.
func (c *DocumentLineItemClient) QueryDocument(_m *DocumentLineItem) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentlineitem.Table, documentlineitem.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, documentlineitem.DocumentTable, documentlineitem.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentLineItemClient) Hooks() []Hook {
	return c.hooks.DocumentLineItem
}

// Interceptors returns the client interceptors.
func (c *DocumentLineItemClient) Interceptors() []Interceptor {
	return c.inters.DocumentLineItem
}

func (c *DocumentLineItemClient) mutate(ctx context.Context, m *DocumentLineItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentLineItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentLineItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentLineItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentLineItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentLineItem mutation op: %q", m.Op())
	}
}

// ModelTrainingClient is a client for the ModelTraining schema.
type ModelTrainingClient struct {
	config
}

// NewModelTrainingClient returns a client for the ModelTraining from the given config.
func NewModelTrainingClient(c config) *ModelTrainingClient {
	return &ModelTrainingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modeltraining.Hooks(f(g(h())))`.
func (c *ModelTrainingClient) Use(hooks ...Hook) {
	c.hooks.ModelTraining = append(c.hooks.ModelTraining, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modeltraining.Intercept(f(g(h())))`.
func (c *ModelTrainingClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModelTraining = append(c.inters.ModelTraining, interceptors...)
}

// Create returns a builder for creating a ModelTraining entity.
func (c *ModelTrainingClient) Create() *ModelTrainingCreate {
	mutation := newModelTrainingMutation(c.config, OpCreate)
	return &ModelTrainingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModelTraining entities.
func (c *ModelTrainingClient) CreateBulk(builders ...*ModelTrainingCreate) *ModelTrainingCreateBulk {
	return &ModelTrainingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelTrainingClient) MapCreateBulk(slice any, setFunc func(*ModelTrainingCreate, int)) *ModelTrainingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelTrainingCreateBulk{err: fmt.Errorf("calling to ModelTrainingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelTrainingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelTrainingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModelTraining.
func (c *ModelTrainingClient) Update() *ModelTrainingUpdate {
	mutation := newModelTrainingMutation(c.config, OpUpdate)
	return &ModelTrainingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelTrainingClient) UpdateOne(_m *ModelTraining) *ModelTrainingUpdateOne {
	mutation := newModelTrainingMutation(c.config, OpUpdateOne, withModelTraining(_m))
	return &ModelTrainingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelTrainingClient) UpdateOneID(id uuid.UUID) *ModelTrainingUpdateOne {
	mutation := newModelTrainingMutation(c.config, OpUpdateOne, withModelTrainingID(id))
	return &ModelTrainingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModelTraining.
func (c *ModelTrainingClient) Delete() *ModelTrainingDelete {
	mutation := newModelTrainingMutation(c.config, OpDelete)
	return &ModelTrainingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelTrainingClient) DeleteOne(_m *ModelTraining) *ModelTrainingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelTrainingClient) DeleteOneID(id uuid.UUID) *ModelTrainingDeleteOne {
	builder := c.Delete().Where(modeltraining.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelTrainingDeleteOne{builder}
}

// Query returns a query builder for ModelTraining.
func (c *ModelTrainingClient) Query() *ModelTrainingQuery {
	return &ModelTrainingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModelTraining},
		inters: c.Interceptors(),
	}
}

// Get returns a ModelTraining entity by its id.
func (c *ModelTrainingClient) Get(ctx context.Context, id uuid.UUID) (*ModelTraining, error) {
	return c.Query().Where(modeltraining.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelTrainingClient) GetX(ctx context.Context, id uuid.UUID) *ModelTraining {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ModelTrainingClient) Hooks() []Hook {
	return c.hooks.ModelTraining
}

// Interceptors returns the client interceptors.
func (c *ModelTrainingClient) Interceptors() []Interceptor {
	return c.inters.ModelTraining
}

func (c *ModelTrainingClient) mutate(ctx context.Context, m *ModelTrainingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelTrainingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelTrainingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelTrainingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelTrainingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModelTraining mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Document, DocumentError, DocumentLineItem, ModelTraining []ent.Hook
	}
	inters struct {
		Document, DocumentError, DocumentLineItem, ModelTraining []ent.Interceptor
	}
)
