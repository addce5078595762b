// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/edtech-ng/question-bank/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/edtech-ng/question-bank/gen/ent/englishquestion"
	"github.com/edtech-ng/question-bank/gen/ent/generalknowledgequestion"
	"github.com/edtech-ng/question-bank/gen/ent/mathematicsquestion"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// EnglishQuestion is the client for interacting with the EnglishQuestion builders.
	EnglishQuestion *EnglishQuestionClient
	// GeneralKnowledgeQuestion is the client for interacting with the GeneralKnowledgeQuestion builders.
	GeneralKnowledgeQuestion *GeneralKnowledgeQuestionClient
	// MathematicsQuestion is the client for interacting with the MathematicsQuestion builders.
	MathematicsQuestion *MathematicsQuestionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.EnglishQuestion = NewEnglishQuestionClient(c.config)
	c.GeneralKnowledgeQuestion = NewGeneralKnowledgeQuestionClient(c.config)
	c.MathematicsQuestion = NewMathematicsQuestionClient(c.config)
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
		ctx:                      ctx,
		config:                   cfg,
		EnglishQuestion:          NewEnglishQuestionClient(cfg),
		GeneralKnowledgeQuestion: NewGeneralKnowledgeQuestionClient(cfg),
		MathematicsQuestion:      NewMathematicsQuestionClient(cfg),
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
		ctx:                      ctx,
		config:                   cfg,
		EnglishQuestion:          NewEnglishQuestionClient(cfg),
		GeneralKnowledgeQuestion: NewGeneralKnowledgeQuestionClient(cfg),
		MathematicsQuestion:      NewMathematicsQuestionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		EnglishQuestion.
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
	c.EnglishQuestion.Use(hooks...)
	c.GeneralKnowledgeQuestion.Use(hooks...)
	c.MathematicsQuestion.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.EnglishQuestion.Intercept(interceptors...)
	c.GeneralKnowledgeQuestion.Intercept(interceptors...)
	c.MathematicsQuestion.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EnglishQuestionMutation:
		return c.EnglishQuestion.mutate(ctx, m)
	case *GeneralKnowledgeQuestionMutation:
		return c.GeneralKnowledgeQuestion.mutate(ctx, m)
	case *MathematicsQuestionMutation:
		return c.MathematicsQuestion.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EnglishQuestionClient is a client for the EnglishQuestion schema.
type EnglishQuestionClient struct {
	config
}

// NewEnglishQuestionClient returns a client for the EnglishQuestion from the given config.
func NewEnglishQuestionClient(c config) *EnglishQuestionClient {
	return &EnglishQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `englishquestion.Hooks(f(g(h())))`.
func (c *EnglishQuestionClient) Use(hooks ...Hook) {
	c.hooks.EnglishQuestion = append(c.hooks.EnglishQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `englishquestion.Intercept(f(g(h())))`.
func (c *EnglishQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.EnglishQuestion = append(c.inters.EnglishQuestion, interceptors...)
}

// Create returns a builder for creating a EnglishQuestion entity.
func (c *EnglishQuestionClient) Create() *EnglishQuestionCreate {
	mutation := newEnglishQuestionMutation(c.config, OpCreate)
	return &EnglishQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EnglishQuestion entities.
func (c *EnglishQuestionClient) CreateBulk(builders ...*EnglishQuestionCreate) *EnglishQuestionCreateBulk {
	return &EnglishQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EnglishQuestionClient) MapCreateBulk(slice any, setFunc func(*EnglishQuestionCreate, int)) *EnglishQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EnglishQuestionCreateBulk{err: fmt.Errorf("calling to EnglishQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EnglishQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EnglishQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EnglishQuestion.
func (c *EnglishQuestionClient) Update() *EnglishQuestionUpdate {
	mutation := newEnglishQuestionMutation(c.config, OpUpdate)
	return &EnglishQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EnglishQuestionClient) UpdateOne(_m *EnglishQuestion) *EnglishQuestionUpdateOne {
	mutation := newEnglishQuestionMutation(c.config, OpUpdateOne, withEnglishQuestion(_m))
	return &EnglishQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EnglishQuestionClient) UpdateOneID(id uuid.UUID) *EnglishQuestionUpdateOne {
	mutation := newEnglishQuestionMutation(c.config, OpUpdateOne, withEnglishQuestionID(id))
	return &EnglishQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EnglishQuestion.
func (c *EnglishQuestionClient) Delete() *EnglishQuestionDelete {
	mutation := newEnglishQuestionMutation(c.config, OpDelete)
	return &EnglishQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EnglishQuestionClient) DeleteOne(_m *EnglishQuestion) *EnglishQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EnglishQuestionClient) DeleteOneID(id uuid.UUID) *EnglishQuestionDeleteOne {
	builder := c.Delete().Where(englishquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EnglishQuestionDeleteOne{builder}
}

// Query returns a query builder for EnglishQuestion.
func (c *EnglishQuestionClient) Query() *EnglishQuestionQuery {
	return &EnglishQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEnglishQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a EnglishQuestion entity by its id.
func (c *EnglishQuestionClient) Get(ctx context.Context, id uuid.UUID) (*EnglishQuestion, error) {
	return c.Query().Where(englishquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EnglishQuestionClient) GetX(ctx context.Context, id uuid.UUID) *EnglishQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EnglishQuestionClient) Hooks() []Hook {
	return c.hooks.EnglishQuestion
}

// Interceptors returns the client interceptors.
func (c *EnglishQuestionClient) Interceptors() []Interceptor {
	return c.inters.EnglishQuestion
}

func (c *EnglishQuestionClient) mutate(ctx context.Context, m *EnglishQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EnglishQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EnglishQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EnglishQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EnglishQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EnglishQuestion mutation op: %q", m.Op())
	}
}

// GeneralKnowledgeQuestionClient is a client for the GeneralKnowledgeQuestion schema.
type GeneralKnowledgeQuestionClient struct {
	config
}

// NewGeneralKnowledgeQuestionClient returns a client for the GeneralKnowledgeQuestion from the given config.
func NewGeneralKnowledgeQuestionClient(c config) *GeneralKnowledgeQuestionClient {
	return &GeneralKnowledgeQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generalknowledgequestion.Hooks(f(g(h())))`.
func (c *GeneralKnowledgeQuestionClient) Use(hooks ...Hook) {
	c.hooks.GeneralKnowledgeQuestion = append(c.hooks.GeneralKnowledgeQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generalknowledgequestion.Intercept(f(g(h())))`.
func (c *GeneralKnowledgeQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.GeneralKnowledgeQuestion = append(c.inters.GeneralKnowledgeQuestion, interceptors...)
}

// Create returns a builder for creating a GeneralKnowledgeQuestion entity.
func (c *GeneralKnowledgeQuestionClient) Create() *GeneralKnowledgeQuestionCreate {
	mutation := newGeneralKnowledgeQuestionMutation(c.config, OpCreate)
	return &GeneralKnowledgeQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GeneralKnowledgeQuestion entities.
func (c *GeneralKnowledgeQuestionClient) CreateBulk(builders ...*GeneralKnowledgeQuestionCreate) *GeneralKnowledgeQuestionCreateBulk {
	return &GeneralKnowledgeQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GeneralKnowledgeQuestionClient) MapCreateBulk(slice any, setFunc func(*GeneralKnowledgeQuestionCreate, int)) *GeneralKnowledgeQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GeneralKnowledgeQuestionCreateBulk{err: fmt.Errorf("calling to GeneralKnowledgeQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GeneralKnowledgeQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GeneralKnowledgeQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GeneralKnowledgeQuestion.
func (c *GeneralKnowledgeQuestionClient) Update() *GeneralKnowledgeQuestionUpdate {
	mutation := newGeneralKnowledgeQuestionMutation(c.config, OpUpdate)
	return &GeneralKnowledgeQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GeneralKnowledgeQuestionClient) UpdateOne(_m *GeneralKnowledgeQuestion) *GeneralKnowledgeQuestionUpdateOne {
	mutation := newGeneralKnowledgeQuestionMutation(c.config, OpUpdateOne, withGeneralKnowledgeQuestion(_m))
	return &GeneralKnowledgeQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GeneralKnowledgeQuestionClient) UpdateOneID(id uuid.UUID) *GeneralKnowledgeQuestionUpdateOne {
	mutation := newGeneralKnowledgeQuestionMutation(c.config, OpUpdateOne, withGeneralKnowledgeQuestionID(id))
	return &GeneralKnowledgeQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GeneralKnowledgeQuestion.
func (c *GeneralKnowledgeQuestionClient) Delete() *GeneralKnowledgeQuestionDelete {
	mutation := newGeneralKnowledgeQuestionMutation(c.config, OpDelete)
	return &GeneralKnowledgeQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GeneralKnowledgeQuestionClient) DeleteOne(_m *GeneralKnowledgeQuestion) *GeneralKnowledgeQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GeneralKnowledgeQuestionClient) DeleteOneID(id uuid.UUID) *GeneralKnowledgeQuestionDeleteOne {
	builder := c.Delete().Where(generalknowledgequestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GeneralKnowledgeQuestionDeleteOne{builder}
}

// Query returns a query builder for GeneralKnowledgeQuestion.
func (c *GeneralKnowledgeQuestionClient) Query() *GeneralKnowledgeQuestionQuery {
	return &GeneralKnowledgeQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGeneralKnowledgeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a GeneralKnowledgeQuestion entity by its id.
func (c *GeneralKnowledgeQuestionClient) Get(ctx context.Context, id uuid.UUID) (*GeneralKnowledgeQuestion, error) {
	return c.Query().Where(generalknowledgequestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GeneralKnowledgeQuestionClient) GetX(ctx context.Context, id uuid.UUID) *GeneralKnowledgeQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GeneralKnowledgeQuestionClient) Hooks() []Hook {
	return c.hooks.GeneralKnowledgeQuestion
}

// Interceptors returns the client interceptors.
func (c *GeneralKnowledgeQuestionClient) Interceptors() []Interceptor {
	return c.inters.GeneralKnowledgeQuestion
}

func (c *GeneralKnowledgeQuestionClient) mutate(ctx context.Context, m *GeneralKnowledgeQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GeneralKnowledgeQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GeneralKnowledgeQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GeneralKnowledgeQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GeneralKnowledgeQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GeneralKnowledgeQuestion mutation op: %q", m.Op())
	}
}

// MathematicsQuestionClient is a client for the MathematicsQuestion schema.
type MathematicsQuestionClient struct {
	config
}

// NewMathematicsQuestionClient returns a client for the MathematicsQuestion from the given config.
func NewMathematicsQuestionClient(c config) *MathematicsQuestionClient {
	return &MathematicsQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mathematicsquestion.Hooks(f(g(h())))`.
func (c *MathematicsQuestionClient) Use(hooks ...Hook) {
	c.hooks.MathematicsQuestion = append(c.hooks.MathematicsQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mathematicsquestion.Intercept(f(g(h())))`.
func (c *MathematicsQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.MathematicsQuestion = append(c.inters.MathematicsQuestion, interceptors...)
}

// Create returns a builder for creating a MathematicsQuestion entity.
func (c *MathematicsQuestionClient) Create() *MathematicsQuestionCreate {
	mutation := newMathematicsQuestionMutation(c.config, OpCreate)
	return &MathematicsQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MathematicsQuestion entities.
func (c *MathematicsQuestionClient) CreateBulk(builders ...*MathematicsQuestionCreate) *MathematicsQuestionCreateBulk {
	return &MathematicsQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MathematicsQuestionClient) MapCreateBulk(slice any, setFunc func(*MathematicsQuestionCreate, int)) *MathematicsQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MathematicsQuestionCreateBulk{err: fmt.Errorf("calling to MathematicsQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MathematicsQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MathematicsQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MathematicsQuestion.
func (c *MathematicsQuestionClient) Update() *MathematicsQuestionUpdate {
	mutation := newMathematicsQuestionMutation(c.config, OpUpdate)
	return &MathematicsQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MathematicsQuestionClient) UpdateOne(_m *MathematicsQuestion) *MathematicsQuestionUpdateOne {
	mutation := newMathematicsQuestionMutation(c.config, OpUpdateOne, withMathematicsQuestion(_m))
	return &MathematicsQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MathematicsQuestionClient) UpdateOneID(id uuid.UUID) *MathematicsQuestionUpdateOne {
	mutation := newMathematicsQuestionMutation(c.config, OpUpdateOne, withMathematicsQuestionID(id))
	return &MathematicsQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MathematicsQuestion.
func (c *MathematicsQuestionClient) Delete() *MathematicsQuestionDelete {
	mutation := newMathematicsQuestionMutation(c.config, OpDelete)
	return &MathematicsQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MathematicsQuestionClient) DeleteOne(_m *MathematicsQuestion) *MathematicsQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MathematicsQuestionClient) DeleteOneID(id uuid.UUID) *MathematicsQuestionDeleteOne {
	builder := c.Delete().Where(mathematicsquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MathematicsQuestionDeleteOne{builder}
}

// Query returns a query builder for MathematicsQuestion.
func (c *MathematicsQuestionClient) Query() *MathematicsQuestionQuery {
	return &MathematicsQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMathematicsQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a MathematicsQuestion entity by its id.
func (c *MathematicsQuestionClient) Get(ctx context.Context, id uuid.UUID) (*MathematicsQuestion, error) {
	return c.Query().Where(mathematicsquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MathematicsQuestionClient) GetX(ctx context.Context, id uuid.UUID) *MathematicsQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MathematicsQuestionClient) Hooks() []Hook {
	return c.hooks.MathematicsQuestion
}

// Interceptors returns the client interceptors.
func (c *MathematicsQuestionClient) Interceptors() []Interceptor {
	return c.inters.MathematicsQuestion
}

func (c *MathematicsQuestionClient) mutate(ctx context.Context, m *MathematicsQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MathematicsQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MathematicsQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MathematicsQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MathematicsQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MathematicsQuestion mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		EnglishQuestion, GeneralKnowledgeQuestion, MathematicsQuestion []ent.Hook
	}
	inters struct {
		EnglishQuestion, GeneralKnowledgeQuestion, MathematicsQuestion []ent.Interceptor
	}
)
