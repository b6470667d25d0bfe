// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/laitim2001/ai-document-extraction/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/laitim2001/ai-document-extraction/gen/ent/documentformat"
	"github.com/laitim2001/ai-document-extraction/gen/ent/fieldmappingconfig"
	"github.com/laitim2001/ai-document-extraction/gen/ent/organization"
	"github.com/laitim2001/ai-document-extraction/gen/ent/promptconfig"
	"github.com/laitim2001/ai-document-extraction/gen/ent/vocabularyterm"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DocumentFormat is the client for interacting with the DocumentFormat builders.
	DocumentFormat *DocumentFormatClient
	// FieldMappingConfig is the client for interacting with the FieldMappingConfig builders.
	FieldMappingConfig *FieldMappingConfigClient
	// Organization is the client for interacting with the Organization builders.
	Organization *OrganizationClient
	// PromptConfig is the client for interacting with the PromptConfig builders.
	PromptConfig *PromptConfigClient
	// VocabularyTerm is the client for interacting with the VocabularyTerm builders.
	VocabularyTerm *VocabularyTermClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DocumentFormat = NewDocumentFormatClient(c.config)
	c.FieldMappingConfig = NewFieldMappingConfigClient(c.config)
	c.Organization = NewOrganizationClient(c.config)
	c.PromptConfig = NewPromptConfigClient(c.config)
	c.VocabularyTerm = NewVocabularyTermClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		DocumentFormat:     NewDocumentFormatClient(cfg),
		FieldMappingConfig: NewFieldMappingConfigClient(cfg),
		Organization:       NewOrganizationClient(cfg),
		PromptConfig:       NewPromptConfigClient(cfg),
		VocabularyTerm:     NewVocabularyTermClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		DocumentFormat:     NewDocumentFormatClient(cfg),
		FieldMappingConfig: NewFieldMappingConfigClient(cfg),
		Organization:       NewOrganizationClient(cfg),
		PromptConfig:       NewPromptConfigClient(cfg),
		VocabularyTerm:     NewVocabularyTermClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DocumentFormat.
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
	c.DocumentFormat.Use(hooks...)
	c.FieldMappingConfig.Use(hooks...)
	c.Organization.Use(hooks...)
	c.PromptConfig.Use(hooks...)
	c.VocabularyTerm.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DocumentFormat.Intercept(interceptors...)
	c.FieldMappingConfig.Intercept(interceptors...)
	c.Organization.Intercept(interceptors...)
	c.PromptConfig.Intercept(interceptors...)
	c.VocabularyTerm.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DocumentFormatMutation:
		return c.DocumentFormat.mutate(ctx, m)
	case *FieldMappingConfigMutation:
		return c.FieldMappingConfig.mutate(ctx, m)
	case *OrganizationMutation:
		return c.Organization.mutate(ctx, m)
	case *PromptConfigMutation:
		return c.PromptConfig.mutate(ctx, m)
	case *VocabularyTermMutation:
		return c.VocabularyTerm.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DocumentFormatClient is a client for the DocumentFormat schema.
type DocumentFormatClient struct {
	config
}

// NewDocumentFormatClient returns a client for the DocumentFormat from the given config.
func NewDocumentFormatClient(c config) *DocumentFormatClient {
	return &DocumentFormatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentformat.Hooks(f(g(h())))`.
func (c *DocumentFormatClient) Use(hooks ...Hook) {
	c.hooks.DocumentFormat = append(c.hooks.DocumentFormat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentformat.Intercept(f(g(h())))`.
func (c *DocumentFormatClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentFormat = append(c.inters.DocumentFormat, interceptors...)
}

// Create returns a builder for creating a DocumentFormat entity.
func (c *DocumentFormatClient) Create() *DocumentFormatCreate {
	mutation := newDocumentFormatMutation(c.config, OpCreate)
	return &DocumentFormatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentFormat entities.
func (c *DocumentFormatClient) CreateBulk(builders ...*DocumentFormatCreate) *DocumentFormatCreateBulk {
	return &DocumentFormatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentFormatClient) MapCreateBulk(slice any, setFunc func(*DocumentFormatCreate, int)) *DocumentFormatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentFormatCreateBulk{err: fmt.Errorf("calling to DocumentFormatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentFormatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentFormatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentFormat.
func (c *DocumentFormatClient) Update() *DocumentFormatUpdate {
	mutation := newDocumentFormatMutation(c.config, OpUpdate)
	return &DocumentFormatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentFormatClient) UpdateOne(_m *DocumentFormat) *DocumentFormatUpdateOne {
	mutation := newDocumentFormatMutation(c.config, OpUpdateOne, withDocumentFormat(_m))
	return &DocumentFormatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentFormatClient) UpdateOneID(id uuid.UUID) *DocumentFormatUpdateOne {
	mutation := newDocumentFormatMutation(c.config, OpUpdateOne, withDocumentFormatID(id))
	return &DocumentFormatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentFormat.
func (c *DocumentFormatClient) Delete() *DocumentFormatDelete {
	mutation := newDocumentFormatMutation(c.config, OpDelete)
	return &DocumentFormatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentFormatClient) DeleteOne(_m *DocumentFormat) *DocumentFormatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentFormatClient) DeleteOneID(id uuid.UUID) *DocumentFormatDeleteOne {
	builder := c.Delete().Where(documentformat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentFormatDeleteOne{builder}
}

// Query returns a query builder for DocumentFormat.
func (c *DocumentFormatClient) Query() *DocumentFormatQuery {
	return &DocumentFormatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentFormat},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentFormat entity by its id.
func (c *DocumentFormatClient) Get(ctx context.Context, id uuid.UUID) (*DocumentFormat, error) {
	return c.Query().Where(documentformat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentFormatClient) GetX(ctx context.Context, id uuid.UUID) *DocumentFormat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOrganization queries the organization edge of a DocumentFormat.
func (c *DocumentFormatClient) QueryOrganization(_m *DocumentFormat) *OrganizationQuery {
	query := (&OrganizationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentformat.Table, documentformat.FieldID, id),
			sqlgraph.To(organization.Table, organization.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, documentformat.OrganizationTable, documentformat.OrganizationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTerms queries the terms edge of a DocumentFormat.
func (c *DocumentFormatClient) QueryTerms(_m *DocumentFormat) *VocabularyTermQuery {
	query := (&VocabularyTermClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentformat.Table, documentformat.FieldID, id),
			sqlgraph.To(vocabularyterm.Table, vocabularyterm.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentformat.TermsTable, documentformat.TermsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMappingConfigs queries the mapping_configs edge of a DocumentFormat.
func (c *DocumentFormatClient) QueryMappingConfigs(_m *DocumentFormat) *FieldMappingConfigQuery {
	query := (&FieldMappingConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentformat.Table, documentformat.FieldID, id),
			sqlgraph.To(fieldmappingconfig.Table, fieldmappingconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentformat.MappingConfigsTable, documentformat.MappingConfigsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPromptConfigs queries the prompt_configs edge of a DocumentFormat.
func (c *DocumentFormatClient) QueryPromptConfigs(_m *DocumentFormat) *PromptConfigQuery {
	query := (&PromptConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentformat.Table, documentformat.FieldID, id),
			sqlgraph.To(promptconfig.Table, promptconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentformat.PromptConfigsTable, documentformat.PromptConfigsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentFormatClient) Hooks() []Hook {
	return c.hooks.DocumentFormat
}

// Interceptors returns the client interceptors.
func (c *DocumentFormatClient) Interceptors() []Interceptor {
	return c.inters.DocumentFormat
}

func (c *DocumentFormatClient) mutate(ctx context.Context, m *DocumentFormatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentFormatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentFormatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentFormatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentFormatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentFormat mutation op: %q", m.Op())
	}
}

// FieldMappingConfigClient is a client for the FieldMappingConfig schema.
type FieldMappingConfigClient struct {
	config
}

// NewFieldMappingConfigClient returns a client for the FieldMappingConfig from the given config.
func NewFieldMappingConfigClient(c config) *FieldMappingConfigClient {
	return &FieldMappingConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fieldmappingconfig.Hooks(f(g(h())))`.
func (c *FieldMappingConfigClient) Use(hooks ...Hook) {
	c.hooks.FieldMappingConfig = append(c.hooks.FieldMappingConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fieldmappingconfig.Intercept(f(g(h())))`.
func (c *FieldMappingConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.FieldMappingConfig = append(c.inters.FieldMappingConfig, interceptors...)
}

// Create returns a builder for creating a FieldMappingConfig entity.
func (c *FieldMappingConfigClient) Create() *FieldMappingConfigCreate {
	mutation := newFieldMappingConfigMutation(c.config, OpCreate)
	return &FieldMappingConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FieldMappingConfig entities.
func (c *FieldMappingConfigClient) CreateBulk(builders ...*FieldMappingConfigCreate) *FieldMappingConfigCreateBulk {
	return &FieldMappingConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FieldMappingConfigClient) MapCreateBulk(slice any, setFunc func(*FieldMappingConfigCreate, int)) *FieldMappingConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FieldMappingConfigCreateBulk{err: fmt.Errorf("calling to FieldMappingConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FieldMappingConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FieldMappingConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FieldMappingConfig.
func (c *FieldMappingConfigClient) Update() *FieldMappingConfigUpdate {
	mutation := newFieldMappingConfigMutation(c.config, OpUpdate)
	return &FieldMappingConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FieldMappingConfigClient) UpdateOne(_m *FieldMappingConfig) *FieldMappingConfigUpdateOne {
	mutation := newFieldMappingConfigMutation(c.config, OpUpdateOne, withFieldMappingConfig(_m))
	return &FieldMappingConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FieldMappingConfigClient) UpdateOneID(id uuid.UUID) *FieldMappingConfigUpdateOne {
	mutation := newFieldMappingConfigMutation(c.config, OpUpdateOne, withFieldMappingConfigID(id))
	return &FieldMappingConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FieldMappingConfig.
func (c *FieldMappingConfigClient) Delete() *FieldMappingConfigDelete {
	mutation := newFieldMappingConfigMutation(c.config, OpDelete)
	return &FieldMappingConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FieldMappingConfigClient) DeleteOne(_m *FieldMappingConfig) *FieldMappingConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FieldMappingConfigClient) DeleteOneID(id uuid.UUID) *FieldMappingConfigDeleteOne {
	builder := c.Delete().Where(fieldmappingconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FieldMappingConfigDeleteOne{builder}
}

// Query returns a query builder for FieldMappingConfig.
func (c *FieldMappingConfigClient) Query() *FieldMappingConfigQuery {
	return &FieldMappingConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFieldMappingConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a FieldMappingConfig entity by its id.
func (c *FieldMappingConfigClient) Get(ctx context.Context, id uuid.UUID) (*FieldMappingConfig, error) {
	return c.Query().Where(fieldmappingconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FieldMappingConfigClient) GetX(ctx context.Context, id uuid.UUID) *FieldMappingConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOrganization queries the organization edge of a FieldMappingConfig.
func (c *FieldMappingConfigClient) QueryOrganization(_m *FieldMappingConfig) *OrganizationQuery {
	query := (&OrganizationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fieldmappingconfig.Table, fieldmappingconfig.FieldID, id),
			sqlgraph.To(organization.Table, organization.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fieldmappingconfig.OrganizationTable, fieldmappingconfig.OrganizationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFormat queries the format edge of a FieldMappingConfig.
func (c *FieldMappingConfigClient) QueryFormat(_m *FieldMappingConfig) *DocumentFormatQuery {
	query := (&DocumentFormatClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fieldmappingconfig.Table, fieldmappingconfig.FieldID, id),
			sqlgraph.To(documentformat.Table, documentformat.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fieldmappingconfig.FormatTable, fieldmappingconfig.FormatColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FieldMappingConfigClient) Hooks() []Hook {
	return c.hooks.FieldMappingConfig
}

// Interceptors returns the client interceptors.
func (c *FieldMappingConfigClient) Interceptors() []Interceptor {
	return c.inters.FieldMappingConfig
}

func (c *FieldMappingConfigClient) mutate(ctx context.Context, m *FieldMappingConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FieldMappingConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FieldMappingConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FieldMappingConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FieldMappingConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FieldMappingConfig mutation op: %q", m.Op())
	}
}

// OrganizationClient is a client for the Organization schema.
type OrganizationClient struct {
	config
}

// NewOrganizationClient returns a client for the Organization from the given config.
func NewOrganizationClient(c config) *OrganizationClient {
	return &OrganizationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `organization.Hooks(f(g(h())))`.
func (c *OrganizationClient) Use(hooks ...Hook) {
	c.hooks.Organization = append(c.hooks.Organization, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `organization.Intercept(f(g(h())))`.
func (c *OrganizationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Organization = append(c.inters.Organization, interceptors...)
}

// Create returns a builder for creating a Organization entity.
func (c *OrganizationClient) Create() *OrganizationCreate {
	mutation := newOrganizationMutation(c.config, OpCreate)
	return &OrganizationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Organization entities.
func (c *OrganizationClient) CreateBulk(builders ...*OrganizationCreate) *OrganizationCreateBulk {
	return &OrganizationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrganizationClient) MapCreateBulk(slice any, setFunc func(*OrganizationCreate, int)) *OrganizationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrganizationCreateBulk{err: fmt.Errorf("calling to OrganizationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrganizationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrganizationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Organization.
func (c *OrganizationClient) Update() *OrganizationUpdate {
	mutation := newOrganizationMutation(c.config, OpUpdate)
	return &OrganizationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrganizationClient) UpdateOne(_m *Organization) *OrganizationUpdateOne {
	mutation := newOrganizationMutation(c.config, OpUpdateOne, withOrganization(_m))
	return &OrganizationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrganizationClient) UpdateOneID(id uuid.UUID) *OrganizationUpdateOne {
	mutation := newOrganizationMutation(c.config, OpUpdateOne, withOrganizationID(id))
	return &OrganizationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Organization.
func (c *OrganizationClient) Delete() *OrganizationDelete {
	mutation := newOrganizationMutation(c.config, OpDelete)
	return &OrganizationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrganizationClient) DeleteOne(_m *Organization) *OrganizationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrganizationClient) DeleteOneID(id uuid.UUID) *OrganizationDeleteOne {
	builder := c.Delete().Where(organization.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrganizationDeleteOne{builder}
}

// Query returns a query builder for Organization.
func (c *OrganizationClient) Query() *OrganizationQuery {
	return &OrganizationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrganization},
		inters: c.Interceptors(),
	}
}

// Get returns a Organization entity by its id.
func (c *OrganizationClient) Get(ctx context.Context, id uuid.UUID) (*Organization, error) {
	return c.Query().Where(organization.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrganizationClient) GetX(ctx context.Context, id uuid.UUID) *Organization {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFormats queries the formats edge of a Organization.
func (c *OrganizationClient) QueryFormats(_m *Organization) *DocumentFormatQuery {
	query := (&DocumentFormatClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(organization.Table, organization.FieldID, id),
			sqlgraph.To(documentformat.Table, documentformat.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, organization.FormatsTable, organization.FormatsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMappingConfigs queries the mapping_configs edge of a Organization.
func (c *OrganizationClient) QueryMappingConfigs(_m *Organization) *FieldMappingConfigQuery {
	query := (&FieldMappingConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(organization.Table, organization.FieldID, id),
			sqlgraph.To(fieldmappingconfig.Table, fieldmappingconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, organization.MappingConfigsTable, organization.MappingConfigsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPromptConfigs queries the prompt_configs edge of a Organization.
func (c *OrganizationClient) QueryPromptConfigs(_m *Organization) *PromptConfigQuery {
	query := (&PromptConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(organization.Table, organization.FieldID, id),
			sqlgraph.To(promptconfig.Table, promptconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, organization.PromptConfigsTable, organization.PromptConfigsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrganizationClient) Hooks() []Hook {
	return c.hooks.Organization
}

// Interceptors returns the client interceptors.
func (c *OrganizationClient) Interceptors() []Interceptor {
	return c.inters.Organization
}

func (c *OrganizationClient) mutate(ctx context.Context, m *OrganizationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrganizationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrganizationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrganizationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrganizationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Organization mutation op: %q", m.Op())
	}
}

// PromptConfigClient is a client for the PromptConfig schema.
type PromptConfigClient struct {
	config
}

// NewPromptConfigClient returns a client for the PromptConfig from the given config.
func NewPromptConfigClient(c config) *PromptConfigClient {
	return &PromptConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `promptconfig.Hooks(f(g(h())))`.
func (c *PromptConfigClient) Use(hooks ...Hook) {
	c.hooks.PromptConfig = append(c.hooks.PromptConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `promptconfig.Intercept(f(g(h())))`.
func (c *PromptConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptConfig = append(c.inters.PromptConfig, interceptors...)
}

// Create returns a builder for creating a PromptConfig entity.
func (c *PromptConfigClient) Create() *PromptConfigCreate {
	mutation := newPromptConfigMutation(c.config, OpCreate)
	return &PromptConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptConfig entities.
func (c *PromptConfigClient) CreateBulk(builders ...*PromptConfigCreate) *PromptConfigCreateBulk {
	return &PromptConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptConfigClient) MapCreateBulk(slice any, setFunc func(*PromptConfigCreate, int)) *PromptConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptConfigCreateBulk{err: fmt.Errorf("calling to PromptConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptConfig.
func (c *PromptConfigClient) Update() *PromptConfigUpdate {
	mutation := newPromptConfigMutation(c.config, OpUpdate)
	return &PromptConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptConfigClient) UpdateOne(_m *PromptConfig) *PromptConfigUpdateOne {
	mutation := newPromptConfigMutation(c.config, OpUpdateOne, withPromptConfig(_m))
	return &PromptConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptConfigClient) UpdateOneID(id uuid.UUID) *PromptConfigUpdateOne {
	mutation := newPromptConfigMutation(c.config, OpUpdateOne, withPromptConfigID(id))
	return &PromptConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptConfig.
func (c *PromptConfigClient) Delete() *PromptConfigDelete {
	mutation := newPromptConfigMutation(c.config, OpDelete)
	return &PromptConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptConfigClient) DeleteOne(_m *PromptConfig) *PromptConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptConfigClient) DeleteOneID(id uuid.UUID) *PromptConfigDeleteOne {
	builder := c.Delete().Where(promptconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptConfigDeleteOne{builder}
}

// Query returns a query builder for PromptConfig.
func (c *PromptConfigClient) Query() *PromptConfigQuery {
	return &PromptConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptConfig entity by its id.
func (c *PromptConfigClient) Get(ctx context.Context, id uuid.UUID) (*PromptConfig, error) {
	return c.Query().Where(promptconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptConfigClient) GetX(ctx context.Context, id uuid.UUID) *PromptConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOrganization queries the organization edge of a PromptConfig.
func (c *PromptConfigClient) QueryOrganization(_m *PromptConfig) *OrganizationQuery {
	query := (&OrganizationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(promptconfig.Table, promptconfig.FieldID, id),
			sqlgraph.To(organization.Table, organization.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, promptconfig.OrganizationTable, promptconfig.OrganizationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFormat queries the format edge of a PromptConfig.
func (c *PromptConfigClient) QueryFormat(_m *PromptConfig) *DocumentFormatQuery {
	query := (&DocumentFormatClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(promptconfig.Table, promptconfig.FieldID, id),
			sqlgraph.To(documentformat.Table, documentformat.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, promptconfig.FormatTable, promptconfig.FormatColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PromptConfigClient) Hooks() []Hook {
	return c.hooks.PromptConfig
}

// Interceptors returns the client interceptors.
func (c *PromptConfigClient) Interceptors() []Interceptor {
	return c.inters.PromptConfig
}

func (c *PromptConfigClient) mutate(ctx context.Context, m *PromptConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptConfig mutation op: %q", m.Op())
	}
}

// VocabularyTermClient is a client for the VocabularyTerm schema.
type VocabularyTermClient struct {
	config
}

// NewVocabularyTermClient returns a client for the VocabularyTerm from the given config.
func NewVocabularyTermClient(c config) *VocabularyTermClient {
	return &VocabularyTermClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vocabularyterm.Hooks(f(g(h())))`.
func (c *VocabularyTermClient) Use(hooks ...Hook) {
	c.hooks.VocabularyTerm = append(c.hooks.VocabularyTerm, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vocabularyterm.Intercept(f(g(h())))`.
func (c *VocabularyTermClient) Intercept(interceptors ...Interceptor) {
	c.inters.VocabularyTerm = append(c.inters.VocabularyTerm, interceptors...)
}

// Create returns a builder for creating a VocabularyTerm entity.
func (c *VocabularyTermClient) Create() *VocabularyTermCreate {
	mutation := newVocabularyTermMutation(c.config, OpCreate)
	return &VocabularyTermCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VocabularyTerm entities.
func (c *VocabularyTermClient) CreateBulk(builders ...*VocabularyTermCreate) *VocabularyTermCreateBulk {
	return &VocabularyTermCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VocabularyTermClient) MapCreateBulk(slice any, setFunc func(*VocabularyTermCreate, int)) *VocabularyTermCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VocabularyTermCreateBulk{err: fmt.Errorf("calling to VocabularyTermClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VocabularyTermCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VocabularyTermCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VocabularyTerm.
func (c *VocabularyTermClient) Update() *VocabularyTermUpdate {
	mutation := newVocabularyTermMutation(c.config, OpUpdate)
	return &VocabularyTermUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VocabularyTermClient) UpdateOne(_m *VocabularyTerm) *VocabularyTermUpdateOne {
	mutation := newVocabularyTermMutation(c.config, OpUpdateOne, withVocabularyTerm(_m))
	return &VocabularyTermUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VocabularyTermClient) UpdateOneID(id uuid.UUID) *VocabularyTermUpdateOne {
	mutation := newVocabularyTermMutation(c.config, OpUpdateOne, withVocabularyTermID(id))
	return &VocabularyTermUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VocabularyTerm.
func (c *VocabularyTermClient) Delete() *VocabularyTermDelete {
	mutation := newVocabularyTermMutation(c.config, OpDelete)
	return &VocabularyTermDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VocabularyTermClient) DeleteOne(_m *VocabularyTerm) *VocabularyTermDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VocabularyTermClient) DeleteOneID(id uuid.UUID) *VocabularyTermDeleteOne {
	builder := c.Delete().Where(vocabularyterm.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VocabularyTermDeleteOne{builder}
}

// Query returns a query builder for VocabularyTerm.
func (c *VocabularyTermClient) Query() *VocabularyTermQuery {
	return &VocabularyTermQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVocabularyTerm},
		inters: c.Interceptors(),
	}
}

// Get returns a VocabularyTerm entity by its id.
func (c *VocabularyTermClient) Get(ctx context.Context, id uuid.UUID) (*VocabularyTerm, error) {
	return c.Query().Where(vocabularyterm.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VocabularyTermClient) GetX(ctx context.Context, id uuid.UUID) *VocabularyTerm {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFormat queries the format edge of a VocabularyTerm.
func (c *VocabularyTermClient) QueryFormat(_m *VocabularyTerm) *DocumentFormatQuery {
	query := (&DocumentFormatClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(vocabularyterm.Table, vocabularyterm.FieldID, id),
			sqlgraph.To(documentformat.Table, documentformat.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, vocabularyterm.FormatTable, vocabularyterm.FormatColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VocabularyTermClient) Hooks() []Hook {
	return c.hooks.VocabularyTerm
}

// Interceptors returns the client interceptors.
func (c *VocabularyTermClient) Interceptors() []Interceptor {
	return c.inters.VocabularyTerm
}

func (c *VocabularyTermClient) mutate(ctx context.Context, m *VocabularyTermMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VocabularyTermCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VocabularyTermUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VocabularyTermUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VocabularyTermDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VocabularyTerm mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DocumentFormat, FieldMappingConfig, Organization, PromptConfig,
		VocabularyTerm []ent.Hook
	}
	inters struct {
		DocumentFormat, FieldMappingConfig, Organization, PromptConfig,
		VocabularyTerm []ent.Interceptor
	}
)
