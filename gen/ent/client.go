// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/seyi-adeleke/riskscore/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/seyi-adeleke/riskscore/gen/ent/annualprediction"
	"github.com/seyi-adeleke/riskscore/gen/ent/chunkreport"
	"github.com/seyi-adeleke/riskscore/gen/ent/company"
	"github.com/seyi-adeleke/riskscore/gen/ent/quarterlyprediction"
	"github.com/seyi-adeleke/riskscore/gen/ent/uploadjob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnnualPrediction is the client for interacting with the AnnualPrediction builders.
	AnnualPrediction *AnnualPredictionClient
	// ChunkReport is the client for interacting with the ChunkReport builders.
	ChunkReport *ChunkReportClient
	// Company is the client for interacting with the Company builders.
	Company *CompanyClient
	// QuarterlyPrediction is the client for interacting with the QuarterlyPrediction builders.
	QuarterlyPrediction *QuarterlyPredictionClient
	// UploadJob is the client for interacting with the UploadJob builders.
	UploadJob *UploadJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnnualPrediction = NewAnnualPredictionClient(c.config)
	c.ChunkReport = NewChunkReportClient(c.config)
	c.Company = NewCompanyClient(c.config)
	c.QuarterlyPrediction = NewQuarterlyPredictionClient(c.config)
	c.UploadJob = NewUploadJobClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		AnnualPrediction:    NewAnnualPredictionClient(cfg),
		ChunkReport:         NewChunkReportClient(cfg),
		Company:             NewCompanyClient(cfg),
		QuarterlyPrediction: NewQuarterlyPredictionClient(cfg),
		UploadJob:           NewUploadJobClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		AnnualPrediction:    NewAnnualPredictionClient(cfg),
		ChunkReport:         NewChunkReportClient(cfg),
		Company:             NewCompanyClient(cfg),
		QuarterlyPrediction: NewQuarterlyPredictionClient(cfg),
		UploadJob:           NewUploadJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnnualPrediction.
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
	c.AnnualPrediction.Use(hooks...)
	c.ChunkReport.Use(hooks...)
	c.Company.Use(hooks...)
	c.QuarterlyPrediction.Use(hooks...)
	c.UploadJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnnualPrediction.Intercept(interceptors...)
	c.ChunkReport.Intercept(interceptors...)
	c.Company.Intercept(interceptors...)
	c.QuarterlyPrediction.Intercept(interceptors...)
	c.UploadJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnnualPredictionMutation:
		return c.AnnualPrediction.mutate(ctx, m)
	case *ChunkReportMutation:
		return c.ChunkReport.mutate(ctx, m)
	case *CompanyMutation:
		return c.Company.mutate(ctx, m)
	case *QuarterlyPredictionMutation:
		return c.QuarterlyPrediction.mutate(ctx, m)
	case *UploadJobMutation:
		return c.UploadJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnnualPredictionClient is a client for the AnnualPrediction schema.
type AnnualPredictionClient struct {
	config
}

// NewAnnualPredictionClient returns a client for the AnnualPrediction from the given config.
func NewAnnualPredictionClient(c config) *AnnualPredictionClient {
	return &AnnualPredictionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `annualprediction.Hooks(f(g(h())))`.
func (c *AnnualPredictionClient) Use(hooks ...Hook) {
	c.hooks.AnnualPrediction = append(c.hooks.AnnualPrediction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `annualprediction.Intercept(f(g(h())))`.
func (c *AnnualPredictionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnnualPrediction = append(c.inters.AnnualPrediction, interceptors...)
}

// Create returns a builder for creating a AnnualPrediction entity.
func (c *AnnualPredictionClient) Create() *AnnualPredictionCreate {
	mutation := newAnnualPredictionMutation(c.config, OpCreate)
	return &AnnualPredictionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnnualPrediction entities.
func (c *AnnualPredictionClient) CreateBulk(builders ...*AnnualPredictionCreate) *AnnualPredictionCreateBulk {
	return &AnnualPredictionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnnualPredictionClient) MapCreateBulk(slice any, setFunc func(*AnnualPredictionCreate, int)) *AnnualPredictionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnnualPredictionCreateBulk{err: fmt.Errorf("calling to AnnualPredictionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnnualPredictionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnnualPredictionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnnualPrediction.
func (c *AnnualPredictionClient) Update() *AnnualPredictionUpdate {
	mutation := newAnnualPredictionMutation(c.config, OpUpdate)
	return &AnnualPredictionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnnualPredictionClient) UpdateOne(_m *AnnualPrediction) *AnnualPredictionUpdateOne {
	mutation := newAnnualPredictionMutation(c.config, OpUpdateOne, withAnnualPrediction(_m))
	return &AnnualPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnnualPredictionClient) UpdateOneID(id uuid.UUID) *AnnualPredictionUpdateOne {
	mutation := newAnnualPredictionMutation(c.config, OpUpdateOne, withAnnualPredictionID(id))
	return &AnnualPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnnualPrediction.
func (c *AnnualPredictionClient) Delete() *AnnualPredictionDelete {
	mutation := newAnnualPredictionMutation(c.config, OpDelete)
	return &AnnualPredictionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnnualPredictionClient) DeleteOne(_m *AnnualPrediction) *AnnualPredictionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnnualPredictionClient) DeleteOneID(id uuid.UUID) *AnnualPredictionDeleteOne {
	builder := c.Delete().Where(annualprediction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnnualPredictionDeleteOne{builder}
}

// Query returns a query builder for AnnualPrediction.
func (c *AnnualPredictionClient) Query() *AnnualPredictionQuery {
	return &AnnualPredictionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnnualPrediction},
		inters: c.Interceptors(),
	}
}

// Get returns a AnnualPrediction entity by its id.
func (c *AnnualPredictionClient) Get(ctx context.Context, id uuid.UUID) (*AnnualPrediction, error) {
	return c.Query().Where(annualprediction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnnualPredictionClient) GetX(ctx context.Context, id uuid.UUID) *AnnualPrediction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a AnnualPrediction.
func (c *AnnualPredictionClient) QueryCompany(_m *AnnualPrediction) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(annualprediction.Table, annualprediction.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, annualprediction.CompanyTable, annualprediction.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnnualPredictionClient) Hooks() []Hook {
	return c.hooks.AnnualPrediction
}

// Interceptors returns the client interceptors.
func (c *AnnualPredictionClient) Interceptors() []Interceptor {
	return c.inters.AnnualPrediction
}

func (c *AnnualPredictionClient) mutate(ctx context.Context, m *AnnualPredictionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnnualPredictionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnnualPredictionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnnualPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnnualPredictionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnnualPrediction mutation op: %q", m.Op())
	}
}

// ChunkReportClient is a client for the ChunkReport schema.
type ChunkReportClient struct {
	config
}

// NewChunkReportClient returns a client for the ChunkReport from the given config.
func NewChunkReportClient(c config) *ChunkReportClient {
	return &ChunkReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chunkreport.Hooks(f(g(h())))`.
func (c *ChunkReportClient) Use(hooks ...Hook) {
	c.hooks.ChunkReport = append(c.hooks.ChunkReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chunkreport.Intercept(f(g(h())))`.
func (c *ChunkReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChunkReport = append(c.inters.ChunkReport, interceptors...)
}

// Create returns a builder for creating a ChunkReport entity.
func (c *ChunkReportClient) Create() *ChunkReportCreate {
	mutation := newChunkReportMutation(c.config, OpCreate)
	return &ChunkReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChunkReport entities.
func (c *ChunkReportClient) CreateBulk(builders ...*ChunkReportCreate) *ChunkReportCreateBulk {
	return &ChunkReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChunkReportClient) MapCreateBulk(slice any, setFunc func(*ChunkReportCreate, int)) *ChunkReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChunkReportCreateBulk{err: fmt.Errorf("calling to ChunkReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChunkReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChunkReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChunkReport.
func (c *ChunkReportClient) Update() *ChunkReportUpdate {
	mutation := newChunkReportMutation(c.config, OpUpdate)
	return &ChunkReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChunkReportClient) UpdateOne(_m *ChunkReport) *ChunkReportUpdateOne {
	mutation := newChunkReportMutation(c.config, OpUpdateOne, withChunkReport(_m))
	return &ChunkReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChunkReportClient) UpdateOneID(id uuid.UUID) *ChunkReportUpdateOne {
	mutation := newChunkReportMutation(c.config, OpUpdateOne, withChunkReportID(id))
	return &ChunkReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChunkReport.
func (c *ChunkReportClient) Delete() *ChunkReportDelete {
	mutation := newChunkReportMutation(c.config, OpDelete)
	return &ChunkReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChunkReportClient) DeleteOne(_m *ChunkReport) *ChunkReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChunkReportClient) DeleteOneID(id uuid.UUID) *ChunkReportDeleteOne {
	builder := c.Delete().Where(chunkreport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChunkReportDeleteOne{builder}
}

// Query returns a query builder for ChunkReport.
func (c *ChunkReportClient) Query() *ChunkReportQuery {
	return &ChunkReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChunkReport},
		inters: c.Interceptors(),
	}
}

// Get returns a ChunkReport entity by its id.
func (c *ChunkReportClient) Get(ctx context.Context, id uuid.UUID) (*ChunkReport, error) {
	return c.Query().Where(chunkreport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChunkReportClient) GetX(ctx context.Context, id uuid.UUID) *ChunkReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a ChunkReport.
func (c *ChunkReportClient) QueryJob(_m *ChunkReport) *UploadJobQuery {
	query := (&UploadJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chunkreport.Table, chunkreport.FieldID, id),
			sqlgraph.To(uploadjob.Table, uploadjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chunkreport.JobTable, chunkreport.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChunkReportClient) Hooks() []Hook {
	return c.hooks.ChunkReport
}

// Interceptors returns the client interceptors.
func (c *ChunkReportClient) Interceptors() []Interceptor {
	return c.inters.ChunkReport
}

func (c *ChunkReportClient) mutate(ctx context.Context, m *ChunkReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChunkReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChunkReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChunkReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChunkReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChunkReport mutation op: %q", m.Op())
	}
}

// CompanyClient is a client for the Company schema.
type CompanyClient struct {
	config
}

// NewCompanyClient returns a client for the Company from the given config.
func NewCompanyClient(c config) *CompanyClient {
	return &CompanyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `company.Hooks(f(g(h())))`.
func (c *CompanyClient) Use(hooks ...Hook) {
	c.hooks.Company = append(c.hooks.Company, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `company.Intercept(f(g(h())))`.
func (c *CompanyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Company = append(c.inters.Company, interceptors...)
}

// Create returns a builder for creating a Company entity.
func (c *CompanyClient) Create() *CompanyCreate {
	mutation := newCompanyMutation(c.config, OpCreate)
	return &CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Company entities.
func (c *CompanyClient) CreateBulk(builders ...*CompanyCreate) *CompanyCreateBulk {
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompanyClient) MapCreateBulk(slice any, setFunc func(*CompanyCreate, int)) *CompanyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompanyCreateBulk{err: fmt.Errorf("calling to CompanyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompanyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Company.
func (c *CompanyClient) Update() *CompanyUpdate {
	mutation := newCompanyMutation(c.config, OpUpdate)
	return &CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompanyClient) UpdateOne(_m *Company) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompany(_m))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompanyClient) UpdateOneID(id uuid.UUID) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompanyID(id))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Company.
func (c *CompanyClient) Delete() *CompanyDelete {
	mutation := newCompanyMutation(c.config, OpDelete)
	return &CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompanyClient) DeleteOne(_m *Company) *CompanyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompanyClient) DeleteOneID(id uuid.UUID) *CompanyDeleteOne {
	builder := c.Delete().Where(company.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompanyDeleteOne{builder}
}

// Query returns a query builder for Company.
func (c *CompanyClient) Query() *CompanyQuery {
	return &CompanyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompany},
		inters: c.Interceptors(),
	}
}

// Get returns a Company entity by its id.
func (c *CompanyClient) Get(ctx context.Context, id uuid.UUID) (*Company, error) {
	return c.Query().Where(company.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompanyClient) GetX(ctx context.Context, id uuid.UUID) *Company {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnnualPredictions queries the annual_predictions edge of a Company.
func (c *CompanyClient) QueryAnnualPredictions(_m *Company) *AnnualPredictionQuery {
	query := (&AnnualPredictionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(annualprediction.Table, annualprediction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.AnnualPredictionsTable, company.AnnualPredictionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuarterlyPredictions queries the quarterly_predictions edge of a Company.
func (c *CompanyClient) QueryQuarterlyPredictions(_m *Company) *QuarterlyPredictionQuery {
	query := (&QuarterlyPredictionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(quarterlyprediction.Table, quarterlyprediction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.QuarterlyPredictionsTable, company.QuarterlyPredictionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompanyClient) Hooks() []Hook {
	return c.hooks.Company
}

// Interceptors returns the client interceptors.
func (c *CompanyClient) Interceptors() []Interceptor {
	return c.inters.Company
}

func (c *CompanyClient) mutate(ctx context.Context, m *CompanyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Company mutation op: %q", m.Op())
	}
}

// QuarterlyPredictionClient is a client for the QuarterlyPrediction schema.
type QuarterlyPredictionClient struct {
	config
}

// NewQuarterlyPredictionClient returns a client for the QuarterlyPrediction from the given config.
func NewQuarterlyPredictionClient(c config) *QuarterlyPredictionClient {
	return &QuarterlyPredictionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quarterlyprediction.Hooks(f(g(h())))`.
func (c *QuarterlyPredictionClient) Use(hooks ...Hook) {
	c.hooks.QuarterlyPrediction = append(c.hooks.QuarterlyPrediction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quarterlyprediction.Intercept(f(g(h())))`.
func (c *QuarterlyPredictionClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuarterlyPrediction = append(c.inters.QuarterlyPrediction, interceptors...)
}

// Create returns a builder for creating a QuarterlyPrediction entity.
func (c *QuarterlyPredictionClient) Create() *QuarterlyPredictionCreate {
	mutation := newQuarterlyPredictionMutation(c.config, OpCreate)
	return &QuarterlyPredictionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuarterlyPrediction entities.
func (c *QuarterlyPredictionClient) CreateBulk(builders ...*QuarterlyPredictionCreate) *QuarterlyPredictionCreateBulk {
	return &QuarterlyPredictionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuarterlyPredictionClient) MapCreateBulk(slice any, setFunc func(*QuarterlyPredictionCreate, int)) *QuarterlyPredictionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuarterlyPredictionCreateBulk{err: fmt.Errorf("calling to QuarterlyPredictionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuarterlyPredictionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuarterlyPredictionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuarterlyPrediction.
func (c *QuarterlyPredictionClient) Update() *QuarterlyPredictionUpdate {
	mutation := newQuarterlyPredictionMutation(c.config, OpUpdate)
	return &QuarterlyPredictionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuarterlyPredictionClient) UpdateOne(_m *QuarterlyPrediction) *QuarterlyPredictionUpdateOne {
	mutation := newQuarterlyPredictionMutation(c.config, OpUpdateOne, withQuarterlyPrediction(_m))
	return &QuarterlyPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuarterlyPredictionClient) UpdateOneID(id uuid.UUID) *QuarterlyPredictionUpdateOne {
	mutation := newQuarterlyPredictionMutation(c.config, OpUpdateOne, withQuarterlyPredictionID(id))
	return &QuarterlyPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuarterlyPrediction.
func (c *QuarterlyPredictionClient) Delete() *QuarterlyPredictionDelete {
	mutation := newQuarterlyPredictionMutation(c.config, OpDelete)
	return &QuarterlyPredictionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuarterlyPredictionClient) DeleteOne(_m *QuarterlyPrediction) *QuarterlyPredictionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuarterlyPredictionClient) DeleteOneID(id uuid.UUID) *QuarterlyPredictionDeleteOne {
	builder := c.Delete().Where(quarterlyprediction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuarterlyPredictionDeleteOne{builder}
}

// Query returns a query builder for QuarterlyPrediction.
func (c *QuarterlyPredictionClient) Query() *QuarterlyPredictionQuery {
	return &QuarterlyPredictionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuarterlyPrediction},
		inters: c.Interceptors(),
	}
}

// Get returns a QuarterlyPrediction entity by its id.
func (c *QuarterlyPredictionClient) Get(ctx context.Context, id uuid.UUID) (*QuarterlyPrediction, error) {
	return c.Query().Where(quarterlyprediction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuarterlyPredictionClient) GetX(ctx context.Context, id uuid.UUID) *QuarterlyPrediction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a QuarterlyPrediction.
func (c *QuarterlyPredictionClient) QueryCompany(_m *QuarterlyPrediction) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(quarterlyprediction.Table, quarterlyprediction.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quarterlyprediction.CompanyTable, quarterlyprediction.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuarterlyPredictionClient) Hooks() []Hook {
	return c.hooks.QuarterlyPrediction
}

// Interceptors returns the client interceptors.
func (c *QuarterlyPredictionClient) Interceptors() []Interceptor {
	return c.inters.QuarterlyPrediction
}

func (c *QuarterlyPredictionClient) mutate(ctx context.Context, m *QuarterlyPredictionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuarterlyPredictionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuarterlyPredictionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuarterlyPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuarterlyPredictionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuarterlyPrediction mutation op: %q", m.Op())
	}
}

// UploadJobClient is a client for the UploadJob schema.
type UploadJobClient struct {
	config
}

// NewUploadJobClient returns a client for the UploadJob from the given config.
func NewUploadJobClient(c config) *UploadJobClient {
	return &UploadJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `uploadjob.Hooks(f(g(h())))`.
func (c *UploadJobClient) Use(hooks ...Hook) {
	c.hooks.UploadJob = append(c.hooks.UploadJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `uploadjob.Intercept(f(g(h())))`.
func (c *UploadJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.UploadJob = append(c.inters.UploadJob, interceptors...)
}

// Create returns a builder for creating a UploadJob entity.
func (c *UploadJobClient) Create() *UploadJobCreate {
	mutation := newUploadJobMutation(c.config, OpCreate)
	return &UploadJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UploadJob entities.
func (c *UploadJobClient) CreateBulk(builders ...*UploadJobCreate) *UploadJobCreateBulk {
	return &UploadJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UploadJobClient) MapCreateBulk(slice any, setFunc func(*UploadJobCreate, int)) *UploadJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UploadJobCreateBulk{err: fmt.Errorf("calling to UploadJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UploadJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UploadJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UploadJob.
func (c *UploadJobClient) Update() *UploadJobUpdate {
	mutation := newUploadJobMutation(c.config, OpUpdate)
	return &UploadJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UploadJobClient) UpdateOne(_m *UploadJob) *UploadJobUpdateOne {
	mutation := newUploadJobMutation(c.config, OpUpdateOne, withUploadJob(_m))
	return &UploadJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UploadJobClient) UpdateOneID(id uuid.UUID) *UploadJobUpdateOne {
	mutation := newUploadJobMutation(c.config, OpUpdateOne, withUploadJobID(id))
	return &UploadJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UploadJob.
func (c *UploadJobClient) Delete() *UploadJobDelete {
	mutation := newUploadJobMutation(c.config, OpDelete)
	return &UploadJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UploadJobClient) DeleteOne(_m *UploadJob) *UploadJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UploadJobClient) DeleteOneID(id uuid.UUID) *UploadJobDeleteOne {
	builder := c.Delete().Where(uploadjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UploadJobDeleteOne{builder}
}

// Query returns a query builder for UploadJob.
func (c *UploadJobClient) Query() *UploadJobQuery {
	return &UploadJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUploadJob},
		inters: c.Interceptors(),
	}
}

// Get returns a UploadJob entity by its id.
func (c *UploadJobClient) Get(ctx context.Context, id uuid.UUID) (*UploadJob, error) {
	return c.Query().Where(uploadjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UploadJobClient) GetX(ctx context.Context, id uuid.UUID) *UploadJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChunkReports queries the chunk_reports edge of a UploadJob.
func (c *UploadJobClient) QueryChunkReports(_m *UploadJob) *ChunkReportQuery {
	query := (&ChunkReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadjob.Table, uploadjob.FieldID, id),
			sqlgraph.To(chunkreport.Table, chunkreport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, uploadjob.ChunkReportsTable, uploadjob.ChunkReportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UploadJobClient) Hooks() []Hook {
	return c.hooks.UploadJob
}

// Interceptors returns the client interceptors.
func (c *UploadJobClient) Interceptors() []Interceptor {
	return c.inters.UploadJob
}

func (c *UploadJobClient) mutate(ctx context.Context, m *UploadJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UploadJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UploadJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UploadJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UploadJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UploadJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnnualPrediction, ChunkReport, Company, QuarterlyPrediction,
		UploadJob []ent.Hook
	}
	inters struct {
		AnnualPrediction, ChunkReport, Company, QuarterlyPrediction,
		UploadJob []ent.Interceptor
	}
)
