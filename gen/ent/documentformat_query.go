// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/laitim2001/ai-document-extraction/gen/ent/documentformat"
	"github.com/laitim2001/ai-document-extraction/gen/ent/fieldmappingconfig"
	"github.com/laitim2001/ai-document-extraction/gen/ent/organization"
	"github.com/laitim2001/ai-document-extraction/gen/ent/predicate"
	"github.com/laitim2001/ai-document-extraction/gen/ent/promptconfig"
	"github.com/laitim2001/ai-document-extraction/gen/ent/vocabularyterm"
)

// DocumentFormatQuery is the builder for querying DocumentFormat entities.
type DocumentFormatQuery struct {
	config
	ctx                *QueryContext
	order              []documentformat.OrderOption
	inters             []Interceptor
	predicates         []predicate.DocumentFormat
	withOrganization   *OrganizationQuery
	withTerms          *VocabularyTermQuery
	withMappingConfigs *FieldMappingConfigQuery
	withPromptConfigs  *PromptConfigQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DocumentFormatQuery builder.
func (_q *DocumentFormatQuery) Where(ps ...predicate.DocumentFormat) *DocumentFormatQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DocumentFormatQuery) Limit(limit int) *DocumentFormatQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DocumentFormatQuery) Offset(offset int) *DocumentFormatQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DocumentFormatQuery) Unique(unique bool) *DocumentFormatQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DocumentFormatQuery) Order(o ...documentformat.OrderOption) *DocumentFormatQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryOrganization chains the current query on the "organization" edge.
func (_q *DocumentFormatQuery) QueryOrganization() *OrganizationQuery {
	query := (&OrganizationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(documentformat.Table, documentformat.FieldID, selector),
			sqlgraph.To(organization.Table, organization.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, documentformat.OrganizationTable, documentformat.OrganizationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTerms chains the current query on the "terms" edge.
func (_q *DocumentFormatQuery) QueryTerms() *VocabularyTermQuery {
	query := (&VocabularyTermClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(documentformat.Table, documentformat.FieldID, selector),
			sqlgraph.To(vocabularyterm.Table, vocabularyterm.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentformat.TermsTable, documentformat.TermsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMappingConfigs chains the current query on the "mapping_configs" edge.
func (_q *DocumentFormatQuery) QueryMappingConfigs() *FieldMappingConfigQuery {
	query := (&FieldMappingConfigClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(documentformat.Table, documentformat.FieldID, selector),
			sqlgraph.To(fieldmappingconfig.Table, fieldmappingconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentformat.MappingConfigsTable, documentformat.MappingConfigsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPromptConfigs chains the current query on the "prompt_configs" edge.
func (_q *DocumentFormatQuery) QueryPromptConfigs() *PromptConfigQuery {
	query := (&PromptConfigClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(documentformat.Table, documentformat.FieldID, selector),
			sqlgraph.To(promptconfig.Table, promptconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentformat.PromptConfigsTable, documentformat.PromptConfigsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DocumentFormat entity from the query.
// Returns a *NotFoundError when no DocumentFormat was found.
func (_q *DocumentFormatQuery) First(ctx context.Context) (*DocumentFormat, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{documentformat.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DocumentFormatQuery) FirstX(ctx context.Context) *DocumentFormat {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DocumentFormat ID from the query.
// Returns a *NotFoundError when no DocumentFormat ID was found.
func (_q *DocumentFormatQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{documentformat.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DocumentFormatQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DocumentFormat entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DocumentFormat entity is found.
// Returns a *NotFoundError when no DocumentFormat entities are found.
func (_q *DocumentFormatQuery) Only(ctx context.Context) (*DocumentFormat, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{documentformat.Label}
	default:
		return nil, &NotSingularError{documentformat.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DocumentFormatQuery) OnlyX(ctx context.Context) *DocumentFormat {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DocumentFormat ID in the query.
// Returns a *NotSingularError when more than one DocumentFormat ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DocumentFormatQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{documentformat.Label}
	default:
		err = &NotSingularError{documentformat.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DocumentFormatQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DocumentFormats.
func (_q *DocumentFormatQuery) All(ctx context.Context) ([]*DocumentFormat, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DocumentFormat, *DocumentFormatQuery]()
	return withInterceptors[[]*DocumentFormat](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DocumentFormatQuery) AllX(ctx context.Context) []*DocumentFormat {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DocumentFormat IDs.
func (_q *DocumentFormatQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(documentformat.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DocumentFormatQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DocumentFormatQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DocumentFormatQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DocumentFormatQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DocumentFormatQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *DocumentFormatQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DocumentFormatQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DocumentFormatQuery) Clone() *DocumentFormatQuery {
	if _q == nil {
		return nil
	}
	return &DocumentFormatQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]documentformat.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.DocumentFormat{}, _q.predicates...),
		withOrganization:   _q.withOrganization.Clone(),
		withTerms:          _q.withTerms.Clone(),
		withMappingConfigs: _q.withMappingConfigs.Clone(),
		withPromptConfigs:  _q.withPromptConfigs.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithOrganization tells the query-builder to eager-load the nodes that are connected to
// the "organization" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DocumentFormatQuery) WithOrganization(opts ...func(*OrganizationQuery)) *DocumentFormatQuery {
	query := (&OrganizationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOrganization = query
	return _q
}

// WithTerms tells the query-builder to eager-load the nodes that are connected to
// the "terms" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DocumentFormatQuery) WithTerms(opts ...func(*VocabularyTermQuery)) *DocumentFormatQuery {
	query := (&VocabularyTermClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTerms = query
	return _q
}

// WithMappingConfigs tells the query-builder to eager-load the nodes that are connected to
// the "mapping_configs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DocumentFormatQuery) WithMappingConfigs(opts ...func(*FieldMappingConfigQuery)) *DocumentFormatQuery {
	query := (&FieldMappingConfigClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMappingConfigs = query
	return _q
}

// WithPromptConfigs tells the query-builder to eager-load the nodes that are connected to
// the "prompt_configs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DocumentFormatQuery) WithPromptConfigs(opts ...func(*PromptConfigQuery)) *DocumentFormatQuery {
	query := (&PromptConfigClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPromptConfigs = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		OrganizationID uuid.UUID `json:"organization_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DocumentFormat.Query().
//		GroupBy(documentformat.FieldOrganizationID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DocumentFormatQuery) GroupBy(field string, fields ...string) *DocumentFormatGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DocumentFormatGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = documentformat.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		OrganizationID uuid.UUID `json:"organization_id,omitempty"`
//	}
//
//	client.DocumentFormat.Query().
//		Select(documentformat.FieldOrganizationID).
//		Scan(ctx, &v)
func (_q *DocumentFormatQuery) Select(fields ...string) *DocumentFormatSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DocumentFormatSelect{DocumentFormatQuery: _q}
	sbuild.label = documentformat.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DocumentFormatSelect configured with the given aggregations.
func (_q *DocumentFormatQuery) Aggregate(fns ...AggregateFunc) *DocumentFormatSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DocumentFormatQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !documentformat.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *DocumentFormatQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DocumentFormat, error) {
	var (
		nodes       = []*DocumentFormat{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withOrganization != nil,
			_q.withTerms != nil,
			_q.withMappingConfigs != nil,
			_q.withPromptConfigs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DocumentFormat).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DocumentFormat{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withOrganization; query != nil {
		if err := _q.loadOrganization(ctx, query, nodes, nil,
			func(n *DocumentFormat, e *Organization) { n.Edges.Organization = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTerms; query != nil {
		if err := _q.loadTerms(ctx, query, nodes,
			func(n *DocumentFormat) { n.Edges.Terms = []*VocabularyTerm{} },
			func(n *DocumentFormat, e *VocabularyTerm) { n.Edges.Terms = append(n.Edges.Terms, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMappingConfigs; query != nil {
		if err := _q.loadMappingConfigs(ctx, query, nodes,
			func(n *DocumentFormat) { n.Edges.MappingConfigs = []*FieldMappingConfig{} },
			func(n *DocumentFormat, e *FieldMappingConfig) {
				n.Edges.MappingConfigs = append(n.Edges.MappingConfigs, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withPromptConfigs; query != nil {
		if err := _q.loadPromptConfigs(ctx, query, nodes,
			func(n *DocumentFormat) { n.Edges.PromptConfigs = []*PromptConfig{} },
			func(n *DocumentFormat, e *PromptConfig) { n.Edges.PromptConfigs = append(n.Edges.PromptConfigs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DocumentFormatQuery) loadOrganization(ctx context.Context, query *OrganizationQuery, nodes []*DocumentFormat, init func(*DocumentFormat), assign func(*DocumentFormat, *Organization)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*DocumentFormat)
	for i := range nodes {
		fk := nodes[i].OrganizationID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(organization.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "organization_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *DocumentFormatQuery) loadTerms(ctx context.Context, query *VocabularyTermQuery, nodes []*DocumentFormat, init func(*DocumentFormat), assign func(*DocumentFormat, *VocabularyTerm)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*DocumentFormat)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(vocabularyterm.FieldFormatID)
	}
	query.Where(predicate.VocabularyTerm(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(documentformat.TermsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FormatID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "format_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DocumentFormatQuery) loadMappingConfigs(ctx context.Context, query *FieldMappingConfigQuery, nodes []*DocumentFormat, init func(*DocumentFormat), assign func(*DocumentFormat, *FieldMappingConfig)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*DocumentFormat)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(fieldmappingconfig.FieldFormatID)
	}
	query.Where(predicate.FieldMappingConfig(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(documentformat.MappingConfigsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FormatID
		if fk == nil {
			return fmt.Errorf(`foreign-key "format_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "format_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DocumentFormatQuery) loadPromptConfigs(ctx context.Context, query *PromptConfigQuery, nodes []*DocumentFormat, init func(*DocumentFormat), assign func(*DocumentFormat, *PromptConfig)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*DocumentFormat)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(promptconfig.FieldFormatID)
	}
	query.Where(predicate.PromptConfig(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(documentformat.PromptConfigsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FormatID
		if fk == nil {
			return fmt.Errorf(`foreign-key "format_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "format_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DocumentFormatQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DocumentFormatQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(documentformat.Table, documentformat.Columns, sqlgraph.NewFieldSpec(documentformat.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentformat.FieldID)
		for i := range fields {
			if fields[i] != documentformat.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withOrganization != nil {
			_spec.Node.AddColumnOnce(documentformat.FieldOrganizationID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *DocumentFormatQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(documentformat.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = documentformat.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DocumentFormatGroupBy is the group-by builder for DocumentFormat entities.
type DocumentFormatGroupBy struct {
	selector
	build *DocumentFormatQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DocumentFormatGroupBy) Aggregate(fns ...AggregateFunc) *DocumentFormatGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DocumentFormatGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DocumentFormatQuery, *DocumentFormatGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DocumentFormatGroupBy) sqlScan(ctx context.Context, root *DocumentFormatQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DocumentFormatSelect is the builder for selecting fields of DocumentFormat entities.
type DocumentFormatSelect struct {
	*DocumentFormatQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DocumentFormatSelect) Aggregate(fns ...AggregateFunc) *DocumentFormatSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DocumentFormatSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DocumentFormatQuery, *DocumentFormatSelect](ctx, _s.DocumentFormatQuery, _s, _s.inters, v)
}

func (_s *DocumentFormatSelect) sqlScan(ctx context.Context, root *DocumentFormatQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
