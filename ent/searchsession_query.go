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
	"github.com/bidiq/bidiq/ent/predicate"
	"github.com/bidiq/bidiq/ent/searchsession"
	"github.com/bidiq/bidiq/ent/searchstatetransition"
)

// SearchSessionQuery is the builder for querying SearchSession entities.
type SearchSessionQuery struct {
	config
	ctx             *QueryContext
	order           []searchsession.OrderOption
	inters          []Interceptor
	predicates      []predicate.SearchSession
	withTransitions *SearchStateTransitionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SearchSessionQuery builder.
func (_q *SearchSessionQuery) Where(ps ...predicate.SearchSession) *SearchSessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SearchSessionQuery) Limit(limit int) *SearchSessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SearchSessionQuery) Offset(offset int) *SearchSessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SearchSessionQuery) Unique(unique bool) *SearchSessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SearchSessionQuery) Order(o ...searchsession.OrderOption) *SearchSessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTransitions chains the current query on the "transitions" edge.
func (_q *SearchSessionQuery) QueryTransitions() *SearchStateTransitionQuery {
	query := (&SearchStateTransitionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(searchsession.Table, searchsession.FieldID, selector),
			sqlgraph.To(searchstatetransition.Table, searchstatetransition.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, searchsession.TransitionsTable, searchsession.TransitionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SearchSession entity from the query.
// Returns a *NotFoundError when no SearchSession was found.
func (_q *SearchSessionQuery) First(ctx context.Context) (*SearchSession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{searchsession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SearchSessionQuery) FirstX(ctx context.Context) *SearchSession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SearchSession ID from the query.
// Returns a *NotFoundError when no SearchSession ID was found.
func (_q *SearchSessionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{searchsession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SearchSessionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SearchSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SearchSession entity is found.
// Returns a *NotFoundError when no SearchSession entities are found.
func (_q *SearchSessionQuery) Only(ctx context.Context) (*SearchSession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{searchsession.Label}
	default:
		return nil, &NotSingularError{searchsession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SearchSessionQuery) OnlyX(ctx context.Context) *SearchSession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SearchSession ID in the query.
// Returns a *NotSingularError when more than one SearchSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SearchSessionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{searchsession.Label}
	default:
		err = &NotSingularError{searchsession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SearchSessionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SearchSessions.
func (_q *SearchSessionQuery) All(ctx context.Context) ([]*SearchSession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SearchSession, *SearchSessionQuery]()
	return withInterceptors[[]*SearchSession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SearchSessionQuery) AllX(ctx context.Context) []*SearchSession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SearchSession IDs.
func (_q *SearchSessionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(searchsession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SearchSessionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SearchSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SearchSessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SearchSessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SearchSessionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *SearchSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SearchSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SearchSessionQuery) Clone() *SearchSessionQuery {
	if _q == nil {
		return nil
	}
	return &SearchSessionQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]searchsession.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.SearchSession{}, _q.predicates...),
		withTransitions: _q.withTransitions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTransitions tells the query-builder to eager-load the nodes that are connected to
// the "transitions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SearchSessionQuery) WithTransitions(opts ...func(*SearchStateTransitionQuery)) *SearchSessionQuery {
	query := (&SearchStateTransitionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTransitions = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SearchSession.Query().
//		GroupBy(searchsession.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SearchSessionQuery) GroupBy(field string, fields ...string) *SearchSessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SearchSessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = searchsession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.SearchSession.Query().
//		Select(searchsession.FieldUserID).
//		Scan(ctx, &v)
func (_q *SearchSessionQuery) Select(fields ...string) *SearchSessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SearchSessionSelect{SearchSessionQuery: _q}
	sbuild.label = searchsession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SearchSessionSelect configured with the given aggregations.
func (_q *SearchSessionQuery) Aggregate(fns ...AggregateFunc) *SearchSessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SearchSessionQuery) prepareQuery(ctx context.Context) error {
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
		if !searchsession.ValidColumn(f) {
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

func (_q *SearchSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SearchSession, error) {
	var (
		nodes       = []*SearchSession{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withTransitions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SearchSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SearchSession{config: _q.config}
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
	if query := _q.withTransitions; query != nil {
		if err := _q.loadTransitions(ctx, query, nodes,
			func(n *SearchSession) { n.Edges.Transitions = []*SearchStateTransition{} },
			func(n *SearchSession, e *SearchStateTransition) { n.Edges.Transitions = append(n.Edges.Transitions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SearchSessionQuery) loadTransitions(ctx context.Context, query *SearchStateTransitionQuery, nodes []*SearchSession, init func(*SearchSession), assign func(*SearchSession, *SearchStateTransition)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*SearchSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(searchstatetransition.FieldSearchID)
	}
	query.Where(predicate.SearchStateTransition(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(searchsession.TransitionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SearchID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "search_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *SearchSessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SearchSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(searchsession.Table, searchsession.Columns, sqlgraph.NewFieldSpec(searchsession.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, searchsession.FieldID)
		for i := range fields {
			if fields[i] != searchsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *SearchSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(searchsession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = searchsession.Columns
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

// SearchSessionGroupBy is the group-by builder for SearchSession entities.
type SearchSessionGroupBy struct {
	selector
	build *SearchSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SearchSessionGroupBy) Aggregate(fns ...AggregateFunc) *SearchSessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SearchSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SearchSessionQuery, *SearchSessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SearchSessionGroupBy) sqlScan(ctx context.Context, root *SearchSessionQuery, v any) error {
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

// SearchSessionSelect is the builder for selecting fields of SearchSession entities.
type SearchSessionSelect struct {
	*SearchSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SearchSessionSelect) Aggregate(fns ...AggregateFunc) *SearchSessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SearchSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SearchSessionQuery, *SearchSessionSelect](ctx, _s.SearchSessionQuery, _s, _s.inters, v)
}

func (_s *SearchSessionSelect) sqlScan(ctx context.Context, root *SearchSessionQuery, v any) error {
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
