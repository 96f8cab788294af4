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
	"github.com/CyrilCartoux/watch-pros-sub004/ent/brand"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/listing"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/model"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/predicate"
	"github.com/google/uuid"
)

// BrandQuery is the builder for querying Brand entities.
type BrandQuery struct {
	config
	ctx          *QueryContext
	order        []brand.OrderOption
	inters       []Interceptor
	predicates   []predicate.Brand
	withModels   *ModelQuery
	withListings *ListingQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BrandQuery builder.
func (_q *BrandQuery) Where(ps ...predicate.Brand) *BrandQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BrandQuery) Limit(limit int) *BrandQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BrandQuery) Offset(offset int) *BrandQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BrandQuery) Unique(unique bool) *BrandQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BrandQuery) Order(o ...brand.OrderOption) *BrandQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryModels chains the current query on the "models" edge.
func (_q *BrandQuery) QueryModels() *ModelQuery {
	query := (&ModelClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(brand.Table, brand.FieldID, selector),
			sqlgraph.To(model.Table, model.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, brand.ModelsTable, brand.ModelsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryListings chains the current query on the "listings" edge.
func (_q *BrandQuery) QueryListings() *ListingQuery {
	query := (&ListingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(brand.Table, brand.FieldID, selector),
			sqlgraph.To(listing.Table, listing.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, brand.ListingsTable, brand.ListingsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Brand entity from the query.
// Returns a *NotFoundError when no Brand was found.
func (_q *BrandQuery) First(ctx context.Context) (*Brand, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{brand.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BrandQuery) FirstX(ctx context.Context) *Brand {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Brand ID from the query.
// Returns a *NotFoundError when no Brand ID was found.
func (_q *BrandQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{brand.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BrandQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Brand entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Brand entity is found.
// Returns a *NotFoundError when no Brand entities are found.
func (_q *BrandQuery) Only(ctx context.Context) (*Brand, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{brand.Label}
	default:
		return nil, &NotSingularError{brand.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BrandQuery) OnlyX(ctx context.Context) *Brand {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Brand ID in the query.
// Returns a *NotSingularError when more than one Brand ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BrandQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{brand.Label}
	default:
		err = &NotSingularError{brand.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BrandQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Brands.
func (_q *BrandQuery) All(ctx context.Context) ([]*Brand, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Brand, *BrandQuery]()
	return withInterceptors[[]*Brand](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BrandQuery) AllX(ctx context.Context) []*Brand {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Brand IDs.
func (_q *BrandQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(brand.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BrandQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BrandQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BrandQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BrandQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BrandQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *BrandQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BrandQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BrandQuery) Clone() *BrandQuery {
	if _q == nil {
		return nil
	}
	return &BrandQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]brand.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.Brand{}, _q.predicates...),
		withModels:   _q.withModels.Clone(),
		withListings: _q.withListings.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithModels tells the query-builder to eager-load the nodes that are connected to
// the "models" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BrandQuery) WithModels(opts ...func(*ModelQuery)) *BrandQuery {
	query := (&ModelClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withModels = query
	return _q
}

// WithListings tells the query-builder to eager-load the nodes that are connected to
// the "listings" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BrandQuery) WithListings(opts ...func(*ListingQuery)) *BrandQuery {
	query := (&ListingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withListings = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Brand.Query().
//		GroupBy(brand.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *BrandQuery) GroupBy(field string, fields ...string) *BrandGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BrandGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = brand.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Brand.Query().
//		Select(brand.FieldName).
//		Scan(ctx, &v)
func (_q *BrandQuery) Select(fields ...string) *BrandSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BrandSelect{BrandQuery: _q}
	sbuild.label = brand.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BrandSelect configured with the given aggregations.
func (_q *BrandQuery) Aggregate(fns ...AggregateFunc) *BrandSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BrandQuery) prepareQuery(ctx context.Context) error {
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
		if !brand.ValidColumn(f) {
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

func (_q *BrandQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Brand, error) {
	var (
		nodes       = []*Brand{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withModels != nil,
			_q.withListings != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Brand).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Brand{config: _q.config}
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
	if query := _q.withModels; query != nil {
		if err := _q.loadModels(ctx, query, nodes,
			func(n *Brand) { n.Edges.Models = []*Model{} },
			func(n *Brand, e *Model) { n.Edges.Models = append(n.Edges.Models, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withListings; query != nil {
		if err := _q.loadListings(ctx, query, nodes,
			func(n *Brand) { n.Edges.Listings = []*Listing{} },
			func(n *Brand, e *Listing) { n.Edges.Listings = append(n.Edges.Listings, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BrandQuery) loadModels(ctx context.Context, query *ModelQuery, nodes []*Brand, init func(*Brand), assign func(*Brand, *Model)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Brand)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.Model(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(brand.ModelsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.brand_models
		if fk == nil {
			return fmt.Errorf(`foreign-key "brand_models" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "brand_models" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *BrandQuery) loadListings(ctx context.Context, query *ListingQuery, nodes []*Brand, init func(*Brand), assign func(*Brand, *Listing)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Brand)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.Listing(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(brand.ListingsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.brand_listings
		if fk == nil {
			return fmt.Errorf(`foreign-key "brand_listings" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "brand_listings" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *BrandQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BrandQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(brand.Table, brand.Columns, sqlgraph.NewFieldSpec(brand.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, brand.FieldID)
		for i := range fields {
			if fields[i] != brand.FieldID {
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

func (_q *BrandQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(brand.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = brand.Columns
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

// BrandGroupBy is the group-by builder for Brand entities.
type BrandGroupBy struct {
	selector
	build *BrandQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BrandGroupBy) Aggregate(fns ...AggregateFunc) *BrandGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BrandGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BrandQuery, *BrandGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BrandGroupBy) sqlScan(ctx context.Context, root *BrandQuery, v any) error {
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

// BrandSelect is the builder for selecting fields of Brand entities.
type BrandSelect struct {
	*BrandQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BrandSelect) Aggregate(fns ...AggregateFunc) *BrandSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BrandSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BrandQuery, *BrandSelect](ctx, _s.BrandQuery, _s, _s.inters, v)
}

func (_s *BrandSelect) sqlScan(ctx context.Context, root *BrandQuery, v any) error {
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
