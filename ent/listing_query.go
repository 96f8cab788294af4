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
	"github.com/CyrilCartoux/watch-pros-sub004/ent/conversation"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/favorite"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/listing"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/listingview"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/model"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/offer"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/predicate"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/user"
	"github.com/google/uuid"
)

// ListingQuery is the builder for querying Listing entities.
type ListingQuery struct {
	config
	ctx               *QueryContext
	order             []listing.OrderOption
	inters            []Interceptor
	predicates        []predicate.Listing
	withSeller        *UserQuery
	withBrand         *BrandQuery
	withModel         *ModelQuery
	withViews         *ListingViewQuery
	withOffers        *OfferQuery
	withConversations *ConversationQuery
	withFavorites     *FavoriteQuery
	withFKs           bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ListingQuery builder.
func (_q *ListingQuery) Where(ps ...predicate.Listing) *ListingQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ListingQuery) Limit(limit int) *ListingQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ListingQuery) Offset(offset int) *ListingQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ListingQuery) Unique(unique bool) *ListingQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ListingQuery) Order(o ...listing.OrderOption) *ListingQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySeller chains the current query on the "seller" edge.
func (_q *ListingQuery) QuerySeller() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(listing.Table, listing.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, listing.SellerTable, listing.SellerColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBrand chains the current query on the "brand" edge.
func (_q *ListingQuery) QueryBrand() *BrandQuery {
	query := (&BrandClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(listing.Table, listing.FieldID, selector),
			sqlgraph.To(brand.Table, brand.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, listing.BrandTable, listing.BrandColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryModel chains the current query on the "model" edge.
func (_q *ListingQuery) QueryModel() *ModelQuery {
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
			sqlgraph.From(listing.Table, listing.FieldID, selector),
			sqlgraph.To(model.Table, model.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, listing.ModelTable, listing.ModelColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryViews chains the current query on the "views" edge.
func (_q *ListingQuery) QueryViews() *ListingViewQuery {
	query := (&ListingViewClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(listing.Table, listing.FieldID, selector),
			sqlgraph.To(listingview.Table, listingview.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, listing.ViewsTable, listing.ViewsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOffers chains the current query on the "offers" edge.
func (_q *ListingQuery) QueryOffers() *OfferQuery {
	query := (&OfferClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(listing.Table, listing.FieldID, selector),
			sqlgraph.To(offer.Table, offer.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, listing.OffersTable, listing.OffersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryConversations chains the current query on the "conversations" edge.
func (_q *ListingQuery) QueryConversations() *ConversationQuery {
	query := (&ConversationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(listing.Table, listing.FieldID, selector),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, listing.ConversationsTable, listing.ConversationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFavorites chains the current query on the "favorites" edge.
func (_q *ListingQuery) QueryFavorites() *FavoriteQuery {
	query := (&FavoriteClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(listing.Table, listing.FieldID, selector),
			sqlgraph.To(favorite.Table, favorite.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, listing.FavoritesTable, listing.FavoritesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Listing entity from the query.
// Returns a *NotFoundError when no Listing was found.
func (_q *ListingQuery) First(ctx context.Context) (*Listing, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{listing.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ListingQuery) FirstX(ctx context.Context) *Listing {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Listing ID from the query.
// Returns a *NotFoundError when no Listing ID was found.
func (_q *ListingQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{listing.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ListingQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Listing entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Listing entity is found.
// Returns a *NotFoundError when no Listing entities are found.
func (_q *ListingQuery) Only(ctx context.Context) (*Listing, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{listing.Label}
	default:
		return nil, &NotSingularError{listing.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ListingQuery) OnlyX(ctx context.Context) *Listing {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Listing ID in the query.
// Returns a *NotSingularError when more than one Listing ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ListingQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{listing.Label}
	default:
		err = &NotSingularError{listing.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ListingQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Listings.
func (_q *ListingQuery) All(ctx context.Context) ([]*Listing, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Listing, *ListingQuery]()
	return withInterceptors[[]*Listing](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ListingQuery) AllX(ctx context.Context) []*Listing {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Listing IDs.
func (_q *ListingQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(listing.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ListingQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ListingQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ListingQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ListingQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ListingQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ListingQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ListingQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ListingQuery) Clone() *ListingQuery {
	if _q == nil {
		return nil
	}
	return &ListingQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]listing.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.Listing{}, _q.predicates...),
		withSeller:        _q.withSeller.Clone(),
		withBrand:         _q.withBrand.Clone(),
		withModel:         _q.withModel.Clone(),
		withViews:         _q.withViews.Clone(),
		withOffers:        _q.withOffers.Clone(),
		withConversations: _q.withConversations.Clone(),
		withFavorites:     _q.withFavorites.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSeller tells the query-builder to eager-load the nodes that are connected to
// the "seller" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ListingQuery) WithSeller(opts ...func(*UserQuery)) *ListingQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSeller = query
	return _q
}

// WithBrand tells the query-builder to eager-load the nodes that are connected to
// the "brand" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ListingQuery) WithBrand(opts ...func(*BrandQuery)) *ListingQuery {
	query := (&BrandClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBrand = query
	return _q
}

// WithModel tells the query-builder to eager-load the nodes that are connected to
// the "model" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ListingQuery) WithModel(opts ...func(*ModelQuery)) *ListingQuery {
	query := (&ModelClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withModel = query
	return _q
}

// WithViews tells the query-builder to eager-load the nodes that are connected to
// the "views" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ListingQuery) WithViews(opts ...func(*ListingViewQuery)) *ListingQuery {
	query := (&ListingViewClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withViews = query
	return _q
}

// WithOffers tells the query-builder to eager-load the nodes that are connected to
// the "offers" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ListingQuery) WithOffers(opts ...func(*OfferQuery)) *ListingQuery {
	query := (&OfferClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOffers = query
	return _q
}

// WithConversations tells the query-builder to eager-load the nodes that are connected to
// the "conversations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ListingQuery) WithConversations(opts ...func(*ConversationQuery)) *ListingQuery {
	query := (&ConversationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withConversations = query
	return _q
}

// WithFavorites tells the query-builder to eager-load the nodes that are connected to
// the "favorites" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ListingQuery) WithFavorites(opts ...func(*FavoriteQuery)) *ListingQuery {
	query := (&FavoriteClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFavorites = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Title string `json:"title,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Listing.Query().
//		GroupBy(listing.FieldTitle).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ListingQuery) GroupBy(field string, fields ...string) *ListingGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ListingGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = listing.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Title string `json:"title,omitempty"`
//	}
//
//	client.Listing.Query().
//		Select(listing.FieldTitle).
//		Scan(ctx, &v)
func (_q *ListingQuery) Select(fields ...string) *ListingSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ListingSelect{ListingQuery: _q}
	sbuild.label = listing.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ListingSelect configured with the given aggregations.
func (_q *ListingQuery) Aggregate(fns ...AggregateFunc) *ListingSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ListingQuery) prepareQuery(ctx context.Context) error {
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
		if !listing.ValidColumn(f) {
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

func (_q *ListingQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Listing, error) {
	var (
		nodes       = []*Listing{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [7]bool{
			_q.withSeller != nil,
			_q.withBrand != nil,
			_q.withModel != nil,
			_q.withViews != nil,
			_q.withOffers != nil,
			_q.withConversations != nil,
			_q.withFavorites != nil,
		}
	)
	if _q.withSeller != nil || _q.withBrand != nil || _q.withModel != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, listing.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Listing).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Listing{config: _q.config}
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
	if query := _q.withSeller; query != nil {
		if err := _q.loadSeller(ctx, query, nodes, nil,
			func(n *Listing, e *User) { n.Edges.Seller = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBrand; query != nil {
		if err := _q.loadBrand(ctx, query, nodes, nil,
			func(n *Listing, e *Brand) { n.Edges.Brand = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withModel; query != nil {
		if err := _q.loadModel(ctx, query, nodes, nil,
			func(n *Listing, e *Model) { n.Edges.Model = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withViews; query != nil {
		if err := _q.loadViews(ctx, query, nodes,
			func(n *Listing) { n.Edges.Views = []*ListingView{} },
			func(n *Listing, e *ListingView) { n.Edges.Views = append(n.Edges.Views, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOffers; query != nil {
		if err := _q.loadOffers(ctx, query, nodes,
			func(n *Listing) { n.Edges.Offers = []*Offer{} },
			func(n *Listing, e *Offer) { n.Edges.Offers = append(n.Edges.Offers, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withConversations; query != nil {
		if err := _q.loadConversations(ctx, query, nodes,
			func(n *Listing) { n.Edges.Conversations = []*Conversation{} },
			func(n *Listing, e *Conversation) { n.Edges.Conversations = append(n.Edges.Conversations, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFavorites; query != nil {
		if err := _q.loadFavorites(ctx, query, nodes,
			func(n *Listing) { n.Edges.Favorites = []*Favorite{} },
			func(n *Listing, e *Favorite) { n.Edges.Favorites = append(n.Edges.Favorites, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ListingQuery) loadSeller(ctx context.Context, query *UserQuery, nodes []*Listing, init func(*Listing), assign func(*Listing, *User)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Listing)
	for i := range nodes {
		if nodes[i].user_listings == nil {
			continue
		}
		fk := *nodes[i].user_listings
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_listings" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ListingQuery) loadBrand(ctx context.Context, query *BrandQuery, nodes []*Listing, init func(*Listing), assign func(*Listing, *Brand)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Listing)
	for i := range nodes {
		if nodes[i].brand_listings == nil {
			continue
		}
		fk := *nodes[i].brand_listings
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(brand.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "brand_listings" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ListingQuery) loadModel(ctx context.Context, query *ModelQuery, nodes []*Listing, init func(*Listing), assign func(*Listing, *Model)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Listing)
	for i := range nodes {
		if nodes[i].model_listings == nil {
			continue
		}
		fk := *nodes[i].model_listings
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(model.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "model_listings" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ListingQuery) loadViews(ctx context.Context, query *ListingViewQuery, nodes []*Listing, init func(*Listing), assign func(*Listing, *ListingView)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Listing)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.ListingView(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(listing.ViewsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.listing_views
		if fk == nil {
			return fmt.Errorf(`foreign-key "listing_views" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "listing_views" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ListingQuery) loadOffers(ctx context.Context, query *OfferQuery, nodes []*Listing, init func(*Listing), assign func(*Listing, *Offer)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Listing)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.Offer(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(listing.OffersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.listing_offers
		if fk == nil {
			return fmt.Errorf(`foreign-key "listing_offers" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "listing_offers" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ListingQuery) loadConversations(ctx context.Context, query *ConversationQuery, nodes []*Listing, init func(*Listing), assign func(*Listing, *Conversation)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Listing)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.Conversation(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(listing.ConversationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.listing_conversations
		if fk == nil {
			return fmt.Errorf(`foreign-key "listing_conversations" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "listing_conversations" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ListingQuery) loadFavorites(ctx context.Context, query *FavoriteQuery, nodes []*Listing, init func(*Listing), assign func(*Listing, *Favorite)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Listing)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.Favorite(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(listing.FavoritesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.listing_favorites
		if fk == nil {
			return fmt.Errorf(`foreign-key "listing_favorites" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "listing_favorites" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ListingQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ListingQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(listing.Table, listing.Columns, sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, listing.FieldID)
		for i := range fields {
			if fields[i] != listing.FieldID {
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

func (_q *ListingQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(listing.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = listing.Columns
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

// ListingGroupBy is the group-by builder for Listing entities.
type ListingGroupBy struct {
	selector
	build *ListingQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ListingGroupBy) Aggregate(fns ...AggregateFunc) *ListingGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ListingGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ListingQuery, *ListingGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ListingGroupBy) sqlScan(ctx context.Context, root *ListingQuery, v any) error {
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

// ListingSelect is the builder for selecting fields of Listing entities.
type ListingSelect struct {
	*ListingQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ListingSelect) Aggregate(fns ...AggregateFunc) *ListingSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ListingSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ListingQuery, *ListingSelect](ctx, _s.ListingQuery, _s, _s.inters, v)
}

func (_s *ListingSelect) sqlScan(ctx context.Context, root *ListingQuery, v any) error {
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
