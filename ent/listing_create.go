// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/brand"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/conversation"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/favorite"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/listing"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/listingview"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/model"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/offer"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/user"
	"github.com/google/uuid"
)

// ListingCreate is the builder for creating a Listing entity.
type ListingCreate struct {
	config
	mutation *ListingMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *ListingCreate) SetTitle(v string) *ListingCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ListingCreate) SetDescription(v string) *ListingCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ListingCreate) SetNillableDescription(v *string) *ListingCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPriceCents sets the "price_cents" field.
func (_c *ListingCreate) SetPriceCents(v int64) *ListingCreate {
	_c.mutation.SetPriceCents(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *ListingCreate) SetCurrency(v string) *ListingCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *ListingCreate) SetNillableCurrency(v *string) *ListingCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetCondition sets the "condition" field.
func (_c *ListingCreate) SetCondition(v listing.Condition) *ListingCreate {
	_c.mutation.SetCondition(v)
	return _c
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (_c *ListingCreate) SetNillableCondition(v *listing.Condition) *ListingCreate {
	if v != nil {
		_c.SetCondition(*v)
	}
	return _c
}

// SetYear sets the "year" field.
func (_c *ListingCreate) SetYear(v int) *ListingCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_c *ListingCreate) SetNillableYear(v *int) *ListingCreate {
	if v != nil {
		_c.SetYear(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ListingCreate) SetStatus(v listing.Status) *ListingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ListingCreate) SetNillableStatus(v *listing.Status) *ListingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetViewsCount sets the "views_count" field.
func (_c *ListingCreate) SetViewsCount(v int64) *ListingCreate {
	_c.mutation.SetViewsCount(v)
	return _c
}

// SetNillableViewsCount sets the "views_count" field if the given value is not nil.
func (_c *ListingCreate) SetNillableViewsCount(v *int64) *ListingCreate {
	if v != nil {
		_c.SetViewsCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ListingCreate) SetCreatedAt(v time.Time) *ListingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ListingCreate) SetNillableCreatedAt(v *time.Time) *ListingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ListingCreate) SetUpdatedAt(v time.Time) *ListingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ListingCreate) SetNillableUpdatedAt(v *time.Time) *ListingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ListingCreate) SetID(v uuid.UUID) *ListingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ListingCreate) SetNillableID(v *uuid.UUID) *ListingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSellerID sets the "seller" edge to the User entity by ID.
func (_c *ListingCreate) SetSellerID(id uuid.UUID) *ListingCreate {
	_c.mutation.SetSellerID(id)
	return _c
}

// SetSeller sets the "seller" edge to the User entity.
func (_c *ListingCreate) SetSeller(v *User) *ListingCreate {
	return _c.SetSellerID(v.ID)
}

// SetBrandID sets the "brand" edge to the Brand entity by ID.
func (_c *ListingCreate) SetBrandID(id uuid.UUID) *ListingCreate {
	_c.mutation.SetBrandID(id)
	return _c
}

// SetBrand sets the "brand" edge to the Brand entity.
func (_c *ListingCreate) SetBrand(v *Brand) *ListingCreate {
	return _c.SetBrandID(v.ID)
}

// SetModelID sets the "model" edge to the Model entity by ID.
func (_c *ListingCreate) SetModelID(id uuid.UUID) *ListingCreate {
	_c.mutation.SetModelID(id)
	return _c
}

// SetNillableModelID sets the "model" edge to the Model entity by ID if the given value is not nil.
func (_c *ListingCreate) SetNillableModelID(id *uuid.UUID) *ListingCreate {
	if id != nil {
		_c = _c.SetModelID(*id)
	}
	return _c
}

// SetModel sets the "model" edge to the Model entity.
func (_c *ListingCreate) SetModel(v *Model) *ListingCreate {
	return _c.SetModelID(v.ID)
}

// AddViewIDs adds the "views" edge to the ListingView entity by IDs.
func (_c *ListingCreate) AddViewIDs(ids ...uuid.UUID) *ListingCreate {
	_c.mutation.AddViewIDs(ids...)
	return _c
}

// AddViews adds the "views" edges to the ListingView entity.
func (_c *ListingCreate) AddViews(v ...*ListingView) *ListingCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddViewIDs(ids...)
}

// AddOfferIDs adds the "offers" edge to the Offer entity by IDs.
func (_c *ListingCreate) AddOfferIDs(ids ...uuid.UUID) *ListingCreate {
	_c.mutation.AddOfferIDs(ids...)
	return _c
}

// AddOffers adds the "offers" edges to the Offer entity.
func (_c *ListingCreate) AddOffers(v ...*Offer) *ListingCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOfferIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_c *ListingCreate) AddConversationIDs(ids ...uuid.UUID) *ListingCreate {
	_c.mutation.AddConversationIDs(ids...)
	return _c
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_c *ListingCreate) AddConversations(v ...*Conversation) *ListingCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConversationIDs(ids...)
}

// AddFavoriteIDs adds the "favorites" edge to the Favorite entity by IDs.
func (_c *ListingCreate) AddFavoriteIDs(ids ...uuid.UUID) *ListingCreate {
	_c.mutation.AddFavoriteIDs(ids...)
	return _c
}

// AddFavorites adds the "favorites" edges to the Favorite entity.
func (_c *ListingCreate) AddFavorites(v ...*Favorite) *ListingCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFavoriteIDs(ids...)
}

// Mutation returns the ListingMutation object of the builder.
func (_c *ListingCreate) Mutation() *ListingMutation {
	return _c.mutation
}

// Save creates the Listing in the database.
func (_c *ListingCreate) Save(ctx context.Context) (*Listing, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ListingCreate) SaveX(ctx context.Context) *Listing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ListingCreate) defaults() {
	if _, ok := _c.mutation.Currency(); !ok {
		v := listing.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.Condition(); !ok {
		v := listing.DefaultCondition
		_c.mutation.SetCondition(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := listing.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ViewsCount(); !ok {
		v := listing.DefaultViewsCount
		_c.mutation.SetViewsCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := listing.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := listing.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := listing.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ListingCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Listing.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := listing.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Listing.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PriceCents(); !ok {
		return &ValidationError{Name: "price_cents", err: errors.New(`ent: missing required field "Listing.price_cents"`)}
	}
	if v, ok := _c.mutation.PriceCents(); ok {
		if err := listing.PriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "price_cents", err: fmt.Errorf(`ent: validator failed for field "Listing.price_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Listing.currency"`)}
	}
	if _, ok := _c.mutation.Condition(); !ok {
		return &ValidationError{Name: "condition", err: errors.New(`ent: missing required field "Listing.condition"`)}
	}
	if v, ok := _c.mutation.Condition(); ok {
		if err := listing.ConditionValidator(v); err != nil {
			return &ValidationError{Name: "condition", err: fmt.Errorf(`ent: validator failed for field "Listing.condition": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Listing.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := listing.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Listing.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ViewsCount(); !ok {
		return &ValidationError{Name: "views_count", err: errors.New(`ent: missing required field "Listing.views_count"`)}
	}
	if v, ok := _c.mutation.ViewsCount(); ok {
		if err := listing.ViewsCountValidator(v); err != nil {
			return &ValidationError{Name: "views_count", err: fmt.Errorf(`ent: validator failed for field "Listing.views_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Listing.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Listing.updated_at"`)}
	}
	if len(_c.mutation.SellerIDs()) == 0 {
		return &ValidationError{Name: "seller", err: errors.New(`ent: missing required edge "Listing.seller"`)}
	}
	if len(_c.mutation.BrandIDs()) == 0 {
		return &ValidationError{Name: "brand", err: errors.New(`ent: missing required edge "Listing.brand"`)}
	}
	return nil
}

func (_c *ListingCreate) sqlSave(ctx context.Context) (*Listing, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ListingCreate) createSpec() (*Listing, *sqlgraph.CreateSpec) {
	var (
		_node = &Listing{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(listing.Table, sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(listing.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(listing.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.PriceCents(); ok {
		_spec.SetField(listing.FieldPriceCents, field.TypeInt64, value)
		_node.PriceCents = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(listing.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.Condition(); ok {
		_spec.SetField(listing.FieldCondition, field.TypeEnum, value)
		_node.Condition = value
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(listing.FieldYear, field.TypeInt, value)
		_node.Year = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(listing.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ViewsCount(); ok {
		_spec.SetField(listing.FieldViewsCount, field.TypeInt64, value)
		_node.ViewsCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(listing.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(listing.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SellerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   listing.SellerTable,
			Columns: []string{listing.SellerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.user_listings = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BrandIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   listing.BrandTable,
			Columns: []string{listing.BrandColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(brand.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.brand_listings = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ModelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   listing.ModelTable,
			Columns: []string{listing.ModelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(model.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.model_listings = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ViewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   listing.ViewsTable,
			Columns: []string{listing.ViewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(listingview.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OffersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   listing.OffersTable,
			Columns: []string{listing.OffersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(offer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConversationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   listing.ConversationsTable,
			Columns: []string{listing.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FavoritesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   listing.FavoritesTable,
			Columns: []string{listing.FavoritesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(favorite.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ListingCreateBulk is the builder for creating many Listing entities in bulk.
type ListingCreateBulk struct {
	config
	err      error
	builders []*ListingCreate
}

// Save creates the Listing entities in the database.
func (_c *ListingCreateBulk) Save(ctx context.Context) ([]*Listing, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Listing, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ListingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ListingCreateBulk) SaveX(ctx context.Context) []*Listing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
