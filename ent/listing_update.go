// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

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

// ListingUpdate is the builder for updating Listing entities.
type ListingUpdate struct {
	config
	hooks    []Hook
	mutation *ListingMutation
}

// Where appends a list predicates to the ListingUpdate builder.
func (_u *ListingUpdate) Where(ps ...predicate.Listing) *ListingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ListingUpdate) SetTitle(v string) *ListingUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableTitle(v *string) *ListingUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ListingUpdate) SetDescription(v string) *ListingUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableDescription(v *string) *ListingUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ListingUpdate) ClearDescription() *ListingUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPriceCents sets the "price_cents" field.
func (_u *ListingUpdate) SetPriceCents(v int64) *ListingUpdate {
	_u.mutation.ResetPriceCents()
	_u.mutation.SetPriceCents(v)
	return _u
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_u *ListingUpdate) SetNillablePriceCents(v *int64) *ListingUpdate {
	if v != nil {
		_u.SetPriceCents(*v)
	}
	return _u
}

// AddPriceCents adds value to the "price_cents" field.
func (_u *ListingUpdate) AddPriceCents(v int64) *ListingUpdate {
	_u.mutation.AddPriceCents(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ListingUpdate) SetCurrency(v string) *ListingUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableCurrency(v *string) *ListingUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetCondition sets the "condition" field.
func (_u *ListingUpdate) SetCondition(v listing.Condition) *ListingUpdate {
	_u.mutation.SetCondition(v)
	return _u
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableCondition(v *listing.Condition) *ListingUpdate {
	if v != nil {
		_u.SetCondition(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *ListingUpdate) SetYear(v int) *ListingUpdate {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableYear(v *int) *ListingUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *ListingUpdate) AddYear(v int) *ListingUpdate {
	_u.mutation.AddYear(v)
	return _u
}

// ClearYear clears the value of the "year" field.
func (_u *ListingUpdate) ClearYear() *ListingUpdate {
	_u.mutation.ClearYear()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ListingUpdate) SetStatus(v listing.Status) *ListingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableStatus(v *listing.Status) *ListingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetViewsCount sets the "views_count" field.
func (_u *ListingUpdate) SetViewsCount(v int64) *ListingUpdate {
	_u.mutation.ResetViewsCount()
	_u.mutation.SetViewsCount(v)
	return _u
}

// SetNillableViewsCount sets the "views_count" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableViewsCount(v *int64) *ListingUpdate {
	if v != nil {
		_u.SetViewsCount(*v)
	}
	return _u
}

// AddViewsCount adds value to the "views_count" field.
func (_u *ListingUpdate) AddViewsCount(v int64) *ListingUpdate {
	_u.mutation.AddViewsCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ListingUpdate) SetUpdatedAt(v time.Time) *ListingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSellerID sets the "seller" edge to the User entity by ID.
func (_u *ListingUpdate) SetSellerID(id uuid.UUID) *ListingUpdate {
	_u.mutation.SetSellerID(id)
	return _u
}

// SetSeller sets the "seller" edge to the User entity.
func (_u *ListingUpdate) SetSeller(v *User) *ListingUpdate {
	return _u.SetSellerID(v.ID)
}

// SetBrandID sets the "brand" edge to the Brand entity by ID.
func (_u *ListingUpdate) SetBrandID(id uuid.UUID) *ListingUpdate {
	_u.mutation.SetBrandID(id)
	return _u
}

// SetBrand sets the "brand" edge to the Brand entity.
func (_u *ListingUpdate) SetBrand(v *Brand) *ListingUpdate {
	return _u.SetBrandID(v.ID)
}

// SetModelID sets the "model" edge to the Model entity by ID.
func (_u *ListingUpdate) SetModelID(id uuid.UUID) *ListingUpdate {
	_u.mutation.SetModelID(id)
	return _u
}

// SetNillableModelID sets the "model" edge to the Model entity by ID if the given value is not nil.
func (_u *ListingUpdate) SetNillableModelID(id *uuid.UUID) *ListingUpdate {
	if id != nil {
		_u = _u.SetModelID(*id)
	}
	return _u
}

// SetModel sets the "model" edge to the Model entity.
func (_u *ListingUpdate) SetModel(v *Model) *ListingUpdate {
	return _u.SetModelID(v.ID)
}

// AddViewIDs adds the "views" edge to the ListingView entity by IDs.
func (_u *ListingUpdate) AddViewIDs(ids ...uuid.UUID) *ListingUpdate {
	_u.mutation.AddViewIDs(ids...)
	return _u
}

// AddViews adds the "views" edges to the ListingView entity.
func (_u *ListingUpdate) AddViews(v ...*ListingView) *ListingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddViewIDs(ids...)
}

// AddOfferIDs adds the "offers" edge to the Offer entity by IDs.
func (_u *ListingUpdate) AddOfferIDs(ids ...uuid.UUID) *ListingUpdate {
	_u.mutation.AddOfferIDs(ids...)
	return _u
}

// AddOffers adds the "offers" edges to the Offer entity.
func (_u *ListingUpdate) AddOffers(v ...*Offer) *ListingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOfferIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *ListingUpdate) AddConversationIDs(ids ...uuid.UUID) *ListingUpdate {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *ListingUpdate) AddConversations(v ...*Conversation) *ListingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// AddFavoriteIDs adds the "favorites" edge to the Favorite entity by IDs.
func (_u *ListingUpdate) AddFavoriteIDs(ids ...uuid.UUID) *ListingUpdate {
	_u.mutation.AddFavoriteIDs(ids...)
	return _u
}

// AddFavorites adds the "favorites" edges to the Favorite entity.
func (_u *ListingUpdate) AddFavorites(v ...*Favorite) *ListingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFavoriteIDs(ids...)
}

// Mutation returns the ListingMutation object of the builder.
func (_u *ListingUpdate) Mutation() *ListingMutation {
	return _u.mutation
}

// ClearSeller clears the "seller" edge to the User entity.
func (_u *ListingUpdate) ClearSeller() *ListingUpdate {
	_u.mutation.ClearSeller()
	return _u
}

// ClearBrand clears the "brand" edge to the Brand entity.
func (_u *ListingUpdate) ClearBrand() *ListingUpdate {
	_u.mutation.ClearBrand()
	return _u
}

// ClearModel clears the "model" edge to the Model entity.
func (_u *ListingUpdate) ClearModel() *ListingUpdate {
	_u.mutation.ClearModel()
	return _u
}

// ClearViews clears all "views" edges to the ListingView entity.
func (_u *ListingUpdate) ClearViews() *ListingUpdate {
	_u.mutation.ClearViews()
	return _u
}

// RemoveViewIDs removes the "views" edge to ListingView entities by IDs.
func (_u *ListingUpdate) RemoveViewIDs(ids ...uuid.UUID) *ListingUpdate {
	_u.mutation.RemoveViewIDs(ids...)
	return _u
}

// RemoveViews removes "views" edges to ListingView entities.
func (_u *ListingUpdate) RemoveViews(v ...*ListingView) *ListingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveViewIDs(ids...)
}

// ClearOffers clears all "offers" edges to the Offer entity.
func (_u *ListingUpdate) ClearOffers() *ListingUpdate {
	_u.mutation.ClearOffers()
	return _u
}

// RemoveOfferIDs removes the "offers" edge to Offer entities by IDs.
func (_u *ListingUpdate) RemoveOfferIDs(ids ...uuid.UUID) *ListingUpdate {
	_u.mutation.RemoveOfferIDs(ids...)
	return _u
}

// RemoveOffers removes "offers" edges to Offer entities.
func (_u *ListingUpdate) RemoveOffers(v ...*Offer) *ListingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOfferIDs(ids...)
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *ListingUpdate) ClearConversations() *ListingUpdate {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *ListingUpdate) RemoveConversationIDs(ids ...uuid.UUID) *ListingUpdate {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *ListingUpdate) RemoveConversations(v ...*Conversation) *ListingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// ClearFavorites clears all "favorites" edges to the Favorite entity.
func (_u *ListingUpdate) ClearFavorites() *ListingUpdate {
	_u.mutation.ClearFavorites()
	return _u
}

// RemoveFavoriteIDs removes the "favorites" edge to Favorite entities by IDs.
func (_u *ListingUpdate) RemoveFavoriteIDs(ids ...uuid.UUID) *ListingUpdate {
	_u.mutation.RemoveFavoriteIDs(ids...)
	return _u
}

// RemoveFavorites removes "favorites" edges to Favorite entities.
func (_u *ListingUpdate) RemoveFavorites(v ...*Favorite) *ListingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFavoriteIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ListingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ListingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ListingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := listing.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListingUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := listing.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Listing.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriceCents(); ok {
		if err := listing.PriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "price_cents", err: fmt.Errorf(`ent: validator failed for field "Listing.price_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Condition(); ok {
		if err := listing.ConditionValidator(v); err != nil {
			return &ValidationError{Name: "condition", err: fmt.Errorf(`ent: validator failed for field "Listing.condition": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := listing.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Listing.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ViewsCount(); ok {
		if err := listing.ViewsCountValidator(v); err != nil {
			return &ValidationError{Name: "views_count", err: fmt.Errorf(`ent: validator failed for field "Listing.views_count": %w`, err)}
		}
	}
	if _u.mutation.SellerCleared() && len(_u.mutation.SellerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Listing.seller"`)
	}
	if _u.mutation.BrandCleared() && len(_u.mutation.BrandIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Listing.brand"`)
	}
	return nil
}

func (_u *ListingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listing.Table, listing.Columns, sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(listing.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(listing.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(listing.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PriceCents(); ok {
		_spec.SetField(listing.FieldPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPriceCents(); ok {
		_spec.AddField(listing.FieldPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(listing.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Condition(); ok {
		_spec.SetField(listing.FieldCondition, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(listing.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(listing.FieldYear, field.TypeInt, value)
	}
	if _u.mutation.YearCleared() {
		_spec.ClearField(listing.FieldYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(listing.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ViewsCount(); ok {
		_spec.SetField(listing.FieldViewsCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedViewsCount(); ok {
		_spec.AddField(listing.FieldViewsCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(listing.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SellerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SellerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BrandCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BrandIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ModelCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ModelIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ViewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedViewsIDs(); len(nodes) > 0 && !_u.mutation.ViewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ViewsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OffersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOffersIDs(); len(nodes) > 0 && !_u.mutation.OffersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OffersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FavoritesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFavoritesIDs(); len(nodes) > 0 && !_u.mutation.FavoritesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FavoritesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ListingUpdateOne is the builder for updating a single Listing entity.
type ListingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ListingMutation
}

// SetTitle sets the "title" field.
func (_u *ListingUpdateOne) SetTitle(v string) *ListingUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableTitle(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ListingUpdateOne) SetDescription(v string) *ListingUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableDescription(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ListingUpdateOne) ClearDescription() *ListingUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPriceCents sets the "price_cents" field.
func (_u *ListingUpdateOne) SetPriceCents(v int64) *ListingUpdateOne {
	_u.mutation.ResetPriceCents()
	_u.mutation.SetPriceCents(v)
	return _u
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillablePriceCents(v *int64) *ListingUpdateOne {
	if v != nil {
		_u.SetPriceCents(*v)
	}
	return _u
}

// AddPriceCents adds value to the "price_cents" field.
func (_u *ListingUpdateOne) AddPriceCents(v int64) *ListingUpdateOne {
	_u.mutation.AddPriceCents(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ListingUpdateOne) SetCurrency(v string) *ListingUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableCurrency(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetCondition sets the "condition" field.
func (_u *ListingUpdateOne) SetCondition(v listing.Condition) *ListingUpdateOne {
	_u.mutation.SetCondition(v)
	return _u
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableCondition(v *listing.Condition) *ListingUpdateOne {
	if v != nil {
		_u.SetCondition(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *ListingUpdateOne) SetYear(v int) *ListingUpdateOne {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableYear(v *int) *ListingUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *ListingUpdateOne) AddYear(v int) *ListingUpdateOne {
	_u.mutation.AddYear(v)
	return _u
}

// ClearYear clears the value of the "year" field.
func (_u *ListingUpdateOne) ClearYear() *ListingUpdateOne {
	_u.mutation.ClearYear()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ListingUpdateOne) SetStatus(v listing.Status) *ListingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableStatus(v *listing.Status) *ListingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetViewsCount sets the "views_count" field.
func (_u *ListingUpdateOne) SetViewsCount(v int64) *ListingUpdateOne {
	_u.mutation.ResetViewsCount()
	_u.mutation.SetViewsCount(v)
	return _u
}

// SetNillableViewsCount sets the "views_count" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableViewsCount(v *int64) *ListingUpdateOne {
	if v != nil {
		_u.SetViewsCount(*v)
	}
	return _u
}

// AddViewsCount adds value to the "views_count" field.
func (_u *ListingUpdateOne) AddViewsCount(v int64) *ListingUpdateOne {
	_u.mutation.AddViewsCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ListingUpdateOne) SetUpdatedAt(v time.Time) *ListingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSellerID sets the "seller" edge to the User entity by ID.
func (_u *ListingUpdateOne) SetSellerID(id uuid.UUID) *ListingUpdateOne {
	_u.mutation.SetSellerID(id)
	return _u
}

// SetSeller sets the "seller" edge to the User entity.
func (_u *ListingUpdateOne) SetSeller(v *User) *ListingUpdateOne {
	return _u.SetSellerID(v.ID)
}

// SetBrandID sets the "brand" edge to the Brand entity by ID.
func (_u *ListingUpdateOne) SetBrandID(id uuid.UUID) *ListingUpdateOne {
	_u.mutation.SetBrandID(id)
	return _u
}

// SetBrand sets the "brand" edge to the Brand entity.
func (_u *ListingUpdateOne) SetBrand(v *Brand) *ListingUpdateOne {
	return _u.SetBrandID(v.ID)
}

// SetModelID sets the "model" edge to the Model entity by ID.
func (_u *ListingUpdateOne) SetModelID(id uuid.UUID) *ListingUpdateOne {
	_u.mutation.SetModelID(id)
	return _u
}

// SetNillableModelID sets the "model" edge to the Model entity by ID if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableModelID(id *uuid.UUID) *ListingUpdateOne {
	if id != nil {
		_u = _u.SetModelID(*id)
	}
	return _u
}

// SetModel sets the "model" edge to the Model entity.
func (_u *ListingUpdateOne) SetModel(v *Model) *ListingUpdateOne {
	return _u.SetModelID(v.ID)
}

// AddViewIDs adds the "views" edge to the ListingView entity by IDs.
func (_u *ListingUpdateOne) AddViewIDs(ids ...uuid.UUID) *ListingUpdateOne {
	_u.mutation.AddViewIDs(ids...)
	return _u
}

// AddViews adds the "views" edges to the ListingView entity.
func (_u *ListingUpdateOne) AddViews(v ...*ListingView) *ListingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddViewIDs(ids...)
}

// AddOfferIDs adds the "offers" edge to the Offer entity by IDs.
func (_u *ListingUpdateOne) AddOfferIDs(ids ...uuid.UUID) *ListingUpdateOne {
	_u.mutation.AddOfferIDs(ids...)
	return _u
}

// AddOffers adds the "offers" edges to the Offer entity.
func (_u *ListingUpdateOne) AddOffers(v ...*Offer) *ListingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOfferIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *ListingUpdateOne) AddConversationIDs(ids ...uuid.UUID) *ListingUpdateOne {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *ListingUpdateOne) AddConversations(v ...*Conversation) *ListingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// AddFavoriteIDs adds the "favorites" edge to the Favorite entity by IDs.
func (_u *ListingUpdateOne) AddFavoriteIDs(ids ...uuid.UUID) *ListingUpdateOne {
	_u.mutation.AddFavoriteIDs(ids...)
	return _u
}

// AddFavorites adds the "favorites" edges to the Favorite entity.
func (_u *ListingUpdateOne) AddFavorites(v ...*Favorite) *ListingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFavoriteIDs(ids...)
}

// Mutation returns the ListingMutation object of the builder.
func (_u *ListingUpdateOne) Mutation() *ListingMutation {
	return _u.mutation
}

// ClearSeller clears the "seller" edge to the User entity.
func (_u *ListingUpdateOne) ClearSeller() *ListingUpdateOne {
	_u.mutation.ClearSeller()
	return _u
}

// ClearBrand clears the "brand" edge to the Brand entity.
func (_u *ListingUpdateOne) ClearBrand() *ListingUpdateOne {
	_u.mutation.ClearBrand()
	return _u
}

// ClearModel clears the "model" edge to the Model entity.
func (_u *ListingUpdateOne) ClearModel() *ListingUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// ClearViews clears all "views" edges to the ListingView entity.
func (_u *ListingUpdateOne) ClearViews() *ListingUpdateOne {
	_u.mutation.ClearViews()
	return _u
}

// RemoveViewIDs removes the "views" edge to ListingView entities by IDs.
func (_u *ListingUpdateOne) RemoveViewIDs(ids ...uuid.UUID) *ListingUpdateOne {
	_u.mutation.RemoveViewIDs(ids...)
	return _u
}

// RemoveViews removes "views" edges to ListingView entities.
func (_u *ListingUpdateOne) RemoveViews(v ...*ListingView) *ListingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveViewIDs(ids...)
}

// ClearOffers clears all "offers" edges to the Offer entity.
func (_u *ListingUpdateOne) ClearOffers() *ListingUpdateOne {
	_u.mutation.ClearOffers()
	return _u
}

// RemoveOfferIDs removes the "offers" edge to Offer entities by IDs.
func (_u *ListingUpdateOne) RemoveOfferIDs(ids ...uuid.UUID) *ListingUpdateOne {
	_u.mutation.RemoveOfferIDs(ids...)
	return _u
}

// RemoveOffers removes "offers" edges to Offer entities.
func (_u *ListingUpdateOne) RemoveOffers(v ...*Offer) *ListingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOfferIDs(ids...)
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *ListingUpdateOne) ClearConversations() *ListingUpdateOne {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *ListingUpdateOne) RemoveConversationIDs(ids ...uuid.UUID) *ListingUpdateOne {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *ListingUpdateOne) RemoveConversations(v ...*Conversation) *ListingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// ClearFavorites clears all "favorites" edges to the Favorite entity.
func (_u *ListingUpdateOne) ClearFavorites() *ListingUpdateOne {
	_u.mutation.ClearFavorites()
	return _u
}

// RemoveFavoriteIDs removes the "favorites" edge to Favorite entities by IDs.
func (_u *ListingUpdateOne) RemoveFavoriteIDs(ids ...uuid.UUID) *ListingUpdateOne {
	_u.mutation.RemoveFavoriteIDs(ids...)
	return _u
}

// RemoveFavorites removes "favorites" edges to Favorite entities.
func (_u *ListingUpdateOne) RemoveFavorites(v ...*Favorite) *ListingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFavoriteIDs(ids...)
}

// Where appends a list predicates to the ListingUpdate builder.
func (_u *ListingUpdateOne) Where(ps ...predicate.Listing) *ListingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ListingUpdateOne) Select(field string, fields ...string) *ListingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Listing entity.
func (_u *ListingUpdateOne) Save(ctx context.Context) (*Listing, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListingUpdateOne) SaveX(ctx context.Context) *Listing {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ListingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ListingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := listing.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListingUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := listing.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Listing.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriceCents(); ok {
		if err := listing.PriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "price_cents", err: fmt.Errorf(`ent: validator failed for field "Listing.price_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Condition(); ok {
		if err := listing.ConditionValidator(v); err != nil {
			return &ValidationError{Name: "condition", err: fmt.Errorf(`ent: validator failed for field "Listing.condition": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := listing.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Listing.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ViewsCount(); ok {
		if err := listing.ViewsCountValidator(v); err != nil {
			return &ValidationError{Name: "views_count", err: fmt.Errorf(`ent: validator failed for field "Listing.views_count": %w`, err)}
		}
	}
	if _u.mutation.SellerCleared() && len(_u.mutation.SellerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Listing.seller"`)
	}
	if _u.mutation.BrandCleared() && len(_u.mutation.BrandIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Listing.brand"`)
	}
	return nil
}

func (_u *ListingUpdateOne) sqlSave(ctx context.Context) (_node *Listing, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listing.Table, listing.Columns, sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Listing.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, listing.FieldID)
		for _, f := range fields {
			if !listing.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != listing.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(listing.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(listing.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(listing.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PriceCents(); ok {
		_spec.SetField(listing.FieldPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPriceCents(); ok {
		_spec.AddField(listing.FieldPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(listing.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Condition(); ok {
		_spec.SetField(listing.FieldCondition, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(listing.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(listing.FieldYear, field.TypeInt, value)
	}
	if _u.mutation.YearCleared() {
		_spec.ClearField(listing.FieldYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(listing.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ViewsCount(); ok {
		_spec.SetField(listing.FieldViewsCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedViewsCount(); ok {
		_spec.AddField(listing.FieldViewsCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(listing.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SellerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SellerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BrandCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BrandIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ModelCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ModelIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ViewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedViewsIDs(); len(nodes) > 0 && !_u.mutation.ViewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ViewsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OffersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOffersIDs(); len(nodes) > 0 && !_u.mutation.OffersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OffersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FavoritesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFavoritesIDs(); len(nodes) > 0 && !_u.mutation.FavoritesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FavoritesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Listing{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
