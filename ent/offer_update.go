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
	"github.com/CyrilCartoux/watch-pros-sub004/ent/listing"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/offer"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/predicate"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/user"
	"github.com/google/uuid"
)

// OfferUpdate is the builder for updating Offer entities.
type OfferUpdate struct {
	config
	hooks    []Hook
	mutation *OfferMutation
}

// Where appends a list predicates to the OfferUpdate builder.
func (_u *OfferUpdate) Where(ps ...predicate.Offer) *OfferUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *OfferUpdate) SetAmountCents(v int64) *OfferUpdate {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableAmountCents(v *int64) *OfferUpdate {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *OfferUpdate) AddAmountCents(v int64) *OfferUpdate {
	_u.mutation.AddAmountCents(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *OfferUpdate) SetCurrency(v string) *OfferUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableCurrency(v *string) *OfferUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *OfferUpdate) SetMessage(v string) *OfferUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableMessage(v *string) *OfferUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *OfferUpdate) ClearMessage() *OfferUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetStatus sets the "status" field.
func (_u *OfferUpdate) SetStatus(v offer.Status) *OfferUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableStatus(v *offer.Status) *OfferUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OfferUpdate) SetUpdatedAt(v time.Time) *OfferUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetListingID sets the "listing" edge to the Listing entity by ID.
func (_u *OfferUpdate) SetListingID(id uuid.UUID) *OfferUpdate {
	_u.mutation.SetListingID(id)
	return _u
}

// SetListing sets the "listing" edge to the Listing entity.
func (_u *OfferUpdate) SetListing(v *Listing) *OfferUpdate {
	return _u.SetListingID(v.ID)
}

// SetBuyerID sets the "buyer" edge to the User entity by ID.
func (_u *OfferUpdate) SetBuyerID(id uuid.UUID) *OfferUpdate {
	_u.mutation.SetBuyerID(id)
	return _u
}

// SetBuyer sets the "buyer" edge to the User entity.
func (_u *OfferUpdate) SetBuyer(v *User) *OfferUpdate {
	return _u.SetBuyerID(v.ID)
}

// Mutation returns the OfferMutation object of the builder.
func (_u *OfferUpdate) Mutation() *OfferMutation {
	return _u.mutation
}

// ClearListing clears the "listing" edge to the Listing entity.
func (_u *OfferUpdate) ClearListing() *OfferUpdate {
	_u.mutation.ClearListing()
	return _u
}

// ClearBuyer clears the "buyer" edge to the User entity.
func (_u *OfferUpdate) ClearBuyer() *OfferUpdate {
	_u.mutation.ClearBuyer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OfferUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OfferUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OfferUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OfferUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OfferUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := offer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OfferUpdate) check() error {
	if v, ok := _u.mutation.AmountCents(); ok {
		if err := offer.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`ent: validator failed for field "Offer.amount_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := offer.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Offer.status": %w`, err)}
		}
	}
	if _u.mutation.ListingCleared() && len(_u.mutation.ListingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Offer.listing"`)
	}
	if _u.mutation.BuyerCleared() && len(_u.mutation.BuyerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Offer.buyer"`)
	}
	return nil
}

func (_u *OfferUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(offer.Table, offer.Columns, sqlgraph.NewFieldSpec(offer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(offer.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(offer.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(offer.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(offer.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(offer.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(offer.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(offer.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ListingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   offer.ListingTable,
			Columns: []string{offer.ListingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ListingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   offer.ListingTable,
			Columns: []string{offer.ListingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BuyerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   offer.BuyerTable,
			Columns: []string{offer.BuyerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BuyerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   offer.BuyerTable,
			Columns: []string{offer.BuyerColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{offer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OfferUpdateOne is the builder for updating a single Offer entity.
type OfferUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OfferMutation
}

// SetAmountCents sets the "amount_cents" field.
func (_u *OfferUpdateOne) SetAmountCents(v int64) *OfferUpdateOne {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableAmountCents(v *int64) *OfferUpdateOne {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *OfferUpdateOne) AddAmountCents(v int64) *OfferUpdateOne {
	_u.mutation.AddAmountCents(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *OfferUpdateOne) SetCurrency(v string) *OfferUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableCurrency(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *OfferUpdateOne) SetMessage(v string) *OfferUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableMessage(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *OfferUpdateOne) ClearMessage() *OfferUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetStatus sets the "status" field.
func (_u *OfferUpdateOne) SetStatus(v offer.Status) *OfferUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableStatus(v *offer.Status) *OfferUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OfferUpdateOne) SetUpdatedAt(v time.Time) *OfferUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetListingID sets the "listing" edge to the Listing entity by ID.
func (_u *OfferUpdateOne) SetListingID(id uuid.UUID) *OfferUpdateOne {
	_u.mutation.SetListingID(id)
	return _u
}

// SetListing sets the "listing" edge to the Listing entity.
func (_u *OfferUpdateOne) SetListing(v *Listing) *OfferUpdateOne {
	return _u.SetListingID(v.ID)
}

// SetBuyerID sets the "buyer" edge to the User entity by ID.
func (_u *OfferUpdateOne) SetBuyerID(id uuid.UUID) *OfferUpdateOne {
	_u.mutation.SetBuyerID(id)
	return _u
}

// SetBuyer sets the "buyer" edge to the User entity.
func (_u *OfferUpdateOne) SetBuyer(v *User) *OfferUpdateOne {
	return _u.SetBuyerID(v.ID)
}

// Mutation returns the OfferMutation object of the builder.
func (_u *OfferUpdateOne) Mutation() *OfferMutation {
	return _u.mutation
}

// ClearListing clears the "listing" edge to the Listing entity.
func (_u *OfferUpdateOne) ClearListing() *OfferUpdateOne {
	_u.mutation.ClearListing()
	return _u
}

// ClearBuyer clears the "buyer" edge to the User entity.
func (_u *OfferUpdateOne) ClearBuyer() *OfferUpdateOne {
	_u.mutation.ClearBuyer()
	return _u
}

// Where appends a list predicates to the OfferUpdate builder.
func (_u *OfferUpdateOne) Where(ps ...predicate.Offer) *OfferUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OfferUpdateOne) Select(field string, fields ...string) *OfferUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Offer entity.
func (_u *OfferUpdateOne) Save(ctx context.Context) (*Offer, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OfferUpdateOne) SaveX(ctx context.Context) *Offer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OfferUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OfferUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OfferUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := offer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OfferUpdateOne) check() error {
	if v, ok := _u.mutation.AmountCents(); ok {
		if err := offer.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`ent: validator failed for field "Offer.amount_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := offer.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Offer.status": %w`, err)}
		}
	}
	if _u.mutation.ListingCleared() && len(_u.mutation.ListingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Offer.listing"`)
	}
	if _u.mutation.BuyerCleared() && len(_u.mutation.BuyerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Offer.buyer"`)
	}
	return nil
}

func (_u *OfferUpdateOne) sqlSave(ctx context.Context) (_node *Offer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(offer.Table, offer.Columns, sqlgraph.NewFieldSpec(offer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Offer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, offer.FieldID)
		for _, f := range fields {
			if !offer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != offer.FieldID {
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
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(offer.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(offer.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(offer.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(offer.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(offer.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(offer.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(offer.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ListingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   offer.ListingTable,
			Columns: []string{offer.ListingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ListingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   offer.ListingTable,
			Columns: []string{offer.ListingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BuyerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   offer.BuyerTable,
			Columns: []string{offer.BuyerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BuyerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   offer.BuyerTable,
			Columns: []string{offer.BuyerColumn},
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
	_node = &Offer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{offer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
