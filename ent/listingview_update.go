// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/listing"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/listingview"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/predicate"
	"github.com/google/uuid"
)

// ListingViewUpdate is the builder for updating ListingView entities.
type ListingViewUpdate struct {
	config
	hooks    []Hook
	mutation *ListingViewMutation
}

// Where appends a list predicates to the ListingViewUpdate builder.
func (_u *ListingViewUpdate) Where(ps ...predicate.ListingView) *ListingViewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetListingID sets the "listing" edge to the Listing entity by ID.
func (_u *ListingViewUpdate) SetListingID(id uuid.UUID) *ListingViewUpdate {
	_u.mutation.SetListingID(id)
	return _u
}

// SetListing sets the "listing" edge to the Listing entity.
func (_u *ListingViewUpdate) SetListing(v *Listing) *ListingViewUpdate {
	return _u.SetListingID(v.ID)
}

// Mutation returns the ListingViewMutation object of the builder.
func (_u *ListingViewUpdate) Mutation() *ListingViewMutation {
	return _u.mutation
}

// ClearListing clears the "listing" edge to the Listing entity.
func (_u *ListingViewUpdate) ClearListing() *ListingViewUpdate {
	_u.mutation.ClearListing()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ListingViewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListingViewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ListingViewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListingViewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListingViewUpdate) check() error {
	if _u.mutation.ListingCleared() && len(_u.mutation.ListingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ListingView.listing"`)
	}
	return nil
}

func (_u *ListingViewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listingview.Table, listingview.Columns, sqlgraph.NewFieldSpec(listingview.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ListingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   listingview.ListingTable,
			Columns: []string{listingview.ListingColumn},
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
			Table:   listingview.ListingTable,
			Columns: []string{listingview.ListingColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listingview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ListingViewUpdateOne is the builder for updating a single ListingView entity.
type ListingViewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ListingViewMutation
}

// SetListingID sets the "listing" edge to the Listing entity by ID.
func (_u *ListingViewUpdateOne) SetListingID(id uuid.UUID) *ListingViewUpdateOne {
	_u.mutation.SetListingID(id)
	return _u
}

// SetListing sets the "listing" edge to the Listing entity.
func (_u *ListingViewUpdateOne) SetListing(v *Listing) *ListingViewUpdateOne {
	return _u.SetListingID(v.ID)
}

// Mutation returns the ListingViewMutation object of the builder.
func (_u *ListingViewUpdateOne) Mutation() *ListingViewMutation {
	return _u.mutation
}

// ClearListing clears the "listing" edge to the Listing entity.
func (_u *ListingViewUpdateOne) ClearListing() *ListingViewUpdateOne {
	_u.mutation.ClearListing()
	return _u
}

// Where appends a list predicates to the ListingViewUpdate builder.
func (_u *ListingViewUpdateOne) Where(ps ...predicate.ListingView) *ListingViewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ListingViewUpdateOne) Select(field string, fields ...string) *ListingViewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ListingView entity.
func (_u *ListingViewUpdateOne) Save(ctx context.Context) (*ListingView, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListingViewUpdateOne) SaveX(ctx context.Context) *ListingView {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ListingViewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListingViewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListingViewUpdateOne) check() error {
	if _u.mutation.ListingCleared() && len(_u.mutation.ListingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ListingView.listing"`)
	}
	return nil
}

func (_u *ListingViewUpdateOne) sqlSave(ctx context.Context) (_node *ListingView, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listingview.Table, listingview.Columns, sqlgraph.NewFieldSpec(listingview.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ListingView.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, listingview.FieldID)
		for _, f := range fields {
			if !listingview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != listingview.FieldID {
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
	if _u.mutation.ListingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   listingview.ListingTable,
			Columns: []string{listingview.ListingColumn},
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
			Table:   listingview.ListingTable,
			Columns: []string{listingview.ListingColumn},
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
	_node = &ListingView{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listingview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
