// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/listing"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/listingview"
	"github.com/google/uuid"
)

// ListingViewCreate is the builder for creating a ListingView entity.
type ListingViewCreate struct {
	config
	mutation *ListingViewMutation
	hooks    []Hook
}

// SetViewerKey sets the "viewer_key" field.
func (_c *ListingViewCreate) SetViewerKey(v string) *ListingViewCreate {
	_c.mutation.SetViewerKey(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *ListingViewCreate) SetRecordedAt(v time.Time) *ListingViewCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *ListingViewCreate) SetNillableRecordedAt(v *time.Time) *ListingViewCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// SetWindowBucket sets the "window_bucket" field.
func (_c *ListingViewCreate) SetWindowBucket(v int64) *ListingViewCreate {
	_c.mutation.SetWindowBucket(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ListingViewCreate) SetID(v uuid.UUID) *ListingViewCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ListingViewCreate) SetNillableID(v *uuid.UUID) *ListingViewCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetListingID sets the "listing" edge to the Listing entity by ID.
func (_c *ListingViewCreate) SetListingID(id uuid.UUID) *ListingViewCreate {
	_c.mutation.SetListingID(id)
	return _c
}

// SetListing sets the "listing" edge to the Listing entity.
func (_c *ListingViewCreate) SetListing(v *Listing) *ListingViewCreate {
	return _c.SetListingID(v.ID)
}

// Mutation returns the ListingViewMutation object of the builder.
func (_c *ListingViewCreate) Mutation() *ListingViewMutation {
	return _c.mutation
}

// Save creates the ListingView in the database.
func (_c *ListingViewCreate) Save(ctx context.Context) (*ListingView, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ListingViewCreate) SaveX(ctx context.Context) *ListingView {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListingViewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListingViewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ListingViewCreate) defaults() {
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := listingview.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := listingview.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ListingViewCreate) check() error {
	if _, ok := _c.mutation.ViewerKey(); !ok {
		return &ValidationError{Name: "viewer_key", err: errors.New(`ent: missing required field "ListingView.viewer_key"`)}
	}
	if v, ok := _c.mutation.ViewerKey(); ok {
		if err := listingview.ViewerKeyValidator(v); err != nil {
			return &ValidationError{Name: "viewer_key", err: fmt.Errorf(`ent: validator failed for field "ListingView.viewer_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "ListingView.recorded_at"`)}
	}
	if _, ok := _c.mutation.WindowBucket(); !ok {
		return &ValidationError{Name: "window_bucket", err: errors.New(`ent: missing required field "ListingView.window_bucket"`)}
	}
	if len(_c.mutation.ListingIDs()) == 0 {
		return &ValidationError{Name: "listing", err: errors.New(`ent: missing required edge "ListingView.listing"`)}
	}
	return nil
}

func (_c *ListingViewCreate) sqlSave(ctx context.Context) (*ListingView, error) {
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

func (_c *ListingViewCreate) createSpec() (*ListingView, *sqlgraph.CreateSpec) {
	var (
		_node = &ListingView{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(listingview.Table, sqlgraph.NewFieldSpec(listingview.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ViewerKey(); ok {
		_spec.SetField(listingview.FieldViewerKey, field.TypeString, value)
		_node.ViewerKey = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(listingview.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	if value, ok := _c.mutation.WindowBucket(); ok {
		_spec.SetField(listingview.FieldWindowBucket, field.TypeInt64, value)
		_node.WindowBucket = value
	}
	if nodes := _c.mutation.ListingIDs(); len(nodes) > 0 {
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
		_node.listing_views = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ListingViewCreateBulk is the builder for creating many ListingView entities in bulk.
type ListingViewCreateBulk struct {
	config
	err      error
	builders []*ListingViewCreate
}

// Save creates the ListingView entities in the database.
func (_c *ListingViewCreateBulk) Save(ctx context.Context) ([]*ListingView, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ListingView, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ListingViewMutation)
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
func (_c *ListingViewCreateBulk) SaveX(ctx context.Context) []*ListingView {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListingViewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListingViewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
