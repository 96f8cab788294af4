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
	"github.com/CyrilCartoux/watch-pros-sub004/ent/listing"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/model"
	"github.com/google/uuid"
)

// ModelCreate is the builder for creating a Model entity.
type ModelCreate struct {
	config
	mutation *ModelMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ModelCreate) SetName(v string) *ModelCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *ModelCreate) SetSlug(v string) *ModelCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetReference sets the "reference" field.
func (_c *ModelCreate) SetReference(v string) *ModelCreate {
	_c.mutation.SetReference(v)
	return _c
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_c *ModelCreate) SetNillableReference(v *string) *ModelCreate {
	if v != nil {
		_c.SetReference(*v)
	}
	return _c
}

// SetPopular sets the "popular" field.
func (_c *ModelCreate) SetPopular(v bool) *ModelCreate {
	_c.mutation.SetPopular(v)
	return _c
}

// SetNillablePopular sets the "popular" field if the given value is not nil.
func (_c *ModelCreate) SetNillablePopular(v *bool) *ModelCreate {
	if v != nil {
		_c.SetPopular(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModelCreate) SetCreatedAt(v time.Time) *ModelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModelCreate) SetNillableCreatedAt(v *time.Time) *ModelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModelCreate) SetID(v uuid.UUID) *ModelCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ModelCreate) SetNillableID(v *uuid.UUID) *ModelCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBrandID sets the "brand" edge to the Brand entity by ID.
func (_c *ModelCreate) SetBrandID(id uuid.UUID) *ModelCreate {
	_c.mutation.SetBrandID(id)
	return _c
}

// SetBrand sets the "brand" edge to the Brand entity.
func (_c *ModelCreate) SetBrand(v *Brand) *ModelCreate {
	return _c.SetBrandID(v.ID)
}

// AddListingIDs adds the "listings" edge to the Listing entity by IDs.
func (_c *ModelCreate) AddListingIDs(ids ...uuid.UUID) *ModelCreate {
	_c.mutation.AddListingIDs(ids...)
	return _c
}

// AddListings adds the "listings" edges to the Listing entity.
func (_c *ModelCreate) AddListings(v ...*Listing) *ModelCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddListingIDs(ids...)
}

// Mutation returns the ModelMutation object of the builder.
func (_c *ModelCreate) Mutation() *ModelMutation {
	return _c.mutation
}

// Save creates the Model in the database.
func (_c *ModelCreate) Save(ctx context.Context) (*Model, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelCreate) SaveX(ctx context.Context) *Model {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelCreate) defaults() {
	if _, ok := _c.mutation.Popular(); !ok {
		v := model.DefaultPopular
		_c.mutation.SetPopular(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := model.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := model.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Model.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := model.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Model.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Model.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := model.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Model.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Popular(); !ok {
		return &ValidationError{Name: "popular", err: errors.New(`ent: missing required field "Model.popular"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Model.created_at"`)}
	}
	if len(_c.mutation.BrandIDs()) == 0 {
		return &ValidationError{Name: "brand", err: errors.New(`ent: missing required edge "Model.brand"`)}
	}
	return nil
}

func (_c *ModelCreate) sqlSave(ctx context.Context) (*Model, error) {
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

func (_c *ModelCreate) createSpec() (*Model, *sqlgraph.CreateSpec) {
	var (
		_node = &Model{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(model.Table, sqlgraph.NewFieldSpec(model.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(model.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(model.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Reference(); ok {
		_spec.SetField(model.FieldReference, field.TypeString, value)
		_node.Reference = value
	}
	if value, ok := _c.mutation.Popular(); ok {
		_spec.SetField(model.FieldPopular, field.TypeBool, value)
		_node.Popular = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(model.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.BrandIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   model.BrandTable,
			Columns: []string{model.BrandColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(brand.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.brand_models = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ListingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   model.ListingsTable,
			Columns: []string{model.ListingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ModelCreateBulk is the builder for creating many Model entities in bulk.
type ModelCreateBulk struct {
	config
	err      error
	builders []*ModelCreate
}

// Save creates the Model entities in the database.
func (_c *ModelCreateBulk) Save(ctx context.Context) ([]*Model, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Model, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelMutation)
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
func (_c *ModelCreateBulk) SaveX(ctx context.Context) []*Model {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
