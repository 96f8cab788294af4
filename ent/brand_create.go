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

// BrandCreate is the builder for creating a Brand entity.
type BrandCreate struct {
	config
	mutation *BrandMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *BrandCreate) SetName(v string) *BrandCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *BrandCreate) SetSlug(v string) *BrandCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetCountry sets the "country" field.
func (_c *BrandCreate) SetCountry(v string) *BrandCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *BrandCreate) SetNillableCountry(v *string) *BrandCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetPopular sets the "popular" field.
func (_c *BrandCreate) SetPopular(v bool) *BrandCreate {
	_c.mutation.SetPopular(v)
	return _c
}

// SetNillablePopular sets the "popular" field if the given value is not nil.
func (_c *BrandCreate) SetNillablePopular(v *bool) *BrandCreate {
	if v != nil {
		_c.SetPopular(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BrandCreate) SetCreatedAt(v time.Time) *BrandCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BrandCreate) SetNillableCreatedAt(v *time.Time) *BrandCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BrandCreate) SetID(v uuid.UUID) *BrandCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BrandCreate) SetNillableID(v *uuid.UUID) *BrandCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddModelIDs adds the "models" edge to the Model entity by IDs.
func (_c *BrandCreate) AddModelIDs(ids ...uuid.UUID) *BrandCreate {
	_c.mutation.AddModelIDs(ids...)
	return _c
}

// AddModels adds the "models" edges to the Model entity.
func (_c *BrandCreate) AddModels(v ...*Model) *BrandCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddModelIDs(ids...)
}

// AddListingIDs adds the "listings" edge to the Listing entity by IDs.
func (_c *BrandCreate) AddListingIDs(ids ...uuid.UUID) *BrandCreate {
	_c.mutation.AddListingIDs(ids...)
	return _c
}

// AddListings adds the "listings" edges to the Listing entity.
func (_c *BrandCreate) AddListings(v ...*Listing) *BrandCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddListingIDs(ids...)
}

// Mutation returns the BrandMutation object of the builder.
func (_c *BrandCreate) Mutation() *BrandMutation {
	return _c.mutation
}

// Save creates the Brand in the database.
func (_c *BrandCreate) Save(ctx context.Context) (*Brand, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BrandCreate) SaveX(ctx context.Context) *Brand {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BrandCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BrandCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BrandCreate) defaults() {
	if _, ok := _c.mutation.Popular(); !ok {
		v := brand.DefaultPopular
		_c.mutation.SetPopular(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := brand.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := brand.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BrandCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Brand.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := brand.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Brand.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Brand.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := brand.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Brand.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Popular(); !ok {
		return &ValidationError{Name: "popular", err: errors.New(`ent: missing required field "Brand.popular"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Brand.created_at"`)}
	}
	return nil
}

func (_c *BrandCreate) sqlSave(ctx context.Context) (*Brand, error) {
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

func (_c *BrandCreate) createSpec() (*Brand, *sqlgraph.CreateSpec) {
	var (
		_node = &Brand{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(brand.Table, sqlgraph.NewFieldSpec(brand.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(brand.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(brand.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(brand.FieldCountry, field.TypeString, value)
		_node.Country = value
	}
	if value, ok := _c.mutation.Popular(); ok {
		_spec.SetField(brand.FieldPopular, field.TypeBool, value)
		_node.Popular = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(brand.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ModelsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   brand.ModelsTable,
			Columns: []string{brand.ModelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(model.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ListingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   brand.ListingsTable,
			Columns: []string{brand.ListingsColumn},
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

// BrandCreateBulk is the builder for creating many Brand entities in bulk.
type BrandCreateBulk struct {
	config
	err      error
	builders []*BrandCreate
}

// Save creates the Brand entities in the database.
func (_c *BrandCreateBulk) Save(ctx context.Context) ([]*Brand, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Brand, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BrandMutation)
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
func (_c *BrandCreateBulk) SaveX(ctx context.Context) []*Brand {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BrandCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BrandCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
