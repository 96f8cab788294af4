// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/brand"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/listing"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/model"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/predicate"
	"github.com/google/uuid"
)

// ModelUpdate is the builder for updating Model entities.
type ModelUpdate struct {
	config
	hooks    []Hook
	mutation *ModelMutation
}

// Where appends a list predicates to the ModelUpdate builder.
func (_u *ModelUpdate) Where(ps ...predicate.Model) *ModelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ModelUpdate) SetName(v string) *ModelUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ModelUpdate) SetNillableName(v *string) *ModelUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ModelUpdate) SetSlug(v string) *ModelUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ModelUpdate) SetNillableSlug(v *string) *ModelUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetReference sets the "reference" field.
func (_u *ModelUpdate) SetReference(v string) *ModelUpdate {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *ModelUpdate) SetNillableReference(v *string) *ModelUpdate {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// ClearReference clears the value of the "reference" field.
func (_u *ModelUpdate) ClearReference() *ModelUpdate {
	_u.mutation.ClearReference()
	return _u
}

// SetPopular sets the "popular" field.
func (_u *ModelUpdate) SetPopular(v bool) *ModelUpdate {
	_u.mutation.SetPopular(v)
	return _u
}

// SetNillablePopular sets the "popular" field if the given value is not nil.
func (_u *ModelUpdate) SetNillablePopular(v *bool) *ModelUpdate {
	if v != nil {
		_u.SetPopular(*v)
	}
	return _u
}

// SetBrandID sets the "brand" edge to the Brand entity by ID.
func (_u *ModelUpdate) SetBrandID(id uuid.UUID) *ModelUpdate {
	_u.mutation.SetBrandID(id)
	return _u
}

// SetBrand sets the "brand" edge to the Brand entity.
func (_u *ModelUpdate) SetBrand(v *Brand) *ModelUpdate {
	return _u.SetBrandID(v.ID)
}

// AddListingIDs adds the "listings" edge to the Listing entity by IDs.
func (_u *ModelUpdate) AddListingIDs(ids ...uuid.UUID) *ModelUpdate {
	_u.mutation.AddListingIDs(ids...)
	return _u
}

// AddListings adds the "listings" edges to the Listing entity.
func (_u *ModelUpdate) AddListings(v ...*Listing) *ModelUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddListingIDs(ids...)
}

// Mutation returns the ModelMutation object of the builder.
func (_u *ModelUpdate) Mutation() *ModelMutation {
	return _u.mutation
}

// ClearBrand clears the "brand" edge to the Brand entity.
func (_u *ModelUpdate) ClearBrand() *ModelUpdate {
	_u.mutation.ClearBrand()
	return _u
}

// ClearListings clears all "listings" edges to the Listing entity.
func (_u *ModelUpdate) ClearListings() *ModelUpdate {
	_u.mutation.ClearListings()
	return _u
}

// RemoveListingIDs removes the "listings" edge to Listing entities by IDs.
func (_u *ModelUpdate) RemoveListingIDs(ids ...uuid.UUID) *ModelUpdate {
	_u.mutation.RemoveListingIDs(ids...)
	return _u
}

// RemoveListings removes "listings" edges to Listing entities.
func (_u *ModelUpdate) RemoveListings(v ...*Listing) *ModelUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveListingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := model.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Model.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := model.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Model.slug": %w`, err)}
		}
	}
	if _u.mutation.BrandCleared() && len(_u.mutation.BrandIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Model.brand"`)
	}
	return nil
}

func (_u *ModelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(model.Table, model.Columns, sqlgraph.NewFieldSpec(model.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(model.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(model.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(model.FieldReference, field.TypeString, value)
	}
	if _u.mutation.ReferenceCleared() {
		_spec.ClearField(model.FieldReference, field.TypeString)
	}
	if value, ok := _u.mutation.Popular(); ok {
		_spec.SetField(model.FieldPopular, field.TypeBool, value)
	}
	if _u.mutation.BrandCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BrandIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ListingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedListingsIDs(); len(nodes) > 0 && !_u.mutation.ListingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ListingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{model.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelUpdateOne is the builder for updating a single Model entity.
type ModelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelMutation
}

// SetName sets the "name" field.
func (_u *ModelUpdateOne) SetName(v string) *ModelUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ModelUpdateOne) SetNillableName(v *string) *ModelUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ModelUpdateOne) SetSlug(v string) *ModelUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ModelUpdateOne) SetNillableSlug(v *string) *ModelUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetReference sets the "reference" field.
func (_u *ModelUpdateOne) SetReference(v string) *ModelUpdateOne {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *ModelUpdateOne) SetNillableReference(v *string) *ModelUpdateOne {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// ClearReference clears the value of the "reference" field.
func (_u *ModelUpdateOne) ClearReference() *ModelUpdateOne {
	_u.mutation.ClearReference()
	return _u
}

// SetPopular sets the "popular" field.
func (_u *ModelUpdateOne) SetPopular(v bool) *ModelUpdateOne {
	_u.mutation.SetPopular(v)
	return _u
}

// SetNillablePopular sets the "popular" field if the given value is not nil.
func (_u *ModelUpdateOne) SetNillablePopular(v *bool) *ModelUpdateOne {
	if v != nil {
		_u.SetPopular(*v)
	}
	return _u
}

// SetBrandID sets the "brand" edge to the Brand entity by ID.
func (_u *ModelUpdateOne) SetBrandID(id uuid.UUID) *ModelUpdateOne {
	_u.mutation.SetBrandID(id)
	return _u
}

// SetBrand sets the "brand" edge to the Brand entity.
func (_u *ModelUpdateOne) SetBrand(v *Brand) *ModelUpdateOne {
	return _u.SetBrandID(v.ID)
}

// AddListingIDs adds the "listings" edge to the Listing entity by IDs.
func (_u *ModelUpdateOne) AddListingIDs(ids ...uuid.UUID) *ModelUpdateOne {
	_u.mutation.AddListingIDs(ids...)
	return _u
}

// AddListings adds the "listings" edges to the Listing entity.
func (_u *ModelUpdateOne) AddListings(v ...*Listing) *ModelUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddListingIDs(ids...)
}

// Mutation returns the ModelMutation object of the builder.
func (_u *ModelUpdateOne) Mutation() *ModelMutation {
	return _u.mutation
}

// ClearBrand clears the "brand" edge to the Brand entity.
func (_u *ModelUpdateOne) ClearBrand() *ModelUpdateOne {
	_u.mutation.ClearBrand()
	return _u
}

// ClearListings clears all "listings" edges to the Listing entity.
func (_u *ModelUpdateOne) ClearListings() *ModelUpdateOne {
	_u.mutation.ClearListings()
	return _u
}

// RemoveListingIDs removes the "listings" edge to Listing entities by IDs.
func (_u *ModelUpdateOne) RemoveListingIDs(ids ...uuid.UUID) *ModelUpdateOne {
	_u.mutation.RemoveListingIDs(ids...)
	return _u
}

// RemoveListings removes "listings" edges to Listing entities.
func (_u *ModelUpdateOne) RemoveListings(v ...*Listing) *ModelUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveListingIDs(ids...)
}

// Where appends a list predicates to the ModelUpdate builder.
func (_u *ModelUpdateOne) Where(ps ...predicate.Model) *ModelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelUpdateOne) Select(field string, fields ...string) *ModelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Model entity.
func (_u *ModelUpdateOne) Save(ctx context.Context) (*Model, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelUpdateOne) SaveX(ctx context.Context) *Model {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := model.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Model.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := model.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Model.slug": %w`, err)}
		}
	}
	if _u.mutation.BrandCleared() && len(_u.mutation.BrandIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Model.brand"`)
	}
	return nil
}

func (_u *ModelUpdateOne) sqlSave(ctx context.Context) (_node *Model, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(model.Table, model.Columns, sqlgraph.NewFieldSpec(model.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Model.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, model.FieldID)
		for _, f := range fields {
			if !model.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != model.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(model.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(model.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(model.FieldReference, field.TypeString, value)
	}
	if _u.mutation.ReferenceCleared() {
		_spec.ClearField(model.FieldReference, field.TypeString)
	}
	if value, ok := _u.mutation.Popular(); ok {
		_spec.SetField(model.FieldPopular, field.TypeBool, value)
	}
	if _u.mutation.BrandCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BrandIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ListingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedListingsIDs(); len(nodes) > 0 && !_u.mutation.ListingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ListingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Model{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{model.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
