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

// BrandUpdate is the builder for updating Brand entities.
type BrandUpdate struct {
	config
	hooks    []Hook
	mutation *BrandMutation
}

// Where appends a list predicates to the BrandUpdate builder.
func (_u *BrandUpdate) Where(ps ...predicate.Brand) *BrandUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *BrandUpdate) SetName(v string) *BrandUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BrandUpdate) SetNillableName(v *string) *BrandUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *BrandUpdate) SetSlug(v string) *BrandUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *BrandUpdate) SetNillableSlug(v *string) *BrandUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetCountry sets the "country" field.
func (_u *BrandUpdate) SetCountry(v string) *BrandUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *BrandUpdate) SetNillableCountry(v *string) *BrandUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *BrandUpdate) ClearCountry() *BrandUpdate {
	_u.mutation.ClearCountry()
	return _u
}

// SetPopular sets the "popular" field.
func (_u *BrandUpdate) SetPopular(v bool) *BrandUpdate {
	_u.mutation.SetPopular(v)
	return _u
}

// SetNillablePopular sets the "popular" field if the given value is not nil.
func (_u *BrandUpdate) SetNillablePopular(v *bool) *BrandUpdate {
	if v != nil {
		_u.SetPopular(*v)
	}
	return _u
}

// AddModelIDs adds the "models" edge to the Model entity by IDs.
func (_u *BrandUpdate) AddModelIDs(ids ...uuid.UUID) *BrandUpdate {
	_u.mutation.AddModelIDs(ids...)
	return _u
}

// AddModels adds the "models" edges to the Model entity.
func (_u *BrandUpdate) AddModels(v ...*Model) *BrandUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddModelIDs(ids...)
}

// AddListingIDs adds the "listings" edge to the Listing entity by IDs.
func (_u *BrandUpdate) AddListingIDs(ids ...uuid.UUID) *BrandUpdate {
	_u.mutation.AddListingIDs(ids...)
	return _u
}

// AddListings adds the "listings" edges to the Listing entity.
func (_u *BrandUpdate) AddListings(v ...*Listing) *BrandUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddListingIDs(ids...)
}

// Mutation returns the BrandMutation object of the builder.
func (_u *BrandUpdate) Mutation() *BrandMutation {
	return _u.mutation
}

// ClearModels clears all "models" edges to the Model entity.
func (_u *BrandUpdate) ClearModels() *BrandUpdate {
	_u.mutation.ClearModels()
	return _u
}

// RemoveModelIDs removes the "models" edge to Model entities by IDs.
func (_u *BrandUpdate) RemoveModelIDs(ids ...uuid.UUID) *BrandUpdate {
	_u.mutation.RemoveModelIDs(ids...)
	return _u
}

// RemoveModels removes "models" edges to Model entities.
func (_u *BrandUpdate) RemoveModels(v ...*Model) *BrandUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveModelIDs(ids...)
}

// ClearListings clears all "listings" edges to the Listing entity.
func (_u *BrandUpdate) ClearListings() *BrandUpdate {
	_u.mutation.ClearListings()
	return _u
}

// RemoveListingIDs removes the "listings" edge to Listing entities by IDs.
func (_u *BrandUpdate) RemoveListingIDs(ids ...uuid.UUID) *BrandUpdate {
	_u.mutation.RemoveListingIDs(ids...)
	return _u
}

// RemoveListings removes "listings" edges to Listing entities.
func (_u *BrandUpdate) RemoveListings(v ...*Listing) *BrandUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveListingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BrandUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BrandUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BrandUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BrandUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BrandUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := brand.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Brand.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := brand.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Brand.slug": %w`, err)}
		}
	}
	return nil
}

func (_u *BrandUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(brand.Table, brand.Columns, sqlgraph.NewFieldSpec(brand.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(brand.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(brand.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(brand.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(brand.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.Popular(); ok {
		_spec.SetField(brand.FieldPopular, field.TypeBool, value)
	}
	if _u.mutation.ModelsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedModelsIDs(); len(nodes) > 0 && !_u.mutation.ModelsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ModelsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ListingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedListingsIDs(); len(nodes) > 0 && !_u.mutation.ListingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ListingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{brand.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BrandUpdateOne is the builder for updating a single Brand entity.
type BrandUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BrandMutation
}

// SetName sets the "name" field.
func (_u *BrandUpdateOne) SetName(v string) *BrandUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BrandUpdateOne) SetNillableName(v *string) *BrandUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *BrandUpdateOne) SetSlug(v string) *BrandUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *BrandUpdateOne) SetNillableSlug(v *string) *BrandUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetCountry sets the "country" field.
func (_u *BrandUpdateOne) SetCountry(v string) *BrandUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *BrandUpdateOne) SetNillableCountry(v *string) *BrandUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *BrandUpdateOne) ClearCountry() *BrandUpdateOne {
	_u.mutation.ClearCountry()
	return _u
}

// SetPopular sets the "popular" field.
func (_u *BrandUpdateOne) SetPopular(v bool) *BrandUpdateOne {
	_u.mutation.SetPopular(v)
	return _u
}

// SetNillablePopular sets the "popular" field if the given value is not nil.
func (_u *BrandUpdateOne) SetNillablePopular(v *bool) *BrandUpdateOne {
	if v != nil {
		_u.SetPopular(*v)
	}
	return _u
}

// AddModelIDs adds the "models" edge to the Model entity by IDs.
func (_u *BrandUpdateOne) AddModelIDs(ids ...uuid.UUID) *BrandUpdateOne {
	_u.mutation.AddModelIDs(ids...)
	return _u
}

// AddModels adds the "models" edges to the Model entity.
func (_u *BrandUpdateOne) AddModels(v ...*Model) *BrandUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddModelIDs(ids...)
}

// AddListingIDs adds the "listings" edge to the Listing entity by IDs.
func (_u *BrandUpdateOne) AddListingIDs(ids ...uuid.UUID) *BrandUpdateOne {
	_u.mutation.AddListingIDs(ids...)
	return _u
}

// AddListings adds the "listings" edges to the Listing entity.
func (_u *BrandUpdateOne) AddListings(v ...*Listing) *BrandUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddListingIDs(ids...)
}

// Mutation returns the BrandMutation object of the builder.
func (_u *BrandUpdateOne) Mutation() *BrandMutation {
	return _u.mutation
}

// ClearModels clears all "models" edges to the Model entity.
func (_u *BrandUpdateOne) ClearModels() *BrandUpdateOne {
	_u.mutation.ClearModels()
	return _u
}

// RemoveModelIDs removes the "models" edge to Model entities by IDs.
func (_u *BrandUpdateOne) RemoveModelIDs(ids ...uuid.UUID) *BrandUpdateOne {
	_u.mutation.RemoveModelIDs(ids...)
	return _u
}

// RemoveModels removes "models" edges to Model entities.
func (_u *BrandUpdateOne) RemoveModels(v ...*Model) *BrandUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveModelIDs(ids...)
}

// ClearListings clears all "listings" edges to the Listing entity.
func (_u *BrandUpdateOne) ClearListings() *BrandUpdateOne {
	_u.mutation.ClearListings()
	return _u
}

// RemoveListingIDs removes the "listings" edge to Listing entities by IDs.
func (_u *BrandUpdateOne) RemoveListingIDs(ids ...uuid.UUID) *BrandUpdateOne {
	_u.mutation.RemoveListingIDs(ids...)
	return _u
}

// RemoveListings removes "listings" edges to Listing entities.
func (_u *BrandUpdateOne) RemoveListings(v ...*Listing) *BrandUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveListingIDs(ids...)
}

// Where appends a list predicates to the BrandUpdate builder.
func (_u *BrandUpdateOne) Where(ps ...predicate.Brand) *BrandUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BrandUpdateOne) Select(field string, fields ...string) *BrandUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Brand entity.
func (_u *BrandUpdateOne) Save(ctx context.Context) (*Brand, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BrandUpdateOne) SaveX(ctx context.Context) *Brand {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BrandUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BrandUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BrandUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := brand.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Brand.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := brand.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Brand.slug": %w`, err)}
		}
	}
	return nil
}

func (_u *BrandUpdateOne) sqlSave(ctx context.Context) (_node *Brand, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(brand.Table, brand.Columns, sqlgraph.NewFieldSpec(brand.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Brand.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, brand.FieldID)
		for _, f := range fields {
			if !brand.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != brand.FieldID {
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
		_spec.SetField(brand.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(brand.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(brand.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(brand.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.Popular(); ok {
		_spec.SetField(brand.FieldPopular, field.TypeBool, value)
	}
	if _u.mutation.ModelsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedModelsIDs(); len(nodes) > 0 && !_u.mutation.ModelsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ModelsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ListingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedListingsIDs(); len(nodes) > 0 && !_u.mutation.ListingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ListingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Brand{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{brand.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
