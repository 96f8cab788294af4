// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/sellerprofile"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/user"
	"github.com/google/uuid"
)

// SellerProfileCreate is the builder for creating a SellerProfile entity.
type SellerProfileCreate struct {
	config
	mutation *SellerProfileMutation
	hooks    []Hook
}

// SetCompanyName sets the "company_name" field.
func (_c *SellerProfileCreate) SetCompanyName(v string) *SellerProfileCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetCountry sets the "country" field.
func (_c *SellerProfileCreate) SetCountry(v string) *SellerProfileCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetVatNumber sets the "vat_number" field.
func (_c *SellerProfileCreate) SetVatNumber(v string) *SellerProfileCreate {
	_c.mutation.SetVatNumber(v)
	return _c
}

// SetNillableVatNumber sets the "vat_number" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableVatNumber(v *string) *SellerProfileCreate {
	if v != nil {
		_c.SetVatNumber(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SellerProfileCreate) SetStatus(v sellerprofile.Status) *SellerProfileCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableStatus(v *sellerprofile.Status) *SellerProfileCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetNote sets the "note" field.
func (_c *SellerProfileCreate) SetNote(v string) *SellerProfileCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableNote(v *string) *SellerProfileCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SellerProfileCreate) SetCreatedAt(v time.Time) *SellerProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableCreatedAt(v *time.Time) *SellerProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SellerProfileCreate) SetUpdatedAt(v time.Time) *SellerProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableUpdatedAt(v *time.Time) *SellerProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SellerProfileCreate) SetID(v uuid.UUID) *SellerProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SellerProfileCreate) SetNillableID(v *uuid.UUID) *SellerProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_c *SellerProfileCreate) SetUserID(id uuid.UUID) *SellerProfileCreate {
	_c.mutation.SetUserID(id)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *SellerProfileCreate) SetUser(v *User) *SellerProfileCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the SellerProfileMutation object of the builder.
func (_c *SellerProfileCreate) Mutation() *SellerProfileMutation {
	return _c.mutation
}

// Save creates the SellerProfile in the database.
func (_c *SellerProfileCreate) Save(ctx context.Context) (*SellerProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SellerProfileCreate) SaveX(ctx context.Context) *SellerProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SellerProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SellerProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SellerProfileCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := sellerprofile.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sellerprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sellerprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := sellerprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SellerProfileCreate) check() error {
	if _, ok := _c.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`ent: missing required field "SellerProfile.company_name"`)}
	}
	if v, ok := _c.mutation.CompanyName(); ok {
		if err := sellerprofile.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "SellerProfile.company_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Country(); !ok {
		return &ValidationError{Name: "country", err: errors.New(`ent: missing required field "SellerProfile.country"`)}
	}
	if v, ok := _c.mutation.Country(); ok {
		if err := sellerprofile.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "SellerProfile.country": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SellerProfile.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sellerprofile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SellerProfile.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SellerProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SellerProfile.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "SellerProfile.user"`)}
	}
	return nil
}

func (_c *SellerProfileCreate) sqlSave(ctx context.Context) (*SellerProfile, error) {
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

func (_c *SellerProfileCreate) createSpec() (*SellerProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &SellerProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sellerprofile.Table, sqlgraph.NewFieldSpec(sellerprofile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(sellerprofile.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(sellerprofile.FieldCountry, field.TypeString, value)
		_node.Country = value
	}
	if value, ok := _c.mutation.VatNumber(); ok {
		_spec.SetField(sellerprofile.FieldVatNumber, field.TypeString, value)
		_node.VatNumber = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sellerprofile.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(sellerprofile.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sellerprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sellerprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   sellerprofile.UserTable,
			Columns: []string{sellerprofile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.user_seller_profile = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SellerProfileCreateBulk is the builder for creating many SellerProfile entities in bulk.
type SellerProfileCreateBulk struct {
	config
	err      error
	builders []*SellerProfileCreate
}

// Save creates the SellerProfile entities in the database.
func (_c *SellerProfileCreateBulk) Save(ctx context.Context) ([]*SellerProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SellerProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SellerProfileMutation)
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
func (_c *SellerProfileCreateBulk) SaveX(ctx context.Context) []*SellerProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SellerProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SellerProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
