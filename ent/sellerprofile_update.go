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
	"github.com/CyrilCartoux/watch-pros-sub004/ent/predicate"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/sellerprofile"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/user"
	"github.com/google/uuid"
)

// SellerProfileUpdate is the builder for updating SellerProfile entities.
type SellerProfileUpdate struct {
	config
	hooks    []Hook
	mutation *SellerProfileMutation
}

// Where appends a list predicates to the SellerProfileUpdate builder.
func (_u *SellerProfileUpdate) Where(ps ...predicate.SellerProfile) *SellerProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *SellerProfileUpdate) SetCompanyName(v string) *SellerProfileUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableCompanyName(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetCountry sets the "country" field.
func (_u *SellerProfileUpdate) SetCountry(v string) *SellerProfileUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableCountry(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// SetVatNumber sets the "vat_number" field.
func (_u *SellerProfileUpdate) SetVatNumber(v string) *SellerProfileUpdate {
	_u.mutation.SetVatNumber(v)
	return _u
}

// SetNillableVatNumber sets the "vat_number" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableVatNumber(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetVatNumber(*v)
	}
	return _u
}

// ClearVatNumber clears the value of the "vat_number" field.
func (_u *SellerProfileUpdate) ClearVatNumber() *SellerProfileUpdate {
	_u.mutation.ClearVatNumber()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SellerProfileUpdate) SetStatus(v sellerprofile.Status) *SellerProfileUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableStatus(v *sellerprofile.Status) *SellerProfileUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *SellerProfileUpdate) SetNote(v string) *SellerProfileUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *SellerProfileUpdate) SetNillableNote(v *string) *SellerProfileUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *SellerProfileUpdate) ClearNote() *SellerProfileUpdate {
	_u.mutation.ClearNote()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SellerProfileUpdate) SetUpdatedAt(v time.Time) *SellerProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *SellerProfileUpdate) SetUserID(id uuid.UUID) *SellerProfileUpdate {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *SellerProfileUpdate) SetUser(v *User) *SellerProfileUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the SellerProfileMutation object of the builder.
func (_u *SellerProfileUpdate) Mutation() *SellerProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *SellerProfileUpdate) ClearUser() *SellerProfileUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SellerProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SellerProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SellerProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SellerProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SellerProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sellerprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SellerProfileUpdate) check() error {
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := sellerprofile.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "SellerProfile.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Country(); ok {
		if err := sellerprofile.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "SellerProfile.country": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sellerprofile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SellerProfile.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SellerProfile.user"`)
	}
	return nil
}

func (_u *SellerProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sellerprofile.Table, sellerprofile.Columns, sqlgraph.NewFieldSpec(sellerprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(sellerprofile.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(sellerprofile.FieldCountry, field.TypeString, value)
	}
	if value, ok := _u.mutation.VatNumber(); ok {
		_spec.SetField(sellerprofile.FieldVatNumber, field.TypeString, value)
	}
	if _u.mutation.VatNumberCleared() {
		_spec.ClearField(sellerprofile.FieldVatNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sellerprofile.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(sellerprofile.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(sellerprofile.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sellerprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sellerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SellerProfileUpdateOne is the builder for updating a single SellerProfile entity.
type SellerProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SellerProfileMutation
}

// SetCompanyName sets the "company_name" field.
func (_u *SellerProfileUpdateOne) SetCompanyName(v string) *SellerProfileUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableCompanyName(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetCountry sets the "country" field.
func (_u *SellerProfileUpdateOne) SetCountry(v string) *SellerProfileUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableCountry(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// SetVatNumber sets the "vat_number" field.
func (_u *SellerProfileUpdateOne) SetVatNumber(v string) *SellerProfileUpdateOne {
	_u.mutation.SetVatNumber(v)
	return _u
}

// SetNillableVatNumber sets the "vat_number" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableVatNumber(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetVatNumber(*v)
	}
	return _u
}

// ClearVatNumber clears the value of the "vat_number" field.
func (_u *SellerProfileUpdateOne) ClearVatNumber() *SellerProfileUpdateOne {
	_u.mutation.ClearVatNumber()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SellerProfileUpdateOne) SetStatus(v sellerprofile.Status) *SellerProfileUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableStatus(v *sellerprofile.Status) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *SellerProfileUpdateOne) SetNote(v string) *SellerProfileUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *SellerProfileUpdateOne) SetNillableNote(v *string) *SellerProfileUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *SellerProfileUpdateOne) ClearNote() *SellerProfileUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SellerProfileUpdateOne) SetUpdatedAt(v time.Time) *SellerProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *SellerProfileUpdateOne) SetUserID(id uuid.UUID) *SellerProfileUpdateOne {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *SellerProfileUpdateOne) SetUser(v *User) *SellerProfileUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the SellerProfileMutation object of the builder.
func (_u *SellerProfileUpdateOne) Mutation() *SellerProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *SellerProfileUpdateOne) ClearUser() *SellerProfileUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the SellerProfileUpdate builder.
func (_u *SellerProfileUpdateOne) Where(ps ...predicate.SellerProfile) *SellerProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SellerProfileUpdateOne) Select(field string, fields ...string) *SellerProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SellerProfile entity.
func (_u *SellerProfileUpdateOne) Save(ctx context.Context) (*SellerProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SellerProfileUpdateOne) SaveX(ctx context.Context) *SellerProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SellerProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SellerProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SellerProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sellerprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SellerProfileUpdateOne) check() error {
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := sellerprofile.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "SellerProfile.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Country(); ok {
		if err := sellerprofile.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "SellerProfile.country": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sellerprofile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SellerProfile.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SellerProfile.user"`)
	}
	return nil
}

func (_u *SellerProfileUpdateOne) sqlSave(ctx context.Context) (_node *SellerProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sellerprofile.Table, sellerprofile.Columns, sqlgraph.NewFieldSpec(sellerprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SellerProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sellerprofile.FieldID)
		for _, f := range fields {
			if !sellerprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sellerprofile.FieldID {
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
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(sellerprofile.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(sellerprofile.FieldCountry, field.TypeString, value)
	}
	if value, ok := _u.mutation.VatNumber(); ok {
		_spec.SetField(sellerprofile.FieldVatNumber, field.TypeString, value)
	}
	if _u.mutation.VatNumberCleared() {
		_spec.ClearField(sellerprofile.FieldVatNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sellerprofile.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(sellerprofile.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(sellerprofile.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sellerprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SellerProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sellerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
