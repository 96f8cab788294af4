// Code generated by ent, DO NOT EDIT.

package sellerprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldID, id))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldCompanyName, v))
}

// Country applies equality check predicate on the "country" field. It's identical to CountryEQ.
func Country(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldCountry, v))
}

// VatNumber applies equality check predicate on the "vat_number" field. It's identical to VatNumberEQ.
func VatNumber(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldVatNumber, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldNote, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldCompanyName, v))
}

// CountryEQ applies the EQ predicate on the "country" field.
func CountryEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldCountry, v))
}

// CountryNEQ applies the NEQ predicate on the "country" field.
func CountryNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldCountry, v))
}

// CountryIn applies the In predicate on the "country" field.
func CountryIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldCountry, vs...))
}

// CountryNotIn applies the NotIn predicate on the "country" field.
func CountryNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldCountry, vs...))
}

// CountryGT applies the GT predicate on the "country" field.
func CountryGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldCountry, v))
}

// CountryGTE applies the GTE predicate on the "country" field.
func CountryGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldCountry, v))
}

// CountryLT applies the LT predicate on the "country" field.
func CountryLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldCountry, v))
}

// CountryLTE applies the LTE predicate on the "country" field.
func CountryLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldCountry, v))
}

// CountryContains applies the Contains predicate on the "country" field.
func CountryContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldCountry, v))
}

// CountryHasPrefix applies the HasPrefix predicate on the "country" field.
func CountryHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldCountry, v))
}

// CountryHasSuffix applies the HasSuffix predicate on the "country" field.
func CountryHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldCountry, v))
}

// CountryEqualFold applies the EqualFold predicate on the "country" field.
func CountryEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldCountry, v))
}

// CountryContainsFold applies the ContainsFold predicate on the "country" field.
func CountryContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldCountry, v))
}

// VatNumberEQ applies the EQ predicate on the "vat_number" field.
func VatNumberEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldVatNumber, v))
}

// VatNumberNEQ applies the NEQ predicate on the "vat_number" field.
func VatNumberNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldVatNumber, v))
}

// VatNumberIn applies the In predicate on the "vat_number" field.
func VatNumberIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldVatNumber, vs...))
}

// VatNumberNotIn applies the NotIn predicate on the "vat_number" field.
func VatNumberNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldVatNumber, vs...))
}

// VatNumberGT applies the GT predicate on the "vat_number" field.
func VatNumberGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldVatNumber, v))
}

// VatNumberGTE applies the GTE predicate on the "vat_number" field.
func VatNumberGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldVatNumber, v))
}

// VatNumberLT applies the LT predicate on the "vat_number" field.
func VatNumberLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldVatNumber, v))
}

// VatNumberLTE applies the LTE predicate on the "vat_number" field.
func VatNumberLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldVatNumber, v))
}

// VatNumberContains applies the Contains predicate on the "vat_number" field.
func VatNumberContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldVatNumber, v))
}

// VatNumberHasPrefix applies the HasPrefix predicate on the "vat_number" field.
func VatNumberHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldVatNumber, v))
}

// VatNumberHasSuffix applies the HasSuffix predicate on the "vat_number" field.
func VatNumberHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldVatNumber, v))
}

// VatNumberIsNil applies the IsNil predicate on the "vat_number" field.
func VatNumberIsNil() predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIsNull(FieldVatNumber))
}

// VatNumberNotNil applies the NotNil predicate on the "vat_number" field.
func VatNumberNotNil() predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotNull(FieldVatNumber))
}

// VatNumberEqualFold applies the EqualFold predicate on the "vat_number" field.
func VatNumberEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldVatNumber, v))
}

// VatNumberContainsFold applies the ContainsFold predicate on the "vat_number" field.
func VatNumberContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldVatNumber, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldStatus, vs...))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldHasSuffix(FieldNote, v))
}

// NoteIsNil applies the IsNil predicate on the "note" field.
func NoteIsNil() predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIsNull(FieldNote))
}

// NoteNotNil applies the NotNil predicate on the "note" field.
func NoteNotNil() predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotNull(FieldNote))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldContainsFold(FieldNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SellerProfile {
	return predicate.SellerProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.SellerProfile {
	return predicate.SellerProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.SellerProfile {
	return predicate.SellerProfile(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SellerProfile) predicate.SellerProfile {
	return predicate.SellerProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SellerProfile) predicate.SellerProfile {
	return predicate.SellerProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SellerProfile) predicate.SellerProfile {
	return predicate.SellerProfile(sql.NotPredicates(p))
}
