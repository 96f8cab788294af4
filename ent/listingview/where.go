// Code generated by ent, DO NOT EDIT.

package listingview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ListingView {
	return predicate.ListingView(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ListingView {
	return predicate.ListingView(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ListingView {
	return predicate.ListingView(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ListingView {
	return predicate.ListingView(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ListingView {
	return predicate.ListingView(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ListingView {
	return predicate.ListingView(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ListingView {
	return predicate.ListingView(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ListingView {
	return predicate.ListingView(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ListingView {
	return predicate.ListingView(sql.FieldLTE(FieldID, id))
}

// ViewerKey applies equality check predicate on the "viewer_key" field. It's identical to ViewerKeyEQ.
func ViewerKey(v string) predicate.ListingView {
	return predicate.ListingView(sql.FieldEQ(FieldViewerKey, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.ListingView {
	return predicate.ListingView(sql.FieldEQ(FieldRecordedAt, v))
}

// WindowBucket applies equality check predicate on the "window_bucket" field. It's identical to WindowBucketEQ.
func WindowBucket(v int64) predicate.ListingView {
	return predicate.ListingView(sql.FieldEQ(FieldWindowBucket, v))
}

// ViewerKeyEQ applies the EQ predicate on the "viewer_key" field.
func ViewerKeyEQ(v string) predicate.ListingView {
	return predicate.ListingView(sql.FieldEQ(FieldViewerKey, v))
}

// ViewerKeyNEQ applies the NEQ predicate on the "viewer_key" field.
func ViewerKeyNEQ(v string) predicate.ListingView {
	return predicate.ListingView(sql.FieldNEQ(FieldViewerKey, v))
}

// ViewerKeyIn applies the In predicate on the "viewer_key" field.
func ViewerKeyIn(vs ...string) predicate.ListingView {
	return predicate.ListingView(sql.FieldIn(FieldViewerKey, vs...))
}

// ViewerKeyNotIn applies the NotIn predicate on the "viewer_key" field.
func ViewerKeyNotIn(vs ...string) predicate.ListingView {
	return predicate.ListingView(sql.FieldNotIn(FieldViewerKey, vs...))
}

// ViewerKeyGT applies the GT predicate on the "viewer_key" field.
func ViewerKeyGT(v string) predicate.ListingView {
	return predicate.ListingView(sql.FieldGT(FieldViewerKey, v))
}

// ViewerKeyGTE applies the GTE predicate on the "viewer_key" field.
func ViewerKeyGTE(v string) predicate.ListingView {
	return predicate.ListingView(sql.FieldGTE(FieldViewerKey, v))
}

// ViewerKeyLT applies the LT predicate on the "viewer_key" field.
func ViewerKeyLT(v string) predicate.ListingView {
	return predicate.ListingView(sql.FieldLT(FieldViewerKey, v))
}

// ViewerKeyLTE applies the LTE predicate on the "viewer_key" field.
func ViewerKeyLTE(v string) predicate.ListingView {
	return predicate.ListingView(sql.FieldLTE(FieldViewerKey, v))
}

// ViewerKeyContains applies the Contains predicate on the "viewer_key" field.
func ViewerKeyContains(v string) predicate.ListingView {
	return predicate.ListingView(sql.FieldContains(FieldViewerKey, v))
}

// ViewerKeyHasPrefix applies the HasPrefix predicate on the "viewer_key" field.
func ViewerKeyHasPrefix(v string) predicate.ListingView {
	return predicate.ListingView(sql.FieldHasPrefix(FieldViewerKey, v))
}

// ViewerKeyHasSuffix applies the HasSuffix predicate on the "viewer_key" field.
func ViewerKeyHasSuffix(v string) predicate.ListingView {
	return predicate.ListingView(sql.FieldHasSuffix(FieldViewerKey, v))
}

// ViewerKeyEqualFold applies the EqualFold predicate on the "viewer_key" field.
func ViewerKeyEqualFold(v string) predicate.ListingView {
	return predicate.ListingView(sql.FieldEqualFold(FieldViewerKey, v))
}

// ViewerKeyContainsFold applies the ContainsFold predicate on the "viewer_key" field.
func ViewerKeyContainsFold(v string) predicate.ListingView {
	return predicate.ListingView(sql.FieldContainsFold(FieldViewerKey, v))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.ListingView {
	return predicate.ListingView(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.ListingView {
	return predicate.ListingView(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.ListingView {
	return predicate.ListingView(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.ListingView {
	return predicate.ListingView(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.ListingView {
	return predicate.ListingView(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.ListingView {
	return predicate.ListingView(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.ListingView {
	return predicate.ListingView(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.ListingView {
	return predicate.ListingView(sql.FieldLTE(FieldRecordedAt, v))
}

// WindowBucketEQ applies the EQ predicate on the "window_bucket" field.
func WindowBucketEQ(v int64) predicate.ListingView {
	return predicate.ListingView(sql.FieldEQ(FieldWindowBucket, v))
}

// WindowBucketNEQ applies the NEQ predicate on the "window_bucket" field.
func WindowBucketNEQ(v int64) predicate.ListingView {
	return predicate.ListingView(sql.FieldNEQ(FieldWindowBucket, v))
}

// WindowBucketIn applies the In predicate on the "window_bucket" field.
func WindowBucketIn(vs ...int64) predicate.ListingView {
	return predicate.ListingView(sql.FieldIn(FieldWindowBucket, vs...))
}

// WindowBucketNotIn applies the NotIn predicate on the "window_bucket" field.
func WindowBucketNotIn(vs ...int64) predicate.ListingView {
	return predicate.ListingView(sql.FieldNotIn(FieldWindowBucket, vs...))
}

// WindowBucketGT applies the GT predicate on the "window_bucket" field.
func WindowBucketGT(v int64) predicate.ListingView {
	return predicate.ListingView(sql.FieldGT(FieldWindowBucket, v))
}

// WindowBucketGTE applies the GTE predicate on the "window_bucket" field.
func WindowBucketGTE(v int64) predicate.ListingView {
	return predicate.ListingView(sql.FieldGTE(FieldWindowBucket, v))
}

// WindowBucketLT applies the LT predicate on the "window_bucket" field.
func WindowBucketLT(v int64) predicate.ListingView {
	return predicate.ListingView(sql.FieldLT(FieldWindowBucket, v))
}

// WindowBucketLTE applies the LTE predicate on the "window_bucket" field.
func WindowBucketLTE(v int64) predicate.ListingView {
	return predicate.ListingView(sql.FieldLTE(FieldWindowBucket, v))
}

// HasListing applies the HasEdge predicate on the "listing" edge.
func HasListing() predicate.ListingView {
	return predicate.ListingView(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ListingTable, ListingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasListingWith applies the HasEdge predicate on the "listing" edge with a given conditions (other predicates).
func HasListingWith(preds ...predicate.Listing) predicate.ListingView {
	return predicate.ListingView(func(s *sql.Selector) {
		step := newListingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ListingView) predicate.ListingView {
	return predicate.ListingView(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ListingView) predicate.ListingView {
	return predicate.ListingView(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ListingView) predicate.ListingView {
	return predicate.ListingView(sql.NotPredicates(p))
}
