// Code generated by ent, DO NOT EDIT.

package listingview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the listingview type in the database.
	Label = "listing_view"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldViewerKey holds the string denoting the viewer_key field in the database.
	FieldViewerKey = "viewer_key"
	// FieldRecordedAt holds the string denoting the recorded_at field in the database.
	FieldRecordedAt = "recorded_at"
	// FieldWindowBucket holds the string denoting the window_bucket field in the database.
	FieldWindowBucket = "window_bucket"
	// EdgeListing holds the string denoting the listing edge name in mutations.
	EdgeListing = "listing"
	// Table holds the table name of the listingview in the database.
	Table = "listing_views"
	// ListingTable is the table that holds the listing relation/edge.
	ListingTable = "listing_views"
	// ListingInverseTable is the table name for the Listing entity.
	// It exists in this package in order to avoid circular dependency with the "listing" package.
	ListingInverseTable = "listings"
	// ListingColumn is the table column denoting the listing relation/edge.
	ListingColumn = "listing_views"
)

// Columns holds all SQL columns for listingview fields.
var Columns = []string{
	FieldID,
	FieldViewerKey,
	FieldRecordedAt,
	FieldWindowBucket,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "listing_views"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"listing_views",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// ViewerKeyValidator is a validator for the "viewer_key" field. It is called by the builders before save.
	ViewerKeyValidator func(string) error
	// DefaultRecordedAt holds the default value on creation for the "recorded_at" field.
	DefaultRecordedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ListingView queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByViewerKey orders the results by the viewer_key field.
func ByViewerKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViewerKey, opts...).ToFunc()
}

// ByRecordedAt orders the results by the recorded_at field.
func ByRecordedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordedAt, opts...).ToFunc()
}

// ByWindowBucket orders the results by the window_bucket field.
func ByWindowBucket(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowBucket, opts...).ToFunc()
}

// ByListingField orders the results by listing field.
func ByListingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newListingStep(), sql.OrderByField(field, opts...))
	}
}
func newListingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ListingInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ListingTable, ListingColumn),
	)
}
