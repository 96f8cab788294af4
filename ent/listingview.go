// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/listing"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/listingview"
	"github.com/google/uuid"
)

// ListingView is the model entity for the ListingView schema.
type ListingView struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ViewerKey holds the value of the "viewer_key" field.
	ViewerKey string `json:"viewer_key,omitempty"`
	// RecordedAt holds the value of the "recorded_at" field.
	RecordedAt time.Time `json:"recorded_at,omitempty"`
	// WindowBucket holds the value of the "window_bucket" field.
	WindowBucket int64 `json:"window_bucket,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ListingViewQuery when eager-loading is set.
	Edges         ListingViewEdges `json:"edges"`
	listing_views *uuid.UUID
	selectValues  sql.SelectValues
}

// ListingViewEdges holds the relations/edges for other nodes in the graph.
type ListingViewEdges struct {
	// Listing holds the value of the listing edge.
	Listing *Listing `json:"listing,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ListingOrErr returns the Listing value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ListingViewEdges) ListingOrErr() (*Listing, error) {
	if e.Listing != nil {
		return e.Listing, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: listing.Label}
	}
	return nil, &NotLoadedError{edge: "listing"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ListingView) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case listingview.FieldWindowBucket:
			values[i] = new(sql.NullInt64)
		case listingview.FieldViewerKey:
			values[i] = new(sql.NullString)
		case listingview.FieldRecordedAt:
			values[i] = new(sql.NullTime)
		case listingview.FieldID:
			values[i] = new(uuid.UUID)
		case listingview.ForeignKeys[0]: // listing_views
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ListingView fields.
func (_m *ListingView) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case listingview.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case listingview.FieldViewerKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field viewer_key", values[i])
			} else if value.Valid {
				_m.ViewerKey = value.String
			}
		case listingview.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = value.Time
			}
		case listingview.FieldWindowBucket:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field window_bucket", values[i])
			} else if value.Valid {
				_m.WindowBucket = value.Int64
			}
		case listingview.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field listing_views", values[i])
			} else if value.Valid {
				_m.listing_views = new(uuid.UUID)
				*_m.listing_views = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ListingView.
// This includes values selected through modifiers, order, etc.
func (_m *ListingView) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryListing queries the "listing" edge of the ListingView entity.
func (_m *ListingView) QueryListing() *ListingQuery {
	return NewListingViewClient(_m.config).QueryListing(_m)
}

// Update returns a builder for updating this ListingView.
// Note that you need to call ListingView.Unwrap() before calling this method if this ListingView
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ListingView) Update() *ListingViewUpdateOne {
	return NewListingViewClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ListingView entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ListingView) Unwrap() *ListingView {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ListingView is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ListingView) String() string {
	var builder strings.Builder
	builder.WriteString("ListingView(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("viewer_key=")
	builder.WriteString(_m.ViewerKey)
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("window_bucket=")
	builder.WriteString(fmt.Sprintf("%v", _m.WindowBucket))
	builder.WriteByte(')')
	return builder.String()
}

// ListingViews is a parsable slice of ListingView.
type ListingViews []*ListingView
