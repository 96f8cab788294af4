// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/brand"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/listing"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/model"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/user"
	"github.com/google/uuid"
)

// Listing is the model entity for the Listing schema.
type Listing struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// PriceCents holds the value of the "price_cents" field.
	PriceCents int64 `json:"price_cents,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// Condition holds the value of the "condition" field.
	Condition listing.Condition `json:"condition,omitempty"`
	// Year holds the value of the "year" field.
	Year int `json:"year,omitempty"`
	// Status holds the value of the "status" field.
	Status listing.Status `json:"status,omitempty"`
	// ViewsCount holds the value of the "views_count" field.
	ViewsCount int64 `json:"views_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ListingQuery when eager-loading is set.
	Edges          ListingEdges `json:"edges"`
	brand_listings *uuid.UUID
	model_listings *uuid.UUID
	user_listings  *uuid.UUID
	selectValues   sql.SelectValues
}

// ListingEdges holds the relations/edges for other nodes in the graph.
type ListingEdges struct {
	// Seller holds the value of the seller edge.
	Seller *User `json:"seller,omitempty"`
	// Brand holds the value of the brand edge.
	Brand *Brand `json:"brand,omitempty"`
	// Model holds the value of the model edge.
	Model *Model `json:"model,omitempty"`
	// Views holds the value of the views edge.
	Views []*ListingView `json:"views,omitempty"`
	// Offers holds the value of the offers edge.
	Offers []*Offer `json:"offers,omitempty"`
	// Conversations holds the value of the conversations edge.
	Conversations []*Conversation `json:"conversations,omitempty"`
	// Favorites holds the value of the favorites edge.
	Favorites []*Favorite `json:"favorites,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// SellerOrErr returns the Seller value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ListingEdges) SellerOrErr() (*User, error) {
	if e.Seller != nil {
		return e.Seller, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "seller"}
}

// BrandOrErr returns the Brand value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ListingEdges) BrandOrErr() (*Brand, error) {
	if e.Brand != nil {
		return e.Brand, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: brand.Label}
	}
	return nil, &NotLoadedError{edge: "brand"}
}

// ModelOrErr returns the Model value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ListingEdges) ModelOrErr() (*Model, error) {
	if e.Model != nil {
		return e.Model, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: model.Label}
	}
	return nil, &NotLoadedError{edge: "model"}
}

// ViewsOrErr returns the Views value or an error if the edge
// was not loaded in eager-loading.
func (e ListingEdges) ViewsOrErr() ([]*ListingView, error) {
	if e.loadedTypes[3] {
		return e.Views, nil
	}
	return nil, &NotLoadedError{edge: "views"}
}

// OffersOrErr returns the Offers value or an error if the edge
// was not loaded in eager-loading.
func (e ListingEdges) OffersOrErr() ([]*Offer, error) {
	if e.loadedTypes[4] {
		return e.Offers, nil
	}
	return nil, &NotLoadedError{edge: "offers"}
}

// ConversationsOrErr returns the Conversations value or an error if the edge
// was not loaded in eager-loading.
func (e ListingEdges) ConversationsOrErr() ([]*Conversation, error) {
	if e.loadedTypes[5] {
		return e.Conversations, nil
	}
	return nil, &NotLoadedError{edge: "conversations"}
}

// FavoritesOrErr returns the Favorites value or an error if the edge
// was not loaded in eager-loading.
func (e ListingEdges) FavoritesOrErr() ([]*Favorite, error) {
	if e.loadedTypes[6] {
		return e.Favorites, nil
	}
	return nil, &NotLoadedError{edge: "favorites"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Listing) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case listing.FieldPriceCents, listing.FieldYear, listing.FieldViewsCount:
			values[i] = new(sql.NullInt64)
		case listing.FieldTitle, listing.FieldDescription, listing.FieldCurrency, listing.FieldCondition, listing.FieldStatus:
			values[i] = new(sql.NullString)
		case listing.FieldCreatedAt, listing.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case listing.FieldID:
			values[i] = new(uuid.UUID)
		case listing.ForeignKeys[0]: // brand_listings
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case listing.ForeignKeys[1]: // model_listings
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case listing.ForeignKeys[2]: // user_listings
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Listing fields.
func (_m *Listing) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case listing.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case listing.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case listing.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case listing.FieldPriceCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field price_cents", values[i])
			} else if value.Valid {
				_m.PriceCents = value.Int64
			}
		case listing.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case listing.FieldCondition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field condition", values[i])
			} else if value.Valid {
				_m.Condition = listing.Condition(value.String)
			}
		case listing.FieldYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year", values[i])
			} else if value.Valid {
				_m.Year = int(value.Int64)
			}
		case listing.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = listing.Status(value.String)
			}
		case listing.FieldViewsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field views_count", values[i])
			} else if value.Valid {
				_m.ViewsCount = value.Int64
			}
		case listing.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case listing.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case listing.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field brand_listings", values[i])
			} else if value.Valid {
				_m.brand_listings = new(uuid.UUID)
				*_m.brand_listings = *value.S.(*uuid.UUID)
			}
		case listing.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field model_listings", values[i])
			} else if value.Valid {
				_m.model_listings = new(uuid.UUID)
				*_m.model_listings = *value.S.(*uuid.UUID)
			}
		case listing.ForeignKeys[2]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field user_listings", values[i])
			} else if value.Valid {
				_m.user_listings = new(uuid.UUID)
				*_m.user_listings = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Listing.
// This includes values selected through modifiers, order, etc.
func (_m *Listing) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySeller queries the "seller" edge of the Listing entity.
func (_m *Listing) QuerySeller() *UserQuery {
	return NewListingClient(_m.config).QuerySeller(_m)
}

// QueryBrand queries the "brand" edge of the Listing entity.
func (_m *Listing) QueryBrand() *BrandQuery {
	return NewListingClient(_m.config).QueryBrand(_m)
}

// QueryModel queries the "model" edge of the Listing entity.
func (_m *Listing) QueryModel() *ModelQuery {
	return NewListingClient(_m.config).QueryModel(_m)
}

// QueryViews queries the "views" edge of the Listing entity.
func (_m *Listing) QueryViews() *ListingViewQuery {
	return NewListingClient(_m.config).QueryViews(_m)
}

// QueryOffers queries the "offers" edge of the Listing entity.
func (_m *Listing) QueryOffers() *OfferQuery {
	return NewListingClient(_m.config).QueryOffers(_m)
}

// QueryConversations queries the "conversations" edge of the Listing entity.
func (_m *Listing) QueryConversations() *ConversationQuery {
	return NewListingClient(_m.config).QueryConversations(_m)
}

// QueryFavorites queries the "favorites" edge of the Listing entity.
func (_m *Listing) QueryFavorites() *FavoriteQuery {
	return NewListingClient(_m.config).QueryFavorites(_m)
}

// Update returns a builder for updating this Listing.
// Note that you need to call Listing.Unwrap() before calling this method if this Listing
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Listing) Update() *ListingUpdateOne {
	return NewListingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Listing entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Listing) Unwrap() *Listing {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Listing is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Listing) String() string {
	var builder strings.Builder
	builder.WriteString("Listing(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("price_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriceCents))
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	builder.WriteString("condition=")
	builder.WriteString(fmt.Sprintf("%v", _m.Condition))
	builder.WriteString(", ")
	builder.WriteString("year=")
	builder.WriteString(fmt.Sprintf("%v", _m.Year))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("views_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ViewsCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Listings is a parsable slice of Listing.
type Listings []*Listing
