// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/conversation"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/listing"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/user"
	"github.com/google/uuid"
)

// Conversation is the model entity for the Conversation schema.
type Conversation struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConversationQuery when eager-loading is set.
	Edges                 ConversationEdges `json:"edges"`
	conversation_buyer    *uuid.UUID
	conversation_seller   *uuid.UUID
	listing_conversations *uuid.UUID
	selectValues          sql.SelectValues
}

// ConversationEdges holds the relations/edges for other nodes in the graph.
type ConversationEdges struct {
	// Listing holds the value of the listing edge.
	Listing *Listing `json:"listing,omitempty"`
	// Buyer holds the value of the buyer edge.
	Buyer *User `json:"buyer,omitempty"`
	// Seller holds the value of the seller edge.
	Seller *User `json:"seller,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*Message `json:"messages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ListingOrErr returns the Listing value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConversationEdges) ListingOrErr() (*Listing, error) {
	if e.Listing != nil {
		return e.Listing, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: listing.Label}
	}
	return nil, &NotLoadedError{edge: "listing"}
}

// BuyerOrErr returns the Buyer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConversationEdges) BuyerOrErr() (*User, error) {
	if e.Buyer != nil {
		return e.Buyer, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "buyer"}
}

// SellerOrErr returns the Seller value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConversationEdges) SellerOrErr() (*User, error) {
	if e.Seller != nil {
		return e.Seller, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "seller"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e ConversationEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[3] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Conversation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conversation.FieldCreatedAt, conversation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case conversation.FieldID:
			values[i] = new(uuid.UUID)
		case conversation.ForeignKeys[0]: // conversation_buyer
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case conversation.ForeignKeys[1]: // conversation_seller
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case conversation.ForeignKeys[2]: // listing_conversations
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Conversation fields.
func (_m *Conversation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conversation.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case conversation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case conversation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case conversation.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_buyer", values[i])
			} else if value.Valid {
				_m.conversation_buyer = new(uuid.UUID)
				*_m.conversation_buyer = *value.S.(*uuid.UUID)
			}
		case conversation.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_seller", values[i])
			} else if value.Valid {
				_m.conversation_seller = new(uuid.UUID)
				*_m.conversation_seller = *value.S.(*uuid.UUID)
			}
		case conversation.ForeignKeys[2]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field listing_conversations", values[i])
			} else if value.Valid {
				_m.listing_conversations = new(uuid.UUID)
				*_m.listing_conversations = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Conversation.
// This includes values selected through modifiers, order, etc.
func (_m *Conversation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryListing queries the "listing" edge of the Conversation entity.
func (_m *Conversation) QueryListing() *ListingQuery {
	return NewConversationClient(_m.config).QueryListing(_m)
}

// QueryBuyer queries the "buyer" edge of the Conversation entity.
func (_m *Conversation) QueryBuyer() *UserQuery {
	return NewConversationClient(_m.config).QueryBuyer(_m)
}

// QuerySeller queries the "seller" edge of the Conversation entity.
func (_m *Conversation) QuerySeller() *UserQuery {
	return NewConversationClient(_m.config).QuerySeller(_m)
}

// QueryMessages queries the "messages" edge of the Conversation entity.
func (_m *Conversation) QueryMessages() *MessageQuery {
	return NewConversationClient(_m.config).QueryMessages(_m)
}

// Update returns a builder for updating this Conversation.
// Note that you need to call Conversation.Unwrap() before calling this method if this Conversation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Conversation) Update() *ConversationUpdateOne {
	return NewConversationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Conversation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Conversation) Unwrap() *Conversation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Conversation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Conversation) String() string {
	var builder strings.Builder
	builder.WriteString("Conversation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Conversations is a parsable slice of Conversation.
type Conversations []*Conversation
