package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Conversation is a message thread between a buyer and the seller of a
// listing. A buyer has at most one conversation per listing.
type Conversation struct {
	ent.Schema
}

func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("listing", Listing.Type).
			Ref("conversations").
			Unique().
			Required(),
		edge.To("buyer", User.Type).
			Unique().
			Required(),
		edge.To("seller", User.Type).
			Unique().
			Required(),
		edge.To("messages", Message.Type),
	}
}

func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("listing", "buyer").
			Unique(),
	}
}
