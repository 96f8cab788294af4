package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Offer is a buyer's price proposal on a listing.
type Offer struct {
	ent.Schema
}

func (Offer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Int64("amount_cents").
			Positive(),
		field.String("currency").
			Default("EUR"),
		field.String("message").
			Optional(),
		field.Enum("status").
			Values("pending", "accepted", "declined", "withdrawn").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Offer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("listing", Listing.Type).
			Ref("offers").
			Unique().
			Required(),
		edge.To("buyer", User.Type).
			Unique().
			Required(),
	}
}
