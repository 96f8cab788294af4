package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Favorite marks a listing as saved by a user.
type Favorite struct {
	ent.Schema
}

func (Favorite) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Favorite) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("favorites").
			Unique().
			Required(),
		edge.From("listing", Listing.Type).
			Ref("favorites").
			Unique().
			Required(),
	}
}

func (Favorite) Indexes() []ent.Index {
	return []ent.Index{
		// One favorite per (user, listing).
		index.Edges("user", "listing").
			Unique(),
	}
}
