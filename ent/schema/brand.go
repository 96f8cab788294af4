package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Brand is a watch manufacturer in the catalog (e.g. Rolex, Omega).
// The catalog is read-mostly: rows are created by admins and served to every
// visitor through the TTL response cache.
type Brand struct {
	ent.Schema
}

func (Brand) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("name").
			NotEmpty(),
		// URL-safe identifier, e.g. "audemars-piguet". Used in catalog filters.
		field.String("slug").
			Unique().
			NotEmpty(),
		field.String("country").
			Optional(),
		// Popular brands are surfaced on the landing page.
		field.Bool("popular").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Brand) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("models", Model.Type),
		edge.To("listings", Listing.Type),
	}
}
