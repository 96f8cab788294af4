package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Model is a watch model belonging to a Brand (e.g. Submariner, Speedmaster).
type Model struct {
	ent.Schema
}

func (Model) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("name").
			NotEmpty(),
		// URL-safe identifier, unique within its brand.
		field.String("slug").
			NotEmpty(),
		// Manufacturer reference number, e.g. "126610LN".
		field.String("reference").
			Optional(),
		field.Bool("popular").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Model) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("brand", Brand.Type).
			Ref("models").
			Unique().
			Required(),
		edge.To("listings", Listing.Type),
	}
}

func (Model) Indexes() []ent.Index {
	return []ent.Index{
		// Slugs only need to be unique per brand.
		index.Fields("slug").
			Edges("brand").
			Unique(),
	}
}
