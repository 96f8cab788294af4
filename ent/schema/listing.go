package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Listing is a watch offered for sale by a verified seller.
type Listing struct {
	ent.Schema
}

func (Listing) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("title").
			NotEmpty(),
		field.String("description").
			Optional(),
		// Price in minor units (cents) to avoid floating-point money.
		field.Int64("price_cents").
			Positive(),
		field.String("currency").
			Default("EUR"),
		field.Enum("condition").
			Values("new", "unworn", "very_good", "good", "fair").
			Default("very_good"),
		// Production year, when known.
		field.Int("year").
			Optional(),
		field.Enum("status").
			Values("draft", "active", "sold", "suspended").
			Default("active"),
		// Unique-view counter maintained by the view recorder. Incremented
		// atomically in the same transaction as the ListingView insert.
		field.Int64("views_count").
			Default(0).
			NonNegative(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Listing) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("seller", User.Type).
			Ref("listings").
			Unique().
			Required(),
		edge.From("brand", Brand.Type).
			Ref("listings").
			Unique().
			Required(),
		edge.From("model", Model.Type).
			Ref("listings").
			Unique(),
		edge.To("views", ListingView.Type),
		edge.To("offers", Offer.Type),
		edge.To("conversations", Conversation.Type),
		edge.To("favorites", Favorite.Type),
	}
}
