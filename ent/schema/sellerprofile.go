package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SellerProfile is a user's application to sell on the marketplace. Listings
// can only be created once an admin has verified the profile.
type SellerProfile struct {
	ent.Schema
}

func (SellerProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("company_name").
			NotEmpty(),
		field.String("country").
			NotEmpty(),
		field.String("vat_number").
			Optional(),
		field.Enum("status").
			Values("pending", "verified", "rejected").
			Default("pending"),
		// Reviewer note, e.g. a rejection reason.
		field.String("note").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (SellerProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("seller_profile").
			Unique().
			Required(),
	}
}
