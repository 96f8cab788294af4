package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Subscription mirrors a seller's plan at the external billing provider.
// The provider owns payment state; this row caches plan, seat count and the
// provider's subscription ID so the app can enforce seat limits locally.
type Subscription struct {
	ent.Schema
}

func (Subscription) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Enum("plan").
			Values("basic", "pro", "elite"),
		field.Int("seats").
			Default(1).
			Positive(),
		field.Enum("status").
			Values("active", "past_due", "canceled").
			Default("active"),
		// The subscription ID at the billing provider.
		field.String("provider_id").
			NotEmpty(),
		field.Time("current_period_end").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Subscription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("subscription").
			Unique().
			Required(),
	}
}
