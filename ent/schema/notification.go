package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Notification is a persisted in-app notification. New rows are also pushed
// to the recipient over WebSocket when they are connected.
type Notification struct {
	ent.Schema
}

func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Enum("type").
			Values("offer_received", "offer_accepted", "offer_declined",
				"message_received", "seller_approved", "seller_rejected"),
		field.String("body").
			NotEmpty(),
		field.Bool("read").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Notification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("notifications").
			Unique().
			Required(),
	}
}

func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		// Unread-count queries filter on (user, read).
		index.Fields("read").
			Edges("user"),
	}
}
