package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Session represents an access token issued to a client on login. Clients
// send it back as a bearer token on every authenticated request.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		// The opaque token value sent by clients in the Authorization header.
		field.String("token").
			Unique().
			NotEmpty().
			Sensitive(),
		field.String("user_agent").
			Optional(),
		field.String("ip").
			Optional(),
		field.Time("last_activity").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("sessions").
			Unique().
			Required(),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		// Fast token lookups on every authenticated request.
		index.Fields("token"),
	}
}
