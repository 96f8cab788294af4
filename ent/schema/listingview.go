package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ListingView is the dedup record behind the unique-view counter: at most one
// row per (listing, viewer) within the rolling dedup window. Rows are never
// updated and never deleted — they form a historical view log.
type ListingView struct {
	ent.Schema
}

func (ListingView) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		// Authenticated viewers: the user ID string. Anonymous viewers: a
		// SHA-256 hex digest of ip|user-agent, so no raw PII is stored.
		field.String("viewer_key").
			NotEmpty().
			Immutable(),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable(),
		// recorded_at.Unix() divided by the window length in seconds. The
		// unique index below collapses concurrent inserts for the same viewer;
		// the rolling-window query in views.Recorder is the primary dedup check.
		field.Int64("window_bucket").
			Immutable(),
	}
}

func (ListingView) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("listing", Listing.Type).
			Ref("views").
			Unique().
			Required(),
	}
}

func (ListingView) Indexes() []ent.Index {
	return []ent.Index{
		// Backstop against the check-then-insert race: two concurrent inserts
		// for the same viewer and window land in the same bucket, and the
		// second one fails with a constraint error.
		index.Fields("viewer_key", "window_bucket").
			Edges("listing").
			Unique(),
		// Fast rolling-window lookups.
		index.Fields("viewer_key", "recorded_at").
			Edges("listing"),
	}
}
