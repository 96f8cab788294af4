package handler

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	entnotification "github.com/CyrilCartoux/watch-pros-sub004/ent/notification"
)

// Notifier persists notifications and pushes them to connected WebSocket
// clients. Delivery is best-effort: a failed insert is logged and swallowed
// so a notification hiccup never fails the business operation that caused it.
type Notifier struct {
	db  *ent.Client
	hub *WSHub
}

func NewNotifier(db *ent.Client, hub *WSHub) *Notifier {
	return &Notifier{db: db, hub: hub}
}

// Notify creates a notification row for the user and pushes it over any open
// WebSocket connections.
func (n *Notifier) Notify(ctx context.Context, userID uuid.UUID, typ entnotification.Type, body string) {
	row, err := n.db.Notification.Create().
		SetUserID(userID).
		SetType(typ).
		SetBody(body).
		Save(ctx)
	if err != nil {
		slog.Warn("notifier: failed to persist notification",
			"user_id", userID, "type", typ, "error", err)
		return
	}

	n.hub.Push(userID, gin.H{
		"id":         row.ID,
		"type":       row.Type,
		"body":       row.Body,
		"read":       row.Read,
		"created_at": row.CreatedAt,
	})
}
