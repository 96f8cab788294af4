package handler

import (
	"net/http"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	entnotification "github.com/CyrilCartoux/watch-pros-sub004/ent/notification"
	entuser "github.com/CyrilCartoux/watch-pros-sub004/ent/user"
)

// notificationPageSize caps a single notification list response.
const notificationPageSize = 100

// NotificationHandler serves the persisted notification feed.
type NotificationHandler struct {
	db *ent.Client
}

func NewNotificationHandler(db *ent.Client) *NotificationHandler {
	return &NotificationHandler{db: db}
}

type notificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ListNotifications handles GET /notifications?unread=<bool>.
// Newest first, with the unread count alongside so clients can badge without
// a second request.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	caller := userFromCtx(c)
	ctx := c.Request.Context()

	q := h.db.Notification.Query().
		Where(entnotification.HasUserWith(entuser.IDEQ(caller.ID))).
		Order(entnotification.ByCreatedAt(sql.OrderDesc())).
		Limit(notificationPageSize)
	if c.Query("unread") == "true" {
		q = q.Where(entnotification.Read(false))
	}

	rows, err := q.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications"})
		return
	}

	unread, err := h.db.Notification.Query().
		Where(
			entnotification.HasUserWith(entuser.IDEQ(caller.ID)),
			entnotification.Read(false),
		).
		Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count notifications"})
		return
	}

	resp := make([]notificationResponse, len(rows))
	for i, n := range rows {
		resp[i] = notificationResponse{
			ID:        n.ID,
			Type:      string(n.Type),
			Body:      n.Body,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": resp, "unread_count": unread})
}

// MarkRead handles POST /notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	caller := userFromCtx(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification ID"})
		return
	}

	n, err := h.db.Notification.Update().
		Where(
			entnotification.IDEQ(id),
			entnotification.HasUserWith(entuser.IDEQ(caller.ID)),
		).
		SetRead(true).
		Save(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark notification read"})
		return
	}
	if n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkAllRead handles POST /notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	caller := userFromCtx(c)

	_, err := h.db.Notification.Update().
		Where(
			entnotification.HasUserWith(entuser.IDEQ(caller.ID)),
			entnotification.Read(false),
		).
		SetRead(true).
		Save(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark notifications read"})
		return
	}
	c.Status(http.StatusNoContent)
}
