package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/CyrilCartoux/watch-pros-sub004/api/middleware"
	"github.com/CyrilCartoux/watch-pros-sub004/config"
	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	"github.com/CyrilCartoux/watch-pros-sub004/views"
)

// ViewHandler records unique listing views.
type ViewHandler struct {
	db       *ent.Client
	cfg      config.Config
	recorder *views.Recorder
}

func NewViewHandler(db *ent.Client, cfg config.Config, recorder *views.Recorder) *ViewHandler {
	return &ViewHandler{db: db, cfg: cfg, recorder: recorder}
}

// RecordView handles POST /listings/:id/view.
// The route carries no Auth middleware: authenticated viewers are keyed by
// their user ID, anonymous ones by a hash of IP and user agent, so every
// visit can be counted. Repeat views inside the dedup window answer
// {"viewed": false} without touching the counter.
func (h *ViewHandler) RecordView(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing ID"})
		return
	}

	var viewerKey string
	if user := middleware.ResolveUser(c, h.db, h.cfg); user != nil {
		viewerKey = user.ID.String()
	} else {
		viewerKey = views.AnonymousKey(middleware.ClientIP(c), c.Request.UserAgent())
	}

	recorded, err := h.recorder.Record(c.Request.Context(), listingID, viewerKey)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record view"})
		return
	}

	if !recorded {
		c.JSON(http.StatusOK, gin.H{"viewed": false, "reason": "Already viewed recently"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"viewed": true})
}
