package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CyrilCartoux/watch-pros-sub004/ent"
)

// SystemHandler exposes liveness and readiness probes.
type SystemHandler struct {
	db *ent.Client
}

func NewSystemHandler(db *ent.Client) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health handles GET /health. Always 200 while the process is up.
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready handles GET /ready. Fails when the database is unreachable so load
// balancers stop routing traffic here during outages.
func (h *SystemHandler) Ready(c *gin.Context) {
	if _, err := h.db.User.Query().Count(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
