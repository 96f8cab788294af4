package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/CyrilCartoux/watch-pros-sub004/api/middleware"
	"github.com/CyrilCartoux/watch-pros-sub004/ent"
)

// userFromCtx extracts the authenticated user from the gin context.
func userFromCtx(c *gin.Context) *ent.User {
	u, _ := c.Get(middleware.ContextKeyUser)
	user, _ := u.(*ent.User)
	return user
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
