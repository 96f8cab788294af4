package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CyrilCartoux/watch-pros-sub004/config"
	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	entsession "github.com/CyrilCartoux/watch-pros-sub004/ent/session"
)

const (
	ContextKeyUser    = "user"
	ContextKeySession = "session"
)

// ExtractToken retrieves the session token from the request, in priority order:
//  1. Authorization: Bearer <token>
//  2. X-Api-Token header
//  3. token query parameter (WebSocket connections can't set headers)
func ExtractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok && token != "" {
			return token
		}
	}
	if token := c.GetHeader("X-Api-Token"); token != "" {
		return token
	}
	return c.Query("token")
}

// Auth validates the session token on every protected request, loads the
// associated user, and stores both in the gin context for downstream handlers.
// If cfg.SessionTTL > 0 sessions that have been idle longer than the TTL are
// rejected and deleted automatically.
func Auth(db *ent.Client, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		session, err := db.Session.Query().
			Where(entsession.Token(token)).
			WithUser().
			Only(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		// Enforce session TTL based on last activity.
		if cfg.SessionTTL > 0 && time.Since(session.LastActivity) > cfg.SessionTTL {
			// Delete the expired session so it doesn't accumulate.
			_ = db.Session.DeleteOne(session).Exec(c.Request.Context())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			return
		}

		// Debounce last-activity updates to avoid a DB write on every request.
		// Only update if the last recorded activity was more than 5 minutes ago.
		if time.Since(session.LastActivity) > 5*time.Minute {
			_ = session.Update().SetLastActivity(time.Now()).Exec(c.Request.Context())
		}

		c.Set(ContextKeyUser, session.Edges.User)
		c.Set(ContextKeySession, session)
		c.Next()
	}
}

// ResolveUser attempts to load the user behind the request's token without
// aborting on failure. Used on optional-auth routes (e.g. view recording)
// where anonymous requests are served too. Returns nil when the request
// carries no valid session. Sessions past cfg.SessionTTL count as invalid,
// same as in Auth, though deleting them is left to the protected routes.
func ResolveUser(c *gin.Context, db *ent.Client, cfg config.Config) *ent.User {
	token := ExtractToken(c)
	if token == "" {
		return nil
	}
	session, err := db.Session.Query().
		Where(entsession.Token(token)).
		WithUser().
		Only(c.Request.Context())
	if err != nil {
		return nil
	}
	if cfg.SessionTTL > 0 && time.Since(session.LastActivity) > cfg.SessionTTL {
		return nil
	}
	return session.Edges.User
}

// ClientIP extracts the client IP using Gin's built-in ClientIP method,
// which honours the engine's trusted-proxy configuration and safely handles
// X-Forwarded-For chains. Falls back to RemoteAddr when no proxy is trusted.
func ClientIP(c *gin.Context) string {
	return c.ClientIP()
}
