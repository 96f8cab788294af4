package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/CyrilCartoux/watch-pros-sub004/api/middleware"
	"github.com/CyrilCartoux/watch-pros-sub004/config"
	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	entsession "github.com/CyrilCartoux/watch-pros-sub004/ent/session"
	entuser "github.com/CyrilCartoux/watch-pros-sub004/ent/user"
)

// BcryptCost is the bcrypt work factor used for all password hashing.
const BcryptCost = 12

type AuthHandler struct {
	db             *ent.Client
	cfg            config.Config
	onLoginFail    func(string)
	onLoginSuccess func(string)
}

func NewAuthHandler(db *ent.Client, cfg config.Config, onFail, onSuccess func(string)) *AuthHandler {
	return &AuthHandler{
		db:             db,
		cfg:            cfg,
		onLoginFail:    onFail,
		onLoginSuccess: onSuccess,
	}
}

type registerRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"display_name" binding:"required"`
	CompanyName string `json:"company_name"`
	Password    string `json:"password" binding:"required,min=8"`
}

// Register handles POST /auth/register.
// Creates the account and immediately opens a session so the client doesn't
// need a second round-trip to log in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), BcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user, err := h.db.User.Create().
		SetEmail(req.Email).
		SetDisplayName(req.DisplayName).
		SetCompanyName(req.CompanyName).
		SetHashedPassword(string(hash)).
		Save(c.Request.Context())
	if err != nil {
		if ent.IsConstraintError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	}

	token, err := h.openSession(c, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"user":  buildUserObject(user),
		"token": token,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}

// Login handles POST /auth/login.
// The login rate limiter middleware runs before this handler; the
// onLoginFail/onLoginSuccess callbacks feed its per-IP counters.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ip := middleware.ClientIP(c)

	user, err := h.db.User.Query().
		Where(entuser.Email(req.Email)).
		Only(c.Request.Context())
	if err != nil {
		h.onLoginFail(ip)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		h.onLoginFail(ip)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	h.onLoginSuccess(ip)

	token, err := h.openSession(c, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":  buildUserObject(user),
		"token": token,
	})
}

// Logout handles POST /auth/logout.
// It deletes the token so subsequent requests with it are rejected.
func (h *AuthHandler) Logout(c *gin.Context) {
	raw, exists := c.Get(middleware.ContextKeySession)
	if !exists {
		c.Status(http.StatusNoContent)
		return
	}
	session := raw.(*ent.Session)
	_ = h.db.Session.DeleteOne(session).Exec(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user := userFromCtx(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, buildUserObject(user))
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// UpdatePassword handles POST /auth/password.
// Users change only their own password and must prove the current one.
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	caller := userFromCtx(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(caller.HashedPassword), []byte(req.CurrentPassword)); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Current password is incorrect"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), BcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	if err := h.db.User.UpdateOneID(caller.ID).SetHashedPassword(string(hash)).Exec(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update password"})
		return
	}

	// Invalidate all other sessions so a compromised token cannot survive a
	// password change; the caller's current session stays valid.
	currentSession, _ := c.Get(middleware.ContextKeySession)
	if cs, ok := currentSession.(*ent.Session); ok {
		_, _ = h.db.Session.Delete().
			Where(
				entsession.HasUserWith(entuser.ID(caller.ID)),
				entsession.IDNEQ(cs.ID),
			).
			Exec(c.Request.Context())
	}

	c.Status(http.StatusNoContent)
}

// openSession issues a fresh session token for the user, recording the
// client's IP and user agent for the account's session list.
func (h *AuthHandler) openSession(c *gin.Context, user *ent.User) (string, error) {
	token := uuid.New().String()
	_, err := h.db.Session.Create().
		SetToken(token).
		SetUserAgent(c.Request.UserAgent()).
		SetIP(middleware.ClientIP(c)).
		SetUser(user).
		Save(c.Request.Context())
	if err != nil {
		return "", err
	}
	return token, nil
}

// buildUserObject is the public JSON shape of an account. The password hash
// and avatar bytes never leave the server through this path.
func buildUserObject(user *ent.User) gin.H {
	return gin.H{
		"id":           user.ID,
		"email":        user.Email,
		"display_name": user.DisplayName,
		"company_name": user.CompanyName,
		"is_admin":     user.IsAdmin,
		"created_at":   user.CreatedAt,
	}
}
