package handler

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/CyrilCartoux/watch-pros-sub004/ent"
)

const maxAvatarBytes = 2 << 20 // 2 MiB

// AvatarHandler serves and stores account avatars (dealer logos) in the DB.
type AvatarHandler struct {
	db *ent.Client
}

func NewAvatarHandler(db *ent.Client) *AvatarHandler {
	return &AvatarHandler{db: db}
}

// GetAvatar handles GET /users/:userId/avatar.
// Public — avatars appear on listings and in conversations.
func (h *AvatarHandler) GetAvatar(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	user, err := h.db.User.Get(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	if user.Avatar == nil || len(*user.Avatar) == 0 {
		c.Status(http.StatusNotFound)
		return
	}
	ct := "image/jpeg"
	if user.AvatarContentType != nil && *user.AvatarContentType != "" {
		ct = *user.AvatarContentType
	}
	c.Data(http.StatusOK, ct, *user.Avatar)
}

// UploadAvatar handles POST /users/me/avatar.
// The web frontend sends cropped images as data URLs; API clients may send
// raw binary. Content type is sniffed, never trusted from the header alone.
func (h *AvatarHandler) UploadAvatar(c *gin.Context) {
	caller := userFromCtx(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	lr := io.LimitReader(c.Request.Body, maxAvatarBytes*2) // data URLs are ~4/3 raw size
	raw, err := io.ReadAll(lr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}
	if len(raw) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty body"})
		return
	}

	data, ct, ok := decodeImageBody(raw, c.GetHeader("Content-Type"))
	if !ok {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "body must be an image"})
		return
	}
	if int64(len(data)) > maxAvatarBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "avatar must be <= 2 MiB"})
		return
	}

	_, err = h.db.User.UpdateOneID(caller.ID).
		SetAvatar(data).
		SetAvatarContentType(ct).
		Save(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save avatar"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAvatar handles DELETE /users/me/avatar.
func (h *AvatarHandler) DeleteAvatar(c *gin.Context) {
	caller := userFromCtx(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	_, err := h.db.User.UpdateOneID(caller.ID).
		ClearAvatar().
		ClearAvatarContentType().
		Save(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete avatar"})
		return
	}
	c.Status(http.StatusNoContent)
}

// decodeImageBody accepts a raw body that may be:
//  1. A data URL:  "data:image/png;base64,<b64data>"
//  2. Bare base64 text (no header) — the web frontend's cropper sends this
//  3. Raw binary bytes
//
// Returns the decoded image bytes, content-type, and whether it was valid.
func decodeImageBody(body []byte, headerCT string) ([]byte, string, bool) {
	s := strings.TrimSpace(string(body))

	// Case 1: data URL.
	if strings.HasPrefix(s, "data:") {
		comma := strings.Index(s, ",")
		if comma == -1 {
			return nil, "", false
		}
		meta := s[5:comma] // everything between "data:" and ","
		ct := strings.SplitN(meta, ";", 2)[0]
		if !strings.HasPrefix(ct, "image/") {
			return nil, "", false
		}
		decoded, err := base64.StdEncoding.DecodeString(s[comma+1:])
		if err != nil {
			decoded, err = base64.RawStdEncoding.DecodeString(s[comma+1:])
			if err != nil {
				return nil, "", false
			}
		}
		return decoded, ct, true
	}

	// Case 2: bare base64 — every byte is in the base64 alphabet.
	if looksLikeBase64(s) {
		decoded, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			decoded, err = base64.RawStdEncoding.DecodeString(s)
		}
		if err == nil {
			if ct := sniffImageType(decoded, headerCT); ct != "" {
				return decoded, ct, true
			}
			return nil, "", false
		}
		// Not valid base64 after all — fall through to binary.
	}

	// Case 3: raw binary.
	ct := sniffImageType(body, headerCT)
	if ct == "" {
		return nil, "", false
	}
	return body, ct, true
}

// looksLikeBase64 reports whether every character of s is in the standard
// base64 alphabet. Image magic bytes are never valid base64 text, so this
// cheaply separates encoded uploads from raw binary ones.
func looksLikeBase64(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '+' || r == '/' || r == '=' || r == '\n' || r == '\r':
		default:
			return false
		}
	}
	return true
}

// sniffImageType returns the content-type of image bytes, preferring the
// provided header value when it is already an image/* type, and falling back
// to mimetype.Detect which recognises more formats than the stdlib (WebP,
// AVIF, HEIC, etc.). Returns "" when neither is an image.
func sniffImageType(data []byte, headerCT string) string {
	mimeType := strings.SplitN(headerCT, ";", 2)[0]
	if strings.HasPrefix(mimeType, "image/") {
		return mimeType
	}
	detected := mimetype.Detect(data)
	if strings.HasPrefix(detected.String(), "image/") {
		return detected.String()
	}
	return ""
}
