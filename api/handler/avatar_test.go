package handler_test

import (
	"encoding/base64"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gin-gonic/gin"

	"github.com/CyrilCartoux/watch-pros-sub004/api/handler"
	"github.com/CyrilCartoux/watch-pros-sub004/api/middleware"
	"github.com/CyrilCartoux/watch-pros-sub004/config"
	"github.com/CyrilCartoux/watch-pros-sub004/ent"
)

// Minimal valid 1x1 PNG.
var pngBytes = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4,
	0x89, 0x00, 0x00, 0x00, 0x0A, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9C, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44, 0xAE,
	0x42, 0x60, 0x82,
}

var _ = Describe("AvatarHandler", func() {
	var (
		router *gin.Engine
		user   *ent.User
	)

	userHeaders := map[string]string{"X-Api-Token": "user-token"}

	BeforeEach(func() {
		cleanDB()
		gin.SetMode(gin.TestMode)
		router = gin.New()
		h := handler.NewAvatarHandler(db)
		router.GET("/users/:userId/avatar", h.GetAvatar)
		auth := router.Group("/")
		auth.Use(middleware.Auth(db, config.Config{}))
		auth.POST("/users/me/avatar", h.UploadAvatar)
		auth.DELETE("/users/me/avatar", h.DeleteAvatar)

		user = createUser("dealer@watches.com", "dealerpass12", false)
		createSession(user, "user-token")
	})

	// ── Upload ────────────────────────────────────────────────────────────────

	Describe("UploadAvatar", func() {
		It("stores raw image bytes and serves them back", func() {
			w := doRawPost(router, "/users/me/avatar", pngBytes, "image/png", userHeaders)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			got := doGet(router, "/users/"+user.ID.String()+"/avatar")
			Expect(got.Code).To(Equal(http.StatusOK))
			Expect(got.Header().Get("Content-Type")).To(Equal("image/png"))
			Expect(got.Body.Bytes()).To(Equal(pngBytes))
		})

		It("accepts a base64 data URL", func() {
			dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
			w := doRawPost(router, "/users/me/avatar", []byte(dataURL), "text/plain", userHeaders)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			got := doGet(router, "/users/"+user.ID.String()+"/avatar")
			Expect(got.Code).To(Equal(http.StatusOK))
			Expect(got.Header().Get("Content-Type")).To(Equal("image/png"))
			Expect(got.Body.Bytes()).To(Equal(pngBytes))
		})

		It("accepts bare base64 without a data URL header", func() {
			encoded := base64.StdEncoding.EncodeToString(pngBytes)
			w := doRawPost(router, "/users/me/avatar", []byte(encoded), "text/plain", userHeaders)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			got := doGet(router, "/users/"+user.ID.String()+"/avatar")
			Expect(got.Code).To(Equal(http.StatusOK))
			Expect(got.Header().Get("Content-Type")).To(Equal("image/png"))
			Expect(got.Body.Bytes()).To(Equal(pngBytes))
		})

		It("sniffs the content type when the header lies", func() {
			w := doRawPost(router, "/users/me/avatar", pngBytes, "application/octet-stream", userHeaders)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			got := doGet(router, "/users/"+user.ID.String()+"/avatar")
			Expect(got.Header().Get("Content-Type")).To(Equal("image/png"))
		})

		It("rejects non-image bodies with 415", func() {
			w := doRawPost(router, "/users/me/avatar", []byte("definitely not an image"), "text/plain", userHeaders)
			Expect(w.Code).To(Equal(http.StatusUnsupportedMediaType))
		})

		It("rejects data URLs with a non-image media type", func() {
			dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte("<html></html>"))
			w := doRawPost(router, "/users/me/avatar", []byte(dataURL), "text/plain", userHeaders)
			Expect(w.Code).To(Equal(http.StatusUnsupportedMediaType))
		})

		It("rejects oversized uploads with 413", func() {
			big := make([]byte, len(pngBytes), 3<<20)
			copy(big, pngBytes)
			big = big[:3<<20]
			w := doRawPost(router, "/users/me/avatar", big, "image/png", userHeaders)
			Expect(w.Code).To(Equal(http.StatusRequestEntityTooLarge))
		})

		It("requires authentication", func() {
			w := doRawPost(router, "/users/me/avatar", pngBytes, "image/png")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	// ── Get ───────────────────────────────────────────────────────────────────

	Describe("GetAvatar", func() {
		It("returns 404 when the user has no avatar", func() {
			w := doGet(router, "/users/"+user.ID.String()+"/avatar")
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 404 for an unknown user", func() {
			w := doGet(router, "/users/00000000-0000-0000-0000-000000000000/avatar")
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 400 for a malformed user ID", func() {
			w := doGet(router, "/users/not-a-uuid/avatar")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	// ── Delete ────────────────────────────────────────────────────────────────

	Describe("DeleteAvatar", func() {
		It("removes the stored avatar", func() {
			doRawPost(router, "/users/me/avatar", pngBytes, "image/png", userHeaders)

			w := doDelete(router, "/users/me/avatar", userHeaders)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			got := doGet(router, "/users/"+user.ID.String()+"/avatar")
			Expect(got.Code).To(Equal(http.StatusNotFound))
		})

		It("is a no-op without an avatar", func() {
			w := doDelete(router, "/users/me/avatar", userHeaders)
			Expect(w.Code).To(Equal(http.StatusNoContent))
		})
	})
})
