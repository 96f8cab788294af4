package handler_test

import (
	"encoding/json"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gin-gonic/gin"

	"github.com/CyrilCartoux/watch-pros-sub004/api/handler"
	"github.com/CyrilCartoux/watch-pros-sub004/api/middleware"
	"github.com/CyrilCartoux/watch-pros-sub004/config"
	"github.com/CyrilCartoux/watch-pros-sub004/ent"
)

var _ = Describe("AuthHandler", func() {
	var router *gin.Engine

	BeforeEach(func() {
		cleanDB()
		gin.SetMode(gin.TestMode)
		router = gin.New()
		h := handler.NewAuthHandler(db, config.Config{}, func(string) {}, func(string) {})
		router.POST("/auth/register", h.Register)
		router.POST("/auth/login", h.Login)
		// Protected routes sit behind the Auth middleware so session validation
		// is exercised as part of the specs.
		auth := router.Group("/")
		auth.Use(middleware.Auth(db, config.Config{}))
		auth.GET("/auth/me", h.Me)
		auth.POST("/auth/logout", h.Logout)
		auth.POST("/auth/password", h.UpdatePassword)
	})

	// ── Register ──────────────────────────────────────────────────────────────

	Describe("Register", func() {
		It("creates the account and returns a usable session token", func() {
			w := doPost(router, "/auth/register", map[string]string{
				"email":        "alice@dealer.com",
				"display_name": "Alice",
				"company_name": "Alice Watches",
				"password":     "correctpass1",
			})

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp struct {
				Token string `json:"token"`
				User  struct {
					Email   string `json:"email"`
					IsAdmin bool   `json:"is_admin"`
				} `json:"user"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Token).NotTo(BeEmpty())
			Expect(resp.User.Email).To(Equal("alice@dealer.com"))
			Expect(resp.User.IsAdmin).To(BeFalse())

			// The returned token must immediately authenticate requests.
			w2 := doGet(router, "/auth/me", map[string]string{"X-Api-Token": resp.Token})
			Expect(w2.Code).To(Equal(http.StatusOK))
		})

		It("returns 409 for a duplicate email", func() {
			createUser("alice@dealer.com", "correctpass1", false)

			w := doPost(router, "/auth/register", map[string]string{
				"email":        "alice@dealer.com",
				"display_name": "Alice",
				"password":     "correctpass1",
			})

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("returns 400 for a malformed email", func() {
			w := doPost(router, "/auth/register", map[string]string{
				"email":        "not-an-email",
				"display_name": "Alice",
				"password":     "correctpass1",
			})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 for a password shorter than 8 characters", func() {
			w := doPost(router, "/auth/register", map[string]string{
				"email":        "alice@dealer.com",
				"display_name": "Alice",
				"password":     "short",
			})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	// ── Login ─────────────────────────────────────────────────────────────────

	Describe("Login", func() {
		Context("with valid credentials", func() {
			It("returns 200 with a token and the user object", func() {
				createUser("alice@dealer.com", "correctpass1", false)

				w := doPost(router, "/auth/login", map[string]string{
					"email":    "alice@dealer.com",
					"password": "correctpass1",
				})

				Expect(w.Code).To(Equal(http.StatusOK))
				var resp map[string]interface{}
				Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
				Expect(resp["token"]).NotTo(BeEmpty())
			})
		})

		Context("with a wrong password", func() {
			It("returns 401", func() {
				createUser("alice@dealer.com", "correctpass1", false)

				w := doPost(router, "/auth/login", map[string]string{
					"email":    "alice@dealer.com",
					"password": "wrongpass",
				})

				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		Context("with an unknown email", func() {
			It("returns 401", func() {
				w := doPost(router, "/auth/login", map[string]string{
					"email":    "nobody@dealer.com",
					"password": "whatever",
				})

				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		Context("when the email field is missing", func() {
			It("returns 400", func() {
				w := doPost(router, "/auth/login", map[string]string{
					"password": "somepassword",
				})

				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	// ── Me ────────────────────────────────────────────────────────────────────

	Describe("Me", func() {
		It("returns the caller's account without sensitive fields", func() {
			user := createUser("bob@dealer.com", "bobpassword", false)
			createSession(user, "bob-token")

			w := doGet(router, "/auth/me", map[string]string{"X-Api-Token": "bob-token"})

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["email"]).To(Equal("bob@dealer.com"))
			Expect(resp).NotTo(HaveKey("hashed_password"))
		})

		It("returns 401 without a token", func() {
			w := doGet(router, "/auth/me")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("accepts the token as an Authorization bearer header", func() {
			user := createUser("bob@dealer.com", "bobpassword", false)
			createSession(user, "bob-token")

			w := doGet(router, "/auth/me", map[string]string{"Authorization": "Bearer bob-token"})

			Expect(w.Code).To(Equal(http.StatusOK))
		})
	})

	// ── UpdatePassword ────────────────────────────────────────────────────────

	Describe("UpdatePassword", func() {
		var user *ent.User

		BeforeEach(func() {
			user = createUser("bob@dealer.com", "oldpassword1", false)
			createSession(user, "bob-token")
		})

		It("returns 204 and the new password logs in", func() {
			w := doPost(router, "/auth/password",
				map[string]string{"current_password": "oldpassword1", "new_password": "newpassword1"},
				map[string]string{"X-Api-Token": "bob-token"},
			)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			w2 := doPost(router, "/auth/login", map[string]string{
				"email":    "bob@dealer.com",
				"password": "newpassword1",
			})
			Expect(w2.Code).To(Equal(http.StatusOK))
		})

		It("returns 403 when the current password is wrong", func() {
			w := doPost(router, "/auth/password",
				map[string]string{"current_password": "wrongoldpass", "new_password": "newpassword1"},
				map[string]string{"X-Api-Token": "bob-token"},
			)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 400 when the new password is too short", func() {
			w := doPost(router, "/auth/password",
				map[string]string{"current_password": "oldpassword1", "new_password": "short"},
				map[string]string{"X-Api-Token": "bob-token"},
			)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("invalidates other sessions but keeps the caller's session", func() {
			createSession(user, "bob-token-2")

			w := doPost(router, "/auth/password",
				map[string]string{"current_password": "oldpassword1", "new_password": "newpassword1"},
				map[string]string{"X-Api-Token": "bob-token"},
			)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			// The caller's session still works.
			Expect(doGet(router, "/auth/me", map[string]string{"X-Api-Token": "bob-token"}).Code).
				To(Equal(http.StatusOK))
			// The other session is gone.
			Expect(doGet(router, "/auth/me", map[string]string{"X-Api-Token": "bob-token-2"}).Code).
				To(Equal(http.StatusUnauthorized))
		})
	})

	// ── Logout ────────────────────────────────────────────────────────────────

	Describe("Logout", func() {
		It("returns 204 and invalidates the token so subsequent requests are rejected", func() {
			user := createUser("charlie@dealer.com", "password123", false)
			createSession(user, "charlie-token")

			w := doPost(router, "/auth/logout", nil,
				map[string]string{"X-Api-Token": "charlie-token"})
			Expect(w.Code).To(Equal(http.StatusNoContent))

			// The same token is now gone — the auth middleware must reject it.
			w2 := doGet(router, "/auth/me",
				map[string]string{"X-Api-Token": "charlie-token"})
			Expect(w2.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
