package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gin-gonic/gin"

	"github.com/CyrilCartoux/watch-pros-sub004/api/middleware"
	"github.com/CyrilCartoux/watch-pros-sub004/config"
	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	entsession "github.com/CyrilCartoux/watch-pros-sub004/ent/session"
)

// newCtx builds a gin context around a plain GET request so the token
// extraction helpers can be exercised without a full router.
func newCtx(mutate func(*http.Request)) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	if mutate != nil {
		mutate(req)
	}
	c.Request = req
	return c, w
}

var _ = Describe("ExtractToken", func() {
	It("prefers the Authorization bearer header", func() {
		c, _ := newCtx(func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer from-bearer")
			r.Header.Set("X-Api-Token", "from-header")
		})
		Expect(middleware.ExtractToken(c)).To(Equal("from-bearer"))
	})

	It("falls back to the X-Api-Token header", func() {
		c, _ := newCtx(func(r *http.Request) {
			r.Header.Set("X-Api-Token", "from-header")
			r.URL.RawQuery = "token=from-query"
		})
		Expect(middleware.ExtractToken(c)).To(Equal("from-header"))
	})

	It("falls back to the token query parameter", func() {
		c, _ := newCtx(func(r *http.Request) {
			r.URL.RawQuery = "token=from-query"
		})
		Expect(middleware.ExtractToken(c)).To(Equal("from-query"))
	})

	It("ignores a malformed Authorization header", func() {
		c, _ := newCtx(func(r *http.Request) {
			r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
			r.Header.Set("X-Api-Token", "from-header")
		})
		Expect(middleware.ExtractToken(c)).To(Equal("from-header"))
	})

	It("returns empty when no token is present", func() {
		c, _ := newCtx(nil)
		Expect(middleware.ExtractToken(c)).To(BeEmpty())
	})
})

var _ = Describe("Auth", func() {
	var (
		router *gin.Engine
		user   *ent.User
	)

	newRouter := func(cfg config.Config) *gin.Engine {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/protected", middleware.Auth(db, cfg), func(c *gin.Context) {
			u := c.MustGet(middleware.ContextKeyUser).(*ent.User)
			c.JSON(http.StatusOK, gin.H{"email": u.Email})
		})
		return r
	}

	get := func(r *gin.Engine, token string) *httptest.ResponseRecorder {
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		if token != "" {
			req.Header.Set("X-Api-Token", token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		cleanDB()
		router = newRouter(config.Config{})
		user = createUser("auth@dealer.com", false)
		createSession(user, "valid-token")
	})

	It("loads the session user into the context", func() {
		w := get(router, "valid-token")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("auth@dealer.com"))
	})

	It("rejects requests without a token", func() {
		w := get(router, "")
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("rejects unknown tokens", func() {
		w := get(router, "no-such-token")
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("rejects and deletes sessions idle past the TTL", func() {
		ttlRouter := newRouter(config.Config{SessionTTL: time.Hour})
		session := createSession(user, "stale-token")
		err := db.Session.UpdateOneID(session.ID).
			SetLastActivity(time.Now().Add(-2 * time.Hour)).
			Exec(context.Background())
		Expect(err).NotTo(HaveOccurred())

		w := get(ttlRouter, "stale-token")
		Expect(w.Code).To(Equal(http.StatusUnauthorized))

		exists, err := db.Session.Query().
			Where(entsession.Token("stale-token")).
			Exist(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeFalse())
	})

	It("refreshes last_activity only after the debounce interval", func() {
		session := createSession(user, "debounce-token")
		old := time.Now().Add(-10 * time.Minute)
		err := db.Session.UpdateOneID(session.ID).
			SetLastActivity(old).
			Exec(context.Background())
		Expect(err).NotTo(HaveOccurred())

		get(router, "debounce-token")

		refreshed, err := db.Session.Query().
			Where(entsession.Token("debounce-token")).
			Only(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(refreshed.LastActivity).To(BeTemporally("~", time.Now(), time.Minute))

		// A second request within the debounce window leaves it untouched.
		firstActivity := refreshed.LastActivity
		get(router, "debounce-token")
		again, err := db.Session.Query().
			Where(entsession.Token("debounce-token")).
			Only(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(again.LastActivity).To(BeTemporally("==", firstActivity))
	})
})

var _ = Describe("ResolveUser", func() {
	BeforeEach(func() {
		cleanDB()
	})

	It("returns the session user for a live token", func() {
		user := createUser("resolve@dealer.com", false)
		createSession(user, "resolve-token")

		c, _ := newCtx(func(r *http.Request) {
			r.Header.Set("X-Api-Token", "resolve-token")
		})
		resolved := middleware.ResolveUser(c, db, config.Config{SessionTTL: time.Hour})
		Expect(resolved).NotTo(BeNil())
		Expect(resolved.ID).To(Equal(user.ID))
	})

	It("returns nil without a token or for an unknown one", func() {
		c, _ := newCtx(nil)
		Expect(middleware.ResolveUser(c, db, config.Config{})).To(BeNil())

		c, _ = newCtx(func(r *http.Request) {
			r.Header.Set("X-Api-Token", "no-such-token")
		})
		Expect(middleware.ResolveUser(c, db, config.Config{})).To(BeNil())
	})

	It("treats a session idle past the TTL as invalid, like Auth", func() {
		user := createUser("stale@dealer.com", false)
		sess := createSession(user, "stale-token")
		sess.Update().
			SetLastActivity(time.Now().Add(-2 * time.Hour)).
			ExecX(context.Background())

		c, _ := newCtx(func(r *http.Request) {
			r.Header.Set("X-Api-Token", "stale-token")
		})
		Expect(middleware.ResolveUser(c, db, config.Config{SessionTTL: time.Hour})).To(BeNil())

		// Resolving is read-only: the expired session row is left in place.
		Expect(db.Session.Query().
			Where(entsession.Token("stale-token")).
			CountX(context.Background())).To(Equal(1))
	})
})

var _ = Describe("AdminOnly", func() {
	newRouter := func() *gin.Engine {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/admin", middleware.Auth(db, config.Config{}), middleware.AdminOnly(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		// No Auth in front, so the user key is never set.
		r.GET("/broken", middleware.AdminOnly(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	get := func(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("X-Api-Token", token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	BeforeEach(cleanDB)

	It("admits admins", func() {
		admin := createUser("admin@watchpros.local", true)
		createSession(admin, "admin-token")
		Expect(get(newRouter(), "/admin", "admin-token").Code).To(Equal(http.StatusOK))
	})

	It("rejects regular users with 403", func() {
		user := createUser("user@dealer.com", false)
		createSession(user, "user-token")
		Expect(get(newRouter(), "/admin", "user-token").Code).To(Equal(http.StatusForbidden))
	})

	It("rejects requests that skipped Auth with 401", func() {
		Expect(get(newRouter(), "/broken", "").Code).To(Equal(http.StatusUnauthorized))
	})
})

var _ = Describe("LoginRateLimiter", func() {
	cfg := config.Config{
		LoginMaxAttempts: 3,
		LoginWindow:      time.Minute,
		LoginBanDuration: time.Hour,
	}

	newRouter := func(cfg config.Config) (*gin.Engine, func(string), func(string), func()) {
		gin.SetMode(gin.TestMode)
		mw, onFailure, onSuccess, stop := middleware.LoginRateLimiter(cfg)
		r := gin.New()
		r.POST("/auth/login", mw, func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r, onFailure, onSuccess, stop
	}

	attempt := func(r *gin.Engine) *httptest.ResponseRecorder {
		req, _ := http.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	It("bans an IP after repeated failures", func() {
		r, onFailure, _, stop := newRouter(cfg)
		defer stop()

		for i := 0; i < 3; i++ {
			Expect(attempt(r).Code).To(Equal(http.StatusOK))
			onFailure("10.0.0.1")
		}

		Expect(attempt(r).Code).To(Equal(http.StatusTooManyRequests))
	})

	It("clears the failure count on success", func() {
		r, onFailure, onSuccess, stop := newRouter(cfg)
		defer stop()

		onFailure("10.0.0.1")
		onFailure("10.0.0.1")
		onSuccess("10.0.0.1")
		onFailure("10.0.0.1")
		onFailure("10.0.0.1")

		Expect(attempt(r).Code).To(Equal(http.StatusOK))
	})

	It("tracks IPs independently", func() {
		r, onFailure, _, stop := newRouter(cfg)
		defer stop()

		for i := 0; i < 3; i++ {
			onFailure("10.0.0.9")
		}

		Expect(attempt(r).Code).To(Equal(http.StatusOK))
	})

	It("is disabled when max attempts is zero", func() {
		r, onFailure, _, stop := newRouter(config.Config{})
		defer stop()

		for i := 0; i < 10; i++ {
			onFailure("10.0.0.1")
		}

		Expect(attempt(r).Code).To(Equal(http.StatusOK))
	})
})
