package handler_test

import (
	"encoding/json"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gin-gonic/gin"

	"github.com/google/uuid"

	"github.com/CyrilCartoux/watch-pros-sub004/api/handler"
	"github.com/CyrilCartoux/watch-pros-sub004/api/middleware"
	"github.com/CyrilCartoux/watch-pros-sub004/config"
	"github.com/CyrilCartoux/watch-pros-sub004/ent"
)

var _ = Describe("CatalogHandler", func() {
	var router *gin.Engine

	// newRouter mounts a fresh handler (and therefore a fresh, empty cache)
	// with the given TTL.
	newRouter := func(ttl time.Duration) *gin.Engine {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		h := handler.NewCatalogHandler(db, config.Config{CatalogCacheTTL: ttl})
		r.GET("/brands", h.GetBrands)
		r.GET("/models", h.GetModels)
		admin := r.Group("/admin")
		admin.Use(middleware.Auth(db, config.Config{}), middleware.AdminOnly())
		admin.POST("/brands", h.CreateBrand)
		admin.POST("/models", h.CreateModel)
		return r
	}

	brandNames := func(w []byte) []string {
		var resp struct {
			Brands []struct {
				Name string `json:"name"`
			} `json:"brands"`
		}
		Expect(json.Unmarshal(w, &resp)).To(Succeed())
		names := make([]string, len(resp.Brands))
		for i, b := range resp.Brands {
			names[i] = b.Name
		}
		return names
	}

	BeforeEach(func() {
		cleanDB()
		router = newRouter(time.Hour)
	})

	// ── GetBrands ─────────────────────────────────────────────────────────────

	Describe("GetBrands", func() {
		It("returns all brands sorted by name", func() {
			createBrand("Rolex", true)
			createBrand("Audemars Piguet", false)

			w := doGet(router, "/brands")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(brandNames(w.Body.Bytes())).To(Equal([]string{"Audemars Piguet", "Rolex"}))
		})

		It("filters by popular", func() {
			createBrand("Rolex", true)
			createBrand("Tudor", false)

			w := doGet(router, "/brands?popular=true")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(brandNames(w.Body.Bytes())).To(Equal([]string{"Rolex"}))
		})

		It("filters by slugs, case-insensitively and order-independently", func() {
			createBrand("Rolex", true)
			createBrand("Omega", true)
			createBrand("Tudor", false)

			w := doGet(router, "/brands?slugs=TUDOR,rolex")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(brandNames(w.Body.Bytes())).To(Equal([]string{"Rolex", "Tudor"}))
		})

		It("returns 400 for a malformed popular value", func() {
			w := doGet(router, "/brands?popular=maybe")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("sets a Cache-Control header derived from the TTL", func() {
			w := doGet(router, "/brands")
			Expect(w.Header().Get("Cache-Control")).
				To(Equal("public, max-age=3600, stale-while-revalidate=7200"))
		})

		It("serves the cached payload until the TTL expires, even after a write", func() {
			createBrand("Rolex", true)

			w1 := doGet(router, "/brands")
			Expect(brandNames(w1.Body.Bytes())).To(Equal([]string{"Rolex"}))

			// A new brand appears in the database but not in the cached entry.
			createBrand("Omega", true)

			w2 := doGet(router, "/brands")
			Expect(brandNames(w2.Body.Bytes())).To(Equal([]string{"Rolex"}))
		})

		It("refreshes from the database after the TTL expires", func() {
			shortRouter := newRouter(30 * time.Millisecond)
			createBrand("Rolex", true)

			w1 := doGet(shortRouter, "/brands")
			Expect(brandNames(w1.Body.Bytes())).To(Equal([]string{"Rolex"}))

			createBrand("Omega", true)

			Eventually(func() []string {
				return brandNames(doGet(shortRouter, "/brands").Body.Bytes())
			}, time.Second, 10*time.Millisecond).Should(Equal([]string{"Omega", "Rolex"}))
		})

		It("caches distinct filter combinations independently", func() {
			createBrand("Rolex", true)
			createBrand("Tudor", false)

			Expect(brandNames(doGet(router, "/brands?popular=true").Body.Bytes())).
				To(Equal([]string{"Rolex"}))
			// The unfiltered request must not be served from the popular entry.
			Expect(brandNames(doGet(router, "/brands").Body.Bytes())).
				To(Equal([]string{"Rolex", "Tudor"}))
			Expect(brandNames(doGet(router, "/brands?popular=false").Body.Bytes())).
				To(Equal([]string{"Tudor"}))
		})

		It("caches an empty result set", func() {
			w1 := doGet(router, "/brands")
			Expect(w1.Code).To(Equal(http.StatusOK))
			Expect(brandNames(w1.Body.Bytes())).To(BeEmpty())

			// The empty payload was cached before this row existed.
			createBrand("Rolex", true)

			w2 := doGet(router, "/brands")
			Expect(brandNames(w2.Body.Bytes())).To(BeEmpty())
		})
	})

	// ── Backing-store failure ─────────────────────────────────────────────────

	Describe("when the backing store is unavailable", func() {
		var brokenRouter *gin.Engine

		BeforeEach(func() {
			// A client on an unmigrated database: every query fails.
			broken, err := ent.Open("sqlite3",
				"file:catalog_broken?mode=memory&cache=shared&_pragma=foreign_keys(1)")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(broken.Close)

			gin.SetMode(gin.TestMode)
			brokenRouter = gin.New()
			h := handler.NewCatalogHandler(broken, config.Config{CatalogCacheTTL: time.Hour})
			brokenRouter.GET("/brands", h.GetBrands)
			brokenRouter.GET("/models", h.GetModels)
		})

		It("returns a 500 JSON error without advertising freshness", func() {
			w := doGet(brokenRouter, "/brands")

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			var resp map[string]string
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["error"]).To(Equal("failed to list brands"))
			Expect(w.Header().Get("Cache-Control")).To(BeEmpty())
		})

		It("caches nothing on failure", func() {
			Expect(doGet(brokenRouter, "/brands").Code).To(Equal(http.StatusInternalServerError))
			// A cached entry would be served as a 200 here.
			Expect(doGet(brokenRouter, "/brands").Code).To(Equal(http.StatusInternalServerError))
		})

		It("handles model queries the same way", func() {
			target := "/models?brand_id=" + uuid.NewString()

			w := doGet(brokenRouter, target)
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Header().Get("Cache-Control")).To(BeEmpty())

			Expect(doGet(brokenRouter, target).Code).To(Equal(http.StatusInternalServerError))
		})
	})

	// ── GetModels ─────────────────────────────────────────────────────────────

	Describe("GetModels", func() {
		It("returns the models of the requested brand sorted by name", func() {
			rolex := createBrand("Rolex", true)
			omega := createBrand("Omega", true)
			createModel(rolex, "Submariner")
			createModel(rolex, "Daytona")
			createModel(omega, "Speedmaster")

			w := doGet(router, "/models?brand_id="+rolex.ID.String())

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp struct {
				Models []struct {
					Name string `json:"name"`
				} `json:"models"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Models).To(HaveLen(2))
			Expect(resp.Models[0].Name).To(Equal("Daytona"))
			Expect(resp.Models[1].Name).To(Equal("Submariner"))
		})

		It("returns 400 when brand_id is missing", func() {
			w := doGet(router, "/models")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 when brand_id is not a UUID", func() {
			w := doGet(router, "/models?brand_id=not-a-uuid")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("caches per brand", func() {
			rolex := createBrand("Rolex", true)
			omega := createBrand("Omega", true)
			createModel(rolex, "Submariner")
			createModel(omega, "Speedmaster")

			w1 := doGet(router, "/models?brand_id="+rolex.ID.String())
			Expect(w1.Body.String()).To(ContainSubstring("Submariner"))

			w2 := doGet(router, "/models?brand_id="+omega.ID.String())
			Expect(w2.Body.String()).To(ContainSubstring("Speedmaster"))
			Expect(w2.Body.String()).NotTo(ContainSubstring("Submariner"))
		})
	})

	// ── Admin catalog management ──────────────────────────────────────────────

	Describe("CreateBrand", func() {
		var adminHeaders map[string]string

		BeforeEach(func() {
			admin := createUser("admin@example.com", "adminpass1", true)
			createSession(admin, "admin-token")
			adminHeaders = map[string]string{"X-Api-Token": "admin-token"}
		})

		It("creates a brand with a derived slug", func() {
			w := doPost(router, "/admin/brands",
				map[string]interface{}{"name": "Audemars Piguet", "country": "CH", "popular": true},
				adminHeaders,
			)

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["slug"]).To(Equal("audemars-piguet"))
		})

		It("returns 409 for a duplicate brand", func() {
			createBrand("Rolex", true)

			w := doPost(router, "/admin/brands", map[string]string{"name": "Rolex"}, adminHeaders)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("rejects non-admin callers", func() {
			user := createUser("user@example.com", "userpass12", false)
			createSession(user, "user-token")

			w := doPost(router, "/admin/brands", map[string]string{"name": "Rolex"},
				map[string]string{"X-Api-Token": "user-token"})

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("CreateModel", func() {
		var adminHeaders map[string]string

		BeforeEach(func() {
			admin := createUser("admin@example.com", "adminpass1", true)
			createSession(admin, "admin-token")
			adminHeaders = map[string]string{"X-Api-Token": "admin-token"}
		})

		It("creates a model under an existing brand", func() {
			rolex := createBrand("Rolex", true)

			w := doPost(router, "/admin/models",
				map[string]interface{}{"brand_id": rolex.ID, "name": "GMT-Master II", "reference": "126710BLRO"},
				adminHeaders,
			)

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["slug"]).To(Equal("gmt-master-ii"))
		})

		It("returns 404 for an unknown brand", func() {
			w := doPost(router, "/admin/models",
				map[string]interface{}{"brand_id": "5f6d3c0a-98f8-4f76-9aee-0a2b8a6f4a11", "name": "Nautilus"},
				adminHeaders,
			)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 409 for a duplicate model within the same brand", func() {
			rolex := createBrand("Rolex", true)
			createModel(rolex, "Submariner")

			w := doPost(router, "/admin/models",
				map[string]interface{}{"brand_id": rolex.ID, "name": "Submariner"},
				adminHeaders,
			)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("allows the same model name under a different brand", func() {
			rolex := createBrand("Rolex", true)
			omega := createBrand("Omega", true)
			createModel(rolex, "Heritage")

			w := doPost(router, "/admin/models",
				map[string]interface{}{"brand_id": omega.ID, "name": "Heritage"},
				adminHeaders,
			)

			Expect(w.Code).To(Equal(http.StatusCreated))
		})
	})
})
