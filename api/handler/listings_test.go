package handler_test

import (
	"context"
	"encoding/json"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gin-gonic/gin"

	"github.com/CyrilCartoux/watch-pros-sub004/api/handler"
	"github.com/CyrilCartoux/watch-pros-sub004/api/middleware"
	"github.com/CyrilCartoux/watch-pros-sub004/config"
	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	entlisting "github.com/CyrilCartoux/watch-pros-sub004/ent/listing"
	entsellerprofile "github.com/CyrilCartoux/watch-pros-sub004/ent/sellerprofile"
)

var _ = Describe("ListingHandler", func() {
	var (
		router *gin.Engine
		seller *ent.User
		brand  *ent.Brand
	)

	sellerHeaders := map[string]string{"X-Api-Token": "seller-token"}

	listingTitles := func(w []byte) []string {
		var resp struct {
			Listings []struct {
				Title string `json:"title"`
			} `json:"listings"`
		}
		Expect(json.Unmarshal(w, &resp)).To(Succeed())
		titles := make([]string, len(resp.Listings))
		for i, l := range resp.Listings {
			titles[i] = l.Title
		}
		return titles
	}

	BeforeEach(func() {
		cleanDB()
		gin.SetMode(gin.TestMode)
		router = gin.New()
		h := handler.NewListingHandler(db)
		router.GET("/listings", h.ListListings)
		router.GET("/listings/:id", h.GetListing)
		auth := router.Group("/")
		auth.Use(middleware.Auth(db, config.Config{}))
		auth.POST("/listings", h.CreateListing)
		auth.PATCH("/listings/:id", h.UpdateListing)
		auth.DELETE("/listings/:id", h.DeleteListing)

		seller = createUser("seller@dealer.com", "sellerpass", false)
		createSession(seller, "seller-token")
		createSellerProfile(seller, entsellerprofile.StatusVerified)
		brand = createBrand("Rolex", true)
	})

	// ── ListListings ──────────────────────────────────────────────────────────

	Describe("ListListings", func() {
		It("returns only active listings", func() {
			createListing(seller, brand, "Submariner", 1250000)
			draft := createListing(seller, brand, "Daytona", 3500000)
			db.Listing.UpdateOneID(draft.ID).SetStatus(entlisting.StatusDraft).ExecX(context.Background())

			w := doGet(router, "/listings")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(listingTitles(w.Body.Bytes())).To(Equal([]string{"Submariner"}))
		})

		It("filters by brand", func() {
			omega := createBrand("Omega", true)
			createListing(seller, brand, "Submariner", 1250000)
			createListing(seller, omega, "Speedmaster", 650000)

			w := doGet(router, "/listings?brand_id="+omega.ID.String())

			Expect(listingTitles(w.Body.Bytes())).To(Equal([]string{"Speedmaster"}))
		})

		It("filters by price range", func() {
			createListing(seller, brand, "Submariner", 1250000)
			createListing(seller, brand, "Oyster Perpetual", 550000)

			w := doGet(router, "/listings?min_price=600000&max_price=2000000")

			Expect(listingTitles(w.Body.Bytes())).To(Equal([]string{"Submariner"}))
		})

		It("returns 400 for an invalid condition filter", func() {
			w := doGet(router, "/listings?condition=mint")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 for a malformed brand_id", func() {
			w := doGet(router, "/listings?brand_id=nope")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	// ── GetListing ────────────────────────────────────────────────────────────

	Describe("GetListing", func() {
		It("returns the listing with brand and seller context", func() {
			l := createListing(seller, brand, "Submariner", 1250000)

			w := doGet(router, "/listings/"+l.ID.String())

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["title"]).To(Equal("Submariner"))
			Expect(resp["brand_slug"]).To(Equal("rolex"))
			Expect(resp["seller_name"]).To(Equal("seller@dealer.com"))
		})

		It("hides non-active listings from the public", func() {
			l := createListing(seller, brand, "Daytona", 3500000)
			db.Listing.UpdateOneID(l.ID).SetStatus(entlisting.StatusDraft).ExecX(context.Background())

			w := doGet(router, "/listings/"+l.ID.String())

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("shows a draft to its own seller", func() {
			l := createListing(seller, brand, "Daytona", 3500000)
			db.Listing.UpdateOneID(l.ID).SetStatus(entlisting.StatusDraft).ExecX(context.Background())

			w := doGet(router, "/listings/"+l.ID.String(), sellerHeaders)

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("returns 404 for an unknown listing", func() {
			w := doGet(router, "/listings/5f6d3c0a-98f8-4f76-9aee-0a2b8a6f4a11")
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	// ── CreateListing ─────────────────────────────────────────────────────────

	Describe("CreateListing", func() {
		It("creates an active listing for a verified seller", func() {
			w := doPost(router, "/listings", map[string]interface{}{
				"title":       "Submariner Date 126610LN",
				"brand_id":    brand.ID,
				"price_cents": 1250000,
				"condition":   "unworn",
				"year":        2023,
			}, sellerHeaders)

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["status"]).To(Equal("active"))
			Expect(resp["currency"]).To(Equal("EUR"))
		})

		It("rejects unverified sellers with 403", func() {
			buyer := createUser("buyer@dealer.com", "buyerpass1", false)
			createSession(buyer, "buyer-token")

			w := doPost(router, "/listings", map[string]interface{}{
				"title":       "Submariner",
				"brand_id":    brand.ID,
				"price_cents": 1250000,
			}, map[string]string{"X-Api-Token": "buyer-token"})

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("rejects a pending seller with 403", func() {
			applicant := createUser("applicant@dealer.com", "applicant1", false)
			createSession(applicant, "applicant-token")
			createSellerProfile(applicant, entsellerprofile.StatusPending)

			w := doPost(router, "/listings", map[string]interface{}{
				"title":       "Submariner",
				"brand_id":    brand.ID,
				"price_cents": 1250000,
			}, map[string]string{"X-Api-Token": "applicant-token"})

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 400 for a non-positive price", func() {
			w := doPost(router, "/listings", map[string]interface{}{
				"title":       "Submariner",
				"brand_id":    brand.ID,
				"price_cents": 0,
			}, sellerHeaders)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 for an invalid condition", func() {
			w := doPost(router, "/listings", map[string]interface{}{
				"title":       "Submariner",
				"brand_id":    brand.ID,
				"price_cents": 1250000,
				"condition":   "mint",
			}, sellerHeaders)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	// ── UpdateListing ─────────────────────────────────────────────────────────

	Describe("UpdateListing", func() {
		It("updates price and title for the owner", func() {
			l := createListing(seller, brand, "Submariner", 1250000)

			w := doPatch(router, "/listings/"+l.ID.String(), map[string]interface{}{
				"title":       "Submariner Date",
				"price_cents": 1190000,
			}, sellerHeaders)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["title"]).To(Equal("Submariner Date"))
			Expect(resp["price_cents"]).To(BeNumerically("==", 1190000))
		})

		It("rejects updates from non-owners with 403", func() {
			l := createListing(seller, brand, "Submariner", 1250000)
			other := createUser("other@dealer.com", "otherpass1", false)
			createSession(other, "other-token")

			w := doPatch(router, "/listings/"+l.ID.String(),
				map[string]interface{}{"title": "Hijacked"},
				map[string]string{"X-Api-Token": "other-token"})

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("freezes sold listings with 409", func() {
			l := createListing(seller, brand, "Submariner", 1250000)
			db.Listing.UpdateOneID(l.ID).SetStatus(entlisting.StatusSold).ExecX(context.Background())

			w := doPatch(router, "/listings/"+l.ID.String(),
				map[string]interface{}{"price_cents": 1}, sellerHeaders)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("does not let a seller mark a listing sold directly", func() {
			l := createListing(seller, brand, "Submariner", 1250000)

			w := doPatch(router, "/listings/"+l.ID.String(),
				map[string]interface{}{"status": "sold"}, sellerHeaders)

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("lets a seller move a listing to draft and back", func() {
			l := createListing(seller, brand, "Submariner", 1250000)

			w := doPatch(router, "/listings/"+l.ID.String(),
				map[string]interface{}{"status": "draft"}, sellerHeaders)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["status"]).To(Equal("draft"))
		})

		It("lets only admins suspend a listing", func() {
			l := createListing(seller, brand, "Submariner", 1250000)
			admin := createUser("admin@site.com", "adminpass1", true)
			createSession(admin, "admin-token")

			w := doPatch(router, "/listings/"+l.ID.String(),
				map[string]interface{}{"status": "suspended"}, sellerHeaders)
			Expect(w.Code).To(Equal(http.StatusForbidden))

			w2 := doPatch(router, "/listings/"+l.ID.String(),
				map[string]interface{}{"status": "suspended"},
				map[string]string{"X-Api-Token": "admin-token"})
			Expect(w2.Code).To(Equal(http.StatusOK))
		})
	})

	// ── DeleteListing ─────────────────────────────────────────────────────────

	Describe("DeleteListing", func() {
		It("deletes the owner's listing", func() {
			l := createListing(seller, brand, "Submariner", 1250000)

			w := doDelete(router, "/listings/"+l.ID.String(), sellerHeaders)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			exists, err := db.Listing.Query().Exist(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})

		It("rejects non-owners with 403", func() {
			l := createListing(seller, brand, "Submariner", 1250000)
			other := createUser("other@dealer.com", "otherpass1", false)
			createSession(other, "other-token")

			w := doDelete(router, "/listings/"+l.ID.String(),
				map[string]string{"X-Api-Token": "other-token"})

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})
})
