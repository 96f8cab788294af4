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
)

var _ = Describe("FavoriteHandler", func() {
	var (
		router  *gin.Engine
		buyer   *ent.User
		listing *ent.Listing
	)

	buyerHeaders := map[string]string{"X-Api-Token": "buyer-token"}

	favoriteCount := func() int {
		n, err := db.Favorite.Query().Count(context.Background())
		Expect(err).NotTo(HaveOccurred())
		return n
	}

	BeforeEach(func() {
		cleanDB()
		gin.SetMode(gin.TestMode)
		router = gin.New()
		h := handler.NewFavoriteHandler(db)
		auth := router.Group("/")
		auth.Use(middleware.Auth(db, config.Config{}))
		auth.POST("/listings/:id/favorite", h.AddFavorite)
		auth.DELETE("/listings/:id/favorite", h.RemoveFavorite)
		auth.GET("/favorites", h.ListFavorites)

		seller := createUser("seller@dealer.com", "sellerpass", false)
		buyer = createUser("buyer@dealer.com", "buyerpass1", false)
		createSession(buyer, "buyer-token")
		brand := createBrand("Rolex", true)
		listing = createListing(seller, brand, "Submariner", 1250000)
	})

	Describe("AddFavorite", func() {
		It("saves the listing and returns 201", func() {
			w := doPost(router, "/listings/"+listing.ID.String()+"/favorite", nil, buyerHeaders)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(favoriteCount()).To(Equal(1))
		})

		It("is idempotent, answering 200 on a repeat save", func() {
			doPost(router, "/listings/"+listing.ID.String()+"/favorite", nil, buyerHeaders)

			w := doPost(router, "/listings/"+listing.ID.String()+"/favorite", nil, buyerHeaders)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(favoriteCount()).To(Equal(1))
		})

		It("returns 404 for an unknown listing", func() {
			w := doPost(router, "/listings/5f6d3c0a-98f8-4f76-9aee-0a2b8a6f4a11/favorite", nil, buyerHeaders)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("RemoveFavorite", func() {
		It("removes the saved listing", func() {
			doPost(router, "/listings/"+listing.ID.String()+"/favorite", nil, buyerHeaders)

			w := doDelete(router, "/listings/"+listing.ID.String()+"/favorite", buyerHeaders)

			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(favoriteCount()).To(Equal(0))
		})

		It("is a no-op when the listing was never saved", func() {
			w := doDelete(router, "/listings/"+listing.ID.String()+"/favorite", buyerHeaders)
			Expect(w.Code).To(Equal(http.StatusNoContent))
		})
	})

	Describe("ListFavorites", func() {
		It("returns the caller's saved listings with catalog context", func() {
			doPost(router, "/listings/"+listing.ID.String()+"/favorite", nil, buyerHeaders)

			w := doGet(router, "/favorites", buyerHeaders)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp struct {
				Listings []struct {
					Title     string `json:"title"`
					BrandSlug string `json:"brand_slug"`
				} `json:"listings"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Listings).To(HaveLen(1))
			Expect(resp.Listings[0].Title).To(Equal("Submariner"))
			Expect(resp.Listings[0].BrandSlug).To(Equal("rolex"))
		})

		It("does not leak other users' favorites", func() {
			doPost(router, "/listings/"+listing.ID.String()+"/favorite", nil, buyerHeaders)
			other := createUser("other@dealer.com", "otherpass1", false)
			createSession(other, "other-token")

			w := doGet(router, "/favorites", map[string]string{"X-Api-Token": "other-token"})

			var resp struct {
				Listings []map[string]interface{} `json:"listings"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Listings).To(BeEmpty())
		})
	})
})
