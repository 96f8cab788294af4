package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/CyrilCartoux/watch-pros-sub004/api/handler"
	"github.com/CyrilCartoux/watch-pros-sub004/config"
	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	"github.com/CyrilCartoux/watch-pros-sub004/views"
)

var _ = Describe("ViewHandler", func() {
	var (
		router  *gin.Engine
		listing *ent.Listing
	)

	viewURL := func(id uuid.UUID) string { return "/listings/" + id.String() + "/view" }

	viewsCount := func(id uuid.UUID) int64 {
		l, err := db.Listing.Get(context.Background(), id)
		Expect(err).NotTo(HaveOccurred())
		return l.ViewsCount
	}

	viewResult := func(w []byte) (viewed bool) {
		var resp struct {
			Viewed bool `json:"viewed"`
		}
		Expect(json.Unmarshal(w, &resp)).To(Succeed())
		return resp.Viewed
	}

	BeforeEach(func() {
		cleanDB()
		gin.SetMode(gin.TestMode)
		router = gin.New()
		h := handler.NewViewHandler(db, config.Config{}, views.NewRecorder(db, 24*time.Hour))
		router.POST("/listings/:id/view", h.RecordView)

		seller := createUser("seller@example.com", "sellerpass", false)
		brand := createBrand("Rolex", true)
		listing = createListing(seller, brand, "Submariner Date", 1250000)
	})

	Context("anonymous viewers", func() {
		agent := map[string]string{"User-Agent": "Chrome/128"}

		It("counts the first view and reports viewed=true", func() {
			w := doPost(router, viewURL(listing.ID), nil, agent)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(viewResult(w.Body.Bytes())).To(BeTrue())
			Expect(viewsCount(listing.ID)).To(Equal(int64(1)))
		})

		It("does not count a repeat view inside the window", func() {
			doPost(router, viewURL(listing.ID), nil, agent)

			w := doPost(router, viewURL(listing.ID), nil, agent)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(viewResult(w.Body.Bytes())).To(BeFalse())
			Expect(w.Body.String()).To(ContainSubstring("Already viewed recently"))
			Expect(viewsCount(listing.ID)).To(Equal(int64(1)))
		})

		It("counts a different client as a separate view", func() {
			doPost(router, viewURL(listing.ID), nil, agent)

			w := doPost(router, viewURL(listing.ID), nil,
				map[string]string{"User-Agent": "Firefox/130"})

			Expect(viewResult(w.Body.Bytes())).To(BeTrue())
			Expect(viewsCount(listing.ID)).To(Equal(int64(2)))
		})

		It("tracks views per listing", func() {
			seller := createUser("other@example.com", "otherpass1", false)
			brand := createBrand("Omega", true)
			other := createListing(seller, brand, "Speedmaster", 650000)

			doPost(router, viewURL(listing.ID), nil, agent)
			w := doPost(router, viewURL(other.ID), nil, agent)

			Expect(viewResult(w.Body.Bytes())).To(BeTrue())
			Expect(viewsCount(listing.ID)).To(Equal(int64(1)))
			Expect(viewsCount(other.ID)).To(Equal(int64(1)))
		})
	})

	Context("authenticated viewers", func() {
		BeforeEach(func() {
			buyer := createUser("buyer@example.com", "buyerpass1", false)
			createSession(buyer, "buyer-token")
		})

		It("dedups by account, not by client fingerprint", func() {
			w1 := doPost(router, viewURL(listing.ID), nil,
				map[string]string{"X-Api-Token": "buyer-token", "User-Agent": "Chrome/128"})
			Expect(viewResult(w1.Body.Bytes())).To(BeTrue())

			// Same account from a different browser is still one viewer.
			w2 := doPost(router, viewURL(listing.ID), nil,
				map[string]string{"X-Api-Token": "buyer-token", "User-Agent": "Safari/18"})
			Expect(viewResult(w2.Body.Bytes())).To(BeFalse())
			Expect(viewsCount(listing.ID)).To(Equal(int64(1)))
		})

		It("counts an authenticated view separately from an anonymous one", func() {
			doPost(router, viewURL(listing.ID), nil, map[string]string{"User-Agent": "Chrome/128"})

			w := doPost(router, viewURL(listing.ID), nil,
				map[string]string{"X-Api-Token": "buyer-token", "User-Agent": "Chrome/128"})

			Expect(viewResult(w.Body.Bytes())).To(BeTrue())
			Expect(viewsCount(listing.ID)).To(Equal(int64(2)))
		})

		It("keys a view through an expired session by client fingerprint", func() {
			ttlRouter := gin.New()
			h := handler.NewViewHandler(db, config.Config{SessionTTL: time.Hour},
				views.NewRecorder(db, 24*time.Hour))
			ttlRouter.POST("/listings/:id/view", h.RecordView)

			ctx := context.Background()
			sess := db.Session.Query().OnlyX(ctx)
			sess.Update().SetLastActivity(time.Now().Add(-2 * time.Hour)).ExecX(ctx)

			// The stale token no longer identifies the account, so both views
			// share the anonymous key and collapse to one.
			doPost(ttlRouter, viewURL(listing.ID), nil,
				map[string]string{"User-Agent": "Chrome/128"})
			w := doPost(ttlRouter, viewURL(listing.ID), nil,
				map[string]string{"X-Api-Token": "buyer-token", "User-Agent": "Chrome/128"})

			Expect(viewResult(w.Body.Bytes())).To(BeFalse())
			Expect(viewsCount(listing.ID)).To(Equal(int64(1)))
		})
	})

	Context("window expiry", func() {
		It("counts again once the previous view has left the rolling window", func() {
			// Use a short window so a backdated record falls outside it.
			shortRouter := gin.New()
			h := handler.NewViewHandler(db, config.Config{}, views.NewRecorder(db, time.Minute))
			shortRouter.POST("/listings/:id/view", h.RecordView)
			agent := map[string]string{"User-Agent": "Chrome/128"}

			doPost(shortRouter, viewURL(listing.ID), nil, agent)

			// Replace the dedup record with one backdated past the window edge;
			// recorded_at is immutable, so it cannot be rewritten in place.
			ctx := context.Background()
			existing := db.ListingView.Query().OnlyX(ctx)
			db.ListingView.Delete().ExecX(ctx)
			old := time.Now().Add(-2 * time.Minute)
			db.ListingView.Create().
				SetListingID(listing.ID).
				SetViewerKey(existing.ViewerKey).
				SetRecordedAt(old).
				SetWindowBucket(views.Bucket(old, time.Minute)).
				SaveX(ctx)

			w := doPost(shortRouter, viewURL(listing.ID), nil, agent)

			Expect(viewResult(w.Body.Bytes())).To(BeTrue())
			Expect(viewsCount(listing.ID)).To(Equal(int64(2)))
		})
	})

	Context("error cases", func() {
		It("returns 404 for an unknown listing", func() {
			w := doPost(router, "/listings/5f6d3c0a-98f8-4f76-9aee-0a2b8a6f4a11/view", nil,
				map[string]string{"User-Agent": "Chrome/128"})
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 400 for a malformed listing ID", func() {
			w := doPost(router, "/listings/not-a-uuid/view", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
