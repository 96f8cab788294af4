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
	entnotification "github.com/CyrilCartoux/watch-pros-sub004/ent/notification"
	entoffer "github.com/CyrilCartoux/watch-pros-sub004/ent/offer"
	entuser "github.com/CyrilCartoux/watch-pros-sub004/ent/user"
)

var _ = Describe("OfferHandler", func() {
	var (
		router  *gin.Engine
		hub     *handler.WSHub
		seller  *ent.User
		buyer   *ent.User
		listing *ent.Listing
	)

	sellerHeaders := map[string]string{"X-Api-Token": "seller-token"}
	buyerHeaders := map[string]string{"X-Api-Token": "buyer-token"}

	makeOffer := func(buyer *ent.User, l *ent.Listing, amount int64) *ent.Offer {
		o, err := db.Offer.Create().
			SetListing(l).
			SetBuyer(buyer).
			SetAmountCents(amount).
			SetCurrency("EUR").
			Save(context.Background())
		Expect(err).NotTo(HaveOccurred())
		return o
	}

	notificationsFor := func(u *ent.User, typ entnotification.Type) int {
		n, err := db.Notification.Query().
			Where(
				entnotification.HasUserWith(entuser.IDEQ(u.ID)),
				entnotification.TypeEQ(typ),
			).
			Count(context.Background())
		Expect(err).NotTo(HaveOccurred())
		return n
	}

	BeforeEach(func() {
		cleanDB()
		gin.SetMode(gin.TestMode)
		hub = handler.NewWSHub()
		router = gin.New()
		h := handler.NewOfferHandler(db, handler.NewNotifier(db, hub))
		auth := router.Group("/")
		auth.Use(middleware.Auth(db, config.Config{}))
		auth.POST("/listings/:id/offers", h.CreateOffer)
		auth.GET("/offers", h.ListOffers)
		auth.POST("/offers/:id/accept", h.AcceptOffer)
		auth.POST("/offers/:id/decline", h.DeclineOffer)
		auth.POST("/offers/:id/withdraw", h.WithdrawOffer)

		seller = createUser("seller@dealer.com", "sellerpass", false)
		createSession(seller, "seller-token")
		buyer = createUser("buyer@dealer.com", "buyerpass1", false)
		createSession(buyer, "buyer-token")
		brand := createBrand("Rolex", true)
		listing = createListing(seller, brand, "Submariner", 1250000)
	})

	AfterEach(func() {
		hub.Shutdown()
	})

	// ── CreateOffer ───────────────────────────────────────────────────────────

	Describe("CreateOffer", func() {
		It("creates a pending offer in the listing's currency and notifies the seller", func() {
			w := doPost(router, "/listings/"+listing.ID.String()+"/offers",
				map[string]interface{}{"amount_cents": 1100000, "message": "Cash, this week"},
				buyerHeaders,
			)

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["status"]).To(Equal("pending"))
			Expect(resp["currency"]).To(Equal("EUR"))

			Expect(notificationsFor(seller, entnotification.TypeOfferReceived)).To(Equal(1))
		})

		It("rejects offers on your own listing", func() {
			w := doPost(router, "/listings/"+listing.ID.String()+"/offers",
				map[string]interface{}{"amount_cents": 1100000}, sellerHeaders)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects offers on a sold listing with 409", func() {
			db.Listing.UpdateOneID(listing.ID).SetStatus(entlisting.StatusSold).ExecX(context.Background())

			w := doPost(router, "/listings/"+listing.ID.String()+"/offers",
				map[string]interface{}{"amount_cents": 1100000}, buyerHeaders)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("returns 404 for an unknown listing", func() {
			w := doPost(router, "/listings/5f6d3c0a-98f8-4f76-9aee-0a2b8a6f4a11/offers",
				map[string]interface{}{"amount_cents": 1100000}, buyerHeaders)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	// ── ListOffers ────────────────────────────────────────────────────────────

	Describe("ListOffers", func() {
		It("shows buyers their own offers by default", func() {
			makeOffer(buyer, listing, 1100000)

			w := doGet(router, "/offers", buyerHeaders)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp struct {
				Offers []map[string]interface{} `json:"offers"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Offers).To(HaveLen(1))
		})

		It("shows sellers the offers on their listings with role=seller", func() {
			makeOffer(buyer, listing, 1100000)

			w := doGet(router, "/offers?role=seller", sellerHeaders)

			var resp struct {
				Offers []map[string]interface{} `json:"offers"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Offers).To(HaveLen(1))

			// The seller made no offers as a buyer.
			w2 := doGet(router, "/offers", sellerHeaders)
			Expect(json.Unmarshal(w2.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Offers).To(BeEmpty())
		})

		It("returns 400 for an unknown role", func() {
			w := doGet(router, "/offers?role=observer", buyerHeaders)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	// ── AcceptOffer ───────────────────────────────────────────────────────────

	Describe("AcceptOffer", func() {
		It("marks the listing sold, declines competitors, and notifies all buyers", func() {
			rival := createUser("rival@dealer.com", "rivalpass1", false)
			winning := makeOffer(buyer, listing, 1200000)
			losing := makeOffer(rival, listing, 1100000)

			w := doPost(router, "/offers/"+winning.ID.String()+"/accept", nil, sellerHeaders)

			Expect(w.Code).To(Equal(http.StatusOK))

			ctx := context.Background()
			Expect(db.Listing.GetX(ctx, listing.ID).Status).To(Equal(entlisting.StatusSold))
			Expect(db.Offer.GetX(ctx, winning.ID).Status).To(Equal(entoffer.StatusAccepted))
			Expect(db.Offer.GetX(ctx, losing.ID).Status).To(Equal(entoffer.StatusDeclined))

			Expect(notificationsFor(buyer, entnotification.TypeOfferAccepted)).To(Equal(1))
			Expect(notificationsFor(rival, entnotification.TypeOfferDeclined)).To(Equal(1))
		})

		It("only the seller may accept", func() {
			o := makeOffer(buyer, listing, 1200000)

			w := doPost(router, "/offers/"+o.ID.String()+"/accept", nil, buyerHeaders)

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 409 for an already-resolved offer", func() {
			o := makeOffer(buyer, listing, 1200000)
			db.Offer.UpdateOneID(o.ID).SetStatus(entoffer.StatusDeclined).ExecX(context.Background())

			w := doPost(router, "/offers/"+o.ID.String()+"/accept", nil, sellerHeaders)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})
	})

	// ── DeclineOffer ──────────────────────────────────────────────────────────

	Describe("DeclineOffer", func() {
		It("declines a pending offer and notifies the buyer", func() {
			o := makeOffer(buyer, listing, 1100000)

			w := doPost(router, "/offers/"+o.ID.String()+"/decline", nil, sellerHeaders)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(db.Offer.GetX(context.Background(), o.ID).Status).To(Equal(entoffer.StatusDeclined))
			Expect(notificationsFor(buyer, entnotification.TypeOfferDeclined)).To(Equal(1))
		})

		It("leaves the listing active", func() {
			o := makeOffer(buyer, listing, 1100000)

			doPost(router, "/offers/"+o.ID.String()+"/decline", nil, sellerHeaders)

			Expect(db.Listing.GetX(context.Background(), listing.ID).Status).
				To(Equal(entlisting.StatusActive))
		})
	})

	// ── WithdrawOffer ─────────────────────────────────────────────────────────

	Describe("WithdrawOffer", func() {
		It("lets the buyer withdraw a pending offer", func() {
			o := makeOffer(buyer, listing, 1100000)

			w := doPost(router, "/offers/"+o.ID.String()+"/withdraw", nil, buyerHeaders)

			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(db.Offer.GetX(context.Background(), o.ID).Status).To(Equal(entoffer.StatusWithdrawn))
		})

		It("rejects the seller withdrawing a buyer's offer", func() {
			o := makeOffer(buyer, listing, 1100000)

			w := doPost(router, "/offers/"+o.ID.String()+"/withdraw", nil, sellerHeaders)

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 409 for an already-resolved offer", func() {
			o := makeOffer(buyer, listing, 1100000)
			db.Offer.UpdateOneID(o.ID).SetStatus(entoffer.StatusAccepted).ExecX(context.Background())

			w := doPost(router, "/offers/"+o.ID.String()+"/withdraw", nil, buyerHeaders)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})
	})
})
