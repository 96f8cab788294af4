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
	entnotification "github.com/CyrilCartoux/watch-pros-sub004/ent/notification"
)

var _ = Describe("MessageHandler", func() {
	var (
		router  *gin.Engine
		hub     *handler.WSHub
		seller  *ent.User
		buyer   *ent.User
		listing *ent.Listing
	)

	sellerHeaders := map[string]string{"X-Api-Token": "seller-token"}
	buyerHeaders := map[string]string{"X-Api-Token": "buyer-token"}

	startConversation := func(headers map[string]string, body string) map[string]interface{} {
		w := doPost(router, "/conversations",
			map[string]interface{}{"listing_id": listing.ID, "body": body}, headers)
		ExpectWithOffset(1, w.Code).To(Equal(http.StatusCreated))
		var resp map[string]interface{}
		ExpectWithOffset(1, json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		return resp
	}

	BeforeEach(func() {
		cleanDB()
		gin.SetMode(gin.TestMode)
		hub = handler.NewWSHub()
		router = gin.New()
		h := handler.NewMessageHandler(db, handler.NewNotifier(db, hub))
		auth := router.Group("/")
		auth.Use(middleware.Auth(db, config.Config{}))
		auth.POST("/conversations", h.StartConversation)
		auth.GET("/conversations", h.ListConversations)
		auth.GET("/conversations/:id/messages", h.ListMessages)
		auth.POST("/conversations/:id/messages", h.SendMessage)

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

	// ── StartConversation ─────────────────────────────────────────────────────

	Describe("StartConversation", func() {
		It("creates a thread with the first message", func() {
			resp := startConversation(buyerHeaders, "Is this still available?")

			Expect(resp["buyer_id"]).To(Equal(buyer.ID.String()))
			Expect(resp["seller_id"]).To(Equal(seller.ID.String()))

			count, err := db.Message.Query().Count(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))
		})

		It("reuses the existing thread on a second start", func() {
			first := startConversation(buyerHeaders, "Is this still available?")
			second := startConversation(buyerHeaders, "Still interested!")

			Expect(second["id"]).To(Equal(first["id"]))

			count, err := db.Conversation.Query().Count(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))
			msgs, err := db.Message.Query().Count(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(msgs).To(Equal(2))
		})

		It("rejects messaging yourself", func() {
			w := doPost(router, "/conversations",
				map[string]interface{}{"listing_id": listing.ID, "body": "hello me"},
				sellerHeaders,
			)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 for an unknown listing", func() {
			w := doPost(router, "/conversations",
				map[string]interface{}{"listing_id": "5f6d3c0a-98f8-4f76-9aee-0a2b8a6f4a11", "body": "hi"},
				buyerHeaders,
			)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	// ── ListConversations ─────────────────────────────────────────────────────

	Describe("ListConversations", func() {
		It("shows the thread to both participants and nobody else", func() {
			startConversation(buyerHeaders, "Is this still available?")

			var resp struct {
				Conversations []map[string]interface{} `json:"conversations"`
			}

			w := doGet(router, "/conversations", buyerHeaders)
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Conversations).To(HaveLen(1))

			w = doGet(router, "/conversations", sellerHeaders)
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Conversations).To(HaveLen(1))

			stranger := createUser("stranger@dealer.com", "stranger1", false)
			createSession(stranger, "stranger-token")
			w = doGet(router, "/conversations", map[string]string{"X-Api-Token": "stranger-token"})
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Conversations).To(BeEmpty())
		})
	})

	// ── Messages ──────────────────────────────────────────────────────────────

	Describe("SendMessage and ListMessages", func() {
		var convID string

		BeforeEach(func() {
			resp := startConversation(buyerHeaders, "Is this still available?")
			convID = resp["id"].(string)
		})

		It("appends a reply and notifies the counterparty", func() {
			w := doPost(router, "/conversations/"+convID+"/messages",
				map[string]string{"body": "Yes, it is."}, sellerHeaders)

			Expect(w.Code).To(Equal(http.StatusCreated))

			n, err := db.Notification.Query().
				Where(entnotification.TypeEQ(entnotification.TypeMessageReceived)).
				Count(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
		})

		It("returns messages oldest first and marks the counterparty's as read", func() {
			doPost(router, "/conversations/"+convID+"/messages",
				map[string]string{"body": "Yes, it is."}, sellerHeaders)

			w := doGet(router, "/conversations/"+convID+"/messages", buyerHeaders)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp struct {
				Messages []struct {
					Body     string `json:"body"`
					SenderID string `json:"sender_id"`
				} `json:"messages"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Messages).To(HaveLen(2))
			Expect(resp.Messages[0].Body).To(Equal("Is this still available?"))
			Expect(resp.Messages[1].Body).To(Equal("Yes, it is."))

			// The seller's reply is now read; the buyer's own message keeps its state.
			w2 := doGet(router, "/conversations/"+convID+"/messages", buyerHeaders)
			var resp2 struct {
				Messages []struct {
					SenderID string `json:"sender_id"`
					Read     bool   `json:"read"`
				} `json:"messages"`
			}
			Expect(json.Unmarshal(w2.Body.Bytes(), &resp2)).To(Succeed())
			for _, m := range resp2.Messages {
				if m.SenderID == seller.ID.String() {
					Expect(m.Read).To(BeTrue())
				}
			}
		})

		It("rejects outsiders with 403", func() {
			stranger := createUser("stranger@dealer.com", "stranger1", false)
			createSession(stranger, "stranger-token")

			w := doGet(router, "/conversations/"+convID+"/messages",
				map[string]string{"X-Api-Token": "stranger-token"})

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 404 for an unknown conversation", func() {
			w := doPost(router, "/conversations/5f6d3c0a-98f8-4f76-9aee-0a2b8a6f4a11/messages",
				map[string]string{"body": "hello?"}, buyerHeaders)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
