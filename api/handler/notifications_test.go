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

var _ = Describe("NotificationHandler", func() {
	var (
		router *gin.Engine
		user   *ent.User
	)

	userHeaders := map[string]string{"X-Api-Token": "user-token"}

	addNotification := func(u *ent.User, typ entnotification.Type, body string) *ent.Notification {
		n, err := db.Notification.Create().
			SetUser(u).
			SetType(typ).
			SetBody(body).
			Save(context.Background())
		Expect(err).NotTo(HaveOccurred())
		return n
	}

	type listResponse struct {
		Notifications []struct {
			ID   string `json:"id"`
			Type string `json:"type"`
			Read bool   `json:"read"`
		} `json:"notifications"`
		UnreadCount int `json:"unread_count"`
	}

	list := func(path string, headers map[string]string) listResponse {
		w := doGet(router, path, headers)
		ExpectWithOffset(1, w.Code).To(Equal(http.StatusOK))
		var resp listResponse
		ExpectWithOffset(1, json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		return resp
	}

	BeforeEach(func() {
		cleanDB()
		gin.SetMode(gin.TestMode)
		router = gin.New()
		h := handler.NewNotificationHandler(db)
		auth := router.Group("/")
		auth.Use(middleware.Auth(db, config.Config{}))
		auth.GET("/notifications", h.ListNotifications)
		auth.POST("/notifications/:id/read", h.MarkRead)
		auth.POST("/notifications/read-all", h.MarkAllRead)

		user = createUser("user@dealer.com", "userpass12", false)
		createSession(user, "user-token")
	})

	Describe("ListNotifications", func() {
		It("returns the caller's feed with an unread count", func() {
			addNotification(user, entnotification.TypeOfferReceived, "New offer")
			addNotification(user, entnotification.TypeMessageReceived, "New message")

			resp := list("/notifications", userHeaders)

			Expect(resp.Notifications).To(HaveLen(2))
			Expect(resp.UnreadCount).To(Equal(2))
		})

		It("filters to unread only with ?unread=true", func() {
			n := addNotification(user, entnotification.TypeOfferReceived, "New offer")
			addNotification(user, entnotification.TypeMessageReceived, "New message")
			db.Notification.UpdateOneID(n.ID).SetRead(true).ExecX(context.Background())

			resp := list("/notifications?unread=true", userHeaders)

			Expect(resp.Notifications).To(HaveLen(1))
			Expect(resp.Notifications[0].Type).To(Equal("message_received"))
			Expect(resp.UnreadCount).To(Equal(1))
		})

		It("does not show other users' notifications", func() {
			other := createUser("other@dealer.com", "otherpass1", false)
			addNotification(other, entnotification.TypeOfferReceived, "Not yours")

			resp := list("/notifications", userHeaders)

			Expect(resp.Notifications).To(BeEmpty())
		})
	})

	Describe("MarkRead", func() {
		It("marks a single notification read", func() {
			n := addNotification(user, entnotification.TypeOfferReceived, "New offer")

			w := doPost(router, "/notifications/"+n.ID.String()+"/read", nil, userHeaders)

			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(db.Notification.GetX(context.Background(), n.ID).Read).To(BeTrue())
		})

		It("returns 404 for another user's notification", func() {
			other := createUser("other@dealer.com", "otherpass1", false)
			n := addNotification(other, entnotification.TypeOfferReceived, "Not yours")

			w := doPost(router, "/notifications/"+n.ID.String()+"/read", nil, userHeaders)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(db.Notification.GetX(context.Background(), n.ID).Read).To(BeFalse())
		})
	})

	Describe("MarkAllRead", func() {
		It("clears the caller's unread count and nothing else", func() {
			addNotification(user, entnotification.TypeOfferReceived, "One")
			addNotification(user, entnotification.TypeMessageReceived, "Two")
			other := createUser("other@dealer.com", "otherpass1", false)
			theirs := addNotification(other, entnotification.TypeOfferReceived, "Theirs")

			w := doPost(router, "/notifications/read-all", nil, userHeaders)

			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(list("/notifications", userHeaders).UnreadCount).To(Equal(0))
			Expect(db.Notification.GetX(context.Background(), theirs.ID).Read).To(BeFalse())
		})
	})
})
