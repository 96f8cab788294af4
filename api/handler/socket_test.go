package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/CyrilCartoux/watch-pros-sub004/api/handler"
	"github.com/CyrilCartoux/watch-pros-sub004/api/middleware"
	"github.com/CyrilCartoux/watch-pros-sub004/config"
	entnotification "github.com/CyrilCartoux/watch-pros-sub004/ent/notification"
)

var _ = Describe("WebSocket notifications", func() {
	var (
		hub *handler.WSHub
		srv *httptest.Server
	)

	BeforeEach(func() {
		cleanDB()
		hub = handler.NewWSHub()
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/socket", middleware.Auth(db, config.Config{}), handler.WebSocketHandler(hub))
		srv = httptest.NewServer(r)
	})

	AfterEach(func() {
		hub.Shutdown()
		srv.Close()
	})

	wsURL := func(token string) string {
		url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/socket"
		if token != "" {
			url += "?token=" + token
		}
		return url
	}

	It("pushes a persisted notification to the connected client", func() {
		user := createUser("socket@dealer.com", "socketpass12", false)
		createSession(user, "socket-token")

		conn, _, err := websocket.DefaultDialer.Dial(wsURL("socket-token"), nil)
		Expect(err).NotTo(HaveOccurred())
		defer conn.Close()

		notifier := handler.NewNotifier(db, hub)
		// The handler registers the connection in the hub asynchronously, so
		// retry the push until the read side has seen the payload.
		var payload map[string]interface{}
		Eventually(func() error {
			notifier.Notify(context.Background(), user.ID, entnotification.TypeMessageReceived, "New message from a buyer")
			_ = conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
			return conn.ReadJSON(&payload)
		}, 5*time.Second, 50*time.Millisecond).Should(Succeed())

		Expect(payload["type"]).To(Equal("message_received"))
		Expect(payload["body"]).To(Equal("New message from a buyer"))
		Expect(payload["read"]).To(BeFalse())
	})

	It("rejects the upgrade without a valid token", func() {
		_, resp, err := websocket.DefaultDialer.Dial(wsURL(""), nil)
		Expect(err).To(HaveOccurred())
		Expect(resp).NotTo(BeNil())
		Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
	})

	It("persists the notification even with no open connection", func() {
		user := createUser("offline@dealer.com", "offlinepass12", false)

		notifier := handler.NewNotifier(db, hub)
		notifier.Notify(context.Background(), user.ID, entnotification.TypeOfferReceived, "New offer on your listing")

		count, err := db.Notification.Query().Count(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(1))
	})
})
