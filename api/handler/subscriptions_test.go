package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gin-gonic/gin"

	"github.com/CyrilCartoux/watch-pros-sub004/api/handler"
	"github.com/CyrilCartoux/watch-pros-sub004/api/middleware"
	"github.com/CyrilCartoux/watch-pros-sub004/billing"
	"github.com/CyrilCartoux/watch-pros-sub004/config"
	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	entsubscription "github.com/CyrilCartoux/watch-pros-sub004/ent/subscription"
	entuser "github.com/CyrilCartoux/watch-pros-sub004/ent/user"
)

var _ = Describe("SubscriptionHandler", func() {
	var (
		router       *gin.Engine
		provider     *httptest.Server
		providerHits []string
		failCreate   bool
		user         *ent.User
	)

	userHeaders := map[string]string{"X-Api-Token": "user-token"}

	newRouter := func(health *billing.HealthChecker, client *billing.Client) *gin.Engine {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		h := handler.NewSubscriptionHandler(db, client, health)
		auth := r.Group("/")
		auth.Use(middleware.Auth(db, config.Config{}))
		auth.GET("/subscription", h.GetSubscription)
		auth.POST("/subscription", h.Subscribe)
		auth.DELETE("/subscription", h.Unsubscribe)
		return r
	}

	localSubscription := func(u *ent.User) *ent.Subscription {
		s, err := db.Subscription.Query().
			Where(entsubscription.HasUserWith(entuser.IDEQ(u.ID))).
			Only(context.Background())
		Expect(err).NotTo(HaveOccurred())
		return s
	}

	BeforeEach(func() {
		cleanDB()
		providerHits = nil
		failCreate = false

		// Fake billing provider.
		provider = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			providerHits = append(providerHits, r.Method+" "+r.URL.Path)
			switch {
			case r.Method == http.MethodPost && r.URL.Path == "/v1/subscriptions":
				if failCreate {
					w.WriteHeader(http.StatusPaymentRequired)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"id":                 "sub_test_1",
					"plan":               "pro",
					"status":             "active",
					"current_period_end": time.Now().Add(30 * 24 * time.Hour),
				})
			case r.Method == http.MethodDelete:
				w.WriteHeader(http.StatusNoContent)
			case r.URL.Path == "/healthz":
				w.WriteHeader(http.StatusOK)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))

		client := billing.NewClient(config.Config{BillingURL: provider.URL})
		// Never started: reports available, which is the steady-state case.
		health := billing.NewHealthChecker(client, time.Hour)
		router = newRouter(health, client)

		user = createUser("user@dealer.com", "userpass12", false)
		createSession(user, "user-token")
	})

	AfterEach(func() {
		provider.Close()
	})

	// ── Subscribe ─────────────────────────────────────────────────────────────

	Describe("Subscribe", func() {
		It("opens the subscription at the provider and mirrors it locally", func() {
			w := doPost(router, "/subscription", map[string]string{"plan": "pro"}, userHeaders)

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["plan"]).To(Equal("pro"))
			Expect(resp["seats"]).To(BeNumerically("==", 25))
			Expect(resp["status"]).To(Equal("active"))

			Expect(providerHits).To(ContainElement("POST /v1/subscriptions"))
			Expect(localSubscription(user).ProviderID).To(Equal("sub_test_1"))
		})

		It("returns 400 for an unknown plan", func() {
			w := doPost(router, "/subscription", map[string]string{"plan": "platinum"}, userHeaders)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(providerHits).To(BeEmpty())
		})

		It("returns 409 when a subscription already exists", func() {
			doPost(router, "/subscription", map[string]string{"plan": "pro"}, userHeaders)

			w := doPost(router, "/subscription", map[string]string{"plan": "basic"}, userHeaders)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("returns 502 when the provider rejects the subscription", func() {
			failCreate = true

			w := doPost(router, "/subscription", map[string]string{"plan": "pro"}, userHeaders)

			Expect(w.Code).To(Equal(http.StatusBadGateway))
			_, err := db.Subscription.Query().Only(context.Background())
			Expect(ent.IsNotFound(err)).To(BeTrue())
		})

		It("fails fast with 503 while the provider is marked unavailable", func() {
			// Point the health checker at a server that always fails, with a
			// tight interval so it trips the 2-failure threshold quickly.
			downServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer downServer.Close()

			downClient := billing.NewClient(config.Config{BillingURL: downServer.URL})
			health := billing.NewHealthChecker(downClient, 10*time.Millisecond)
			health.Start(context.Background())
			defer health.Stop()

			Eventually(health.Available, time.Second, 10*time.Millisecond).Should(BeFalse())

			downRouter := newRouter(health, downClient)
			w := doPost(downRouter, "/subscription", map[string]string{"plan": "pro"}, userHeaders)

			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
		})
	})

	// ── GetSubscription ───────────────────────────────────────────────────────

	Describe("GetSubscription", func() {
		It("returns the caller's plan", func() {
			doPost(router, "/subscription", map[string]string{"plan": "elite"}, userHeaders)

			w := doGet(router, "/subscription", userHeaders)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["plan"]).To(Equal("elite"))
			Expect(resp["seats"]).To(BeNumerically("==", 100))
		})

		It("returns 404 without a subscription", func() {
			w := doGet(router, "/subscription", userHeaders)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	// ── Unsubscribe ───────────────────────────────────────────────────────────

	Describe("Unsubscribe", func() {
		It("cancels at the provider and marks the mirror canceled", func() {
			doPost(router, "/subscription", map[string]string{"plan": "pro"}, userHeaders)

			w := doDelete(router, "/subscription", userHeaders)

			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(providerHits).To(ContainElement("DELETE /v1/subscriptions/sub_test_1"))
			Expect(localSubscription(user).Status).To(Equal(entsubscription.StatusCanceled))
		})

		It("returns 409 when already canceled", func() {
			doPost(router, "/subscription", map[string]string{"plan": "pro"}, userHeaders)
			doDelete(router, "/subscription", userHeaders)

			w := doDelete(router, "/subscription", userHeaders)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("returns 404 without a subscription", func() {
			w := doDelete(router, "/subscription", userHeaders)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
