package billing_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/CyrilCartoux/watch-pros-sub004/billing"
	"github.com/CyrilCartoux/watch-pros-sub004/config"
)

var _ = Describe("Client", func() {
	ctx := context.Background()

	Describe("CreateSubscription", func() {
		It("posts the customer reference and plan with the API key", func() {
			var (
				gotAuth string
				gotBody map[string]string
			)
			periodEnd := time.Now().Add(30 * 24 * time.Hour).UTC().Truncate(time.Second)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodPost))
				Expect(r.URL.Path).To(Equal("/v1/subscriptions"))
				gotAuth = r.Header.Get("Authorization")
				Expect(json.NewDecoder(r.Body).Decode(&gotBody)).To(Succeed())
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(billing.ProviderSubscription{
					ID:               "sub_42",
					Plan:             "pro",
					Status:           "active",
					CurrentPeriodEnd: periodEnd,
				})
			}))
			defer srv.Close()

			client := billing.NewClient(config.Config{BillingURL: srv.URL, BillingAPIKey: "sk_test_abc"})
			sub, err := client.CreateSubscription(ctx, "customer-1", "pro")

			Expect(err).NotTo(HaveOccurred())
			Expect(sub.ID).To(Equal("sub_42"))
			Expect(sub.Plan).To(Equal("pro"))
			Expect(sub.Status).To(Equal("active"))
			Expect(sub.CurrentPeriodEnd).To(BeTemporally("==", periodEnd))
			Expect(gotAuth).To(Equal("Bearer sk_test_abc"))
			Expect(gotBody).To(Equal(map[string]string{"customer_ref": "customer-1", "plan": "pro"}))
		})

		It("omits the Authorization header without an API key", func() {
			var gotAuth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				_ = json.NewEncoder(w).Encode(billing.ProviderSubscription{ID: "sub_1"})
			}))
			defer srv.Close()

			client := billing.NewClient(config.Config{BillingURL: srv.URL})
			_, err := client.CreateSubscription(ctx, "customer-1", "basic")

			Expect(err).NotTo(HaveOccurred())
			Expect(gotAuth).To(BeEmpty())
		})

		It("returns an error on a non-2xx response", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "card declined", http.StatusPaymentRequired)
			}))
			defer srv.Close()

			client := billing.NewClient(config.Config{BillingURL: srv.URL})
			_, err := client.CreateSubscription(ctx, "customer-1", "pro")

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("402"))
			Expect(err.Error()).To(ContainSubstring("card declined"))
		})

		It("returns an error on an undecodable response body", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not json"))
			}))
			defer srv.Close()

			client := billing.NewClient(config.Config{BillingURL: srv.URL})
			_, err := client.CreateSubscription(ctx, "customer-1", "pro")

			Expect(err).To(HaveOccurred())
		})

		It("returns an error when the provider is unreachable", func() {
			client := billing.NewClient(config.Config{BillingURL: "http://127.0.0.1:1"})
			_, err := client.CreateSubscription(ctx, "customer-1", "pro")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("CancelSubscription", func() {
		It("deletes the provider subscription", func() {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodDelete))
				gotPath = r.URL.Path
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			client := billing.NewClient(config.Config{BillingURL: srv.URL})
			Expect(client.CancelSubscription(ctx, "sub_42")).To(Succeed())
			Expect(gotPath).To(Equal("/v1/subscriptions/sub_42"))
		})

		It("treats a provider 404 as success", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer srv.Close()

			client := billing.NewClient(config.Config{BillingURL: srv.URL})
			Expect(client.CancelSubscription(ctx, "sub_gone")).To(Succeed())
		})

		It("returns an error on other failures", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer srv.Close()

			client := billing.NewClient(config.Config{BillingURL: srv.URL})
			Expect(client.CancelSubscription(ctx, "sub_42")).NotTo(Succeed())
		})
	})

	Describe("PlanSeats", func() {
		It("defines the three plans", func() {
			Expect(billing.PlanSeats).To(HaveKeyWithValue("basic", 5))
			Expect(billing.PlanSeats).To(HaveKeyWithValue("pro", 25))
			Expect(billing.PlanSeats).To(HaveKeyWithValue("elite", 100))
		})
	})
})
