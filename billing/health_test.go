package billing_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/CyrilCartoux/watch-pros-sub004/billing"
	"github.com/CyrilCartoux/watch-pros-sub004/config"
)

var _ = Describe("HealthChecker", func() {
	// healthy is toggled per spec to drive the provider up and down.
	var healthy atomic.Bool

	newChecker := func(srv *httptest.Server) *billing.HealthChecker {
		client := billing.NewClient(config.Config{BillingURL: srv.URL})
		return billing.NewHealthChecker(client, 5*time.Millisecond)
	}

	newProvider := func() *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/healthz" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if healthy.Load() {
				w.WriteHeader(http.StatusOK)
			} else {
				w.WriteHeader(http.StatusInternalServerError)
			}
		}))
	}

	BeforeEach(func() {
		healthy.Store(true)
	})

	It("assumes the provider is available before the first check", func() {
		srv := newProvider()
		defer srv.Close()

		hc := newChecker(srv)
		Expect(hc.Available()).To(BeTrue())
	})

	It("marks the provider unavailable after consecutive failures and recovers on success", func() {
		healthy.Store(false)
		srv := newProvider()
		defer srv.Close()

		hc := newChecker(srv)
		hc.Start(context.Background())
		defer hc.Stop()

		Eventually(hc.Available, time.Second, 5*time.Millisecond).Should(BeFalse())

		status := hc.Snapshot()
		Expect(status.Available).To(BeFalse())
		Expect(status.FailureCount).To(BeNumerically(">=", 2))
		Expect(status.LastError).NotTo(BeEmpty())
		Expect(status.LastChecked).To(BeTemporally("~", time.Now(), time.Second))

		healthy.Store(true)
		Eventually(hc.Available, time.Second, 5*time.Millisecond).Should(BeTrue())

		status = hc.Snapshot()
		Expect(status.FailureCount).To(BeZero())
		Expect(status.LastError).To(BeEmpty())
	})

	It("tolerates a single transient failure", func() {
		var calls atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		hc := newChecker(srv)
		hc.Start(context.Background())
		defer hc.Stop()

		Consistently(hc.Available, 100*time.Millisecond, 5*time.Millisecond).Should(BeTrue())
	})

	It("treats an unreachable provider as a failure", func() {
		client := billing.NewClient(config.Config{BillingURL: "http://127.0.0.1:1"})
		hc := billing.NewHealthChecker(client, 5*time.Millisecond)
		hc.Start(context.Background())
		defer hc.Stop()

		Eventually(hc.Available, time.Second, 5*time.Millisecond).Should(BeFalse())
		Expect(hc.Snapshot().LastError).NotTo(BeEmpty())
	})

	It("stops cleanly", func() {
		srv := newProvider()
		defer srv.Close()

		hc := newChecker(srv)
		hc.Start(context.Background())
		hc.Stop()
	})
})
