//go:build e2e

package e2e

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Authentication", func() {
	It("rejects a login with the wrong password", func() {
		resp := post(apiURL("/auth/login"), map[string]string{
			"email":    adminEmail,
			"password": "definitely-wrong",
		}, "")
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
	})

	It("rejects protected endpoints without a token", func() {
		resp := get(apiURL("/auth/me"), "")
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
	})

	It("returns the authenticated account on /auth/me", func() {
		me := parseJSONObject(get(apiURL("/auth/me"), buyerToken))
		Expect(me["email"]).To(Equal(buyer.Email))
		Expect(me).NotTo(HaveKey("hashed_password"))
	})

	It("accepts the token as an Authorization bearer header", func() {
		req, err := http.NewRequest(http.MethodGet, apiURL("/auth/me"), nil)
		Expect(err).NotTo(HaveOccurred())
		req.Header.Set("Authorization", "Bearer "+buyerToken)
		resp, err := httpClient.Do(req)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
	})

	It("invalidates the session on logout", func() {
		token, _ := register("e2e-logout@dealer.example", "e2e-logout-pass!")

		resp := post(apiURL("/auth/logout"), nil, token)
		_ = resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusNoContent))

		after := get(apiURL("/auth/me"), token)
		defer after.Body.Close()
		Expect(after.StatusCode).To(Equal(http.StatusUnauthorized))
	})

	It("blocks admin endpoints for regular accounts", func() {
		resp := get(apiURL("/admin/sellers/pending"), buyerToken)
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
	})
})
