//go:build e2e

package e2e

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Listing views", func() {
	It("counts an authenticated view once within the dedup window", func() {
		listingID := createListing(1_000_000)

		first := parseJSONObject(post(apiURL("/listings/"+listingID+"/view"), nil, buyerToken))
		Expect(first["viewed"]).To(BeTrue())

		second := parseJSONObject(post(apiURL("/listings/"+listingID+"/view"), nil, buyerToken))
		Expect(second["viewed"]).To(BeFalse())

		listing := parseJSONObject(get(apiURL("/listings/"+listingID), ""))
		Expect(listing["views_count"]).To(BeNumerically("==", 1))
	})

	It("counts distinct accounts separately", func() {
		listingID := createListing(1_000_000)

		buyerView := parseJSONObject(post(apiURL("/listings/"+listingID+"/view"), nil, buyerToken))
		Expect(buyerView["viewed"]).To(BeTrue())

		adminView := parseJSONObject(post(apiURL("/listings/"+listingID+"/view"), nil, adminToken))
		Expect(adminView["viewed"]).To(BeTrue())

		listing := parseJSONObject(get(apiURL("/listings/"+listingID), ""))
		Expect(listing["views_count"]).To(BeNumerically("==", 2))
	})

	It("accepts anonymous views", func() {
		listingID := createListing(1_000_000)

		resp := post(apiURL("/listings/"+listingID+"/view"), nil, "")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		body := parseJSONObject(resp)
		Expect(body["viewed"]).To(BeTrue())
	})

	It("returns 404 for an unknown listing", func() {
		resp := post(apiURL("/listings/00000000-0000-0000-0000-000000000000/view"), nil, "")
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
	})
})
