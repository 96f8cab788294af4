//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// createListing publishes an active listing owned by the suite's seller and
// returns its ID. Titles are timestamped so reruns don't collide.
func createListing(priceCents int64) string {
	resp := post(apiURL("/listings"), map[string]interface{}{
		"title":       fmt.Sprintf("E2E Submariner %d", time.Now().UnixNano()),
		"brand_id":    rolexID,
		"price_cents": priceCents,
		"condition":   "very_good",
	}, sellerToken)
	ExpectWithOffset(1, resp.StatusCode).To(Equal(http.StatusCreated))
	body := parseJSONObject(resp)
	return body["id"].(string)
}

var _ = Describe("Marketplace", func() {
	Describe("Listings", func() {
		It("publishes a listing and serves it publicly", func() {
			id := createListing(1_250_000)

			resp := get(apiURL("/listings/"+id), "")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			body := parseJSONObject(resp)
			Expect(body["status"]).To(Equal("active"))
			Expect(body["brand_slug"]).To(Equal("rolex"))
			Expect(body["price_cents"]).To(BeNumerically("==", 1_250_000))
		})

		It("rejects listing creation from unverified accounts", func() {
			resp := post(apiURL("/listings"), map[string]interface{}{
				"title":       "Should not exist",
				"brand_id":    rolexID,
				"price_cents": 100,
			}, buyerToken)
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
		})

		It("lets the owner update the price", func() {
			id := createListing(900_000)

			resp := patch(apiURL("/listings/"+id), map[string]interface{}{
				"price_cents": 850_000,
			}, sellerToken)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			body := parseJSONObject(resp)
			Expect(body["price_cents"]).To(BeNumerically("==", 850_000))
		})
	})

	Describe("Offers", func() {
		It("runs an offer through to acceptance", func() {
			listingID := createListing(2_000_000)

			offerResp := post(apiURL("/listings/"+listingID+"/offers"), map[string]interface{}{
				"amount_cents": 1_800_000,
				"message":      "Full set, immediate wire transfer.",
			}, buyerToken)
			Expect(offerResp.StatusCode).To(Equal(http.StatusCreated))
			offer := parseJSONObject(offerResp)
			Expect(offer["status"]).To(Equal("pending"))

			acceptResp := post(apiURL("/offers/"+offer["id"].(string)+"/accept"), nil, sellerToken)
			Expect(acceptResp.StatusCode).To(Equal(http.StatusOK))
			_ = acceptResp.Body.Close()

			listing := parseJSONObject(get(apiURL("/listings/"+listingID), ""))
			Expect(listing["status"]).To(Equal("sold"))
		})

		It("rejects offers on the bidder's own listing", func() {
			listingID := createListing(500_000)

			resp := post(apiURL("/listings/"+listingID+"/offers"), map[string]interface{}{
				"amount_cents": 400_000,
			}, sellerToken)
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Messaging", func() {
		It("opens a conversation and delivers the reply", func() {
			listingID := createListing(750_000)

			convResp := post(apiURL("/conversations"), map[string]interface{}{
				"listing_id": listingID,
				"body":       "Is the bracelet unpolished?",
			}, buyerToken)
			Expect(convResp.StatusCode).To(Equal(http.StatusCreated))
			conv := parseJSONObject(convResp)
			convID := conv["id"].(string)

			replyResp := post(apiURL("/conversations/"+convID+"/messages"), map[string]interface{}{
				"body": "Yes, completely unpolished.",
			}, sellerToken)
			Expect(replyResp.StatusCode).To(Equal(http.StatusCreated))
			_ = replyResp.Body.Close()

			messages := parseJSONObject(get(apiURL("/conversations/"+convID+"/messages"), buyerToken))
			Expect(messages["messages"].([]interface{})).To(HaveLen(2))
		})
	})

	Describe("Favorites", func() {
		It("saves and removes a favorite", func() {
			listingID := createListing(300_000)

			addResp := post(apiURL("/listings/"+listingID+"/favorite"), nil, buyerToken)
			Expect(addResp.StatusCode).To(Equal(http.StatusCreated))
			_ = addResp.Body.Close()

			favs := parseJSONObject(get(apiURL("/favorites"), buyerToken))
			ids := []string{}
			for _, raw := range favs["listings"].([]interface{}) {
				ids = append(ids, raw.(map[string]interface{})["id"].(string))
			}
			Expect(ids).To(ContainElement(listingID))

			delResp := del(apiURL("/listings/"+listingID+"/favorite"), buyerToken)
			Expect(delResp.StatusCode).To(Equal(http.StatusNoContent))
			_ = delResp.Body.Close()
		})
	})

	Describe("Notifications", func() {
		It("notifies the seller about a new offer", func() {
			listingID := createListing(600_000)

			offerResp := post(apiURL("/listings/"+listingID+"/offers"), map[string]interface{}{
				"amount_cents": 550_000,
			}, buyerToken)
			Expect(offerResp.StatusCode).To(Equal(http.StatusCreated))
			_ = offerResp.Body.Close()

			Eventually(func() []interface{} {
				body := parseJSONObject(get(apiURL("/notifications?unread=true"), sellerToken))
				list, _ := body["notifications"].([]interface{})
				return list
			}, 10*time.Second, 500*time.Millisecond).ShouldNot(BeEmpty())
		})
	})
})
