//go:build e2e

package e2e

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Catalog", func() {
	It("serves the brand list publicly with a Cache-Control header", func() {
		resp := get(apiURL("/brands"), "")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(resp.Header.Get("Cache-Control")).To(ContainSubstring("max-age"))

		body := parseJSONObject(resp)
		brands := body["brands"].([]interface{})
		names := make([]string, 0, len(brands))
		for _, raw := range brands {
			names = append(names, raw.(map[string]interface{})["name"].(string))
		}
		Expect(names).To(ContainElement("Rolex"))
	})

	It("filters brands by slug", func() {
		resp := get(apiURL("/brands?slugs=rolex"), "")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		body := parseJSONObject(resp)
		brands := body["brands"].([]interface{})
		Expect(brands).To(HaveLen(1))
		Expect(brands[0].(map[string]interface{})["slug"]).To(Equal("rolex"))
	})

	It("lists models for a brand", func() {
		createResp := post(apiURL("/admin/models"), map[string]interface{}{
			"brand_id": rolexID,
			"name":     "Submariner Date",
		}, adminToken)
		Expect(createResp.StatusCode).To(
			SatisfyAny(Equal(http.StatusCreated), Equal(http.StatusConflict)))
		_ = createResp.Body.Close()

		resp := get(apiURL("/models?brand_id="+rolexID), "")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		body := parseJSONObject(resp)
		models := body["models"].([]interface{})
		Expect(models).NotTo(BeEmpty())
	})

	It("rejects brand creation for non-admins", func() {
		resp := post(apiURL("/admin/brands"), map[string]interface{}{"name": "Forbidden Brand"}, buyerToken)
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
	})
})
