package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gin-gonic/gin"

	"github.com/CyrilCartoux/watch-pros-sub004/api/handler"
)

var _ = Describe("SystemHandler", func() {
	var h *handler.SystemHandler

	BeforeEach(func() {
		cleanDB()
		h = handler.NewSystemHandler(db)
	})

	serve := func(fn gin.HandlerFunc, path string) *httptest.ResponseRecorder {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET(path, fn)
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	Describe("Health", func() {
		It("returns 200 ok", func() {
			w := serve(h.Health, "/health")

			Expect(w.Code).To(Equal(http.StatusOK))
			var body map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &body)).To(Succeed())
			Expect(body["status"]).To(Equal("ok"))
		})
	})

	Describe("Ready", func() {
		It("returns 200 when the database answers", func() {
			w := serve(h.Ready, "/ready")

			Expect(w.Code).To(Equal(http.StatusOK))
			var body map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &body)).To(Succeed())
			Expect(body["status"]).To(Equal("ok"))
		})
	})
})
