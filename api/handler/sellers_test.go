package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gin-gonic/gin"

	"github.com/CyrilCartoux/watch-pros-sub004/api/handler"
	"github.com/CyrilCartoux/watch-pros-sub004/api/middleware"
	"github.com/CyrilCartoux/watch-pros-sub004/config"
	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	entnotification "github.com/CyrilCartoux/watch-pros-sub004/ent/notification"
	entsellerprofile "github.com/CyrilCartoux/watch-pros-sub004/ent/sellerprofile"
	entuser "github.com/CyrilCartoux/watch-pros-sub004/ent/user"
)

var _ = Describe("SellerHandler", func() {
	var (
		router    *gin.Engine
		hub       *handler.WSHub
		applicant *ent.User
	)

	applicantHeaders := map[string]string{"X-Api-Token": "applicant-token"}
	adminHeaders := map[string]string{"X-Api-Token": "admin-token"}

	apply := func(headers map[string]string) *httptest.ResponseRecorder {
		return doPost(router, "/sellers/apply", map[string]string{
			"company_name": "Precision Watches SARL",
			"country":      "FR",
			"vat_number":   "FR123456789",
		}, headers)
	}

	profileStatus := func(u *ent.User) entsellerprofile.Status {
		p, err := db.SellerProfile.Query().
			Where(entsellerprofile.HasUserWith(entuser.IDEQ(u.ID))).
			Only(context.Background())
		Expect(err).NotTo(HaveOccurred())
		return p.Status
	}

	BeforeEach(func() {
		cleanDB()
		gin.SetMode(gin.TestMode)
		hub = handler.NewWSHub()
		router = gin.New()
		h := handler.NewSellerHandler(db, handler.NewNotifier(db, hub))
		auth := router.Group("/")
		auth.Use(middleware.Auth(db, config.Config{}))
		auth.POST("/sellers/apply", h.Apply)
		auth.GET("/sellers/me", h.GetOwnProfile)
		admin := router.Group("/admin")
		admin.Use(middleware.Auth(db, config.Config{}), middleware.AdminOnly())
		admin.GET("/sellers/pending", h.ListPending)
		admin.POST("/sellers/:id/approve", h.Approve)
		admin.POST("/sellers/:id/reject", h.Reject)

		applicant = createUser("applicant@dealer.com", "applicant1", false)
		createSession(applicant, "applicant-token")
		adminUser := createUser("admin@site.com", "adminpass1", true)
		createSession(adminUser, "admin-token")
	})

	AfterEach(func() {
		hub.Shutdown()
	})

	// ── Apply ─────────────────────────────────────────────────────────────────

	Describe("Apply", func() {
		It("creates a pending application", func() {
			w := apply(applicantHeaders)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(profileStatus(applicant)).To(Equal(entsellerprofile.StatusPending))
		})

		It("rejects a second application while one is pending", func() {
			apply(applicantHeaders)

			w := apply(applicantHeaders)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("rejects re-application when already verified", func() {
			createSellerProfile(applicant, entsellerprofile.StatusVerified)

			w := apply(applicantHeaders)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("lets a rejected applicant re-apply, resetting to pending", func() {
			p := createSellerProfile(applicant, entsellerprofile.StatusRejected)
			db.SellerProfile.UpdateOneID(p.ID).SetNote("Incomplete papers").ExecX(context.Background())

			w := apply(applicantHeaders)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["status"]).To(Equal("pending"))
			Expect(resp).NotTo(HaveKey("note"))
		})

		It("returns 400 when company_name is missing", func() {
			w := doPost(router, "/sellers/apply", map[string]string{"country": "FR"}, applicantHeaders)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	// ── GetOwnProfile ─────────────────────────────────────────────────────────

	Describe("GetOwnProfile", func() {
		It("returns the caller's application", func() {
			apply(applicantHeaders)

			w := doGet(router, "/sellers/me", applicantHeaders)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["company_name"]).To(Equal("Precision Watches SARL"))
		})

		It("returns 404 before applying", func() {
			w := doGet(router, "/sellers/me", applicantHeaders)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	// ── Review queue ──────────────────────────────────────────────────────────

	Describe("ListPending", func() {
		It("lists pending applications oldest first, admin only", func() {
			apply(applicantHeaders)

			w := doGet(router, "/admin/sellers/pending", adminHeaders)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp struct {
				Applications []map[string]interface{} `json:"applications"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Applications).To(HaveLen(1))

			w2 := doGet(router, "/admin/sellers/pending", applicantHeaders)
			Expect(w2.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("Approve", func() {
		It("verifies the profile and notifies the applicant", func() {
			p := createSellerProfile(applicant, entsellerprofile.StatusPending)

			w := doPost(router, "/admin/sellers/"+p.ID.String()+"/approve", nil, adminHeaders)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(profileStatus(applicant)).To(Equal(entsellerprofile.StatusVerified))

			n, err := db.Notification.Query().
				Where(entnotification.TypeEQ(entnotification.TypeSellerApproved)).
				Count(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
		})

		It("returns 409 when the application is already reviewed", func() {
			p := createSellerProfile(applicant, entsellerprofile.StatusVerified)

			w := doPost(router, "/admin/sellers/"+p.ID.String()+"/approve", nil, adminHeaders)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})
	})

	Describe("Reject", func() {
		It("stores the optional note and includes it in the notification", func() {
			p := createSellerProfile(applicant, entsellerprofile.StatusPending)

			w := doPost(router, "/admin/sellers/"+p.ID.String()+"/reject",
				map[string]string{"note": "VAT number could not be verified"}, adminHeaders)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(profileStatus(applicant)).To(Equal(entsellerprofile.StatusRejected))

			notif, err := db.Notification.Query().
				Where(entnotification.TypeEQ(entnotification.TypeSellerRejected)).
				Only(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(notif.Body).To(ContainSubstring("VAT number could not be verified"))
		})

		It("works without a body", func() {
			p := createSellerProfile(applicant, entsellerprofile.StatusPending)

			w := doPost(router, "/admin/sellers/"+p.ID.String()+"/reject", nil, adminHeaders)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(profileStatus(applicant)).To(Equal(entsellerprofile.StatusRejected))
		})

		It("returns 404 for an unknown profile", func() {
			w := doPost(router, "/admin/sellers/5f6d3c0a-98f8-4f76-9aee-0a2b8a6f4a11/reject", nil, adminHeaders)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
