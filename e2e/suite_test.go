//go:build e2e

// Package e2e contains end-to-end tests that run against a live Docker
// stack (API + Postgres + mock billing provider).
//
// Run with: go test -tags e2e -v -count=1 -timeout 5m ./e2e/...
// Or:       make e2e
package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// ── Configurable addresses ────────────────────────────────────────────────────

var (
	// apiBase is the base URL of the running API.
	apiBase = envOr("E2E_API_URL", "http://localhost:18080")

	adminEmail    = envOr("E2E_ADMIN_EMAIL", "admin@watchpros.local")
	adminPassword = envOr("E2E_ADMIN_PASSWORD", "e2e-admin-password")
)

// ── Shared state populated by BeforeSuite ─────────────────────────────────────

var (
	adminToken  string
	sellerToken string
	buyerToken  string
	seller      userInfo
	buyer       userInfo
	rolexID     string
)

type userInfo struct {
	ID    string
	Email string
}

func TestE2E(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "E2E Suite")
}

var _ = BeforeSuite(func() {
	By("Waiting for the API to be healthy")
	waitForHealth(apiBase+"/health", 120*time.Second)

	By("Logging in as admin")
	adminToken = login(adminEmail, adminPassword)
	Expect(adminToken).NotTo(BeEmpty(), "admin login failed")

	By("Registering a seller account")
	sellerToken, seller = register("e2e-seller@dealer.example", "e2e-seller-pass!")

	By("Registering a buyer account")
	buyerToken, buyer = register("e2e-buyer@dealer.example", "e2e-buyer-pass!")

	By("Applying for seller verification")
	applySeller(sellerToken, "E2E Watches GmbH", "DE")

	By("Approving the seller")
	approveSeller(seller.ID)

	By("Ensuring the Rolex brand exists")
	rolexID = ensureBrand("Rolex")

	By("Setup complete")
})

// ── Bootstrap helpers ─────────────────────────────────────────────────────────

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func waitForHealth(url string, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	client := &http.Client{Timeout: 3 * time.Second}
	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil && resp.StatusCode == http.StatusOK {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(2 * time.Second)
	}
	Fail(fmt.Sprintf("API did not become healthy at %s within %s", url, timeout))
}

func login(email, password string) string {
	resp := post(apiBase+"/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	defer resp.Body.Close()
	ExpectWithOffset(1, resp.StatusCode).To(Equal(http.StatusOK),
		fmt.Sprintf("login failed for %s: status %d", email, resp.StatusCode))

	var body map[string]interface{}
	Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
	return body["token"].(string)
}

// register creates an account, or logs into it when a previous run already
// created it, and returns the token plus user info.
func register(email, password string) (string, userInfo) {
	resp := post(apiBase+"/auth/register", map[string]string{
		"email":        email,
		"password":     password,
		"display_name": email,
	}, "")
	defer resp.Body.Close()
	ExpectWithOffset(1, resp.StatusCode).To(
		SatisfyAny(Equal(http.StatusCreated), Equal(http.StatusConflict)),
		fmt.Sprintf("register failed for %s: status %d", email, resp.StatusCode))

	token := ""
	if resp.StatusCode == http.StatusCreated {
		var body map[string]interface{}
		Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
		token = body["token"].(string)
	} else {
		token = login(email, password)
	}

	me := parseJSONObject(get(apiBase+"/auth/me", token))
	return token, userInfo{ID: me["id"].(string), Email: email}
}

func applySeller(token, companyName, country string) {
	resp := post(apiBase+"/sellers/apply", map[string]string{
		"company_name": companyName,
		"country":      country,
	}, token)
	defer resp.Body.Close()
	ExpectWithOffset(1, resp.StatusCode).To(
		SatisfyAny(Equal(http.StatusCreated), Equal(http.StatusConflict)),
		fmt.Sprintf("seller application failed: status %d", resp.StatusCode))
}

func approveSeller(userID string) {
	body := parseJSONObject(get(apiBase+"/admin/sellers/pending", adminToken))
	pending, _ := body["applications"].([]interface{})
	for _, raw := range pending {
		p := raw.(map[string]interface{})
		if p["user_id"].(string) != userID {
			continue
		}
		resp := post(apiBase+"/admin/sellers/"+p["id"].(string)+"/approve", nil, adminToken)
		ExpectWithOffset(1, resp.StatusCode).To(Equal(http.StatusOK),
			fmt.Sprintf("seller approval failed: status %d", resp.StatusCode))
		_ = resp.Body.Close()
		return
	}
	// Not pending — already approved by a previous run.
}

// ensureBrand creates the brand if needed and returns its ID.
func ensureBrand(name string) string {
	resp := post(apiBase+"/admin/brands", map[string]interface{}{
		"name":    name,
		"popular": true,
	}, adminToken)
	defer resp.Body.Close()
	ExpectWithOffset(1, resp.StatusCode).To(
		SatisfyAny(Equal(http.StatusCreated), Equal(http.StatusConflict)),
		fmt.Sprintf("brand creation failed: status %d", resp.StatusCode))

	if resp.StatusCode == http.StatusCreated {
		var body map[string]interface{}
		Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
		return body["id"].(string)
	}

	list := parseJSONObject(get(apiBase+"/brands", ""))
	for _, raw := range list["brands"].([]interface{}) {
		b := raw.(map[string]interface{})
		if b["name"].(string) == name {
			return b["id"].(string)
		}
	}
	Fail(fmt.Sprintf("brand %s not found after conflict", name))
	return ""
}
