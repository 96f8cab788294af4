package handler_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/enttest"
	entsellerprofile "github.com/CyrilCartoux/watch-pros-sub004/ent/sellerprofile"
	"github.com/CyrilCartoux/watch-pros-sub004/slug"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc.org/sqlite registers itself as "sqlite" in database/sql, but
	// ent's dialect layer recognises only "sqlite3". We fetch the already-
	// registered driver via a temporary connection and re-register it under
	// the name ent expects, so enttest.Open works without further changes.
	tmp, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		panic(err)
	}
	drv := tmp.Driver()
	_ = tmp.Close()
	sql.Register("sqlite3", drv)
}

// db is the shared ent client opened once per suite against an in-memory SQLite
// database. The schema is auto-migrated on open; rows are cleared in BeforeEach.
var db *ent.Client

func TestHandlers(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Handler Suite")
}

var _ = BeforeSuite(func() {
	// file: URI — named in-process SQLite database.
	// cache=shared lets multiple connections in the same process share it.
	// _pragma=foreign_keys(1) enables FK enforcement, matching production
	// Postgres behaviour; busy_timeout keeps concurrent specs from failing
	// with SQLITE_BUSY instead of queueing on the shared database.
	db = enttest.Open(GinkgoT(), "sqlite3",
		"file:handler_test?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)")
})

var _ = AfterSuite(func() {
	if db != nil {
		Expect(db.Close()).To(Succeed())
	}
})

// cleanDB deletes all rows in foreign-key-safe order. Call at the top of each
// BeforeEach so every spec starts from a blank slate.
func cleanDB() {
	ctx := context.Background()
	db.Message.Delete().ExecX(ctx)
	db.Conversation.Delete().ExecX(ctx)
	db.Offer.Delete().ExecX(ctx)
	db.Favorite.Delete().ExecX(ctx)
	db.ListingView.Delete().ExecX(ctx)
	db.Notification.Delete().ExecX(ctx)
	db.Listing.Delete().ExecX(ctx)
	db.Model.Delete().ExecX(ctx)
	db.Brand.Delete().ExecX(ctx)
	db.SellerProfile.Delete().ExecX(ctx)
	db.Subscription.Delete().ExecX(ctx)
	db.Session.Delete().ExecX(ctx)
	db.User.Delete().ExecX(ctx)
}

// ── DB helpers ────────────────────────────────────────────────────────────────

// createUser inserts a user with a bcrypt hash. bcrypt.MinCost (4 rounds) is
// used intentionally to keep tests fast without affecting correctness.
func createUser(email, password string, isAdmin bool) *ent.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	Expect(err).NotTo(HaveOccurred())
	u, err := db.User.Create().
		SetEmail(email).
		SetDisplayName(email).
		SetHashedPassword(string(hash)).
		SetIsAdmin(isAdmin).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return u
}

// createSession inserts a session for the given user with the supplied token.
func createSession(user *ent.User, token string) *ent.Session {
	s, err := db.Session.Create().
		SetToken(token).
		SetUserAgent("test-agent").
		SetIP("127.0.0.1").
		SetUser(user).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return s
}

// createBrand inserts a catalog brand; the slug is derived from the name the
// same way the admin endpoint does it.
func createBrand(name string, popular bool) *ent.Brand {
	b, err := db.Brand.Create().
		SetName(name).
		SetSlug(slug.Make(name)).
		SetPopular(popular).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return b
}

// createModel inserts a model under the given brand.
func createModel(brand *ent.Brand, name string) *ent.Model {
	m, err := db.Model.Create().
		SetBrand(brand).
		SetName(name).
		SetSlug(slug.Make(name)).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return m
}

// createSellerProfile inserts a seller profile with the given review status.
func createSellerProfile(user *ent.User, status entsellerprofile.Status) *ent.SellerProfile {
	p, err := db.SellerProfile.Create().
		SetUser(user).
		SetCompanyName("Test Watches GmbH").
		SetCountry("DE").
		SetStatus(status).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return p
}

// createListing inserts an active listing for the given seller and brand.
func createListing(seller *ent.User, brand *ent.Brand, title string, priceCents int64) *ent.Listing {
	l, err := db.Listing.Create().
		SetSeller(seller).
		SetBrand(brand).
		SetTitle(title).
		SetPriceCents(priceCents).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return l
}

// ── HTTP helpers ──────────────────────────────────────────────────────────────

// doRequest fires an HTTP request against handler r and returns the recorder.
// body is JSON-encoded when non-nil. Extra header maps are applied in order.
func doRequest(r http.Handler, method, path string, body interface{}, headers ...map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewReader(b)
	}
	req, _ := http.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPost(r http.Handler, path string, body interface{}, headers ...map[string]string) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, path, body, headers...)
}

func doPatch(r http.Handler, path string, body interface{}, headers ...map[string]string) *httptest.ResponseRecorder { //nolint:unparam
	return doRequest(r, http.MethodPatch, path, body, headers...)
}

func doGet(r http.Handler, path string, headers ...map[string]string) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodGet, path, nil, headers...)
}

func doDelete(r http.Handler, path string, headers ...map[string]string) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodDelete, path, nil, headers...)
}

// doRawPost fires a POST with an arbitrary raw body and Content-Type, useful
// for testing binary uploads such as avatar images.
func doRawPost(r http.Handler, path string, body []byte, contentType string, headers ...map[string]string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
