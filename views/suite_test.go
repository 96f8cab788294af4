package views_test

import (
	"context"
	"database/sql"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/enttest"
	entsellerprofile "github.com/CyrilCartoux/watch-pros-sub004/ent/sellerprofile"
	"github.com/CyrilCartoux/watch-pros-sub004/slug"
)

// modernc.org/sqlite registers itself as "sqlite"; ent expects "sqlite3".
func init() {
	tmp, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		panic(err)
	}
	drv := tmp.Driver()
	_ = tmp.Close()
	sql.Register("sqlite3", drv)
}

var db *ent.Client

func TestViews(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Views Suite")
}

var _ = BeforeSuite(func() {
	db = enttest.Open(GinkgoT(), "sqlite3",
		"file:views_test?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)")
})

var _ = AfterSuite(func() {
	Expect(db.Close()).To(Succeed())
})

func cleanDB() {
	ctx := context.Background()
	_, _ = db.ListingView.Delete().Exec(ctx)
	_, _ = db.Listing.Delete().Exec(ctx)
	_, _ = db.Model.Delete().Exec(ctx)
	_, _ = db.Brand.Delete().Exec(ctx)
	_, _ = db.SellerProfile.Delete().Exec(ctx)
	_, _ = db.User.Delete().Exec(ctx)
}

// createListing builds the minimal seller/brand chain a listing requires.
func createListing(title string) *ent.Listing {
	ctx := context.Background()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password12"), bcrypt.MinCost)
	Expect(err).NotTo(HaveOccurred())
	seller, err := db.User.Create().
		SetEmail(title + "@dealer.com").
		SetDisplayName(title).
		SetHashedPassword(string(hashed)).
		Save(ctx)
	Expect(err).NotTo(HaveOccurred())
	_, err = db.SellerProfile.Create().
		SetUser(seller).
		SetCompanyName("Test Watches GmbH").
		SetCountry("DE").
		SetStatus(entsellerprofile.StatusVerified).
		Save(ctx)
	Expect(err).NotTo(HaveOccurred())
	brand, err := db.Brand.Create().
		SetName(title + " Brand").
		SetSlug(slug.Make(title + " Brand")).
		Save(ctx)
	Expect(err).NotTo(HaveOccurred())
	listing, err := db.Listing.Create().
		SetSeller(seller).
		SetBrand(brand).
		SetTitle(title).
		SetPriceCents(1_000_000).
		Save(ctx)
	Expect(err).NotTo(HaveOccurred())
	return listing
}
