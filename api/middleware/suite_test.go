package middleware_test

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

func TestMiddleware(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Middleware Suite")
}

var _ = BeforeSuite(func() {
	db = enttest.Open(GinkgoT(), "sqlite3",
		"file:middleware_test?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)")
})

var _ = AfterSuite(func() {
	Expect(db.Close()).To(Succeed())
})

func cleanDB() {
	ctx := context.Background()
	_, _ = db.Session.Delete().Exec(ctx)
	_, _ = db.User.Delete().Exec(ctx)
}

func createUser(email string, isAdmin bool) *ent.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password12"), bcrypt.MinCost)
	Expect(err).NotTo(HaveOccurred())
	u, err := db.User.Create().
		SetEmail(email).
		SetDisplayName(email).
		SetHashedPassword(string(hashed)).
		SetIsAdmin(isAdmin).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return u
}

func createSession(user *ent.User, token string) *ent.Session {
	s, err := db.Session.Create().
		SetUser(user).
		SetToken(token).
		SetUserAgent("test-agent").
		SetIP("127.0.0.1").
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return s
}
