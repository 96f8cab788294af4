package views_test

import (
	"context"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/google/uuid"

	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	"github.com/CyrilCartoux/watch-pros-sub004/views"
)

var _ = Describe("Recorder", func() {
	ctx := context.Background()

	viewsCount := func(listingID uuid.UUID) int64 {
		l, err := db.Listing.Get(ctx, listingID)
		Expect(err).NotTo(HaveOccurred())
		return l.ViewsCount
	}

	BeforeEach(cleanDB)

	Describe("Record", func() {
		It("counts the first view and dedups the second", func() {
			listing := createListing("submariner")
			rec := views.NewRecorder(db, 24*time.Hour)

			counted, err := rec.Record(ctx, listing.ID, "viewer-a")
			Expect(err).NotTo(HaveOccurred())
			Expect(counted).To(BeTrue())

			counted, err = rec.Record(ctx, listing.ID, "viewer-a")
			Expect(err).NotTo(HaveOccurred())
			Expect(counted).To(BeFalse())

			Expect(viewsCount(listing.ID)).To(Equal(int64(1)))
		})

		It("counts distinct viewers separately", func() {
			listing := createListing("daytona")
			rec := views.NewRecorder(db, 24*time.Hour)

			for _, key := range []string{"viewer-a", "viewer-b", "viewer-c"} {
				counted, err := rec.Record(ctx, listing.ID, key)
				Expect(err).NotTo(HaveOccurred())
				Expect(counted).To(BeTrue())
			}
			Expect(viewsCount(listing.ID)).To(Equal(int64(3)))
		})

		It("tracks views per listing", func() {
			first := createListing("nautilus")
			second := createListing("aquanaut")
			rec := views.NewRecorder(db, 24*time.Hour)

			counted, err := rec.Record(ctx, first.ID, "viewer-a")
			Expect(err).NotTo(HaveOccurred())
			Expect(counted).To(BeTrue())

			counted, err = rec.Record(ctx, second.ID, "viewer-a")
			Expect(err).NotTo(HaveOccurred())
			Expect(counted).To(BeTrue())

			Expect(viewsCount(first.ID)).To(Equal(int64(1)))
			Expect(viewsCount(second.ID)).To(Equal(int64(1)))
		})

		It("counts again once the window has rolled past the previous view", func() {
			listing := createListing("speedmaster")
			window := time.Minute
			rec := views.NewRecorder(db, window)

			counted, err := rec.Record(ctx, listing.ID, "viewer-a")
			Expect(err).NotTo(HaveOccurred())
			Expect(counted).To(BeTrue())

			// recorded_at and window_bucket are immutable, so backdating the
			// view means replacing the row.
			existing, err := db.ListingView.Query().Only(ctx)
			Expect(err).NotTo(HaveOccurred())
			_, err = db.ListingView.Delete().Exec(ctx)
			Expect(err).NotTo(HaveOccurred())
			old := time.Now().Add(-2 * window)
			_, err = db.ListingView.Create().
				SetListingID(listing.ID).
				SetViewerKey(existing.ViewerKey).
				SetRecordedAt(old).
				SetWindowBucket(views.Bucket(old, window)).
				Save(ctx)
			Expect(err).NotTo(HaveOccurred())

			counted, err = rec.Record(ctx, listing.ID, "viewer-a")
			Expect(err).NotTo(HaveOccurred())
			Expect(counted).To(BeTrue())
			Expect(viewsCount(listing.ID)).To(Equal(int64(2)))
		})

		It("returns not-found for an unknown listing", func() {
			rec := views.NewRecorder(db, 24*time.Hour)
			_, err := rec.Record(ctx, uuid.New(), "viewer-a")
			Expect(ent.IsNotFound(err)).To(BeTrue())
		})

		It("moves the counter by exactly one under concurrent identical views", func() {
			listing := createListing("royal-oak")
			rec := views.NewRecorder(db, 24*time.Hour)

			const goroutines = 8
			results := make([]bool, goroutines)
			var wg sync.WaitGroup
			for i := 0; i < goroutines; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					defer GinkgoRecover()
					counted, err := rec.Record(ctx, listing.ID, "same-viewer")
					Expect(err).NotTo(HaveOccurred())
					results[i] = counted
				}(i)
			}
			wg.Wait()

			counted := 0
			for _, r := range results {
				if r {
					counted++
				}
			}
			Expect(counted).To(Equal(1))
			Expect(viewsCount(listing.ID)).To(Equal(int64(1)))
			Expect(db.ListingView.Query().CountX(ctx)).To(Equal(1))
		})
	})

	Describe("NewRecorder", func() {
		It("falls back to the default window when given a non-positive one", func() {
			listing := createListing("gmt-master")
			rec := views.NewRecorder(db, 0)

			counted, err := rec.Record(ctx, listing.ID, "viewer-a")
			Expect(err).NotTo(HaveOccurred())
			Expect(counted).To(BeTrue())

			counted, err = rec.Record(ctx, listing.ID, "viewer-a")
			Expect(err).NotTo(HaveOccurred())
			Expect(counted).To(BeFalse())
		})

		It("falls back to the default window for sub-second ones", func() {
			listing := createListing("daytona")
			rec := views.NewRecorder(db, 500*time.Millisecond)

			counted, err := rec.Record(ctx, listing.ID, "viewer-a")
			Expect(err).NotTo(HaveOccurred())
			Expect(counted).To(BeTrue())

			counted, err = rec.Record(ctx, listing.ID, "viewer-a")
			Expect(err).NotTo(HaveOccurred())
			Expect(counted).To(BeFalse())
		})
	})
})

var _ = Describe("AnonymousKey", func() {
	It("is deterministic for the same ip and user agent", func() {
		Expect(views.AnonymousKey("203.0.113.7", "Mozilla/5.0")).
			To(Equal(views.AnonymousKey("203.0.113.7", "Mozilla/5.0")))
	})

	It("differs across ips and user agents", func() {
		base := views.AnonymousKey("203.0.113.7", "Mozilla/5.0")
		Expect(views.AnonymousKey("203.0.113.8", "Mozilla/5.0")).NotTo(Equal(base))
		Expect(views.AnonymousKey("203.0.113.7", "curl/8.0")).NotTo(Equal(base))
	})

	It("never embeds the raw address", func() {
		key := views.AnonymousKey("203.0.113.7", "Mozilla/5.0")
		Expect(key).To(HaveLen(64))
		Expect(key).NotTo(ContainSubstring("203.0.113.7"))
	})
})

var _ = Describe("Bucket", func() {
	It("maps timestamps within one window to the same bucket", func() {
		base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		Expect(views.Bucket(base, 24*time.Hour)).
			To(Equal(views.Bucket(base.Add(23*time.Hour), 24*time.Hour)))
	})

	It("advances across window boundaries", func() {
		base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		Expect(views.Bucket(base.Add(24*time.Hour), 24*time.Hour)).
			To(Equal(views.Bucket(base, 24*time.Hour) + 1))
	})
})
