// Package views counts unique listing views. A view is counted at most once
// per viewer per listing within a rolling dedup window, so page reloads don't
// inflate the popularity counter. Authenticated viewers are keyed by user ID;
// anonymous viewers by a one-way hash of their IP and user agent, so no raw
// address is ever stored.
package views

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	entlisting "github.com/CyrilCartoux/watch-pros-sub004/ent/listing"
	entlistingview "github.com/CyrilCartoux/watch-pros-sub004/ent/listingview"
)

// DefaultWindow is the rolling dedup window when none is configured.
const DefaultWindow = 24 * time.Hour

// AnonymousKey derives a stable viewer key for an unauthenticated request.
// The same (ip, userAgent) pair always yields the same key, so repeat visits
// collapse in the dedup check, while the hash keeps the stored key free of
// raw PII. Clients behind the same NAT with the same browser share a key and
// under-count — acceptable for a popularity signal.
func AnonymousKey(ip, userAgent string) string {
	sum := sha256.Sum256([]byte(ip + "|" + userAgent))
	return hex.EncodeToString(sum[:])
}

// Recorder performs the dedup check and the insert-plus-increment for
// listing views. Safe for concurrent use; every call runs its own queries
// against the shared ent client.
type Recorder struct {
	db     *ent.Client
	window time.Duration
}

// NewRecorder returns a Recorder with the given dedup window.
// Windows under one second fall back to DefaultWindow, since Bucket
// works at second granularity.
func NewRecorder(db *ent.Client, window time.Duration) *Recorder {
	if window < time.Second {
		window = DefaultWindow
	}
	return &Recorder{db: db, window: window}
}

// Record counts a view of the listing by the given viewer.
//
// Returns (false, nil) when the viewer already has a view of this listing
// within the rolling window — an idempotent no-op. Otherwise it inserts the
// dedup record and increments the listing's views_count in one transaction,
// and returns (true, nil).
//
// Two concurrent calls for the same (listing, viewer) can both pass the
// rolling-window check; the unique index on (viewer_key, window_bucket,
// listing) rejects the second insert, its transaction rolls back, and the
// counter still moves by exactly one.
func (r *Recorder) Record(ctx context.Context, listingID uuid.UUID, viewerKey string) (bool, error) {
	now := time.Now()

	seen, err := r.db.ListingView.Query().
		Where(
			entlistingview.ViewerKeyEQ(viewerKey),
			entlistingview.RecordedAtGTE(now.Add(-r.window)),
			entlistingview.HasListingWith(entlisting.IDEQ(listingID)),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("views: dedup check: %w", err)
	}
	if seen {
		return false, nil
	}

	tx, err := r.db.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("views: begin tx: %w", err)
	}

	// Increment first: UpdateOneID reports a missing listing as a not-found
	// error, which would otherwise be indistinguishable from a dedup-race
	// constraint error on the insert below.
	err = tx.Listing.UpdateOneID(listingID).
		AddViewsCount(1).
		Exec(ctx)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			return false, err
		}
		return false, fmt.Errorf("views: increment counter: %w", err)
	}

	_, err = tx.ListingView.Create().
		SetListingID(listingID).
		SetViewerKey(viewerKey).
		SetRecordedAt(now).
		SetWindowBucket(Bucket(now, r.window)).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsConstraintError(err) {
			// Lost the race against a concurrent identical view. The rollback
			// reverts the increment, so the winner's count stands alone.
			return false, nil
		}
		return false, fmt.Errorf("views: insert view record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("views: commit: %w", err)
	}
	return true, nil
}

// Bucket maps a timestamp to its dedup bucket: the number of whole windows
// elapsed since the Unix epoch. Concurrent inserts for the same viewer land
// in the same bucket and collide on the unique index; the rolling-window
// query in Record remains the primary dedup check across bucket edges.
func Bucket(t time.Time, window time.Duration) int64 {
	return t.Unix() / int64(window/time.Second)
}
