package handler

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/CyrilCartoux/watch-pros-sub004/slug"
)

// catalogCache holds serialized catalog responses keyed by the normalized
// request parameters. The catalog is read-mostly and the key space is finite
// (brands × filter combinations), so TTL expiry alone bounds the cache; the
// eviction loop started by newCatalogCache reclaims expired entries.
//
// Entries are immutable: a refresh after expiry stores a whole new payload,
// never mutates one in place. Two requests racing on a cold key may both
// query the database and both store — the second put is an idempotent
// overwrite of equivalent data, so the race only costs one redundant read.
type catalogCache struct {
	cache *ttlcache.Cache[string, json.RawMessage]
	ttl   time.Duration
}

// newCatalogCache creates the catalog response cache. TouchOnHit is disabled
// so an entry's lifetime is counted from when it was stored, not last read:
// a hot key still refreshes from the database once per TTL.
func newCatalogCache(ttl time.Duration) *catalogCache {
	cache := ttlcache.New[string, json.RawMessage](
		ttlcache.WithTTL[string, json.RawMessage](ttl),
		ttlcache.WithDisableTouchOnHit[string, json.RawMessage](),
	)
	go cache.Start() // starts the automatic expired-item eviction loop
	return &catalogCache{cache: cache, ttl: ttl}
}

// get returns the cached payload for key, or nil when the key is absent or
// expired.
func (cc *catalogCache) get(key string) json.RawMessage {
	item := cc.cache.Get(key)
	if item == nil {
		return nil
	}
	return item.Value()
}

// put stores payload under key with a fresh TTL, overwriting any prior entry.
func (cc *catalogCache) put(key string, payload json.RawMessage) {
	cc.cache.Set(key, payload, ttlcache.DefaultTTL)
}

// cacheControl returns the Cache-Control value advertised on catalog
// responses. max-age matches the server-side TTL and stale-while-revalidate
// twice that, so intermediary caches never serve staler data than the server
// itself would.
func (cc *catalogCache) cacheControl() string {
	maxAge := int(cc.ttl.Seconds())
	return fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", maxAge, 2*maxAge)
}

// catalogKey derives the cache key for a catalog query. It must be injective
// over observable query semantics: resource kind, brand scope, the popular
// filter and the slug filter set each contribute a distinct segment, while
// semantically identical requests (same slugs in a different order or case)
// collapse to the same key.
func catalogKey(kind, brandID string, popular *bool, slugs []string) string {
	var b strings.Builder
	b.WriteString(kind)
	b.WriteString("|brand=")
	b.WriteString(brandID)
	b.WriteString("|popular=")
	if popular != nil {
		b.WriteString(fmt.Sprintf("%t", *popular))
	}
	b.WriteString("|slugs=")
	b.WriteString(strings.Join(slug.NormalizeSet(slugs), ","))
	return b.String()
}
