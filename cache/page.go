// Package cache holds the whole-page cache for the index. The stored
// entry is shared process-wide: populated lazily on first read after
// eviction, evicted by TTL expiry or an explicit Invalidate call, and
// deliberately NOT touched by writes - the index may serve stale
// content for up to the TTL window.
package cache

import (
	"strconv"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type entry struct {
	body    []byte
	expires time.Time
}

type PageCache struct {
	entries cmap.ConcurrentMap[string, entry]
}

func NewPageCache() *PageCache {
	return &PageCache{
		entries: cmap.New[entry](),
	}
}

// Pages is the process-wide cache instance used by the handlers
var Pages = NewPageCache()

const indexKeyPrefix = "index:p"

func IndexKey(page int) string {
	return indexKeyPrefix + strconv.Itoa(page)
}

// GetOrRender returns the cached body for key if it is still fresh;
// otherwise it calls render, stores the result for ttl and returns it.
// Render errors are returned as-is and nothing is stored.
func (pc *PageCache) GetOrRender(key string, ttl time.Duration, render func() ([]byte, error)) ([]byte, error) {
	if e, ok := pc.entries.Get(key); ok && time.Now().Before(e.expires) {
		return e.body, nil
	}
	body, err := render()
	if err != nil {
		return nil, err
	}
	pc.entries.Set(key, entry{body: body, expires: time.Now().Add(ttl)})
	return body, nil
}

// Invalidate evicts one key so the next GetOrRender re-renders
func (pc *PageCache) Invalidate(key string) {
	pc.entries.Remove(key)
}

// InvalidateIndex evicts every cached index page
func InvalidateIndex() {
	for _, key := range Pages.entries.Keys() {
		Pages.entries.Remove(key)
	}
}
