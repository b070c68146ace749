// Package cache implements the read-side query cache. Each read is addressed
// by a structured key (resource name plus canonicalized parameters); identical
// keys share one cached result and one in-flight fetch. Writes invalidate by
// resource prefix, which covers both the unscoped collection key and every
// per-parameter key under the same resource.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/academix/school-system/internal/api/metrics"
)

// Key addresses one cached read.
type Key struct {
	Resource string
	Params   []string
}

// NewKey builds a key for a resource scoped by the given parameters. A key
// with no parameters addresses the unscoped "all" read.
func NewKey(resource string, params ...string) Key {
	return Key{Resource: resource, Params: params}
}

// String renders the canonical cache key: "resource:all" when unscoped,
// otherwise "resource:p1:p2:...".
func (k Key) String() string {
	if len(k.Params) == 0 {
		return k.Resource + ":all"
	}
	return k.Resource + ":" + strings.Join(k.Params, ":")
}

type entry struct {
	value any
	err   error
}

// QueryCache is the shared read cache. It starts not-ready: until the backing
// stores are connected, every fetch resolves to an empty value immediately
// instead of blocking, so callers can render loading-then-empty.
type QueryCache struct {
	store *gocache.Cache
	group singleflight.Group

	mu    sync.RWMutex
	ready bool
}

// New creates a QueryCache whose entries expire after ttl.
func New(ttl time.Duration) *QueryCache {
	return &QueryCache{store: gocache.New(ttl, 2*ttl)}
}

// SetReady flips the readiness gate. Becoming ready drops cached error
// entries so the failed reads are retried on next access.
func (c *QueryCache) SetReady(ready bool) {
	c.mu.Lock()
	wasReady := c.ready
	c.ready = ready
	c.mu.Unlock()

	if ready && !wasReady {
		for k, item := range c.store.Items() {
			if e, ok := item.Object.(entry); ok && e.err != nil {
				c.store.Delete(k)
			}
		}
	}
}

// Ready reports the current readiness state.
func (c *QueryCache) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// Fetch returns the cached result for key, or runs fn exactly once per key
// across concurrent callers and caches its outcome, errors included. A failed
// fetch stays in its error state until the prefix is invalidated or the cache
// becomes ready again. While not ready, Fetch returns (nil, nil) without
// calling fn.
func (c *QueryCache) Fetch(ctx context.Context, key Key, fn func(context.Context) (any, error)) (any, error) {
	if !c.Ready() {
		return nil, nil
	}

	ck := key.String()
	if cached, ok := c.store.Get(ck); ok {
		metrics.CacheHitsTotal.WithLabelValues(key.Resource).Inc()
		e := cached.(entry)
		return e.value, e.err
	}
	metrics.CacheMissesTotal.WithLabelValues(key.Resource).Inc()

	value, err, _ := c.group.Do(ck, func() (any, error) {
		if cached, ok := c.store.Get(ck); ok {
			e := cached.(entry)
			return e.value, e.err
		}
		v, err := fn(ctx)
		c.store.Set(ck, entry{value: v, err: err}, gocache.DefaultExpiration)
		return v, err
	})
	return value, err
}

// InvalidatePrefix marks stale every cached read whose key starts with the
// resource prefix. The next access re-fetches.
func (c *QueryCache) InvalidatePrefix(resource string) {
	prefix := resource + ":"
	for k := range c.store.Items() {
		if strings.HasPrefix(k, prefix) {
			c.store.Delete(k)
		}
	}
	metrics.CacheInvalidationsTotal.WithLabelValues(resource).Inc()
}

// FetchAs is a typed wrapper over Fetch. The not-ready empty resolution comes
// back as the zero value of T.
func FetchAs[T any](ctx context.Context, c *QueryCache, key Key, fn func(context.Context) (T, error)) (T, error) {
	v, err := c.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if v == nil {
		var zero T
		return zero, err
	}
	return v.(T), err
}
