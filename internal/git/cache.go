package git

import (
	"sync"
	"time"
)

// CachedService wraps a Service with a TTL-based cache. The list refresh and
// the status bar both query the backend within the same cycle, and the
// filesystem watcher can fire bursts of refreshes; without caching each of
// those would spawn its own git subprocess.
type CachedService struct {
	inner Service
	ttl   time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	val    any
	err    error
	expiry time.Time
}

// Compile-time check.
var _ Service = (*CachedService)(nil)

// NewCachedService wraps an existing Service with a TTL cache. A TTL of 1-2
// seconds is enough to deduplicate queries within one refresh cycle.
func NewCachedService(inner Service, ttl time.Duration) *CachedService {
	return &CachedService{
		inner: inner,
		ttl:   ttl,
		cache: make(map[string]cacheEntry, 4),
	}
}

// Invalidate clears all cached entries so the next read is fresh.
func (c *CachedService) Invalidate() {
	c.mu.Lock()
	c.cache = make(map[string]cacheEntry, 4)
	c.mu.Unlock()
}

func (c *CachedService) get(key string) (val any, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, found := c.cache[key]
	if !found || time.Now().After(e.expiry) {
		return nil, false, nil
	}
	return e.val, true, e.err
}

func (c *CachedService) set(key string, val any, err error) {
	c.mu.Lock()
	c.cache[key] = cacheEntry{val: val, err: err, expiry: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// RepoRoot delegates to the inner service.
func (c *CachedService) RepoRoot() string { return c.inner.RepoRoot() }

// GitDir delegates to the inner service.
func (c *CachedService) GitDir() string { return c.inner.GitDir() }

// Head returns the current HEAD ref (cached).
func (c *CachedService) Head() (string, error) {
	if v, ok, err := c.get("head"); ok {
		return v.(string), err
	}
	v, err := c.inner.Head()
	c.set("head", v, err)
	return v, err
}

// AheadBehind returns the upstream divergence counts (cached).
func (c *CachedService) AheadBehind() (int, int, error) {
	type ab struct{ a, b int }
	if v, ok, err := c.get("aheadbehind"); ok {
		r := v.(ab)
		return r.a, r.b, err
	}
	a, b, err := c.inner.AheadBehind()
	c.set("aheadbehind", ab{a, b}, err)
	return a, b, err
}

// Changes returns the working-tree change records (cached).
func (c *CachedService) Changes() ([]RawChange, error) {
	if v, ok, err := c.get("changes"); ok {
		return v.([]RawChange), err
	}
	v, err := c.inner.Changes()
	c.set("changes", v, err)
	return v, err
}
