package ccache

import (
	"sync"

	"github.com/golang/groupcache/lru"
	"massnet.org/sha256/sha256"
)

// DigestCache is a concurrency safe LRU cache of digests keyed by message
// content. Messages longer than maxLen are never stored.
type DigestCache struct {
	l      sync.Mutex
	cache  *lru.Cache
	maxLen int
}

// NewDigestCache returns a cache holding up to maxEntries digests of
// messages at most maxLen bytes long.
func NewDigestCache(maxEntries, maxLen int) *DigestCache {
	return &DigestCache{
		cache:  lru.New(maxEntries),
		maxLen: maxLen,
	}
}

// Cacheable reports whether a digest of msg may be stored.
func (c *DigestCache) Cacheable(msg []byte) bool {
	return len(msg) <= c.maxLen
}

func (c *DigestCache) Get(msg []byte) (sha256.Digest, bool) {
	if !c.Cacheable(msg) {
		return sha256.Digest{}, false
	}
	c.l.Lock()
	defer c.l.Unlock()
	v, ok := c.cache.Get(string(msg))
	if !ok {
		return sha256.Digest{}, false
	}
	return v.(sha256.Digest), true
}

func (c *DigestCache) Add(msg []byte, d sha256.Digest) {
	if !c.Cacheable(msg) {
		return
	}
	c.l.Lock()
	c.cache.Add(string(msg), d)
	c.l.Unlock()
}

func (c *DigestCache) Remove(msg []byte) {
	c.l.Lock()
	c.cache.Remove(string(msg))
	c.l.Unlock()
}

func (c *DigestCache) Clear() {
	c.l.Lock()
	c.cache.Clear()
	c.l.Unlock()
}

func (c *DigestCache) Len() int {
	c.l.Lock()
	defer c.l.Unlock()
	return c.cache.Len()
}

func (c *DigestCache) SetOnEvicted(onEvicted func(msg string, d sha256.Digest)) {
	c.l.Lock()
	c.cache.OnEvicted = func(key lru.Key, value interface{}) {
		onEvicted(key.(string), value.(sha256.Digest))
	}
	c.l.Unlock()
}
