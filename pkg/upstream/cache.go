package upstream

import (
	"container/list"
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultCacheTTL is how long successful responses are reusable.
	DefaultCacheTTL = time.Hour

	// DefaultCacheSize bounds the LRU entry count.
	DefaultCacheSize = 512
)

// ResponseCache is a bounded LRU of parsed upstream responses with TTL
// expiry. Only successful 2xx JSON responses are stored. A hit bypasses the
// rate gate and circuit breaker entirely.
type ResponseCache struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // front = most recently used
	maxSize int
	ttl     time.Duration
}

type cacheEntry struct {
	key      string
	value    any
	storedAt time.Time
}

// NewResponseCache creates a cache with the given bounds. Zero values select
// the defaults.
func NewResponseCache(maxSize int, ttl time.Duration) *ResponseCache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResponseCache{
		entries: make(map[string]*list.Element),
		order:   list.New(),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

// CacheKey derives the cache key from the request identity:
// (upstream, method, path, sorted query, body hash).
func CacheKey(upstream, method, path string, query url.Values, body []byte) string {
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(upstream)
	sb.WriteByte('|')
	sb.WriteString(method)
	sb.WriteByte('|')
	sb.WriteString(path)
	sb.WriteByte('|')
	for _, k := range keys {
		vals := append([]string(nil), query[k]...)
		sort.Strings(vals)
		for _, v := range vals {
			sb.WriteString(k)
			sb.WriteByte('=')
			sb.WriteString(v)
			sb.WriteByte('&')
		}
	}
	sb.WriteByte('|')
	if len(body) > 0 {
		sum := md5.Sum(body)
		sb.WriteString(hex.EncodeToString(sum[:]))
	}
	return sb.String()
}

// Get returns the cached value if present and fresh.
func (c *ResponseCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	entry := el.Value.(*cacheEntry)
	if time.Since(entry.storedAt) > c.ttl {
		c.order.Remove(el)
		delete(c.entries, key)
		return nil, false
	}
	c.order.MoveToFront(el)
	return entry.value, true
}

// Set stores a value, evicting the least recently used entry when full.
func (c *ResponseCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry).value = value
		el.Value.(*cacheEntry).storedAt = time.Now()
		c.order.MoveToFront(el)
		return
	}

	el := c.order.PushFront(&cacheEntry{key: key, value: value, storedAt: time.Now()})
	c.entries[key] = el

	for c.order.Len() > c.maxSize {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
}

// Len returns the current entry count.
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
