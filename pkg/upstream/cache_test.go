package upstream

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheKey_QueryOrderIrrelevant(t *testing.T) {
	a := CacheKey("pncp", "GET", "/v1/itens", url.Values{"uf": {"SP"}, "pagina": {"1"}}, nil)
	b := CacheKey("pncp", "GET", "/v1/itens", url.Values{"pagina": {"1"}, "uf": {"SP"}}, nil)
	assert.Equal(t, a, b)
}

func TestCacheKey_Distinguishes(t *testing.T) {
	base := CacheKey("pncp", "GET", "/v1/itens", nil, nil)
	assert.NotEqual(t, base, CacheKey("compras", "GET", "/v1/itens", nil, nil))
	assert.NotEqual(t, base, CacheKey("pncp", "POST", "/v1/itens", nil, nil))
	assert.NotEqual(t, base, CacheKey("pncp", "GET", "/v2/itens", nil, nil))
	assert.NotEqual(t, base, CacheKey("pncp", "GET", "/v1/itens", nil, []byte(`{"a":1}`)))
}

func TestResponseCache_TTL(t *testing.T) {
	c := NewResponseCache(4, 30*time.Millisecond)
	c.Set("k", "v")

	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	time.Sleep(40 * time.Millisecond)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestResponseCache_LRUEviction(t *testing.T) {
	c := NewResponseCache(2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	// Touch a so b becomes the eviction candidate.
	_, _ = c.Get("a")
	c.Set("c", 3)

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	_, okC := c.Get("c")
	assert.True(t, okA)
	assert.False(t, okB)
	assert.True(t, okC)
	assert.Equal(t, 2, c.Len())
}
