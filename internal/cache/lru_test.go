package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/joux/resource"
)

func TestLRU_Eviction(t *testing.T) {
	c := NewLRU(30, nil)
	c.Set("a", make([]byte, 10))
	c.Set("b", make([]byte, 10))
	c.Set("c", make([]byte, 10))

	_, ok := c.Get("a") // a becomes most recent
	assert.True(t, ok)

	c.Set("d", make([]byte, 10))
	_, ok = c.Get("b")
	assert.False(t, ok, "b was least recently used")
	for _, k := range []string{"a", "c", "d"} {
		_, ok := c.Get(k)
		assert.True(t, ok, k)
	}
	assert.Equal(t, int64(30), c.Size())
	assert.Equal(t, 3, c.Len())

	hits, misses := c.Stats()
	assert.Equal(t, int64(4), hits)
	assert.Equal(t, int64(1), misses)
}

func TestLRU_TooLarge(t *testing.T) {
	c := NewLRU(50, nil)
	c.Set("big", make([]byte, 60))
	_, ok := c.Get("big")
	assert.False(t, ok)
	assert.Zero(t, c.Size())
}

func TestLRU_Replace(t *testing.T) {
	c := NewLRU(50, nil)
	c.Set("k", make([]byte, 10))
	c.Set("k", make([]byte, 20))
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Len(t, v, 20)
	assert.Equal(t, int64(20), c.Size())

	c.Invalidate("k")
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Zero(t, c.Size())
}

func TestLRU_ResourceController(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 25})
	c := NewLRU(100, rc)

	c.Set("a", make([]byte, 10))
	c.Set("b", make([]byte, 10))
	assert.Equal(t, int64(20), rc.MemoryUsage())

	// The controller refuses, so nothing is cached.
	c.Set("c", make([]byte, 10))
	_, ok := c.Get("c")
	assert.False(t, ok)
	assert.Equal(t, int64(20), rc.MemoryUsage())

	c.Purge()
	assert.Zero(t, rc.MemoryUsage())
	assert.Zero(t, c.Len())
}

func TestLRU_Concurrent(t *testing.T) {
	c := NewLRU(1<<10, nil)
	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := fmt.Sprintf("%03x", (w*200+i)%64)
				if _, ok := c.Get(k); !ok {
					c.Set(k, make([]byte, 32))
				}
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Size(), int64(1<<10))
}
