package mem_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	mem "wanderlust/pkg/memcache"
)

func TestCoordinateCache_SetGet(t *testing.T) {
	cache := mem.NewCoordinateCache()

	_, ok := cache.Get("manali, himachal pradesh")
	assert.False(t, ok)

	cache.Set("manali, himachal pradesh", mem.Coords{Lat: 32.2396, Lng: 77.1887})

	got, ok := cache.Get("manali, himachal pradesh")
	assert.True(t, ok)
	assert.Equal(t, mem.Coords{Lat: 32.2396, Lng: 77.1887}, got)
	assert.Equal(t, 1, cache.Len())
}

func TestCoordinateCache_Clear(t *testing.T) {
	cache := mem.NewCoordinateCache()
	cache.Set("a", mem.Coords{Lat: 1, Lng: 2})
	cache.Set("b", mem.Coords{Lat: 3, Lng: 4})

	assert.Equal(t, 2, cache.Clear())
	assert.Equal(t, 0, cache.Len())
	_, ok := cache.Get("a")
	assert.False(t, ok)
}

func TestCoordinateCache_ConcurrentAccess(t *testing.T) {
	cache := mem.NewCoordinateCache()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Writes are idempotent: a race between two lookups for the
			// same key is harmless.
			cache.Set("goa", mem.Coords{Lat: 15.2993, Lng: 74.124})
			cache.Get("goa")
		}()
	}
	wg.Wait()

	got, ok := cache.Get("goa")
	assert.True(t, ok)
	assert.Equal(t, mem.Coords{Lat: 15.2993, Lng: 74.124}, got)
}
