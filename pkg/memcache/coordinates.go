// pkg/memcache/coordinates.go
package mem

import "sync"

// Coords is a resolved latitude/longitude pair.
type Coords struct {
	Lat float64
	Lng float64
}

// CoordinateStore memoizes geocoding results for the life of the process.
// Entries never expire: once a query resolves, resolving the same query
// again must return the identical pair without another lookup. Unbounded
// growth is accepted for the expected query volume.
type CoordinateStore interface {
	Get(key string) (Coords, bool)
	Set(key string, c Coords)
	Len() int

	// Clear drops every entry and reports how many were removed.
	Clear() int
}

type CoordinateCache struct {
	mu   sync.RWMutex
	data map[string]Coords
}

func NewCoordinateCache() *CoordinateCache {
	return &CoordinateCache{data: make(map[string]Coords)}
}

func (s *CoordinateCache) Get(key string) (Coords, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.data[key]
	return c, ok
}

func (s *CoordinateCache) Set(key string, c Coords) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = c
}

func (s *CoordinateCache) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *CoordinateCache) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.data)
	s.data = make(map[string]Coords)
	return n
}
