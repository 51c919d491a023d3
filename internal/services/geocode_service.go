package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"wanderlust/internal/models/response_models"
	mem "wanderlust/pkg/memcache"
)

// Region confines the resolver to one country: the hint appended to bare
// queries, the Nominatim country filter, the validity bounding box, and the
// base coordinate fallbacks are synthesized from.
type Region struct {
	Hint         string
	CountryCode  string
	MinLat       float64
	MaxLat       float64
	MinLng       float64
	MaxLng       float64
	FallbackBase response_models.GeoPoint
}

func (r Region) Contains(p response_models.GeoPoint) bool {
	return p.Lat >= r.MinLat && p.Lat <= r.MaxLat && p.Lng >= r.MinLng && p.Lng <= r.MaxLng
}

// RegionIndia is the default deployment region.
var RegionIndia = Region{
	Hint:         "India",
	CountryCode:  "in",
	MinLat:       6,
	MaxLat:       38,
	MinLng:       68,
	MaxLng:       98,
	FallbackBase: response_models.GeoPoint{Lat: 20, Lng: 78},
}

type GeocodeResolverInterface interface {
	// Resolve maps a free-text place name to a plottable coordinate. It is
	// total: lookup failures resolve to a deterministic fallback, never an
	// error.
	Resolve(ctx context.Context, query string) response_models.GeoPoint
}

// GeocodeResolver resolves place names through Nominatim with candidate
// ranking, a region validity filter, memoization, and a hash-based fallback.
type GeocodeResolver struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
	Region    Region
	Cache     mem.CoordinateStore
	Limiter   *rate.Limiter

	group singleflight.Group
}

func NewGeocodeResolver(cache mem.CoordinateStore, region Region) *GeocodeResolver {
	return &GeocodeResolver{
		HTTP:      &http.Client{Timeout: 10 * time.Second},
		BaseURL:   "https://nominatim.openstreetmap.org/search",
		UserAgent: "WanderlustPlanner/1.2",
		Region:    region,
		Cache:     cache,
		// Nominatim usage policy: at most one request per second.
		Limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// normalizeQuery builds the cache key. Display text is never altered.
func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func (g *GeocodeResolver) Resolve(ctx context.Context, query string) response_models.GeoPoint {
	key := normalizeQuery(query)
	if c, ok := g.Cache.Get(key); ok {
		return response_models.GeoPoint{Lat: c.Lat, Lng: c.Lng}
	}

	// Concurrent misses for the same key share one lookup; writes are
	// idempotent so the losers just read the winner's result.
	v, _, _ := g.group.Do(key, func() (interface{}, error) {
		if c, ok := g.Cache.Get(key); ok {
			return response_models.GeoPoint{Lat: c.Lat, Lng: c.Lng}, nil
		}
		point := g.lookup(ctx, query)
		g.Cache.Set(key, mem.Coords{Lat: point.Lat, Lng: point.Lng})
		return point, nil
	})
	return v.(response_models.GeoPoint)
}

type nominatimCandidate struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Class       string `json:"class"`
	Type        string `json:"type"`
}

func (g *GeocodeResolver) lookup(ctx context.Context, query string) response_models.GeoPoint {
	candidates, err := g.search(ctx, query)
	if err != nil {
		log.Printf("[GEO] search failed for %q, using fallback: %v", query, err)
		return g.FallbackCoordinate(query)
	}

	for _, cand := range rankCandidates(candidates) {
		lat, latErr := strconv.ParseFloat(cand.Lat, 64)
		lng, lngErr := strconv.ParseFloat(cand.Lon, 64)
		if latErr != nil || lngErr != nil {
			continue
		}
		point := response_models.GeoPoint{Lat: lat, Lng: lng}
		// Mis-tagged or out-of-region candidates are skipped, whatever
		// their score.
		if g.Region.Contains(point) {
			log.Printf("[GEO] selected %q for %q (type=%s)", cand.DisplayName, query, cand.Type)
			return point
		}
	}

	log.Printf("[GEO] no in-region result for %q, using fallback", query)
	return g.FallbackCoordinate(query)
}

func (g *GeocodeResolver) search(ctx context.Context, query string) ([]nominatimCandidate, error) {
	searchQuery := query
	if g.Region.Hint != "" && !strings.Contains(strings.ToLower(query), strings.ToLower(g.Region.Hint)) {
		searchQuery = query + ", " + g.Region.Hint
	}

	if err := g.Limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	q := url.Values{}
	q.Set("format", "json")
	q.Set("q", searchQuery)
	q.Set("limit", "5")
	q.Set("countrycodes", g.Region.CountryCode)
	q.Set("accept-language", "en")
	q.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", g.UserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("nominatim bad status: %s", resp.Status)
	}

	var candidates []nominatimCandidate
	if err := json.NewDecoder(resp.Body).Decode(&candidates); err != nil {
		return nil, fmt.Errorf("nominatim decode: %w", err)
	}
	return candidates, nil
}

// scoreCandidate ranks place classifications so a landmark resolves to the
// landmark, not its containing micro-district. Tourism POIs beat cities,
// cities beat towns, and suburb-level tags are pushed below zero.
func scoreCandidate(c nominatimCandidate) int {
	score := 0
	if c.Class == "tourism" {
		score += 10
	}
	switch c.Type {
	case "city":
		score += 8
	case "town":
		score += 6
	case "village":
		score += 4
	case "administrative":
		score += 2
	case "suburb", "neighbourhood", "industrial":
		score -= 5
	}
	return score
}

// rankCandidates sorts descending by score; ties keep Nominatim's order.
func rankCandidates(candidates []nominatimCandidate) []nominatimCandidate {
	ranked := append([]nominatimCandidate(nil), candidates...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scoreCandidate(ranked[i]) > scoreCandidate(ranked[j])
	})
	return ranked
}

// FallbackCoordinate synthesizes a stable point for a query that could not
// be geocoded. The hash is a 31-based signed 32-bit rolling hash over the
// query's UTF-8 bytes (h = int32(b) + (h<<5 - h)); latitude and longitude
// each add |h mod 1000| / 100 to the region base. Identical queries always
// map to identical points, with no network access and across restarts.
func (g *GeocodeResolver) FallbackCoordinate(query string) response_models.GeoPoint {
	var h int32
	for _, b := range []byte(query) {
		h = int32(b) + (h<<5 - h)
	}
	offset := float64(abs32(h%1000)) / 100
	return response_models.GeoPoint{
		Lat: g.Region.FallbackBase.Lat + offset,
		Lng: g.Region.FallbackBase.Lng + offset,
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
