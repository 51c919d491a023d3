package services

import (
	"context"
	"strings"
	"sync"

	"wanderlust/internal/models/response_models"
)

type RouteServiceInterface interface {
	BuildRoute(ctx context.Context, itin *response_models.Itinerary, originLabel string) []response_models.Waypoint
	WaypointsForDay(itin *response_models.Itinerary, day int) []response_models.Waypoint
	Rebuild(ctx context.Context, state *RouteState, itin *response_models.Itinerary, originLabel string) bool
}

// RouteService reconciles a generated itinerary into an ordered waypoint
// sequence for the map. Mode is chosen by the itinerary's declared variant:
// itineraries with inline coordinates are plotted per day without any
// geocoding; itineraries without are reduced to a start→destination pair so
// the number of lookups stays bounded.
type RouteService struct {
	resolver GeocodeResolverInterface
}

func NewRouteService(resolver GeocodeResolverInterface) RouteServiceInterface {
	return &RouteService{resolver: resolver}
}

func (r *RouteService) BuildRoute(ctx context.Context, itin *response_models.Itinerary, originLabel string) []response_models.Waypoint {
	if itin == nil {
		return nil
	}
	if itin.HasInlineCoordinates {
		return r.inlineRoute(itin)
	}
	return r.derivedRoute(ctx, itin, originLabel)
}

// derivedRoute geocodes exactly two points, origin first, so the origin is
// always index 0 when present. Fallback-quality points are indistinguishable
// from real ones here; the resolver guarantees something plottable.
func (r *RouteService) derivedRoute(ctx context.Context, itin *response_models.Itinerary, originLabel string) []response_models.Waypoint {
	points := make([]response_models.Waypoint, 0, 2)

	if strings.TrimSpace(originLabel) != "" {
		start := r.resolver.Resolve(ctx, originLabel)
		points = append(points, response_models.Waypoint{
			GeoPoint: start,
			Label:    "Start: " + originLabel,
			Position: len(points),
		})
	}

	dest := r.resolver.Resolve(ctx, itin.Destination)
	points = append(points, response_models.Waypoint{
		GeoPoint: dest,
		Label:    "Destination: " + itin.Destination,
		Position: len(points),
	})

	return points
}

func (r *RouteService) inlineRoute(itin *response_models.Itinerary) []response_models.Waypoint {
	var points []response_models.Waypoint
	for i := range itin.Days {
		points = append(points, dayWaypoints(&itin.Days[i], len(points))...)
	}
	return points
}

// WaypointsForDay returns the plottable points of a single day, hotel first.
// Only meaningful for inline-coordinate itineraries; derived itineraries
// have no per-day points.
func (r *RouteService) WaypointsForDay(itin *response_models.Itinerary, day int) []response_models.Waypoint {
	if itin == nil || !itin.HasInlineCoordinates {
		return nil
	}
	for i := range itin.Days {
		if itin.Days[i].Day == day {
			return dayWaypoints(&itin.Days[i], 0)
		}
	}
	return nil
}

func dayWaypoints(d *response_models.DayPlan, startPos int) []response_models.Waypoint {
	var points []response_models.Waypoint
	if d.HotelSuggestion.Coordinates != nil {
		points = append(points, response_models.Waypoint{
			GeoPoint: *d.HotelSuggestion.Coordinates,
			Label:    d.HotelSuggestion.Name,
			Position: startPos + len(points),
		})
	}
	for i := range d.Activities {
		if d.Activities[i].Coordinates == nil {
			continue
		}
		points = append(points, response_models.Waypoint{
			GeoPoint: *d.Activities[i].Coordinates,
			Label:    d.Activities[i].Title,
			Position: startPos + len(points),
		})
	}
	return points
}

// RouteState holds the waypoints currently shown on a map. Rebuilds are
// sequence-numbered: starting a rebuild discards the previous route, and a
// slow rebuild that finishes after a newer one began is dropped instead of
// overwriting the fresher result. The final writer wins, keyed to the latest
// distinct input.
type RouteState struct {
	mu    sync.Mutex
	seq   uint64
	route []response_models.Waypoint
}

func NewRouteState() *RouteState { return &RouteState{} }

// Begin starts a rebuild, clears any stale route, and returns the sequence
// token the rebuild must present to publish.
func (s *RouteState) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.route = nil
	return s.seq
}

// Publish installs the route if seq is still the latest rebuild. Returns
// false when a newer rebuild has started since Begin.
func (s *RouteState) Publish(seq uint64, route []response_models.Waypoint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return false
	}
	s.route = append([]response_models.Waypoint(nil), route...)
	return true
}

func (s *RouteState) Current() []response_models.Waypoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]response_models.Waypoint(nil), s.route...)
}

// Rebuild recomputes the route for a new destination or origin and publishes
// it unless a newer rebuild started meanwhile.
func (r *RouteService) Rebuild(ctx context.Context, state *RouteState, itin *response_models.Itinerary, originLabel string) bool {
	seq := state.Begin()
	route := r.BuildRoute(ctx, itin, originLabel)
	return state.Publish(seq, route)
}
