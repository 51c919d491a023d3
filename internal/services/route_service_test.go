package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/models/response_models"
	"wanderlust/internal/services"
)

// stubResolver is a hand-written test double for the geocode resolver: it
// answers from a fixed table and falls back to a zero-value point.
type stubResolver struct {
	points map[string]response_models.GeoPoint
	calls  []string
}

func (s *stubResolver) Resolve(_ context.Context, query string) response_models.GeoPoint {
	s.calls = append(s.calls, query)
	return s.points[query]
}

var _ services.GeocodeResolverInterface = (*stubResolver)(nil)

func kyotoTokyoResolver() *stubResolver {
	return &stubResolver{points: map[string]response_models.GeoPoint{
		"Kyoto, Japan": {Lat: 35.0116, Lng: 135.7681},
		"Tokyo, Japan": {Lat: 35.6762, Lng: 139.6503},
	}}
}

func derivedItinerary(destination string) *response_models.Itinerary {
	return &response_models.Itinerary{
		TripTitle:   "Test Trip",
		Destination: destination,
		Days: []response_models.DayPlan{
			{Day: 1, Theme: "Arrival"},
		},
	}
}

func TestRouteService_DerivedMode_OriginFirst(t *testing.T) {
	resolver := kyotoTokyoResolver()
	svc := services.NewRouteService(resolver)

	route := svc.BuildRoute(context.Background(), derivedItinerary("Kyoto, Japan"), "Tokyo, Japan")

	require.Len(t, route, 2)
	assert.Equal(t, "Start: Tokyo, Japan", route[0].Label)
	assert.Equal(t, 0, route[0].Position)
	assert.Equal(t, response_models.GeoPoint{Lat: 35.6762, Lng: 139.6503}, route[0].GeoPoint)
	assert.Equal(t, "Destination: Kyoto, Japan", route[1].Label)
	assert.Equal(t, 1, route[1].Position)

	// Origin is always resolved before destination.
	assert.Equal(t, []string{"Tokyo, Japan", "Kyoto, Japan"}, resolver.calls)
}

func TestRouteService_DerivedMode_NoOrigin(t *testing.T) {
	resolver := kyotoTokyoResolver()
	svc := services.NewRouteService(resolver)

	route := svc.BuildRoute(context.Background(), derivedItinerary("Kyoto, Japan"), "")

	require.Len(t, route, 1)
	assert.Equal(t, "Destination: Kyoto, Japan", route[0].Label)
	assert.Equal(t, 0, route[0].Position)
	assert.Equal(t, []string{"Kyoto, Japan"}, resolver.calls)
}

func TestRouteService_DerivedMode_DoesNotGeocodeActivities(t *testing.T) {
	resolver := kyotoTokyoResolver()
	svc := services.NewRouteService(resolver)

	itin := derivedItinerary("Kyoto, Japan")
	itin.Days[0].Activities = []response_models.Activity{
		{Time: "Morning", Title: "Temple walk", Description: "x", Location: "Kinkaku-ji, Kyoto"},
		{Time: "Evening", Title: "Dinner", Description: "x", Location: "Gion, Kyoto"},
	}

	svc.BuildRoute(context.Background(), itin, "Tokyo, Japan")

	assert.Len(t, resolver.calls, 2, "derived mode geocodes only origin and destination")
}

func TestRouteService_InlineMode_NoGeocoding(t *testing.T) {
	resolver := &stubResolver{}
	svc := services.NewRouteService(resolver)

	itin := &response_models.Itinerary{
		Destination:          "Jaipur, Rajasthan",
		HasInlineCoordinates: true,
		Days: []response_models.DayPlan{
			{
				Day: 1,
				HotelSuggestion: response_models.HotelSuggestion{
					Name:        "Palace Hotel",
					Coordinates: &response_models.GeoPoint{Lat: 26.91, Lng: 75.79},
				},
				Activities: []response_models.Activity{
					{Title: "Amber Fort", Coordinates: &response_models.GeoPoint{Lat: 26.9855, Lng: 75.8513}},
					{Title: "City walk"}, // no coordinates, skipped
				},
			},
			{
				Day: 2,
				Activities: []response_models.Activity{
					{Title: "Hawa Mahal", Coordinates: &response_models.GeoPoint{Lat: 26.9239, Lng: 75.8267}},
				},
			},
		},
	}

	route := svc.BuildRoute(context.Background(), itin, "Delhi, Delhi")

	require.Len(t, route, 3)
	assert.Empty(t, resolver.calls, "inline coordinates must not trigger geocoding")
	assert.Equal(t, "Palace Hotel", route[0].Label)
	assert.Equal(t, "Amber Fort", route[1].Label)
	assert.Equal(t, "Hawa Mahal", route[2].Label)
	for i, wp := range route {
		assert.Equal(t, i, wp.Position)
	}
}

func TestRouteService_WaypointsForDay(t *testing.T) {
	svc := services.NewRouteService(&stubResolver{})

	itin := &response_models.Itinerary{
		HasInlineCoordinates: true,
		Days: []response_models.DayPlan{
			{Day: 1, Activities: []response_models.Activity{
				{Title: "A", Coordinates: &response_models.GeoPoint{Lat: 10, Lng: 70}},
			}},
			{Day: 2, Activities: []response_models.Activity{
				{Title: "B", Coordinates: &response_models.GeoPoint{Lat: 11, Lng: 71}},
				{Title: "C", Coordinates: &response_models.GeoPoint{Lat: 12, Lng: 72}},
			}},
		},
	}

	day2 := svc.WaypointsForDay(itin, 2)
	require.Len(t, day2, 2)
	assert.Equal(t, "B", day2[0].Label)
	assert.Equal(t, 0, day2[0].Position, "per-day positions restart at 0")

	assert.Nil(t, svc.WaypointsForDay(itin, 5))
	assert.Nil(t, svc.WaypointsForDay(derivedItinerary("X"), 1))
}

func TestRouteState_StaleRebuildIsDiscarded(t *testing.T) {
	state := services.NewRouteState()

	slow := state.Begin()
	fresh := state.Begin() // a newer rebuild starts before the slow one publishes

	published := state.Publish(slow, []response_models.Waypoint{{Label: "stale"}})
	assert.False(t, published, "a superseded rebuild must not overwrite the route")
	assert.Empty(t, state.Current())

	require.True(t, state.Publish(fresh, []response_models.Waypoint{{Label: "fresh"}}))
	route := state.Current()
	require.Len(t, route, 1)
	assert.Equal(t, "fresh", route[0].Label)
}

func TestRouteState_BeginClearsPreviousRoute(t *testing.T) {
	state := services.NewRouteState()

	seq := state.Begin()
	require.True(t, state.Publish(seq, []response_models.Waypoint{{Label: "old destination"}}))

	state.Begin()
	assert.Empty(t, state.Current(), "stale waypoints must never persist into a new route")
}

func TestRouteService_Rebuild(t *testing.T) {
	resolver := kyotoTokyoResolver()
	svc := services.NewRouteService(resolver)
	state := services.NewRouteState()

	ok := svc.Rebuild(context.Background(), state, derivedItinerary("Kyoto, Japan"), "Tokyo, Japan")

	require.True(t, ok)
	route := state.Current()
	require.Len(t, route, 2)
	assert.Equal(t, "Start: Tokyo, Japan", route[0].Label)
}

func TestRouteService_ToleratesFallbackQualityPoints(t *testing.T) {
	// The resolver never fails; an unknown label just yields a synthetic
	// point, and the route builder treats it like any other.
	resolver := &stubResolver{points: map[string]response_models.GeoPoint{}}
	svc := services.NewRouteService(resolver)

	route := svc.BuildRoute(context.Background(), derivedItinerary("Unmapped Place"), "")
	require.Len(t, route, 1)
	assert.Equal(t, "Destination: Unmapped Place", route[0].Label)
}
