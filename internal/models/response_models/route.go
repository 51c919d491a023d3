package response_models

// Waypoint is a single plottable, labeled point derived from an itinerary
// for map display. Position is the ordinal index within the route.
type Waypoint struct {
	GeoPoint
	Label    string `json:"label"`
	Position int    `json:"position"`
}

// TripPlanResponse pairs a generated itinerary with its plottable route.
type TripPlanResponse struct {
	Itinerary *Itinerary `json:"itinerary"`
	Waypoints []Waypoint `json:"waypoints"`
}
