package response_models

// GeoPoint is a latitude/longitude pair. Latitude is bounded to [-90, 90]
// and longitude to [-180, 180].
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p GeoPoint) InBounds() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

type HotelSuggestion struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceRange  string    `json:"priceRange"`
	Coordinates *GeoPoint `json:"coordinates,omitempty"`
}

type Activity struct {
	Time         string    `json:"time"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	CostEstimate string    `json:"costEstimate,omitempty"`
	Duration     string    `json:"duration,omitempty"`
	Coordinates  *GeoPoint `json:"coordinates,omitempty"`
}

type Meals struct {
	Lunch  string `json:"lunch"`
	Dinner string `json:"dinner"`
}

type DayPlan struct {
	Day             int             `json:"day"`
	Date            string          `json:"date,omitempty"`
	Theme           string          `json:"theme"`
	HotelSuggestion HotelSuggestion `json:"hotelSuggestion"`
	Activities      []Activity      `json:"activities"`
	Meals           Meals           `json:"meals"`
}

// Itinerary is the full structured trip plan returned by generation.
// Days are contiguously numbered starting at 1. Origin and OriginalBudget
// are attached by the planner from the request, never by the model, and the
// whole value is replaced wholesale on regeneration.
type Itinerary struct {
	TripTitle         string    `json:"tripTitle"`
	Summary           string    `json:"summary"`
	Destination       string    `json:"destination"`
	Origin            string    `json:"origin,omitempty"`
	OriginalBudget    float64   `json:"originalBudget,omitempty"`
	TotalCostEstimate string    `json:"totalCostEstimate"`
	WeatherForecast   string    `json:"weatherForecast"`
	PackingList       []string  `json:"packingList"`
	Days              []DayPlan `json:"days"`

	// HasInlineCoordinates is set by the parser when the model supplied
	// coordinates on hotels or activities. The route builder dispatches on
	// this declared variant instead of probing optional fields.
	HasInlineCoordinates bool `json:"-"`
}
