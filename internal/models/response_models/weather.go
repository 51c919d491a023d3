package response_models

// WeatherReport is the current forecast at a resolved place.
type WeatherReport struct {
	TemperatureC float64 `json:"temp"`
	Condition    string  `json:"condition"`
	IsDay        bool    `json:"isDay"`
}
