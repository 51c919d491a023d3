package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"wanderlust/internal/models/response_models"
	"wanderlust/pkg/utils"
)

type WeatherServiceInterface interface {
	CurrentWeather(ctx context.Context, place string) (*response_models.WeatherReport, error)
}

// WeatherService looks up the current forecast for a place name by running
// it through the geocode resolver and querying Open-Meteo (no key required).
type WeatherService struct {
	HTTP    *http.Client
	BaseURL string

	resolver GeocodeResolverInterface
}

func NewWeatherService(resolver GeocodeResolverInterface) *WeatherService {
	return &WeatherService{
		HTTP:     &http.Client{Timeout: 15 * time.Second},
		BaseURL:  "https://api.open-meteo.com/v1/forecast",
		resolver: resolver,
	}
}

func (w *WeatherService) CurrentWeather(ctx context.Context, place string) (*response_models.WeatherReport, error) {
	point := w.resolver.Resolve(ctx, place)

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(point.Lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(point.Lng, 'f', 4, 64))
	q.Set("current_weather", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrWeatherUnavailable, err)
	}

	resp, err := w.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: status %s", utils.ErrWeatherUnavailable, resp.Status)
	}

	var payload struct {
		CurrentWeather *struct {
			Temperature float64 `json:"temperature"`
			WeatherCode int     `json:"weathercode"`
			IsDay       int     `json:"is_day"`
		} `json:"current_weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", utils.ErrWeatherUnavailable, err)
	}
	if payload.CurrentWeather == nil {
		return nil, fmt.Errorf("%w: no current weather in response", utils.ErrWeatherUnavailable)
	}

	return &response_models.WeatherReport{
		TemperatureC: payload.CurrentWeather.Temperature,
		Condition:    interpretWeatherCode(payload.CurrentWeather.WeatherCode),
		IsDay:        payload.CurrentWeather.IsDay == 1,
	}, nil
}

// interpretWeatherCode maps WMO weather codes to a condition string
// (simplified grouping).
func interpretWeatherCode(code int) string {
	switch {
	case code == 0:
		return "Clear Sky"
	case code >= 1 && code <= 3:
		return "Partly Cloudy"
	case code >= 45 && code <= 48:
		return "Foggy"
	case code >= 51 && code <= 67:
		return "Rainy"
	case code >= 71 && code <= 77:
		return "Snowy"
	case code >= 95:
		return "Thunderstorm"
	default:
		return "Sunny"
	}
}
