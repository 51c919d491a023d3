package services_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/models/response_models"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

func newTestWeatherService(t *testing.T, handler http.HandlerFunc) *services.WeatherService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	resolver := &stubResolver{points: map[string]response_models.GeoPoint{
		"Shimla, Himachal Pradesh": {Lat: 31.1048, Lng: 77.1734},
	}}
	svc := services.NewWeatherService(resolver)
	svc.BaseURL = server.URL
	return svc
}

func TestWeatherService_CurrentWeather(t *testing.T) {
	var gotLat, gotLng string
	svc := newTestWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
		gotLat = r.URL.Query().Get("latitude")
		gotLng = r.URL.Query().Get("longitude")
		fmt.Fprint(w, `{"current_weather":{"temperature":18.4,"weathercode":2,"is_day":1}}`)
	})

	report, err := svc.CurrentWeather(context.Background(), "Shimla, Himachal Pradesh")

	require.NoError(t, err)
	assert.Equal(t, 18.4, report.TemperatureC)
	assert.Equal(t, "Partly Cloudy", report.Condition)
	assert.True(t, report.IsDay)
	assert.Equal(t, "31.1048", gotLat)
	assert.Equal(t, "77.1734", gotLng)
}

func TestWeatherService_ConditionMapping(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Clear Sky"},
		{2, "Partly Cloudy"},
		{45, "Foggy"},
		{61, "Rainy"},
		{73, "Snowy"},
		{95, "Thunderstorm"},
		{80, "Sunny"}, // unmapped codes default to sunny
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("code_%d", tc.code), func(t *testing.T) {
			svc := newTestWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintf(w, `{"current_weather":{"temperature":20,"weathercode":%d,"is_day":0}}`, tc.code)
			})

			report, err := svc.CurrentWeather(context.Background(), "Shimla, Himachal Pradesh")
			require.NoError(t, err)
			assert.Equal(t, tc.want, report.Condition)
			assert.False(t, report.IsDay)
		})
	}
}

func TestWeatherService_UpstreamFailure(t *testing.T) {
	svc := newTestWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	})

	_, err := svc.CurrentWeather(context.Background(), "Shimla, Himachal Pradesh")
	assert.ErrorIs(t, err, utils.ErrWeatherUnavailable)
}

func TestWeatherService_EmptyPayload(t *testing.T) {
	svc := newTestWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})

	_, err := svc.CurrentWeather(context.Background(), "Shimla, Himachal Pradesh")
	assert.ErrorIs(t, err, utils.ErrWeatherUnavailable)
}
