package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherClientForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "47.3769", r.URL.Query().Get("latitude"))
		assert.Equal(t, "true", r.URL.Query().Get("current_weather"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"current_weather": {"temperature": 21.4, "windspeed": 9.3, "weathercode": 61, "is_day": 1, "time": "2026-08-28T14:00"},
			"hourly": {"time": ["2026-08-28T14:00", "2026-08-28T15:00"], "temperature_2m": [21.4, 22.1]}
		}`)
	}))
	defer server.Close()

	client := NewWeatherClient(server.URL, 47.3769, 8.5417, 5*time.Second)
	report, err := client.Forecast(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 21.4, report.Temperature)
	assert.Equal(t, "rain", report.Condition)
	assert.True(t, report.IsDay)
	require.Len(t, report.Hourly, 2)
	assert.Equal(t, 22.1, report.Hourly[1].Temperature)
}

func TestWeatherClientServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewWeatherClient(server.URL, 47.3769, 8.5417, 5*time.Second)
	_, err := client.Forecast(context.Background())

	require.Error(t, err)
}

func TestConditionFromCode(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "clear"},
		{2, "partly cloudy"},
		{45, "fog"},
		{53, "drizzle"},
		{65, "rain"},
		{71, "snow"},
		{81, "showers"},
		{95, "thunderstorm"},
		{42, "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, conditionFromCode(tt.code), "code %d", tt.code)
	}
}
