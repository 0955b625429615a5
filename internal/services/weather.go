package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WeatherReport is the visitor-facing forecast for the zoo grounds
type WeatherReport struct {
	Temperature float64          `json:"temperature"`
	WindSpeed   float64          `json:"windSpeed"`
	Condition   string           `json:"condition"`
	IsDay       bool             `json:"isDay"`
	FetchedAt   string           `json:"fetchedAt"`
	Hourly      []HourlyForecast `json:"hourly,omitempty"`
}

// HourlyForecast is one hour of the upcoming forecast
type HourlyForecast struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
}

// WeatherClient fetches current conditions from the Open-Meteo API
type WeatherClient struct {
	baseURL   string
	latitude  float64
	longitude float64
	client    *http.Client
}

// NewWeatherClient creates a new weather client for a fixed location
func NewWeatherClient(baseURL string, latitude, longitude float64, timeout time.Duration) *WeatherClient {
	return &WeatherClient{
		baseURL:   baseURL,
		latitude:  latitude,
		longitude: longitude,
		client:    &http.Client{Timeout: timeout},
	}
}

// Forecast retrieves the current conditions at the configured coordinates
func (c *WeatherClient) Forecast(ctx context.Context) (*WeatherReport, error) {
	url := fmt.Sprintf("%s/v1/forecast?latitude=%.4f&longitude=%.4f&current_weather=true&hourly=temperature_2m&forecast_days=1",
		c.baseURL, c.latitude, c.longitude)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send weather request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read weather response: %w", err)
	}

	if err := checkStatus(resp.StatusCode, bodyBytes); err != nil {
		return nil, err
	}

	var raw struct {
		CurrentWeather struct {
			Temperature float64 `json:"temperature"`
			WindSpeed   float64 `json:"windspeed"`
			WeatherCode int     `json:"weathercode"`
			IsDay       int     `json:"is_day"`
			Time        string  `json:"time"`
		} `json:"current_weather"`
		Hourly struct {
			Time        []string  `json:"time"`
			Temperature []float64 `json:"temperature_2m"`
		} `json:"hourly"`
	}
	if err := json.Unmarshal(bodyBytes, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	report := &WeatherReport{
		Temperature: raw.CurrentWeather.Temperature,
		WindSpeed:   raw.CurrentWeather.WindSpeed,
		Condition:   conditionFromCode(raw.CurrentWeather.WeatherCode),
		IsDay:       raw.CurrentWeather.IsDay == 1,
		FetchedAt:   raw.CurrentWeather.Time,
	}

	for i, ts := range raw.Hourly.Time {
		if i >= len(raw.Hourly.Temperature) {
			break
		}
		report.Hourly = append(report.Hourly, HourlyForecast{
			Time:        ts,
			Temperature: raw.Hourly.Temperature[i],
		})
	}

	return report, nil
}

// conditionFromCode maps WMO weather codes to a display label
func conditionFromCode(code int) string {
	switch {
	case code == 0:
		return "clear"
	case code <= 3:
		return "partly cloudy"
	case code == 45 || code == 48:
		return "fog"
	case code >= 51 && code <= 57:
		return "drizzle"
	case code >= 61 && code <= 67:
		return "rain"
	case code >= 71 && code <= 77:
		return "snow"
	case code >= 80 && code <= 82:
		return "showers"
	case code >= 95:
		return "thunderstorm"
	default:
		return "unknown"
	}
}
