package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/closet-stylist/internal/domain/weather"
)

const (
	defaultGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"
)

// Client resolves locations and current weather from open-meteo.
type Client struct {
	geocodeURL  string
	forecastURL string
	httpClient  *http.Client
}

// NewClient builds an API client. Empty URLs fall back to the public endpoints.
func NewClient(geocodeURL, forecastURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		geocodeURL:  orDefault(geocodeURL, defaultGeocodeURL),
		forecastURL: orDefault(forecastURL, defaultForecastURL),
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// Current geocodes the location and fetches its current weather in °F.
func (c *Client) Current(ctx context.Context, location string) (weather.Report, error) {
	place, err := c.geocode(ctx, location)
	if err != nil {
		return weather.Report{}, err
	}

	q := url.Values{}
	q.Set("latitude", formatCoord(place.Latitude))
	q.Set("longitude", formatCoord(place.Longitude))
	q.Set("current_weather", "true")
	q.Set("temperature_unit", "fahrenheit")

	var raw forecastResponse
	if err := c.getJSON(ctx, c.forecastURL+"?"+q.Encode(), &raw); err != nil {
		return weather.Report{}, fmt.Errorf("forecast: %w", err)
	}
	if raw.CurrentWeather == nil {
		return weather.Report{}, fmt.Errorf("forecast: current_weather missing")
	}
	cw := raw.CurrentWeather

	return weather.Report{
		Location:    place.displayName(),
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		Temperature: cw.Temperature,
		Condition:   weather.ConditionFor(cw.WeatherCode),
		WindSpeed:   cw.WindSpeed,
		WeatherCode: cw.WeatherCode,
		ObservedAt:  parseObserved(cw.Time, raw.UTCOffsetSeconds),
		Source:      c.forecastURL,
	}, nil
}

func (c *Client) geocode(ctx context.Context, location string) (geoResult, error) {
	q := url.Values{}
	q.Set("name", location)
	q.Set("count", "1")

	var raw geocodeResponse
	if err := c.getJSON(ctx, c.geocodeURL+"?"+q.Encode(), &raw); err != nil {
		return geoResult{}, fmt.Errorf("geocode: %w", err)
	}
	if len(raw.Results) == 0 {
		return geoResult{}, fmt.Errorf("geocode %q: %w", location, weather.ErrLocationNotFound)
	}
	return raw.Results[0], nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("request error: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type geocodeResponse struct {
	Results []geoResult `json:"results"`
}

type geoResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1"`
}

func (g geoResult) displayName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{g.Name, g.Admin1, g.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

type forecastResponse struct {
	UTCOffsetSeconds int             `json:"utc_offset_seconds"`
	CurrentWeather   *currentWeather `json:"current_weather"`
}

type currentWeather struct {
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"windspeed"`
	WeatherCode int     `json:"weathercode"`
	Time        string  `json:"time"`
}

// parseObserved reads open-meteo's local "2006-01-02T15:04" timestamps.
func parseObserved(value string, offsetSeconds int) time.Time {
	if strings.TrimSpace(value) == "" {
		return time.Time{}
	}
	loc := time.FixedZone("", offsetSeconds)
	ts, err := time.ParseInLocation("2006-01-02T15:04", value, loc)
	if err != nil {
		return time.Time{}
	}
	return ts.UTC()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func orDefault(value, fallback string) string {
	value = strings.TrimRight(strings.TrimSpace(value), "/")
	if value == "" {
		return fallback
	}
	return value
}

var _ weather.Provider = (*Client)(nil)
