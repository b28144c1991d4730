package openmeteo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/closet-stylist/internal/domain/weather"
)

func TestClientCurrent(t *testing.T) {
	var forecastQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Portland", r.URL.Query().Get("name"))
		require.Equal(t, "1", r.URL.Query().Get("count"))
		w.Write([]byte(`{"results":[{"name":"Portland","latitude":45.5234,"longitude":-122.6762,"country":"United States","admin1":"Oregon"}]}`))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		forecastQuery = r.URL.RawQuery
		w.Write([]byte(`{"utc_offset_seconds":-25200,"current_weather":{"temperature":58.3,"windspeed":7.2,"weathercode":63,"time":"2024-10-01T09:00"}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(srv.URL+"/search", srv.URL+"/forecast/", time.Second)
	report, err := client.Current(context.Background(), "Portland")
	require.NoError(t, err)

	require.Equal(t, "Portland, Oregon, United States", report.Location)
	require.Equal(t, 58.3, report.Temperature)
	require.Equal(t, weather.ConditionRainy, report.Condition)
	require.Equal(t, 63, report.WeatherCode)
	require.Equal(t, time.Date(2024, 10, 1, 16, 0, 0, 0, time.UTC), report.ObservedAt)
	require.Contains(t, forecastQuery, "temperature_unit=fahrenheit")
	require.Contains(t, forecastQuery, "current_weather=true")
	require.Contains(t, forecastQuery, "latitude=45.5234")
}

func TestClientCurrentUnknownLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generationtime_ms":0.5}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.URL, time.Second).Current(context.Background(), "Atlantis")
	require.Error(t, err)
	require.True(t, errors.Is(err, weather.ErrLocationNotFound))
}

func TestClientCurrentUpstreamError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"name":"Oslo","latitude":59.91,"longitude":10.75}]}`))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusServiceUnavailable)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := NewClient(srv.URL+"/search", srv.URL+"/forecast", time.Second).Current(context.Background(), "Oslo")
	require.ErrorContains(t, err, "status=503")
	require.False(t, errors.Is(err, weather.ErrLocationNotFound))
}

func TestParseObserved(t *testing.T) {
	require.True(t, parseObserved("", 0).IsZero())
	require.True(t, parseObserved("yesterday", 0).IsZero())
	require.Equal(t, time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC), parseObserved("2024-01-02T03:04", 0))
}
