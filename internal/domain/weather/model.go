package weather

import (
	"errors"
	"time"

	"github.com/yanqian/closet-stylist/internal/domain/stylist"
)

// ErrLocationNotFound is returned by providers when geocoding finds nothing.
var ErrLocationNotFound = errors.New("location not found")

// Report is the current weather at a resolved location.
type Report struct {
	Location    string    `json:"location"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Temperature float64   `json:"temperature"`
	Condition   string    `json:"condition"`
	WindSpeed   float64   `json:"windSpeed"`
	WeatherCode int       `json:"weatherCode"`
	ObservedAt  time.Time `json:"observedAt"`
	Source      string    `json:"source"`
	Cached      bool      `json:"cached"`
}

// Snapshot reduces the report to what the recommender scores against.
func (r Report) Snapshot() stylist.WeatherSnapshot {
	return stylist.WeatherSnapshot{Temperature: r.Temperature, Condition: r.Condition}
}

// Config wires runtime knobs for the weather domain.
type Config struct {
	DefaultLocation string
	CacheTTL        time.Duration
}

// Condition labels derived from WMO weather codes.
const (
	ConditionClear   = "clear"
	ConditionRainy   = "rainy"
	ConditionSnowy   = "snowy"
	ConditionStormy  = "stormy"
	ConditionFoggy   = "foggy"
	ConditionDrizzle = "drizzle"
)

// ConditionFor maps a WMO weather code onto a coarse condition label.
func ConditionFor(code int) string {
	switch {
	case code >= 61 && code <= 67:
		return ConditionRainy
	case code >= 71 && code <= 77:
		return ConditionSnowy
	case code >= 80 && code <= 82:
		return ConditionStormy
	case code >= 45 && code <= 48:
		return ConditionFoggy
	case code >= 51 && code <= 57:
		return ConditionDrizzle
	default:
		return ConditionClear
	}
}
