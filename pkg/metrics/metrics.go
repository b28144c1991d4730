package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "closet_stylist"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	suggestionRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stylist",
			Name:      "suggestion_runs_total",
			Help:      "Outfit suggestion runs by occasion and weather availability",
		},
		[]string{"occasion", "weather"},
	)

	suggestionCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "stylist",
			Name:      "suggestion_candidates",
			Help:      "Number of ranked candidates returned per run",
			Buckets:   []float64{0, 1, 2, 4, 6, 8, 10},
		},
	)

	weatherLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "weather",
			Name:      "lookups_total",
			Help:      "Weather lookups by outcome",
		},
		[]string{"result"},
	)
)

// Weather lookup outcomes.
const (
	WeatherCacheHit = "cache_hit"
	WeatherFetched  = "fetched"
	WeatherFailed   = "failed"
)

// ObserveHTTPRequest records one served request. route should be the
// matched route template, not the raw path.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveSuggestions records a suggestion run. occasion must already be
// reduced to a bounded label set by the caller.
func ObserveSuggestions(occasion string, withWeather bool, candidates int) {
	weather := "absent"
	if withWeather {
		weather = "present"
	}
	suggestionRuns.WithLabelValues(occasion, weather).Inc()
	suggestionCandidates.Observe(float64(candidates))
}

// RecordWeatherLookup counts a weather lookup outcome.
func RecordWeatherLookup(result string) {
	weatherLookups.WithLabelValues(result).Inc()
}

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
