package weather

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/yanqian/closet-stylist/pkg/errors"
	"github.com/yanqian/closet-stylist/pkg/metrics"
)

// Service resolves current weather for a free-text location.
type Service interface {
	Lookup(ctx context.Context, location string) (Report, error)
}

// Provider fetches current conditions from an upstream API.
type Provider interface {
	Current(ctx context.Context, location string) (Report, error)
}

// Cache stores recent reports keyed by normalized location.
type Cache interface {
	Get(ctx context.Context, key string) (Report, bool, error)
	Set(ctx context.Context, key string, report Report, ttl time.Duration) error
}

type service struct {
	cfg      Config
	provider Provider
	cache    Cache
	logger   *slog.Logger
}

// NewService wires up the weather domain.
func NewService(cfg Config, provider Provider, cache Cache, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		provider: provider,
		cache:    cache,
		logger:   logger.With("component", "weather.service"),
	}
}

func (s *service) Lookup(ctx context.Context, location string) (Report, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		location = strings.TrimSpace(s.cfg.DefaultLocation)
	}
	if location == "" {
		return Report{}, apperrors.Wrap(apperrors.CodeInvalidInput, "location cannot be empty", nil)
	}
	key := cacheKey(location)

	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("weather cache read failed", "location", location, "error", err)
	} else if ok {
		metrics.RecordWeatherLookup(metrics.WeatherCacheHit)
		cached.Cached = true
		return cached, nil
	}

	report, err := s.provider.Current(ctx, location)
	if err != nil {
		metrics.RecordWeatherLookup(metrics.WeatherFailed)
		if errors.Is(err, ErrLocationNotFound) {
			return Report{}, apperrors.Wrap(apperrors.CodeNotFound, "location not found", err)
		}
		return Report{}, apperrors.Wrap(apperrors.CodeWeatherUnavailable, "failed to fetch weather", err)
	}
	metrics.RecordWeatherLookup(metrics.WeatherFetched)
	s.logger.Info("weather fetched", "location", report.Location, "temperature", report.Temperature, "condition", report.Condition)

	if s.cfg.CacheTTL > 0 {
		if err := s.cache.Set(ctx, key, report, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("weather cache write failed", "location", location, "error", err)
		}
	}
	return report, nil
}

func cacheKey(location string) string {
	return strings.Join(strings.Fields(strings.ToLower(location)), " ")
}
