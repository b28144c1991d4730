package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/closet-stylist/internal/domain/auth"
	"github.com/yanqian/closet-stylist/internal/domain/outfit"
	"github.com/yanqian/closet-stylist/internal/domain/profile"
	"github.com/yanqian/closet-stylist/internal/domain/stylist"
	"github.com/yanqian/closet-stylist/internal/domain/wardrobe"
	"github.com/yanqian/closet-stylist/internal/domain/weather"
	"github.com/yanqian/closet-stylist/internal/infra/config"
	"github.com/yanqian/closet-stylist/internal/infra/imagestore"
	"github.com/yanqian/closet-stylist/internal/infra/outfitrepo"
	"github.com/yanqian/closet-stylist/internal/infra/profilerepo"
	"github.com/yanqian/closet-stylist/internal/infra/wardroberepo"
	"github.com/yanqian/closet-stylist/internal/infra/weather/openmeteo"
	"github.com/yanqian/closet-stylist/internal/infra/weathercache"
)

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:   cfg.Auth.JWTSecret,
		Issuer:   cfg.Auth.Issuer,
		TokenTTL: cfg.Auth.TokenTTL,
	}
}

func provideWeatherConfig(cfg *config.Config) weather.Config {
	return weather.Config{
		DefaultLocation: cfg.Weather.DefaultLocation,
		CacheTTL:        cfg.Weather.CacheTTL,
	}
}

func provideWeatherClient(cfg *config.Config) *openmeteo.Client {
	return openmeteo.NewClient(cfg.Weather.GeocodeURL, cfg.Weather.ForecastURL, cfg.Weather.Timeout)
}

func provideRecommender(cfg *config.Config) *stylist.Recommender {
	return stylist.NewRecommender(stylist.Config{
		MaxCandidates: cfg.Stylist.MaxCandidates,
		MaxResults:    cfg.Stylist.MaxResults,
	}, stylist.DefaultRandomSource())
}

// providePostgresPool returns a nil pool when postgres is not configured or
// unreachable; repositories then fall back to memory.
func providePostgresPool(cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, func()) {
	noop := func() {}
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repositories")
		return nil, noop
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repositories", "error", err)
		return nil, noop
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repositories", "error", err)
		return nil, noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repositories", "error", err)
		pool.Close()
		return nil, noop
	}
	logger.Info("postgres repositories enabled")
	return pool, pool.Close
}

func provideWardrobeRepository(pool *pgxpool.Pool) wardrobe.Repository {
	if pool == nil {
		return wardroberepo.NewMemoryRepository()
	}
	return wardroberepo.NewPostgresRepository(pool)
}

func provideProfileRepository(pool *pgxpool.Pool) profile.Repository {
	if pool == nil {
		return profilerepo.NewMemoryRepository()
	}
	return profilerepo.NewPostgresRepository(pool)
}

func provideOutfitRepository(pool *pgxpool.Pool) outfit.Repository {
	if pool == nil {
		return outfitrepo.NewMemoryRepository()
	}
	return outfitrepo.NewPostgresRepository(pool)
}

func provideImageStorage(cfg *config.Config, logger *slog.Logger) (wardrobe.ImageStorage, error) {
	if strings.TrimSpace(cfg.Storage.Endpoint) == "" {
		logger.Info("storage endpoint not set, keeping item photos in memory")
		return imagestore.NewMemoryStore(), nil
	}
	store, err := imagestore.NewS3Store(cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.Bucket, cfg.Storage.Region, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("s3 image storage enabled", "bucket", cfg.Storage.Bucket)
	return store, nil
}

func provideWeatherCache(cfg *config.Config, logger *slog.Logger) (weather.Cache, func()) {
	noop := func() {}
	if !cfg.Valkey.Enabled {
		return weathercache.NewMemoryCache(), noop
	}
	opt, err := buildValkeyOptions(cfg)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
		return weathercache.NewMemoryCache(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
		return weathercache.NewMemoryCache(), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		client.Close()
		return weathercache.NewMemoryCache(), noop
	}
	logger.Info("valkey weather cache enabled", "addr", cfg.Valkey.Addr)
	return weathercache.NewValkeyCache(client, cfg.Valkey.Prefix), client.Close
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	if strings.Contains(cfg.Valkey.Addr, "://") {
		return valkey.ParseURL(cfg.Valkey.Addr)
	}
	return valkey.ClientOption{InitAddress: []string{cfg.Valkey.Addr}}, nil
}

func provideItemReader(repo wardrobe.Repository) outfit.ItemReader {
	return repo
}

func provideWeatherLookup(svc weather.Service) outfit.WeatherLookup {
	return svc
}

func provideProfileReader(svc profile.Service) outfit.ProfileReader {
	return svc
}
