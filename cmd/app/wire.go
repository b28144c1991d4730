//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/closet-stylist/internal/bootstrap"
	"github.com/yanqian/closet-stylist/internal/domain/auth"
	"github.com/yanqian/closet-stylist/internal/domain/outfit"
	"github.com/yanqian/closet-stylist/internal/domain/profile"
	"github.com/yanqian/closet-stylist/internal/domain/wardrobe"
	"github.com/yanqian/closet-stylist/internal/domain/weather"
	"github.com/yanqian/closet-stylist/internal/infra/config"
	"github.com/yanqian/closet-stylist/internal/infra/weather/openmeteo"
	httpiface "github.com/yanqian/closet-stylist/internal/interface/http"
	"github.com/yanqian/closet-stylist/pkg/logger"
	"github.com/yanqian/closet-stylist/pkg/validator"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		validator.New,
		provideAuthConfig,
		provideWeatherConfig,
		provideWeatherClient,
		provideWeatherCache,
		provideRecommender,
		providePostgresPool,
		provideWardrobeRepository,
		provideProfileRepository,
		provideOutfitRepository,
		provideImageStorage,
		provideItemReader,
		provideWeatherLookup,
		provideProfileReader,
		auth.NewService,
		weather.NewService,
		wardrobe.NewService,
		profile.NewService,
		outfit.NewService,
		wire.Bind(new(weather.Provider), new(*openmeteo.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
