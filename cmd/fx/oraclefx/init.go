package oraclefx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"justgo/internal/config"
	"justgo/internal/itinerary"
	"justgo/internal/oracle"
)

var Module = fx.Provide(
	provideTextOracle, providePlaceOracle, provideNormalizer)

func provideTextOracle(cfg *config.Config) (oracle.TextOracle, error) {
	return oracle.NewTextOracle(cfg)
}

func providePlaceOracle(cfg *config.Config) oracle.PlaceOracle {
	return oracle.NewNaverClient(cfg.NaverClientID, cfg.NaverClientSecret)
}

func provideNormalizer(places oracle.PlaceOracle, log *zap.SugaredLogger) *itinerary.Normalizer {
	return itinerary.NewNormalizer(places, log)
}
