package placesfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"justgo/internal/api/controllers"
	"justgo/internal/config"
	"justgo/internal/oracle"
	"justgo/internal/services"
	mem "justgo/pkg/memcache"
)

var Module = fx.Provide(
	provideRecommendService, providePlacesController)

func provideRecommendService(
	texts oracle.TextOracle,
	places oracle.PlaceOracle,
	selections mem.SelectionStore,
	log *zap.SugaredLogger,
) services.RecommendServiceInterface {
	return services.NewRecommendService(texts, places, selections, log)
}

func providePlacesController(recommendService services.RecommendServiceInterface, cfg *config.Config) *controllers.PlacesController {
	return controllers.NewPlacesController(recommendService, cfg.GPTTimeout)
}
