package planfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"justgo/internal/api/controllers"
	"justgo/internal/config"
	"justgo/internal/itinerary"
	"justgo/internal/oracle"
	"justgo/internal/services"
	mem "justgo/pkg/memcache"
)

var Module = fx.Provide(
	providePlanService, providePlanController)

func providePlanService(
	texts oracle.TextOracle,
	places oracle.PlaceOracle,
	normalizer *itinerary.Normalizer,
	selections mem.SelectionStore,
	log *zap.SugaredLogger,
) services.PlanServiceInterface {
	return services.NewPlanService(texts, places, normalizer, selections, log)
}

func providePlanController(planService services.PlanServiceInterface, cfg *config.Config) *controllers.PlanController {
	return controllers.NewPlanController(planService, cfg.GPTTimeout)
}
