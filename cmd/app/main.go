package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"justgo/cmd/fx/chatfx"
	"justgo/cmd/fx/configfx"
	"justgo/cmd/fx/memcachefx"
	"justgo/cmd/fx/oraclefx"
	"justgo/cmd/fx/placesfx"
	"justgo/cmd/fx/planfx"
	"justgo/internal/api/controllers"
	"justgo/internal/config"
	"justgo/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		configfx.Module,
		memcachefx.Module,
		oraclefx.Module,
		planfx.Module,
		chatfx.Module,
		placesfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),

		fx.WithLogger(func(log *zap.SugaredLogger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Desugar()}
		}),
	)

	app.Run()
}

func ProvideRouter(
	cfg *config.Config,
	planController *controllers.PlanController,
	chatController *controllers.ChatController,
	placesController *controllers.PlacesController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	RegisterRoutes(r, planController, chatController, placesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	planController *controllers.PlanController,
	chatController *controllers.ChatController,
	placesController *controllers.PlacesController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/plan", planController.CreatePlan)
	api.GET("/schedules", planController.GetSchedules)
	api.POST("/chat", chatController.EditItinerary)

	recommend := api.Group("/recommend")
	recommend.POST("/attractions", placesController.RecommendAttractions)
	recommend.POST("/restaurants", placesController.RecommendRestaurants)
	recommend.POST("/places", placesController.RecommendPlaces)

	api.POST("/selection/places", placesController.SaveSelection)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, log *zap.SugaredLogger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow("starting HTTP server", "port", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalw("server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			return nil
		},
	})
}
