package chatfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"justgo/internal/api/controllers"
	"justgo/internal/config"
	"justgo/internal/itinerary"
	"justgo/internal/oracle"
	"justgo/internal/services"
)

var Module = fx.Provide(
	provideChatService, provideChatController)

func provideChatService(texts oracle.TextOracle, normalizer *itinerary.Normalizer, log *zap.SugaredLogger) services.ChatServiceInterface {
	return services.NewChatService(texts, normalizer, log)
}

func provideChatController(chatService services.ChatServiceInterface, cfg *config.Config) *controllers.ChatController {
	return controllers.NewChatController(chatService, cfg.GPTTimeout)
}
