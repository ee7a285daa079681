package configfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"justgo/internal/config"
)

var Module = fx.Provide(
	provideConfig, provideLogger)

func provideConfig() *config.Config {
	return config.Load()
}

func provideLogger() (*zap.SugaredLogger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
