package config_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"covoit/internal/config"
	"covoit/internal/logger"
)

var Module = fx.Options(
	fx.Provide(provideConfig),
	fx.Invoke(setupLogging),
)

func provideConfig() (config.Config, error) {
	return config.Load()
}

func setupLogging(cfg config.Config) {
	logger.Setup(cfg.LogFile, cfg.LogLevel)
	if cfg.UsesDevSecret() {
		logrus.Warn("JWT_SECRET not set, using the development signing key")
	}
}
