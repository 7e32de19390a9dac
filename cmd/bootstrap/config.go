package bootstrap

import (
	"fuelstation/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.StationConfig {
			return cfg.Station
		},
	),
)
