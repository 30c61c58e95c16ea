package config_fx

import (
	"go.uber.org/fx"

	"skillswap/internal/config"
)

var Module = fx.Provide(config.Load)
