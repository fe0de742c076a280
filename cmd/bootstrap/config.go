package bootstrap

import (
	"court-connect-server/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.StripeConfig { return cfg.Stripe },
	),
)
