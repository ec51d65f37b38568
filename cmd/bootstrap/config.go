package bootstrap

import (
	"shareit/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies an already loaded config so the store driver can be chosen before the graph is built.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
