package bootstrap

import (
	"shareit/cmd/bootstrap/components"
	"shareit/internal/pkg/config"

	"go.uber.org/fx"
)

func Module(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		JWTModule,
		StoreModule(cfg.Store),
		components.UseCaseModule,
		components.HandlerModule,
	)
}

// StoreModule picks the booking persistence backend. Only the postgres driver opens a pool.
func StoreModule(cfg config.StoreConfig) fx.Option {
	if cfg.Driver == config.StoreDriverMemory {
		return components.MemoryStoreModule
	}
	return fx.Options(
		DBModule,
		components.PostgresStoreModule,
	)
}
