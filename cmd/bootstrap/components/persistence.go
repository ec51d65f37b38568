package components

import (
	"log/slog"

	"shareit/internal/infra/memstore"
	"shareit/internal/infra/pgquery"
	"shareit/internal/infra/repository"
	"shareit/internal/pkg/config"
	"shareit/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresStoreModule = fx.Module("persistence/postgres",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.BookingQueries)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(shared.BookingRepository)),
		),
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ItemQueries)),
		),
		fx.Annotate(
			repository.NewItemDirectory,
			fx.As(new(shared.ItemDirectory)),
		),
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.UserQueries)),
		),
		fx.Annotate(
			repository.NewUserDirectory,
			fx.As(new(shared.UserDirectory)),
		),
	),
)

var MemoryStoreModule = fx.Module("persistence/memory",
	fx.Provide(
		NewMemoryStore,
		fx.Annotate(
			memstore.NewBookingRepository,
			fx.As(new(shared.BookingRepository)),
		),
		fx.Annotate(
			memstore.NewItemDirectory,
			fx.As(new(shared.ItemDirectory)),
		),
		fx.Annotate(
			memstore.NewUserDirectory,
			fx.As(new(shared.UserDirectory)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewDBTX(pool *pgxpool.Pool) pgquery.DBTX {
	return pool
}

// NewMemoryStore builds the in-process store and applies the seed file when one is configured.
func NewMemoryStore(cfg config.Config) (*memstore.Store, error) {
	store := memstore.NewStore()
	if cfg.Store.SeedPath == "" {
		return store, nil
	}

	seed, err := memstore.LoadSeedFile(cfg.Store.SeedPath)
	if err != nil {
		return nil, err
	}
	if err := store.Apply(seed); err != nil {
		return nil, err
	}
	slog.Info("memory store seeded", "path", cfg.Store.SeedPath, "users", len(seed.Users), "items", len(seed.Items))
	return store, nil
}
