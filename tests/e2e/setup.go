//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"shareit/cmd/bootstrap"
	"shareit/cmd/bootstrap/components"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/config"
	"shareit/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

const (
	pgImage    = "postgres:17-alpine"
	pgUser     = "shareit"
	pgPassword = "shareit"
	pgPort     = nat.Port("5432/tcp")
)

// One container per test binary. Every suite gets its own database inside it and ryuk reaps the
// container when the process exits.
var (
	harnessOnce sync.Once
	harness     *postgresHarness
	harnessErr  error
)

type postgresHarness struct {
	container testcontainers.Container
	host      string
	port      nat.Port
}

func (h *postgresHarness) dsn(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, h.host, h.port.Port(), dbName)
}

func (h *postgresHarness) dbConfig(dbName string) config.DBConfig {
	return config.DBConfig{
		Host:     h.host,
		Port:     h.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}
}

func sharedHarness(t *testing.T) *postgresHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	harnessOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()
		harness, harnessErr = startHarness(ctx)
	})
	require.NoError(t, harnessErr, "postgres container unavailable")
	return harness
}

func startHarness(ctx context.Context) (*postgresHarness, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        pgImage,
			ExposedPorts: []string{string(pgPort)},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
			// durability is irrelevant for throwaway data
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "synchronous_commit=off",
				"-c", "full_page_writes=off",
				"-c", "max_connections=200",
			},
			WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"purpose": "shareit-e2e"},
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("postgres container host: %w", err)
	}
	port, err := container.MappedPort(ctx, pgPort)
	if err != nil {
		return nil, fmt.Errorf("postgres container port: %w", err)
	}

	slog.Info("postgres container started", "host", host, "port", port.Port())
	return &postgresHarness{container: container, host: host, port: port}, nil
}

// createDatabase makes a fresh database for one suite and drops it when the suite ends.
func (h *postgresHarness) createDatabase(t *testing.T) string {
	t.Helper()
	name := "shareit_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, h.dsn("postgres"))
	require.NoError(t, err, "admin connection failed")
	defer admin.Close()

	// parallel CREATE DATABASE calls contend on the template database lock
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("create database failed, retrying", "database", name, "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		conn, err := pgx.Connect(ctx, h.dsn("postgres"))
		if err != nil {
			slog.Warn("drop database skipped", "database", name, "error", err.Error())
			return
		}
		defer conn.Close(ctx)
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop database failed", "database", name, "error", err.Error())
		}
	})
	return name
}

// migrationsDir resolves the repository's migrations directory from this file's location, so the
// result does not depend on the package directory go test runs in.
func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

// applyMigrations runs the plain SQL of every migration in name order, each in its own
// transaction. Production applies the same files through cmd/migrate and atlas.
func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	files, err := filepath.Glob(filepath.Join(migrationsDir(), "*.sql"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no migrations found in %s", migrationsDir())
	}
	sort.Strings(files)

	for _, file := range files {
		script, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", filepath.Base(file), err)
		}
		err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			_, err := tx.Exec(ctx, string(script))
			return err
		})
		if err != nil {
			return fmt.Errorf("apply %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

// Environment is a migrated database plus the HTTP router wired to it through the production graph.
type Environment struct {
	DB     *pgxpool.Pool
	Router *gin.Engine
	Config config.Config
}

func NewEnvironment(t *testing.T) Environment {
	t.Helper()
	h := sharedHarness(t)

	cfg := config.NewTestConfig()
	cfg.DB = h.dbConfig(h.createDatabase(t))
	cfg.Store.Driver = config.StoreDriverPostgres

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, closePool, err := db.Connect(ctx, cfg.DB)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(closePool)
	require.NoError(t, applyMigrations(ctx, pool), "migration failed")

	var router *gin.Engine
	app := fxtest.New(t,
		bootstrap.ConfigModule(cfg),
		fx.Supply(pool),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PostgresStoreModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Provide(gin.New),
		fx.Populate(&router),
		fx.NopLogger,
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	return Environment{DB: pool, Router: router, Config: cfg}
}

// SharedSuite gives each e2e suite its own environment and truncates every table before each subtest.
type SharedSuite struct {
	suite.Suite
	Environment
}

func (s *SharedSuite) SetupSuite() {
	s.Environment = NewEnvironment(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
}
