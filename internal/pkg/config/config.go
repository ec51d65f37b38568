package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Store  StoreConfig
	Paging PagingConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"5s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// StoreConfig selects the booking persistence backend. The memory driver reads its
// users and items from SeedPath and keeps bookings for the life of the process.
type StoreConfig struct {
	Driver   string `envconfig:"STORE_DRIVER" default:"postgres"`
	SeedPath string `envconfig:"STORE_SEED_PATH"`
}

type PagingConfig struct {
	DefaultSize int `envconfig:"PAGE_DEFAULT_SIZE" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c ServerConfig) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}

// Validate rejects an empty secret: envconfig's required only checks that the variable is set,
// and an empty HMAC key would let anyone sign tokens.
func (c JWTConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	d, err := time.ParseDuration(c.Duration)
	if err != nil {
		return fmt.Errorf("invalid JWT_DURATION %q: %w", c.Duration, err)
	}
	if d <= 0 {
		return fmt.Errorf("JWT_DURATION must be positive, got %s", c.Duration)
	}
	return nil
}

// Validate is only applied when a database is actually used, so the memory driver runs without DB_* settings.
func (c DBConfig) Validate() error {
	missing := make([]string, 0, 3)
	for name, v := range map[string]string{"DB_USER": c.User, "DB_PASSWORD": c.Password, "DB_NAME": c.DBName} {
		if v == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("required database settings missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c StoreConfig) Validate() error {
	switch c.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
		return nil
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Driver)
	}
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Server.Validate(); err != nil {
		return Config{}, err
	}
	if err := cfg.JWT.Validate(); err != nil {
		return Config{}, err
	}
	if err := cfg.Store.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.Store.Driver == StoreDriverPostgres {
		if err := cfg.DB.Validate(); err != nil {
			return Config{}, err
		}
	}
	if cfg.Paging.DefaultSize <= 0 {
		return Config{}, fmt.Errorf("PAGE_DEFAULT_SIZE must be positive, got %d", cfg.Paging.DefaultSize)
	}
	return cfg, nil
}

// LoadDBConfig reads only the DB_* variables, for tools that never start the server.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DBConfig{}, err
	}
	return cfg, nil
}

func LoadJWTConfig() (JWTConfig, error) {
	var cfg JWTConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return JWTConfig{}, fmt.Errorf("failed to process jwt env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return JWTConfig{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8889", // Test port
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Store: StoreConfig{
			Driver: StoreDriverPostgres,
		},
		Paging: PagingConfig{
			DefaultSize: 10,
		},
	}
}
