package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName string
	LoggerLevel string

	DatabaseURL string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	PostgresMaxConns int32
	PostgresMinConns int32

	MigrationsDir string
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "shopbot"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "debug"))

	cfg.DatabaseURL = cast.ToString(getOrReturnDefault("DATABASE_URL", ""))

	cfg.PostgresHost = cast.ToString(getOrReturnDefault("POSTGRES_HOST", "localhost"))
	cfg.PostgresPort = cast.ToString(getOrReturnDefault("POSTGRES_PORT", "5432"))
	cfg.PostgresUser = cast.ToString(getOrReturnDefault("POSTGRES_USER", "postgres"))
	cfg.PostgresPassword = cast.ToString(getOrReturnDefault("POSTGRES_PASSWORD", "1234"))
	cfg.PostgresDB = cast.ToString(getOrReturnDefault("POSTGRES_DB", "shopbot"))
	cfg.PostgresSSLMode = cast.ToString(getOrReturnDefault("POSTGRES_SSLMODE", "disable"))

	cfg.PostgresMaxConns = cast.ToInt32(getOrReturnDefault("POSTGRES_MAX_CONNS", 10))
	cfg.PostgresMinConns = cast.ToInt32(getOrReturnDefault("POSTGRES_MIN_CONNS", 0))

	cfg.MigrationsDir = cast.ToString(getOrReturnDefault("MIGRATIONS_DIR", "migrations"))

	return cfg
}

// DSN returns the connection string the pool is built from. DATABASE_URL wins
// over the individual POSTGRES_* settings.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.PostgresUser,
		c.PostgresPassword,
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDB,
		c.PostgresSSLMode,
	)
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
