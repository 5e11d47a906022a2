package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Driver names understood by the engine provider.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents the application configuration
type Config struct {
	ServiceName string
	Server      ServerConfig
	DB          DBConfig
	Engines     EnginesConfig
	Log         LogConfig
	Metrics     MetricsConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DBConfig holds connection pool settings shared by every engine handle
type DBConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// Engine describes one relational backend: a driver name plus its native DSN.
type Engine struct {
	Driver string
	DSN    string
}

// EnginesConfig holds the three configured backends and names the one that
// backs the HTTP API. The other two are reachable as export targets.
type EnginesConfig struct {
	Primary  string
	MySQL    Engine
	Postgres Engine
	SQLite   Engine
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics-related configuration
type MetricsConfig struct {
	Prefix string
}

// Load loads the application configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		ServiceName: "inventory-service",
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		DB: DBConfig{
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 1*time.Hour),
		},
		Engines: EnginesConfig{
			Primary: getEnv("PRIMARY_ENGINE", DriverMySQL),
			MySQL: Engine{
				Driver: DriverMySQL,
				DSN:    getEnv("MYSQL_DSN", "shop:shop@tcp(localhost:3306)/shop?parseTime=true"),
			},
			Postgres: Engine{
				Driver: DriverPostgres,
				DSN:    getEnv("POSTGRES_DSN", "host=localhost port=5432 user=postgres password=postgres dbname=shop sslmode=disable"),
			},
			SQLite: Engine{
				Driver: DriverSQLite,
				DSN:    getEnv("SQLITE_DSN", "file:shop.db?_pragma=foreign_keys(1)"),
			},
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "inventory"),
		},
	}

	if _, err := cfg.Engine(cfg.Engines.Primary); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Engine resolves a configured backend by its driver name.
func (c *Config) Engine(name string) (Engine, error) {
	switch name {
	case DriverMySQL:
		return c.Engines.MySQL, nil
	case DriverPostgres:
		return c.Engines.Postgres, nil
	case DriverSQLite:
		return c.Engines.SQLite, nil
	default:
		return Engine{}, fmt.Errorf("unknown engine %q", name)
	}
}

// Primary returns the engine backing the HTTP API.
func (c *Config) Primary() Engine {
	engine, _ := c.Engine(c.Engines.Primary)
	return engine
}

// Helper function to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as integers
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as durations
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
