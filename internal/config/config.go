// Package config loads server configuration: defaults, then TOML files, then a .env
// file, then environment variables (later sources win).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Storage drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the carteira server
type Config struct {
	Environment string           `toml:"environment"`
	Server      ServerConfig     `toml:"server"`
	Storage     StorageConfig    `toml:"storage"`
	Benchmarks  BenchmarksConfig `toml:"benchmarks"`
	Logging     LoggingConfig    `toml:"logging"`
	Seed        SeedConfig       `toml:"seed"`
}

// ServerConfig holds gRPC server configuration
type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	APIToken string `toml:"api_token"`
}

// Address returns the listen address (host:port)
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig selects and configures the persistence backend
type StorageConfig struct {
	Driver   string         `toml:"driver"` // postgres or sqlite
	Postgres PostgresConfig `toml:"postgres"`
	SQLite   SQLiteConfig   `toml:"sqlite"`
}

// PostgresConfig holds connection settings. ConnString wins over the individual fields.
type PostgresConfig struct {
	ConnString string `toml:"conn_string"`
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	User       string `toml:"user"`
	Password   string `toml:"password"`
	Name       string `toml:"name"`
	SSLMode    string `toml:"ssl_mode"`
}

// DSN returns the lib/pq connection string
func (c *PostgresConfig) DSN() string {
	if c.ConnString != "" {
		return c.ConnString
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// SQLiteConfig holds the embedded database settings
type SQLiteConfig struct {
	Path string `toml:"path"`
}

// BenchmarksConfig holds reference index provider settings
type BenchmarksConfig struct {
	Enabled      bool         `toml:"enabled"`
	Timeout      string       `toml:"timeout"`       // Per-call provider timeout
	WarmSchedule string       `toml:"warm_schedule"` // Cron schedule of the cache warm-up, empty disables it
	WarmLookback int          `toml:"warm_lookback"` // Months fetched by the warm-up
	BCB          ClientConfig `toml:"bcb"`
	Yahoo        ClientConfig `toml:"yahoo"`
}

// GetTimeout parses and returns the provider timeout
func (c *BenchmarksConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// ClientConfig holds an external API client configuration
type ClientConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"` // Requests per second
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the HTTP timeout
func (c *ClientConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // json or console
}

// SeedConfig controls the demo data seeder
type SeedConfig struct {
	Demo    bool   `toml:"demo"`
	OwnerID string `toml:"owner_id"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host:     "0.0.0.0",
			Port:     8080,
			APIToken: "dev-token",
		},
		Storage: StorageConfig{
			Driver: DriverPostgres,
			Postgres: PostgresConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "postgres",
				Password: "postgres",
				Name:     "carteira",
				SSLMode:  "disable",
			},
			SQLite: SQLiteConfig{Path: "data/carteira.db"},
		},
		Benchmarks: BenchmarksConfig{
			Enabled:      true,
			Timeout:      "10s",
			WarmSchedule: "0 6 * * *",
			WarmLookback: 36,
			BCB: ClientConfig{
				BaseURL:   "https://api.bcb.gov.br",
				RateLimit: 2,
				Timeout:   "15s",
			},
			Yahoo: ClientConfig{
				BaseURL:   "https://query1.finance.yahoo.com",
				RateLimit: 2,
				Timeout:   "15s",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Seed: SeedConfig{
			OwnerID: "00000000-0000-0000-0000-00000000d3e0",
		},
	}
}

// Load builds the configuration from defaults, the given TOML files (missing files
// are skipped, later files override earlier ones), a .env file and the environment
func Load(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// A missing .env is normal outside local development
	_ = godotenv.Load()

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("CARTEIRA_ENV"); v != "" {
		config.Environment = v
	}
	if v := os.Getenv("CARTEIRA_HOST"); v != "" {
		config.Server.Host = v
	}
	if v := os.Getenv("CARTEIRA_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			config.Server.Port = p
		}
	}
	if v := os.Getenv("API_TOKEN"); v != "" {
		config.Server.APIToken = v
	}

	if v := os.Getenv("CARTEIRA_STORAGE_DRIVER"); v != "" {
		config.Storage.Driver = strings.ToLower(v)
	}
	if v := os.Getenv("CARTEIRA_SQLITE_PATH"); v != "" {
		config.Storage.SQLite.Path = v
	}

	// Postgres settings keep the DB_* names used by the docker setup
	if v := os.Getenv("DB_CONN_STR"); v != "" {
		config.Storage.Postgres.ConnString = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		config.Storage.Postgres.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			config.Storage.Postgres.Port = p
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		config.Storage.Postgres.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		config.Storage.Postgres.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		config.Storage.Postgres.Name = v
	}

	if v := os.Getenv("CARTEIRA_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("CARTEIRA_LOG_FORMAT"); v != "" {
		config.Logging.Format = v
	}

	if v := os.Getenv("CARTEIRA_BENCHMARKS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Benchmarks.Enabled = b
		}
	}
	if v := os.Getenv("CARTEIRA_BENCHMARK_TIMEOUT"); v != "" {
		config.Benchmarks.Timeout = v
	}

	if v := os.Getenv("CARTEIRA_SEED_DEMO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Seed.Demo = b
		}
	}
}

// Validate checks the settings the server cannot start without
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported storage driver %q (expected %s or %s)", c.Storage.Driver, DriverPostgres, DriverSQLite)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Server.APIToken == "" {
		return fmt.Errorf("api token must not be empty")
	}
	return nil
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
