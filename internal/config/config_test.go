package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=carteira sslmode=disable", cfg.Storage.Postgres.DSN())
	assert.Equal(t, 10*time.Second, cfg.Benchmarks.GetTimeout())
	assert.NoError(t, cfg.Validate())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "carteira.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment = "production"

[server]
port = 9090

[storage]
driver = "sqlite"

[storage.sqlite]
path = "/var/lib/carteira/data.db"

[benchmarks]
timeout = "3s"

[benchmarks.bcb]
rate_limit = 5
`), 0o644))

	t.Setenv("CARTEIRA_PORT", "7070")
	t.Setenv("API_TOKEN", "secret")
	t.Setenv("CARTEIRA_LOG_LEVEL", "debug")

	cfg, err := Load(path, filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/var/lib/carteira/data.db", cfg.Storage.SQLite.Path)
	assert.Equal(t, 7070, cfg.Server.Port, "environment wins over the file")
	assert.Equal(t, "secret", cfg.Server.APIToken)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 3*time.Second, cfg.Benchmarks.GetTimeout())
	assert.Equal(t, 5, cfg.Benchmarks.BCB.RateLimit)
	assert.Equal(t, "https://api.bcb.gov.br", cfg.Benchmarks.BCB.BaseURL, "unset keys keep their defaults")
}

func TestLoad_PostgresEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "carteira_test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "host=db port=6543 user=postgres password=postgres dbname=carteira_test sslmode=disable", cfg.Storage.Postgres.DSN())

	t.Setenv("DB_CONN_STR", "postgres://u:p@db/x?sslmode=disable")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db/x?sslmode=disable", cfg.Storage.Postgres.DSN())
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nport = "), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Storage.Driver = "mysql"
	assert.Error(t, cfg.Validate())

	cfg = NewDefaultConfig()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = NewDefaultConfig()
	cfg.Server.APIToken = ""
	assert.Error(t, cfg.Validate())
}

func TestClientConfig_GetTimeout(t *testing.T) {
	c := ClientConfig{Timeout: "bogus"}
	assert.Equal(t, 30*time.Second, c.GetTimeout())

	c.Timeout = "2m"
	assert.Equal(t, 2*time.Minute, c.GetTimeout())
}
