package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAPIConfig(t *testing.T) {
	path := writeConfigFile(t, `
debug: true
server:
  port: 9090
database:
  host: localhost
  user: policyd
  password: secret
  dbname: policies
nats:
  url: "nats://localhost:4222"
oracle:
  base_url: "http://oracle.local"
  stale_window: "30s"
auth:
  escrow_key: "test-escrow-key"
  api_keys:
    - ops-key
`)

	cfg, err := LoadAPIConfig(path, t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host, "default applies")
	assert.Equal(t, 5432, cfg.Database.Port, "default applies")
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "POLICY_EVENTS", cfg.NATS.StreamName, "default applies")
	assert.Equal(t, "http://oracle.local", cfg.Oracle.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Oracle.StaleWindow)
	assert.Equal(t, "test-escrow-key", cfg.Auth.EscrowKey)
	assert.Equal(t, []string{"ops-key"}, cfg.Auth.APIKeys)
}

func TestLoadAPIConfigEnvOverride(t *testing.T) {
	path := writeConfigFile(t, `
database:
  host: localhost
`)
	t.Setenv("POLICYD_DATABASE_HOST", "db.internal")
	t.Setenv("POLICYD_ORACLE_BASE_URL", "http://feeds.internal")

	cfg, err := LoadAPIConfig(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "http://feeds.internal", cfg.Oracle.BaseURL)
}

func TestLoadSweeperConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, `
database:
  host: localhost
`)

	cfg, err := LoadSweeperConfig(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.Sweeper.Interval)
	assert.Equal(t, 200, cfg.Sweeper.BatchSize)
	assert.Equal(t, 8, cfg.Sweeper.WorkerPoolSize)
}

func TestLoadAPIConfigMissingFile(t *testing.T) {
	_, err := LoadAPIConfig(filepath.Join(t.TempDir(), "nope.yaml"), t.TempDir())
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "policyd",
		Password: "secret",
		DBName:   "policies",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=policyd password=secret dbname=policies sslmode=disable",
		cfg.DSN())
}
