package config_test

import (
	"testing"
	"time"

	"inventory-service/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "inventory-service", cfg.ServiceName)
	assert.Equal(t, config.DriverMySQL, cfg.Engines.Primary)
	assert.Equal(t, config.DriverMySQL, cfg.Primary().Driver)
	assert.Equal(t, 10, cfg.DB.MaxIdleConns)
	assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PRIMARY_ENGINE", config.DriverSQLite)
	t.Setenv("SQLITE_DSN", "file:custom.db?_pragma=foreign_keys(1)")
	t.Setenv("DB_MAX_IDLE_CONNS", "3")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverSQLite, cfg.Primary().Driver)
	assert.Equal(t, "file:custom.db?_pragma=foreign_keys(1)", cfg.Primary().DSN)
	assert.Equal(t, 3, cfg.DB.MaxIdleConns)
}

func TestLoadRejectsUnknownPrimaryEngine(t *testing.T) {
	t.Setenv("PRIMARY_ENGINE", "oracle")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestEngineLookup(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	for _, name := range []string{config.DriverMySQL, config.DriverPostgres, config.DriverSQLite} {
		engine, err := cfg.Engine(name)
		require.NoError(t, err)
		assert.Equal(t, name, engine.Driver)
	}

	_, err = cfg.Engine("oracle")
	assert.Error(t, err)
}
