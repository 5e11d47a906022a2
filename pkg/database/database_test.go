package database_test

import (
	"path/filepath"
	"testing"
	"time"

	"inventory-service/pkg/config"
	"inventory-service/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPool = config.DBConfig{MaxIdleConns: 1, MaxOpenConns: 1, ConnMaxLifetime: time.Hour}

func TestOpenSQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "shop.db") + "?_pragma=foreign_keys(1)"

	db, err := database.Open(config.Engine{Driver: config.DriverSQLite, DSN: dsn}, testPool)
	require.NoError(t, err)
	assert.NoError(t, database.Close(db))
}

func TestOpenReturnsFreshHandles(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "shop.db")

	first, err := database.Open(config.Engine{Driver: config.DriverSQLite, DSN: dsn}, testPool)
	require.NoError(t, err)
	defer database.Close(first)

	second, err := database.Open(config.Engine{Driver: config.DriverSQLite, DSN: dsn}, testPool)
	require.NoError(t, err)
	defer database.Close(second)

	assert.NotSame(t, first, second)
}

func TestOpenUnknownDriverIsConnectionError(t *testing.T) {
	_, err := database.Open(config.Engine{Driver: "oracle", DSN: "whatever"}, testPool)

	var connErr *database.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, "oracle", connErr.Driver)
}

func TestOpenMalformedMySQLDSNIsConnectionError(t *testing.T) {
	_, err := database.Open(config.Engine{Driver: config.DriverMySQL, DSN: "not a valid dsn"}, testPool)

	var connErr *database.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, config.DriverMySQL, connErr.Driver)
}
