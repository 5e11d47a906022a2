// Package database produces GORM handles for the configured relational
// backends. Open is a plain factory: every call builds a fresh handle from the
// engine's connection string and the caller owns its lifetime. Init/DB keep
// one process-wide handle for the HTTP layer, matching how the service talks
// to its primary store.
package database

import (
	"fmt"

	"inventory-service/pkg/config"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// ConnectionError reports that a backend handle could not be constructed:
// an unknown driver, a malformed connection string or an unreachable server.
// It is never retried automatically.
type ConnectionError struct {
	Driver string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to %s: %v", e.Driver, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Open constructs a live handle to the given engine and verifies the backend
// is reachable. Pool limits come from the shared DB config.
func Open(engine config.Engine, pool config.DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch engine.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(engine.DSN)
	case config.DriverPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  engine.DSN,
			PreferSimpleProtocol: true, // Disables implicit prepared statement usage
		})
	case config.DriverSQLite:
		dialector = sqlite.Open(engine.DSN)
	default:
		return nil, &ConnectionError{Driver: engine.Driver, Err: fmt.Errorf("unknown driver %q", engine.Driver)}
	}

	handle, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Error),
		TranslateError: true,
	})
	if err != nil {
		return nil, &ConnectionError{Driver: engine.Driver, Err: err}
	}

	// Get generic database object SQL
	sqlDB, err := handle.DB()
	if err != nil {
		return nil, &ConnectionError{Driver: engine.Driver, Err: err}
	}

	// Set connection pool settings from config
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, &ConnectionError{Driver: engine.Driver, Err: err}
	}

	return handle, nil
}

// Close releases the underlying connection pool of a handle.
func Close(handle *gorm.DB) error {
	sqlDB, err := handle.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Init opens the primary engine and keeps it as the process-wide handle.
func Init(cfg *config.Config) error {
	handle, err := Open(cfg.Primary(), cfg.DB)
	if err != nil {
		return err
	}
	db = handle
	return nil
}

// DB returns the primary database handle
func DB() *gorm.DB {
	return db
}
