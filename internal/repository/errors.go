package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is returned by GetOne and Delete when no row matches the id.
var ErrNotFound = errors.New("record not found")

// RelationError reports a uniqueness or foreign-key violation: the record
// references rows that do not exist, or collides with one that already does.
// The caller can recover by correcting the reference.
type RelationError struct {
	Err error
}

func (e *RelationError) Error() string {
	return fmt.Sprintf("impossible to add or update this record: %v", e.Err)
}

func (e *RelationError) Unwrap() error {
	return e.Err
}

// InvalidDataError reports a field value the store rejected: a check, range,
// type or not-null violation. The caller can recover by correcting the input.
type InvalidDataError struct {
	Err error
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid field value: %v", e.Err)
}

func (e *InvalidDataError) Unwrap() error {
	return e.Err
}

// InfrastructureError wraps any other store-level failure. It carries the
// cause's type name and message for diagnostics without exposing the raw
// driver error to callers.
type InfrastructureError struct {
	Kind string
	Err  error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("storage failure (%s): %v", e.Kind, e.Err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// MySQL server error numbers, per the protocol reference.
const (
	myErrNullColumn    = 1048
	myErrDupEntry      = 1062
	myErrUniqueKey     = 1169
	myErrNoReferenced  = 1216
	myErrRowReferenced = 1217
	myErrOutOfRange    = 1264
	myErrTruncated     = 1265
	myErrBadValue      = 1366
	myErrTooLong       = 1406
	myErrRowIsRefd     = 1451
	myErrNoRefdRow     = 1452
	myErrCheckViolated = 3819
)

// Translate maps a store-native error onto the service taxonomy. It is the
// only place driver errors are inspected; nothing above the repository ever
// sees one. Classification is tried in order: GORM's own translated errors,
// then the typed MySQL and Postgres driver errors by code, then the SQLite
// constraint messages (the pure-Go driver exposes no stable typed codes).
func Translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &RelationError{Err: err}
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) ||
		errors.Is(err, gorm.ErrInvalidData) ||
		errors.Is(err, gorm.ErrInvalidValueOfLength) {
		return &InvalidDataError{Err: err}
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case myErrDupEntry, myErrUniqueKey, myErrNoReferenced, myErrRowReferenced, myErrRowIsRefd, myErrNoRefdRow:
			return &RelationError{Err: err}
		case myErrNullColumn, myErrOutOfRange, myErrTruncated, myErrBadValue, myErrTooLong, myErrCheckViolated:
			return &InvalidDataError{Err: err}
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" || pgErr.Code == "23503":
			return &RelationError{Err: err}
		case pgErr.Code == "23502" || pgErr.Code == "23514":
			return &InvalidDataError{Err: err}
		case strings.HasPrefix(pgErr.Code, "22"): // data exception class
			return &InvalidDataError{Err: err}
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &RelationError{Err: err}
	case strings.Contains(msg, "CHECK constraint failed"),
		strings.Contains(msg, "NOT NULL constraint failed"):
		return &InvalidDataError{Err: err}
	}

	return &InfrastructureError{Kind: fmt.Sprintf("%T", err), Err: err}
}
