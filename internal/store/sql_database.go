package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/happydeal-transit/erp/internal/config"
	"github.com/happydeal-transit/erp/internal/logger"
	"github.com/happydeal-transit/erp/migrations"
)

// Driver names accepted by [DB].
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// DB wraps a *sql.DB together with the driver it was opened with, the
// placeholder format its driver expects and an error classifier for
// retry decisions.
type DB struct {
	*sql.DB
	driver             string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.DSN. A "postgres://" or
// "postgresql://" URI opens PostgreSQL via the pgx stdlib driver; any
// other non-empty value is treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func (db *DB) Migrate() error {
	dialect := migrations.DialectSQLite
	if db.driver == DriverPostgres {
		dialect = migrations.DialectPostgres
	}
	return migrations.Migrate(db.DB, dialect)
}
