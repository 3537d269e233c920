package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Dialect selects which migration set to apply. The two sets describe the
// same schema; they differ only in dialect-specific DDL (key generation,
// timestamp types).
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// Migrate applies all pending schema migrations for the given dialect to db.
//
// The migration files are embedded into the binary, so deployments never
// depend on files on disk. Includes the users.last_login column addition
// that older deployments applied by hand.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	dir := DialectSQLite
	gooseDialect := "sqlite3"
	if dialect == DialectPostgres {
		dir = DialectPostgres
		gooseDialect = "pgx"
	}

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
