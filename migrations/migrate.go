// Package migrations applies the embedded goose schema migrations for
// whichever database backend the process is configured with.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate brings the schema up to date. dialect is the goose dialect name of
// the open connection ("pgx" or "sqlite3"); each dialect keeps its own
// migration directory because the auto-increment primary key syntax differs.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	dir := "sqlite"
	if dialect == "pgx" {
		dir = "postgres"
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
