package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

type migrationSet struct {
	dialect goose.Dialect
	dir     string
}

// migrationSets maps a database/sql driver name to its goose dialect and
// migration directory.
var migrationSets = map[string]migrationSet{
	"pgx":     {dialect: goose.DialectPostgres, dir: "postgres"},
	"sqlite3": {dialect: goose.DialectSQLite3, dir: "sqlite"},
}

// Migrate applies every pending migration for the driver named by dialect
// ("pgx" or "sqlite3").
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	set, ok := migrationSets[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	fsys, err := fs.Sub(embedMigrations, set.dir)
	if err != nil {
		return fmt.Errorf("migration error reading embedded files: %w", err)
	}

	provider, err := goose.NewProvider(set.dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(context.Background()); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
