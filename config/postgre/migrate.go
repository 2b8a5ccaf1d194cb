package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lib/pq"
)

// Migrate creates schema if needed and replays every .sql file of migrations in
// lexical order inside one transaction. The files must be idempotent.
func Migrate(ctx context.Context, db *sql.DB, schema string, migrations fs.FS) error {
	names, err := fs.Glob(migrations, "*.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range schemaStatements(schema) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to prepare schema %s: %w", schema, err)
		}
	}

	for _, name := range names {
		script, err := fs.ReadFile(migrations, name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
	}

	return tx.Commit()
}

// schemaStatements scopes the migration transaction to schema.
func schemaStatements(schema string) []string {
	quoted := pq.QuoteIdentifier(schemaOrPublic(schema))
	return []string{
		"CREATE SCHEMA IF NOT EXISTS " + quoted,
		"SET LOCAL search_path TO " + quoted,
	}
}
