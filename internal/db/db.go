// Package db opens SQLite databases and keeps their schema up to date.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver
)

// Memory opens a private in-memory database.
const Memory = ":memory:"

// Migration upgrades the schema to Version. Versions must be increasing.
type Migration struct {
	Version int
	SQL     string
}

// Open opens the database at path, creating its directory, and applies
// migrations not yet recorded in schema_version.
func Open(ctx context.Context, path string, migrations []Migration) (*sql.DB, error) {
	if path != Memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One writer; a single connection also keeps :memory: alive.
	conn.SetMaxOpenConns(1)

	if _, err := conn.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		conn.Close()
		return nil, err
	}
	if err := Migrate(ctx, conn, migrations); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// Version returns the highest applied migration, 0 for a fresh database.
func Version(ctx context.Context, conn *sql.DB) (int, error) {
	if _, err := conn.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)`); err != nil {
		return 0, err
	}
	var v int
	err := conn.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&v)
	return v, err
}

// Migrate applies each pending migration in its own transaction.
func Migrate(ctx context.Context, conn *sql.DB, migrations []Migration) error {
	current, err := Version(ctx, conn)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		err := WithTx(ctx, conn, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES (?)`, m.Version)
			return err
		})
		if err != nil {
			return fmt.Errorf("migrate to v%d: %w", m.Version, err)
		}
		current = m.Version
	}
	return nil
}

// WithTx runs fn in a transaction, committing only when fn succeeds.
func WithTx(ctx context.Context, conn *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// Ptr returns nil for NULL, a pointer to the value otherwise.
func Ptr[T any](n sql.Null[T]) *T {
	if !n.Valid {
		return nil
	}
	return &n.V
}
