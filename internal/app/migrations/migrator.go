// Package migrations applies the SQL files under migrations/ in lexical
// order, tracking applied versions in a schema_migrations table.
package migrations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumnet/api/internal/pkg/logger"
)

// Migrator applies versioned SQL migrations against a pool.
type Migrator struct {
	pool *pgxpool.Pool
}

// NewMigrator creates a migrator bound to the given pool.
func NewMigrator(pool *pgxpool.Pool) *Migrator {
	return &Migrator{pool: pool}
}

// MigrateFromDirectory applies every .sql file in dir, sorted by name.
// Already-applied versions are skipped, so the call is idempotent.
func (m *Migrator) MigrateFromDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	ctx := context.Background()
	if err := m.ensureVersionTable(ctx); err != nil {
		return err
	}

	for _, name := range names {
		if err := m.apply(ctx, dir, name); err != nil {
			return fmt.Errorf("migration %s: %w", name, err)
		}
	}
	return nil
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	_, err := m.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	return nil
}

// apply runs one migration file and records its version, both inside a
// single transaction. The version is the filename prefix before the first
// underscore ("001_init.sql" -> "001").
func (m *Migrator) apply(ctx context.Context, dir, name string) error {
	version := strings.SplitN(name, "_", 2)[0]

	var done bool
	err := m.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`,
		version).Scan(&done)
	if err != nil {
		return fmt.Errorf("check version: %w", err)
	}
	if done {
		logger.Debug().Str("file", name).Msg("Migration already applied, skipping")
		return nil
	}

	sql, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	err = pgx.BeginFunc(ctx, m.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, string(sql)); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO schema_migrations (version) VALUES ($1)`, version)
		return err
	})
	if err != nil {
		return err
	}

	logger.Info().Str("file", name).Msg("Migration applied")
	return nil
}
