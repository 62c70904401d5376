package db

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rolematch/internal/models"
	"rolematch/migrations"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// SeedTaxonomy inserts taxonomy entries in order. Entries that already exist
// (same canonical title and seniority level) are left untouched.
func (d *DB) SeedTaxonomy(ctx context.Context, entries []models.TaxonomyEntry) error {
	query := `
		INSERT INTO role_taxonomy (position, role_family, canonical_title, seniority_level, aliases, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (canonical_title, seniority_level) DO NOTHING
	`

	batch := &pgx.Batch{}
	for i, e := range entries {
		aliases := e.Aliases
		if aliases == nil {
			aliases = []string{}
		}
		batch.Queue(query, i, e.RoleFamily, e.CanonicalTitle, string(e.SeniorityLevel), aliases, e.Description)
	}

	br := d.Pool.SendBatch(ctx, batch)
	defer br.Close()

	for _, e := range entries {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to seed taxonomy entry %s: %w", e.CanonicalTitle, err)
		}
	}

	return nil
}
