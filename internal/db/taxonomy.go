package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"rolematch/internal/models"
)

const taxonomyColumns = `id, role_family, canonical_title, seniority_level, aliases, description`

// ListTaxonomy returns every taxonomy entry in seed order.
func (d *DB) ListTaxonomy(ctx context.Context) ([]models.TaxonomyEntry, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT `+taxonomyColumns+`
		FROM role_taxonomy
		ORDER BY position ASC, canonical_title ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list taxonomy: %w", err)
	}
	defer rows.Close()

	var entries []models.TaxonomyEntry
	for rows.Next() {
		e, err := scanTaxonomyEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan taxonomy entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// GetTaxonomyEntryByAlias returns the entry carrying alias (already lowercased
// and trimmed), or ErrTaxonomyEntryNotFound.
func (d *DB) GetTaxonomyEntryByAlias(ctx context.Context, alias string) (*models.TaxonomyEntry, error) {
	row := d.Pool.QueryRow(ctx, `
		SELECT `+taxonomyColumns+`
		FROM role_taxonomy
		WHERE EXISTS (
			SELECT 1 FROM unnest(aliases) AS a WHERE lower(btrim(a)) = $1
		)
		ORDER BY position ASC
		LIMIT 1
	`, alias)

	e, err := scanTaxonomyEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaxonomyEntryNotFound
		}
		return nil, fmt.Errorf("failed to find taxonomy alias: %w", err)
	}
	return e, nil
}

// FindTaxonomyByAlias is GetTaxonomyEntryByAlias returning nil when absent.
func (d *DB) FindTaxonomyByAlias(ctx context.Context, alias string) (*models.TaxonomyEntry, error) {
	e, err := d.GetTaxonomyEntryByAlias(ctx, alias)
	if errors.Is(err, ErrTaxonomyEntryNotFound) {
		return nil, nil
	}
	return e, err
}

func scanTaxonomyEntry(row pgx.Row) (*models.TaxonomyEntry, error) {
	var e models.TaxonomyEntry
	var seniority string
	if err := row.Scan(&e.ID, &e.RoleFamily, &e.CanonicalTitle, &seniority, &e.Aliases, &e.Description); err != nil {
		return nil, err
	}
	e.SeniorityLevel = models.SeniorityLevel(seniority)
	return &e, nil
}
