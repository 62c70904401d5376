package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"rolematch/internal/models"
)

const mappingColumns = `
	id, normalized_original_title, standardized_title, seniority_level, role_family,
	frequency, verified_count, reported_issue_count,
	industries, regions, company_sizes, created_at, last_seen_at
`

// GetMapping returns the mapping stored under key, or ErrMappingNotFound.
// If duplicates ever exist the most frequently confirmed one is returned.
func (d *DB) GetMapping(ctx context.Context, key string) (*models.LibraryEntry, error) {
	row := d.Pool.QueryRow(ctx, `
		SELECT `+mappingColumns+`
		FROM role_mappings
		WHERE normalized_original_title = $1
		ORDER BY frequency DESC
		LIMIT 1
	`, key)

	e, err := scanMapping(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMappingNotFound
		}
		return nil, fmt.Errorf("failed to get mapping: %w", err)
	}
	return e, nil
}

// FindMappingExact returns the mapping stored under key, or nil if absent.
func (d *DB) FindMappingExact(ctx context.Context, key string) (*models.LibraryEntry, error) {
	e, err := d.GetMapping(ctx, key)
	if errors.Is(err, ErrMappingNotFound) {
		return nil, nil
	}
	return e, err
}

// ListMappingsByFrequency returns every mapping, most frequently confirmed first.
func (d *DB) ListMappingsByFrequency(ctx context.Context) ([]models.LibraryEntry, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT `+mappingColumns+`
		FROM role_mappings
		ORDER BY frequency DESC, normalized_original_title ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}
	defer rows.Close()

	var entries []models.LibraryEntry
	for rows.Next() {
		e, err := scanMapping(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mapping: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// UpsertMapping inserts a mapping or, on conflict, increments its frequency and
// merges context tags in one statement. Canonical columns keep their first value.
func (d *DB) UpsertMapping(ctx context.Context, in models.MappingInput) error {
	var seniority *string
	if in.SeniorityLevel != nil {
		s := string(*in.SeniorityLevel)
		seniority = &s
	}

	_, err := d.Pool.Exec(ctx, `
		INSERT INTO role_mappings (
			normalized_original_title, standardized_title, seniority_level, role_family,
			industries, regions, company_sizes, frequency, last_seen_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 1, NOW())
		ON CONFLICT (normalized_original_title) DO UPDATE
		SET frequency = role_mappings.frequency + 1,
			industries = CASE WHEN $8::text = '' OR $8::text = ANY(role_mappings.industries)
				THEN role_mappings.industries ELSE array_append(role_mappings.industries, $8::text) END,
			regions = CASE WHEN $9::text = '' OR $9::text = ANY(role_mappings.regions)
				THEN role_mappings.regions ELSE array_append(role_mappings.regions, $9::text) END,
			company_sizes = CASE WHEN $10::text = '' OR $10::text = ANY(role_mappings.company_sizes)
				THEN role_mappings.company_sizes ELSE array_append(role_mappings.company_sizes, $10::text) END,
			last_seen_at = NOW()
	`,
		in.NormalizedOriginalTitle, in.StandardizedTitle, seniority, in.RoleFamily,
		tagSet(in.Tags.Industry), tagSet(in.Tags.Region), tagSet(in.Tags.CompanySize),
		in.Tags.Industry, in.Tags.Region, in.Tags.CompanySize,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert mapping: %w", err)
	}
	return nil
}

// IncrementVerified bumps verified_count. Missing keys are a no-op.
func (d *DB) IncrementVerified(ctx context.Context, key string) error {
	_, err := d.Pool.Exec(ctx, `
		UPDATE role_mappings
		SET verified_count = verified_count + 1, last_seen_at = NOW()
		WHERE normalized_original_title = $1
	`, key)
	if err != nil {
		return fmt.Errorf("failed to increment verified count: %w", err)
	}
	return nil
}

// IncrementReported bumps reported_issue_count. Missing keys are a no-op.
func (d *DB) IncrementReported(ctx context.Context, key string) error {
	_, err := d.Pool.Exec(ctx, `
		UPDATE role_mappings
		SET reported_issue_count = reported_issue_count + 1, last_seen_at = NOW()
		WHERE normalized_original_title = $1
	`, key)
	if err != nil {
		return fmt.Errorf("failed to increment reported count: %w", err)
	}
	return nil
}

// LibraryStats returns aggregate counters for metrics export.
func (d *DB) LibraryStats(ctx context.Context) (models.LibraryStats, error) {
	var s models.LibraryStats
	err := d.Pool.QueryRow(ctx, `
		SELECT COUNT(*),
			COALESCE(SUM(frequency), 0),
			COALESCE(SUM(verified_count), 0),
			COALESCE(SUM(reported_issue_count), 0)
		FROM role_mappings
	`).Scan(&s.Entries, &s.TotalFrequency, &s.VerifiedCount, &s.ReportedIssueCount)
	if err != nil {
		return s, fmt.Errorf("failed to get library stats: %w", err)
	}
	return s, nil
}

func scanMapping(row pgx.Row) (*models.LibraryEntry, error) {
	var e models.LibraryEntry
	var seniority *string
	err := row.Scan(
		&e.ID, &e.NormalizedOriginalTitle, &e.StandardizedTitle, &seniority, &e.RoleFamily,
		&e.Frequency, &e.VerifiedCount, &e.ReportedIssueCount,
		&e.Context.Industries, &e.Context.Regions, &e.Context.CompanySizes,
		&e.CreatedAt, &e.LastSeenAt,
	)
	if err != nil {
		return nil, err
	}
	if seniority != nil {
		l := models.SeniorityLevel(*seniority)
		e.SeniorityLevel = &l
	}
	return &e, nil
}

func tagSet(tag string) []string {
	if tag == "" {
		return []string{}
	}
	return []string{tag}
}
