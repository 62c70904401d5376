// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"

	"rolematch/internal/db"
	"rolematch/internal/feedback"
	"rolematch/internal/headers"
	"rolematch/internal/importer"
	"rolematch/internal/library"
	"rolematch/internal/matcher"
	"rolematch/internal/metrics"
	"rolematch/internal/models"
	"rolematch/internal/similarity"
	"rolematch/internal/taxonomy"
)

// TestDB creates a test database connection and returns a cleanup function.
// Uses TEST_DATABASE_URL and skips the test when it is unset.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Run migrations
	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	cleanupTestData(ctx, database)

	cleanup := func() {
		cleanupTestData(ctx, database)
		database.Close()
	}

	return database, cleanup
}

func cleanupTestData(ctx context.Context, database *db.DB) {
	database.Pool.Exec(ctx, "DELETE FROM role_mappings")
	database.Pool.Exec(ctx, "DELETE FROM role_taxonomy")
}

// LibraryBackend is a library store that can also report totals.
type LibraryBackend interface {
	library.Store
	metrics.StatsSource
}

// Stack is a fully wired matching service over the given stores.
type Stack struct {
	Store    LibraryBackend
	Library  *library.Library
	Taxonomy *taxonomy.Store
	Matcher  *matcher.Matcher
	Feedback *feedback.Loop
	Mapper   *headers.Mapper
	Importer *importer.Importer
}

// NewStack wires the service with default floors and thresholds.
func NewStack(store LibraryBackend, source taxonomy.Source) *Stack {
	scorer := similarity.Default()
	lib := library.New(store, scorer, library.DefaultFuzzyFloor)
	tax := taxonomy.NewStore(source, scorer, taxonomy.DefaultFuzzyFloor)
	m := matcher.New(lib, tax, matcher.Options{})
	loop := feedback.New(lib, feedback.Options{})
	mapper := headers.NewMapper(scorer)

	return &Stack{
		Store:    store,
		Library:  lib,
		Taxonomy: tax,
		Matcher:  m,
		Feedback: loop,
		Mapper:   mapper,
		Importer: importer.New(mapper, m, loop, headers.DefaultFieldSynonyms(), importer.DefaultAutoApplyThreshold),
	}
}

// MemoryStack wires the service over in-memory stores and the built-in taxonomy.
func MemoryStack() *Stack {
	return NewStack(library.NewMemoryStore(), taxonomy.NewMemorySource(taxonomy.Default()))
}

// Confirm writes original -> standardized into the library times times.
func (s *Stack) Confirm(t *testing.T, original, standardized string, times int) {
	t.Helper()
	for i := 0; i < times; i++ {
		if err := s.Library.Upsert(context.Background(), original, standardized, nil, nil, models.ContextTags{}); err != nil {
			t.Fatalf("Upsert(%q) error = %v", original, err)
		}
	}
}
