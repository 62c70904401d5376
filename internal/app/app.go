// Package app wires stores, matching and feedback from configuration. It is
// shared by the HTTP server and the command-line tool.
package app

import (
	"context"
	"fmt"
	"log"

	"rolematch/internal/config"
	"rolematch/internal/db"
	"rolematch/internal/feedback"
	"rolematch/internal/headers"
	"rolematch/internal/importer"
	"rolematch/internal/jobs"
	"rolematch/internal/library"
	"rolematch/internal/matcher"
	"rolematch/internal/metrics"
	"rolematch/internal/similarity"
	"rolematch/internal/taxonomy"
)

// LibraryBackend is what the service needs from the mapping store.
type LibraryBackend interface {
	library.Store
	metrics.StatsSource
}

// App holds the wired components.
type App struct {
	Config   *config.Config
	Store    LibraryBackend
	Library  *library.Library
	Taxonomy *taxonomy.Store
	Matcher  *matcher.Matcher
	Feedback *feedback.Loop
	Mapper   *headers.Mapper
	Synonyms headers.FieldSynonyms
	Importer *importer.Importer

	database *db.DB
}

// New builds the service. With a database configured it migrates, optionally
// seeds the taxonomy and starts the taxonomy refresher, which runs until ctx
// is done. Without one, mappings live in memory.
func New(ctx context.Context, cfg *config.Config, yamlCfg *config.YAMLConfig) (*App, error) {
	entries := yamlCfg.TaxonomyEntries(taxonomy.Default())
	if err := taxonomy.Validate(entries); err != nil {
		return nil, err
	}

	a := &App{Config: cfg}
	var source taxonomy.Source

	if cfg.UsesDatabase() {
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.database = database

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		if cfg.SeedTaxonomy {
			if err := database.SeedTaxonomy(ctx, entries); err != nil {
				database.Close()
				return nil, fmt.Errorf("failed to seed taxonomy: %w", err)
			}
			log.Printf("Taxonomy seeded with %d entries", len(entries))
		}

		a.Store, source = database, database

		if cfg.TaxonomyRefreshInterval > 0 {
			snapshot := taxonomy.NewMemorySource(nil)
			refresher := jobs.NewTaxonomyRefresher(database, snapshot, cfg.TaxonomyRefreshInterval)
			if err := refresher.Refresh(ctx); err != nil {
				database.Close()
				return nil, err
			}
			go refresher.Start(ctx)
			source = snapshot
		}
	} else {
		a.Store = library.NewMemoryStore()
		source = taxonomy.NewMemorySource(entries)
	}

	scorer := similarity.New(cfg.MaxDistanceRatio)
	a.Library = library.New(a.Store, scorer, cfg.LibraryFuzzyFloor)
	a.Taxonomy = taxonomy.NewStore(source, scorer, cfg.TaxonomyFuzzyFloor)
	a.Matcher = matcher.New(a.Library, a.Taxonomy, matcher.Options{
		StoreTimeout:     cfg.StoreTimeout,
		BatchConcurrency: cfg.BatchConcurrency,
	})
	a.Feedback = feedback.New(a.Library, feedback.Options{
		Workers:      cfg.FeedbackWorkers,
		WriteTimeout: cfg.FeedbackWriteTimeout,
	})

	a.Synonyms = headers.DefaultFieldSynonyms().Merge(yamlCfg.Synonyms())
	a.Mapper = headers.NewMapper(scorer)
	a.Importer = importer.New(a.Mapper, a.Matcher, a.Feedback, a.Synonyms, cfg.AutoApplyThreshold)

	return a, nil
}

// UsesDatabase returns true if mappings are persisted in Postgres.
func (a *App) UsesDatabase() bool {
	return a.database != nil
}

// Close applies pending feedback writes and releases the database pool.
func (a *App) Close() {
	a.Feedback.Close()
	if a.database != nil {
		a.database.Close()
	}
}
