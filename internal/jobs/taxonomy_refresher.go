package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"rolematch/internal/models"
)

// TaxonomyLister loads the full taxonomy.
type TaxonomyLister interface {
	ListTaxonomy(ctx context.Context) ([]models.TaxonomyEntry, error)
}

// TaxonomyCache receives refreshed snapshots.
type TaxonomyCache interface {
	Replace(entries []models.TaxonomyEntry)
}

// TaxonomyRefresher periodically copies the stored taxonomy into an in-memory
// snapshot so alias lookups do not hit the database on every match.
type TaxonomyRefresher struct {
	source   TaxonomyLister
	cache    TaxonomyCache
	interval time.Duration
	timeout  time.Duration
}

// NewTaxonomyRefresher creates a new taxonomy refresher.
func NewTaxonomyRefresher(source TaxonomyLister, cache TaxonomyCache, interval time.Duration) *TaxonomyRefresher {
	return &TaxonomyRefresher{
		source:   source,
		cache:    cache,
		interval: interval,
		timeout:  10 * time.Second,
	}
}

// Refresh loads the taxonomy once. On failure the previous snapshot is kept.
func (r *TaxonomyRefresher) Refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	entries, err := r.source.ListTaxonomy(ctx)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}
	r.cache.Replace(entries)
	return nil
}

// Start begins the background refresh loop. It returns when ctx is done.
func (r *TaxonomyRefresher) Start(ctx context.Context) {
	log.Printf("Taxonomy refresher started (interval: %v)", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Taxonomy refresher stopped")
			return
		case <-ticker.C:
			if err := r.Refresh(ctx); err != nil {
				log.Printf("Taxonomy refresher: %v", err)
			}
		}
	}
}
