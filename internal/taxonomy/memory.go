package taxonomy

import (
	"context"
	"strings"
	"sync"

	"rolematch/internal/models"
)

// MemorySource serves entries from memory. Used when no database is configured
// and as the refreshed snapshot of the database taxonomy.
type MemorySource struct {
	mu      sync.RWMutex
	entries []models.TaxonomyEntry
}

// NewMemorySource creates a source over entries. The slice is not copied.
func NewMemorySource(entries []models.TaxonomyEntry) *MemorySource {
	return &MemorySource{entries: entries}
}

// Replace swaps in a new set of entries. Readers see either the old or the new set.
func (m *MemorySource) Replace(entries []models.TaxonomyEntry) {
	m.mu.Lock()
	m.entries = entries
	m.mu.Unlock()
}

// Len returns the number of entries.
func (m *MemorySource) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// ListTaxonomy returns every entry in insertion order.
func (m *MemorySource) ListTaxonomy(ctx context.Context) ([]models.TaxonomyEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries, nil
}

// FindTaxonomyByAlias returns the first entry carrying alias, case-insensitively.
func (m *MemorySource) FindTaxonomyByAlias(ctx context.Context, alias string) (*models.TaxonomyEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.entries {
		for _, a := range m.entries[i].Aliases {
			if strings.EqualFold(strings.TrimSpace(a), alias) {
				e := m.entries[i]
				return &e, nil
			}
		}
	}
	return nil, nil
}
