package library

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"rolematch/internal/models"
)

// MemoryStore keeps library entries in process. Every write holds the lock for
// a single map operation, so increments on one key are never lost.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*models.LibraryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*models.LibraryEntry),
		now:     time.Now,
	}
}

// FindMappingExact returns a copy of the entry under key, or nil.
func (m *MemoryStore) FindMappingExact(ctx context.Context, key string) (*models.LibraryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	c := clone(e)
	return &c, nil
}

// ListMappingsByFrequency returns copies of all entries, most frequent first.
func (m *MemoryStore) ListMappingsByFrequency(ctx context.Context) ([]models.LibraryEntry, error) {
	m.mu.Lock()
	out := make([]models.LibraryEntry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, clone(e))
	}
	m.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].NormalizedOriginalTitle < out[j].NormalizedOriginalTitle
	})
	return out, nil
}

// UpsertMapping inserts a new entry or bumps frequency and merges tags.
func (m *MemoryStore) UpsertMapping(ctx context.Context, in models.MappingInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if e, ok := m.entries[in.NormalizedOriginalTitle]; ok {
		e.Frequency++
		e.Context.Merge(in.Tags)
		e.LastSeenAt = now
		return nil
	}

	e := &models.LibraryEntry{
		ID:                      uuid.New(),
		NormalizedOriginalTitle: in.NormalizedOriginalTitle,
		StandardizedTitle:       in.StandardizedTitle,
		SeniorityLevel:          in.SeniorityLevel,
		RoleFamily:              in.RoleFamily,
		Frequency:               1,
		CreatedAt:               now,
		LastSeenAt:              now,
	}
	e.Context.Merge(in.Tags)
	m.entries[in.NormalizedOriginalTitle] = e
	return nil
}

// IncrementVerified bumps the verified counter if key exists.
func (m *MemoryStore) IncrementVerified(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[key]; ok {
		e.VerifiedCount++
		e.LastSeenAt = m.now()
	}
	return nil
}

// IncrementReported bumps the reported-issue counter if key exists.
func (m *MemoryStore) IncrementReported(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[key]; ok {
		e.ReportedIssueCount++
		e.LastSeenAt = m.now()
	}
	return nil
}

// LibraryStats sums the counters across all entries.
func (m *MemoryStore) LibraryStats(ctx context.Context) (models.LibraryStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := models.LibraryStats{Entries: int64(len(m.entries))}
	for _, e := range m.entries {
		stats.TotalFrequency += e.Frequency
		stats.VerifiedCount += e.VerifiedCount
		stats.ReportedIssueCount += e.ReportedIssueCount
	}
	return stats, nil
}

func clone(e *models.LibraryEntry) models.LibraryEntry {
	c := *e
	c.Context.Industries = slices.Clone(e.Context.Industries)
	c.Context.Regions = slices.Clone(e.Context.Regions)
	c.Context.CompanySizes = slices.Clone(e.Context.CompanySizes)
	return c
}
