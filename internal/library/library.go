// Package library is the learned memory of confirmed title mappings.
package library

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"rolematch/internal/models"
	"rolematch/internal/similarity"
)

// DefaultFuzzyFloor is the minimum similarity a fuzzy library lookup accepts.
const DefaultFuzzyFloor = 0.80

// ErrEmptyTitle is returned when writing a mapping for a blank title.
var ErrEmptyTitle = errors.New("original title is empty")

// Store persists library entries keyed by normalized original title.
// Lookups return a nil entry and nil error when the key is absent. Writes to
// one key must be atomic so concurrent increments are never lost.
type Store interface {
	FindMappingExact(ctx context.Context, key string) (*models.LibraryEntry, error)
	ListMappingsByFrequency(ctx context.Context) ([]models.LibraryEntry, error)
	UpsertMapping(ctx context.Context, in models.MappingInput) error
	IncrementVerified(ctx context.Context, key string) error
	IncrementReported(ctx context.Context, key string) error
}

// Match is the best fuzzy library hit for a title.
type Match struct {
	Entry models.LibraryEntry
	Score float64
}

// Library scores titles against learned entries and records confirmations.
type Library struct {
	store  Store
	scorer *similarity.Scorer
	floor  float64
}

// New creates a Library over store. A floor <= 0 uses DefaultFuzzyFloor.
func New(store Store, scorer *similarity.Scorer, floor float64) *Library {
	if floor <= 0 {
		floor = DefaultFuzzyFloor
	}
	return &Library{store: store, scorer: scorer, floor: floor}
}

// NormalizeKey produces the lookup key for a raw title.
func NormalizeKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// FindExact returns the entry stored under the normalized title, or nil.
func (l *Library) FindExact(ctx context.Context, title string) (*models.LibraryEntry, error) {
	key := NormalizeKey(title)
	if key == "" {
		return nil, nil
	}
	entry, err := l.store.FindMappingExact(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to find library entry: %w", err)
	}
	return entry, nil
}

// FuzzyFindBest scores title against every entry's normalized original title
// and returns the best hit at or above the floor, or nil. Entries are visited
// in descending frequency so the more often confirmed entry wins equal scores.
func (l *Library) FuzzyFindBest(ctx context.Context, title string) (*Match, error) {
	entries, err := l.store.ListMappingsByFrequency(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list library entries: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Frequency > entries[j].Frequency
	})

	var best *Match
	for _, e := range entries {
		score := l.scorer.Score(title, e.NormalizedOriginalTitle)
		if best == nil || score > best.Score {
			best = &Match{Entry: e, Score: score}
		}
	}

	if best == nil || best.Score < l.floor {
		return nil, nil
	}
	return best, nil
}

// Upsert records one confirmation of originalTitle. An existing entry has its
// frequency incremented and tags merged; its canonical values are never
// overwritten. A new entry starts at frequency 1. The standardized title is
// stored trimmed.
func (l *Library) Upsert(ctx context.Context, originalTitle, standardizedTitle string, seniority *models.SeniorityLevel, roleFamily *string, tags models.ContextTags) error {
	key := NormalizeKey(originalTitle)
	if key == "" {
		return ErrEmptyTitle
	}
	err := l.store.UpsertMapping(ctx, models.MappingInput{
		NormalizedOriginalTitle: key,
		StandardizedTitle:       strings.TrimSpace(standardizedTitle),
		SeniorityLevel:          seniority,
		RoleFamily:              roleFamily,
		Tags:                    tags,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert library entry %q: %w", key, err)
	}
	return nil
}

// Verify increments the verified counter. Absent keys are ignored.
func (l *Library) Verify(ctx context.Context, title string) error {
	key := NormalizeKey(title)
	if key == "" {
		return nil
	}
	if err := l.store.IncrementVerified(ctx, key); err != nil {
		return fmt.Errorf("failed to verify library entry %q: %w", key, err)
	}
	return nil
}

// Report increments the reported-issue counter. Absent keys are ignored.
func (l *Library) Report(ctx context.Context, title string) error {
	key := NormalizeKey(title)
	if key == "" {
		return nil
	}
	if err := l.store.IncrementReported(ctx, key); err != nil {
		return fmt.Errorf("failed to report library entry %q: %w", key, err)
	}
	return nil
}
