// Package taxonomy resolves titles against the curated catalog of canonical roles.
package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rolematch/internal/models"
	"rolematch/internal/similarity"
)

// DefaultFuzzyFloor is the minimum alias similarity a fuzzy lookup accepts.
const DefaultFuzzyFloor = 0.70

// ErrInvalidTaxonomy is wrapped by every data-quality problem Validate reports.
var ErrInvalidTaxonomy = errors.New("invalid taxonomy")

// Source provides read access to persisted taxonomy entries.
type Source interface {
	ListTaxonomy(ctx context.Context) ([]models.TaxonomyEntry, error)
	FindTaxonomyByAlias(ctx context.Context, alias string) (*models.TaxonomyEntry, error)
}

// Match is the best fuzzy alias hit for a title.
type Match struct {
	Entry models.TaxonomyEntry
	Alias string
	Score float64
}

// Store answers alias lookups over a Source. It never writes.
type Store struct {
	source Source
	scorer *similarity.Scorer
	floor  float64
}

// NewStore creates a taxonomy store. A floor <= 0 uses DefaultFuzzyFloor.
func NewStore(source Source, scorer *similarity.Scorer, floor float64) *Store {
	if floor <= 0 {
		floor = DefaultFuzzyFloor
	}
	return &Store{source: source, scorer: scorer, floor: floor}
}

// FindByAlias returns the entry with an alias equal to title ignoring case,
// or nil if none exists.
func (s *Store) FindByAlias(ctx context.Context, title string) (*models.TaxonomyEntry, error) {
	alias := strings.ToLower(strings.TrimSpace(title))
	if alias == "" {
		return nil, nil
	}
	entry, err := s.source.FindTaxonomyByAlias(ctx, alias)
	if err != nil {
		return nil, fmt.Errorf("failed to find taxonomy alias: %w", err)
	}
	return entry, nil
}

// FuzzyFindByAlias scores title against every alias of every entry and returns
// the single best hit, or nil if the best score is below the floor. Earlier
// entries and aliases win ties.
func (s *Store) FuzzyFindByAlias(ctx context.Context, title string) (*Match, error) {
	entries, err := s.source.ListTaxonomy(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list taxonomy: %w", err)
	}

	var best *Match
	for _, e := range entries {
		for _, alias := range e.Aliases {
			score := s.scorer.Score(title, alias)
			if best == nil || score > best.Score {
				best = &Match{Entry: e, Alias: alias, Score: score}
			}
		}
	}

	if best == nil || best.Score < s.floor {
		return nil, nil
	}
	return best, nil
}

// Validate reports aliases repeated inside or across entries, entries without a
// canonical title, and unknown seniority levels.
func Validate(entries []models.TaxonomyEntry) error {
	var errs []error
	owner := make(map[string]string)

	for _, e := range entries {
		if strings.TrimSpace(e.CanonicalTitle) == "" {
			errs = append(errs, fmt.Errorf("%w: entry in family %q has no canonical title", ErrInvalidTaxonomy, e.RoleFamily))
			continue
		}
		if !e.SeniorityLevel.IsValid() {
			errs = append(errs, fmt.Errorf("%w: %q has unknown seniority level %q", ErrInvalidTaxonomy, e.CanonicalTitle, e.SeniorityLevel))
		}

		name := e.CanonicalTitle + " (" + string(e.SeniorityLevel) + ")"
		seen := make(map[string]bool, len(e.Aliases))
		for _, a := range e.Aliases {
			key := strings.ToLower(strings.TrimSpace(a))
			if seen[key] {
				errs = append(errs, fmt.Errorf("%w: alias %q repeated in %s", ErrInvalidTaxonomy, a, name))
				continue
			}
			seen[key] = true
			if other, ok := owner[key]; ok {
				errs = append(errs, fmt.Errorf("%w: alias %q shared by %s and %s", ErrInvalidTaxonomy, a, other, name))
				continue
			}
			owner[key] = name
		}
	}

	return errors.Join(errs...)
}
