// Package matcher resolves free-text role titles to canonical roles by
// cascading through the learned library and the curated taxonomy.
package matcher

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"rolematch/internal/library"
	"rolematch/internal/metrics"
	"rolematch/internal/models"
	"rolematch/internal/taxonomy"
)

// Tier confidence bounds.
const (
	exactMinConfidence    = 85
	exactAcceptConfidence = 90
	reportPenalty         = 5

	fuzzyMinConfidence = 85
	fuzzyMaxConfidence = 99
	maxQualityBonus    = 5

	taxonomyAliasConfidence    = 80
	taxonomyFuzzyMinConfidence = 75
	taxonomyFuzzyMaxConfidence = 85
)

// Defaults for Options.
const (
	DefaultStoreTimeout     = 2 * time.Second
	DefaultBatchConcurrency = 8
)

// LibraryLookup is the read side of the learned mapping library.
type LibraryLookup interface {
	FindExact(ctx context.Context, title string) (*models.LibraryEntry, error)
	FuzzyFindBest(ctx context.Context, title string) (*library.Match, error)
}

// TaxonomyLookup is the read side of the curated taxonomy.
type TaxonomyLookup interface {
	FindByAlias(ctx context.Context, title string) (*models.TaxonomyEntry, error)
	FuzzyFindByAlias(ctx context.Context, title string) (*taxonomy.Match, error)
}

// Options tunes store access and batch parallelism.
type Options struct {
	// StoreTimeout bounds every store round-trip of a tier.
	StoreTimeout time.Duration
	// BatchConcurrency caps the cascades MatchBatch runs at once.
	BatchConcurrency int
}

// Matcher runs the resolution cascade. It holds no per-call state and is safe
// for concurrent use.
type Matcher struct {
	library  LibraryLookup
	taxonomy TaxonomyLookup
	opts     Options
}

// New creates a Matcher. Zero option values take the package defaults.
func New(lib LibraryLookup, tax TaxonomyLookup, opts Options) *Matcher {
	if opts.StoreTimeout <= 0 {
		opts.StoreTimeout = DefaultStoreTimeout
	}
	if opts.BatchConcurrency <= 0 {
		opts.BatchConcurrency = DefaultBatchConcurrency
	}
	return &Matcher{library: lib, taxonomy: tax, opts: opts}
}

// MatchRoleTitle resolves one title. The first tier that accepts wins:
// exact library, fuzzy library, taxonomy alias, fuzzy taxonomy alias.
// Store failures make a tier produce nothing; they never fail the match.
func (m *Matcher) MatchRoleTitle(ctx context.Context, title string) models.MatchResult {
	result := m.resolve(ctx, title)
	metrics.RecordMatch(result.MatchType, result.Confidence)
	return result
}

func (m *Matcher) resolve(ctx context.Context, title string) models.MatchResult {
	if strings.TrimSpace(title) == "" {
		return models.NoMatch(title)
	}

	tiers := []func(context.Context, string) (models.MatchResult, bool){
		m.exactLibrary,
		m.fuzzyLibrary,
		m.taxonomyAlias,
		m.fuzzyTaxonomy,
	}
	for _, tier := range tiers {
		if result, ok := tier(ctx, title); ok {
			return result
		}
	}
	return models.NoMatch(title)
}

// MatchBatch resolves titles concurrently. Each title runs its own full
// cascade; repeated titles are not memoized.
func (m *Matcher) MatchBatch(ctx context.Context, titles []string) map[string]models.MatchResult {
	results := m.MatchAll(ctx, titles)
	out := make(map[string]models.MatchResult, len(titles))
	for i, t := range titles {
		out[t] = results[i]
	}
	return out
}

// MatchAll resolves titles concurrently and returns results in input order.
func (m *Matcher) MatchAll(ctx context.Context, titles []string) []models.MatchResult {
	results := make([]models.MatchResult, len(titles))

	var g errgroup.Group
	g.SetLimit(m.opts.BatchConcurrency)
	for i, t := range titles {
		g.Go(func() error {
			results[i] = m.MatchRoleTitle(ctx, t)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (m *Matcher) exactLibrary(ctx context.Context, title string) (models.MatchResult, bool) {
	ctx, cancel := context.WithTimeout(ctx, m.opts.StoreTimeout)
	defer cancel()

	entry, err := m.library.FindExact(ctx, title)
	if err != nil {
		slog.Warn("exact library tier failed", "title", title, "error", err)
		return models.MatchResult{}, false
	}
	if entry == nil {
		return models.MatchResult{}, false
	}

	confidence := max(exactMinConfidence, 100-reportPenalty*int(entry.ReportedIssueCount))
	if confidence < exactAcceptConfidence {
		return models.MatchResult{}, false
	}
	return fromLibrary(title, *entry, confidence, models.MatchExact), true
}

func (m *Matcher) fuzzyLibrary(ctx context.Context, title string) (models.MatchResult, bool) {
	ctx, cancel := context.WithTimeout(ctx, m.opts.StoreTimeout)
	defer cancel()

	match, err := m.library.FuzzyFindBest(ctx, title)
	if err != nil {
		slog.Warn("fuzzy library tier failed", "title", title, "error", err)
		return models.MatchResult{}, false
	}
	if match == nil {
		return models.MatchResult{}, false
	}

	base := percent(match.Score)
	bonus := min(int(match.Entry.VerifiedCount-match.Entry.ReportedIssueCount), maxQualityBonus)
	confidence := clamp(base+bonus, fuzzyMinConfidence, fuzzyMaxConfidence)
	if confidence < fuzzyMinConfidence {
		return models.MatchResult{}, false
	}
	return fromLibrary(title, match.Entry, confidence, models.MatchFuzzy), true
}

func (m *Matcher) taxonomyAlias(ctx context.Context, title string) (models.MatchResult, bool) {
	ctx, cancel := context.WithTimeout(ctx, m.opts.StoreTimeout)
	defer cancel()

	entry, err := m.taxonomy.FindByAlias(ctx, title)
	if err != nil {
		slog.Warn("taxonomy alias tier failed", "title", title, "error", err)
		return models.MatchResult{}, false
	}
	if entry == nil {
		return models.MatchResult{}, false
	}
	return fromTaxonomy(title, *entry, taxonomyAliasConfidence), true
}

func (m *Matcher) fuzzyTaxonomy(ctx context.Context, title string) (models.MatchResult, bool) {
	ctx, cancel := context.WithTimeout(ctx, m.opts.StoreTimeout)
	defer cancel()

	match, err := m.taxonomy.FuzzyFindByAlias(ctx, title)
	if err != nil {
		slog.Warn("fuzzy taxonomy tier failed", "title", title, "error", err)
		return models.MatchResult{}, false
	}
	if match == nil {
		return models.MatchResult{}, false
	}

	confidence := clamp(percent(match.Score), taxonomyFuzzyMinConfidence, taxonomyFuzzyMaxConfidence)
	if confidence < taxonomyFuzzyMinConfidence {
		return models.MatchResult{}, false
	}
	return fromTaxonomy(title, match.Entry, confidence), true
}

func fromLibrary(title string, e models.LibraryEntry, confidence int, matchType models.MatchType) models.MatchResult {
	return models.MatchResult{
		OriginalTitle:     title,
		StandardizedTitle: e.StandardizedTitle,
		SeniorityLevel:    e.SeniorityLevel,
		RoleFamily:        e.RoleFamily,
		Confidence:        confidence,
		MatchType:         matchType,
	}
}

func fromTaxonomy(title string, e models.TaxonomyEntry, confidence int) models.MatchResult {
	seniority := e.SeniorityLevel
	family := e.RoleFamily
	return models.MatchResult{
		OriginalTitle:     title,
		StandardizedTitle: e.CanonicalTitle,
		SeniorityLevel:    &seniority,
		RoleFamily:        &family,
		Confidence:        confidence,
		MatchType:         models.MatchTaxonomy,
	}
}

func percent(score float64) int {
	return int(math.Round(score * 100))
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
