package library

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"rolematch/internal/models"
	"rolematch/internal/similarity"
)

// unsortedStore returns entries in insertion order, ignoring frequency.
type unsortedStore struct {
	MemoryStore
	list []models.LibraryEntry
}

func (u *unsortedStore) ListMappingsByFrequency(context.Context) ([]models.LibraryEntry, error) {
	return slices.Clone(u.list), nil
}

// failStore fails every call.
type failStore struct{}

func (failStore) FindMappingExact(context.Context, string) (*models.LibraryEntry, error) {
	return nil, errors.New("store unavailable")
}
func (failStore) ListMappingsByFrequency(context.Context) ([]models.LibraryEntry, error) {
	return nil, errors.New("store unavailable")
}
func (failStore) UpsertMapping(context.Context, models.MappingInput) error {
	return errors.New("store unavailable")
}
func (failStore) IncrementVerified(context.Context, string) error { return errors.New("store unavailable") }
func (failStore) IncrementReported(context.Context, string) error { return errors.New("store unavailable") }

// capturingStore records what reaches the store.
type capturingStore struct {
	failStore
	inputs []models.MappingInput
}

func (c *capturingStore) UpsertMapping(_ context.Context, in models.MappingInput) error {
	c.inputs = append(c.inputs, in)
	return nil
}

func newTestLibrary() (*Library, *MemoryStore) {
	store := NewMemoryStore()
	return New(store, similarity.Default(), DefaultFuzzyFloor), store
}

func strPtr(s string) *string { return &s }

func upsertN(t *testing.T, l *Library, title, standardized string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := l.Upsert(context.Background(), title, standardized, nil, nil, models.ContextTags{}); err != nil {
			t.Fatalf("Upsert(%q) error = %v", title, err)
		}
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Full Stack Dev ", "full stack dev"},
		{"SDR", "sdr"},
		{"", ""},
		{"\t\n", ""},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.input); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUpsert_CanonicalValueIsSticky(t *testing.T) {
	l, _ := newTestLibrary()
	ctx := context.Background()
	senior := models.SenioritySenior

	if err := l.Upsert(ctx, "Full Stack Dev", "Software Engineer", &senior, strPtr("Engineering"), models.ContextTags{Industry: "SaaS"}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := l.Upsert(ctx, "full stack dev ", "Software Engineer", &senior, strPtr("Engineering"), models.ContextTags{Industry: "SaaS", Region: "EU"}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := l.Upsert(ctx, "FULL STACK DEV", "Web Developer", nil, strPtr("Design"), models.ContextTags{Industry: "Fintech"}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := l.FindExact(ctx, "Full Stack Dev")
	if err != nil {
		t.Fatalf("FindExact() error = %v", err)
	}
	if got == nil {
		t.Fatal("FindExact() = nil")
	}
	if got.StandardizedTitle != "Software Engineer" {
		t.Errorf("StandardizedTitle = %q, want %q", got.StandardizedTitle, "Software Engineer")
	}
	if got.Frequency != 3 {
		t.Errorf("Frequency = %d, want 3", got.Frequency)
	}
	if got.SeniorityLevel == nil || *got.SeniorityLevel != models.SenioritySenior {
		t.Errorf("SeniorityLevel = %v, want Senior", got.SeniorityLevel)
	}
	if got.RoleFamily == nil || *got.RoleFamily != "Engineering" {
		t.Errorf("RoleFamily = %v, want Engineering", got.RoleFamily)
	}
	if want := []string{"SaaS", "Fintech"}; !slices.Equal(got.Context.Industries, want) {
		t.Errorf("Industries = %v, want %v", got.Context.Industries, want)
	}
	if want := []string{"EU"}; !slices.Equal(got.Context.Regions, want) {
		t.Errorf("Regions = %v, want %v", got.Context.Regions, want)
	}
}

func TestUpsert_EmptyTitle(t *testing.T) {
	l, _ := newTestLibrary()
	err := l.Upsert(context.Background(), "   ", "Software Engineer", nil, nil, models.ContextTags{})
	if !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Upsert() error = %v, want ErrEmptyTitle", err)
	}
}

func TestUpsert_StoresTrimmedValues(t *testing.T) {
	store := &capturingStore{}
	l := New(store, similarity.Default(), DefaultFuzzyFloor)

	if err := l.Upsert(context.Background(), "  Full Stack Dev ", "  Software Engineer\t", nil, nil, models.ContextTags{}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	if len(store.inputs) != 1 {
		t.Fatalf("inputs = %d, want 1", len(store.inputs))
	}
	in := store.inputs[0]
	if in.NormalizedOriginalTitle != "full stack dev" {
		t.Errorf("NormalizedOriginalTitle = %q, want %q", in.NormalizedOriginalTitle, "full stack dev")
	}
	if in.StandardizedTitle != "Software Engineer" {
		t.Errorf("StandardizedTitle = %q, want %q", in.StandardizedTitle, "Software Engineer")
	}
}

func TestUpsert_ConcurrentIncrementsAreNotLost(t *testing.T) {
	l, _ := newTestLibrary()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Upsert(ctx, "Account Exec", "Account Executive", nil, nil, models.ContextTags{})
			_ = l.Verify(ctx, "Account Exec")
		}()
	}
	wg.Wait()

	got, err := l.FindExact(ctx, "account exec")
	if err != nil || got == nil {
		t.Fatalf("FindExact() = %v, %v", got, err)
	}
	if got.Frequency != 50 {
		t.Errorf("Frequency = %d, want 50", got.Frequency)
	}
	if got.VerifiedCount != 50 {
		t.Errorf("VerifiedCount = %d, want 50", got.VerifiedCount)
	}
}

func TestVerifyAndReport(t *testing.T) {
	l, _ := newTestLibrary()
	ctx := context.Background()
	upsertN(t, l, "Sales Rep", "Account Executive", 1)

	for i := 0; i < 2; i++ {
		if err := l.Verify(ctx, "SALES REP"); err != nil {
			t.Fatalf("Verify() error = %v", err)
		}
	}
	if err := l.Report(ctx, "sales rep"); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	got, _ := l.FindExact(ctx, "sales rep")
	if got.VerifiedCount != 2 || got.ReportedIssueCount != 1 {
		t.Errorf("counts = (%d, %d), want (2, 1)", got.VerifiedCount, got.ReportedIssueCount)
	}
	if got.Frequency != 1 {
		t.Errorf("Frequency = %d, want 1", got.Frequency)
	}
}

func TestVerifyAndReport_AbsentKeyIsNoop(t *testing.T) {
	l, store := newTestLibrary()
	ctx := context.Background()

	if err := l.Verify(ctx, "never seen"); err != nil {
		t.Errorf("Verify() error = %v, want nil", err)
	}
	if err := l.Report(ctx, "never seen"); err != nil {
		t.Errorf("Report() error = %v, want nil", err)
	}
	stats, _ := store.LibraryStats(ctx)
	if stats.Entries != 0 {
		t.Errorf("Entries = %d, want 0", stats.Entries)
	}
}

func TestFuzzyFindBest_FrequencyBreaksTies(t *testing.T) {
	l, _ := newTestLibrary()
	upsertN(t, l, "sr. deq", "Senior QA Engineer", 2)
	upsertN(t, l, "sr. dew", "Senior Software Engineer", 7)

	got, err := l.FuzzyFindBest(context.Background(), "sr. dev")
	if err != nil {
		t.Fatalf("FuzzyFindBest() error = %v", err)
	}
	if got == nil {
		t.Fatal("FuzzyFindBest() = nil")
	}
	if got.Entry.NormalizedOriginalTitle != "sr. dew" {
		t.Errorf("FuzzyFindBest() = %q, want the more frequent %q", got.Entry.NormalizedOriginalTitle, "sr. dew")
	}
}

func TestFuzzyFindBest_OrdersUnsortedStoreOutput(t *testing.T) {
	store := &unsortedStore{list: []models.LibraryEntry{
		{NormalizedOriginalTitle: "sr. deq", StandardizedTitle: "Senior QA Engineer", Frequency: 1},
		{NormalizedOriginalTitle: "sr. dew", StandardizedTitle: "Senior Software Engineer", Frequency: 9},
	}}
	l := New(store, similarity.Default(), DefaultFuzzyFloor)

	got, err := l.FuzzyFindBest(context.Background(), "sr. dev")
	if err != nil || got == nil {
		t.Fatalf("FuzzyFindBest() = %v, %v", got, err)
	}
	if got.Entry.Frequency != 9 {
		t.Errorf("Frequency = %d, want 9", got.Entry.Frequency)
	}
}

func TestFuzzyFindBest_BelowFloor(t *testing.T) {
	l, _ := newTestLibrary()
	upsertN(t, l, "head of people", "HR Director", 1)

	got, err := l.FuzzyFindBest(context.Background(), "data engineer")
	if err != nil {
		t.Fatalf("FuzzyFindBest() error = %v", err)
	}
	if got != nil {
		t.Errorf("FuzzyFindBest() = %+v, want nil", got)
	}
}

func TestLibrary_StoreErrorsPropagate(t *testing.T) {
	l := New(failStore{}, similarity.Default(), 0)
	ctx := context.Background()

	if _, err := l.FindExact(ctx, "x"); err == nil {
		t.Error("FindExact() expected error")
	}
	if _, err := l.FuzzyFindBest(ctx, "x"); err == nil {
		t.Error("FuzzyFindBest() expected error")
	}
	if err := l.Upsert(ctx, "x", "y", nil, nil, models.ContextTags{}); err == nil {
		t.Error("Upsert() expected error")
	}
	if err := l.Verify(ctx, "x"); err == nil {
		t.Error("Verify() expected error")
	}
	if err := l.Report(ctx, "x"); err == nil {
		t.Error("Report() expected error")
	}
}
