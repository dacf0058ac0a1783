package refdata

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/karimbh/refdata/internal/domain"
)

// bankDescriptor mirrors a typical resource declaration over domain.Bank.
func bankDescriptor() *Descriptor[domain.Bank] {
	return &Descriptor[domain.Bank]{
		Resource: "bank",
		FilterFields: []FilterField[domain.Bank]{
			{Param: "code", Column: "code", Kind: MatchExact, Text: func(b *domain.Bank) string { return b.Code }},
			{Param: "name", Column: "name", Kind: MatchContains, Text: func(b *domain.Bank) string { return b.Name }},
			LifecycleField(func(b *domain.Bank) domain.Lifecycle { return b.Lifecycle }),
		},
		NaturalKeys: []NaturalKey[domain.Bank]{
			{Field: "code", Value: func(b *domain.Bank) string { return b.Code }},
		},
		SortFields: []string{"code", "name", "created_at"},
	}
}

// setupTestDB creates an in-memory SQLite database with the Bank table.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Bank{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newBankRepo(t *testing.T) *Repository[domain.Bank] {
	t.Helper()
	return NewRepository(setupTestDB(t), bankDescriptor())
}

func mustCreateBank(t *testing.T, repo *Repository[domain.Bank], code, name string) *domain.Bank {
	t.Helper()
	b := &domain.Bank{Code: code, Name: name}
	b.Activate()
	if err := repo.Create(context.Background(), b); err != nil {
		t.Fatalf("create bank %s: %v", code, err)
	}
	return b
}

func TestRepositoryCreateAndGetByID(t *testing.T) {
	repo := newBankRepo(t)
	ctx := context.Background()

	b := mustCreateBank(t, repo, "BK1", "First Bank")
	if b.ID == 0 {
		t.Fatal("expected non-zero ID after Create")
	}

	got, err := repo.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Code != "BK1" || got.Name != "First Bank" {
		t.Errorf("got %+v; want Code=BK1, Name=First Bank", got)
	}
}

func TestRepositoryGetByID_NotFound(t *testing.T) {
	repo := newBankRepo(t)

	_, err := repo.GetByID(context.Background(), 999)
	if !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRepositoryGetByID_DisabledStillVisible(t *testing.T) {
	repo := newBankRepo(t)
	ctx := context.Background()

	b := mustCreateBank(t, repo, "BK1", "First Bank")
	b.Disable()
	if err := repo.Save(ctx, b); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetByID after disable: %v", err)
	}
	if got.Lifecycle != domain.LifecycleDisabled {
		t.Errorf("Lifecycle=%q; want disabled", got.Lifecycle)
	}
}

func TestRepositoryCreate_ConstraintViolation(t *testing.T) {
	repo := newBankRepo(t)
	ctx := context.Background()

	mustCreateBank(t, repo, "BK1", "First Bank")

	dup := &domain.Bank{Code: "BK1", Name: "Other Bank"}
	dup.Activate()
	err := repo.Create(ctx, dup)
	if !domain.IsConflict(err) {
		t.Errorf("expected Conflict from unique index, got %v", err)
	}
}

func TestRepositoryCheckUnique(t *testing.T) {
	repo := newBankRepo(t)
	ctx := context.Background()

	b := mustCreateBank(t, repo, "BK1", "First Bank")

	// Same bytes conflict.
	if err := repo.CheckUnique(ctx, "code", "BK1", 0); !domain.IsConflict(err) {
		t.Errorf("expected Conflict for BK1, got %v", err)
	}

	// Case variants conflict too.
	if err := repo.CheckUnique(ctx, "code", "bk1", 0); !domain.IsConflict(err) {
		t.Errorf("expected Conflict for bk1, got %v", err)
	}

	// A free value passes.
	if err := repo.CheckUnique(ctx, "code", "BK2", 0); err != nil {
		t.Errorf("expected no conflict for BK2, got %v", err)
	}

	// The record itself is excluded under update semantics.
	if err := repo.CheckUnique(ctx, "code", "bk1", b.ID); err != nil {
		t.Errorf("expected no conflict when excluding own id, got %v", err)
	}

	// Excluding a different id does not help.
	if err := repo.CheckUnique(ctx, "code", "BK1", b.ID+1); !domain.IsConflict(err) {
		t.Errorf("expected Conflict when excluding another id, got %v", err)
	}
}

func TestRepositoryCheckUnique_IgnoresLifecycle(t *testing.T) {
	repo := newBankRepo(t)
	ctx := context.Background()

	b := mustCreateBank(t, repo, "BK1", "First Bank")
	b.Disable()
	if err := repo.Save(ctx, b); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// A disabled record still occupies its natural key.
	if err := repo.CheckUnique(ctx, "code", "BK1", 0); !domain.IsConflict(err) {
		t.Errorf("expected Conflict against disabled record, got %v", err)
	}
}

func TestRepositoryCheckUnique_RejectsBadColumn(t *testing.T) {
	repo := newBankRepo(t)

	err := repo.CheckUnique(context.Background(), "code) OR (1=1", "x", 0)
	if !domain.IsInternal(err) {
		t.Errorf("expected internal error for invalid column, got %v", err)
	}
}

func TestRepositoryList_CountMatchesFilter(t *testing.T) {
	repo := newBankRepo(t)
	ctx := context.Background()

	mustCreateBank(t, repo, "BK1", "Alpha North")
	mustCreateBank(t, repo, "BK2", "Beta South")
	mustCreateBank(t, repo, "BK3", "Gamma North")

	var spec FilterSpec
	spec.Add(Criterion{Column: "name", Kind: MatchContains, Text: "north"})

	page, err := repo.List(ctx, spec, domain.PageRequest{PageNumber: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.TotalItems != 2 {
		t.Errorf("TotalItems=%d; want 2", page.TotalItems)
	}
	if len(page.Items) != 2 {
		t.Errorf("Items count=%d; want 2", len(page.Items))
	}
	if page.Items[0].Code != "BK1" || page.Items[1].Code != "BK3" {
		t.Errorf("items=%v; want BK1 then BK3", []string{page.Items[0].Code, page.Items[1].Code})
	}
}

func TestRepositoryList_ContainsTreatsWildcardsLiterally(t *testing.T) {
	desc := bankDescriptor()
	repo := NewRepository(setupTestDB(t), desc)
	ctx := context.Background()

	seeded := []*domain.Bank{
		mustCreateBank(t, repo, "BK1", "a_b"),
		mustCreateBank(t, repo, "BK2", "axb"),
		mustCreateBank(t, repo, "BK3", "50% fee"),
		mustCreateBank(t, repo, "BK4", "50x fee"),
	}
	all := make([]domain.Bank, 0, len(seeded))
	for _, b := range seeded {
		all = append(all, *b)
	}

	tests := []struct {
		contains string
		wantCode string
	}{
		{"_b", "BK1"},
		{"%", "BK3"},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			spec, err := desc.ParseFilterSpec(url.Values{"name": {tt.contains}})
			if err != nil {
				t.Fatalf("ParseFilterSpec: %v", err)
			}
			req := domain.PageRequest{PageNumber: 1, PageSize: 10}

			page, err := repo.List(ctx, spec, req)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if page.TotalItems != 1 || page.Items[0].Code != tt.wantCode {
				t.Fatalf("storage matched %d rows; want only %s", page.TotalItems, tt.wantCode)
			}

			// The in-memory executor must agree on the same criteria.
			mem := ExecutePage(all, desc.Compose(spec), req)
			if mem.TotalItems != page.TotalItems {
				t.Errorf("executors diverge: storage=%d in-memory=%d", page.TotalItems, mem.TotalItems)
			}
		})
	}
}

func TestRepositoryCreate_PreCheckRaceFallsBackToConstraint(t *testing.T) {
	repo := newBankRepo(t)
	ctx := context.Background()

	first := &domain.Bank{Code: "BK1", Name: "First Bank"}
	first.Activate()
	second := &domain.Bank{Code: "BK1", Name: "Second Bank"}
	second.Activate()

	// Interleave the way two racing creates would: both pre-checks run
	// before either insert, so neither observes a conflict and the unique
	// index is what rejects the loser.
	if err := repo.CheckUnique(ctx, "code", first.Code, 0); err != nil {
		t.Fatalf("first pre-check: %v", err)
	}
	if err := repo.CheckUnique(ctx, "code", second.Code, 0); err != nil {
		t.Fatalf("second pre-check: %v", err)
	}

	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := repo.Create(ctx, second); !domain.IsConflict(err) {
		t.Fatalf("expected Conflict from the unique index, got %v", err)
	}

	page, err := repo.List(ctx, FilterSpec{}, domain.PageRequest{PageNumber: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.TotalItems != 1 {
		t.Errorf("TotalItems=%d; want 1 surviving record", page.TotalItems)
	}
}

func TestRepositoryList_EnumFailClosed(t *testing.T) {
	repo := newBankRepo(t)
	ctx := context.Background()

	mustCreateBank(t, repo, "BK1", "Alpha")
	mustCreateBank(t, repo, "BK2", "Beta")

	var spec FilterSpec
	spec.Add(Criterion{Column: "lifecycle", Kind: MatchEnum, Invalid: true})

	page, err := repo.List(ctx, spec, domain.PageRequest{PageNumber: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.TotalItems != 0 || len(page.Items) != 0 {
		t.Errorf("TotalItems=%d Items=%d; want zero matches for invalid enum", page.TotalItems, len(page.Items))
	}
}

func TestRepositoryList_PaginationCompleteness(t *testing.T) {
	repo := newBankRepo(t)
	ctx := context.Background()

	for i := 1; i <= 25; i++ {
		mustCreateBank(t, repo, fmt.Sprintf("BK%02d", i), fmt.Sprintf("Bank %02d", i))
	}

	seen := make(map[uint]bool)
	for pageNum := 1; pageNum <= 3; pageNum++ {
		page, err := repo.List(ctx, FilterSpec{}, domain.PageRequest{PageNumber: pageNum, PageSize: 10})
		if err != nil {
			t.Fatalf("List page %d: %v", pageNum, err)
		}
		if page.TotalItems != 25 {
			t.Errorf("page %d TotalItems=%d; want 25", pageNum, page.TotalItems)
		}
		if page.TotalPages != 3 {
			t.Errorf("page %d TotalPages=%d; want 3", pageNum, page.TotalPages)
		}
		want := 10
		if pageNum == 3 {
			want = 5
		}
		if len(page.Items) != want {
			t.Fatalf("page %d has %d items; want %d", pageNum, len(page.Items), want)
		}
		for _, b := range page.Items {
			if seen[b.ID] {
				t.Fatalf("record %d appeared on more than one page", b.ID)
			}
			seen[b.ID] = true
		}
	}
	if len(seen) != 25 {
		t.Errorf("pages covered %d distinct records; want 25", len(seen))
	}
}

func TestRepositoryList_SortWithTiebreaker(t *testing.T) {
	repo := newBankRepo(t)
	ctx := context.Background()

	// Two records share a name so the id tiebreaker decides their order.
	mustCreateBank(t, repo, "BK1", "Same")
	mustCreateBank(t, repo, "BK2", "Same")
	mustCreateBank(t, repo, "BK3", "Aardvark")

	page, err := repo.List(ctx, FilterSpec{}, domain.PageRequest{PageNumber: 1, PageSize: 10, Sort: "name:asc"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got := []string{page.Items[0].Code, page.Items[1].Code, page.Items[2].Code}
	want := []string{"BK3", "BK1", "BK2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order=%v; want %v", got, want)
		}
	}
}

func TestRepositoryList_DisallowedSortFallsBackToID(t *testing.T) {
	repo := newBankRepo(t)
	ctx := context.Background()

	mustCreateBank(t, repo, "BK2", "Beta")
	mustCreateBank(t, repo, "BK1", "Alpha")

	// "lifecycle" is not in the sort allowlist; order must be id asc.
	page, err := repo.List(ctx, FilterSpec{}, domain.PageRequest{PageNumber: 1, PageSize: 10, Sort: "lifecycle:desc"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Items[0].Code != "BK2" || page.Items[1].Code != "BK1" {
		t.Errorf("order=[%s %s]; want [BK2 BK1] (insertion order)", page.Items[0].Code, page.Items[1].Code)
	}
}

func TestRepositoryList_Empty(t *testing.T) {
	repo := newBankRepo(t)

	page, err := repo.List(context.Background(), FilterSpec{}, domain.PageRequest{PageNumber: 4, PageSize: 20})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Items == nil {
		t.Error("Items should not be nil")
	}
	if page.TotalItems != 0 || page.CurrentPage != 4 || page.ItemsPerPage != 20 {
		t.Errorf("envelope=%+v; want echoed page and size with zero total", page)
	}
}

func TestParseSortValues(t *testing.T) {
	tests := []struct {
		sort  string
		field string
		dir   string
		ok    bool
	}{
		{"name:asc", "name", "asc", true},
		{"name:DESC", "name", "desc", true},
		{" code : asc ", "code", "asc", true},
		{"name", "", "", false},
		{"name:sideways", "", "", false},
		{":asc", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		field, dir, ok := parseSort(tt.sort)
		if field != tt.field || dir != tt.dir || ok != tt.ok {
			t.Errorf("parseSort(%q)=(%q,%q,%v); want (%q,%q,%v)", tt.sort, field, dir, ok, tt.field, tt.dir, tt.ok)
		}
	}
}
